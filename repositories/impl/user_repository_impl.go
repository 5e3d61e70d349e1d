package impl

import (
	"gorm.io/gorm"

	"neonchat/models"
)

type UserRepositoryImpl struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{DB: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepositoryImpl) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *UserRepositoryImpl) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	return user, err
}

func (r *UserRepositoryImpl) All() ([]models.User, error) {
	var users []models.User
	err := r.DB.Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Save(user models.User) error {
	return r.DB.Save(&user).Error
}

// DeleteByUsername removes only the user row. Messages keep their user_id and
// become orphaned, same as the relational schema.
func (r *UserRepositoryImpl) DeleteByUsername(username string) error {
	return r.DB.Where("username = ?", username).Delete(&models.User{}).Error
}
