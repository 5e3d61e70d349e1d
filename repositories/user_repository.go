package repositories

import "neonchat/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (models.User, error)
	FindByID(id uint) (models.User, error)
	All() ([]models.User, error)
	Save(user models.User) error
	DeleteByUsername(username string) error
}
