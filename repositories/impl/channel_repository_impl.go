package impl

import (
	"gorm.io/gorm"

	"neonchat/models"
)

type ChannelRepositoryImpl struct {
	DB *gorm.DB
}

func NewChannelRepository(db *gorm.DB) *ChannelRepositoryImpl {
	return &ChannelRepositoryImpl{DB: db}
}

func (r *ChannelRepositoryImpl) Create(channel *models.Channel) error {
	return r.DB.Create(channel).Error
}

func (r *ChannelRepositoryImpl) All() ([]models.Channel, error) {
	var channels []models.Channel
	err := r.DB.Find(&channels).Error
	return channels, err
}

func (r *ChannelRepositoryImpl) FindByID(id uint) (models.Channel, error) {
	var channel models.Channel
	err := r.DB.First(&channel, id).Error
	return channel, err
}

func (r *ChannelRepositoryImpl) Save(channel models.Channel) error {
	return r.DB.Save(&channel).Error
}

// Delete cascades to the channel's messages inside one transaction; a partial
// delete is never visible.
func (r *ChannelRepositoryImpl) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Channel{}, id).Error
	})
}
