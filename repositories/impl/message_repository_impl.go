package impl

import (
	"gorm.io/gorm"

	"neonchat/models"
)

type MessageRepositoryImpl struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{DB: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.DB.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByChannel(channelID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.Where("channel_id = ?", channelID).
		Preload("User").
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) Delete(id uint) error {
	return r.DB.Delete(&models.Message{}, id).Error
}
