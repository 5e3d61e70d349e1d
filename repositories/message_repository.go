package repositories

import "neonchat/models"

type MessageRepository interface {
	Create(message *models.Message) error
	// FindByChannel returns the channel's messages joined with their authors,
	// ascending by timestamp.
	FindByChannel(channelID uint) ([]models.Message, error)
	Delete(id uint) error
}
