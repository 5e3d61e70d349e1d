package repositories

import "neonchat/models"

type ChannelRepository interface {
	Create(channel *models.Channel) error
	All() ([]models.Channel, error)
	FindByID(id uint) (models.Channel, error)
	Save(channel models.Channel) error
	// Delete removes the channel and all of its messages atomically.
	Delete(id uint) error
}
