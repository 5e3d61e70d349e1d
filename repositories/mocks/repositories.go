// Package mocks provides testify mocks of the repository interfaces for
// service-level tests.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"neonchat/models"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) FindByUsername(username string) (models.User, error) {
	args := m.Called(username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) FindByID(id uint) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) All() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *UserRepository) Save(user models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) DeleteByUsername(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

type ChannelRepository struct {
	mock.Mock
}

func (m *ChannelRepository) Create(channel *models.Channel) error {
	args := m.Called(channel)
	return args.Error(0)
}

func (m *ChannelRepository) All() ([]models.Channel, error) {
	args := m.Called()
	return args.Get(0).([]models.Channel), args.Error(1)
}

func (m *ChannelRepository) FindByID(id uint) (models.Channel, error) {
	args := m.Called(id)
	return args.Get(0).(models.Channel), args.Error(1)
}

func (m *ChannelRepository) Save(channel models.Channel) error {
	args := m.Called(channel)
	return args.Error(0)
}

func (m *ChannelRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MessageRepository) FindByChannel(channelID uint) ([]models.Message, error) {
	args := m.Called(channelID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MessageRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
