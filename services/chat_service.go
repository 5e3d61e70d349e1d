package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"neonchat/models"
	"neonchat/repositories"
)

var (
	ErrEmptyMessage       = errors.New("message content is empty")
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrEmptyChannelName   = errors.New("channel name is required")
)

type ChatService struct {
	Channels repositories.ChannelRepository
	Messages repositories.MessageRepository
	Users    repositories.UserRepository
}

func NewChatService(channels repositories.ChannelRepository, messages repositories.MessageRepository, users repositories.UserRepository) *ChatService {
	return &ChatService{Channels: channels, Messages: messages, Users: users}
}

func (s *ChatService) ListChannels() ([]models.Channel, error) {
	return s.Channels.All()
}

// ListMessages returns the channel's messages joined with their authors in
// non-decreasing timestamp order. The backing index does not guarantee that
// order by itself, so it is imposed here.
func (s *ChatService) ListMessages(channelID uint) ([]models.Message, error) {
	messages, err := s.Messages.FindByChannel(channelID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

// CreateMessage validates and persists one message. Text messages that are
// empty after trimming are rejected before any storage call.
func (s *ChatService) CreateMessage(channelID, userID uint, content string, messageType models.MessageType) (models.Message, error) {
	if !messageType.Valid() {
		return models.Message{}, ErrInvalidMessageType
	}
	if messageType == models.MessageTypeText && strings.TrimSpace(content) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	message := models.Message{
		ChannelID: channelID,
		UserID:    userID,
		Content:   content,
		Type:      messageType,
		Timestamp: time.Now(),
	}
	if err := s.Messages.Create(&message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (s *ChatService) CreateChannel(name string) (models.Channel, error) {
	if strings.TrimSpace(name) == "" {
		return models.Channel{}, ErrEmptyChannelName
	}
	channel := models.Channel{Name: name}
	if err := s.Channels.Create(&channel); err != nil {
		return models.Channel{}, err
	}
	return channel, nil
}

func (s *ChatService) UpdateChannel(id uint, name string) (models.Channel, error) {
	channel, err := s.Channels.FindByID(id)
	if err != nil {
		return models.Channel{}, err
	}
	channel.Name = name
	if err := s.Channels.Save(channel); err != nil {
		return models.Channel{}, err
	}
	return channel, nil
}

// DeleteChannel removes the channel and all of its messages; the repository
// guarantees both happen in one transaction.
func (s *ChatService) DeleteChannel(id uint) error {
	return s.Channels.Delete(id)
}

func (s *ChatService) DeleteMessage(id uint) error {
	return s.Messages.Delete(id)
}

// ListUsers returns every user without their password hashes.
func (s *ChatService) ListUsers() ([]models.Identity, error) {
	users, err := s.Users.All()
	if err != nil {
		return nil, err
	}
	identities := make([]models.Identity, 0, len(users))
	for _, user := range users {
		identities = append(identities, user.Identity())
	}
	return identities, nil
}
