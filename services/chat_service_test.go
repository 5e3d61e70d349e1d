package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"neonchat/models"
	"neonchat/repositories/mocks"
)

func newChatServiceWithMocks() (*ChatService, *mocks.ChannelRepository, *mocks.MessageRepository, *mocks.UserRepository) {
	channelRepo := new(mocks.ChannelRepository)
	messageRepo := new(mocks.MessageRepository)
	userRepo := new(mocks.UserRepository)
	return NewChatService(channelRepo, messageRepo, userRepo), channelRepo, messageRepo, userRepo
}

func TestCreateMessageRejectsWhitespaceText(t *testing.T) {
	chatService, _, messageRepo, _ := newChatServiceWithMocks()

	for _, content := range []string{"", "   ", "\t\n "} {
		_, err := chatService.CreateMessage(1, 1, content, models.MessageTypeText)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	// A whitespace submission never reaches storage.
	messageRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateMessageRejectsUnknownType(t *testing.T) {
	chatService, _, messageRepo, _ := newChatServiceWithMocks()

	_, err := chatService.CreateMessage(1, 1, "hello", models.MessageType("video"))
	assert.ErrorIs(t, err, ErrInvalidMessageType)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateMessageAllowsEmptyNonTextContentRule(t *testing.T) {
	chatService, _, messageRepo, _ := newChatServiceWithMocks()

	messageRepo.On("Create", mock.MatchedBy(func(message *models.Message) bool {
		return message.Type == models.MessageTypeLink && message.Content == "https://example.com"
	})).Return(nil)

	message, err := chatService.CreateMessage(2, 5, "https://example.com", models.MessageTypeLink)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), message.ChannelID)
	assert.Equal(t, uint(5), message.UserID)
	assert.False(t, message.Timestamp.IsZero())
	messageRepo.AssertExpectations(t)
}

func TestCreateTextMessageScenario(t *testing.T) {
	chatService, _, messageRepo, _ := newChatServiceWithMocks()

	messageRepo.On("Create", mock.AnythingOfType("*models.Message")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Message).ID = 1
	}).Return(nil)
	messageRepo.On("FindByChannel", uint(1)).Return([]models.Message{
		{ID: 1, ChannelID: 1, UserID: 1, Content: "hello", Type: models.MessageTypeText, Timestamp: time.Now()},
	}, nil)

	sent, err := chatService.CreateMessage(1, 1, "hello", models.MessageTypeText)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), sent.ID)

	messages, err := chatService.ListMessages(1)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, models.MessageTypeText, messages[0].Type)
	assert.Equal(t, uint(1), messages[0].UserID)
}

func TestListMessagesSortsByTimestamp(t *testing.T) {
	chatService, _, messageRepo, _ := newChatServiceWithMocks()

	base := time.Now()
	messageRepo.On("FindByChannel", uint(1)).Return([]models.Message{
		{ID: 1, Content: "third", Timestamp: base.Add(2 * time.Minute)},
		{ID: 2, Content: "first", Timestamp: base},
		{ID: 3, Content: "second", Timestamp: base.Add(time.Minute)},
	}, nil)

	messages, err := chatService.ListMessages(1)
	assert.NoError(t, err)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].Timestamp.Before(messages[i-1].Timestamp))
	}
	assert.Equal(t, []string{"first", "second", "third"}, []string{messages[0].Content, messages[1].Content, messages[2].Content})
}

func TestCreateChannelRequiresName(t *testing.T) {
	chatService, channelRepo, _, _ := newChatServiceWithMocks()

	_, err := chatService.CreateChannel("   ")
	assert.ErrorIs(t, err, ErrEmptyChannelName)
	channelRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteChannelDelegatesCascade(t *testing.T) {
	chatService, channelRepo, _, _ := newChatServiceWithMocks()

	channelRepo.On("Delete", uint(2)).Return(nil)
	assert.NoError(t, chatService.DeleteChannel(2))
	channelRepo.AssertExpectations(t)
}

func TestListUsersStripsPasswords(t *testing.T) {
	chatService, _, _, userRepo := newChatServiceWithMocks()

	userRepo.On("All").Return([]models.User{
		{ID: 1, Username: "admin", Password: "hash", IsAdmin: true},
		{ID: 2, Username: "bob", Password: "hash", IsAdmin: false},
	}, nil)

	identities, err := chatService.ListUsers()
	assert.NoError(t, err)
	assert.Equal(t, []models.Identity{
		{ID: 1, Username: "admin", IsAdmin: true},
		{ID: 2, Username: "bob", IsAdmin: false},
	}, identities)
}
