package client

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"neonchat/localstore"
	"neonchat/models"
)

// LocalBackend serves the Backend contract out of the structured local store.
// It performs in-process what the server does remotely: password hashing,
// uniqueness checks and the message/user join.
type LocalBackend struct {
	store *localstore.Store
}

var _ Backend = (*LocalBackend)(nil)

func NewLocalBackend(store *localstore.Store) *LocalBackend {
	return &LocalBackend{store: store}
}

// EnsureAdmin seeds the reserved admin account on first use.
func (b *LocalBackend) EnsureAdmin(password string) error {
	existing, err := b.store.GetUser(models.ReservedAdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = b.store.AddUser(models.User{
		Username: models.ReservedAdminUsername,
		Password: string(hashed),
		IsAdmin:  true,
	})
	return err
}

func (b *LocalBackend) SignUp(username, password string) (models.Identity, error) {
	if username == "" || password == "" {
		return models.Identity{}, ErrMissingCredentials
	}
	if strings.EqualFold(username, models.ReservedAdminUsername) {
		return models.Identity{}, ErrReservedUsername
	}

	existing, err := b.store.GetUser(username)
	if err != nil {
		return models.Identity{}, err
	}
	if existing != nil {
		return models.Identity{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, err
	}

	user := models.User{Username: username, Password: string(hashed)}
	id, err := b.store.AddUser(user)
	if err != nil {
		if localstore.IsConstraint(err) {
			return models.Identity{}, ErrUsernameTaken
		}
		return models.Identity{}, err
	}
	user.ID = id
	return user.Identity(), nil
}

func (b *LocalBackend) Login(username, password string) (models.Identity, error) {
	user, err := b.store.GetUser(username)
	if err != nil {
		return models.Identity{}, err
	}
	if user == nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	return user.Identity(), nil
}

func (b *LocalBackend) ChangePassword(username, newPassword string) (models.Identity, error) {
	user, err := b.store.GetUser(username)
	if err != nil {
		return models.Identity{}, err
	}
	if user == nil {
		return models.Identity{}, ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, err
	}
	user.Password = string(hashed)
	if err := b.store.UpdateUser(*user); err != nil {
		return models.Identity{}, err
	}
	return user.Identity(), nil
}

func (b *LocalBackend) ListChannels() ([]models.Channel, error) {
	return b.store.Channels()
}

func (b *LocalBackend) ListMessages(channelID uint) ([]models.Message, error) {
	messages, err := b.store.Messages(channelID)
	if err != nil {
		return nil, err
	}

	users, err := b.store.AllUsers()
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	for i := range messages {
		if user, ok := byID[messages[i].UserID]; ok {
			joined := models.User{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}
			messages[i].User = &joined
		}
	}

	// The store hands back index order; the contract here is timestamp order.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (b *LocalBackend) CreateMessage(channelID, userID uint, content string, messageType models.MessageType) (models.Message, error) {
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
	id, err := b.store.AddMessage(message)
	if err != nil {
		return models.Message{}, err
	}
	message.ID = id
	return message, nil
}

func (b *LocalBackend) CreateChannel(name string) (models.Channel, error) {
	channel := models.Channel{Name: name}
	id, err := b.store.AddChannel(channel)
	if err != nil {
		if localstore.IsConstraint(err) {
			return models.Channel{}, ErrChannelNameTaken
		}
		return models.Channel{}, err
	}
	channel.ID = id
	return channel, nil
}
