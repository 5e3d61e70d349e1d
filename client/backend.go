// Package client holds everything that runs on the user's side of the wire:
// the data-access backends, the session/auth gate and the channel/message
// view controller. The two Backend implementations — remote HTTP and local
// store — are interchangeable from the controller's perspective.
package client

import (
	"errors"

	"neonchat/models"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrReservedUsername   = errors.New("this username is not available")
	ErrUsernameTaken      = errors.New("username already exists")
	// ErrInvalidCredentials deliberately covers both unknown username and
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrChannelNameTaken   = errors.New("channel name already exists")
	ErrEmptyMessage       = errors.New("message content is empty")
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrNotAdmin           = errors.New("admin role required")
)

// Backend is the single logical data-access interface the session and view
// controller talk to.
type Backend interface {
	SignUp(username, password string) (models.Identity, error)
	Login(username, password string) (models.Identity, error)
	ChangePassword(username, newPassword string) (models.Identity, error)

	ListChannels() ([]models.Channel, error)
	// ListMessages returns the channel's messages ascending by timestamp,
	// each joined with its author.
	ListMessages(channelID uint) ([]models.Message, error)
	CreateMessage(channelID, userID uint, content string, messageType models.MessageType) (models.Message, error)
	CreateChannel(name string) (models.Channel, error)
}
