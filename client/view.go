package client

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"neonchat/models"
)

// View is the channel/message controller behind the messenger screen. It
// keeps the transient copies of channels and messages; the backend remains
// the authority and view state is replaced wholesale on every load, except
// for the optimistic append of a just-sent text message.
type View struct {
	backend Backend
	session *Session
	log     *zap.SugaredLogger

	mu             sync.Mutex
	channels       []models.Channel
	currentChannel uint // 0 when no channel is selected
	messages       []models.Message

	// onMessages fires after every message-list update; the UI hooks its
	// scroll-to-latest behavior here.
	onMessages func([]models.Message)
}

func NewView(backend Backend, session *Session, log *zap.SugaredLogger) *View {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &View{backend: backend, session: session, log: log}
}

func (v *View) SetOnMessages(fn func([]models.Message)) {
	v.onMessages = fn
}

// LoadChannels refreshes the channel list. On the first successful load the
// first returned channel becomes the active selection. Load failures are
// logged and leave prior state intact.
func (v *View) LoadChannels() {
	channels, err := v.backend.ListChannels()
	if err != nil {
		v.log.Errorw("failed to load channels", "error", err)
		return
	}

	v.mu.Lock()
	v.channels = channels
	selectFirst := v.currentChannel == 0 && len(channels) > 0
	var first uint
	if selectFirst {
		first = channels[0].ID
	}
	v.mu.Unlock()

	if selectFirst {
		v.SelectChannel(first)
	}
}

// SelectChannel switches the active channel and reloads its messages,
// replacing prior view state wholesale.
func (v *View) SelectChannel(channelID uint) {
	v.mu.Lock()
	v.currentChannel = channelID
	v.mu.Unlock()

	v.loadMessages(channelID)
}

// loadMessages fetches a channel's messages and publishes them only if that
// channel is still the active one, so a slow response for a channel the user
// already left is discarded instead of clobbering the view.
func (v *View) loadMessages(channelID uint) {
	messages, err := v.backend.ListMessages(channelID)
	if err != nil {
		v.log.Errorw("failed to load messages", "channel_id", channelID, "error", err)
		return
	}

	v.mu.Lock()
	if v.currentChannel != channelID {
		v.mu.Unlock()
		v.log.Debugw("discarding stale message load", "channel_id", channelID)
		return
	}
	v.messages = messages
	snapshot := v.messages
	v.mu.Unlock()

	v.notify(snapshot)
}

func (v *View) notify(messages []models.Message) {
	if v.onMessages != nil {
		v.onMessages(messages)
	}
}

// SendText posts a plain text message and appends the response optimistically.
// Whitespace-only input is silently dropped before any backend call.
func (v *View) SendText(content string) error {
	identity, ok := v.session.Identity()
	if !ok {
		return nil
	}

	v.mu.Lock()
	channelID := v.currentChannel
	v.mu.Unlock()

	if channelID == 0 || strings.TrimSpace(content) == "" {
		return nil
	}

	message, err := v.backend.CreateMessage(channelID, identity.ID, content, models.MessageTypeText)
	if err != nil {
		v.log.Errorw("failed to send message", "error", err)
		return err
	}

	// The creation response carries no user join; fill in the sender so the
	// appended entry renders like a reloaded one.
	if message.User == nil {
		message.User = &models.User{ID: identity.ID, Username: identity.Username, IsAdmin: identity.IsAdmin}
	}

	v.mu.Lock()
	if v.currentChannel != channelID {
		v.mu.Unlock()
		return nil
	}
	v.messages = append(v.messages, message)
	snapshot := v.messages
	v.mu.Unlock()

	v.notify(snapshot)
	return nil
}

// SendImage reads the file, embeds it as a base64 data URL and posts it as an
// image message. Uploads refresh the whole message list instead of appending.
func (v *View) SendImage(file io.Reader, mimeType string) error {
	return v.sendUpload(file, mimeType, models.MessageTypeImage)
}

// SendAudio is the audio counterpart of SendImage.
func (v *View) SendAudio(file io.Reader, mimeType string) error {
	return v.sendUpload(file, mimeType, models.MessageTypeAudio)
}

func (v *View) sendUpload(file io.Reader, mimeType string, messageType models.MessageType) error {
	identity, ok := v.session.Identity()
	if !ok {
		return nil
	}

	v.mu.Lock()
	channelID := v.currentChannel
	v.mu.Unlock()

	if channelID == 0 {
		return nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	content := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	if _, err := v.backend.CreateMessage(channelID, identity.ID, content, messageType); err != nil {
		v.log.Errorw("failed to upload", "type", messageType, "error", err)
		return err
	}

	v.loadMessages(channelID)
	return nil
}

// SendLink posts a URL as a link message. No URL-format validation is
// performed; an empty string (a cancelled prompt) is a no-op.
func (v *View) SendLink(url string) error {
	identity, ok := v.session.Identity()
	if !ok {
		return nil
	}

	v.mu.Lock()
	channelID := v.currentChannel
	v.mu.Unlock()

	if channelID == 0 || url == "" {
		return nil
	}

	if _, err := v.backend.CreateMessage(channelID, identity.ID, url, models.MessageTypeLink); err != nil {
		v.log.Errorw("failed to submit link", "error", err)
		return err
	}

	v.loadMessages(channelID)
	return nil
}

// CreateChannel is gated on the admin role client-side; the server checks
// again on its side. A successful creation reloads the channel list.
func (v *View) CreateChannel(name string) error {
	if !v.session.IsAdmin() {
		return ErrNotAdmin
	}
	if name == "" {
		return nil
	}

	if _, err := v.backend.CreateChannel(name); err != nil {
		v.log.Errorw("failed to create channel", "error", err)
		return err
	}

	v.LoadChannels()
	return nil
}

// Logout clears the identity and all channel/message view state.
func (v *View) Logout() {
	v.session.Logout()

	v.mu.Lock()
	v.channels = nil
	v.currentChannel = 0
	v.messages = nil
	v.mu.Unlock()
}

func (v *View) Channels() []models.Channel {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.channels
}

func (v *View) CurrentChannel() uint {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentChannel
}

func (v *View) Messages() []models.Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.messages
}

// RenderContent maps a message onto the way the UI presents it. The switch is
// exhaustive over MessageType; an unknown tag is an error, not a silent skip.
func RenderContent(message models.Message) (string, error) {
	switch message.Type {
	case models.MessageTypeText:
		return message.Content, nil
	case models.MessageTypeImage:
		return fmt.Sprintf("[image] %d bytes", len(message.Content)), nil
	case models.MessageTypeAudio:
		return fmt.Sprintf("[audio] %d bytes", len(message.Content)), nil
	case models.MessageTypeLink:
		return fmt.Sprintf("[link] %s", message.Content), nil
	default:
		return "", fmt.Errorf("unknown message type %q", message.Type)
	}
}
