package models

import (
	"fmt"
	"time"
)

// MessageType tags how Content is interpreted. It is a closed set: dispatch
// switches over it must handle every constant and fail on anything else.
type MessageType string

const (
	MessageTypeText  MessageType = "text"  // plain text
	MessageTypeImage MessageType = "image" // base64 data URL of an image
	MessageTypeAudio MessageType = "audio" // base64 data URL of an audio clip
	MessageTypeLink  MessageType = "link"  // URL string
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeAudio, MessageTypeLink:
		return true
	}
	return false
}

// ParseMessageType converts a wire-level tag into a MessageType.
func ParseMessageType(s string) (MessageType, error) {
	t := MessageType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown message type %q", s)
	}
	return t, nil
}

type Message struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	ChannelID uint        `json:"channelId" gorm:"index;not null"`
	UserID    uint        `json:"userId" gorm:"index;not null"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type" gorm:"not null"`
	Timestamp time.Time   `json:"timestamp" gorm:"index;autoCreateTime"`
	User      *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
