package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMessageType(t *testing.T) {
	for _, valid := range []string{"text", "image", "audio", "link"} {
		messageType, err := ParseMessageType(valid)
		assert.NoError(t, err)
		assert.True(t, messageType.Valid())
	}

	for _, invalid := range []string{"", "video", "TEXT", "file"} {
		_, err := ParseMessageType(invalid)
		assert.Error(t, err)
	}
}
