package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"neonchat/models"
	"neonchat/services"
)

// ListMessages returns a channel's messages joined with their authors,
// ascending by timestamp.
func ListMessages(c *gin.Context) {
	channelID, err := strconv.Atoi(c.Param("channelId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return
	}

	messages, err := chatService.ListMessages(uint(channelID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateMessage persists one message. The response carries no user join.
func CreateMessage(c *gin.Context) {
	var input struct {
		ChannelID uint   `json:"channelId" binding:"required"`
		UserID    uint   `json:"userId" binding:"required"`
		Content   string `json:"content"`
		Type      string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageType, err := models.ParseMessageType(input.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := chatService.CreateMessage(input.ChannelID, input.UserID, input.Content, messageType)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, message)
}
