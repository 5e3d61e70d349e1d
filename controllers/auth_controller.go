package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neonchat/services"
)

var authService *services.AuthService

func SetAuthService(service *services.AuthService) {
	authService = service
}

// CreateUser handles signup. The isAdmin field is accepted for wire
// compatibility but ignored: signup only ever creates regular members.
func CreateUser(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		IsAdmin  bool   `json:"isAdmin"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, token, err := authService.SignUp(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrReservedUsername),
			errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       identity.ID,
		"username": identity.Username,
		"isAdmin":  identity.IsAdmin,
		"token":    token,
	})
}

// Login returns the identity and a session token, or a single generic error
// that does not reveal whether the username exists.
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, token, err := authService.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       identity.ID,
		"username": identity.Username,
		"isAdmin":  identity.IsAdmin,
		"token":    token,
	})
}
