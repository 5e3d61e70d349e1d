package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"neonchat/config"
	"neonchat/controllers"
	"neonchat/repositories/impl"
	"neonchat/routes"
	"neonchat/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitLogger()
	config.InitDatabase()

	// Initialize repositories
	userRepo := impl.NewUserRepository(config.DB)
	channelRepo := impl.NewChannelRepository(config.DB)
	messageRepo := impl.NewMessageRepository(config.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	chatService := services.NewChatService(channelRepo, messageRepo, userRepo)

	if err := authService.EnsureAdmin(config.AdminPassword()); err != nil {
		config.Log.Fatalw("failed to seed admin account", "error", err)
	}

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetChatService(chatService)

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		config.Log.Fatalw("server exited", "error", err)
	}
}
