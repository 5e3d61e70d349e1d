package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"neonchat/controllers"
	"neonchat/middlewares"
)

func RegisterRoutes(r *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	// Public routes
	api.POST("/users", controllers.CreateUser)
	api.POST("/users/login", controllers.Login)
	api.GET("/channels", controllers.ListChannels)
	api.GET("/messages/:channelId", controllers.ListMessages)
	api.POST("/messages", controllers.CreateMessage)

	// Account routes
	users := api.Group("/users")
	users.Use(middlewares.AuthMiddleware())
	{
		users.GET("", controllers.ListUsers)
		users.GET("/:username", controllers.GetUser)
		users.PUT("/:username", controllers.UpdateUser)
		users.DELETE("/:username", controllers.DeleteUser)
	}

	// Channel mutations require the admin role
	channels := api.Group("/channels")
	channels.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		channels.POST("", controllers.CreateChannel)
		channels.PUT("/:id", controllers.UpdateChannel)
		channels.DELETE("/:id", controllers.DeleteChannel)
	}
}
