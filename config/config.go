package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"neonchat/models"
)

var DB *gorm.DB
var Log *zap.SugaredLogger

func InitLogger() {
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	Log = logger.Sugar()
}

func InitDatabase() {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	Log.Infow("connecting to database", "host", host, "user", user, "dbname", dbname, "port", port)

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	// TranslateError maps unique-constraint violations to gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		Log.Fatalw("failed to connect to database", "error", err)
	}

	if err := DB.AutoMigrate(&models.User{}, &models.Channel{}, &models.Message{}); err != nil {
		Log.Fatalw("failed to migrate schema", "error", err)
	}

	Log.Info("successfully connected to database")
}

// AdminPassword is the initial password for the reserved admin account.
func AdminPassword() string {
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		return password
	}
	return "admin123"
}
