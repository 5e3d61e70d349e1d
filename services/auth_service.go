package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"neonchat/models"
	"neonchat/repositories"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrReservedUsername   = errors.New("this username is not available")
	ErrUsernameTaken      = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var jwtKey = []byte(jwtSecret())

func jwtSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "your_secret_key"
}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{Users: users}
}

// SignUp creates a non-admin user and returns its identity with a session
// token. The reserved admin name is rejected in any case combination before
// anything is written.
func (s *AuthService) SignUp(username, password string) (models.Identity, string, error) {
	if username == "" || password == "" {
		return models.Identity{}, "", ErrMissingCredentials
	}
	if strings.EqualFold(username, models.ReservedAdminUsername) {
		return models.Identity{}, "", ErrReservedUsername
	}

	if _, err := s.Users.FindByUsername(username); err == nil {
		return models.Identity{}, "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Identity{}, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, "", err
	}

	user := models.User{Username: username, Password: string(hashed), IsAdmin: false}
	if err := s.Users.Create(&user); err != nil {
		return models.Identity{}, "", err
	}

	token, err := GenerateToken(user)
	if err != nil {
		return models.Identity{}, "", err
	}
	return user.Identity(), token, nil
}

// Login verifies the credentials and returns the identity and a session
// token. The password hash never leaves this method.
func (s *AuthService) Login(username, password string) (models.Identity, string, error) {
	user, err := s.Users.FindByUsername(username)
	if err != nil {
		return models.Identity{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Identity{}, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user)
	if err != nil {
		return models.Identity{}, "", err
	}
	return user.Identity(), token, nil
}

// ChangePassword rehashes and stores a new password for the named user.
func (s *AuthService) ChangePassword(username, newPassword string) (models.Identity, error) {
	user, err := s.Users.FindByUsername(username)
	if err != nil {
		return models.Identity{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, err
	}

	user.Password = string(hashed)
	if err := s.Users.Save(user); err != nil {
		return models.Identity{}, err
	}
	return user.Identity(), nil
}

// EnsureAdmin creates the reserved admin account on first run. Signup can
// never create it, so without this the admin could not exist at all.
func (s *AuthService) EnsureAdmin(password string) error {
	_, err := s.Users.FindByUsername(models.ReservedAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{Username: models.ReservedAdminUsername, Password: string(hashed), IsAdmin: true}
	return s.Users.Create(&admin)
}

func GenerateToken(user models.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
