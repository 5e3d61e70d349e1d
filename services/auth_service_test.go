package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"neonchat/models"
	"neonchat/repositories/mocks"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestSignUpRejectsReservedUsernameAnyCase(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	for _, username := range []string{"admin", "ADMIN", "Admin", "aDmIn"} {
		_, _, err := authService.SignUp(username, "secret")
		assert.ErrorIs(t, err, ErrReservedUsername)
	}

	// Nothing was looked up and nothing was written.
	userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSignUpRejectsEmptyCredentials(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	_, _, err := authService.SignUp("", "secret")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, _, err = authService.SignUp("bob", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSignUpRejectsDuplicateUsername(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	userRepo.On("FindByUsername", "bob").Return(models.User{ID: 1, Username: "bob"}, nil)

	_, _, err := authService.SignUp("bob", "secret")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSignUpCreatesNonAdminAndHashesPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	userRepo.On("FindByUsername", "bob").Return(models.User{}, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.MatchedBy(func(user *models.User) bool {
		if user.Username != "bob" || user.IsAdmin {
			return false
		}
		// The stored password must be a hash of the plaintext, not the
		// plaintext itself.
		return user.Password != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 7
	}).Return(nil)

	identity, token, err := authService.SignUp("bob", "secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), identity.ID)
	assert.Equal(t, "bob", identity.Username)
	assert.False(t, identity.IsAdmin)
	assert.NotEmpty(t, token)
	userRepo.AssertExpectations(t)
}

func TestLoginUnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	userRepo.On("FindByUsername", "ghost").Return(models.User{}, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", "bob").Return(models.User{ID: 1, Username: "bob", Password: hashOf(t, "secret")}, nil)

	_, _, unknownErr := authService.Login("ghost", "whatever")
	_, _, wrongErr := authService.Login("bob", "not-the-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginSuccessReturnsIdentityWithoutHash(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	userRepo.On("FindByUsername", "bob").Return(models.User{ID: 3, Username: "bob", Password: hashOf(t, "secret"), IsAdmin: false}, nil)

	identity, token, err := authService.Login("bob", "secret")
	assert.NoError(t, err)
	assert.Equal(t, models.Identity{ID: 3, Username: "bob", IsAdmin: false}, identity)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
	assert.False(t, claims.IsAdmin)
}

func TestChangePasswordRehashes(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	userRepo.On("FindByUsername", "bob").Return(models.User{ID: 1, Username: "bob", Password: hashOf(t, "old")}, nil)
	userRepo.On("Save", mock.MatchedBy(func(user models.User) bool {
		return user.Password != "new" &&
			bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new")) == nil
	})).Return(nil)

	identity, err := authService.ChangePassword("bob", "new")
	assert.NoError(t, err)
	assert.Equal(t, "bob", identity.Username)
	userRepo.AssertExpectations(t)
}

func TestEnsureAdminCreatesOnlyWhenMissing(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	userRepo.On("FindByUsername", models.ReservedAdminUsername).Return(models.User{}, gorm.ErrRecordNotFound).Once()
	userRepo.On("Create", mock.MatchedBy(func(user *models.User) bool {
		return user.Username == models.ReservedAdminUsername && user.IsAdmin
	})).Return(nil).Once()

	assert.NoError(t, authService.EnsureAdmin("admin123"))

	userRepo.On("FindByUsername", models.ReservedAdminUsername).Return(models.User{ID: 1, Username: models.ReservedAdminUsername, IsAdmin: true}, nil).Once()
	assert.NoError(t, authService.EnsureAdmin("admin123"))

	userRepo.AssertExpectations(t)
	userRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestEnsureAdminPropagatesLookupFailure(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := NewAuthService(userRepo)

	boom := errors.New("connection refused")
	userRepo.On("FindByUsername", models.ReservedAdminUsername).Return(models.User{}, boom)

	assert.ErrorIs(t, authService.EnsureAdmin("admin123"), boom)
}
