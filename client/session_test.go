package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neonchat/models"
)

func TestSignUpReservedNameNeverReachesBackend(t *testing.T) {
	backend := newFakeBackend()
	session := NewSession(backend)

	for _, username := range []string{"admin", "ADMIN", "AdMiN"} {
		assert.ErrorIs(t, session.SignUp(username, "pw"), ErrReservedUsername)
	}

	assert.Empty(t, backend.users)
	assert.False(t, session.LoggedIn())
}

func TestSignUpAndLoginRequireCredentials(t *testing.T) {
	backend := newFakeBackend()
	session := NewSession(backend)

	assert.ErrorIs(t, session.SignUp("", "pw"), ErrMissingCredentials)
	assert.ErrorIs(t, session.SignUp("bob", ""), ErrMissingCredentials)
	assert.ErrorIs(t, session.Login("", "pw"), ErrMissingCredentials)
	assert.ErrorIs(t, session.Login("bob", ""), ErrMissingCredentials)
}

func TestSignUpEstablishesIdentity(t *testing.T) {
	backend := newFakeBackend()
	session := NewSession(backend)

	assert.NoError(t, session.SignUp("bob", "pw"))
	identity, ok := session.Identity()
	assert.True(t, ok)
	assert.Equal(t, "bob", identity.Username)
	assert.False(t, identity.IsAdmin)
	assert.False(t, session.AdminPanelOpen())
}

func TestAdminLoginOpensPanelAndLogoutResets(t *testing.T) {
	backend := newFakeBackend()
	backend.users[models.ReservedAdminUsername] = "admin123"
	session := NewSession(backend)

	assert.NoError(t, session.Login(models.ReservedAdminUsername, "admin123"))
	assert.True(t, session.IsAdmin())
	assert.True(t, session.AdminPanelOpen())

	session.ToggleAdminPanel()
	assert.False(t, session.AdminPanelOpen())

	// The panel state does not survive logout/login.
	session.ToggleAdminPanel()
	session.Logout()
	assert.False(t, session.LoggedIn())
	assert.False(t, session.AdminPanelOpen())
	_, ok := session.Identity()
	assert.False(t, ok)
}

func TestTogglingPanelIsInertForMembers(t *testing.T) {
	backend := newFakeBackend()
	backend.users["bob"] = "pw"
	session := NewSession(backend)

	assert.NoError(t, session.Login("bob", "pw"))
	session.ToggleAdminPanel()
	assert.False(t, session.AdminPanelOpen())
}
