package client

import (
	"strings"

	"neonchat/models"
)

// Session is the auth gate. It owns the active identity and the admin-panel
// sub-state, and validates credentials before anything reaches the backend.
//
// State machine: LoggedOut --login/signup--> LoggedIn --logout--> LoggedOut.
// The admin panel is a sub-state of LoggedIn(admin) and does not survive
// logout.
type Session struct {
	backend Backend

	identity       *models.Identity
	adminPanelOpen bool
}

func NewSession(backend Backend) *Session {
	return &Session{backend: backend}
}

func (s *Session) SignUp(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if strings.EqualFold(username, models.ReservedAdminUsername) {
		return ErrReservedUsername
	}

	identity, err := s.backend.SignUp(username, password)
	if err != nil {
		return err
	}
	s.identity = &identity
	return nil
}

func (s *Session) Login(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	identity, err := s.backend.Login(username, password)
	if err != nil {
		return err
	}
	s.identity = &identity
	// Admins land with the panel already open.
	s.adminPanelOpen = identity.IsAdmin
	return nil
}

// Logout returns the session to the unauthenticated entry state.
func (s *Session) Logout() {
	s.identity = nil
	s.adminPanelOpen = false
}

func (s *Session) LoggedIn() bool {
	return s.identity != nil
}

// Identity returns the active identity; ok is false when logged out.
func (s *Session) Identity() (models.Identity, bool) {
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) IsAdmin() bool {
	return s.identity != nil && s.identity.IsAdmin
}

func (s *Session) AdminPanelOpen() bool {
	return s.adminPanelOpen
}

// ToggleAdminPanel flips the panel for admins; it is inert for everyone else.
func (s *Session) ToggleAdminPanel() {
	if !s.IsAdmin() {
		return
	}
	s.adminPanelOpen = !s.adminPanelOpen
}
