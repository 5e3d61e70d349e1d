package models

// ReservedAdminUsername is the administrative account name. Signup rejects it
// case-insensitively so nobody can squat the admin identity.
const ReservedAdminUsername = "admin"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never the plaintext
	IsAdmin  bool   `json:"isAdmin"`
}

// Identity is the view of a user that crosses the auth boundary. The password
// hash stays behind it.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
