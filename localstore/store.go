// Package localstore is the client-resident persistence layer: a single
// SQLite database holding users, channels and messages, mirroring the
// relational schema the server uses.
package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"neonchat/models"
)

// Store owns one SQLite connection. It is created closed; every operation
// opens it on first use, and a second Open while already open is a no-op.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open establishes the connection and creates the schema if absent.
func (s *Store) Open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("failed to open store at %s: %w", s.path, err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			is_admin INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE TABLE IF NOT EXISTS channels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_channels_name ON channels(name)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			channel_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			type TEXT NOT NULL,
			timestamp INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_channel_id ON messages(channel_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_user_id ON messages(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema exec failed: %w", err)
		}
	}
	return nil
}

// IsConstraint reports whether err is a sqlite constraint violation, e.g. a
// duplicate username or channel name.
func IsConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

func (s *Store) AddUser(user models.User) (uint, error) {
	if err := s.Open(); err != nil {
		return 0, err
	}
	res, err := s.db.Exec(
		`INSERT INTO users (username, password, is_admin) VALUES (?, ?, ?)`,
		user.Username, user.Password, user.IsAdmin,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// GetUser looks up a user by username. A missing user is not an error: the
// result is nil, matching an empty index lookup.
func (s *Store) GetUser(username string) (*models.User, error) {
	if err := s.Open(); err != nil {
		return nil, err
	}
	var user models.User
	err := s.db.QueryRow(
		`SELECT id, username, password, is_admin FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password, &user.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *Store) UpdateUser(user models.User) error {
	if err := s.Open(); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`UPDATE users SET username = ?, password = ?, is_admin = ? WHERE id = ?`,
		user.Username, user.Password, user.IsAdmin, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser removes the user record only. Messages the user wrote stay
// behind, orphaned, the same way the server schema leaves them.
func (s *Store) DeleteUser(id uint) error {
	if err := s.Open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *Store) AllUsers() ([]models.User, error) {
	if err := s.Open(); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(`SELECT id, username, password, is_admin FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.IsAdmin); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) AddChannel(channel models.Channel) (uint, error) {
	if err := s.Open(); err != nil {
		return 0, err
	}
	res, err := s.db.Exec(`INSERT INTO channels (name) VALUES (?)`, channel.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to add channel: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (s *Store) Channels() ([]models.Channel, error) {
	if err := s.Open(); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(`SELECT id, name FROM channels`)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		var channel models.Channel
		if err := rows.Scan(&channel.ID, &channel.Name); err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}

func (s *Store) UpdateChannel(channel models.Channel) error {
	if err := s.Open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`UPDATE channels SET name = ? WHERE id = ?`, channel.Name, channel.ID); err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}
	return nil
}

// DeleteChannel removes the channel and every message in it in one
// transaction: either both deletions land or neither does.
func (s *Store) DeleteChannel(id uint) error {
	if err := s.Open(); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin channel delete: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM messages WHERE channel_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete channel messages: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM channels WHERE id = ?`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return tx.Commit()
}

func (s *Store) AddMessage(message models.Message) (uint, error) {
	if err := s.Open(); err != nil {
		return 0, err
	}
	ts := message.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO messages (channel_id, user_id, content, type, timestamp) VALUES (?, ?, ?, ?, ?)`,
		message.ChannelID, message.UserID, message.Content, string(message.Type), ts.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Messages returns every message in the channel in insertion (id) order.
// Callers that need timestamp order sort the result themselves.
func (s *Store) Messages(channelID uint) ([]models.Message, error) {
	if err := s.Open(); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(
		`SELECT id, channel_id, user_id, content, type, timestamp FROM messages WHERE channel_id = ?`,
		channelID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var (
			message models.Message
			typ     string
			tsMilli int64
		)
		if err := rows.Scan(&message.ID, &message.ChannelID, &message.UserID, &message.Content, &typ, &tsMilli); err != nil {
			return nil, err
		}
		message.Type = models.MessageType(typ)
		message.Timestamp = time.UnixMilli(tsMilli)
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func (s *Store) DeleteMessage(id uint) error {
	if err := s.Open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM messages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
