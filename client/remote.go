package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"neonchat/models"
)

// RemoteBackend speaks the server's REST/JSON API. It remembers the session
// token from the last successful signup or login and attaches it to
// subsequent requests.
type RemoteBackend struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

var _ Backend = (*RemoteBackend)(nil)

func NewRemoteBackend(baseURL string) *RemoteBackend {
	return &RemoteBackend{BaseURL: baseURL, HTTP: http.DefaultClient}
}

type identityResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (b *RemoteBackend) do(method, path string, body interface{}, out interface{}) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, b.BaseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return resp.StatusCode, fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return resp.StatusCode, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (b *RemoteBackend) SignUp(username, password string) (models.Identity, error) {
	var resp identityResponse
	status, err := b.do(http.MethodPost, "/api/users", map[string]interface{}{
		"username": username,
		"password": password,
		"isAdmin":  false,
	}, &resp)
	if err != nil {
		if status == http.StatusBadRequest {
			return models.Identity{}, ErrUsernameTaken
		}
		return models.Identity{}, err
	}
	b.token = resp.Token
	return models.Identity{ID: resp.ID, Username: resp.Username, IsAdmin: resp.IsAdmin}, nil
}

func (b *RemoteBackend) Login(username, password string) (models.Identity, error) {
	var resp identityResponse
	status, err := b.do(http.MethodPost, "/api/users/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		if status == http.StatusUnauthorized {
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, err
	}
	b.token = resp.Token
	return models.Identity{ID: resp.ID, Username: resp.Username, IsAdmin: resp.IsAdmin}, nil
}

func (b *RemoteBackend) ChangePassword(username, newPassword string) (models.Identity, error) {
	var identity models.Identity
	if _, err := b.do(http.MethodPut, "/api/users/"+username, map[string]string{
		"password": newPassword,
	}, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

func (b *RemoteBackend) ListChannels() ([]models.Channel, error) {
	var channels []models.Channel
	if _, err := b.do(http.MethodGet, "/api/channels", nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (b *RemoteBackend) ListMessages(channelID uint) ([]models.Message, error) {
	var messages []models.Message
	if _, err := b.do(http.MethodGet, fmt.Sprintf("/api/messages/%d", channelID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (b *RemoteBackend) CreateMessage(channelID, userID uint, content string, messageType models.MessageType) (models.Message, error) {
	var message models.Message
	if _, err := b.do(http.MethodPost, "/api/messages", map[string]interface{}{
		"channelId": channelID,
		"userId":    userID,
		"content":   content,
		"type":      string(messageType),
	}, &message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (b *RemoteBackend) CreateChannel(name string) (models.Channel, error) {
	var channel models.Channel
	status, err := b.do(http.MethodPost, "/api/channels", map[string]string{"name": name}, &channel)
	if err != nil {
		if status == http.StatusBadRequest {
			return models.Channel{}, ErrChannelNameTaken
		}
		if status == http.StatusForbidden {
			return models.Channel{}, ErrNotAdmin
		}
		return models.Channel{}, err
	}
	return channel, nil
}
