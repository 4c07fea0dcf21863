package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the authentication service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeEnvelope(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Authenticate logs in and wraps the token in a Session.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	login, err := c.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, login), nil
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
