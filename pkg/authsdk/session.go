package authsdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated user. It stops working once the user logs in
// again elsewhere, logs out, or the token expires.
type Session struct {
	client *Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      UserInfo
}

func newSession(c *Client, login *LoginResponse) *Session {
	return &Session{
		client:    c,
		token:     login.Token,
		expiresAt: time.Now().Add(login.Lifetime()),
		user:      login.UserInfo,
	}
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt is the client-side estimate of when the token expires. Zero for
// sessions built from a bare token.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User is the profile returned at login.
func (s *Session) User() UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// CurrentUser calls GET /auth/current.
func (s *Session) CurrentUser(ctx context.Context) (*UserInfo, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/auth/current", s.Token(), nil)
	if err != nil {
		return nil, err
	}

	var info UserInfo
	if err := decodeEnvelope(resp, &info); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = info
	s.mu.Unlock()

	return &info, nil
}

// Logout calls POST /auth/logout. The token is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/auth/logout", s.Token(), nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, nil)
}
