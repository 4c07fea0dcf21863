package authsdk

import (
	"encoding/json"
	"time"
)

// Envelope is the body of every /auth response.
type Envelope[T any] struct {
	Code    int    `json:"code" example:"200"`
	Message string `json:"message" example:"ok"`
	Data    T      `json:"data"`
}

// rawEnvelope defers decoding data until the code is known.
type rawEnvelope = Envelope[json.RawMessage]

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin123"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	// Token is the session token to send as "Authorization: Bearer <token>"
	Token string `json:"token"`

	// TokenType is always "Bearer"
	TokenType string `json:"tokenType" example:"Bearer"`

	// ExpiresIn is the token lifetime in milliseconds
	ExpiresIn int64 `json:"expiresIn" example:"86400000"`

	UserInfo UserInfo `json:"userInfo"`
}

// Lifetime converts ExpiresIn to a duration.
func (r LoginResponse) Lifetime() time.Duration {
	return time.Duration(r.ExpiresIn) * time.Millisecond
}

// UserInfo is the public profile of a user.
type UserInfo struct {
	ID            int64      `json:"id" example:"1"`
	Username      string     `json:"username" example:"admin"`
	Nickname      string     `json:"nickname" example:"Blog Admin"`
	Email         string     `json:"email" example:"admin@example.com"`
	Avatar        string     `json:"avatar"`
	Role          string     `json:"role" example:"admin"`
	LastLoginTime *time.Time `json:"lastLoginTime"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the dependencies /readyz probes.
type HealthChecks struct {
	// Database is the user store
	Database string `json:"database"`

	// Registry is the session registry
	Registry string `json:"registry"`
}
