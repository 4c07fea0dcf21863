package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is the session token lifetime used when none is configured.
// It is also the registry TTL, so the two must always come from the same value.
const DefaultLifetime = 24 * time.Hour

// Claims are the session-token claims. The subject carries the numeric user
// id in decimal form.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user at issuance time
	Username string `json:"username"`
}

// NewSessionClaims builds claims for a freshly issued session token.
func NewSessionClaims(
	userID int64,
	username string,
	issuer string,
	lifetime time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        NewJTI(),
		},
		Username: username,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. Two logins
// within the same second would otherwise produce byte-identical tokens.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// Identity is what a verified token asserts.
type Identity struct {
	UserID    int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (c *Claims) identity() (Identity, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, ErrInvalidClaim
	}

	id := Identity{
		UserID:   userID,
		Username: c.Username,
	}
	if c.IssuedAt != nil {
		id.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id, nil
}
