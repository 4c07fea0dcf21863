// Package registry holds the single active session token per user. Presence
// and byte equality of the stored token is the only session-liveness check.
package registry

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// DefaultKeyPrefix keeps keys compatible with sessions written by the previous
// blog backend, so a rolling deploy does not log everyone out.
const DefaultKeyPrefix = "blog:user:token:"

var (
	ErrNoSession  = errors.New("registry: no active session")
	ErrInvalidTTL = errors.New("registry: ttl must be positive")
)

// Registry maps a user id to the token of their current session. Every
// operation touches a single key and is atomic on its own; Put overwrites
// unconditionally so the most recent login wins.
type Registry interface {
	// Put stores token as the user's active session for ttl.
	Put(ctx context.Context, userID int64, token string, ttl time.Duration) error

	// Get returns the user's active token, or ErrNoSession.
	Get(ctx context.Context, userID int64) (string, error)

	// Delete removes the user's session. Deleting an absent session is not an error.
	Delete(ctx context.Context, userID int64) error

	Ping(ctx context.Context) error
	Close() error
}

// Key builds the storage key for a user.
func Key(prefix string, userID int64) string {
	return prefix + strconv.FormatInt(userID, 10)
}
