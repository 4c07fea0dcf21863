package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/inkpass/internal/auth/domain"
	"github.com/aussiebroadwan/inkpass/internal/auth/store"
	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"github.com/aussiebroadwan/inkpass/pkg/slogx"
)

// DefaultAdminUsername is used when no seed username is configured.
const DefaultAdminUsername = "admin"

var ErrBootstrapFailedToCreateAdmin = errors.New("failed to create admin user")

// BootstrapService seeds the first administrator into an empty user store.
type BootstrapService struct {
	Store    store.Store
	Username string
	Password string // empty disables seeding
	Nickname string
}

// EnsureAdmin creates the admin account when the user table is empty and a
// password is configured. It reports whether a user was created.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("bootstrap: check users: %w", err)
	}
	if !empty {
		return false, nil
	}
	if s.Password == "" {
		l.Warn("user store is empty and no admin password is configured; nobody can log in")
		return false, nil
	}

	username := strings.TrimSpace(s.Username)
	if username == "" {
		username = DefaultAdminUsername
	}
	nickname := s.Nickname
	if nickname == "" {
		nickname = username
	}

	hash, err := cryptox.HashPassword(s.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return false, ErrBootstrapFailedToCreateAdmin
	}

	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		Nickname:     nickname,
		Role:         "admin",
		Status:       domain.UserStatusEnabled,
	})
	if err != nil {
		l.Error("failed to create admin user", slog.String("username", username), slog.Any("error", err))
		return false, fmt.Errorf("%w: %w", ErrBootstrapFailedToCreateAdmin, err)
	}

	l.Info("seeded admin user", slog.Int64("user_id", id), slog.String("username", username))
	return true, nil
}
