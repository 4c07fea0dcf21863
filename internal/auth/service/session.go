package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/inkpass/internal/auth/domain"
	"github.com/aussiebroadwan/inkpass/internal/auth/metrics"
	"github.com/aussiebroadwan/inkpass/internal/auth/registry"
	"github.com/aussiebroadwan/inkpass/internal/auth/store"
	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"github.com/aussiebroadwan/inkpass/pkg/httpx"
	"github.com/aussiebroadwan/inkpass/pkg/jwtx"
	"github.com/aussiebroadwan/inkpass/pkg/slogx"
)

// DefaultPrincipalRole is the single role every authenticated principal holds.
const DefaultPrincipalRole = "ROLE_ADMIN"

// TokenCodec issues and verifies session tokens. *jwtx.Codec implements it.
type TokenCodec interface {
	Issue(userID int64, username string, lifetime time.Duration) (string, error)
	Verify(token string) (jwtx.Identity, error)
	Lifetime() time.Duration
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) bool
}

// SessionService is the single place sessions are created, checked and ended.
// A login overwrites the user's registry entry, which is what retires every
// token issued before it.
type SessionService struct {
	Store     store.Store
	Codec     TokenCodec
	Registry  registry.Registry
	Passwords PasswordVerifier

	// Role given to every principal (default: DefaultPrincipalRole)
	Role string

	Metrics *metrics.Metrics // optional
	Now     func() time.Time // optional, defaults to time.Now
}

var _ httpx.Authenticator = (*SessionService)(nil)

// Login checks the credentials, issues a token and makes it the user's only
// active session. The last-login stamp is best effort.
//
// Returns:
//   - ErrInvalidRequest when username or password is blank
//   - ErrBadCredentials for an unknown user or a wrong password
//   - ErrAccountDisabled when the password matched a disabled account
//   - ErrInfrastructure when the user store or the registry failed
func (s *SessionService) Login(ctx context.Context, username, password, clientIP string) (domain.LoginResult, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.LoginResult{}, ErrInvalidRequest
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login rejected", "username", username, "reason", "unknown user")
			s.Metrics.RecordLogin(metrics.LoginBadCredentials)
			return domain.LoginResult{}, ErrBadCredentials
		}
		log.Error("login: user lookup failed", "error", err)
		s.Metrics.RecordLogin(metrics.LoginError)
		return domain.LoginResult{}, fmt.Errorf("%w: user lookup: %w", ErrInfrastructure, err)
	}

	if !s.Passwords.Verify(password, user.PasswordHash) {
		log.Info("login rejected", "username", username, "reason", "wrong password")
		s.Metrics.RecordLogin(metrics.LoginBadCredentials)
		return domain.LoginResult{}, ErrBadCredentials
	}

	if !user.Status.Enabled() {
		log.Info("login rejected", "user_id", user.ID, "reason", "account disabled")
		s.Metrics.RecordLogin(metrics.LoginDisabled)
		return domain.LoginResult{}, ErrAccountDisabled
	}

	lifetime := s.Codec.Lifetime()
	token, err := s.Codec.Issue(user.ID, user.Username, lifetime)
	if err != nil {
		s.Metrics.RecordLogin(metrics.LoginError)
		return domain.LoginResult{}, fmt.Errorf("%w: issue token: %w", ErrInfrastructure, err)
	}

	// A token the registry never saw would be rejected on first use, so a
	// failed write fails the login.
	if err := s.Registry.Put(ctx, user.ID, token, lifetime); err != nil {
		log.Error("login: registry write failed", "user_id", user.ID, "error", err)
		s.Metrics.RecordLogin(metrics.LoginError)
		return domain.LoginResult{}, fmt.Errorf("%w: registry put: %w", ErrInfrastructure, err)
	}

	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID, s.now().UTC(), clientIP); err != nil {
		log.Warn("login: failed to record last login", "user_id", user.ID, "error", err)
	}

	log.Info("login succeeded",
		slog.Int64("user_id", user.ID),
		slog.String("token_fp", cryptox.ShortFingerprint(token)),
		slog.String("client_ip", clientIP),
	)
	s.Metrics.RecordLogin(metrics.LoginSuccess)

	return domain.LoginResult{
		Token:     token,
		TokenType: domain.TokenTypeBearer,
		ExpiresIn: lifetime,
		User:      user.Info(),
	}, nil
}

// Logout ends the user's session. Logging out twice is not an error.
func (s *SessionService) Logout(ctx context.Context, userID int64) error {
	if err := s.Registry.Delete(ctx, userID); err != nil {
		slogx.FromContext(ctx).Error("logout: registry delete failed", "user_id", userID, "error", err)
		return fmt.Errorf("%w: registry delete: %w", ErrInfrastructure, err)
	}

	slogx.FromContext(ctx).Info("logged out", "user_id", userID)
	s.Metrics.RecordLogout()
	return nil
}

// Authenticate accepts token iff it verifies, has not expired and is
// byte-equal to the user's registry entry.
func (s *SessionService) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	id, err := s.Codec.Verify(token)
	if err != nil {
		s.Metrics.RecordDecision(metrics.DecisionTokenInvalid)
		return httpx.Principal{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	current, err := s.Registry.Get(ctx, id.UserID)
	switch {
	case errors.Is(err, registry.ErrNoSession):
		s.Metrics.RecordDecision(metrics.DecisionSessionSuperseded)
		return httpx.Principal{}, ErrSessionSuperseded
	case err != nil:
		s.Metrics.RecordDecision(metrics.DecisionRegistryError)
		return httpx.Principal{}, fmt.Errorf("%w: registry get: %w", ErrInfrastructure, err)
	}

	if subtle.ConstantTimeCompare([]byte(current), []byte(token)) != 1 {
		slogx.FromContext(ctx).Debug("token superseded by a newer login",
			"user_id", id.UserID,
			"token_fp", cryptox.ShortFingerprint(token),
		)
		s.Metrics.RecordDecision(metrics.DecisionSessionSuperseded)
		return httpx.Principal{}, ErrSessionSuperseded
	}

	s.Metrics.RecordDecision(metrics.DecisionAuthenticated)
	return httpx.Principal{
		UserID:   id.UserID,
		Username: id.Username,
		Roles:    []string{s.role()},
	}, nil
}

func (s *SessionService) role() string {
	if s.Role == "" {
		return DefaultPrincipalRole
	}
	return s.Role
}

func (s *SessionService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
