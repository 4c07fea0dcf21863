package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inkpass/internal/auth/domain"
	"github.com/aussiebroadwan/inkpass/internal/auth/store"
)

// CurrentUser returns the profile of an authenticated user. A session that
// outlived its user record yields ErrUserNotFound, not an auth failure.
func (s *SessionService) CurrentUser(ctx context.Context, userID int64) (domain.UserInfo, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserInfo{}, ErrUserNotFound
		}
		return domain.UserInfo{}, fmt.Errorf("%w: user lookup: %w", ErrInfrastructure, err)
	}
	return u.Info(), nil
}
