package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/inkpass/internal/auth/domain"
	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_EnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("no password configured seeds nothing", func(t *testing.T) {
		b := &BootstrapService{Store: f.store}
		created, err := b.EnsureAdmin(ctx)
		require.NoError(t, err)
		require.False(t, created)

		empty, err := f.store.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("seeds an enabled admin that can log in", func(t *testing.T) {
		b := &BootstrapService{Store: f.store, Password: "admin123"}
		created, err := b.EnsureAdmin(ctx)
		require.NoError(t, err)
		require.True(t, created)

		u, err := f.store.Users().GetUserByUsername(ctx, DefaultAdminUsername)
		require.NoError(t, err)
		require.Equal(t, domain.UserStatusEnabled, u.Status)
		require.NoError(t, cryptox.VerifyPassword("admin123", u.PasswordHash))

		res, err := f.svc.Login(ctx, DefaultAdminUsername, "admin123", "")
		require.NoError(t, err)
		require.Equal(t, DefaultAdminUsername, res.User.Username)
	})

	t.Run("non-empty store is left alone", func(t *testing.T) {
		b := &BootstrapService{Store: f.store, Username: "root", Password: "other"}
		created, err := b.EnsureAdmin(ctx)
		require.NoError(t, err)
		require.False(t, created)
	})
}
