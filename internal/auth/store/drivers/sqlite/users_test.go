package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/inkpass/internal/auth/domain"
	"github.com/aussiebroadwan/inkpass/internal/auth/store"
	"github.com/aussiebroadwan/inkpass/internal/auth/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))

	version, err := st.SchemaVersion()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
}

func TestSchemaVersion_BeforeMigrations(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	defer st.Close()

	version, err := st.SchemaVersion()
	require.NoError(t, err)
	require.Zero(t, version)
}

func TestUsers_CreateAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	id, err := st.Users().CreateUser(ctx, domain.User{
		Username:     "admin",
		PasswordHash: "$argon2id$dummy",
		Nickname:     "Blog Admin",
		Email:        "admin@example.test",
		Avatar:       "https://example.test/a.png",
		Status:       domain.UserStatusEnabled,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	byName, err := st.Users().GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, id, byName.ID)
	require.Equal(t, "Blog Admin", byName.Nickname)
	require.Equal(t, "admin", byName.Role, "role defaults to admin")
	require.True(t, byName.Status.Enabled())
	require.Nil(t, byName.LastLoginTime)
	require.False(t, byName.CreatedAt.IsZero())

	byID, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, byName, byID)

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestUsers_DisabledStatusRoundTrips(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id, err := st.Users().CreateUser(ctx, domain.User{
		Username:     "banned",
		PasswordHash: "x",
		Status:       domain.UserStatusDisabled,
	})
	require.NoError(t, err)

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusDisabled, u.Status)
	require.False(t, u.Status.Enabled())
}

func TestUsers_NotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByID(ctx, 404)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.Users().UpdateLastLogin(ctx, 404, time.Now(), "127.0.0.1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Users().CreateUser(ctx, domain.User{Username: "admin", PasswordHash: "x", Status: domain.UserStatusEnabled})
	require.NoError(t, err)

	_, err = st.Users().CreateUser(ctx, domain.User{Username: "admin", PasswordHash: "y", Status: domain.UserStatusEnabled})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_UpdateLastLogin(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id, err := st.Users().CreateUser(ctx, domain.User{Username: "admin", PasswordHash: "x", Status: domain.UserStatusEnabled})
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, st.Users().UpdateLastLogin(ctx, id, at, "203.0.113.9"))

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginTime)
	require.True(t, at.Equal(*u.LastLoginTime))
	require.Equal(t, "203.0.113.9", u.LastLoginIP)
}
