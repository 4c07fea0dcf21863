//go:build e2e

package auth_test

import (
	"testing"

	"github.com/aussiebroadwan/inkpass/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle logs the seeded admin in, reads the profile and logs out.
func TestSessionLifecycle(t *testing.T) {
	client := setupAuthContainer(t)
	ctx := t.Context()

	session, err := client.Authenticate(ctx, adminUsername, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	require.Equal(t, adminUsername, session.User().Username)

	user, err := session.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, adminUsername, user.Username)
	require.NotNil(t, user.LastLoginTime)

	require.NoError(t, session.Logout(ctx))

	_, err = session.CurrentUser(ctx)
	require.ErrorIs(t, err, authsdk.ErrNotAuthenticated)
}

// TestSingleActiveSession checks that a second login revokes the first token.
func TestSingleActiveSession(t *testing.T) {
	client := setupAuthContainer(t)
	ctx := t.Context()

	first, err := client.Authenticate(ctx, adminUsername, adminPassword)
	require.NoError(t, err)
	second, err := client.Authenticate(ctx, adminUsername, adminPassword)
	require.NoError(t, err)

	_, err = first.CurrentUser(ctx)
	require.ErrorIs(t, err, authsdk.ErrNotAuthenticated)

	_, err = second.CurrentUser(ctx)
	require.NoError(t, err)
}

func TestInvalidCredentials(t *testing.T) {
	client := setupAuthContainer(t)
	ctx := t.Context()

	_, err := client.Login(ctx, adminUsername, "wrong-password")
	require.ErrorIs(t, err, authsdk.ErrBadCredentials)

	_, err = client.Login(ctx, "nobody", adminPassword)
	require.ErrorIs(t, err, authsdk.ErrBadCredentials)

	_, err = client.Login(ctx, "", "")
	require.ErrorIs(t, err, authsdk.ErrInvalidRequest)
}

func TestInvalidAccessToken(t *testing.T) {
	client := setupAuthContainer(t)

	_, err := client.NewSessionFromToken("invalid-token-12345").CurrentUser(t.Context())
	require.ErrorIs(t, err, authsdk.ErrNotAuthenticated)
}
