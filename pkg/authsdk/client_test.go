package authsdk_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/inkpass/pkg/authsdk"
	"github.com/aussiebroadwan/inkpass/pkg/httpx"
	"github.com/stretchr/testify/require"
)

// fakeServer mimics the envelope behaviour of the real service for a single
// user "admin"/"admin123" holding token "tok".
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req authsdk.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if req.Username != "admin" || req.Password != "admin123" {
			authsdk.ErrBadCredentials.WriteError(w)
			return
		}
		httpx.WriteOK(w, "ok", authsdk.LoginResponse{
			Token:     "tok",
			TokenType: "Bearer",
			ExpiresIn: 3_600_000,
			UserInfo:  authsdk.UserInfo{ID: 1, Username: "admin"},
		})
	})

	mux.HandleFunc("GET /auth/current", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			authsdk.ErrNotAuthenticated.WriteError(w)
			return
		}
		httpx.WriteOK(w, "ok", authsdk.UserInfo{ID: 1, Username: "admin", Nickname: "Boss"})
	})

	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			authsdk.ErrNotAuthenticated.WriteError(w)
			return
		}
		httpx.WriteOK(w, "logged out", nil)
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, authsdk.HealthResponse{Status: "degraded"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Authenticate(t *testing.T) {
	srv := fakeServer(t)
	client := authsdk.NewClient(srv.URL + "/")
	ctx := t.Context()

	before := time.Now()
	session, err := client.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.Equal(t, "admin", session.User().Username)
	require.WithinDuration(t, before.Add(time.Hour), session.ExpiresAt(), 5*time.Second)

	me, err := session.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "Boss", me.Nickname)
	require.Equal(t, "Boss", session.User().Nickname)

	require.NoError(t, session.Logout(ctx))
}

func TestClient_Errors(t *testing.T) {
	srv := fakeServer(t)
	client := authsdk.NewClient(srv.URL)
	ctx := t.Context()

	t.Run("bad credentials", func(t *testing.T) {
		_, err := client.Login(ctx, "admin", "nope")
		require.ErrorIs(t, err, authsdk.ErrBadCredentials)

		var apiErr *authsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusOK, apiErr.StatusCode)
		require.Equal(t, http.StatusInternalServerError, apiErr.Code)
	})

	t.Run("stale token", func(t *testing.T) {
		_, err := client.NewSessionFromToken("old").CurrentUser(ctx)
		require.ErrorIs(t, err, authsdk.ErrNotAuthenticated)
		require.NotErrorIs(t, err, authsdk.ErrUserNotFound)
	})

	t.Run("readiness failure", func(t *testing.T) {
		_, err := client.GetReadiness(ctx)
		var apiErr *authsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})
}
