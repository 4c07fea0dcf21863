package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/inkpass/internal/auth/domain"
	"github.com/aussiebroadwan/inkpass/internal/auth/service"
	"github.com/aussiebroadwan/inkpass/pkg/authsdk"
	"github.com/aussiebroadwan/inkpass/pkg/httpx"
	"github.com/aussiebroadwan/inkpass/pkg/slogx"
)

// maxLoginBody bounds the login request body.
const maxLoginBody = 64 << 10

// AuthHandler serves /auth/login, /auth/logout and /auth/current.
type AuthHandler struct {
	Sessions *service.SessionService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Checks the username and password and returns a session token. The new token replaces any
//	@Description	earlier session of the same user. Credential failures are reported with HTTP 200 and a
//	@Description	non-200 envelope code; an unknown username and a wrong password give the same message.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest								true	"Credentials"
//	@Success		200		{object}	authsdk.Envelope[authsdk.LoginResponse]				"code 200 with token, or code 400/500 with a message"
//	@Failure		500		{object}	authsdk.APIError									"user store or session registry unavailable"
//	@Header			200		{string}	Cache-Control										"no-store"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authsdk.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&req); err != nil {
		authsdk.ErrInvalidBody.WriteError(w)
		return
	}

	res, err := h.Sessions.Login(r.Context(), req.Username, req.Password, httpx.ClientIP(r))
	if err != nil {
		loginError(err).WriteError(w)
		return
	}

	httpx.WriteOK(w, "ok", loginResponse(res))
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Ends the caller's session. The token stops working immediately.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.Envelope[any]	"logged out"
//	@Failure		401	{object}	authsdk.APIError		"not authenticated"
//	@Failure		500	{object}	authsdk.APIError		"session registry unavailable"
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteUnauthenticated(w)
		return
	}

	if err := h.Sessions.Logout(r.Context(), p.UserID); err != nil {
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteOK(w, "logged out", nil)
}

// HandleCurrent godoc
//
//	@Summary		Current user
//	@Description	Returns the profile of the user the session token belongs to.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.Envelope[authsdk.UserInfo]	"code 200 with the profile, or code 404 if the user no longer exists"
//	@Failure		401	{object}	authsdk.APIError					"not authenticated"
//	@Failure		500	{object}	authsdk.APIError					"user store unavailable"
//	@Router			/auth/current [get].
func (h *AuthHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteUnauthenticated(w)
		return
	}

	info, err := h.Sessions.CurrentUser(ctx, p.UserID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		slogx.FromContext(ctx).Warn("session belongs to a missing user", "user_id", p.UserID)
		authsdk.ErrUserNotFound.WriteError(w)
		return
	case err != nil:
		slogx.FromContext(ctx).Error("failed to load current user", "user_id", p.UserID, "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteOK(w, "ok", userInfo(info))
}

func loginError(err error) *authsdk.APIError {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return authsdk.ErrInvalidRequest
	case errors.Is(err, service.ErrBadCredentials):
		return authsdk.ErrBadCredentials
	case errors.Is(err, service.ErrAccountDisabled):
		return authsdk.ErrAccountDisabled
	default:
		return authsdk.ErrServerError
	}
}

func loginResponse(res domain.LoginResult) authsdk.LoginResponse {
	return authsdk.LoginResponse{
		Token:     res.Token,
		TokenType: res.TokenType,
		ExpiresIn: res.ExpiresIn.Milliseconds(),
		UserInfo:  userInfo(res.User),
	}
}

func userInfo(u domain.UserInfo) authsdk.UserInfo {
	return authsdk.UserInfo{
		ID:            u.ID,
		Username:      u.Username,
		Nickname:      u.Nickname,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Role:          u.Role,
		LastLoginTime: u.LastLoginTime,
	}
}
