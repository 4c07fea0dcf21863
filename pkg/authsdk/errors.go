package authsdk

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/inkpass/pkg/httpx"
)

// APIError is a failed envelope. The server writes it with WriteError and the
// client returns it from every call.
type APIError struct {
	// StatusCode is the HTTP status. Business failures travel as 200.
	StatusCode int `json:"-"`

	// Code is the envelope code (400, 401, 404, 500, ...)
	Code int `json:"code"`

	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Is matches on code and message, so a decoded error matches the predefined
// value it was written from.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WriteError writes the error as an envelope with a null data field.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteEnvelope(w, e.StatusCode, httpx.Envelope{
		Code:    e.Code,
		Message: e.Message,
	})
}

var (
	// ErrInvalidRequest is returned when username or password is blank.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusOK,
		Code:       http.StatusBadRequest,
		Message:    "username and password are required",
	}

	// ErrInvalidBody is returned when the login body is not JSON.
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusOK,
		Code:       http.StatusBadRequest,
		Message:    "invalid request body",
	}

	// ErrBadCredentials covers both an unknown username and a wrong password.
	ErrBadCredentials = &APIError{
		StatusCode: http.StatusOK,
		Code:       http.StatusInternalServerError,
		Message:    "invalid username or password",
	}

	// ErrAccountDisabled is returned when the credentials match a disabled account.
	ErrAccountDisabled = &APIError{
		StatusCode: http.StatusOK,
		Code:       http.StatusInternalServerError,
		Message:    "account is disabled",
	}

	// ErrNotAuthenticated is returned when the token is missing, invalid,
	// expired, logged out or superseded by a newer login.
	ErrNotAuthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       http.StatusUnauthorized,
		Message:    "not authenticated",
	}

	// ErrUserNotFound is returned when a live session outlived its user.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusOK,
		Code:       http.StatusNotFound,
		Message:    "user not found",
	}

	// ErrServerError is returned when the user store or the session registry failed.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       http.StatusInternalServerError,
		Message:    "internal server error",
	}
)
