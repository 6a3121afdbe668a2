package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAPIErrorConstructors(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		err     *APIError
		status  int
		message string
	}{
		{
			name:    "email taken",
			err:     errEmailTaken("test@example.com"),
			status:  http.StatusConflict,
			message: "email already registered: test@example.com",
		},
		{
			name:    "invalid credentials",
			err:     errInvalidCredentials(),
			status:  http.StatusUnauthorized,
			message: "invalid email or password",
		},
		{
			name:    "user not found",
			err:     errUserNotFound(userID),
			status:  http.StatusNotFound,
			message: "user not found: " + userID.String(),
		},
		{
			name:    "password mismatch",
			err:     errPasswordMismatch(),
			status:  http.StatusUnauthorized,
			message: "current password is incorrect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("login failed: %w", errInvalidCredentials())
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(wrapped))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(nil))
}
