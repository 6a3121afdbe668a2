// Package server provides the HTTP REST API for the microcredential
// recommendation engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// APIError carries the HTTP status a service failure should map to, so
// handlers can translate errors without type switches per case.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func errEmailTaken(email string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("email already registered: %s", email),
	}
}

func errInvalidCredentials() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: "invalid email or password",
	}
}

func errUserNotFound(userID uuid.UUID) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("user not found: %s", userID),
	}
}

func errPasswordMismatch() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: "current password is incorrect",
	}
}

// HTTPStatus maps an error to a response status. Anything that is not
// an APIError is treated as an internal failure.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
