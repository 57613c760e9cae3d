package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	require.Nil(t, ToDomainError(nil))

	wrapped := fmt.Errorf("load user: %w", NewNotFound("User"))
	de := ToDomainError(wrapped)
	require.Equal(t, CodeNotFound, de.Code)
	require.Equal(t, "User not found", de.Message)
	require.Equal(t, http.StatusNotFound, de.HTTPStatus)

	cause := errors.New("connection reset")
	de = ToDomainError(cause)
	require.Equal(t, CodeInternal, de.Code)
	require.Equal(t, "Server error", de.Message)
	require.ErrorIs(t, de, cause)
}

func TestValidationErrorDefaults(t *testing.T) {
	err := NewValidationError("", []FieldError{{Path: "email", Message: "is required"}})
	require.True(t, IsCode(err, CodeValidation))
	require.Equal(t, "Validation error", err.Error())

	de := ToDomainError(err)
	require.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	require.Len(t, de.Fields, 1)
}

func TestIsCode(t *testing.T) {
	require.True(t, IsCode(NewForbidden("Access denied: Admin only"), CodeForbidden))
	require.False(t, IsCode(NewForbidden("x"), CodeUnauthorized))
	require.False(t, IsCode(errors.New("plain"), CodeInternal))
}

func TestCodeForStatus(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:            CodeValidation,
		http.StatusRequestEntityTooLarge: CodeValidation,
		http.StatusUnauthorized:          CodeUnauthorized,
		http.StatusForbidden:             CodeForbidden,
		http.StatusNotFound:              CodeNotFound,
		http.StatusMethodNotAllowed:      CodeNotFound,
		http.StatusConflict:              CodeConflict,
		http.StatusServiceUnavailable:    CodeUnavailable,
		http.StatusGatewayTimeout:        CodeUnavailable,
		http.StatusBadGateway:            CodeInternal,
	}
	for status, code := range tests {
		require.Equal(t, code, CodeForStatus(status), "status %d", status)
	}
}

func TestNewUnavailableAgreesWithStatus(t *testing.T) {
	de := ToDomainError(NewUnavailable("Request timed out"))
	require.Equal(t, http.StatusServiceUnavailable, de.HTTPStatus)
	require.Equal(t, CodeForStatus(de.HTTPStatus), de.Code)
}
