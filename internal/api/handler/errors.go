package handler

import (
	"net/http"

	"github.com/arenahq/arena/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeValidationFailed   = apierr.CodeValidationFailed
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeEmailExists        = apierr.CodeEmailExists
	CodeInvalidRole        = apierr.CodeInvalidRole
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeGameNotFound       = apierr.CodeGameNotFound
	CodeTournamentNotFound = apierr.CodeTournamentNotFound
	CodeMatchNotFound      = apierr.CodeMatchNotFound
	CodeTournamentFull     = apierr.CodeTournamentFull
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewValidationError creates a form-validation error
func NewValidationError(message string) error {
	return apierr.NewValidationError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) error {
	return apierr.NewForbiddenError(message)
}
