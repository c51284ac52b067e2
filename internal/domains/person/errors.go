package person

import (
	"errors"

	"catalog-backend/internal/infrastructure/storage"
)

var (
	// Validation errors
	ErrNameRequired   = errors.New("person name is required")
	ErrInvalidPayload = errors.New("invalid person payload")

	// Business rule errors
	ErrPersonNotFound = errors.New("person not found")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPersonNotFound):
		return "PERSON_NOT_FOUND"
	case errors.Is(err, ErrNameRequired):
		return "NAME_REQUIRED"
	case errors.Is(err, ErrInvalidPayload):
		return "INVALID_PAYLOAD"
	case errors.Is(err, storage.ErrUnsupportedMediaType):
		return "UNSUPPORTED_MEDIA_TYPE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPersonNotFound):
		return 404
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidPayload):
		return 422
	case errors.Is(err, storage.ErrUnsupportedMediaType):
		return 400
	default:
		return 500
	}
}
