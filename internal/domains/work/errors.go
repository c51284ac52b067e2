package work

import (
	"errors"

	"catalog-backend/internal/infrastructure/storage"
)

var (
	// Validation errors
	ErrNameRequired   = errors.New("work name is required")
	ErrInvalidPayload = errors.New("invalid work payload")

	// Business rule errors
	ErrWorkNotFound = errors.New("work not found")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrWorkNotFound):
		return "WORK_NOT_FOUND"
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
	case errors.Is(err, ErrWorkNotFound):
		return 404
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidPayload):
		return 422
	case errors.Is(err, storage.ErrUnsupportedMediaType):
		return 400
	default:
		return 500
	}
}
