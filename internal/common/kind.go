package common

import "errors"

// Kind returns a stable machine-readable name for the error category so
// transports can surface it alongside the human-readable message.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidationFailed):
		return "validation_failed"
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidToken):
		return "unauthenticated"
	case errors.Is(err, ErrNotFoundOrUnauthorized):
		return "not_found_or_unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStorageProvider):
		return "storage_provider_error"
	default:
		return "internal_error"
	}
}
