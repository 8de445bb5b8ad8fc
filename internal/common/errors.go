// Package common defines shared sentinel errors used across the server
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrNotFoundOrUnauthorized is returned when an owner-scoped write
	// matched zero rows. The two causes are deliberately conflated so a
	// non-owner cannot probe for resource existence.
	ErrNotFoundOrUnauthorized = errors.New("not found or not authorized")

	// Validation / auth errors.
	ErrValidationFailed = errors.New("invalid data or not authenticated")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidToken     = errors.New("invalid token")

	// ErrStorageProvider wraps any object-storage failure (presign, delete,
	// list). There is no retry policy; the caller sees it immediately.
	ErrStorageProvider = errors.New("storage provider error")

	// ErrInternal covers any other persistence or infrastructure failure.
	ErrInternal = errors.New("internal error")
)
