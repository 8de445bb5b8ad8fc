package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrValidationFailed, "validation_failed"},
		{ErrUnauthenticated, "unauthenticated"},
		{ErrInvalidToken, "unauthenticated"},
		{ErrNotFoundOrUnauthorized, "not_found_or_unauthorized"},
		{ErrNotFound, "not_found"},
		{ErrStorageProvider, "storage_provider_error"},
		{errors.New("boom"), "internal_error"},
	}
	for _, tc := range tests {
		if got := Kind(tc.err); got != tc.want {
			t.Errorf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestKind_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to update album: %w", ErrNotFoundOrUnauthorized)
	if got := Kind(err); got != "not_found_or_unauthorized" {
		t.Errorf("Kind(wrapped) = %q, want not_found_or_unauthorized", got)
	}
}
