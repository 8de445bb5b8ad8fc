// Package validation normalizes and constrains input records before they
// reach persistence. It is a pure transformation layer: no I/O, no state
// beyond the shared validator instance.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"photofolio/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProfileInput is the untrusted payload for creating or updating a profile.
type ProfileInput struct {
	DisplayName string `json:"displayName" validate:"required,min=2,max=50"`
	Username    string `json:"username" validate:"required,min=2,max=50"`
	Bio         string `json:"bio" validate:"omitempty"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=2000"`
}

// AlbumInput is the untrusted payload for creating or updating an album.
type AlbumInput struct {
	Title         string  `json:"title" validate:"required,min=1"`
	Description   *string `json:"description" validate:"omitempty"`
	AlbumOrder    *int    `json:"albumOrder" validate:"omitempty"`
	CoverImageURL string  `json:"coverImageUrl" validate:"omitempty"`
}

// ImageInput is the untrusted payload for creating or updating an image.
type ImageInput struct {
	ImageURL   string `json:"imageUrl" validate:"required,min=2,max=2000"`
	AltText    string `json:"altText" validate:"required,min=2,max=50"`
	Caption    string `json:"caption" validate:"required,min=2,max=150"`
	ImageOrder *int   `json:"imageOrder" validate:"required"`
}

// Profile normalizes and validates a profile payload. The username is
// trimmed and lower-cased before length checks so the public routing key is
// canonical.
func Profile(in ProfileInput) (ProfileInput, error) {
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if err := validate.Struct(in); err != nil {
		return ProfileInput{}, wrap(err)
	}
	return in, nil
}

// Album validates an album payload.
func Album(in AlbumInput) (AlbumInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validate.Struct(in); err != nil {
		return AlbumInput{}, wrap(err)
	}
	return in, nil
}

// Image validates an image payload.
func Image(in ImageInput) (ImageInput, error) {
	if err := validate.Struct(in); err != nil {
		return ImageInput{}, wrap(err)
	}
	return in, nil
}

// wrap converts validator output into the shared sentinel while keeping
// field-level reasons in the message.
func wrap(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		reasons := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			reasons = append(reasons, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", common.ErrValidationFailed, strings.Join(reasons, "; "))
	}
	return fmt.Errorf("%w: %v", common.ErrValidationFailed, err)
}
