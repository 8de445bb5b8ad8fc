package models

import "time"

// Album is an ordered collection of images owned by exactly one principal.
// Deleting an album cascades to its images at the schema level and triggers
// bulk deletion of the stored binaries keyed by the album-id prefix.
type Album struct {
	ID            string
	OwnerID       string
	Title         string
	Description   *string
	AlbumOrder    *int
	CoverImageURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
