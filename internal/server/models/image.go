package models

import "time"

// Image is one photo inside exactly one album. Ownership is derived through
// the parent album's owner; there is no owner column on the image row.
type Image struct {
	ID         string
	AlbumID    string
	ImageURL   string
	AltText    *string
	Caption    *string
	ImageOrder *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
