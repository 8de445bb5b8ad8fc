// Package models defines the data records persisted in the database.
package models

import "time"

// Profile is one user's public identity. It is created once after first
// authentication and mutated only by its owning principal. Profiles are
// never hard-deleted here; account removal is handled by the identity
// provider out of band.
type Profile struct {
	ID          string
	OwnerID     string
	DisplayName string
	Username    string
	Bio         string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
