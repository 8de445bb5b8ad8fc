// Package services contains the server-side persistence operations: each
// method authorizes against the identity oracle, validates input, performs a
// single read/write through the repositories, and signals view invalidation
// for the affected paths. Invalidation is deferred, so it fires on every
// exit path including errors; a partially failed write may still require a
// UI refresh.
package services

import (
	"context"

	"photofolio/internal/server/revalidate"
	"photofolio/internal/server/storage"
)

// ObjectStore is the slice of the storage gateway the services use.
// Satisfied by *storage.Gateway and by test fakes.
type ObjectStore interface {
	CreateUploadGrant(ctx context.Context, fileBaseName, contentType, albumID string) (*storage.UploadGrant, error)
	DeleteObjectByURL(ctx context.Context, publicURL string) error
	DeleteAlbumObjects(ctx context.Context, albumID string) error
}

// Invalidator is the revalidation broker surface the services use.
// Satisfied by *revalidate.Broker.
type Invalidator interface {
	Invalidate(paths ...string)
}

var _ Invalidator = (*revalidate.Broker)(nil)
var _ ObjectStore = (*storage.Gateway)(nil)
