package services

import (
	"context"
	"database/sql"
	"fmt"

	"photofolio/internal/server/identity"
	"photofolio/internal/server/models"
	"photofolio/internal/server/repositories/repomanager"
	"photofolio/internal/server/validation"
)

// AlbumService implements album persistence operations.
type AlbumService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	oracle      identity.Oracle
	broker      Invalidator
	store       ObjectStore
}

func NewAlbumService(db *sql.DB, m repomanager.RepositoryManager, oracle identity.Oracle, broker Invalidator, store ObjectStore) *AlbumService {
	return &AlbumService{db: db, repomanager: m, oracle: oracle, broker: broker, store: store}
}

// Create validates the payload and inserts an album owned by the current
// principal.
func (s *AlbumService) Create(ctx context.Context, in validation.AlbumInput) (_ *models.Album, err error) {
	defer s.broker.Invalidate(DashboardPath)

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	in, err = validation.Album(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	repo := s.repomanager.Albums(s.db)
	album, err := repo.Create(ctx, &models.Album{
		OwnerID:       principal.ID,
		Title:         in.Title,
		Description:   in.Description,
		AlbumOrder:    in.AlbumOrder,
		CoverImageURL: in.CoverImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	return album, nil
}

// Get resolves one album. Public display path.
func (s *AlbumService) Get(ctx context.Context, id string) (*models.Album, error) {
	repo := s.repomanager.Albums(s.db)
	album, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	return album, nil
}

// ListByOwner returns a principal's albums in display order. Public display
// path: profile pages list albums without authentication.
func (s *AlbumService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Album, error) {
	repo := s.repomanager.Albums(s.db)
	result, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return result, nil
}

// Update mutates an album owned by the current principal. A zero-row match
// surfaces as the combined not-found/not-authorized error.
func (s *AlbumService) Update(ctx context.Context, id string, in validation.AlbumInput) (_ *models.Album, err error) {
	defer s.broker.Invalidate(DashboardPath, AlbumPath(id))

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update album: %w", err)
	}

	in, err = validation.Album(in)
	if err != nil {
		return nil, fmt.Errorf("failed to update album: %w", err)
	}

	repo := s.repomanager.Albums(s.db)
	album, err := repo.Update(ctx, id, principal.ID, &models.Album{
		Title:         in.Title,
		Description:   in.Description,
		AlbumOrder:    in.AlbumOrder,
		CoverImageURL: in.CoverImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update album: %w", err)
	}
	return album, nil
}

// Delete removes an album owned by the current principal. Child image rows
// go with it via the cascade; the stored binaries are then bulk-deleted by
// the "{id}-" prefix. A storage failure propagates, but the row delete is
// not rolled back: there is no cross-store transaction, and an orphaned
// binary is an acceptable inconsistency for this domain.
func (s *AlbumService) Delete(ctx context.Context, id string) (err error) {
	defer s.broker.Invalidate(DashboardPath, AlbumPath(id))

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	repo := s.repomanager.Albums(s.db)
	if err := repo.Delete(ctx, id, principal.ID); err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	if err := s.store.DeleteAlbumObjects(ctx, id); err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	return nil
}
