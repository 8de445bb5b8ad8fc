package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photofolio/internal/common"
	"photofolio/internal/server/identity"
	"photofolio/internal/server/models"
	"photofolio/internal/server/repositories/repomanager"
	"photofolio/internal/server/validation"
)

// ImageService implements image persistence operations. Image ownership is
// transitive: every mutation is authorized against the parent album's owner.
type ImageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	oracle      identity.Oracle
	broker      Invalidator
	store       ObjectStore
}

func NewImageService(db *sql.DB, m repomanager.RepositoryManager, oracle identity.Oracle, broker Invalidator, store ObjectStore) *ImageService {
	return &ImageService{db: db, repomanager: m, oracle: oracle, broker: broker, store: store}
}

// Create validates the payload, checks that the current principal owns the
// target album, and inserts the image. A missing album and a foreign album
// are reported identically.
func (s *ImageService) Create(ctx context.Context, albumID string, in validation.ImageInput) (_ *models.Image, err error) {
	defer s.broker.Invalidate(DashboardPath, AlbumPath(albumID))

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	in, err = validation.Image(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	album, err := s.repomanager.Albums(s.db).GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("failed to create image: %w", common.ErrNotFoundOrUnauthorized)
		}
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	if album.OwnerID != principal.ID {
		return nil, fmt.Errorf("failed to create image: %w", common.ErrNotFoundOrUnauthorized)
	}

	repo := s.repomanager.Images(s.db)
	image, err := repo.Create(ctx, &models.Image{
		AlbumID:    albumID,
		ImageURL:   in.ImageURL,
		AltText:    &in.AltText,
		Caption:    &in.Caption,
		ImageOrder: in.ImageOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	return image, nil
}

// List returns an album's images ordered ascending by display order. Public
// display path.
func (s *ImageService) List(ctx context.Context, albumID string) ([]*models.Image, error) {
	repo := s.repomanager.Images(s.db)
	result, err := repo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return result, nil
}

// Update mutates an image; the repository's statement matches the parent
// album's owner, so a foreign or missing image affects zero rows.
func (s *ImageService) Update(ctx context.Context, id string, in validation.ImageInput) (_ *models.Image, err error) {
	albumID := ""
	defer func() {
		paths := []string{DashboardPath}
		if albumID != "" {
			paths = append(paths, AlbumPath(albumID))
		}
		s.broker.Invalidate(paths...)
	}()

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	in, err = validation.Image(in)
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	repo := s.repomanager.Images(s.db)
	image, err := repo.Update(ctx, id, principal.ID, &models.Image{
		ImageURL:   in.ImageURL,
		AltText:    &in.AltText,
		Caption:    &in.Caption,
		ImageOrder: in.ImageOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}
	albumID = image.AlbumID
	return image, nil
}

// Delete removes an image's stored binary and, when deleteRow is set, its
// database row. The row is matched on (image_url, album_id): a caller whose
// albumID does not match the image's actual parent affects zero rows and the
// operation fails loudly instead of deleting the wrong image.
func (s *ImageService) Delete(ctx context.Context, imageURL, albumID string, deleteRow bool) (err error) {
	defer s.broker.Invalidate(DashboardPath, AlbumPath(albumID))

	if _, err := s.oracle.CurrentPrincipal(ctx); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	// Binary first, row second: if the storage delete fails nothing has
	// been removed yet and the operation can be retried by the user.
	if err := s.store.DeleteObjectByURL(ctx, imageURL); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	if deleteRow {
		repo := s.repomanager.Images(s.db)
		if err := repo.DeleteByURLAndAlbum(ctx, imageURL, albumID); err != nil {
			return fmt.Errorf("failed to delete image: %w", err)
		}
	}
	return nil
}
