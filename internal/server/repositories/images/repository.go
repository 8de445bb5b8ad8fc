package images

import (
	"context"

	"photofolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, image *models.Image) (*models.Image, error)
	ListByAlbum(ctx context.Context, albumID string) ([]*models.Image, error)
	Update(ctx context.Context, id, ownerID string, image *models.Image) (*models.Image, error)
	DeleteByURLAndAlbum(ctx context.Context, imageURL, albumID string) error
}
