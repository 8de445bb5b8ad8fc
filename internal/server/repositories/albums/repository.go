package albums

import (
	"context"

	"photofolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, album *models.Album) (*models.Album, error)
	GetByID(ctx context.Context, id string) (*models.Album, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Album, error)
	Update(ctx context.Context, id, ownerID string, album *models.Album) (*models.Album, error)
	Delete(ctx context.Context, id, ownerID string) error
}
