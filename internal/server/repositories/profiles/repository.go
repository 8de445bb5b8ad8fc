package profiles

import (
	"context"

	"photofolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByOwner(ctx context.Context, ownerID string) (*models.Profile, error)
	Update(ctx context.Context, ownerID string, profile *models.Profile) (*models.Profile, error)
}
