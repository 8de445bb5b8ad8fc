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

// ProfileService implements profile persistence operations.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	oracle      identity.Oracle
	broker      Invalidator
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, oracle identity.Oracle, broker Invalidator) *ProfileService {
	return &ProfileService{db: db, repomanager: m, oracle: oracle, broker: broker}
}

// Create validates the payload and inserts a profile stamped with the
// current principal as owner. An empty avatar URL falls back to the one the
// identity provider reports.
func (s *ProfileService) Create(ctx context.Context, in validation.ProfileInput) (_ *models.Profile, err error) {
	defer s.broker.Invalidate(DashboardPath)

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	in, err = validation.Profile(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = principal.AvatarURL
	}

	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.Create(ctx, &models.Profile{
		OwnerID:     principal.ID,
		DisplayName: in.DisplayName,
		Username:    in.Username,
		Bio:         in.Bio,
		ImageURL:    imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// GetByUsername resolves a profile from its public routing key. Public path,
// no authentication.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetCurrent returns the calling principal's own profile.
func (s *ProfileService) GetCurrent(ctx context.Context) (*models.Profile, error) {
	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.GetByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Update mutates the calling principal's profile. The public profile path is
// invalidated alongside the dashboard so a renamed profile drops its old
// cached render.
func (s *ProfileService) Update(ctx context.Context, in validation.ProfileInput) (_ *models.Profile, err error) {
	defer func() {
		paths := []string{DashboardPath}
		if in.Username != "" {
			paths = append(paths, ProfilePath(in.Username))
		}
		s.broker.Invalidate(paths...)
	}()

	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	in, err = validation.Profile(in)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.Update(ctx, principal.ID, &models.Profile{
		DisplayName: in.DisplayName,
		Username:    in.Username,
		Bio:         in.Bio,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
