package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photofolio/internal/common"
	"photofolio/internal/server/identity"
	"photofolio/internal/server/repositories/repomanager"
	"photofolio/internal/server/storage"
)

// UploadService authorizes upload-grant issuance. The gateway itself does
// not know about principals; this layer refuses to sign keys under an album
// prefix the caller does not own.
type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	oracle      identity.Oracle
	store       ObjectStore
}

func NewUploadService(db *sql.DB, m repomanager.RepositoryManager, oracle identity.Oracle, store ObjectStore) *UploadService {
	return &UploadService{db: db, repomanager: m, oracle: oracle, store: store}
}

// CreateGrant returns a short-lived presigned PUT URL plus the long-lived
// public read URL for one file in the caller's album.
func (s *UploadService) CreateGrant(ctx context.Context, fileBaseName, contentType, albumID string) (*storage.UploadGrant, error) {
	principal, err := s.oracle.CurrentPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload grant: %w", err)
	}

	album, err := s.repomanager.Albums(s.db).GetByID(ctx, albumID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("failed to create upload grant: %w", common.ErrNotFoundOrUnauthorized)
		}
		return nil, fmt.Errorf("failed to create upload grant: %w", err)
	}
	if album.OwnerID != principal.ID {
		return nil, fmt.Errorf("failed to create upload grant: %w", common.ErrNotFoundOrUnauthorized)
	}

	grant, err := s.store.CreateUploadGrant(ctx, fileBaseName, contentType, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload grant: %w", err)
	}
	return grant, nil
}
