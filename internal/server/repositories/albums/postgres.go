// Package albums provides PostgreSQL-backed persistence for albums.
// Ownership checks are pushed into the SQL: owner-scoped writes match on
// (id, owner_id) and a zero-row result is surfaced as the combined
// not-found/not-authorized error.
package albums

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photofolio/internal/common"
	"photofolio/internal/dbx"
	"photofolio/internal/server/models"
)

// PostgresRepository implements album storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an album stamped with the owning principal.
func (r *PostgresRepository) Create(ctx context.Context, album *models.Album) (*models.Album, error) {
	query := `
		INSERT INTO albums (owner_id, title, description, album_order, cover_image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
		`
	err := r.db.QueryRowContext(ctx, query,
		album.OwnerID, album.Title, album.Description, album.AlbumOrder, album.CoverImageURL).
		Scan(&album.ID, &album.CreatedAt, &album.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return album, nil
}

// GetByID resolves one album. Public display path, no ownership check.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Album, error) {
	query := `
		SELECT id, owner_id, title, description, album_order, cover_image_url, created_at, updated_at
		FROM albums
		WHERE id = $1
		`
	a := &models.Album{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.OwnerID, &a.Title, &a.Description, &a.AlbumOrder, &a.CoverImageURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// ListByOwner returns all albums for a principal, ordered by the optional
// display order, then creation time. Public display path.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Album, error) {
	query := `
		SELECT id, owner_id, title, description, album_order, cover_image_url, created_at, updated_at
		FROM albums
		WHERE owner_id = $1
		ORDER BY album_order ASC NULLS LAST, created_at ASC
		`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Album
	for rows.Next() {
		a := &models.Album{}
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Description, &a.AlbumOrder,
			&a.CoverImageURL, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update mutates an album iff the requesting principal owns it.
func (r *PostgresRepository) Update(ctx context.Context, id, ownerID string, album *models.Album) (*models.Album, error) {
	query := `
		UPDATE albums
		SET title = $1, description = $2, album_order = $3, cover_image_url = $4, updated_at = now()
		WHERE id = $5 AND owner_id = $6
		RETURNING id, owner_id, title, description, album_order, cover_image_url, created_at, updated_at
		`
	a := &models.Album{}
	err := r.db.QueryRowContext(ctx, query,
		album.Title, album.Description, album.AlbumOrder, album.CoverImageURL, id, ownerID).
		Scan(&a.ID, &a.OwnerID, &a.Title, &a.Description, &a.AlbumOrder, &a.CoverImageURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFoundOrUnauthorized
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// Delete removes an album iff the requesting principal owns it. Child images
// are removed by the ON DELETE CASCADE constraint.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM albums WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFoundOrUnauthorized
	}
	return nil
}
