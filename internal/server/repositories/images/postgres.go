// Package images provides PostgreSQL-backed persistence for images.
// Image ownership is transitive: a mutation is authorized by matching the
// parent album's owner inside the statement itself.
package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"photofolio/internal/common"
	"photofolio/internal/dbx"
	"photofolio/internal/server/models"
)

// PostgresRepository implements image storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an image into its parent album.
func (r *PostgresRepository) Create(ctx context.Context, image *models.Image) (*models.Image, error) {
	query := `
		INSERT INTO images (album_id, image_url, alt_text, caption, image_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
		`
	err := r.db.QueryRowContext(ctx, query,
		image.AlbumID, image.ImageURL, image.AltText, image.Caption, image.ImageOrder).
		Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return image, nil
}

// ListByAlbum returns an album's images ordered ascending by display order.
// Public display path, no ownership check.
func (r *PostgresRepository) ListByAlbum(ctx context.Context, albumID string) ([]*models.Image, error) {
	query := `
		SELECT id, album_id, image_url, alt_text, caption, image_order, created_at, updated_at
		FROM images
		WHERE album_id = $1
		ORDER BY image_order ASC NULLS LAST, created_at ASC
		`
	rows, err := r.db.QueryContext(ctx, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Image
	for rows.Next() {
		img := &models.Image{}
		if err := rows.Scan(&img.ID, &img.AlbumID, &img.ImageURL, &img.AltText, &img.Caption,
			&img.ImageOrder, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update mutates an image iff its parent album belongs to ownerID. The
// subquery is the transitive ownership check; zero matched rows is the
// combined not-found/not-authorized outcome.
func (r *PostgresRepository) Update(ctx context.Context, id, ownerID string, image *models.Image) (*models.Image, error) {
	query := `
		UPDATE images
		SET image_url = $1, alt_text = $2, caption = $3, image_order = $4, updated_at = now()
		WHERE id = $5
		  AND album_id IN (SELECT id FROM albums WHERE owner_id = $6)
		RETURNING id, album_id, image_url, alt_text, caption, image_order, created_at, updated_at
		`
	img := &models.Image{}
	err := r.db.QueryRowContext(ctx, query,
		image.ImageURL, image.AltText, image.Caption, image.ImageOrder, id, ownerID).
		Scan(&img.ID, &img.AlbumID, &img.ImageURL, &img.AltText, &img.Caption,
			&img.ImageOrder, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFoundOrUnauthorized
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return img, nil
}

// DeleteByURLAndAlbum removes the row matched on (image_url, album_id). A
// caller-supplied album id that does not match the image's actual parent
// affects zero rows and fails loudly instead of deleting the wrong image.
func (r *PostgresRepository) DeleteByURLAndAlbum(ctx context.Context, imageURL, albumID string) error {
	query := `DELETE FROM images WHERE image_url = $1 AND album_id = $2`
	res, err := r.db.ExecContext(ctx, query, imageURL, albumID)
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
