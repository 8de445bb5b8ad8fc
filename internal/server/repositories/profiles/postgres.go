// Package profiles provides PostgreSQL-backed persistence for user profiles.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"photofolio/internal/common"
	"photofolio/internal/dbx"
	"photofolio/internal/server/models"
)

// PostgresRepository implements profile storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts a profile for the owning principal. An empty bio falls back
// to the schema default. A username collision surfaces as a wrapped db error.
func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (owner_id, display_name, username, bio, image_url)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'Welcome to my profile!'), $5)
		RETURNING id, bio, created_at, updated_at
		`
	err := r.db.QueryRowContext(ctx, query,
		profile.OwnerID, profile.DisplayName, profile.Username, profile.Bio, profile.ImageURL).
		Scan(&profile.ID, &profile.Bio, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("db error: duplicate %s: %w", pgErr.ConstraintName, err)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return profile, nil
}

// GetByUsername resolves a profile from its public routing key. No ownership
// check: this is the public display path.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `
		SELECT id, owner_id, display_name, username, bio, image_url, created_at, updated_at
		FROM profiles
		WHERE username = $1
		`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

// GetByOwner resolves the calling principal's own profile.
func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Profile, error) {
	query := `
		SELECT id, owner_id, display_name, username, bio, image_url, created_at, updated_at
		FROM profiles
		WHERE owner_id = $1
		`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID))
}

// Update mutates the profile owned by ownerID. Zero matched rows is reported
// as the combined not-found/not-authorized error.
func (r *PostgresRepository) Update(ctx context.Context, ownerID string, profile *models.Profile) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET display_name = $1, username = $2, bio = $3, image_url = $4, updated_at = now()
		WHERE owner_id = $5
		RETURNING id, owner_id, display_name, username, bio, image_url, created_at, updated_at
		`
	updated, err := r.scanOne(r.db.QueryRowContext(ctx, query,
		profile.DisplayName, profile.Username, profile.Bio, profile.ImageURL, ownerID))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return updated, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(&p.ID, &p.OwnerID, &p.DisplayName, &p.Username, &p.Bio, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
