package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryConstructors(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewPostgresRepositoryManager()
	assert.NotNil(t, m.Profiles(db))
	assert.NotNil(t, m.Albums(db))
	assert.NotNil(t, m.Images(db))
}

func TestRunMigrations(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	t.Run("success", func(t *testing.T) {
		var called bool
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			called = true
			assert.Equal(t, ".", dir)
			return nil
		}

		m := NewPostgresRepositoryManager()
		require.NoError(t, m.RunMigrations(context.Background(), nil))
		assert.True(t, called)
	})

	t.Run("error propagates", func(t *testing.T) {
		wantErr := errors.New("migration failed")
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return wantErr
		}

		m := NewPostgresRepositoryManager()
		assert.ErrorIs(t, m.RunMigrations(context.Background(), nil), wantErr)
	})
}
