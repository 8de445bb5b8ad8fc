package repomanager

import (
	"context"
	"database/sql"

	"photofolio/internal/dbx"
	"photofolio/internal/server/repositories/albums"
	"photofolio/internal/server/repositories/images"
	"photofolio/internal/server/repositories/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db dbx.DBTX) profiles.Repository
	Albums(db dbx.DBTX) albums.Repository
	Images(db dbx.DBTX) images.Repository
}
