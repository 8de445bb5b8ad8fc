// Package server initializes and runs the application: it opens the database,
// applies migrations, builds the object-storage gateway and services, and
// serves the HTTP API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"photofolio/internal/logging"
	"photofolio/internal/server/config"
	"photofolio/internal/server/httpapi"
	"photofolio/internal/server/identity"
	"photofolio/internal/server/repositories/repomanager"
	"photofolio/internal/server/revalidate"
	"photofolio/internal/server/services"
	"photofolio/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.New(ctx, storage.Config{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		BaseEndpoint: cfg.S3BaseEndpoint,
		GrantTTL:     cfg.UploadGrantTTL,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	oracle := identity.ContextOracle{}
	broker := revalidate.NewBroker()

	ps := services.NewProfileService(db, manager, oracle, broker)
	as := services.NewAlbumService(db, manager, oracle, broker, store)
	is := services.NewImageService(db, manager, oracle, broker, store)
	us := services.NewUploadService(db, manager, oracle, store)

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, ps, as, is, us, broker, cfg.SecretKey, cfg.CORSOrigins)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
