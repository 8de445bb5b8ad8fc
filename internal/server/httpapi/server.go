// Package httpapi exposes the persistence operations over HTTP. Routing and
// rendering live with the frontend; this layer only maps requests onto
// service calls and service errors onto statuses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"photofolio/internal/logging"
	"photofolio/internal/server/revalidate"
	"photofolio/internal/server/services"
)

// Server wires the gin router to the services.
type Server struct {
	address   string
	logger    logging.Logger
	profiles  *services.ProfileService
	albums    *services.AlbumService
	images    *services.ImageService
	uploads   *services.UploadService
	broker    *revalidate.Broker
	jwtSecret []byte
	origins   []string
}

func NewServer(address string, l logging.Logger, ps *services.ProfileService, as *services.AlbumService,
	is *services.ImageService, us *services.UploadService, broker *revalidate.Broker,
	secretKey string, origins []string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		profiles:  ps,
		albums:    as,
		images:    is,
		uploads:   us,
		broker:    broker,
		jwtSecret: []byte(secretKey),
		origins:   origins,
	}
}

// Router builds the gin engine with middleware and routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID())
	router.Use(s.requestLog())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "OK"}) })

	api := router.Group("/api")
	api.Use(s.authenticate())
	{
		api.GET("/profiles/:username", s.getProfileByUsername)
		api.GET("/me/profile", s.getCurrentProfile)
		api.POST("/me/profile", s.createProfile)
		api.PATCH("/me/profile", s.updateProfile)

		api.POST("/albums", s.createAlbum)
		api.GET("/albums/:id", s.getAlbum)
		api.PATCH("/albums/:id", s.updateAlbum)
		api.DELETE("/albums/:id", s.deleteAlbum)
		api.GET("/users/:ownerID/albums", s.listAlbums)

		api.POST("/albums/:id/images", s.createImage)
		api.GET("/albums/:id/images", s.listImages)
		api.PATCH("/images/:id", s.updateImage)
		api.DELETE("/images", s.deleteImage)

		api.POST("/uploads", s.createUploadGrant)
	}

	router.GET("/events", s.streamInvalidations)

	router.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{}) })
	return router
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
