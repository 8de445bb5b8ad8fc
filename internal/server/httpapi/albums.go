package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photofolio/internal/common"
	"photofolio/internal/server/validation"
)

func (s *Server) createAlbum(c *gin.Context) {
	var in validation.AlbumInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	album, err := s.albums.Create(c.Request.Context(), in)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAlbumResponse(album))
}

func (s *Server) getAlbum(c *gin.Context) {
	album, err := s.albums.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlbumResponse(album))
}

func (s *Server) listAlbums(c *gin.Context) {
	albums, err := s.albums.ListByOwner(c.Request.Context(), c.Param("ownerID"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlbumResponses(albums))
}

func (s *Server) updateAlbum(c *gin.Context) {
	var in validation.AlbumInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	album, err := s.albums.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlbumResponse(album))
}

func (s *Server) deleteAlbum(c *gin.Context) {
	if err := s.albums.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
