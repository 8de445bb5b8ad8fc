package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photofolio/internal/common"
	"photofolio/internal/server/validation"
)

func (s *Server) createImage(c *gin.Context) {
	var in validation.ImageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	image, err := s.images.Create(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toImageResponse(image))
}

func (s *Server) listImages(c *gin.Context) {
	images, err := s.images.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toImageResponses(images))
}

func (s *Server) updateImage(c *gin.Context) {
	var in validation.ImageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	image, err := s.images.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toImageResponse(image))
}

// deleteImageRequest identifies the image by its stored URL and parent album
// rather than by row id, and lets the caller keep the row while dropping the
// binary (deleteRow=false) during replace flows.
type deleteImageRequest struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	AlbumID   string `json:"albumId" binding:"required"`
	DeleteRow bool   `json:"deleteRow"`
}

func (s *Server) deleteImage(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	if err := s.images.Delete(c.Request.Context(), req.ImageURL, req.AlbumID, req.DeleteRow); err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
