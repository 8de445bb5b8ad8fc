package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photofolio/internal/common"
)

type uploadGrantRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	AlbumID     string `json:"albumId" binding:"required"`
}

func (s *Server) createUploadGrant(c *gin.Context) {
	var req uploadGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	grant, err := s.uploads.CreateGrant(c.Request.Context(), req.FileName, req.ContentType, req.AlbumID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUploadGrantResponse(grant))
}
