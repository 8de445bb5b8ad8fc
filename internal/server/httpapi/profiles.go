package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photofolio/internal/common"
	"photofolio/internal/server/validation"
)

func (s *Server) getProfileByUsername(c *gin.Context) {
	profile, err := s.profiles.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (s *Server) getCurrentProfile(c *gin.Context) {
	profile, err := s.profiles.GetCurrent(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (s *Server) createProfile(c *gin.Context) {
	var in validation.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	profile, err := s.profiles.Create(c.Request.Context(), in)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func (s *Server) updateProfile(c *gin.Context) {
	var in validation.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.renderError(c, common.ErrValidationFailed)
		return
	}

	profile, err := s.profiles.Update(c.Request.Context(), in)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}
