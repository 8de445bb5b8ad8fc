package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photofolio/internal/common"
)

// renderError maps service errors onto HTTP statuses and a JSON body with a
// human message and a machine-readable kind. Internal failures are logged in
// full but returned opaque.
func (s *Server) renderError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "internal error",
			"error", err, "path", c.Request.URL.Path, "request_id", c.GetString("request_id"))
		c.JSON(status, gin.H{"error": "internal error", "kind": common.Kind(err)})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": common.Kind(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFoundOrUnauthorized), errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrStorageProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
