package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fsbrowse/internal/browse"
	"fsbrowse/internal/logging"
	"fsbrowse/internal/metrics"
)

// statusFor maps a browsing error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, browse.ErrMissingPath),
		errors.Is(err, browse.ErrInvalidRoot),
		errors.Is(err, browse.ErrNotADirectory),
		errors.Is(err, browse.ErrResolve):
		return http.StatusBadRequest
	case errors.Is(err, browse.ErrOutsideRoot),
		errors.Is(err, browse.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, browse.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c *gin.Context, err error) {
	if err == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if errors.Is(err, browse.ErrOutsideRoot) {
		metrics.RecordContainmentRejection()
	}

	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logging.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		if !errors.Is(err, browse.ErrRead) {
			message = "internal server error"
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
