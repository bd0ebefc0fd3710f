package playback

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

// abortWithError keeps the three client-facing failure families apart:
// not-found, forbidden-by-policy and temporarily-unavailable must never
// collapse into one generic status, the frontend messaging depends on it.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sv.ErrAuthRequired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, sv.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "content not found"})
	case errors.Is(err, sv.ErrAccessDenied):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "premium subscription required"})
	case errors.Is(err, sv.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case sv.IsSigningError(err):
		log.WithError(err).Error("failed to sign playback url")
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "video temporarily unavailable"})
	default:
		log.WithError(err).Error("playback request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
