package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jacob15803/StreamSphere-sub000/services/auth"
)

func (s *Handler) me(c *gin.Context) {
	u := auth.GetUserFromContext(c)
	premium, err := s.sub.IsPremium(c.Request.Context(), u.ID)
	if err != nil {
		log.WithError(err).Error("failed to derive entitlement")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"premium": premium,
	})
}
