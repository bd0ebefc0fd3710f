package watchlist

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
)

type watchlistArgs struct {
	MediaID string `json:"media_id"`
}

func (s *Handler) bindArgs(c *gin.Context) (uuid.UUID, error) {
	var args watchlistArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		return uuid.Nil, errors.Wrap(err, "malformed body")
	}
	mediaID, err := uuid.FromString(args.MediaID)
	if err != nil {
		return uuid.Nil, errors.Errorf("wrong media id %v", args.MediaID)
	}
	return mediaID, nil
}

func (s *Handler) add(c *gin.Context) {
	mediaID, err := s.bindArgs(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := auth.GetUserFromContext(c)
	ctx := c.Request.Context()

	m, err := s.catalog.GetMedia(ctx, mediaID)
	if err != nil {
		log.WithError(err).Error("failed to fetch media")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if m == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}

	db := s.pg.Get()
	if db == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	exists, err := models.IsInWatchlist(ctx, db, u.ID, mediaID)
	if err != nil {
		log.WithError(err).Error("failed to check watchlist membership")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "already_added": true})
		return
	}
	// The insert still carries DO NOTHING for the racing-add case.
	err = models.AddToWatchlist(ctx, db, u.ID, mediaID)
	if err != nil {
		log.WithError(err).Error("failed to add to watchlist")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "already_added": false})
}
