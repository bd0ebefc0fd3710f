package playback

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"

	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
	"github.com/jacob15803/StreamSphere-sub000/services/progress"
)

type progressArgs struct {
	MediaID         string `json:"media_id"`
	PositionSeconds int64  `json:"position_seconds"`
}

func (s *Handler) reportProgress(c *gin.Context) {
	var args progressArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		abortWithError(c, sv.ValidationError("body", "malformed json"))
		return
	}
	if args.MediaID == "" {
		abortWithError(c, sv.ValidationError("media_id", "must be set"))
		return
	}
	mediaID, err := uuid.FromString(args.MediaID)
	if err != nil {
		abortWithError(c, sv.ValidationError("media_id", "must be a uuid"))
		return
	}
	u := auth.GetUserFromContext(c)
	err = s.tracker.Record(c.Request.Context(), u.ID, mediaID, args.PositionSeconds)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

type progressResponse struct {
	MediaID         string    `json:"media_id"`
	PositionSeconds int64     `json:"position_seconds"`
	ProgressPercent int       `json:"progress_percent"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *Handler) getProgress(c *gin.Context) {
	mediaID, err := uuid.FromString(c.Param("media_id"))
	if err != nil {
		abortWithError(c, sv.ValidationError("media_id", "must be a uuid"))
		return
	}
	u := auth.GetUserFromContext(c)
	p, err := s.tracker.Get(c.Request.Context(), u.ID, mediaID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if p == nil {
		abortWithError(c, sv.ErrNotFound)
		return
	}
	var duration *int16
	if p.Media != nil {
		duration = p.Media.DurationMinutes
	}
	c.JSON(http.StatusOK, progressResponse{
		MediaID:         p.MediaID.String(),
		PositionSeconds: p.PositionSeconds,
		ProgressPercent: progress.ComputePercent(p.PositionSeconds, duration),
		UpdatedAt:       p.UpdatedAt,
	})
}

func (s *Handler) removeProgress(c *gin.Context) {
	mediaID, err := uuid.FromString(c.Param("media_id"))
	if err != nil {
		abortWithError(c, sv.ValidationError("media_id", "must be a uuid"))
		return
	}
	u := auth.GetUserFromContext(c)
	err = s.tracker.Remove(c.Request.Context(), u.ID, mediaID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
