package playback

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	hc "github.com/jacob15803/StreamSphere-sub000/handlers/common"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
)

type continueItem struct {
	Media           hc.MediaSummary `json:"media"`
	ProgressPercent int             `json:"progress_percent"`
	PositionSeconds int64           `json:"position_seconds"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (s *Handler) continueWatching(c *gin.Context) {
	u := auth.GetUserFromContext(c)
	entries, err := s.tracker.ContinueWatching(c.Request.Context(), u.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	items := make([]continueItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, continueItem{
			Media:           hc.NewMediaSummary(c.Request.Context(), s.locator, e.Media),
			ProgressPercent: e.Percent,
			PositionSeconds: e.PositionSeconds,
			UpdatedAt:       e.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
