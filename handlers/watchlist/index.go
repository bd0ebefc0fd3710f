package watchlist

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	hc "github.com/jacob15803/StreamSphere-sub000/handlers/common"
	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
)

type watchlistItem struct {
	Media   hc.MediaSummary `json:"media"`
	AddedAt time.Time       `json:"added_at"`
}

func (s *Handler) index(c *gin.Context) {
	u := auth.GetUserFromContext(c)

	db := s.pg.Get()
	if db == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	list, err := models.GetWatchlist(c.Request.Context(), db, u.ID)
	if err != nil {
		log.WithError(err).Error("failed to fetch watchlist")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	items := make([]watchlistItem, 0, len(list))
	for _, w := range list {
		if w.Media == nil {
			continue
		}
		items = append(items, watchlistItem{
			Media:   hc.NewMediaSummary(c.Request.Context(), s.locator, w.Media),
			AddedAt: w.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
