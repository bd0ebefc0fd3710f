package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	hc "github.com/jacob15803/StreamSphere-sub000/handlers/common"
	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/asset"
)

type episodeItem struct {
	Season          int     `json:"season"`
	Episode         int     `json:"episode"`
	Title           *string `json:"title,omitempty"`
	DurationMinutes *int16  `json:"duration_minutes,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_url,omitempty"`
}

type showResponse struct {
	hc.MediaSummary
	DurationMinutes *int16        `json:"duration_minutes,omitempty"`
	Episodes        []episodeItem `json:"episodes,omitempty"`
}

// show exposes metadata only. Playable video references stay behind the
// playback url flow.
func (s *Handler) show(c *gin.Context) {
	mediaID, err := uuid.FromString(c.Param("media_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "media_id must be a uuid"})
		return
	}
	m, err := s.catalog.GetMedia(c.Request.Context(), mediaID)
	if err != nil {
		log.WithError(err).Error("failed to fetch media")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if m == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return
	}
	resp := showResponse{
		MediaSummary:    hc.NewMediaSummary(c.Request.Context(), s.locator, m),
		DurationMinutes: m.DurationMinutes,
	}
	if m.Kind == models.MediaKindSeries {
		for _, e := range m.Episodes {
			item := episodeItem{
				Season:          e.Season,
				Episode:         e.Episode,
				Title:           e.Title,
				DurationMinutes: e.DurationMinutes,
			}
			if e.ThumbnailRef != nil {
				u, err := s.locator.ResolveURL(c.Request.Context(), *e.ThumbnailRef, asset.KindImage)
				if err != nil {
					log.WithError(err).WithField("episode_id", e.EpisodeID).Warn("failed to resolve thumbnail url")
				} else {
					item.ThumbnailURL = u
				}
			}
			resp.Episodes = append(resp.Episodes, item)
		}
	}
	c.JSON(http.StatusOK, resp)
}
