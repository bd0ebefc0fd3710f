package common

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/asset"
	"github.com/jacob15803/StreamSphere-sub000/services/catalog"
)

// MediaSummary is the compact media shape shared by catalog, watchlist and
// continue-watching responses.
type MediaSummary struct {
	MediaID   string   `json:"media_id"`
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Year      *int16   `json:"year,omitempty"`
	Plot      string   `json:"plot,omitempty"`
	PosterURL string   `json:"poster_url,omitempty"`
	Genres    []string `json:"genres,omitempty"`
}

func NewMediaSummary(ctx context.Context, locator *asset.Locator, m *models.Media) MediaSummary {
	s := MediaSummary{
		MediaID: m.MediaID.String(),
		Kind:    string(m.Kind),
		Title:   m.Title,
		Year:    m.Year,
		Plot:    m.Plot,
	}
	for _, g := range m.Genres {
		s.Genres = append(s.Genres, catalog.GenreDisplayName(g))
	}
	posterURL, err := locator.ResolveURL(ctx, m.PosterRef, asset.KindImage)
	if err != nil {
		// A broken poster never breaks the listing.
		log.WithError(err).WithField("media_id", m.MediaID).Warn("failed to resolve poster url")
	} else {
		s.PosterURL = posterURL
	}
	return s
}
