package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/lazymap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jacob15803/StreamSphere-sub000/models"
)

// Catalog serves read access to media metadata. Titles change rarely, so
// per-title lookups go through a short-lived LazyMap.
type Catalog struct {
	pg       *cs.PG
	mediaMap *lazymap.LazyMap[*models.Media]
	genreMap *lazymap.LazyMap[[]*models.Genre]
}

func New(pg *cs.PG) *Catalog {
	return &Catalog{
		pg: pg,
		mediaMap: lazymap.New[*models.Media](&lazymap.Config{
			Expire:      time.Minute,
			ErrorExpire: 10 * time.Second,
		}),
		genreMap: lazymap.New[[]*models.Genre](&lazymap.Config{
			Expire:      5 * time.Minute,
			ErrorExpire: 10 * time.Second,
		}),
	}
}

// GetMedia returns the media with its episodes and genres, nil when the id
// does not resolve.
func (s *Catalog) GetMedia(ctx context.Context, mediaID uuid.UUID) (*models.Media, error) {
	key := fmt.Sprintf("media:%v", mediaID)
	return s.mediaMap.Get(key, func() (*models.Media, error) {
		db := s.pg.Get()
		if db == nil {
			return nil, errors.New("database not initialized")
		}
		return models.GetMediaByID(ctx, db, mediaID)
	})
}

func (s *Catalog) ListMedia(ctx context.Context, kind models.MediaKind, genreSlug string, sort models.SortType) ([]*models.Media, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	return models.GetMediaList(ctx, db, kind, genreSlug, sort)
}

func (s *Catalog) GetGenres(ctx context.Context) ([]*models.Genre, error) {
	return s.genreMap.Get("genres", func() ([]*models.Genre, error) {
		db := s.pg.Get()
		if db == nil {
			return nil, errors.New("database not initialized")
		}
		return models.GetGenreList(ctx, db)
	})
}

var titleCaser = cases.Title(language.English)

// GenreDisplayName normalizes stored genre names for presentation.
func GenreDisplayName(g *models.Genre) string {
	return titleCaser.String(g.Name)
}
