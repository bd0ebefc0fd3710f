package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type MediaKind string

const (
	MediaKindMovie  MediaKind = "movie"
	MediaKindSeries MediaKind = "series"
)

type Media struct {
	tableName struct{} `pg:"media"`

	MediaID         uuid.UUID `pg:"media_id,pk,type:uuid,default:uuid_generate_v4()"`
	Kind            MediaKind `pg:"kind"`
	Title           string    `pg:"title"`
	Year            *int16    `pg:"year"`
	Plot            string    `pg:"plot"`
	TrailerRef      string    `pg:"trailer_ref"`
	VideoRef        *string   `pg:"video_ref"`
	PosterRef       string    `pg:"poster_ref"`
	DurationMinutes *int16    `pg:"duration_minutes"`
	CreatedAt       time.Time `pg:"created_at,default:now()"`
	UpdatedAt       time.Time `pg:"updated_at,default:now()"`

	Episodes []*Episode `pg:"rel:has-many,fk:media_id"`
	Genres   []*Genre   `pg:"many2many:media_genre"`
}

// GetEpisode returns the episode keyed by (season, episode) or nil.
func (s *Media) GetEpisode(season int, episode int) *Episode {
	for _, e := range s.Episodes {
		if e.Season == season && e.Episode == episode {
			return e
		}
	}
	return nil
}

func GetMediaByID(ctx context.Context, db *pg.DB, mediaID uuid.UUID) (*Media, error) {
	var m Media
	err := db.Model(&m).
		Context(ctx).
		Where("media.media_id = ?", mediaID).
		Relation("Episodes", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr("episode.season ASC, episode.episode ASC"), nil
		}).
		Relation("Genres").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch media")
	}
	return &m, nil
}

func GetMediaList(ctx context.Context, db *pg.DB, kind MediaKind, genreSlug string, sort SortType) ([]*Media, error) {
	var list []*Media

	query := db.Model(&list).
		Context(ctx).
		Relation("Genres")

	if kind != "" {
		query.Where("media.kind = ?", kind)
	}
	if genreSlug != "" {
		query.Join("join media_genre as mg").
			JoinOn("mg.media_id = media.media_id").
			Join("join genre as g").
			JoinOn("g.genre_id = mg.genre_id").
			Where("g.slug = ?", genreSlug)
	}

	switch sort {
	case SortTypeTitle:
		query.OrderExpr("media.title ASC")
	case SortTypeYear:
		query.OrderExpr("media.year DESC NULLS LAST")
	case SortTypeRecentlyAdded:
		fallthrough
	default:
		query.OrderExpr("media.created_at DESC")
	}

	err := query.Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch media list")
	}

	return list, nil
}

type SortType int

const (
	SortTypeRecentlyAdded SortType = iota
	SortTypeTitle
	SortTypeYear
)

func (s SortType) String() string {
	switch s {
	case SortTypeRecentlyAdded:
		return "Recently Added"
	case SortTypeTitle:
		return "Title (A-Z)"
	case SortTypeYear:
		return "Year"
	default:
		return "Unknown"
	}
}
