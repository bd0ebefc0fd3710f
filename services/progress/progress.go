package progress

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	cs "github.com/webtor-io/common-services"

	"github.com/jacob15803/StreamSphere-sub000/models"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

// FallbackDurationSeconds is assumed when a title carries no nominal
// duration, so percent math never divides by zero.
const FallbackDurationSeconds = 7200

// Tracker records and retrieves playback positions per (user, media) pair.
type Tracker struct {
	pg *cs.PG
}

func New(pg *cs.PG) *Tracker {
	return &Tracker{
		pg: pg,
	}
}

// Record upserts the single progress row for the pair. Last write wins,
// offsets are not validated against the asset duration here.
func (s *Tracker) Record(ctx context.Context, uID uuid.UUID, mediaID uuid.UUID, positionSeconds int64) error {
	if positionSeconds < 0 {
		return sv.ValidationError("position_seconds", "must not be negative")
	}
	if mediaID == uuid.Nil {
		return sv.ValidationError("media_id", "must be set")
	}
	db := s.pg.Get()
	if db == nil {
		return errors.New("database not initialized")
	}
	return models.UpsertProgress(ctx, db, uID, mediaID, positionSeconds)
}

// Entry is one continue-watching row: the media summary plus how far the
// viewer got.
type Entry struct {
	Media           *models.Media
	PositionSeconds int64
	Percent         int
	UpdatedAt       time.Time
}

// ContinueWatching lists the viewer's in-progress titles, most recent
// first.
func (s *Tracker) ContinueWatching(ctx context.Context, uID uuid.UUID) ([]*Entry, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	list, err := models.GetProgressList(ctx, db, uID)
	if err != nil {
		return nil, err
	}
	return buildEntries(list), nil
}

// buildEntries drops rows whose media no longer resolves rather than
// failing the whole list.
func buildEntries(list []*models.Progress) []*Entry {
	entries := make([]*Entry, 0, len(list))
	for _, p := range list {
		if p.Media == nil {
			continue
		}
		entries = append(entries, &Entry{
			Media:           p.Media,
			PositionSeconds: p.PositionSeconds,
			Percent:         ComputePercent(p.PositionSeconds, p.Media.DurationMinutes),
			UpdatedAt:       p.UpdatedAt,
		})
	}
	return entries
}

// Get returns the recorded position for the pair with its media loaded,
// nil when nothing was recorded.
func (s *Tracker) Get(ctx context.Context, uID uuid.UUID, mediaID uuid.UUID) (*models.Progress, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	return models.GetProgress(ctx, db, uID, mediaID)
}

func (s *Tracker) Remove(ctx context.Context, uID uuid.UUID, mediaID uuid.UUID) error {
	db := s.pg.Get()
	if db == nil {
		return errors.New("database not initialized")
	}
	return models.RemoveProgress(ctx, db, uID, mediaID)
}

// ComputePercent clamps position/duration to [0,100]. durationMinutes may
// be nil or zero.
func ComputePercent(positionSeconds int64, durationMinutes *int16) int {
	duration := int64(FallbackDurationSeconds)
	if durationMinutes != nil && *durationMinutes > 0 {
		duration = int64(*durationMinutes) * 60
	}
	ratio := float64(positionSeconds) / float64(duration)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return int(math.Round(ratio * 100))
}
