package progress

import (
	"testing"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacob15803/StreamSphere-sub000/models"
)

func int16Ptr(v int16) *int16 {
	return &v
}

func TestComputePercent(t *testing.T) {
	for _, tc := range []struct {
		name            string
		positionSeconds int64
		durationMinutes *int16
		want            int
	}{
		{name: "half way", positionSeconds: 3600, durationMinutes: int16Ptr(120), want: 50},
		{name: "start", positionSeconds: 0, durationMinutes: int16Ptr(120), want: 0},
		{name: "finished", positionSeconds: 7200, durationMinutes: int16Ptr(120), want: 100},
		{name: "beyond duration clamps", positionSeconds: 7300, durationMinutes: int16Ptr(120), want: 100},
		{name: "nil duration falls back to two hours", positionSeconds: 3600, durationMinutes: nil, want: 50},
		{name: "zero duration falls back to two hours", positionSeconds: 3600, durationMinutes: int16Ptr(0), want: 50},
		{name: "beyond fallback clamps", positionSeconds: 9000, durationMinutes: nil, want: 100},
		{name: "rounds to nearest", positionSeconds: 65, durationMinutes: int16Ptr(2), want: 54},
		{name: "tiny position rounds down", positionSeconds: 1, durationMinutes: int16Ptr(120), want: 0},
		{name: "negative clamps to zero", positionSeconds: -10, durationMinutes: int16Ptr(120), want: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputePercent(tc.positionSeconds, tc.durationMinutes))
		})
	}
}

func TestBuildEntries_DropsRowsWithoutMedia(t *testing.T) {
	healthy := &models.Progress{
		UserID:          uuid.NewV4(),
		MediaID:         uuid.NewV4(),
		PositionSeconds: 3600,
		UpdatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Media: &models.Media{
			Kind:            models.MediaKindMovie,
			Title:           "Dune",
			DurationMinutes: int16Ptr(120),
		},
	}
	orphaned := &models.Progress{
		UserID:          healthy.UserID,
		MediaID:         uuid.NewV4(),
		PositionSeconds: 900,
		UpdatedAt:       time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}

	entries := buildEntries([]*models.Progress{orphaned, healthy})

	require.Len(t, entries, 1)
	assert.Equal(t, "Dune", entries[0].Media.Title)
	assert.Equal(t, int64(3600), entries[0].PositionSeconds)
	assert.Equal(t, 50, entries[0].Percent)
	assert.Equal(t, healthy.UpdatedAt, entries[0].UpdatedAt)
}

func TestBuildEntries_KeepsOrder(t *testing.T) {
	mk := func(title string, pos int64) *models.Progress {
		return &models.Progress{
			PositionSeconds: pos,
			Media:           &models.Media{Title: title, DurationMinutes: int16Ptr(100)},
		}
	}

	entries := buildEntries([]*models.Progress{mk("Second", 600), mk("First", 300)})

	require.Len(t, entries, 2)
	assert.Equal(t, "Second", entries[0].Media.Title)
	assert.Equal(t, "First", entries[1].Media.Title)
}

func TestBuildEntries_Empty(t *testing.T) {
	assert.Empty(t, buildEntries(nil))
}
