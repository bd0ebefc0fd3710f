package access

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

func strPtr(s string) *string {
	return &s
}

func testMovie() *models.Media {
	return &models.Media{
		MediaID:    uuid.NewV4(),
		Kind:       models.MediaKindMovie,
		Title:      "Dune",
		TrailerRef: "s3://trailers/dune.mp4",
		VideoRef:   strPtr("s3://movies/dune.mp4"),
	}
}

func testSeries() *models.Media {
	return &models.Media{
		MediaID:    uuid.NewV4(),
		Kind:       models.MediaKindSeries,
		Title:      "Severance",
		TrailerRef: "s3://trailers/severance.mp4",
		Episodes: []*models.Episode{
			{Season: 1, Episode: 1, VideoRef: "s3://series/severance/s01e01.mp4"},
			{Season: 1, Episode: 2, VideoRef: "s3://series/severance/s01e02.mp4"},
		},
	}
}

func standardUser() *auth.User {
	return &auth.User{ID: uuid.NewV4(), Email: "viewer@example.com"}
}

func TestEvaluate_AnonymousGetsTrailer(t *testing.T) {
	m := testMovie()

	d, err := Evaluate(nil, false, m, nil)
	require.NoError(t, err)
	assert.Equal(t, TierAnonymous, d.Tier)
	assert.Equal(t, m.TrailerRef, d.Reference)
	assert.True(t, d.TrailerOnly)
}

func TestEvaluate_StandardGetsTrailer(t *testing.T) {
	m := testMovie()

	d, err := Evaluate(standardUser(), false, m, nil)
	require.NoError(t, err)
	assert.Equal(t, TierStandard, d.Tier)
	assert.Equal(t, m.TrailerRef, d.Reference)
	assert.True(t, d.TrailerOnly)
}

func TestEvaluate_PremiumGetsFullMovie(t *testing.T) {
	m := testMovie()

	d, err := Evaluate(standardUser(), true, m, nil)
	require.NoError(t, err)
	assert.Equal(t, TierPremium, d.Tier)
	assert.Equal(t, *m.VideoRef, d.Reference)
	assert.False(t, d.TrailerOnly)
}

func TestEvaluate_PremiumMovieWithoutVideo(t *testing.T) {
	for _, m := range []*models.Media{
		{Kind: models.MediaKindMovie, TrailerRef: "s3://trailers/x.mp4"},
		{Kind: models.MediaKindMovie, TrailerRef: "s3://trailers/x.mp4", VideoRef: strPtr("")},
	} {
		_, err := Evaluate(standardUser(), true, m, nil)
		assert.ErrorIs(t, err, sv.ErrNotFound)
	}
}

func TestEvaluate_PremiumSeriesWithoutEpisode(t *testing.T) {
	m := testSeries()

	d, err := Evaluate(standardUser(), true, m, nil)
	require.NoError(t, err)
	assert.Equal(t, TierPremium, d.Tier)
	assert.Equal(t, m.TrailerRef, d.Reference)
	assert.False(t, d.TrailerOnly)
}

func TestEvaluate_EpisodeOnMovie(t *testing.T) {
	m := testMovie()

	_, err := Evaluate(standardUser(), true, m, &EpisodeRef{Season: 1, Episode: 1})
	assert.ErrorIs(t, err, sv.ErrValidation)
}

func TestEvaluate_EpisodeDeniedBelowPremium(t *testing.T) {
	m := testSeries()
	ref := &EpisodeRef{Season: 1, Episode: 1}

	_, err := Evaluate(nil, false, m, ref)
	assert.ErrorIs(t, err, sv.ErrAccessDenied)

	_, err = Evaluate(standardUser(), false, m, ref)
	assert.ErrorIs(t, err, sv.ErrAccessDenied)
}

func TestEvaluate_EpisodeNotFound(t *testing.T) {
	m := testSeries()

	_, err := Evaluate(standardUser(), true, m, &EpisodeRef{Season: 4, Episode: 9})
	assert.ErrorIs(t, err, sv.ErrNotFound)
}

func TestEvaluate_PremiumGetsEpisode(t *testing.T) {
	m := testSeries()

	d, err := Evaluate(standardUser(), true, m, &EpisodeRef{Season: 1, Episode: 2})
	require.NoError(t, err)
	assert.Equal(t, TierPremium, d.Tier)
	assert.Equal(t, "s3://series/severance/s01e02.mp4", d.Reference)
	assert.False(t, d.TrailerOnly)
	require.NotNil(t, d.Episode)
	assert.Equal(t, 2, d.Episode.Episode)
}

func TestEvaluate_PremiumFlagIgnoredWithoutIdentity(t *testing.T) {
	m := testMovie()

	d, err := Evaluate(&auth.User{}, true, m, nil)
	require.NoError(t, err)
	assert.Equal(t, TierAnonymous, d.Tier)
	assert.True(t, d.TrailerOnly)
}
