package access

import (
	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

type Tier string

const (
	TierAnonymous Tier = "anonymous"
	TierStandard  Tier = "standard"
	TierPremium   Tier = "premium"
)

// EpisodeRef identifies an episode within its series.
type EpisodeRef struct {
	Season  int
	Episode int
}

// Decision is the outcome of the policy evaluation: which asset reference
// the requester may play and at which tier.
type Decision struct {
	Tier        Tier
	Reference   string
	TrailerOnly bool
	Episode     *models.Episode
}

// Evaluate picks the playable asset tier for a (user, media, optional
// episode) tuple. Trailers are a media-level concept: an episode request
// below premium is denied outright, never downgraded to a trailer.
func Evaluate(u *auth.User, premium bool, m *models.Media, ep *EpisodeRef) (*Decision, error) {
	tier := TierAnonymous
	if u != nil && u.HasAuth() {
		tier = TierStandard
		if premium {
			tier = TierPremium
		}
	}

	if ep != nil {
		if m.Kind != models.MediaKindSeries {
			return nil, sv.ValidationError("episode", "media is not a series")
		}
		if tier != TierPremium {
			return nil, sv.ErrAccessDenied
		}
		e := m.GetEpisode(ep.Season, ep.Episode)
		if e == nil {
			return nil, sv.ErrNotFound
		}
		return &Decision{
			Tier:      TierPremium,
			Reference: e.VideoRef,
			Episode:   e,
		}, nil
	}

	if tier != TierPremium {
		return &Decision{
			Tier:        tier,
			Reference:   m.TrailerRef,
			TrailerOnly: true,
		}, nil
	}

	if m.Kind == models.MediaKindSeries {
		// Series playback goes through episodes; the title-level asset is
		// the trailer even for premium viewers.
		return &Decision{
			Tier:      TierPremium,
			Reference: m.TrailerRef,
		}, nil
	}

	if m.VideoRef == nil || *m.VideoRef == "" {
		return nil, sv.ErrNotFound
	}
	return &Decision{
		Tier:      TierPremium,
		Reference: *m.VideoRef,
	}, nil
}
