package playback

import (
	"context"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jacob15803/StreamSphere-sub000/services/access"
	"github.com/jacob15803/StreamSphere-sub000/services/asset"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	"github.com/jacob15803/StreamSphere-sub000/services/catalog"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
	"github.com/jacob15803/StreamSphere-sub000/services/subscription"
)

// Playback orchestrates policy evaluation and asset resolution for one
// playback-url request.
type Playback struct {
	catalog *catalog.Catalog
	sub     *subscription.Subscription
	locator *asset.Locator
}

func New(cat *catalog.Catalog, sub *subscription.Subscription, locator *asset.Locator) *Playback {
	return &Playback{
		catalog: cat,
		sub:     sub,
		locator: locator,
	}
}

type URLRequest struct {
	User    *auth.User
	MediaID uuid.UUID
	Episode *access.EpisodeRef
}

type URLResult struct {
	Tier        access.Tier
	TrailerOnly bool
	URL         string
	PosterURL   string
}

// GetURL runs the full flow: identity → fresh entitlement → policy →
// signed url. The entitlement is derived per request, never reused.
func (s *Playback) GetURL(ctx context.Context, r *URLRequest) (*URLResult, error) {
	m, err := s.catalog.GetMedia(ctx, r.MediaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, sv.ErrNotFound
	}

	premium := false
	if r.User != nil && r.User.HasAuth() {
		premium, err = s.sub.IsPremium(ctx, r.User.ID)
		if err != nil {
			return nil, err
		}
	}

	d, err := access.Evaluate(r.User, premium, m, r.Episode)
	if err != nil {
		return nil, err
	}

	u, err := s.locator.ResolveURL(ctx, d.Reference, asset.KindVideo)
	if err != nil {
		return nil, err
	}

	return &URLResult{
		Tier:        d.Tier,
		TrailerOnly: d.TrailerOnly,
		URL:         u,
		PosterURL:   s.posterURL(ctx, m.PosterRef),
	}, nil
}

type TrailerResult struct {
	URL       string
	PosterURL string
}

// GetTrailer resolves the public trailer for a title. No identity needed.
func (s *Playback) GetTrailer(ctx context.Context, mediaID uuid.UUID) (*TrailerResult, error) {
	m, err := s.catalog.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, sv.ErrNotFound
	}
	u, err := s.locator.ResolveURL(ctx, m.TrailerRef, asset.KindVideo)
	if err != nil {
		return nil, err
	}
	return &TrailerResult{
		URL:       u,
		PosterURL: s.posterURL(ctx, m.PosterRef),
	}, nil
}

// A broken poster must not break playback, so poster failures are logged
// and swallowed here.
func (s *Playback) posterURL(ctx context.Context, ref string) string {
	u, err := s.locator.ResolveURL(ctx, ref, asset.KindImage)
	if err != nil {
		log.WithError(err).Warn("failed to resolve poster url")
		return ""
	}
	return u
}
