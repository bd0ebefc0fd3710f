package subscription

import (
	"context"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	cs "github.com/webtor-io/common-services"

	"github.com/jacob15803/StreamSphere-sub000/models"
)

// Subscription answers "is this user premium right now". The answer is
// re-derived from plan/status/end-date on every call and never cached, so a
// lapsed end date takes effect immediately regardless of the stored status.
type Subscription struct {
	pg *cs.PG
}

func New(pg *cs.PG) *Subscription {
	return &Subscription{
		pg: pg,
	}
}

func (s *Subscription) IsPremium(ctx context.Context, uID uuid.UUID) (bool, error) {
	db := s.pg.Get()
	if db == nil {
		return false, errors.New("database not initialized")
	}
	sub, err := models.GetSubscription(ctx, db, uID)
	if err != nil {
		return false, err
	}
	return sub.ActiveAt(time.Now()), nil
}

func (s *Subscription) Get(ctx context.Context, uID uuid.UUID) (*models.Subscription, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	return models.GetSubscription(ctx, db, uID)
}
