package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

type Subscription struct {
	tableName struct{} `pg:"subscription"`

	UserID    uuid.UUID          `pg:"user_id,pk,type:uuid"`
	Plan      string             `pg:"plan"`
	Status    SubscriptionStatus `pg:"status"`
	EndsAt    *time.Time         `pg:"ends_at"`
	CreatedAt time.Time          `pg:"created_at,default:now()"`
	UpdatedAt time.Time          `pg:"updated_at,default:now()"`
}

// ActiveAt re-derives entitlement from status and end date. An end date in
// the past beats a stored "active" status.
func (s *Subscription) ActiveAt(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Status != SubscriptionStatusActive {
		return false
	}
	if s.EndsAt != nil && s.EndsAt.Before(now) {
		return false
	}
	return true
}

func GetSubscription(ctx context.Context, db *pg.DB, uID uuid.UUID) (*Subscription, error) {
	var sub Subscription
	err := db.Model(&sub).
		Context(ctx).
		Where("user_id = ?", uID).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch subscription")
	}
	return &sub, nil
}
