package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Watchlist struct {
	tableName struct{} `pg:"watchlist"`

	UserID    uuid.UUID `pg:"user_id,pk,type:uuid"`
	MediaID   uuid.UUID `pg:"media_id,pk,type:uuid"`
	CreatedAt time.Time `pg:"created_at"`

	Media *Media `pg:"rel:has-one,fk:media_id"`
}

func IsInWatchlist(ctx context.Context, db *pg.DB, uID uuid.UUID, mediaID uuid.UUID) (bool, error) {
	exists, err := db.Model((*Watchlist)(nil)).
		Context(ctx).
		Where("user_id = ? AND media_id = ?", uID, mediaID).
		Exists()
	if err != nil {
		return false, errors.Wrap(err, "failed to check watchlist membership")
	}
	return exists, nil
}

func AddToWatchlist(ctx context.Context, db *pg.DB, uID uuid.UUID, mediaID uuid.UUID) error {
	w := &Watchlist{
		UserID:    uID,
		MediaID:   mediaID,
		CreatedAt: time.Now(),
	}
	_, err := db.Model(w).
		Context(ctx).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return errors.Wrap(err, "failed to insert watchlist entry")
	}
	return nil
}

func RemoveFromWatchlist(ctx context.Context, db *pg.DB, uID uuid.UUID, mediaID uuid.UUID) error {
	_, err := db.Model((*Watchlist)(nil)).
		Context(ctx).
		Where("user_id = ? AND media_id = ?", uID, mediaID).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to remove from watchlist")
	}
	return nil
}

func GetWatchlist(ctx context.Context, db *pg.DB, uID uuid.UUID) ([]*Watchlist, error) {
	var list []*Watchlist
	err := db.Model(&list).
		Context(ctx).
		Where("watchlist.user_id = ?", uID).
		Relation("Media").
		Relation("Media.Genres").
		OrderExpr("watchlist.created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch watchlist")
	}
	return list, nil
}
