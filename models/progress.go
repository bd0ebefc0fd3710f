package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Progress holds the last reported playback position for a (user, media)
// pair. The composite PK keeps at most one row per pair; concurrent reports
// settle on whichever write lands last.
type Progress struct {
	tableName struct{} `pg:"progress"`

	UserID          uuid.UUID `pg:"user_id,pk,type:uuid"`
	MediaID         uuid.UUID `pg:"media_id,pk,type:uuid"`
	PositionSeconds int64     `pg:"position_seconds,use_zero"`
	UpdatedAt       time.Time `pg:"updated_at"`

	Media *Media `pg:"rel:has-one,fk:media_id"`
}

// The conflict target is the composite PK, so two reports for the same
// pair always collapse into one row and the later write wins.
const (
	progressConflict    = "(user_id, media_id) DO UPDATE"
	progressConflictSet = "position_seconds = EXCLUDED.position_seconds, updated_at = EXCLUDED.updated_at"
)

func UpsertProgress(ctx context.Context, db *pg.DB, uID uuid.UUID, mediaID uuid.UUID, positionSeconds int64) error {
	p := &Progress{
		UserID:          uID,
		MediaID:         mediaID,
		PositionSeconds: positionSeconds,
		UpdatedAt:       time.Now(),
	}
	_, err := db.Model(p).
		Context(ctx).
		OnConflict(progressConflict).
		Set(progressConflictSet).
		Insert()
	if err != nil {
		return errors.Wrap(err, "failed to upsert progress")
	}
	return nil
}

func GetProgressList(ctx context.Context, db *pg.DB, uID uuid.UUID) ([]*Progress, error) {
	var list []*Progress
	err := db.Model(&list).
		Context(ctx).
		Where("progress.user_id = ?", uID).
		Relation("Media").
		Relation("Media.Genres").
		OrderExpr("progress.updated_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch progress list")
	}
	return list, nil
}

func GetProgress(ctx context.Context, db *pg.DB, uID uuid.UUID, mediaID uuid.UUID) (*Progress, error) {
	var p Progress
	err := db.Model(&p).
		Context(ctx).
		Where("progress.user_id = ? AND progress.media_id = ?", uID, mediaID).
		Relation("Media").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch progress")
	}
	return &p, nil
}

func RemoveProgress(ctx context.Context, db *pg.DB, uID uuid.UUID, mediaID uuid.UUID) error {
	_, err := db.Model((*Progress)(nil)).
		Context(ctx).
		Where("user_id = ? AND media_id = ?", uID, mediaID).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to remove progress")
	}
	return nil
}
