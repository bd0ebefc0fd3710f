package models

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

type Episode struct {
	tableName struct{} `pg:"episode"`

	EpisodeID       uuid.UUID `pg:"episode_id,pk,type:uuid,default:uuid_generate_v4()"`
	MediaID         uuid.UUID `pg:"media_id,type:uuid"`
	Season          int       `pg:"season,use_zero"`
	Episode         int       `pg:"episode,use_zero"`
	Title           *string   `pg:"title"`
	VideoRef        string    `pg:"video_ref"`
	ThumbnailRef    *string   `pg:"thumbnail_ref"`
	DurationMinutes *int16    `pg:"duration_minutes"`
	CreatedAt       time.Time `pg:"created_at,default:now()"`
	UpdatedAt       time.Time `pg:"updated_at,default:now()"`

	Media *Media `pg:"rel:has-one,fk:media_id"`
}
