package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

func init() {
	orm.RegisterTable((*MediaGenre)(nil))
}

type Genre struct {
	tableName struct{} `pg:"genre"`

	GenreID uuid.UUID `pg:"genre_id,pk,type:uuid,default:uuid_generate_v4()"`
	Name    string    `pg:"name"`
	Slug    string    `pg:"slug,unique"`
}

type MediaGenre struct {
	tableName struct{} `pg:"media_genre"`

	MediaID uuid.UUID `pg:"media_id,pk,type:uuid"`
	GenreID uuid.UUID `pg:"genre_id,pk,type:uuid"`
}

func GetGenreList(ctx context.Context, db *pg.DB) ([]*Genre, error) {
	var list []*Genre
	err := db.Model(&list).
		Context(ctx).
		OrderExpr("genre.name ASC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch genre list")
	}
	return list, nil
}
