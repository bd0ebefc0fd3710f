package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type User struct {
	tableName struct{}  `pg:"user"`
	UserID    uuid.UUID `pg:"user_id,pk,type:uuid,default:uuid_generate_v4()"`
	Email     string    `pg:"email"`
	CreatedAt time.Time `pg:"created_at,default:now()"`
	UpdatedAt time.Time `pg:"updated_at,default:now()"`

	Subscription *Subscription `pg:"rel:has-one,fk:user_id"`
}

func GetOrCreateUser(ctx context.Context, db *pg.DB, email string) (*User, error) {
	user := &User{}
	err := db.Model(user).Context(ctx).Where("email = ?", email).Limit(1).Select()
	if err == nil {
		return user, nil // Found
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return nil, err // DB error
	}

	// Create new user
	user.Email = email
	_, err = db.Model(user).Context(ctx).Insert()
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(ctx context.Context, db *pg.DB, uID uuid.UUID) (*User, error) {
	user := &User{}
	err := db.Model(user).Context(ctx).Where("user_id = ?", uID).Limit(1).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user")
	}
	return user, nil
}
