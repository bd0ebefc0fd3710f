package migrations

import (
	"strings"

	"github.com/go-pg/migrations/v8"
	log "github.com/sirupsen/logrus"

	"github.com/jacob15803/StreamSphere-sub000/models"
)

func PopulateGenreSlugs(col *migrations.Collection) {
	col.MustRegister(func(db migrations.DB) error {
		var genres []*models.Genre

		err := db.Model(&genres).
			Where("slug is null").
			Select()
		if err != nil {
			return err
		}
		for _, g := range genres {
			g.Slug = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(g.Name)), " ", "-")
			log.Infof("Updating slug for genre %s: %s", g.GenreID, g.Slug)
			res, err := db.Model(g).WherePK().Column("slug").Update()
			if err != nil {
				return err
			}
			log.Infof("Updated %d rows", res.RowsAffected())
		}
		return nil
	}, func(db migrations.DB) error {
		return nil
	})
}
