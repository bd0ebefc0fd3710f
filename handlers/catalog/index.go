package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	hc "github.com/jacob15803/StreamSphere-sub000/handlers/common"
	"github.com/jacob15803/StreamSphere-sub000/models"
	"github.com/jacob15803/StreamSphere-sub000/services/catalog"
)

type indexArgs struct {
	kind      models.MediaKind
	genreSlug string
	sort      models.SortType
}

func (s *Handler) bindIndexArgs(c *gin.Context) (*indexArgs, error) {
	args := &indexArgs{
		genreSlug: c.Query("genre"),
	}
	switch k := c.Query("kind"); k {
	case "":
	case string(models.MediaKindMovie):
		args.kind = models.MediaKindMovie
	case string(models.MediaKindSeries):
		args.kind = models.MediaKindSeries
	default:
		return nil, errors.Errorf("wrong media kind %v", k)
	}
	switch c.Query("sort") {
	case "", "recent":
		args.sort = models.SortTypeRecentlyAdded
	case "title":
		args.sort = models.SortTypeTitle
	case "year":
		args.sort = models.SortTypeYear
	default:
		args.sort = models.SortTypeRecentlyAdded
	}
	return args, nil
}

func (s *Handler) index(c *gin.Context) {
	args, err := s.bindIndexArgs(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := s.catalog.ListMedia(c.Request.Context(), args.kind, args.genreSlug, args.sort)
	if err != nil {
		log.WithError(err).Error("failed to list media")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	items := make([]hc.MediaSummary, 0, len(list))
	for _, m := range list {
		items = append(items, hc.NewMediaSummary(c.Request.Context(), s.locator, m))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Handler) genres(c *gin.Context) {
	genres, err := s.catalog.GetGenres(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to list genres")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	type genreItem struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	items := make([]genreItem, 0, len(genres))
	for _, g := range genres {
		items = append(items, genreItem{
			Name: catalog.GenreDisplayName(g),
			Slug: g.Slug,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
