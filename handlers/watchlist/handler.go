package watchlist

import (
	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"

	"github.com/jacob15803/StreamSphere-sub000/services/asset"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	"github.com/jacob15803/StreamSphere-sub000/services/catalog"
)

type Handler struct {
	pg      *cs.PG
	catalog *catalog.Catalog
	locator *asset.Locator
}

func RegisterHandler(r *gin.Engine, pg *cs.PG, cat *catalog.Catalog, locator *asset.Locator) {
	h := &Handler{
		pg:      pg,
		catalog: cat,
		locator: locator,
	}
	gr := r.Group("/watchlist")
	gr.Use(auth.HasAuth)
	gr.GET("", h.index)
	gr.POST("/add", h.add)
	gr.POST("/remove", h.remove)
}
