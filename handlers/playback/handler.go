package playback

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jacob15803/StreamSphere-sub000/services/asset"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	"github.com/jacob15803/StreamSphere-sub000/services/playback"
	"github.com/jacob15803/StreamSphere-sub000/services/progress"
)

type Handler struct {
	pb      *playback.Playback
	tracker *progress.Tracker
	locator *asset.Locator
}

func RegisterHandler(r *gin.Engine, pb *playback.Playback, tracker *progress.Tracker, locator *asset.Locator) {
	h := &Handler{
		pb:      pb,
		tracker: tracker,
		locator: locator,
	}

	gr := r.Group("/playback")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE"},
		AllowHeaders: []string{"content-type", "authorization"},
	}))
	gr.GET("/url/:media_id", h.url)
	gr.GET("/trailer/:media_id", h.trailer)

	gra := gr.Group("")
	gra.Use(auth.HasAuth)
	gra.POST("/progress", h.reportProgress)
	gra.GET("/progress/:media_id", h.getProgress)
	gra.DELETE("/progress/:media_id", h.removeProgress)
	gra.GET("/continue", h.continueWatching)
}
