package auth

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"

	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	"github.com/jacob15803/StreamSphere-sub000/services/subscription"
)

type Handler struct {
	pg     *cs.PG
	auth   *auth.Auth
	otp    *auth.OTP
	sender auth.Sender
	sub    *subscription.Subscription
}

func RegisterHandler(r *gin.Engine, pg *cs.PG, a *auth.Auth, otp *auth.OTP, sender auth.Sender, sub *subscription.Subscription) {
	h := &Handler{
		pg:     pg,
		auth:   a,
		otp:    otp,
		sender: sender,
		sub:    sub,
	}
	gr := r.Group("/auth")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"content-type", "authorization"},
	}))
	gr.POST("/otp/request", h.requestCode)
	gr.POST("/otp/verify", h.verifyCode)

	gra := gr.Group("")
	gra.Use(auth.HasAuth)
	gra.GET("/me", h.me)
}
