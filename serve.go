package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	wau "github.com/jacob15803/StreamSphere-sub000/handlers/auth"
	wc "github.com/jacob15803/StreamSphere-sub000/handlers/catalog"
	wp "github.com/jacob15803/StreamSphere-sub000/handlers/playback"
	ww "github.com/jacob15803/StreamSphere-sub000/handlers/watchlist"
	"github.com/jacob15803/StreamSphere-sub000/services/asset"
	"github.com/jacob15803/StreamSphere-sub000/services/auth"
	"github.com/jacob15803/StreamSphere-sub000/services/catalog"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
	"github.com/jacob15803/StreamSphere-sub000/services/playback"
	"github.com/jacob15803/StreamSphere-sub000/services/progress"
	"github.com/jacob15803/StreamSphere-sub000/services/subscription"
	w "github.com/jacob15803/StreamSphere-sub000/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterS3ClientFlags(c.Flags)
	c.Flags = cs.RegisterRedisClientFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = sv.RegisterFlags(c.Flags)
	c.Flags = auth.RegisterFlags(c.Flags)
	c.Flags = auth.RegisterOTPFlags(c.Flags)
	c.Flags = asset.RegisterFlags(c.Flags)
	c.Flags = wc.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting Migrations
	err := pgMigrate(c)
	if err != nil {
		return err
	}

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false

	// Setting Web
	web := w.New(c, r)
	servers = append(servers, web)
	defer web.Close()

	// Setting Auth
	a := auth.New(c, pg)
	if a != nil {
		a.RegisterHandler(r)
	}

	// Setting Redis
	redis := cs.NewRedisClient(c)
	defer redis.Close()

	// Setting OTP
	otp := auth.NewOTP(c, redis)

	// Setting S3 Client
	s3Cl := cs.NewS3Client(c, cl)

	// Setting AssetLocator
	locator := asset.New(c, s3Cl)

	// Setting Catalog
	cat := catalog.New(pg)

	// Setting Subscription
	sub := subscription.New(pg)

	// Setting ProgressTracker
	tracker := progress.New(pg)

	// Setting Playback
	pb := playback.New(cat, sub, locator)

	// Setting AuthHandler
	if a != nil && otp != nil {
		wau.RegisterHandler(r, pg, a, otp, &auth.LogSender{}, sub)
	}

	// Setting CatalogHandler
	wc.RegisterHandler(c, r, cat, locator, s3Cl, cl)

	// Setting PlaybackHandler
	wp.RegisterHandler(r, pb, tracker, locator)

	// Setting WatchlistHandler
	ww.RegisterHandler(r, pg, cat, locator)

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
