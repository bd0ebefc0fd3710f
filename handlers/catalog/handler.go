package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/jacob15803/StreamSphere-sub000/services/asset"
	"github.com/jacob15803/StreamSphere-sub000/services/catalog"
)

const (
	posterCacheS3BucketFlag = "poster-cache-s3-bucket"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   posterCacheS3BucketFlag,
			Usage:  "s3 bucket for resized poster cache",
			Value:  "poster-cache",
			EnvVar: "POSTER_CACHE_S3_BUCKET",
		},
	)
}

type Handler struct {
	catalog             *catalog.Catalog
	locator             *asset.Locator
	cl                  *http.Client
	s3Cl                *cs.S3Client
	posterCacheS3Bucket string
}

func RegisterHandler(c *cli.Context, r *gin.Engine, cat *catalog.Catalog, locator *asset.Locator, s3Cl *cs.S3Client, cl *http.Client) {
	h := &Handler{
		catalog:             cat,
		locator:             locator,
		cl:                  cl,
		s3Cl:                s3Cl,
		posterCacheS3Bucket: c.String(posterCacheS3BucketFlag),
	}
	r.GET("/catalog", h.index)
	r.GET("/catalog/genres", h.genres)
	r.GET("/catalog/:media_id", h.show)
	r.GET("/catalog/poster/:media_id/:file", h.poster)
}
