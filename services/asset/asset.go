package asset

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/lazymap"

	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

const (
	mediaBucketFlag = "media-bucket"
	videoExpireFlag = "signed-url-video-expire"
	imageExpireFlag = "signed-url-image-expire"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   mediaBucketFlag,
			Usage:  "bucket for bare media keys",
			EnvVar: "MEDIA_BUCKET",
		},
		cli.DurationFlag{
			Name:   videoExpireFlag,
			Usage:  "signed video url validity window",
			Value:  time.Hour,
			EnvVar: "SIGNED_URL_VIDEO_EXPIRE",
		},
		cli.DurationFlag{
			Name:   imageExpireFlag,
			Usage:  "signed image url validity window",
			Value:  2 * time.Hour,
			EnvVar: "SIGNED_URL_IMAGE_EXPIRE",
		},
	)
}

type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Locator resolves stored asset references into URLs a client can fetch
// directly. References that are not object-store locations pass through
// unchanged; the rest get a time-bounded signed URL.
type Locator struct {
	signer      Signer
	bucket      string
	videoExpire time.Duration
	imageExpire time.Duration
	urls        *lazymap.LazyMap[string]
}

func New(c *cli.Context, s3Cl *cs.S3Client) *Locator {
	var signer Signer
	if s3Cl != nil {
		signer = NewS3Signer(s3Cl)
	}
	return NewWithSigner(signer, c.String(mediaBucketFlag), c.Duration(videoExpireFlag), c.Duration(imageExpireFlag))
}

func NewWithSigner(signer Signer, bucket string, videoExpire time.Duration, imageExpire time.Duration) *Locator {
	return &Locator{
		signer:      signer,
		bucket:      bucket,
		videoExpire: videoExpire,
		imageExpire: imageExpire,
		// Signed urls stay cached for a small fraction of the shortest
		// validity window, so a cached url is always still usable.
		urls: lazymap.New[string](&lazymap.Config{
			Expire:      10 * time.Minute,
			ErrorExpire: 30 * time.Second,
		}),
	}
}

// ResolveURL turns a stored reference into a fetchable URL. An empty
// reference resolves to an empty URL, not an error.
func (s *Locator) ResolveURL(ctx context.Context, ref string, kind Kind) (string, error) {
	if ref == "" {
		return "", nil
	}
	loc, ok := s.parseReference(ref)
	if !ok {
		return ref, nil
	}
	key := fmt.Sprintf("%v:%v/%v", kind, loc.bucket, loc.key)
	return s.urls.Get(key, func() (string, error) {
		if s.signer == nil {
			return "", sv.NewSigningError(fmt.Errorf("object storage not configured"))
		}
		u, err := s.signer.SignURL(ctx, loc.bucket, loc.key, s.expire(kind))
		if err != nil {
			return "", sv.NewSigningError(err)
		}
		return u, nil
	})
}

func (s *Locator) expire(kind Kind) time.Duration {
	if kind == KindImage {
		return s.imageExpire
	}
	return s.videoExpire
}

type location struct {
	bucket string
	key    string
}

var virtualHostRe = regexp.MustCompile(`^([a-z0-9][a-z0-9.-]*)\.s3([.-][a-z0-9-]+)?\.amazonaws\.com$`)

// parseReference recognizes s3://bucket/key uris, virtual-host style
// bucket.s3.<region>.amazonaws.com urls and bare keys. Anything else is an
// already-fetchable URL and passes through.
func (s *Locator) parseReference(ref string) (*location, bool) {
	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, false
		}
		switch u.Scheme {
		case "s3":
			return &location{
				bucket: u.Host,
				key:    strings.TrimPrefix(u.Path, "/"),
			}, true
		case "http", "https":
			m := virtualHostRe.FindStringSubmatch(strings.ToLower(u.Hostname()))
			if m == nil {
				return nil, false
			}
			return &location{
				bucket: m[1],
				key:    strings.TrimPrefix(u.Path, "/"),
			}, true
		default:
			return nil, false
		}
	}
	// Bare key, signed against the configured media bucket.
	return &location{
		bucket: s.bucket,
		key:    strings.TrimPrefix(ref, "/"),
	}, true
}
