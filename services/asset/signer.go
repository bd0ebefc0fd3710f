package asset

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	cs "github.com/webtor-io/common-services"
)

// Signer produces a time-bounded URL granting read access to a stored
// object.
type Signer interface {
	SignURL(ctx context.Context, bucket string, key string, expire time.Duration) (string, error)
}

type S3Signer struct {
	s3Cl *cs.S3Client
}

func NewS3Signer(s3Cl *cs.S3Client) *S3Signer {
	return &S3Signer{
		s3Cl: s3Cl,
	}
}

func (s *S3Signer) SignURL(_ context.Context, bucket string, key string, expire time.Duration) (string, error) {
	cl := s.s3Cl.Get()
	if cl == nil {
		return "", errors.New("s3 client not initialized")
	}
	if bucket == "" {
		return "", errors.New("no bucket configured")
	}
	req, _ := cl.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	u, err := req.Presign(expire)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign url")
	}
	return u, nil
}
