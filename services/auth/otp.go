package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
)

const (
	otpExpireFlag = "otp-expire"
)

func RegisterOTPFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.DurationFlag{
			Name:   otpExpireFlag,
			Usage:  "one-time code expiration time",
			Value:  10 * time.Minute,
			EnvVar: "OTP_EXPIRE",
		},
	)
}

// OTP stores one-time login codes in redis with a TTL. Delivery of the code
// is left to a Sender collaborator.
type OTP struct {
	redis  *cs.RedisClient
	expire time.Duration
}

func NewOTP(c *cli.Context, redisClient *cs.RedisClient) *OTP {
	if redisClient == nil {
		return nil
	}
	return &OTP{
		redis:  redisClient,
		expire: c.Duration(otpExpireFlag),
	}
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

// Issue generates a fresh 6-digit code for the email, replacing any
// previous one.
func (s *OTP) Issue(ctx context.Context, email string) (string, error) {
	cl := s.redis.Get()
	if cl == nil {
		return "", errors.New("redis not initialized")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate code")
	}
	code := fmt.Sprintf("%06d", n.Int64())
	err = cl.Set(ctx, otpKey(email), code, s.expire).Err()
	if err != nil {
		return "", errors.Wrap(err, "failed to store code")
	}
	return code, nil
}

// Verify consumes the stored code. The code is consumed on every attempt,
// match or not, so each issued code allows exactly one guess and brute force
// requires a fresh request per try. A failed attempt means re-requesting.
func (s *OTP) Verify(ctx context.Context, email string, code string) (bool, error) {
	cl := s.redis.Get()
	if cl == nil {
		return false, errors.New("redis not initialized")
	}
	stored, err := cl.GetDel(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read code")
	}
	return stored == code, nil
}
