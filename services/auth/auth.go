package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/jacob15803/StreamSphere-sub000/models"
	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

const (
	UseFlag         = "use-auth"
	tokenExpireFlag = "auth-token-expire"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.BoolFlag{
			Name:   UseFlag,
			Usage:  "use auth",
			EnvVar: "USE_AUTH",
		},
		cli.DurationFlag{
			Name:   tokenExpireFlag,
			Usage:  "session token expiration time",
			Value:  30 * 24 * time.Hour,
			EnvVar: "AUTH_TOKEN_EXPIRE",
		},
	)
}

type Auth struct {
	pg          *cs.PG
	secret      string
	tokenExpire time.Duration
}

func New(c *cli.Context, pg *cs.PG) *Auth {
	if !c.Bool(UseFlag) {
		return nil
	}
	return &Auth{
		pg:          pg,
		secret:      c.String(sv.SessionSecretFlag),
		tokenExpire: c.Duration(tokenExpireFlag),
	}
}

type User struct {
	ID      uuid.UUID
	Email   string
	Expired bool
}

func (s *User) HasAuth() bool {
	return s.Email != ""
}

type UserContext struct{}

type ErrorContext struct{}

func GetUserFromContext(c *gin.Context) *User {
	u := &User{}
	uc := c.Request.Context().Value(UserContext{})
	if su, ok := uc.(*models.User); ok {
		u.ID = su.UserID
		u.Email = su.Email
	}
	if err := c.Request.Context().Value(ErrorContext{}); err != nil {
		u.Expired = true
	}
	return u
}

// IssueToken signs a session token for the user.
func (s *Auth) IssueToken(u *models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenExpire)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.UserID.String(),
		"email": u.Email,
		"exp":   expiresAt.Unix(),
	})
	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}
	return signed, expiresAt, nil
}

func (s *Auth) parseToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return uuid.Nil, errors.New("missing sub claim")
	}
	id, err := uuid.FromString(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid sub claim")
	}
	return id, nil
}

// RegisterHandler resolves the bearer credential into a user in the request
// context. Absence of a credential is a valid state, a broken credential is
// recorded so that callers can tell the two apart.
func (s *Auth) RegisterHandler(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		tokenStr := extractBearer(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}
		uID, err := s.parseToken(tokenStr)
		if err != nil {
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ErrorContext{}, err))
			c.Next()
			return
		}
		db := s.pg.Get()
		if db == nil {
			_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no db"))
			return
		}
		u, err := models.GetUserByID(c.Request.Context(), db, uID)
		if err != nil {
			log.WithError(err).Error("failed to load user for token")
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		if u == nil {
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ErrorContext{}, errors.New("unknown user")))
			c.Next()
			return
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), UserContext{}, u))
		c.Next()
	})
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// HasAuth rejects requests that carry no valid identity.
func HasAuth(c *gin.Context) {
	u := GetUserFromContext(c)
	if !u.HasAuth() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": sv.ErrAuthRequired.Error()})
		return
	}
	c.Next()
}
