package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jacob15803/StreamSphere-sub000/models"
)

type requestCodeArgs struct {
	Email string `json:"email"`
}

func (s *Handler) requestCode(c *gin.Context) {
	var args requestCodeArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(args.Email))
	if email == "" || !strings.Contains(email, "@") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "email: must be a valid address"})
		return
	}
	// Correlation id for support, the code itself never leaves the logs.
	requestID := uuid.NewString()
	ctx := c.Request.Context()
	code, err := s.otp.Issue(ctx, email)
	if err != nil {
		log.WithError(err).WithField("request_id", requestID).Error("failed to issue one-time code")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	err = s.sender.Send(ctx, email, code)
	if err != nil {
		log.WithError(err).WithField("request_id", requestID).Error("failed to send one-time code")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"request_id":   requestID,
	})
}

type verifyCodeArgs struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (s *Handler) verifyCode(c *gin.Context) {
	var args verifyCodeArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed body"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(args.Email))
	if email == "" || args.Code == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "email and code must be set"})
		return
	}
	ctx := c.Request.Context()
	ok, err := s.otp.Verify(ctx, email, args.Code)
	if err != nil {
		log.WithError(err).Error("failed to verify one-time code")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "wrong or expired code"})
		return
	}
	db := s.pg.Get()
	if db == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	u, err := models.GetOrCreateUser(ctx, db, email)
	if err != nil {
		log.WithError(err).Error("failed to get or create user")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	token, expiresAt, err := s.auth.IssueToken(u)
	if err != nil {
		log.WithError(err).Error("failed to issue session token")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt,
	})
}
