package playback

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		name string
		err  error
		code int
	}{
		{name: "auth required", err: sv.ErrAuthRequired, code: http.StatusUnauthorized},
		{name: "not found", err: sv.ErrNotFound, code: http.StatusNotFound},
		{name: "wrapped not found", err: errors.Wrap(sv.ErrNotFound, "media lookup"), code: http.StatusNotFound},
		{name: "access denied", err: sv.ErrAccessDenied, code: http.StatusForbidden},
		{name: "validation", err: sv.ValidationError("media_id", "must be a uuid"), code: http.StatusBadRequest},
		{name: "signing failure", err: sv.NewSigningError(errors.New("connection refused")), code: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), code: http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			abortWithError(c, tc.err)

			assert.Equal(t, tc.code, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAbortWithError_ValidationMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	abortWithError(c, sv.ValidationError("season", "must be an integer"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "season: must be an integer")
}
