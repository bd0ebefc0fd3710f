package playback

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetProgress_BadMediaID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Handler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/playback/progress/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "media_id", Value: "not-a-uuid"}}

	s.getProgress(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "media_id")
}

func TestRemoveProgress_BadMediaID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Handler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/playback/progress/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "media_id", Value: "not-a-uuid"}}

	s.removeProgress(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
