package watchlist

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJSONContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/watchlist/add", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindArgs(t *testing.T) {
	s := &Handler{}

	t.Run("valid", func(t *testing.T) {
		mediaID := uuid.NewV4()
		c := makeJSONContext(t, `{"media_id": "`+mediaID.String()+`"}`)

		got, err := s.bindArgs(c)
		require.NoError(t, err)
		assert.Equal(t, mediaID, got)
	})

	t.Run("malformed body", func(t *testing.T) {
		c := makeJSONContext(t, `{`)

		_, err := s.bindArgs(c)
		assert.Error(t, err)
	})

	t.Run("wrong media id", func(t *testing.T) {
		c := makeJSONContext(t, `{"media_id": "not-a-uuid"}`)

		_, err := s.bindArgs(c)
		assert.Error(t, err)
	})
}
