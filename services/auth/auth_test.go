package auth

import (
	"net/http"
	"testing"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacob15803/StreamSphere-sub000/models"
)

func testAuth(expire time.Duration) *Auth {
	return &Auth{
		secret:      "test-secret",
		tokenExpire: expire,
	}
}

func TestIssueAndParseToken(t *testing.T) {
	a := testAuth(time.Hour)
	u := &models.User{
		UserID: uuid.NewV4(),
		Email:  "viewer@example.com",
	}

	token, expiresAt, err := a.IssueToken(u)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	id, err := a.parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, id)
}

func TestParseToken_WrongSecret(t *testing.T) {
	a := testAuth(time.Hour)
	u := &models.User{UserID: uuid.NewV4(), Email: "viewer@example.com"}

	token, _, err := a.IssueToken(u)
	require.NoError(t, err)

	other := &Auth{secret: "other-secret", tokenExpire: time.Hour}
	_, err = other.parseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	a := testAuth(-time.Hour)
	u := &models.User{UserID: uuid.NewV4(), Email: "viewer@example.com"}

	token, _, err := a.IssueToken(u)
	require.NoError(t, err)

	_, err = a.parseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	a := testAuth(time.Hour)

	_, err := a.parseToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractBearer(t *testing.T) {
	for _, tc := range []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: ""},
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, extractBearer(r))
		})
	}
}

func TestUserHasAuth(t *testing.T) {
	assert.False(t, (&User{}).HasAuth())
	assert.True(t, (&User{ID: uuid.NewV4(), Email: "viewer@example.com"}).HasAuth())
}
