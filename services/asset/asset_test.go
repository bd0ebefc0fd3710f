package asset

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sv "github.com/jacob15803/StreamSphere-sub000/services/common"
)

type fakeSigner struct {
	calls  int
	bucket string
	key    string
	expire time.Duration
	err    error
}

func (s *fakeSigner) SignURL(_ context.Context, bucket string, key string, expire time.Duration) (string, error) {
	s.calls++
	s.bucket = bucket
	s.key = key
	s.expire = expire
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("https://signed.example.com/%s/%s", bucket, key), nil
}

func newTestLocator(signer Signer) *Locator {
	return NewWithSigner(signer, "media", time.Hour, 2*time.Hour)
}

func TestResolveURL_EmptyReference(t *testing.T) {
	signer := &fakeSigner{}
	l := newTestLocator(signer)

	u, err := l.ResolveURL(context.Background(), "", KindVideo)
	require.NoError(t, err)
	assert.Equal(t, "", u)
	assert.Equal(t, 0, signer.calls)
}

func TestResolveURL_Passthrough(t *testing.T) {
	signer := &fakeSigner{}
	l := newTestLocator(signer)

	refs := []string{
		"https://cdn.example.com/trailers/one.mp4",
		"http://videos.example.org/two.mp4?quality=hd",
		"ftp://legacy.example.com/three.mp4",
	}
	for _, ref := range refs {
		u, err := l.ResolveURL(context.Background(), ref, KindVideo)
		require.NoError(t, err)
		assert.Equal(t, ref, u, "reference %q should pass through unchanged", ref)
	}
	assert.Equal(t, 0, signer.calls)
}

func TestResolveURL_S3URI(t *testing.T) {
	signer := &fakeSigner{}
	l := newTestLocator(signer)

	u, err := l.ResolveURL(context.Background(), "s3://movies/full/inception.mp4", KindVideo)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/movies/full/inception.mp4", u)
	assert.Equal(t, "movies", signer.bucket)
	assert.Equal(t, "full/inception.mp4", signer.key)
	assert.Equal(t, time.Hour, signer.expire)
}

func TestResolveURL_VirtualHostURL(t *testing.T) {
	for _, tc := range []struct {
		name   string
		ref    string
		bucket string
		key    string
	}{
		{
			name:   "with region",
			ref:    "https://trailers.s3.eu-west-1.amazonaws.com/t/dune.mp4",
			bucket: "trailers",
			key:    "t/dune.mp4",
		},
		{
			name:   "dashed region",
			ref:    "https://trailers.s3-us-east-2.amazonaws.com/t/dune.mp4",
			bucket: "trailers",
			key:    "t/dune.mp4",
		},
		{
			name:   "without region",
			ref:    "https://posters.s3.amazonaws.com/p/dune.jpg",
			bucket: "posters",
			key:    "p/dune.jpg",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			signer := &fakeSigner{}
			l := newTestLocator(signer)

			_, err := l.ResolveURL(context.Background(), tc.ref, KindVideo)
			require.NoError(t, err)
			assert.Equal(t, tc.bucket, signer.bucket)
			assert.Equal(t, tc.key, signer.key)
		})
	}
}

func TestResolveURL_BareKey(t *testing.T) {
	signer := &fakeSigner{}
	l := newTestLocator(signer)

	u, err := l.ResolveURL(context.Background(), "/trailers/dune.mp4", KindVideo)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/media/trailers/dune.mp4", u)
	assert.Equal(t, "media", signer.bucket)
	assert.Equal(t, "trailers/dune.mp4", signer.key)
}

func TestResolveURL_ImageExpire(t *testing.T) {
	signer := &fakeSigner{}
	l := newTestLocator(signer)

	_, err := l.ResolveURL(context.Background(), "posters/dune.jpg", KindImage)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, signer.expire)
}

func TestResolveURL_NoSigner(t *testing.T) {
	l := newTestLocator(nil)

	_, err := l.ResolveURL(context.Background(), "s3://movies/full/dune.mp4", KindVideo)
	require.Error(t, err)
	assert.True(t, sv.IsSigningError(err))
}

func TestResolveURL_SignerError(t *testing.T) {
	signer := &fakeSigner{err: fmt.Errorf("connection refused")}
	l := newTestLocator(signer)

	_, err := l.ResolveURL(context.Background(), "s3://movies/full/dune.mp4", KindVideo)
	require.Error(t, err)
	assert.True(t, sv.IsSigningError(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestResolveURL_CachesSignedURLs(t *testing.T) {
	signer := &fakeSigner{}
	l := newTestLocator(signer)

	first, err := l.ResolveURL(context.Background(), "s3://movies/full/dune.mp4", KindVideo)
	require.NoError(t, err)
	second, err := l.ResolveURL(context.Background(), "s3://movies/full/dune.mp4", KindVideo)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, signer.calls)
}

func TestParseReference(t *testing.T) {
	l := newTestLocator(nil)

	for _, tc := range []struct {
		ref    string
		ok     bool
		bucket string
		key    string
	}{
		{ref: "s3://movies/a/b.mp4", ok: true, bucket: "movies", key: "a/b.mp4"},
		{ref: "https://movies.s3.eu-west-1.amazonaws.com/a/b.mp4", ok: true, bucket: "movies", key: "a/b.mp4"},
		{ref: "https://cdn.example.com/a/b.mp4", ok: false},
		{ref: "https://example.amazonaws.com.evil.com/a.mp4", ok: false},
		{ref: "a/b.mp4", ok: true, bucket: "media", key: "a/b.mp4"},
		{ref: "/a/b.mp4", ok: true, bucket: "media", key: "a/b.mp4"},
	} {
		loc, ok := l.parseReference(tc.ref)
		assert.Equal(t, tc.ok, ok, "reference %q", tc.ref)
		if tc.ok {
			require.NotNil(t, loc)
			assert.Equal(t, tc.bucket, loc.bucket, "reference %q", tc.ref)
			assert.Equal(t, tc.key, loc.key, "reference %q", tc.ref)
		}
	}
}
