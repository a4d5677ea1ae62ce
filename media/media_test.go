package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T, handler http.HandlerFunc) *Cloudinary {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	host, err := NewCloudinary("demo", "key", "secret")
	require.NoError(t, err)
	// the uploader holds its own copy of the configuration
	host.cld.Upload.Config.API.UploadPrefix = srv.URL
	return host
}

func TestUpload(t *testing.T) {
	host := newTestHost(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/upload"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/a.png","public_id":"abc123"}`))
	})

	url, publicID, err := host.Upload(context.Background(), strings.NewReader("png-bytes"), "a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/a.png", url)
	assert.Equal(t, "abc123", publicID)
}

func TestUpload_HostError(t *testing.T) {
	var hits int32
	host := newTestHost(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	})

	_, _, err := host.Upload(context.Background(), strings.NewReader("nope"), "a.txt")
	assert.ErrorContains(t, err, "Invalid image file")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestDestroy(t *testing.T) {
	host := newTestHost(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/destroy"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"not found"}`))
	})

	result, err := host.Destroy(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, DestroyNotFound, result)
}

func TestUnconfigured(t *testing.T) {
	var host ImageHost = Unconfigured{}

	_, _, err := host.Upload(context.Background(), strings.NewReader("x"), "a.png")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = host.Destroy(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
