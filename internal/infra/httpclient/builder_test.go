package httpclient

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

func TestBuildJSONPost(t *testing.T) {
	req, err := BuildJSONPost(context.Background(), "https://example.com/service/generate", []byte(`[1]`), "pubfilter/test")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/service/generate", req.URL.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "pubfilter/test", req.Header.Get("User-Agent"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(body))
}

func TestBuildJSONPost_NoUserAgentOverride(t *testing.T) {
	req, err := BuildJSONPost(context.Background(), "http://localhost/x", nil, "")
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("User-Agent"))
}

func TestBuildJSONPost_EmptyURL(t *testing.T) {
	_, err := BuildJSONPost(context.Background(), "  ", nil, "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindRequestFailed))
}

func TestBuildJSONPost_BadURL(t *testing.T) {
	_, err := BuildJSONPost(context.Background(), "://missing-scheme", nil, "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindRequestFailed))
}

func TestConfigFrom(t *testing.T) {
	h := domain.DefaultConfig().HTTP
	h.DialTimeout = 0
	cfg := ConfigFrom(h)
	assert.Zero(t, cfg.DialTimeout)
	assert.Equal(t, h.TLSHandshakeTimeout, cfg.TLSHandshake)

	c := New(cfg)
	assert.Zero(t, c.Timeout)
}
