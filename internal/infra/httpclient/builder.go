package httpclient

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

const contentTypeJSON = "application/json"

// BuildJSONPost builds a POST request carrying body as application/json.
func BuildJSONPost(ctx context.Context, url string, body []byte, userAgent string) (*http.Request, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindRequestFailed,
			Err:  domain.ErrInvalidConfig,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindRequestFailed,
			Path: url,
			Err:  err,
		}
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return req, nil
}
