package httpsubmit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anujrohit1/pubfilter/internal/domain"
	"github.com/anujrohit1/pubfilter/internal/infra/httpclient"
	"github.com/anujrohit1/pubfilter/internal/ports"
)

// StatusError reports a 4xx or 5xx answer from the service.
type StatusError struct {
	Code   int
	Reason string
	URL    string
}

func (e *StatusError) Error() string {
	class := "Client"
	if e.Code >= 500 {
		class = "Server"
	}
	reason := e.Reason
	if reason == "" {
		reason = http.StatusText(e.Code)
	}
	return fmt.Sprintf("%d %s Error: %s for url: %s", e.Code, class, reason, e.URL)
}

func (e *StatusError) Unwrap() error { return domain.ErrHTTPStatus }

type Submitter struct {
	exec      *httpclient.Executor
	userAgent string
}

type Option func(*Submitter)

func WithUserAgent(ua string) Option {
	return func(s *Submitter) { s.userAgent = ua }
}

func New(exec *httpclient.Executor, opts ...Option) *Submitter {
	s := &Submitter{exec: exec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.PayloadSubmitter = (*Submitter)(nil)

// Submit POSTs doc as JSON to url in a single attempt. Transport failures and
// 4xx/5xx statuses are KindRequestFailed; the response is returned alongside
// a status error so callers can still log it.
func (s *Submitter) Submit(ctx context.Context, url string, doc domain.Document) (domain.Response, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return domain.Response{}, &domain.OpError{
			Op:   "httpsubmit.encode",
			Kind: domain.KindRequestFailed,
			Path: url,
			Err:  err,
		}
	}

	req, err := httpclient.BuildJSONPost(ctx, url, body, s.userAgent)
	if err != nil {
		return domain.Response{}, err
	}

	data, err := s.exec.Do(ctx, req)
	resp := domain.Response{
		URL:        url,
		StatusCode: data.Status,
		Reason:     data.Reason,
		Headers:    cloneHeaders(data.Headers),
		Body:       data.BodyBytes,
		Latency:    data.Duration,
	}
	if err != nil {
		return resp, &domain.OpError{
			Op:   "httpsubmit.post",
			Kind: domain.KindRequestFailed,
			Path: url,
			Err:  err,
		}
	}

	if resp.StatusCode >= 400 {
		return resp, &domain.OpError{
			Op:   "httpsubmit.status",
			Kind: domain.KindRequestFailed,
			Path: url,
			Err:  &StatusError{Code: resp.StatusCode, Reason: resp.Reason, URL: url},
		}
	}

	return resp, nil
}

func cloneHeaders(h http.Header) map[string][]string {
	out := make(map[string][]string, len(h))
	for k, v := range h {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
