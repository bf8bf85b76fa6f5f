package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

const defaultMaxBodyBytes = 32 << 20

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Reason    string
	Headers   http.Header
	BodyBytes []byte
	Duration  time.Duration
}

// Executor executes HTTP requests with timing and a bounded body read.
type Executor struct {
	client       *http.Client
	maxBodyBytes int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes caps how much of a response body is accepted.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.maxBodyBytes = n
		}
	}
}

// NewExecutor builds an Executor with a default client.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		client:       New(DefaultConfig()),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes the request once and returns response data plus duration.
// A body larger than the cap is an error, not a truncation, since a cut JSON
// document is useless to the caller.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	resp, err := e.client.Do(req.WithContext(ctx))
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodyBytes+1))
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Status: resp.StatusCode, Duration: duration}, err
	}
	if int64(len(body)) > e.maxBodyBytes {
		return ResponseData{Status: resp.StatusCode, Reason: reasonPhrase(resp), Duration: duration},
			fmt.Errorf("%w: more than %d bytes", domain.ErrResponseTooBig, e.maxBodyBytes)
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Reason:    reasonPhrase(resp),
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Duration:  duration,
	}, nil
}

// reasonPhrase returns the text after the code in the status line, which
// servers are free to choose.
func reasonPhrase(resp *http.Response) string {
	return strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" ")
}
