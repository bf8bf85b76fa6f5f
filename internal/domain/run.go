package domain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
	"time"
)

// RunErrorKind is a high-level classification of transport errors.
type RunErrorKind string

const (
	RunErrorUnknown  RunErrorKind = "unknown"
	RunErrorTimeout  RunErrorKind = "timeout"
	RunErrorDNS      RunErrorKind = "dns"
	RunErrorConn     RunErrorKind = "connection"
	RunErrorHTTP     RunErrorKind = "http"
	RunErrorCanceled RunErrorKind = "canceled"
)

// Response is what came back from the single POST.
type Response struct {
	URL        string
	StatusCode int
	Reason     string // status phrase as sent by the server
	Headers    map[string][]string
	Body       []byte
	Latency    time.Duration
}

// ReportShape tells whether the response root could be inspected for keys.
type ReportShape string

const (
	ReportObject    ReportShape = "object"
	ReportNotObject ReportShape = "not_object"
)

// Report is the outcome of inspecting a response body.
type Report struct {
	Shape ReportShape
	Keys  []string
}

// ClassifyRunError maps transport and status errors onto a RunErrorKind for logging.
func ClassifyRunError(err error) RunErrorKind {
	if err == nil {
		return RunErrorUnknown
	}

	if errors.Is(err, ErrHTTPStatus) {
		return RunErrorHTTP
	}
	if errors.Is(err, context.Canceled) {
		return RunErrorCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return RunErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return RunErrorTimeout
		}
		return RunErrorDNS
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return RunErrorTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.EPIPE) {
		return RunErrorConn
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return RunErrorConn
	}

	var uerr *url.Error
	if errors.As(err, &uerr) && strings.Contains(strings.ToLower(uerr.Err.Error()), "tls") {
		return RunErrorConn
	}

	return RunErrorUnknown
}
