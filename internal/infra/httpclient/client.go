package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

type Config struct {
	// Transport-level limits only. There is no overall request timeout: the
	// single POST waits for the service for as long as it takes.
	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ExpectContinue  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ExpectContinue:      1 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        4,
		MaxIdleConnsPerHost: 2,
	}
}

// ConfigFrom overlays the user-facing HTTP settings on the defaults.
func ConfigFrom(h domain.HTTPConfig) Config {
	cfg := DefaultConfig()
	cfg.DialTimeout = h.DialTimeout
	cfg.TLSHandshake = h.TLSHandshakeTimeout
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ExpectContinueTimeout: cfg.ExpectContinue,
	}

	return &http.Client{Transport: tr}
}
