package domain

import "time"

// Config holds the ambient settings of a run. The input file and the target
// URL are constants and deliberately absent.
type Config struct {
	Logging LoggingConfig
	HTTP    HTTPConfig
}

type LoggingConfig struct {
	File  string `validate:"excludesall=\x00"`
	Debug bool
}

type HTTPConfig struct {
	MaxResponseBytes    int64         `validate:"gte=1"`
	DialTimeout         time.Duration `validate:"gte=0"`
	TLSHandshakeTimeout time.Duration `validate:"gte=0"`
	UserAgent           string        `validate:"omitempty,printascii"`
}

// DefaultConfig provides the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			MaxResponseBytes:    32 << 20,
			DialTimeout:         5 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
	}
}
