package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/anujrohit1/pubfilter/internal/domain"
	"github.com/anujrohit1/pubfilter/internal/ports"
)

var validate = validator.New()

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig reads a pubfilter YAML settings file and applies it on top of
// the defaults. An empty path returns the defaults.
func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.apply",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := Validate(cfg); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

// Validate checks the struct tags on domain.Config.
func Validate(cfg domain.Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", domain.ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

func apply(cfg *domain.Config, y yamlConfig) error {
	p := y.Pubfilter

	if p.Logging.File != "" {
		cfg.Logging.File = p.Logging.File
	}
	if p.Logging.Debug != nil {
		cfg.Logging.Debug = *p.Logging.Debug
	}

	if p.HTTP.MaxResponseBytes != nil {
		cfg.HTTP.MaxResponseBytes = *p.HTTP.MaxResponseBytes
	}
	if p.HTTP.UserAgent != "" {
		cfg.HTTP.UserAgent = p.HTTP.UserAgent
	}

	var err error
	if cfg.HTTP.DialTimeout, err = duration("http.dial_timeout", p.HTTP.DialTimeout, cfg.HTTP.DialTimeout); err != nil {
		return err
	}
	if cfg.HTTP.TLSHandshakeTimeout, err = duration("http.tls_handshake_timeout", p.HTTP.TLSHandshakeTimeout, cfg.HTTP.TLSHandshakeTimeout); err != nil {
		return err
	}
	return nil
}

func duration(field, raw string, def time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

type yamlConfig struct {
	Pubfilter struct {
		Logging struct {
			File  string `yaml:"file"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"logging"`

		HTTP struct {
			MaxResponseBytes    *int64 `yaml:"max_response_bytes"`
			DialTimeout         string `yaml:"dial_timeout"`
			TLSHandshakeTimeout string `yaml:"tls_handshake_timeout"`
			UserAgent           string `yaml:"user_agent"`
		} `yaml:"http"`
	} `yaml:"pubfilter"`
}
