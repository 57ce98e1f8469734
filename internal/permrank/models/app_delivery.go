package models

import (
	"time"

	"github.com/pkg/errors"
)

// HTTPConfig type used to describe delivery config for http implementation.
type HTTPConfig struct {
	ListenAddress string        `env:"PERMRANK_HTTP_LISTEN_ADDRESS" json:"listen_address" yaml:"listen_address"`
	ReadTimeout   time.Duration `env:"PERMRANK_HTTP_READ_TIMEOUT"   json:"read_timeout"   yaml:"read_timeout"`
	WriteTimeout  time.Duration `env:"PERMRANK_HTTP_WRITE_TIMEOUT"  json:"write_timeout"  yaml:"write_timeout"`
	IdleTimeout   time.Duration `env:"PERMRANK_HTTP_IDLE_TIMEOUT"   json:"idle_timeout"   yaml:"idle_timeout"`
	BodyLimit     string        `env:"PERMRANK_HTTP_BODY_LIMIT"     json:"body_limit"     yaml:"body_limit"`
}

func (c *HTTPConfig) FillDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = ":8080"
	}

	if c.ReadTimeout == 0 {
		c.ReadTimeout = time.Minute
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = time.Minute
	}

	if c.IdleTimeout == 0 {
		c.IdleTimeout = time.Minute
	}

	if c.BodyLimit == "" {
		c.BodyLimit = "1M"
	}
}

func (c *HTTPConfig) Validate() []error {
	var errs []error

	if c.ReadTimeout < 0 {
		errs = append(errs, errors.Errorf("read timeout should be grater than 0, got %v", c.ReadTimeout))
	}

	if c.WriteTimeout < 0 {
		errs = append(errs, errors.Errorf("write timeout should be grater than 0, got %v", c.WriteTimeout))
	}

	if c.IdleTimeout < 0 {
		errs = append(errs, errors.Errorf("idle timeout should be grater than 0, got %v", c.IdleTimeout))
	}

	return errs
}
