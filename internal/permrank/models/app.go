package models

import (
	"runtime"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// DefaultMaxLength is the longest input accepted by default, in runes.
const DefaultMaxLength = 25

// AppConfig type is used to describe application config.
type AppConfig struct {
	LogFormat    string     `env:"PERMRANK_LOG_FORMAT"    json:"log_format"    yaml:"log_format"`
	MaxLength    int        `env:"PERMRANK_MAX_LENGTH"    json:"max_length"    yaml:"max_length"`
	WorkersCount int        `env:"PERMRANK_WORKERS_COUNT" json:"workers_count" yaml:"workers_count"`
	HTTPConfig   HTTPConfig `json:"http"                  yaml:"http"`
}

func (m *AppConfig) ParseFromFile(path string) error {
	if path != "" {
		err := DecodeFile(path, m)
		if err != nil {
			return errors.WithMessagef(err, "failed to parse app config file %q", path)
		}
	} else if err := cleanenv.ReadEnv(m); err != nil {
		return errors.WithMessage(err, "failed to read app config from environment")
	}

	err := m.PostProcess()
	if err != nil {
		return errors.WithMessagef(err, "failed to post process app config file %q", path)
	}

	return nil
}

func (m *AppConfig) PostProcess() error {
	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", joinErrors(errs))
	}

	return nil
}

func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = "text"
	}

	if m.MaxLength == 0 {
		m.MaxLength = DefaultMaxLength
	}

	if m.WorkersCount == 0 {
		m.WorkersCount = runtime.NumCPU()
	}

	m.HTTPConfig.FillDefaults()
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains([]string{"text", "json", "color"}, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	if m.MaxLength < 0 {
		errs = append(errs, errors.Errorf("max length should be grater than 0, got %v", m.MaxLength))
	}

	if m.WorkersCount < 0 {
		errs = append(errs, errors.Errorf("workers count should be grater than 0, got %v", m.WorkersCount))
	}

	httpParamsErrs := m.HTTPConfig.Validate()
	if len(httpParamsErrs) != 0 {
		errs = append(errs, errors.New("failed to validate HTTP configuration:"))
		errs = append(errs, httpParamsErrs...)
	}

	return errs
}
