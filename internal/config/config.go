// Package config defines service configuration and its loading.
//
// Values are layered: defaults from New, then an optional YAML file, then
// an optional dotenv file, then process environment variables.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// CataloguePath points at a YAML sport catalogue. Empty uses the
	// built-in catalogue.
	CataloguePath string `koanf:"catalogue_path"`

	// MaxTestResults bounds the number of test results accepted per batch.
	MaxTestResults int `koanf:"max_test_results"`

	// RequestTimeoutMS bounds the handling time of one HTTP request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// CORSAllowedOrigins lists the dashboard origins allowed to call the API.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// New returns a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		MaxTestResults:     64,
		RequestTimeoutMS:   5_000,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}
