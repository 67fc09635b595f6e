package gnip

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings. LoadConfig fills it from GNIP_-prefixed
// environment variables, e.g. GNIP_USERNAME, GNIP_TIME_CORRECTION=2s.
type Config struct {
	URL      string `envconfig:"URL" default:"https://api-v21.gnip.com"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`

	Format  string        `envconfig:"FORMAT" default:"xml"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`

	// TimeCorrection is added to local timestamps before bucket addressing.
	TimeCorrection time.Duration `envconfig:"TIME_CORRECTION" default:"0s"`

	// RateLimit caps requests per second; 0 disables throttling.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"0"`
	RateBurst int     `envconfig:"RATE_BURST" default:"1"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GNIP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Options converts cfg into client options.
func (cfg Config) Options() []Option {
	opts := []Option{
		WithFormat(Format(cfg.Format)),
		WithTimeCorrection(cfg.TimeCorrection),
		WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.Timeout))
	}
	return opts
}

// NewFromConfig builds a client from cfg. Extra options are applied after
// the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg.URL, cfg.Username, cfg.Password, append(cfg.Options(), opts...)...)
}
