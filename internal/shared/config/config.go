package config

import "github.com/caarlos0/env/v11"

// Config holds the ambient settings of the accesstoken CLI: build version,
// logging and error reporting. Nothing here affects the generated hash;
// the password and algorithm come from flags only.
type Config struct {
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	SentryDSN   string `env:"SENTRY_DSN"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsEnvProd reports whether errors should be reported to Sentry.
func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}
