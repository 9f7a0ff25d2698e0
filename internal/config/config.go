// Package config loads playground settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds playground settings.
type Config struct {
	LogLevel  string `env:"DELAY_LOG_LEVEL" envDefault:"INFO"`
	Immediate bool   `env:"DELAY_IMMEDIATE" envDefault:"true"`
	Scenario  string `env:"DELAY_SCENARIO" envDefault:"scenario.yaml"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
