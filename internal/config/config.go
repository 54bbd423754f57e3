package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the ambient runtime configuration. Every field defaults to a
// value that leaves gameplay untouched; nothing is required.
type Config struct {
	// Seed fixes the robots' PRNG; 0 derives a seed from crypto/rand.
	Seed int64 `env:"DWK_SEED" envDefault:"0"`

	LogLevel string `env:"DWK_LOG_LEVEL" envDefault:"info"`
	// LogFile is the diagnostics sink; empty disables logging entirely
	// so stdout stays pure game output.
	LogFile string `env:"DWK_LOG_FILE"`

	NoColor bool `env:"DWK_NO_COLOR" envDefault:"false"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return &cfg, nil
}
