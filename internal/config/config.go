// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. SQLitePath empty selects the
// in-memory store.
type Config struct {
	Addr       string `env:"GAME_DECK_ADDR" envDefault:":8080"`
	SQLitePath string `env:"GAME_DECK_SQLITE_PATH"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
