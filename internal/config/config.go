// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime knobs for the server. Every field has a sensible
// default, so a bare `gatehouse server` works out of the box.
type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	CookieName      string        `envconfig:"SESSION_COOKIE_NAME" default:"gatehouse_session"`
	SessionLifetime time.Duration `envconfig:"SESSION_LIFETIME" default:"24h"`
	IdleTimeout     time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`
	HashCost        int           `envconfig:"PASSWORD_HASH_COST" default:"12"`
}

// Load reads GATEHOUSE_* environment variables into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("gatehouse", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.HashCost < 4 || cfg.HashCost > 31 {
		return nil, fmt.Errorf("password hash cost %d outside bcrypt range [4,31]", cfg.HashCost)
	}
	return &cfg, nil
}
