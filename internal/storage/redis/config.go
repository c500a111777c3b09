package redis

import (
	"errors"
	"time"
)

// ErrInvalidConfig is returned by New for a config that cannot be used
var ErrInvalidConfig = errors.New("invalid redis config")

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings. A terminal session issues one command at a time,
	// so a small pool is enough.
	PoolSize     int
	MinIdleConns int

	// GameTTL expires stored game records (0 keeps them forever)
	GameTTL time.Duration
}

// DefaultConfig returns the settings used when only a URL is given
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     4,
		MinIdleConns: 1,
		GameTTL:      30 * 24 * time.Hour,
	}
}

// Validate checks the settings New relies on
func (c Config) Validate() error {
	switch {
	case c.URL == "":
		return errors.Join(ErrInvalidConfig, errors.New("url is required"))
	case c.PoolSize < 1:
		return errors.Join(ErrInvalidConfig, errors.New("pool size must be at least 1"))
	case c.MinIdleConns < 0 || c.MinIdleConns > c.PoolSize:
		return errors.Join(ErrInvalidConfig, errors.New("min idle conns must be between 0 and the pool size"))
	case c.GameTTL < 0:
		return errors.Join(ErrInvalidConfig, errors.New("game ttl must not be negative"))
	}
	return nil
}
