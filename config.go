package kvdb

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendLRU    = "lru"
)

// Config selects a backend and the layers Open puts around it.
type Config struct {
	// Backend is BackendMemory or BackendLRU.
	Backend string `env:"KVDB_BACKEND" envDefault:"memory"`
	// Capacity bounds the LRU backend.
	Capacity int `env:"KVDB_LRU_CAPACITY" envDefault:"1024"`
	// Synchronized wraps the database in an external lock.
	Synchronized bool `env:"KVDB_SYNCHRONIZED" envDefault:"false"`
	// Debug logs every operation, through the standard logger unless
	// WithLogger is given.
	Debug bool `env:"KVDB_DEBUG" envDefault:"false"`
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		Backend:  BackendMemory,
		Capacity: 1024,
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
