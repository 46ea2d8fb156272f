package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTKey      string
	Port        string

	Env      string
	LogLevel string

	AutoMigrate     bool
	DBMaxConns      int32
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr is the listen address handed to http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function so tests can supply their
// own environment.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		DatabaseURL: get("DATABASE_URL", ""),
		JWTKey:      get("JWT_KEY", ""),
		Port:        get("PORT", "8080"),
		Env:         get("ENV", "development"),
		LogLevel:    get("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if cfg.JWTKey == "" {
		return nil, errors.New("JWT_KEY environment variable is required")
	}

	var err error
	if cfg.AutoMigrate, err = strconv.ParseBool(get("AUTO_MIGRATE", "true")); err != nil {
		return nil, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}

	maxConns, err := strconv.ParseInt(get("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil || maxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be a positive integer, got %q", get("DB_MAX_CONNS", ""))
	}
	cfg.DBMaxConns = int32(maxConns)

	if cfg.TokenTTL, err = time.ParseDuration(get("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(get("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}
