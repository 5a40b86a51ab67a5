// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultTokenTTL        = 5 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds all runtime settings for the server process.
type Config struct {
	// HTTPAddr is the listen address for the HTTP server.
	HTTPAddr string

	// DatabaseDSN is the Postgres connection string without the password.
	DatabaseDSN string

	// DBPassword is supplied separately so the DSN can be committed to
	// deployment manifests without the secret.
	DBPassword string

	// JWTSecret is the shared HMAC signing secret for issued tokens.
	JWTSecret string

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool

	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment and validates required fields.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN:     getEnv("DATABASE_DSN", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTL:        defaultTokenTTL,
		RunMigrations:   os.Getenv("RUN_MIGRATIONS") == "true",
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// DSN returns the full connection string with the password appended
// when one is configured.
func (c Config) DSN() string {
	if c.DBPassword == "" {
		return c.DatabaseDSN
	}
	return fmt.Sprintf("%s password=%s", c.DatabaseDSN, c.DBPassword)
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
