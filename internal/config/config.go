// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level: debug, info, warn or error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AddEventKey guards the event creation routes. Empty disables the gate.
	AddEventKey string

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64

	// SeedMountains loads the embedded mountain list into an empty table at startup.
	SeedMountains bool
}

// env mirrors Config as envconfig sees it. The typed settings decode
// themselves so that a blank value reads as unset instead of failing.
type env struct {
	Port          string    `envconfig:"PORT" default:"8080"`
	DatabaseURL   string    `envconfig:"DATABASE_URL"`
	LogLevel      string    `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins   []string  `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	AddEventKey   string    `envconfig:"ADD_EVENT_KEY"`
	MaxBodyBytes  maybeInt  `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	SeedMountains maybeBool `envconfig:"SEED_MOUNTAINS" default:"true"`
}

// maybeInt is an int64 setting that stays unset when its variable is blank.
type maybeInt struct {
	v   int64
	set bool
}

// Decode implements envconfig.Decoder.
func (m *maybeInt) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	m.v, m.set = v, true
	return nil
}

func (m maybeInt) or(def int64) int64 {
	if !m.set {
		return def
	}
	return m.v
}

// maybeBool is a bool setting that stays unset when its variable is blank.
type maybeBool struct {
	v   bool
	set bool
}

// Decode implements envconfig.Decoder.
func (m *maybeBool) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	m.v, m.set = v, true
	return nil
}

func (m maybeBool) or(def bool) bool {
	if !m.set {
		return def
	}
	return m.v
}

const (
	defaultPort        = "8080"
	defaultLogLevel    = "info"
	defaultCORSOrigin  = "http://localhost:5173"
	defaultMaxBodySize = 1 << 20
)

// Load reads configuration from environment variables and returns a Config.
// Variables that are set but empty fall back to their defaults.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var e env
	if err := envconfig.Process("", &e); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg := Config{
		Port:          strings.TrimSpace(e.Port),
		DatabaseURL:   e.DatabaseURL,
		LogLevel:      e.LogLevel,
		CORSOrigins:   e.CORSOrigins,
		AddEventKey:   e.AddEventKey,
		MaxBodyBytes:  e.MaxBodyBytes.or(defaultMaxBodySize),
		SeedMountains: e.SeedMountains.or(true),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{defaultCORSOrigin}
	}
	cfg.AddEventKey = strings.TrimSpace(cfg.AddEventKey)

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	var missing []string
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// trimAll trims each entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
