package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the lost-and-found service.
// Environment variables are parsed from the LAF_ prefix, e.g. LAF_HTTP_PORT.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Document store
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"laf"`

	// Auth: tokens are verified here, never minted.
	JWTSecret string `envconfig:"JWT_SECRET" default:""`

	// Taxonomy cache
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"24h"`

	// Query paging
	PageSize int `envconfig:"PAGE_SIZE" default:"30"`

	// Retention windows, in days. The first three are per-category rules;
	// expensive/inexpensive are the generic cutoffs for everything else.
	WaterBottleDays int `envconfig:"WATER_BOTTLE_DAYS" default:"30"`
	AttireDays      int `envconfig:"ATTIRE_DAYS" default:"90"`
	UmbrellaDays    int `envconfig:"UMBRELLA_DAYS" default:"90"`
	InexpensiveDays int `envconfig:"INEXPENSIVE_DAYS" default:"180"`
	ExpensiveDays   int `envconfig:"EXPENSIVE_DAYS" default:"365"`
}

// New creates a Config by parsing environment variables prefixed with LAF_.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("LAF", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("mongo_database", cfg.MongoDatabase).
		Dur("cache_ttl", cfg.CacheTTL).
		Int("page_size", cfg.PageSize).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}
	for name, days := range map[string]int{
		"water bottle": c.WaterBottleDays,
		"attire":       c.AttireDays,
		"umbrella":     c.UmbrellaDays,
		"inexpensive":  c.InexpensiveDays,
		"expensive":    c.ExpensiveDays,
	} {
		if days <= 0 {
			return fmt.Errorf("%s retention window must be positive, got %d", name, days)
		}
	}
	if c.InexpensiveDays >= c.ExpensiveDays {
		return fmt.Errorf("inexpensive window (%d) must be shorter than expensive window (%d)",
			c.InexpensiveDays, c.ExpensiveDays)
	}
	return nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
