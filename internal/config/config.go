package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/joho/godotenv"
)

// Storage types
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Table
	HumanPlayers int
	BotPlayers   int
	Seed         int64 // Zero seeds from the clock

	// Terminal pacing
	BotDelay time.Duration

	LogLevel    logging.Level
	StorageType string // "memory" or "sqlite", both kept in memory

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from an optional .env file and the environment
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv(os.Getenv)
}

// LoadFile reads the configuration from the given env file. Variables set in
// the process environment take precedence over the file.
func LoadFile(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return FromEnv(func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return values[key]
	})
}

// FromEnv builds the configuration from a variable lookup
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, defaultValue string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	humans, err := strconv.Atoi(env("HUMAN_PLAYERS", "1"))
	if err != nil {
		return nil, fmt.Errorf("HUMAN_PLAYERS must be a number: %w", err)
	}
	bots, err := strconv.Atoi(env("BOT_PLAYERS", "1"))
	if err != nil {
		return nil, fmt.Errorf("BOT_PLAYERS must be a number: %w", err)
	}
	seed, err := strconv.ParseInt(env("SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SEED must be a number: %w", err)
	}
	delay, err := time.ParseDuration(env("BOT_DELAY", "1.5s"))
	if err != nil {
		return nil, fmt.Errorf("BOT_DELAY must be a duration: %w", err)
	}
	level, err := logging.ParseLevel(env("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		HumanPlayers: humans,
		BotPlayers:   bots,
		Seed:         seed,
		BotDelay:     delay,
		LogLevel:     level,
		StorageType:  env("STORAGE_TYPE", StorageMemory),
		Environment:  env("ENVIRONMENT", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the table can be seated and the options are known
func (c *Config) validate() error {
	if c.HumanPlayers < 0 {
		return fmt.Errorf("HUMAN_PLAYERS cannot be negative")
	}
	if c.BotPlayers < 0 {
		return fmt.Errorf("BOT_PLAYERS cannot be negative")
	}
	if c.HumanPlayers+c.BotPlayers < 1 {
		return fmt.Errorf("the table needs at least one human or bot player")
	}
	if c.BotDelay < 0 {
		return fmt.Errorf("BOT_DELAY cannot be negative")
	}
	if c.StorageType != StorageMemory && c.StorageType != StorageSQLite {
		return fmt.Errorf("STORAGE_TYPE must be %q or %q, got %q", StorageMemory, StorageSQLite, c.StorageType)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
