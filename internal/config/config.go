package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fadedpez/carddeal/internal/types"
	"github.com/joho/godotenv"
)

// ShuffleMode selects the shuffle algorithm used on the deck
type ShuffleMode string

const (
	// ShuffleClassic swaps every position with a position drawn from the whole deck
	ShuffleClassic ShuffleMode = "classic"
	// ShuffleUniform is the suffix-restricted Fisher-Yates shuffle.
	// Selecting it changes the permutation distribution of a dealt round.
	ShuffleUniform ShuffleMode = "uniform"
)

// DefaultEnvFile is loaded when no other env file is named
const DefaultEnvFile = ".env"

// Environment keys. They carry a DEAL_ prefix so settings exported for other
// tools never reach the dealer.
const (
	KeyLogLevel    = "DEAL_LOG_LEVEL"
	KeyShuffleMode = "DEAL_SHUFFLE_MODE"
	KeyShuffleSeed = "DEAL_SHUFFLE_SEED"
	KeyEnvironment = "DEAL_ENVIRONMENT"
)

// Keys lists every environment key Load reads
var Keys = []string{KeyLogLevel, KeyShuffleMode, KeyShuffleSeed, KeyEnvironment}

// Config holds all configuration for the application
type Config struct {
	// Logging
	LogLevel string

	// Shuffling
	ShuffleMode ShuffleMode
	Seed        int64
	HasSeed     bool

	// Environment
	Environment string // "development" or "production"

	// Warnings holds INVALID_CONFIG errors for settings that were replaced by
	// their defaults. A bad setting never stops a deal.
	Warnings []error
}

// Load reads the configuration from environment variables, after loading
// envFile into the environment if it exists. Unreadable files and invalid
// values fall back to defaults and are reported in Warnings.
func Load(envFile string) *Config {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	cfg := &Config{}

	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		cfg.warn(types.WrapError(types.ErrInvalidConfig, fmt.Sprintf("ignoring %s", envFile), err))
	}

	cfg.LogLevel = strings.ToLower(getEnvWithDefault(KeyLogLevel, "info"))
	cfg.ShuffleMode = ShuffleMode(strings.ToLower(getEnvWithDefault(KeyShuffleMode, string(ShuffleClassic))))
	cfg.Environment = getEnvWithDefault(KeyEnvironment, "development")

	if raw := os.Getenv(KeyShuffleSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			cfg.warn(types.WrapError(types.ErrInvalidConfig,
				fmt.Sprintf("%s must be an integer, seeding from the clock", KeyShuffleSeed), err))
		} else {
			cfg.SetSeed(seed)
		}
	}

	cfg.validate()
	return cfg
}

// SetSeed pins the shuffle seed, overriding any value from the environment
func (c *Config) SetSeed(seed int64) {
	c.Seed = seed
	c.HasSeed = true
}

// validate resets unknown values to their defaults
func (c *Config) validate() {
	switch c.ShuffleMode {
	case ShuffleClassic, ShuffleUniform:
	default:
		c.warn(types.NewDealError(types.ErrInvalidConfig,
			fmt.Sprintf("%s %q is not %q or %q, using %q", KeyShuffleMode, c.ShuffleMode, ShuffleClassic, ShuffleUniform, ShuffleClassic)))
		c.ShuffleMode = ShuffleClassic
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.warn(types.NewDealError(types.ErrInvalidConfig,
			fmt.Sprintf("%s %q is not one of debug, info, warn, error, using info", KeyLogLevel, c.LogLevel)))
		c.LogLevel = "info"
	}
}

func (c *Config) warn(err error) {
	c.Warnings = append(c.Warnings, err)
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
