package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the simulator
type Config struct {
	Redis      RedisConfig
	Simulation SimulationConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional; without it reports are kept in memory
	URL string
}

// Enabled reports whether a Redis archive is configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// SimulationConfig controls what the simulate command runs
type SimulationConfig struct {
	Seed       uint64 // 0 picks a random seed
	Waves      int
	Party      []string
	Batch      int
	TurnDelay  time.Duration
	RosterFile string // optional YAML overlay for the built-in roster
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	seed, err := getEnvAsUint64OrDefault("SIM_SEED", 0)
	if err != nil {
		return nil, err
	}
	waves, err := getEnvAsIntOrDefault("SIM_WAVES", 3)
	if err != nil {
		return nil, err
	}
	batch, err := getEnvAsIntOrDefault("SIM_BATCH", 1)
	if err != nil {
		return nil, err
	}
	delay, err := getEnvAsDurationOrDefault("SIM_TURN_DELAY", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Simulation: SimulationConfig{
			Seed:       seed,
			Waves:      waves,
			Party:      splitList(getEnvOrDefault("SIM_PARTY", "Warrior,Mage,Healer,Rogue")),
			Batch:      batch,
			TurnDelay:  delay,
			RosterFile: os.Getenv("SIM_ROSTER_FILE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the simulator cannot run with
func (c *Config) Validate() error {
	if c.Simulation.Waves < 1 {
		return fmt.Errorf("SIM_WAVES must be at least 1, got %d", c.Simulation.Waves)
	}
	if c.Simulation.Batch < 1 {
		return fmt.Errorf("SIM_BATCH must be at least 1, got %d", c.Simulation.Batch)
	}
	if c.Simulation.TurnDelay < 0 {
		return fmt.Errorf("SIM_TURN_DELAY cannot be negative, got %s", c.Simulation.TurnDelay)
	}
	if len(c.Simulation.Party) == 0 {
		return fmt.Errorf("SIM_PARTY cannot be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intValue, nil
}

func getEnvAsUint64OrDefault(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer: %w", key, err)
	}
	return uintValue, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 500ms: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
