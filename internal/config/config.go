package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Size       int    // Board side length
	Population int    // Rows of pieces per player
	Quantum    bool   // Play the superposed variant
	Seed       uint64 // Collapse seed; 0 picks one from the clock
	Debug      bool   // Print capture options and raw move results
	LogLevel   string
	LogPretty  bool
}

// Load reads configuration from environment variables. Callers apply their
// own overrides and then call Validate.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Size:       getEnvAsInt("QCHECKERS_SIZE", 10),
		Population: getEnvAsInt("QCHECKERS_POPULATION", 3),
		Quantum:    getEnvAsBool("QCHECKERS_QUANTUM", true),
		Seed:       getEnvAsUint("QCHECKERS_SEED", 0),
		Debug:      getEnvAsBool("QCHECKERS_DEBUG", false),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogPretty:  getEnvAsBool("LOG_PRETTY", true),
	}
	return cfg
}

// Validate rejects board dimensions that cannot hold both armies.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("board size must be positive, got %d", c.Size)
	}
	if c.Population < 0 {
		return fmt.Errorf("population must not be negative, got %d", c.Population)
	}
	if c.Size < 2*c.Population {
		return fmt.Errorf("board size %d cannot fit %d rows per player", c.Size, c.Population)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
