package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the loader
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Table configuration
	SourceTable string
	TargetTable string

	// Load configuration
	TotalRecords int64
	BatchSize    int
	Threads      int

	// Status server configuration, 0 disables the server
	StatusPort int

	// Failure policy: when true the first failed worker cancels its siblings
	CancelOnFailure bool
}

// Load loads configuration from environment variables
func Load() *Config {
	config := &Config{
		// Database defaults
		DBHost:     getEnv("MYSQL_HOST", "localhost"),
		DBPort:     getEnv("MYSQL_PORT", "3306"),
		DBUser:     getEnv("MYSQL_USER", "root"),
		DBPassword: getEnv("MYSQL_PASSWORD", "rootpassword"),
		DBName:     getEnv("MYSQL_DB", "guardian"),

		// Table defaults
		SourceTable: getEnv("SOURCE_TABLE", "channel_txn"),
		TargetTable: getEnv("TARGET_TABLE", "channel_txn_temp"),

		// Load defaults
		TotalRecords: getInt64Env("TOTAL_RECORDS", 17000000),
		BatchSize:    getIntEnv("BATCH_SIZE", 50000),
		Threads:      getIntEnv("THREADS", 4),

		// Status server defaults
		StatusPort: getIntEnv("STATUS_PORT", 8080),

		// Failure policy defaults
		CancelOnFailure: getBoolEnv("CANCEL_ON_FAILURE", false),
	}

	return config
}

// Validate checks the load parameters before any worker starts.
func (c *Config) Validate() error {
	if c.TotalRecords < 1 {
		return fmt.Errorf("TOTAL_RECORDS must be at least 1, got %d", c.TotalRecords)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("BATCH_SIZE must be at least 1, got %d", c.BatchSize)
	}
	if c.Threads < 1 {
		return fmt.Errorf("THREADS must be at least 1, got %d", c.Threads)
	}
	if c.SourceTable == "" || c.TargetTable == "" {
		return fmt.Errorf("SOURCE_TABLE and TARGET_TABLE must not be empty")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env gets a 64-bit integer environment variable or returns a default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable or returns a default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
