// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DataDir is the directory holding users.json and leaves.json.
	DataDir string
	// Env selects the logger profile: "development" or "production".
	Env string
}

// Load reads the configuration. A missing .env file is not an error; every
// variable has a default.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:    getEnv("LEAVE_ADDR", ":8080"),
		DataDir: getEnv("LEAVE_DATA_DIR", "data"),
		Env:     getEnv("LEAVE_ENV", "development"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
