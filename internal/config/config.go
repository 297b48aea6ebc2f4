// Package config loads application configuration from environment
// variables, with a .env file as an optional source.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable; every value has a usable default so the
// application starts with no environment at all.
type Config struct {
	Env     string // application environment (e.g. "dev", "prod")
	DataDir string // directory holding the per-entity JSON collections
	Locale  string // BCP 47 locale tag for money and number output
	Seed    bool   // seed demo data when the gallery is empty
}

// Load reads the configuration. A .env file in the working directory is
// merged into the environment first; a missing file is ignored.
func Load() Config {
	godotenv.Load()

	return Config{
		Env:     getEnv("APP_ENV", "dev"),
		DataDir: getEnv("GALLERY_DATA_DIR", "data"),
		Locale:  getEnv("GALLERY_LOCALE", "en-US"),
		Seed:    getEnvBool("GALLERY_SEED", true),
	}
}

// getEnv returns the variable's value or the fallback when unset or
// empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvBool parses the variable as a boolean, returning the fallback
// when unset or unparsable.
func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
