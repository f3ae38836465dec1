package config

import (
	"os"
	"time"

	"github.com/Goofygiraffe06/breachcheck/internal/logging"
	"github.com/joho/godotenv"
)

func init() {
	start := time.Now()
	logging.DebugLog("Environment configuration loading started")

	if err := godotenv.Load(); err != nil {
		logging.DebugLog("Environment configuration: no .env file found, using system environment variables")
	} else {
		logging.InfoLog("Environment configuration: .env file loaded successfully")
	}

	logging.DebugLog("Environment configuration loading completed %v", time.Since(start))
}

// GetEnv returns the value of the environment variable or a default if it's not set.
func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		logging.DebugLog("Environment variable found: %s", key)
		return val
	}

	logging.DebugLog("Environment variable not found, using fallback: %s", key)
	return fallback
}

// MustParseDuration retrieves a duration from env or uses fallback, panics if invalid.
func MustParseDuration(key, fallback string) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		val = fallback
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		logging.ErrorLog("Duration parsing failed: %s = %s, error: %v", key, val, err)
		panic("config: invalid duration in " + key + ": " + err.Error())
	}
	if d < 0 {
		logging.ErrorLog("Duration parsing failed: %s = %s is negative", key, val)
		panic("config: negative duration in " + key)
	}

	logging.DebugLog("Duration parsing success: %s = %v", key, d)
	return d
}
