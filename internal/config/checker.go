package config

import "time"

// DefaultCheckEndpoint is used when CHECK_ENDPOINT is unset. It points at a
// local backend so development never hits the deployed API by accident.
const DefaultCheckEndpoint = "http://localhost:9000/check"

// CheckEndpoint returns the URL of the breach-checking backend.
func CheckEndpoint() string {
	return GetEnv("CHECK_ENDPOINT", DefaultCheckEndpoint)
}

// CheckTimeout returns the HTTP client timeout for a check. Zero means the
// request waits until the transport resolves or errors.
func CheckTimeout() time.Duration {
	return MustParseDuration("CHECK_TIMEOUT", "0s")
}

// Env returns the deployment environment name.
func Env() string {
	return GetEnv("ENV", "development")
}

// IsProduction reports whether ENV selects production behaviour.
func IsProduction() bool {
	return Env() == "production"
}

// LogFile returns the path of the JSON log file.
func LogFile() string {
	return GetEnv("LOG_FILE", "breachcheck.log")
}
