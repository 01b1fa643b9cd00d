package app

import (
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, sourced from environment variables.
type Config struct {
	// Port the HTTP server listens on
	Port int

	// Env is the deployment environment label ("dev", "prod")
	Env string

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is "json" or "text"
	LogFormat string

	// DatabaseFile is the path of the SQLite database
	DatabaseFile string

	// Issuer is the iss claim stamped into session tokens
	Issuer string

	// SessionTTL bounds session lifetime. Zero means sessions never expire.
	SessionTTL time.Duration

	// PepperFile optionally points at a file whose contents are mixed into
	// password hashes
	PepperFile string

	// SeedDemo controls whether an empty database is seeded with the demo
	// users and accounts
	SeedDemo bool

	// ShutdownGracePeriod bounds how long in-flight requests may run during
	// shutdown
	ShutdownGracePeriod time.Duration

	// HousekeepingInterval is how often dead sessions are swept
	HousekeepingInterval time.Duration
}

// LoadConfig reads configuration from the environment, applying defaults
// suitable for local development.
func LoadConfig() Config {
	return Config{
		Port:                 getEnvIntOrDefault("PORT", 8080),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		DatabaseFile:         getEnvOrDefault("BANK_DATABASE_FILE", "bank.db"),
		Issuer:               getEnvOrDefault("BANK_ISSUER", "bankd"),
		SessionTTL:           getEnvDurationOrDefault("BANK_SESSION_TTL", 24*time.Hour),
		PepperFile:           os.Getenv("BANK_PEPPER_FILE"),
		SeedDemo:             getEnvBoolOrDefault("BANK_SEED_DEMO", true),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBoolOrDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDurationOrDefault accepts Go duration strings ("30m", "24h", "0").
func getEnvDurationOrDefault(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
