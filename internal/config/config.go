// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// DefaultMaxBodyBytes caps request bodies at 1 MiB unless MAX_BODY_BYTES says otherwise.
const DefaultMaxBodyBytes int64 = 1 << 20

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL selects the journey store. Required.
	// postgres:// and postgresql:// URLs use Postgres; anything else
	// (sqlite://path, file:path, a bare path) uses SQLite.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat is "json" (default) or "text".
	LogFormat string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DefaultFuelPrice is the per-litre price applied to journeys recorded
	// without one, including rows stored before prices were recorded.
	// Must be positive. Defaults to 1.50.
	DefaultFuelPrice float64

	// Location is the zone used for "today", rush hours and weekends when
	// the client does not send a start time. Set TIMEZONE to an IANA name.
	// Defaults to UTC.
	Location *time.Location

	// MaxBodyBytes limits request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Every missing or malformed variable is reported in a single error.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DefaultFuelPrice: domain.DefaultFuelPrice,
		MaxBodyBytes:     DefaultMaxBodyBytes,
		Location:         time.UTC,
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if v := os.Getenv("DEFAULT_FUEL_PRICE"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price <= 0 {
			invalid = append(invalid, "DEFAULT_FUEL_PRICE="+v)
		} else {
			cfg.DefaultFuelPrice = price
		}
	}

	if v := os.Getenv("TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			invalid = append(invalid, "TIMEZONE="+v)
		} else {
			cfg.Location = loc
		}
	}

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			invalid = append(invalid, "MAX_BODY_BYTES="+v)
		} else {
			cfg.MaxBodyBytes = n
		}
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		problems = append(problems, fmt.Sprintf("invalid environment variables: %s", strings.Join(invalid, ", ")))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
