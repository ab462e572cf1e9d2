package config_test

import (
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/pkordes/mileage-logbook/internal/config"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS", "DEFAULT_FUEL_PRICE", "MAX_BODY_BYTES", "TIMEZONE"} {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that optional env vars fall back to their defaults
// when only the required DATABASE_URL is provided.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "sqlite://logbook.db")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "sqlite://logbook.db", cfg.DatabaseURL)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.InDelta(t, 1.50, cfg.DefaultFuelPrice, 1e-9)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, time.UTC, cfg.Location)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/logbook")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("DEFAULT_FUEL_PRICE", "1.85")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("TIMEZONE", "Europe/Berlin")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "postgres://user:pass@db:5432/logbook", cfg.DatabaseURL)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.InDelta(t, 1.85, cfg.DefaultFuelPrice, 1e-9)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
	require.Equal(t, "Europe/Berlin", cfg.Location.String())
}

// TestLoad_missingRequired verifies that an error is returned when DATABASE_URL
// is not set, and that the error message names the missing variable.
func TestLoad_missingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

// TestLoad_invalidValues verifies that malformed numbers are reported together
// with any missing variables.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEFAULT_FUEL_PRICE", "-1")
	t.Setenv("MAX_BODY_BYTES", "lots")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
	require.ErrorContains(t, err, "DEFAULT_FUEL_PRICE=-1")
	require.ErrorContains(t, err, "MAX_BODY_BYTES=lots")
}

// TestLoad_zeroFuelPrice verifies that a zero price is rejected rather than
// silently replaced with the default further down.
func TestLoad_zeroFuelPrice(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "sqlite://logbook.db")
	t.Setenv("DEFAULT_FUEL_PRICE", "0")

	_, err := config.Load()

	require.ErrorContains(t, err, "DEFAULT_FUEL_PRICE=0")
}

// TestLoad_unknownTimezone verifies that a TIMEZONE the tz database does not
// know is reported.
func TestLoad_unknownTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "sqlite://logbook.db")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load()

	require.ErrorContains(t, err, "TIMEZONE=Mars/Olympus_Mons")
}
