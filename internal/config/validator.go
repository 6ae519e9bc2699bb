package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads
const ExpectedEnvSchemaVersion = "1.0"

// EnvironmentProduction is the ENVIRONMENT value that turns on production checks
const EnvironmentProduction = "production"

// Example values shipped in the sample .env
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// Load falls back to defaults when these do not parse, so ValidateEnv rejects
// malformed values up front instead
var (
	intEnvVars = []string{
		"PORT", "DB_MAX_CONNS", "MACHINE_CACHE_SIZE", "INITIAL_CREDIT",
		"WORKER_COUNT", "EVENT_MAX_RETRIES", "EVENT_LOG_RETENTION_DAYS",
	}
	durationEnvVars = []string{
		"DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "MACHINE_CACHE_TTL",
		"MIN_LEVER_GAP", "MIN_BUTTON_GAP", "MACHINE_TICK_INTERVAL",
		"EVENT_RETRY_DELAY", "EVENT_LOG_CLEANUP_INTERVAL",
	}
	boolEnvVars = []string{"DEV_MODE", "AUDIO_ENABLED"}
)

// MaxSmoothTickInterval is the slowest server tick that still animates reels
// without visible stepping
const MaxSmoothTickInterval = 50 * time.Millisecond

// ValidateEnv checks the schema version, the required variables, and that
// every numeric, duration, and boolean variable that is set parses
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	var malformed []string
	check := func(names []string, parse func(string) error) {
		for _, name := range names {
			v, ok := os.LookupEnv(name)
			if !ok || v == "" {
				continue
			}
			if err := parse(v); err != nil {
				malformed = append(malformed, fmt.Sprintf("%s=%q", name, v))
			}
		}
	}
	check(intEnvVars, func(v string) error { _, err := strconv.Atoi(v); return err })
	check(durationEnvVars, func(v string) error { _, err := time.ParseDuration(v); return err })
	check(boolEnvVars, func(v string) error { _, err := strconv.ParseBool(v); return err })
	if len(malformed) > 0 {
		return fmt.Errorf("malformed environment variables: %s", strings.Join(malformed, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// work but are likely mistakes
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	production := strings.EqualFold(os.Getenv("ENVIRONMENT"), EnvironmentProduction)
	devMode := getEnvAsBool("DEV_MODE", false)
	if production && devMode {
		warnings = append(warnings, "DEV_MODE is enabled in production - lever and stop button gates are off")
	}
	if production && getEnvAsBool("AUDIO_ENABLED", false) {
		warnings = append(warnings, "AUDIO_ENABLED is set in production - cues play on the host sound device")
	}
	if !devMode {
		if v, ok := os.LookupEnv("MIN_LEVER_GAP"); ok && getEnvAsDuration("MIN_LEVER_GAP", DefaultMinLeverGap) == 0 {
			warnings = append(warnings, fmt.Sprintf("MIN_LEVER_GAP=%s leaves lever pulls ungated", v))
		}
		if v, ok := os.LookupEnv("MIN_BUTTON_GAP"); ok && getEnvAsDuration("MIN_BUTTON_GAP", DefaultMinButtonGap) == 0 {
			warnings = append(warnings, fmt.Sprintf("MIN_BUTTON_GAP=%s leaves stop buttons ungated", v))
		}
	}
	if tick := getEnvAsDuration("MACHINE_TICK_INTERVAL", DefaultTickInterval); tick > MaxSmoothTickInterval {
		warnings = append(warnings, fmt.Sprintf("MACHINE_TICK_INTERVAL=%s is above %s - hosted reels will visibly step", tick, MaxSmoothTickInterval))
	}

	return warnings, nil
}
