package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	ServiceName string
	Version     string
	Environment string `validate:"required"`
	APIKey      string `validate:"required"` // API key for authentication

	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBName            string `validate:"required"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// MachineDefinition is a JSON machine file; empty uses the built-in cabinet
	MachineDefinition string
	MachineCacheSize  int           `validate:"min=1"`
	MachineCacheTTL   time.Duration `validate:"min=0"`
	InitialCredit     int           `validate:"min=0"`
	MinLeverGap       time.Duration `validate:"min=0"`
	MinButtonGap      time.Duration `validate:"min=0"`
	// TickInterval drives hosted reels server-side; zero leaves framing to clients
	TickInterval time.Duration `validate:"min=0"`
	// DevMode disables the lever and stop gates
	DevMode bool
	// AudioEnabled plays cues on the host sound device
	AudioEnabled bool

	WorkerCount           int `validate:"min=1"`
	EventMaxRetries       int `validate:"min=1"`
	EventRetryDelay       time.Duration
	EventDeadLetterPath   string
	EventLogRetentionDays int `validate:"min=1"`
	EventLogCleanupEvery  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		APIKey:      getEnv("API_KEY", ""),

		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:            getEnv("DB_HOST", DefaultDBHost),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		MachineDefinition: getEnv("MACHINE_DEFINITION", ""),
		MachineCacheSize:  getEnvAsInt("MACHINE_CACHE_SIZE", DefaultMachineCacheSize),
		MachineCacheTTL:   getEnvAsDuration("MACHINE_CACHE_TTL", DefaultMachineCacheTTL),
		InitialCredit:     getEnvAsInt("INITIAL_CREDIT", DefaultInitialCredit),
		MinLeverGap:       getEnvAsDuration("MIN_LEVER_GAP", DefaultMinLeverGap),
		MinButtonGap:      getEnvAsDuration("MIN_BUTTON_GAP", DefaultMinButtonGap),
		TickInterval:      getEnvAsDuration("MACHINE_TICK_INTERVAL", DefaultTickInterval),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		AudioEnabled:      getEnvAsBool("AUDIO_ENABLED", false),

		WorkerCount:           getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventLogRetentionDays: getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDay),
		EventLogCleanupEvery:  getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanupEvery),
	}
	cfg.EventDeadLetterPath = getEnv("EVENT_DEADLETTER_PATH", filepath.Join(cfg.LogDir, DefaultEventDeadLetterFile))

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// Validate checks field constraints. Load only rejects what it cannot
// parse; callers validate before serving.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d out of range", c.Port)
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on parse failure
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a time.Duration variable, falling back on parse failure
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
