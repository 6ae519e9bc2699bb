package config

import "time"

// Server defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "reelslot"
	DefaultVersion     = "dev"
)

// Database defaults
const (
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "reelslot"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Machine host defaults
const (
	DefaultMachineCacheSize = 1024
	DefaultMachineCacheTTL  = 30 * time.Minute
	DefaultInitialCredit    = 50
	DefaultMinLeverGap      = 1200 * time.Millisecond
	DefaultMinButtonGap     = 400 * time.Millisecond
	DefaultTickInterval     = 33 * time.Millisecond
)

// Background work defaults
const (
	DefaultWorkerCount          = 4
	DefaultEventMaxRetries      = 5
	DefaultEventRetryDelay      = 2 * time.Second
	DefaultEventDeadLetterFile  = "event_deadletter.jsonl"
	DefaultEventLogRetentionDay = 30
	DefaultEventLogCleanupEvery = 24 * time.Hour
)
