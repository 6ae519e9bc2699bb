package eventlog

// Log messages - service events
const (
	LogMsgPayloadNotObject = "Event payload is not a JSON object, skipping log"
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldMachine       = "machine"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// DefaultHistoryLimit caps machine history queries without an explicit limit
const DefaultHistoryLimit = 50

// MaxHistoryLimit is the largest history page served
const MaxHistoryLimit = 500
