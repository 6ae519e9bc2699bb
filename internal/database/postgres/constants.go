package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Machine Operations
const (
	ErrMsgFailedToInsertMachine = "failed to insert machine"
	ErrMsgFailedToGetMachine    = "failed to get machine"
	ErrMsgFailedToSaveMachine   = "failed to save machine"
	ErrMsgFailedToDeleteMachine = "failed to delete machine"
	ErrMsgFailedToListMachines  = "failed to list machines"
	ErrMsgDuplicateMachine      = "machine already exists"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToMarshalPayload = "failed to marshal event payload"
	ErrMsgFailedToLogEvent       = "failed to log event"
	ErrMsgFailedToQueryEvents    = "failed to query events"
	ErrMsgFailedToCleanupEvents  = "failed to clean up events"
	ErrMsgInvalidMachineID       = "invalid machine id"
)
