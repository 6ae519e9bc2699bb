package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidMachineID  = "Invalid machine ID"
	ErrMsgInvalidReel       = "Invalid reel index"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Machine operation messages
	ErrMsgCreateMachineFailed = "Failed to create machine"
	ErrMsgListMachinesFailed  = "Failed to list machines"
	ErrMsgGetHistoryFailed    = "Failed to retrieve machine history"
)

// Success messages for API responses
const (
	MsgMachineDeleted = "Machine deleted"
)

// Operation names used in request logs
const (
	OpCreateMachine = "Create machine"
	OpGetMachine    = "Get machine"
	OpListMachines  = "List machines"
	OpDeleteMachine = "Delete machine"
	OpPullLever     = "Pull lever"
	OpStopReel      = "Stop reel"
	OpTick          = "Tick"
	OpEvaluate      = "Evaluate"
	OpAddCredit     = "Add credit"
	OpHistory       = "Machine history"
)
