package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerJobPanicked is logged when a job panics; the worker survives
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// DefaultQueueSize is the job queue capacity used by the application
const DefaultQueueSize = 64
