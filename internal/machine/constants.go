package machine

import "time"

// Defaults applied when Config leaves a field zero
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Minute
	DefaultListLimit = 50
	MaxListLimit     = 200

	// MaxFrameSeconds caps one Tick so a stalled client cannot jump a reel
	// across several cells of slip in one call
	MaxFrameSeconds = 0.25
)

// Log messages
const (
	LogMsgMachineCreated = "Machine created"
	LogMsgMachineLoaded  = "Machine loaded from storage"
	LogMsgMachineEvicted = "Machine evicted from cache"
	LogMsgMachineSaved   = "Machine state saved"
	LogMsgSaveFailed     = "Failed to save machine state"
	LogMsgTickFailed     = "Failed to tick machine"
	LogMsgMidSpinEvicted = "Machine evicted mid-spin, in-flight spin discarded"
	LogMsgFlushCompleted = "Machine states flushed"
	LogMsgAutoEvaluated  = "Spin settled and evaluated"
)
