package cooldown

import "time"

// =============================================================================
// Action Names
// =============================================================================

const (
	// ActionLever is a lever pull
	ActionLever = "lever"

	// ActionStop is a stop button press
	ActionStop = "stop"
)

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DefaultLeverGap is the minimum time between two lever pulls
	DefaultLeverGap = 1200 * time.Millisecond

	// DefaultButtonGap is the minimum time from a lever pull to the first stop
	DefaultButtonGap = 400 * time.Millisecond
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing input gate"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldown formats a gate rejection
	ErrFmtCooldown = "action '%s' gated: %dms remaining"
)
