package slots

// Ancillary cosmetics
const (
	// LampBlinkHz is the blink rate of the bonus lamp during payout
	LampBlinkHz = 2.0

	// LeverReturnPerSecond is how fast the lever springs back after a pull
	LeverReturnPerSecond = 4.0
)

// Log message constants
const (
	LogMsgLeverIgnored   = "Lever pull ignored"
	LogMsgStopIgnored    = "Stop request ignored"
	LogMsgSpinStarted    = "Spin started"
	LogMsgReelStopped    = "Reel stop accepted"
	LogMsgForcedMiss     = "Slip window missed, forcing fallback stop"
	LogMsgFreezeTrigger  = "Freeze sentinel reached, snapping reels"
	LogMsgBonusHeld      = "Bonus held"
	LogMsgBonusLanded    = "Bonus landed"
	LogMsgBonusFinished  = "Bonus payout exhausted"
	LogMsgSpinEvaluated  = "Spin evaluated"
	LogMsgPublishFailed  = "Failed to publish engine event"
	LogMsgStateRestored  = "Machine state restored"
	LogMsgFreezeComplete = "Freeze payout"
)

// Reasons attached to ignored input
const (
	ReasonNotIdle       = "not_idle"
	ReasonNotSpinning   = "not_spinning"
	ReasonGated         = "gated"
	ReasonNoCredit      = "insufficient_credit"
	ReasonBadReel       = "bad_reel"
	ReasonStopDisabled  = "stop_disabled"
	ReasonOtherSliding  = "other_reel_sliding"
	ReasonFreezeRunning = "freeze_running"
)
