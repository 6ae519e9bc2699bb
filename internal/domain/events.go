package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.started")
const (
	// EventTypeSpinStarted is published when a lever pull starts a spin
	EventTypeSpinStarted = "spin.started"

	// EventTypeReelStopped is published when a stop request is accepted
	EventTypeReelStopped = "reel.stopped"

	// EventTypeSpinEvaluated is published after a spin is paid out
	EventTypeSpinEvaluated = "spin.evaluated"

	// EventTypeBonusHeld is published when a bonus is won but not yet lined up
	EventTypeBonusHeld = "bonus.held"

	// EventTypeBonusLanded is published when the player lines up a held bonus
	EventTypeBonusLanded = "bonus.landed"

	// EventTypeBonusFinished is published when a bonus payout budget runs out
	EventTypeBonusFinished = "bonus.finished"
)

// SpinStartedPayload is the payload for spin.started events
type SpinStartedPayload struct {
	Mode      ModeID       `json:"mode"`
	Category  FlagCategory `json:"category"`
	Flag      string       `json:"flag"`
	Bet       int          `json:"bet"`
	Replay    bool         `json:"replay"`
	Credit    int          `json:"credit"`
	BonusHeld bool         `json:"bonus_held"`
}

// ReelStoppedPayload is the payload for reel.stopped events
type ReelStoppedPayload struct {
	Reel        int     `json:"reel"`
	Matched     RowMask `json:"matched"`
	Slip        int     `json:"slip"`
	ForcedMiss  bool    `json:"forced_miss"`
	DistancePix float64 `json:"distance_px"`
}

// SpinEvaluatedPayload is the payload for spin.evaluated events
type SpinEvaluatedPayload struct {
	Result SpinResult `json:"result"`
}

// BonusPayload is the payload for bonus.* events
type BonusPayload struct {
	Category FlagCategory `json:"category"`
	Mode     ModeID       `json:"mode"`
	Budget   int          `json:"budget"`
	Hidden   bool         `json:"hidden"`
}
