package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the engine's position in the spin lifecycle
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhasePartiallyStopped
	PhaseAllStopped
)

var phaseNames = [...]string{"idle", "spinning", "partially_stopped", "all_stopped"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// MachineSnapshot is the persisted part of a machine's state.
// It is only taken and restored between spins.
//
// FlagIndex indexes DrawnMode's table, which differs from Mode after a bonus
// hold or land switched tables during the spin. An empty DrawnMode means Mode.
type MachineSnapshot struct {
	Mode               ModeID `json:"mode"`
	DrawnMode          ModeID `json:"drawn_mode,omitempty"`
	FlagIndex          int    `json:"flag_index"`
	Credit             int    `json:"credit"`
	PendingBonusPayout int    `json:"pending_bonus_payout"`
	ReplayPending      bool   `json:"replay_pending"`
	BonusHeld          bool   `json:"bonus_held"`
}

// SpinResult is what Evaluate reports for a finished spin
type SpinResult struct {
	Category   FlagCategory `json:"category"`
	Flag       string       `json:"flag"`
	Payout     int          `json:"payout"`
	LinesHit   []PayLine    `json:"lines_hit"`
	Highlights []Cell       `json:"highlights,omitempty"`
	Mode       ModeID       `json:"mode"`
	Credit     int          `json:"credit"`
	BonusHeld  bool         `json:"bonus_held"`
	Landed     bool         `json:"landed"`
}

// Machine is a hosted machine session as stored by the repository
type Machine struct {
	ID        uuid.UUID       `json:"id"`
	State     MachineSnapshot `json:"state"`
	Spins     int64           `json:"spins"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ReelView is a read-only picture of one reel for hosts
type ReelView struct {
	Position    float64  `json:"position"`
	Spinning    bool     `json:"spinning"`
	Distance    float64  `json:"distance"`
	Flash       bool     `json:"flash"`
	StopEnabled bool     `json:"stop_enabled"`
	Visible     []Symbol `json:"visible"`
}

// AncillaryView is the cosmetic lamp and lever state
type AncillaryView struct {
	LampLit     bool    `json:"lamp_lit"`
	LampPhase   float64 `json:"lamp_phase"`
	LeverTravel float64 `json:"lever_travel"`
}

// MachineView is the host-facing state of a machine between frames
type MachineView struct {
	ID         uuid.UUID       `json:"id"`
	Phase      Phase           `json:"phase"`
	Ready      bool            `json:"ready"`
	Category   FlagCategory    `json:"category"`
	State      MachineSnapshot `json:"state"`
	Reels      []ReelView      `json:"reels"`
	Ancillary  AncillaryView   `json:"ancillary"`
	LastResult *SpinResult     `json:"last_result,omitempty"`
}
