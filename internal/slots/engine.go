package slots

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/reelslot/internal/clock"
	"github.com/osse101/reelslot/internal/cooldown"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/paytable"
	"github.com/osse101/reelslot/internal/reel"
	"github.com/osse101/reelslot/internal/utils"
)

// Options carries the engine's collaborators. Zero values get defaults:
// the system clock, a crypto-seeded PCG source, silent audio, no bus and
// slog.Default().
type Options struct {
	Clock  Clock
	Random RandomSource
	Sound  SoundPlayer
	Bus    event.Bus
	Logger *slog.Logger

	// MachineID tags published events and log lines
	MachineID string

	LeverGap  time.Duration
	ButtonGap time.Duration
	// DevMode disables the lever and button gates
	DevMode bool

	InitialCredit int
}

// Engine is one slot machine: reels, drawn flag, credit and bonus state.
//
// It is frame-stepped and not safe for concurrent use. The host calls
// SpinReel once per tick and PullLever/RequestStop on input.
type Engine struct {
	machine *paytable.Machine
	reels   []*reel.Reel

	clock Clock
	rng   RandomSource
	sound SoundPlayer
	bus   event.Bus
	log   *slog.Logger
	gates cooldown.Service
	id    string

	phase domain.Phase
	state domain.MachineSnapshot
	// table is the table for state.Mode; drawn is the table the current
	// flag index refers to (they differ after a mid-spin mode switch)
	table *paytable.Table
	drawn *paytable.Table

	// per-spin bookkeeping, reset on PullLever
	matched     []domain.RowMask
	stopEnabled []bool
	freezing    bool
	lines       []domain.PayLine
	highlights  []domain.Cell

	last      *domain.SpinResult
	ancillary ancillary
}

// NewEngine builds an idle engine for machine m
func NewEngine(m *paytable.Machine, opts Options) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil machine", domain.ErrInvalidMachine)
	}
	if opts.InitialCredit < 0 {
		return nil, fmt.Errorf("%w: negative initial credit %d", domain.ErrInvalidInput, opts.InitialCredit)
	}
	if err := m.ReelConfig().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMachine, err)
	}

	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Random == nil {
		src, err := utils.NewSource()
		if err != nil {
			return nil, err
		}
		opts.Random = src
	}
	if opts.Sound == nil {
		opts.Sound = NopSound{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.LeverGap == 0 {
		opts.LeverGap = cooldown.DefaultLeverGap
	}
	if opts.ButtonGap == 0 {
		opts.ButtonGap = cooldown.DefaultButtonGap
	}

	gateCfg := cooldown.DefaultConfig(opts.LeverGap, opts.ButtonGap)
	gateCfg.DevMode = opts.DevMode

	log := opts.Logger
	if opts.MachineID != "" {
		log = log.With("machine", opts.MachineID)
	}

	e := &Engine{
		machine:     m,
		reels:       make([]*reel.Reel, m.Reels()),
		clock:       opts.Clock,
		rng:         opts.Random,
		sound:       opts.Sound,
		bus:         opts.Bus,
		log:         log,
		gates:       cooldown.NewService(opts.Clock, gateCfg, log),
		id:          opts.MachineID,
		matched:     make([]domain.RowMask, m.Reels()),
		stopEnabled: make([]bool, m.Reels()),
	}
	for i := range e.reels {
		e.reels[i] = reel.New(m.Strip(i), m.ReelConfig())
	}

	base := m.BaseTable()
	e.table = base
	e.state = domain.MachineSnapshot{
		Mode:   m.BaseMode(),
		Credit: opts.InitialCredit,
	}
	e.arm(base, base.CatchAll())
	return e, nil
}

// Machine returns the machine definition the engine runs
func (e *Engine) Machine() *paytable.Machine {
	return e.machine
}

// Phase returns the current lifecycle phase
func (e *Engine) Phase() domain.Phase {
	return e.phase
}

// Credit returns the credit meter
func (e *Engine) Credit() int {
	return e.state.Credit
}

// Reels returns the reels for read-only inspection by renderers
func (e *Engine) Reels() []*reel.Reel {
	return e.reels
}

// ActiveFlagCategory is the category of the flag drawn for the current or
// last spin
func (e *Engine) ActiveFlagCategory() domain.FlagCategory {
	return e.activeFlag().Category
}

// IsReady reports whether a lever pull would be accepted now
func (e *Engine) IsReady() bool {
	if e.phase != domain.PhaseIdle {
		return false
	}
	if gated, _ := e.gates.CheckCooldown(cooldown.ActionLever); gated {
		return false
	}
	return e.state.ReplayPending || e.state.Credit >= e.machine.Bet()
}

// CheckAllStopped is true when no reel is spinning or sliding
func (e *Engine) CheckAllStopped() bool {
	for _, r := range e.reels {
		if !r.IsSettled() {
			return false
		}
	}
	return true
}

// LastResult returns the most recent evaluation, or nil
func (e *Engine) LastResult() *domain.SpinResult {
	return e.last
}

func (e *Engine) activeFlag() *paytable.FlagEntry {
	return e.drawn.Entry(e.state.FlagIndex)
}

// arm points the active flag at index of table t
func (e *Engine) arm(t *paytable.Table, index int) {
	e.drawn = t
	e.state.DrawnMode = t.ID
	e.state.FlagIndex = index
}

func (e *Engine) publish(evt event.Event) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(context.Background(), evt); err != nil {
		e.log.Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func (e *Engine) resumeAmbient() {
	e.sound.Pause()
	e.sound.Loop(domain.CueAmbient, 0, 0)
}
