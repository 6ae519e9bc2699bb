package slots

import (
	"fmt"

	"github.com/osse101/reelslot/internal/domain"
)

// Snapshot returns the persistable part of the machine state
func (e *Engine) Snapshot() domain.MachineSnapshot {
	return e.state
}

// Restore replaces the machine state with a snapshot taken between spins.
// It refuses while a spin is in progress and rejects modes or flag indexes
// the machine does not define. The flag index is checked against the drawn
// table, which falls back to Mode when the snapshot does not name one.
func (e *Engine) Restore(s domain.MachineSnapshot) error {
	if e.phase != domain.PhaseIdle {
		return domain.ErrRestoreMidSpin
	}
	t, ok := e.machine.Table(s.Mode)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, s.Mode)
	}
	if s.DrawnMode == "" {
		s.DrawnMode = s.Mode
	}
	drawn, ok := e.machine.Table(s.DrawnMode)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, s.DrawnMode)
	}
	if s.FlagIndex < 0 || s.FlagIndex >= len(drawn.Entries) {
		return fmt.Errorf("%w: flag index %d out of range for mode %q", domain.ErrInvalidInput, s.FlagIndex, s.DrawnMode)
	}
	if s.Credit < 0 || s.PendingBonusPayout < 0 {
		return fmt.Errorf("%w: negative credit or bonus budget", domain.ErrInvalidInput)
	}

	e.state = s
	e.table = t
	e.arm(drawn, s.FlagIndex)
	e.last = nil
	for i := range e.reels {
		e.matched[i] = domain.RowMaskNone
		e.stopEnabled[i] = false
		e.reels[i].SetFlash(false)
	}
	if s.BonusHeld {
		e.sound.Pause()
	}

	e.log.Info(LogMsgStateRestored, "mode", s.Mode, "credit", s.Credit, "held", s.BonusHeld)
	return nil
}

// AddCredit inserts coins into the credit meter
func (e *Engine) AddCredit(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: credit must be positive", domain.ErrInvalidInput)
	}
	e.state.Credit += n
	return nil
}

// View returns a read-only picture of the machine for hosts
func (e *Engine) View() domain.MachineView {
	v := domain.MachineView{
		Phase:      e.phase,
		Ready:      e.IsReady(),
		Category:   e.ActiveFlagCategory(),
		State:      e.state,
		Reels:      make([]domain.ReelView, len(e.reels)),
		Ancillary:  e.ancillary.view(),
		LastResult: e.last,
	}
	for i, r := range e.reels {
		v.Reels[i] = domain.ReelView{
			Position:    r.Position(),
			Spinning:    r.IsSpinning(),
			Distance:    r.Distance(),
			Flash:       r.Flash(),
			StopEnabled: e.stopEnabled[i] && r.IsSpinning(),
			Visible:     r.Visible(),
		}
	}
	return v
}
