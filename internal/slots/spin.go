package slots

import (
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/paytable"
)

// SpinReel advances every reel by dt seconds: free spin for turning reels,
// slip for stopping ones. A landing slip plays the reel click.
func (e *Engine) SpinReel(dt float64) {
	if dt <= 0 {
		return
	}
	if e.freezing {
		e.spinFreeze(dt)
		e.updatePhase()
		return
	}

	for _, r := range e.reels {
		if r.IsSpinning() {
			r.Spin(dt)
			continue
		}
		if r.AdjustStop(dt) {
			e.sound.PlayOnce(domain.CueReelClick)
		}
	}
	e.updatePhase()
}

// spinFreeze turns the reels backward until reel 0 carries the sentinel
// through the trigger row, then snaps every reel to the freeze layout.
// Every strip index the trigger row passes over this frame is checked, so a
// long frame cannot skip the sentinel.
func (e *Engine) spinFreeze(dt float64) {
	cfg := e.machine.Freeze()
	if cfg == nil {
		e.finishFreeze()
		return
	}

	lead := e.reels[0]
	h := lead.SymbolHeight()
	n := lead.Strip().Len()
	before := lead.CurrentRowIndex(cfg.TriggerRow, h/2)

	for _, r := range e.reels {
		r.Spin(dt)
	}

	// a frame longer than one turn passes every index
	steps := n
	if e.machine.ReelConfig().Speed*dt < lead.PixelHeight() {
		after := lead.CurrentRowIndex(cfg.TriggerRow, h/2)
		steps = ((after-before)%n + n) % n
	}
	for k := 1; k <= steps; k++ {
		if lead.Strip().At(before+k) == cfg.Sentinel {
			e.log.Debug(LogMsgFreezeTrigger, "index", before+k)
			e.snapFreeze(cfg)
			return
		}
	}
}

func (e *Engine) snapFreeze(cfg *paytable.Freeze) {
	for i, r := range e.reels {
		r.SnapToIndex(domain.RowMiddle, cfg.Layout[i])
		r.Halt()
	}
	e.finishFreeze()
}

func (e *Engine) finishFreeze() {
	for i, r := range e.reels {
		r.Halt()
		e.stopEnabled[i] = false
	}
	e.freezing = false
}

// updatePhase derives the phase from reel state after input or a frame
func (e *Engine) updatePhase() {
	if e.phase != domain.PhaseSpinning && e.phase != domain.PhasePartiallyStopped {
		return
	}
	if e.CheckAllStopped() {
		e.phase = domain.PhaseAllStopped
		return
	}
	for _, enabled := range e.stopEnabled {
		if !enabled {
			e.phase = domain.PhasePartiallyStopped
			return
		}
	}
}
