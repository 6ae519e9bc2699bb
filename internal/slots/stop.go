package slots

import (
	"github.com/osse101/reelslot/internal/cooldown"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
)

// slip is the outcome of the stop assist for one reel
type slip struct {
	matched domain.RowMask
	cells   int
	forced  bool
	pixels  float64
}

// RequestStop asks reel i to stop. The request is ignored (false) unless the
// button gate has elapsed since the lever, the reel is still turning with its
// stop control enabled, no other reel is sliding, and no freeze is running.
func (e *Engine) RequestStop(i int) bool {
	if i < 0 || i >= len(e.reels) {
		e.log.Debug(LogMsgStopIgnored, "reel", i, "reason", ReasonBadReel)
		return false
	}
	if e.phase != domain.PhaseSpinning && e.phase != domain.PhasePartiallyStopped {
		e.log.Debug(LogMsgStopIgnored, "reel", i, "reason", ReasonNotSpinning)
		return false
	}
	if e.freezing {
		e.log.Debug(LogMsgStopIgnored, "reel", i, "reason", ReasonFreezeRunning)
		return false
	}
	if gated, remaining := e.gates.CheckCooldown(cooldown.ActionStop); gated {
		e.log.Debug(LogMsgStopIgnored, "reel", i, "reason", ReasonGated, "remaining", remaining)
		return false
	}
	r := e.reels[i]
	if !r.IsSpinning() || !e.stopEnabled[i] {
		e.log.Debug(LogMsgStopIgnored, "reel", i, "reason", ReasonStopDisabled)
		return false
	}
	for j, other := range e.reels {
		if j != i && other.IsSliding() {
			e.log.Debug(LogMsgStopIgnored, "reel", i, "reason", ReasonOtherSliding, "sliding", j)
			return false
		}
	}

	s := e.calcSlip(i)
	e.matched[i] = s.matched
	e.stopEnabled[i] = false
	r.SetDistance(s.pixels)
	r.Stop()
	e.gates.Record(cooldown.ActionStop)
	e.phase = domain.PhasePartiallyStopped

	e.sound.PlayOnce(domain.CueStopButton)
	if s.pixels <= 0 {
		e.sound.PlayOnce(domain.CueReelClick)
	}

	if s.forced {
		e.log.Debug(LogMsgForcedMiss, "reel", i, "cells", s.cells)
	}
	e.log.Debug(LogMsgReelStopped, "reel", i, "matched", s.matched, "cells", s.cells)
	e.publish(event.NewReelStoppedEvent(e.id, domain.ReelStoppedPayload{
		Reel:        i,
		Matched:     s.matched,
		Slip:        s.cells,
		ForcedMiss:  s.forced,
		DistancePix: s.pixels,
	}))

	e.updatePhase()
	return true
}

// calcSlip runs the stop assist for reel i against the active flag
func (e *Engine) calcSlip(i int) slip {
	limit := e.machine.SlipRange()
	candidates := e.candidateRows(i)

	best := limit
	var tied domain.RowMask
	for _, row := range candidates.Rows() {
		d := e.nearestMatch(i, row, limit)
		switch {
		case d < best:
			best = d
			tied = domain.MaskOf(row)
		case d == best && d < limit:
			tied = tied.With(row)
		}
	}

	h := e.reels[i].SymbolHeight()
	if best >= limit {
		d := e.forcedMiss(i)
		return slip{
			matched: domain.RowMaskNone,
			cells:   d,
			forced:  true,
			pixels:  e.reels[i].CellOffset() + float64(d)*h,
		}
	}
	return slip{
		matched: tied,
		cells:   best,
		pixels:  e.reels[i].CellOffset() + float64(best)*h,
	}
}

// candidateRows is the set of rows on reel i that can still complete a line
// of the active flag, given the rows recorded for reels already stopped
func (e *Engine) candidateRows(i int) domain.RowMask {
	flag := e.activeFlag()
	if !flag.HasLines() {
		return domain.RowMaskNone
	}

	var mask domain.RowMask
	for _, line := range flag.Lines {
		consistent := true
		for j := range e.reels {
			if j == i || e.stopEnabled[j] {
				continue
			}
			if !e.matched[j].Has(line[j]) {
				consistent = false
				break
			}
		}
		if consistent {
			mask = mask.With(line[i])
		}
	}
	return mask
}

// nearestMatch walks backward from row's current strip index looking for the
// flag's target on reel i. Returns limit when the target is out of range.
func (e *Engine) nearestMatch(i int, row domain.Row, limit int) int {
	r := e.reels[i]
	target := e.activeFlag().Target(i)
	start := r.CurrentRowIndex(row, 0)
	for d := 0; d < limit; d++ {
		if r.Strip().At(start-d) == target {
			return d
		}
	}
	return limit
}

// forcedMiss finds the nearest fallback symbol for the middle row. The
// search never exceeds one turn of the strip.
func (e *Engine) forcedMiss(i int) int {
	r := e.reels[i]
	fallback := e.machine.Fallback(i)
	start := r.CurrentRowIndex(domain.RowMiddle, 0)
	for d := 0; d < r.Strip().Len(); d++ {
		if r.Strip().At(start-d) == fallback {
			return d
		}
	}
	return 0
}
