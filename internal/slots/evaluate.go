package slots

import (
	"slices"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/paytable"
)

// Evaluate settles a finished spin: checks lines, pays, and moves the bonus
// state machine. It fails without side effects when no spin is in progress
// or a reel is still moving.
func (e *Engine) Evaluate() (domain.SpinResult, error) {
	if e.phase == domain.PhaseIdle {
		return domain.SpinResult{}, domain.ErrNoSpinInProgress
	}
	if !e.CheckAllStopped() {
		return domain.SpinResult{}, domain.ErrReelsSpinning
	}

	// transitions below re-arm the engine; the sub-draw rolls for this spin's flag
	drawn, index := e.drawn, e.state.FlagIndex
	flag := e.activeFlag()
	lines := e.checkLine(flag)
	hit := len(lines) > 0

	result := domain.SpinResult{
		Category: flag.Category,
		Flag:     flag.Name,
	}

	switch flag.Category {
	case domain.CategoryFreeze:
		result.Payout = e.pay(flag)
		e.log.Info(LogMsgFreezeComplete, "payout", result.Payout)
		e.resumeAmbient()
	case domain.CategoryBonusBigA, domain.CategoryBonusBigB, domain.CategoryBonusRegA, domain.CategoryBonusRegB:
		if hit && e.state.BonusHeld && e.table.Kind == domain.TableBonusPending {
			e.landBonus(flag)
			result.Landed = true
		}
	case domain.CategoryBell:
		if hit {
			result.Payout = e.pay(flag)
			if e.table.Kind == domain.TableBonusPayout {
				e.state.PendingBonusPayout -= result.Payout
				if e.state.PendingBonusPayout <= 0 {
					e.finishBonus()
				}
			}
		}
	case domain.CategoryCherry, domain.CategoryWatermelon:
		if hit {
			result.Payout = e.pay(flag)
		}
	case domain.CategoryReplay:
		if hit {
			result.Payout = e.pay(flag)
			e.state.ReplayPending = true
		}
	case domain.CategoryMiss:
	}

	e.subDraw(drawn, index, flag)

	if hit {
		e.lines = lines
		e.highlights = e.highlight(flag.Category, lines)
		for _, c := range e.highlights {
			e.reels[c.Reel].SetFlash(true)
		}
	}

	result.LinesHit = slices.Clone(e.lines)
	result.Highlights = slices.Clone(e.highlights)
	result.Mode = e.state.Mode
	result.Credit = e.state.Credit
	result.BonusHeld = e.state.BonusHeld

	e.phase = domain.PhaseIdle
	e.last = &result

	e.log.Debug(LogMsgSpinEvaluated,
		"flag", flag.Name,
		"payout", result.Payout,
		"lines", len(result.LinesHit),
		"credit", result.Credit)
	e.publish(event.NewSpinEvaluatedEvent(e.id, result))
	return result, nil
}

// checkLine returns every line of flag whose cells all show the flag's
// target for that reel. Cells are sampled at their centre.
func (e *Engine) checkLine(flag *paytable.FlagEntry) []domain.PayLine {
	if !flag.HasLines() {
		return nil
	}
	var hits []domain.PayLine
	for _, line := range flag.Lines {
		ok := true
		for i, r := range e.reels {
			if r.SymbolAt(line[i]) != flag.Target(i) {
				ok = false
				break
			}
		}
		if ok {
			hits = append(hits, line)
		}
	}
	return hits
}

// highlight lists the cells to flash. Cherry lights only the outer reels.
func (e *Engine) highlight(category domain.FlagCategory, lines []domain.PayLine) []domain.Cell {
	last := len(e.reels) - 1
	var cells []domain.Cell
	for _, line := range lines {
		for i, row := range line {
			if category == domain.CategoryCherry && i != 0 && i != last {
				continue
			}
			c := domain.Cell{Reel: i, Row: row}
			if !slices.Contains(cells, c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func (e *Engine) pay(flag *paytable.FlagEntry) int {
	e.state.Credit += flag.Payout
	if flag.PaySound != "" {
		e.sound.PlayOnce(flag.PaySound)
	}
	return flag.Payout
}

// landBonus moves a held bonus into its payout table
func (e *Engine) landBonus(flag *paytable.FlagEntry) {
	payoutMode := e.table.PayoutMode
	t, ok := e.machine.Table(payoutMode)
	if !ok {
		return
	}

	e.state.BonusHeld = false
	e.state.PendingBonusPayout = flag.Payout
	e.state.Mode = payoutMode
	e.table = t

	if flag.PaySound != "" {
		e.sound.PlayOnce(flag.PaySound)
	}
	e.sound.Pause()
	if j, ok := e.drawn.Jingle(e.state.FlagIndex); ok {
		e.sound.Loop(j.Cue, j.LoopStartMs, j.LoopEndMs)
	}

	e.log.Info(LogMsgBonusLanded, "category", flag.Category, "mode", payoutMode, "budget", flag.Payout)
	e.publish(event.NewBonusEvent(event.BonusLanded, e.id, domain.BonusPayload{
		Category: flag.Category,
		Mode:     payoutMode,
		Budget:   flag.Payout,
	}))
}

// finishBonus returns to the base table once the payout budget is spent
func (e *Engine) finishBonus() {
	finished := e.state.Mode
	base := e.machine.BaseTable()

	e.state.PendingBonusPayout = 0
	e.state.Mode = e.machine.BaseMode()
	e.table = base
	e.arm(base, base.CatchAll())
	e.resumeAmbient()

	e.log.Info(LogMsgBonusFinished, "mode", finished)
	e.publish(event.NewBonusEvent(event.BonusFinished, e.id, domain.BonusPayload{
		Mode: finished,
	}))
}

// subDraw rolls the secondary chance of flag, entry index of drawn, once per
// spin. A hit while no bonus is held or paying out silently holds the flag's
// destination.
func (e *Engine) subDraw(drawn *paytable.Table, index int, flag *paytable.FlagEntry) {
	if !drawn.SubDraw(e.rng, index) {
		return
	}
	if e.state.BonusHeld || e.state.PendingBonusPayout > 0 || flag.Destination == "" {
		return
	}
	e.holdBonus(flag.Destination, flag.Category, true)
}
