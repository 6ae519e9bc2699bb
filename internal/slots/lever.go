package slots

import (
	"errors"

	"github.com/osse101/reelslot/internal/cooldown"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
)

// PullLever starts a spin. It returns false and changes nothing when the
// machine is mid-spin, the lever gate has not elapsed since the last pull,
// or the credit cannot cover the bet.
func (e *Engine) PullLever() bool {
	if e.phase != domain.PhaseIdle {
		e.log.Debug(LogMsgLeverIgnored, "reason", ReasonNotIdle, "phase", e.phase)
		return false
	}

	err := e.gates.EnforceCooldown(cooldown.ActionLever, e.startSpin)
	if err == nil {
		return true
	}

	reason := ReasonGated
	if errors.Is(err, domain.ErrInsufficientCredit) {
		reason = ReasonNoCredit
	}
	e.log.Debug(LogMsgLeverIgnored, "reason", reason, "error", err)
	return false
}

func (e *Engine) startSpin() error {
	bet := e.machine.Bet()
	replay := e.state.ReplayPending
	if !replay && e.state.Credit < bet {
		return domain.ErrInsufficientCredit
	}

	e.arm(e.table, e.table.Draw(e.rng))
	flag := e.activeFlag()

	for i := range e.reels {
		e.matched[i] = domain.RowMaskNone
		e.stopEnabled[i] = true
		e.reels[i].SetFlash(false)
	}
	e.lines = nil
	e.highlights = nil
	e.freezing = false

	if replay {
		e.state.ReplayPending = false
	} else {
		e.state.Credit -= bet
	}

	if !e.state.BonusHeld && e.state.PendingBonusPayout <= 0 && !e.sound.IsPlaying() {
		e.resumeAmbient()
	}
	e.sound.PlayOnce(domain.CueLever)
	e.ancillary.pull()

	switch c := flag.Category; {
	case c == domain.CategoryFreeze:
		e.freezing = true
		e.sound.PlayOnce(domain.CueFreeze)
	case c.IsBonus():
		e.sound.PlayOnce(domain.CueBonusAlert)
		if !e.state.BonusHeld && e.drawn.Kind == domain.TableNormal {
			e.holdBonus(flag.Destination, flag.Category, false)
		}
	case c.IsRare():
		e.sound.PlayOnce(domain.CueRareAlert)
	}

	for _, r := range e.reels {
		if e.freezing {
			r.StartReverse()
		} else {
			r.Start()
		}
	}
	e.phase = domain.PhaseSpinning

	e.log.Debug(LogMsgSpinStarted,
		"mode", e.state.Mode,
		"flag", flag.Name,
		"replay", replay,
		"credit", e.state.Credit)

	e.publish(event.NewSpinStartedEvent(e.id, domain.SpinStartedPayload{
		Mode:      e.drawn.ID,
		Category:  flag.Category,
		Flag:      flag.Name,
		Bet:       bet,
		Replay:    replay,
		Credit:    e.state.Credit,
		BonusHeld: e.state.BonusHeld,
	}))
	return nil
}

// holdBonus silently switches to a bonus pending table
func (e *Engine) holdBonus(dest domain.ModeID, category domain.FlagCategory, hidden bool) {
	t, ok := e.machine.Table(dest)
	if !ok {
		// validated at construction
		return
	}
	e.state.BonusHeld = true
	e.state.Mode = dest
	e.table = t
	e.sound.Pause()

	e.log.Info(LogMsgBonusHeld, "mode", dest, "category", category, "hidden", hidden)
	e.publish(event.NewBonusEvent(event.BonusHeld, e.id, domain.BonusPayload{
		Category: category,
		Mode:     dest,
		Hidden:   hidden,
	}))
}
