package slots

import (
	"math"

	"github.com/osse101/reelslot/internal/domain"
)

// ancillary is cosmetic lamp and lever state. The engine writes it but never
// reads it back.
type ancillary struct {
	lampPhase   float64
	lampLit     bool
	leverTravel float64
}

func (a *ancillary) pull() {
	a.leverTravel = 1
}

func (a *ancillary) view() domain.AncillaryView {
	return domain.AncillaryView{
		LampLit:     a.lampLit,
		LampPhase:   a.lampPhase,
		LeverTravel: a.leverTravel,
	}
}

// AnimateAncillary advances the lamp blink and lever return by dt seconds.
// The bonus lamp is steady while a bonus is held and blinks during payout.
func (e *Engine) AnimateAncillary(dt float64) {
	if dt <= 0 {
		return
	}
	a := &e.ancillary
	a.lampPhase = math.Mod(a.lampPhase+dt*LampBlinkHz, 1)
	a.leverTravel = math.Max(0, a.leverTravel-dt*LeverReturnPerSecond)

	switch {
	case e.state.BonusHeld && e.phase == domain.PhaseIdle:
		a.lampLit = true
	case e.state.PendingBonusPayout > 0:
		a.lampLit = a.lampPhase < 0.5
	default:
		a.lampLit = false
	}
}
