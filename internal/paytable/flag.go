package paytable

import "github.com/osse101/reelslot/internal/domain"

// FlagEntry is one weighted outcome of a spin
type FlagEntry struct {
	Name           string              `json:"name" validate:"required"`
	Probability    float64             `json:"probability" validate:"gte=0,lte=1"`
	SubProbability float64             `json:"sub_probability" validate:"gte=0,lte=1"`
	Targets        []domain.Symbol     `json:"targets,omitempty"`
	Lines          []domain.PayLine    `json:"lines,omitempty"`
	Payout         int                 `json:"payout" validate:"gte=0"`
	Destination    domain.ModeID       `json:"destination,omitempty"`
	Category       domain.FlagCategory `json:"category"`
	PaySound       domain.Cue          `json:"pay_sound,omitempty"`
}

// Target returns the symbol the flag wants on reel i
func (f *FlagEntry) Target(reel int) domain.Symbol {
	return f.Targets[reel]
}

// HasLines reports whether the flag can be lined up at all
func (f *FlagEntry) HasLines() bool {
	return len(f.Lines) > 0 && len(f.Targets) > 0
}

// Jingle is the looped bonus music for a flag
type Jingle struct {
	Cue         domain.Cue `json:"cue" validate:"required"`
	LoopStartMs int        `json:"loop_start_ms" validate:"gte=0"`
	LoopEndMs   int        `json:"loop_end_ms" validate:"gtefield=LoopStartMs"`
}
