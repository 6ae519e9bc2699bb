package paytable

import "github.com/osse101/reelslot/internal/domain"

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// Table is an ordered list of flags drawn from once per lever pull.
// Order is precedence; the last entry is the catch-all miss.
type Table struct {
	ID         domain.ModeID    `json:"id" validate:"required"`
	Kind       domain.TableKind `json:"kind"`
	Entries    []FlagEntry      `json:"entries" validate:"min=1,dive"`
	Jingles    map[int]Jingle   `json:"jingles,omitempty" validate:"dive"`
	PayoutMode domain.ModeID    `json:"payout_mode,omitempty"`
}

// Draw picks a flag index.
//
// Each entry's probability is rescaled by the complement of the previous
// entry's rescaled probability only, not the running product. Machine tables
// are tuned against exactly this arithmetic, so it must not be "fixed".
func (t *Table) Draw(rng RandomSource) int {
	complement := 1.0
	last := len(t.Entries) - 1
	for i := 0; i < last; i++ {
		p := t.Entries[i].Probability / complement
		if rng.Float64() < p {
			return i
		}
		complement = 1 - p
	}
	return last
}

// SubDraw rolls the secondary chance attached to entry idx
func (t *Table) SubDraw(rng RandomSource, idx int) bool {
	return rng.Float64() < t.Entries[idx].SubProbability
}

// Entry returns the flag at idx
func (t *Table) Entry(idx int) *FlagEntry {
	return &t.Entries[idx]
}

// CatchAll is the index of the miss entry
func (t *Table) CatchAll() int {
	return len(t.Entries) - 1
}

// Jingle returns the jingle for entry idx, if one is set
func (t *Table) Jingle(idx int) (Jingle, bool) {
	j, ok := t.Jingles[idx]
	return j, ok
}

// EffectiveProbabilities returns the chance each entry is drawn, following
// Draw's arithmetic. Used by reports and tests.
func (t *Table) EffectiveProbabilities() []float64 {
	out := make([]float64, len(t.Entries))
	remaining := 1.0
	complement := 1.0
	last := len(t.Entries) - 1
	for i := 0; i < last; i++ {
		p := t.Entries[i].Probability / complement
		q := p
		if q > 1 {
			q = 1
		}
		if !(q > 0) {
			q = 0
		}
		out[i] = remaining * q
		remaining -= out[i]
		complement = 1 - p
	}
	out[last] = remaining
	return out
}
