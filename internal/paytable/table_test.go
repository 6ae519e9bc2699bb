package paytable

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/reelslot/internal/domain"
)

// scripted returns the given values in order, then repeats the last one
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

func tableOf(probs ...float64) *Table {
	t := &Table{ID: "t", Kind: domain.TableNormal}
	for _, p := range probs {
		t.Entries = append(t.Entries, FlagEntry{Name: "e", Probability: p, Category: domain.CategoryBell})
	}
	t.Entries = append(t.Entries, miss())
	return t
}

func TestDraw_FirstEntryWins(t *testing.T) {
	tbl := tableOf(0.5, 0.5)
	assert.Equal(t, 0, tbl.Draw(&scripted{vals: []float64{0.1}}))
}

func TestDraw_ComplementDoesNotCompound(t *testing.T) {
	// p0 = 0.2, p1 = 0.2/0.8 = 0.25, p2 = 0.2/0.75 ~ 0.2667.
	// A running product would give p2 = 0.2/0.6 ~ 0.333 and draw entry 2.
	tbl := tableOf(0.2, 0.2, 0.2)
	idx := tbl.Draw(&scripted{vals: []float64{0.9, 0.9, 0.3}})
	assert.Equal(t, 3, idx)

	idx = tbl.Draw(&scripted{vals: []float64{0.9, 0.9, 0.25}})
	assert.Equal(t, 2, idx)
}

func TestDraw_SecondEntryUsesRescaledProbability(t *testing.T) {
	tbl := tableOf(0.5, 0.25)
	// p1 = 0.25/0.5 = 0.5
	assert.Equal(t, 1, tbl.Draw(&scripted{vals: []float64{0.7, 0.49}}))
	assert.Equal(t, 2, tbl.Draw(&scripted{vals: []float64{0.7, 0.51}}))
}

func TestDraw_CatchAllOnlyEntry(t *testing.T) {
	tbl := &Table{ID: "m", Entries: []FlagEntry{miss()}}
	assert.Equal(t, 0, tbl.Draw(&scripted{vals: []float64{0}}))
}

func TestDraw_AlwaysInRange(t *testing.T) {
	tbl := MustDefault().BaseTable()
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		idx := tbl.Draw(rng)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(tbl.Entries))
	}
}

func TestSubDraw(t *testing.T) {
	tbl := &Table{Entries: []FlagEntry{{Name: "c", SubProbability: 0.1}, miss()}}
	assert.True(t, tbl.SubDraw(&scripted{vals: []float64{0.05}}, 0))
	assert.False(t, tbl.SubDraw(&scripted{vals: []float64{0.1}}, 0))
	assert.False(t, tbl.SubDraw(&scripted{vals: []float64{0}}, 1))
}

func TestEffectiveProbabilities_SumToOne(t *testing.T) {
	m := MustDefault()
	for _, id := range m.Modes() {
		tbl, ok := m.Table(id)
		assert.True(t, ok)
		sum := 0.0
		for _, p := range tbl.EffectiveProbabilities() {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "table %s", id)
	}
}

func TestEffectiveProbabilities_MatchesDraw(t *testing.T) {
	tbl := tableOf(0.2, 0.2, 0.2)
	probs := tbl.EffectiveProbabilities()
	assert.InDelta(t, 0.2, probs[0], 1e-12)
	assert.InDelta(t, 0.8*0.25, probs[1], 1e-12)
	assert.InDelta(t, 0.6*(0.2/0.75), probs[2], 1e-12)
}

func TestJingleLookup(t *testing.T) {
	base := MustDefault().BaseTable()
	j, ok := base.Jingle(1)
	assert.True(t, ok)
	assert.Equal(t, domain.CueJingleBig, j.Cue)

	_, ok = base.Jingle(base.CatchAll())
	assert.False(t, ok)
}
