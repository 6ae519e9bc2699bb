package paytable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/domain"
)

func TestDefault_IsValid(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 3, m.Reels())
	assert.Equal(t, DefaultBet, m.Bet())
	assert.Equal(t, DefaultSlipRange, m.SlipRange())
	assert.Equal(t, domain.ModeID(ModeNormal), m.BaseMode())
	for i := 0; i < m.Reels(); i++ {
		assert.Equal(t, 20, m.Strip(i).Len())
	}

	base := m.BaseTable()
	assert.Equal(t, domain.CategoryMiss, base.Entry(base.CatchAll()).Category)
	assert.Len(t, m.Modes(), 7)
}

func TestDefault_PendingTablesRouteToPayout(t *testing.T) {
	m := MustDefault()
	for _, id := range []domain.ModeID{ModeBigAPending, ModeBigBPending} {
		tbl, ok := m.Table(id)
		require.True(t, ok)
		assert.Equal(t, domain.TableBonusPending, tbl.Kind)
		assert.Equal(t, domain.ModeID(ModeBigPayout), tbl.PayoutMode)
	}
	for _, id := range []domain.ModeID{ModeRegAPending, ModeRegBPending} {
		tbl, _ := m.Table(id)
		assert.Equal(t, domain.ModeID(ModeRegPayout), tbl.PayoutMode)
	}
}

func TestDefault_SlipWindowCoversSmallRoles(t *testing.T) {
	m := MustDefault()
	for i := 0; i < m.Reels(); i++ {
		strip := m.Strip(i)
		for _, sym := range []domain.Symbol{domain.SymbolReplay, domain.SymbolBell} {
			for start := 0; start < strip.Len(); start++ {
				found := false
				for d := 0; d < m.SlipRange(); d++ {
					if strip.At(start-d) == sym {
						found = true
						break
					}
				}
				assert.True(t, found, "reel %d: %s unreachable from %d", i, sym, start)
			}
		}
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Definition)
		errMsg string
	}{
		{
			name:   "zero bet",
			mutate: func(d *Definition) { d.Bet = 0 },
			errMsg: "Bet",
		},
		{
			name:   "empty strip",
			mutate: func(d *Definition) { d.Strips[1] = nil },
			errMsg: "Strips",
		},
		{
			name:   "missing base mode",
			mutate: func(d *Definition) { d.BaseMode = "nope" },
			errMsg: "base mode",
		},
		{
			name:   "base mode not normal",
			mutate: func(d *Definition) { d.BaseMode = ModeBigPayout },
			errMsg: "must be a normal table",
		},
		{
			name:   "fallback count",
			mutate: func(d *Definition) { d.Fallback = d.Fallback[:2] },
			errMsg: "fallback symbols",
		},
		{
			name: "fallback not on strip",
			mutate: func(d *Definition) {
				d.Strips[0] = []domain.Symbol{domain.SymbolBell, domain.SymbolReplay, domain.SymbolSevenBlue}
			},
			errMsg: "not on strip",
		},
		{
			name: "catch-all missing",
			mutate: func(d *Definition) {
				e := d.Tables[0].Entries
				d.Tables[0].Entries = e[:len(e)-1]
			},
			errMsg: "miss catch-all",
		},
		{
			name: "probability above one",
			mutate: func(d *Definition) {
				d.Tables[0].Entries[0].Probability = 1.5
			},
			errMsg: "Probability",
		},
		{
			name: "targets length",
			mutate: func(d *Definition) {
				d.Tables[0].Entries[7].Targets = []domain.Symbol{domain.SymbolBell}
			},
			errMsg: "targets",
		},
		{
			name: "unknown destination",
			mutate: func(d *Definition) {
				d.Tables[0].Entries[1].Destination = "missing"
			},
			errMsg: "not defined",
		},
		{
			name: "destination is not pending",
			mutate: func(d *Definition) {
				d.Tables[0].Entries[1].Destination = ModeBigPayout
			},
			errMsg: "bonus pending table",
		},
		{
			name: "sub probability without destination",
			mutate: func(d *Definition) {
				d.Tables[0].Entries[7].SubProbability = 0.5
			},
			errMsg: "sub probability",
		},
		{
			name: "duplicate table",
			mutate: func(d *Definition) {
				d.Tables = append(d.Tables, d.Tables[len(d.Tables)-1])
			},
			errMsg: "duplicate table",
		},
		{
			name: "freeze sentinel missing from reel 0",
			mutate: func(d *Definition) {
				d.Freeze.Sentinel = domain.SymbolBlank
				d.Strips[0] = []domain.Symbol{domain.SymbolBell}
				d.Fallback[0] = domain.SymbolBell
			},
			errMsg: "freeze sentinel",
		},
		{
			name:   "freeze layout length",
			mutate: func(d *Definition) { d.Freeze.Layout = []int{0} },
			errMsg: "freeze layout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := DefaultDefinition()
			tt.mutate(&def)
			_, err := New(def)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidMachine)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefinition_ReturnsCopy(t *testing.T) {
	m := MustDefault()
	def := m.Definition()
	def.Strips[0][0] = domain.SymbolBlank
	assert.Equal(t, domain.SymbolSevenRed, m.Strip(0).At(0))
}
