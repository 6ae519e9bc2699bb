package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/paytable"
)

const (
	idxFreeze     = 0
	idxBigRed     = 1
	idxRegMixed   = 4
	idxCherry     = 5
	idxWatermelon = 6
	idxBell       = 7
	idxReplay     = 8
	idxMiss       = 9
)

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e, err := NewEngine(paytable.MustDefault(), Options{InitialCredit: 10})
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseIdle, e.Phase())
		assert.Equal(t, 10, e.Credit())
		assert.Equal(t, domain.CategoryMiss, e.ActiveFlagCategory())
		assert.Len(t, e.Reels(), 3)
		assert.True(t, e.IsReady())
	})

	t.Run("nil machine", func(t *testing.T) {
		_, err := NewEngine(nil, Options{})
		assert.ErrorIs(t, err, domain.ErrInvalidMachine)
	})

	t.Run("negative credit", func(t *testing.T) {
		_, err := NewEngine(paytable.MustDefault(), Options{InitialCredit: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestPullLever_StartsSpin(t *testing.T) {
	h := newHarness(t, 50)
	h.pull(drawIndex(idxBell)...)

	assert.Equal(t, domain.PhaseSpinning, h.e.Phase())
	assert.Equal(t, 47, h.e.Credit())
	assert.Equal(t, domain.CategoryBell, h.e.ActiveFlagCategory())
	for _, r := range h.e.Reels() {
		assert.True(t, r.IsSpinning())
		assert.False(t, r.IsReverse())
	}
	h.sound.AssertCalled(t, "PlayOnce", domain.CueLever)
	h.sound.AssertCalled(t, "Loop", domain.CueAmbient, 0, 0)
	assert.False(t, h.e.IsReady())
}

func TestPullLever_IgnoredMidSpin(t *testing.T) {
	h := newHarness(t, 50)
	h.pull()
	before := h.e.Snapshot()

	h.clock.Advance(testLeverGap)
	assert.False(t, h.e.PullLever())
	assert.Equal(t, before, h.e.Snapshot())
}

func TestPullLever_InsufficientCredit(t *testing.T) {
	h := newHarness(t, 2)
	h.clock.Advance(testLeverGap)
	assert.False(t, h.e.IsReady())
	assert.False(t, h.e.PullLever())
	assert.Equal(t, domain.PhaseIdle, h.e.Phase())
	assert.Equal(t, 2, h.e.Credit())

	// a refused pull does not start the lever gate
	require.NoError(t, h.e.AddCredit(1))
	assert.True(t, h.e.PullLever())
}

func TestPullLever_RealTimeGate(t *testing.T) {
	h := newHarness(t, 50)
	h.spin(anywhere)

	// 300ms of clock since the lever; frames alone never open the gate
	for range 600 {
		h.e.SpinReel(1.0 / 60)
	}
	before := h.e.Snapshot()
	assert.False(t, h.e.IsReady())
	assert.False(t, h.e.PullLever())
	assert.Equal(t, before, h.e.Snapshot())
	assert.Equal(t, domain.PhaseIdle, h.e.Phase())

	h.clock.Advance(testLeverGap - testButtonGap - 1)
	assert.False(t, h.e.PullLever())

	h.clock.Advance(1)
	assert.True(t, h.e.PullLever())
}

func TestPullLever_DevModeSkipsGate(t *testing.T) {
	h := newHarness(t, 50)
	e, err := NewEngine(paytable.MustDefault(), Options{
		Clock:         h.clock,
		Random:        h.rng,
		InitialCredit: 50,
		DevMode:       true,
	})
	require.NoError(t, err)

	require.True(t, e.PullLever())
	for i := range e.Reels() {
		require.True(t, e.RequestStop(i))
		for !e.Reels()[i].IsSettled() {
			e.SpinReel(0.01)
		}
	}
	_, err = e.Evaluate()
	require.NoError(t, err)
	assert.True(t, e.PullLever())
}

func TestPullLever_CategoryCues(t *testing.T) {
	t.Run("bonus alert", func(t *testing.T) {
		h := newHarness(t, 50)
		h.pull(drawIndex(idxBigRed)...)
		h.sound.AssertCalled(t, "PlayOnce", domain.CueBonusAlert)
		h.sound.AssertNotCalled(t, "PlayOnce", domain.CueRareAlert)
	})

	t.Run("rare alert", func(t *testing.T) {
		for _, idx := range []int{idxCherry, idxWatermelon} {
			h := newHarness(t, 50)
			h.pull(drawIndex(idx)...)
			h.sound.AssertCalled(t, "PlayOnce", domain.CueRareAlert)
		}
	})

	t.Run("no alert for bell", func(t *testing.T) {
		h := newHarness(t, 50)
		h.pull(drawIndex(idxBell)...)
		h.sound.AssertNotCalled(t, "PlayOnce", domain.CueRareAlert)
		h.sound.AssertNotCalled(t, "PlayOnce", domain.CueBonusAlert)
	})
}

func TestEvaluate_Contract(t *testing.T) {
	h := newHarness(t, 50)

	_, err := h.e.Evaluate()
	assert.ErrorIs(t, err, domain.ErrNoSpinInProgress)

	h.pull()
	_, err = h.e.Evaluate()
	assert.ErrorIs(t, err, domain.ErrReelsSpinning)

	h.stop(0, -1)
	_, err = h.e.Evaluate()
	assert.ErrorIs(t, err, domain.ErrReelsSpinning)
	assert.Equal(t, 47, h.e.Credit())
}

func TestEvaluate_BellMiddleLinePaysNine(t *testing.T) {
	h := newHarness(t, 50)
	res := h.spin([]int{2, 1, 2}, drawIndex(idxBell)...)

	assert.Equal(t, []domain.Symbol{domain.SymbolBell, domain.SymbolBell, domain.SymbolBell}, h.middles())
	assert.Equal(t, domain.CategoryBell, res.Category)
	assert.Equal(t, 9, res.Payout)
	require.Len(t, res.LinesHit, 1)
	assert.Equal(t, paytable.LineMiddle, res.LinesHit[0])
	assert.Equal(t, 56, h.e.Credit())
	assert.Equal(t, 56, res.Credit)
	assert.Len(t, res.Highlights, 3)
	for _, r := range h.e.Reels() {
		assert.True(t, r.Flash())
	}
	h.sound.AssertCalled(t, "PlayOnce", domain.CuePayBell)
	assert.Equal(t, domain.PhaseIdle, h.e.Phase())
}

func TestEvaluate_CherryHighlightsCorners(t *testing.T) {
	h := newHarness(t, 50)
	// cherries at 7, 7 and 3 sit on the top row
	res := h.spin([]int{8, 8, 4}, drawIndex(idxCherry)...)

	require.Len(t, res.LinesHit, 1)
	assert.Equal(t, paytable.LineTop, res.LinesHit[0])
	assert.Equal(t, 2, res.Payout)
	assert.ElementsMatch(t, []domain.Cell{{Reel: 0, Row: domain.RowTop}, {Reel: 2, Row: domain.RowTop}}, res.Highlights)
	assert.True(t, h.e.Reels()[0].Flash())
	assert.False(t, h.e.Reels()[1].Flash())
	assert.True(t, h.e.Reels()[2].Flash())
}

func TestEvaluate_ReplayExemptsNextBet(t *testing.T) {
	h := newHarness(t, 50)
	res := h.spin(anywhere, drawIndex(idxReplay)...)

	assert.Equal(t, domain.CategoryReplay, res.Category)
	assert.Zero(t, res.Payout)
	require.NotEmpty(t, res.LinesHit)
	assert.True(t, h.e.Snapshot().ReplayPending)
	assert.Equal(t, 47, h.e.Credit())

	h.pull()
	assert.Equal(t, 47, h.e.Credit())
	assert.False(t, h.e.Snapshot().ReplayPending)
	for i := range h.e.Reels() {
		h.stop(i, -1)
	}
	_, err := h.e.Evaluate()
	require.NoError(t, err)

	h.pull()
	assert.Equal(t, 44, h.e.Credit())
}

func TestEvaluate_ReplayAllowsPullWithoutCredit(t *testing.T) {
	h := newHarness(t, 3)
	h.spin(anywhere, drawIndex(idxReplay)...)
	require.Zero(t, h.e.Credit())

	h.clock.Advance(testLeverGap)
	assert.True(t, h.e.IsReady())
	assert.True(t, h.e.PullLever())
	assert.Zero(t, h.e.Credit())
}

func TestPhaseProgression(t *testing.T) {
	h := newHarness(t, 50)
	h.pull(drawIndex(idxMiss)...)
	assert.Equal(t, domain.PhaseSpinning, h.e.Phase())

	h.stop(0, -1)
	assert.Equal(t, domain.PhasePartiallyStopped, h.e.Phase())
	h.stop(1, -1)
	assert.Equal(t, domain.PhasePartiallyStopped, h.e.Phase())
	h.stop(2, -1)
	assert.Equal(t, domain.PhaseAllStopped, h.e.Phase())
	assert.True(t, h.e.CheckAllStopped())

	_, err := h.e.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseIdle, h.e.Phase())
}
