package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/clock"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/paytable"
)

const (
	testLeverGap  = time.Second
	testButtonGap = 300 * time.Millisecond
)

var (
	epoch    = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	anywhere = []int{-1, -1, -1}
)

// scriptedRNG returns queued values, then a value that never wins a draw
type scriptedRNG struct {
	queue []float64
}

func (s *scriptedRNG) push(vals ...float64) {
	s.queue = append(s.queue, vals...)
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.queue) == 0 {
		return 0.999999
	}
	v := s.queue[0]
	s.queue = s.queue[1:]
	return v
}

// drawIndex queues the values that make Table.Draw pick entry k
func drawIndex(k int) []float64 {
	vals := make([]float64, 0, k+1)
	for i := 0; i < k; i++ {
		vals = append(vals, 0.999999)
	}
	return append(vals, 0)
}

type mockSound struct {
	mock.Mock
}

func (m *mockSound) PlayOnce(c domain.Cue) { m.Called(c) }

func (m *mockSound) Loop(c domain.Cue, startMs, endMs int) { m.Called(c, startMs, endMs) }

func (m *mockSound) Pause() { m.Called() }

func (m *mockSound) IsPlaying() bool { return m.Called().Bool(0) }

func newMockSound() *mockSound {
	m := &mockSound{}
	m.On("PlayOnce", mock.Anything).Maybe()
	m.On("Loop", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("Pause").Maybe()
	m.On("IsPlaying").Return(false).Maybe()
	return m
}

type harness struct {
	t     *testing.T
	e     *Engine
	clock *clock.Manual
	rng   *scriptedRNG
	sound *mockSound
	bus   *event.MemoryBus
}

func newHarness(t *testing.T, credit int) *harness {
	t.Helper()
	script := &scriptedRNG{}
	h := newHarnessFor(t, paytable.MustDefault(), script, credit)
	h.rng = script
	return h
}

// newHarnessFor builds an engine for m drawing from rng. Only harnesses
// built by newHarness can queue scripted draws.
func newHarnessFor(t *testing.T, m *paytable.Machine, rng RandomSource, credit int) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		clock: clock.NewManual(epoch),
		sound: newMockSound(),
		bus:   event.NewMemoryBus(),
	}
	e, err := NewEngine(m, Options{
		Clock:         h.clock,
		Random:        rng,
		Sound:         h.sound,
		Bus:           h.bus,
		LeverGap:      testLeverGap,
		ButtonGap:     testButtonGap,
		InitialCredit: credit,
	})
	require.NoError(t, err)
	h.e = e
	return h
}

// pull waits out the lever gate, queues draw values, pulls, then waits out
// the button gate
func (h *harness) pull(vals ...float64) {
	h.t.Helper()
	h.clock.Advance(testLeverGap)
	if len(vals) > 0 {
		h.rng.push(vals...)
	}
	require.True(h.t, h.e.PullLever())
	h.clock.Advance(testButtonGap)
}

// stop optionally snaps reel i so its middle row shows strip index middle,
// then requests the stop and lets the slip land
func (h *harness) stop(i, middle int) {
	h.t.Helper()
	if middle >= 0 {
		h.e.Reels()[i].SnapToIndex(domain.RowMiddle, middle)
	}
	require.True(h.t, h.e.RequestStop(i), "stop reel %d", i)
	h.settle(i)
}

func (h *harness) settle(i int) {
	h.t.Helper()
	r := h.e.Reels()[i]
	for n := 0; n < 200 && !r.IsSettled(); n++ {
		h.e.SpinReel(0.01)
	}
	require.True(h.t, r.IsSettled())
}

// spin plays one full spin and evaluates it
func (h *harness) spin(layout []int, vals ...float64) domain.SpinResult {
	h.t.Helper()
	h.pull(vals...)
	for i := range h.e.Reels() {
		h.stop(i, layout[i])
	}
	res, err := h.e.Evaluate()
	require.NoError(h.t, err)
	return res
}

func (h *harness) middles() []domain.Symbol {
	out := make([]domain.Symbol, len(h.e.Reels()))
	for i, r := range h.e.Reels() {
		out[i] = r.SymbolAt(domain.RowMiddle)
	}
	return out
}
