package machine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/reelslot/internal/clock"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/paytable"
	"github.com/osse101/reelslot/internal/slots"
)

// alwaysMiss never clears a draw threshold, so every spin is the catch-all miss
type alwaysMiss struct{}

func (alwaysMiss) Float64() float64 { return 0.999999 }

const testCredit = 50

type fixture struct {
	svc   Service
	repo  *MockRepository
	clock *clock.Manual
	bus   *event.MemoryBus
}

func newFixture(t *testing.T, mutate func(*Config)) *fixture {
	t.Helper()
	return newFixtureWithSound(t, mutate, nil)
}

func newFixtureWithSound(t *testing.T, mutate func(*Config), sound slots.SoundPlayer) *fixture {
	t.Helper()
	repo := new(MockRepository)
	t.Cleanup(func() { repo.AssertExpectations(t) })

	clk := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	bus := event.NewMemoryBus()

	cfg := Config{
		InitialCredit: testCredit,
		DevMode:       true,
		AutoEvaluate:  true,
		CacheSize:     8,
		CacheTTL:      time.Hour,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	svc, err := NewService(Deps{
		Repo:    repo,
		Machine: paytable.MustDefault(),
		Bus:     bus,
		Clock:   clk,
		Random:  func() (slots.RandomSource, error) { return alwaysMiss{}, nil },
		Sound:   sound,
	}, cfg)
	require.NoError(t, err)

	return &fixture{svc: svc, repo: repo, clock: clk, bus: bus}
}

func (f *fixture) create(t *testing.T) uuid.UUID {
	t.Helper()
	f.repo.On("CreateMachine", mock.Anything, mock.AnythingOfType("*domain.Machine")).Return(nil).Once()
	v, err := f.svc.Create(context.Background())
	require.NoError(t, err)
	return v.ID
}

// stopAll presses each stop button and lets the slip land
func (f *fixture) stopAll(t *testing.T, id uuid.UUID) domain.MachineView {
	t.Helper()
	ctx := context.Background()
	var v domain.MachineView
	for reel := 0; reel < 3; reel++ {
		_, err := f.svc.RequestStop(ctx, id, reel)
		require.NoError(t, err, "stop %d", reel)
		v, err = f.svc.Tick(ctx, id, 1.0)
		require.NoError(t, err)
	}
	return v
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(Deps{}, Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewService(Deps{Repo: new(MockRepository), Machine: paytable.MustDefault()}, Config{InitialCredit: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate(t *testing.T) {
	f := newFixture(t, nil)

	var stored *domain.Machine
	f.repo.On("CreateMachine", mock.Anything, mock.AnythingOfType("*domain.Machine")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Machine) }).
		Return(nil).Once()

	v, err := f.svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.Equal(t, domain.PhaseIdle, v.Phase)
	assert.True(t, v.Ready)
	assert.Equal(t, testCredit, v.State.Credit)
	assert.Equal(t, domain.ModeID(paytable.ModeNormal), v.State.Mode)

	require.NotNil(t, stored)
	assert.Equal(t, v.ID, stored.ID)
	assert.Equal(t, v.State, stored.State)
}

func TestCreate_RepositoryError(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.On("CreateMachine", mock.Anything, mock.Anything).Return(domain.ErrDatabaseError).Once()

	_, err := f.svc.Create(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestGet_CachedSessionSkipsRepository(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	v, err := f.svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, v.ID)
	f.repo.AssertNotCalled(t, "GetMachine", mock.Anything, mock.Anything)
}

func TestGet_RestoresFromRepository(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()
	state := domain.MachineSnapshot{Mode: paytable.ModeNormal, FlagIndex: 0, Credit: 123, ReplayPending: true}
	f.repo.On("GetMachine", mock.Anything, id).Return(&domain.Machine{ID: id, State: state, Spins: 40}, nil).Once()

	v, err := f.svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 123, v.State.Credit)
	assert.True(t, v.State.ReplayPending)

	// second read is served from the cache
	_, err = f.svc.Get(context.Background(), id)
	require.NoError(t, err)
}

func TestGet_RestoresHeldBonusDrawnFromBaseTable(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()
	// watermelon (entry 6 of the base table) held its bonus through the sub draw
	state := domain.MachineSnapshot{
		Mode:      paytable.ModeRegAPending,
		DrawnMode: paytable.ModeNormal,
		FlagIndex: 6,
		Credit:    80,
		BonusHeld: true,
	}
	f.repo.On("GetMachine", mock.Anything, id).Return(&domain.Machine{ID: id, State: state, Spins: 12}, nil).Once()

	v, err := f.svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, state, v.State)
	assert.Equal(t, domain.CategoryWatermelon, v.Category)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()
	f.repo.On("GetMachine", mock.Anything, id).Return(nil, domain.ErrMachineNotFound).Once()

	_, err := f.svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrMachineNotFound)
}

func TestGet_CorruptStoredState(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()
	bad := domain.MachineSnapshot{Mode: "no_such_mode"}
	f.repo.On("GetMachine", mock.Anything, id).Return(&domain.Machine{ID: id, State: bad}, nil).Once()

	_, err := f.svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestPullLever_StartsSpin(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	var started []event.Event
	f.bus.Subscribe(event.SpinStarted, func(ctx context.Context, e event.Event) error {
		started = append(started, e)
		return nil
	})

	v, err := f.svc.PullLever(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSpinning, v.Phase)
	assert.Equal(t, testCredit-3, v.State.Credit)

	require.Len(t, started, 1)
	assert.Equal(t, id.String(), started[0].GetMetadataValue(event.MetadataMachine))

	_, err = f.svc.PullLever(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrReelsSpinning)
}

func TestPullLever_InsufficientCredit(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.InitialCredit = 2 })
	id := f.create(t)

	_, err := f.svc.PullLever(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrInsufficientCredit)
}

func TestPullLever_Gated(t *testing.T) {
	f := newFixture(t, func(c *Config) {
		c.DevMode = false
		c.LeverGap = time.Second
		c.ButtonGap = 300 * time.Millisecond
	})
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.PullLever(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.RequestStop(ctx, id, 0)
	assert.ErrorIs(t, err, domain.ErrInputRejected, "stop buttons wait for the button gap")

	f.repo.On("SaveMachine", mock.Anything, id, mock.Anything, int64(1)).Return(nil).Once()
	var v domain.MachineView
	for reel := 0; reel < 3; reel++ {
		f.clock.Advance(300 * time.Millisecond)
		_, err = f.svc.RequestStop(ctx, id, reel)
		require.NoError(t, err, "stop %d", reel)
		v, err = f.svc.Tick(ctx, id, 1.0)
		require.NoError(t, err)
	}
	require.Equal(t, domain.PhaseIdle, v.Phase)

	_, err = f.svc.PullLever(ctx, id)
	assert.ErrorIs(t, err, domain.ErrInputRejected, "lever gap not yet elapsed")

	f.clock.Advance(time.Second)
	_, err = f.svc.PullLever(ctx, id)
	assert.NoError(t, err)
}

func TestSpin_AutoEvaluatePersists(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.PullLever(ctx, id)
	require.NoError(t, err)

	f.repo.On("SaveMachine", mock.Anything, id,
		mock.MatchedBy(func(s domain.MachineSnapshot) bool {
			return s.Credit == testCredit-3 && s.Mode == paytable.ModeNormal && !s.BonusHeld
		}),
		int64(1),
	).Return(nil).Once()

	v := f.stopAll(t, id)
	assert.Equal(t, domain.PhaseIdle, v.Phase)
	require.NotNil(t, v.LastResult)
	assert.Equal(t, domain.CategoryMiss, v.LastResult.Category)
	assert.Zero(t, v.LastResult.Payout)
}

func TestEvaluate_Manual(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.AutoEvaluate = false })
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.Evaluate(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNoSpinInProgress)

	_, err = f.svc.PullLever(ctx, id)
	require.NoError(t, err)

	_, err = f.svc.Evaluate(ctx, id)
	assert.ErrorIs(t, err, domain.ErrReelsSpinning)

	v := f.stopAll(t, id)
	assert.Equal(t, domain.PhaseAllStopped, v.Phase, "nothing settles the spin without AutoEvaluate")

	f.repo.On("SaveMachine", mock.Anything, id, mock.Anything, int64(1)).Return(nil).Once()
	result, err := f.svc.Evaluate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryMiss, result.Category)
	assert.Equal(t, testCredit-3, result.Credit)
}

func TestEvaluate_SaveFailureSurfaces(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.AutoEvaluate = false })
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.PullLever(ctx, id)
	require.NoError(t, err)
	f.stopAll(t, id)

	f.repo.On("SaveMachine", mock.Anything, id, mock.Anything, int64(1)).Return(domain.ErrDatabaseError).Once()
	_, err = f.svc.Evaluate(ctx, id)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestRequestStop_Errors(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.RequestStop(ctx, id, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidReelIndex)

	_, err = f.svc.RequestStop(ctx, id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidReelIndex)

	_, err = f.svc.RequestStop(ctx, id, 0)
	assert.ErrorIs(t, err, domain.ErrInputRejected, "idle machine")
}

func TestTick_NegativeFrame(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	_, err := f.svc.Tick(context.Background(), id, -0.1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddCredit(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	ctx := context.Background()

	f.repo.On("SaveMachine", mock.Anything, id,
		mock.MatchedBy(func(s domain.MachineSnapshot) bool { return s.Credit == testCredit+20 }),
		int64(0),
	).Return(nil).Once()

	v, err := f.svc.AddCredit(ctx, id, 20)
	require.NoError(t, err)
	assert.Equal(t, testCredit+20, v.State.Credit)

	_, err = f.svc.AddCredit(ctx, id, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddCredit_MidSpinDefersSave(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.PullLever(ctx, id)
	require.NoError(t, err)

	v, err := f.svc.AddCredit(ctx, id, 10)
	require.NoError(t, err)
	assert.Equal(t, testCredit-3+10, v.State.Credit)
	f.repo.AssertNotCalled(t, "SaveMachine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTickAll_OnlyMovesSpinningSessions(t *testing.T) {
	f := newFixture(t, nil)
	spinning := f.create(t)
	f.create(t)
	ctx := context.Background()

	_, err := f.svc.PullLever(ctx, spinning)
	require.NoError(t, err)

	before, err := f.svc.Get(ctx, spinning)
	require.NoError(t, err)

	assert.Equal(t, 1, f.svc.TickAll(ctx, 0.1))

	after, err := f.svc.Get(ctx, spinning)
	require.NoError(t, err)
	assert.NotEqual(t, before.Reels[0].Position, after.Reels[0].Position)
}

func TestFlush_SavesIdleSessions(t *testing.T) {
	f := newFixture(t, nil)
	idle := f.create(t)
	spinning := f.create(t)
	ctx := context.Background()

	_, err := f.svc.PullLever(ctx, spinning)
	require.NoError(t, err)

	f.repo.On("SaveMachine", mock.Anything, idle, mock.Anything, int64(0)).Return(nil).Once()
	require.NoError(t, f.svc.Flush(ctx))
}

func TestFlush_JoinsErrors(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	f.repo.On("SaveMachine", mock.Anything, id, mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()
	assert.ErrorContains(t, f.svc.Flush(context.Background()), "write failed")
}

func TestDelete(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	ctx := context.Background()

	f.repo.On("DeleteMachine", mock.Anything, id).Return(nil).Once()
	require.NoError(t, f.svc.Delete(ctx, id))

	f.repo.On("GetMachine", mock.Anything, id).Return(nil, domain.ErrMachineNotFound).Once()
	_, err := f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrMachineNotFound)
}

func TestList_ClampsLimit(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.repo.On("ListMachines", mock.Anything, DefaultListLimit).Return([]domain.Machine{}, nil).Once()
	f.repo.On("ListMachines", mock.Anything, MaxListLimit).Return([]domain.Machine{}, nil).Once()

	_, err := f.svc.List(ctx, 0)
	require.NoError(t, err)
	_, err = f.svc.List(ctx, 1_000)
	require.NoError(t, err)
}

func TestCacheEviction_ReloadsFromRepository(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.CacheSize = 1 })
	first := f.create(t)
	f.create(t)

	state := domain.MachineSnapshot{Mode: paytable.ModeNormal, FlagIndex: 0, Credit: testCredit}
	f.repo.On("GetMachine", mock.Anything, first).Return(&domain.Machine{ID: first, State: state}, nil).Once()

	v, err := f.svc.Get(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, testCredit, v.State.Credit)
}

// countingSound records the cues it is asked to play
type countingSound struct {
	mu   sync.Mutex
	cues []domain.Cue
}

func (c *countingSound) PlayOnce(cue domain.Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cues = append(c.cues, cue)
}

func (c *countingSound) Loop(domain.Cue, int, int) {}

func (c *countingSound) Pause() {}

func (c *countingSound) IsPlaying() bool { return false }

func (c *countingSound) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cues)
}

func TestSound_PlaysForOneSessionAtATime(t *testing.T) {
	sound := &countingSound{}
	f := newFixtureWithSound(t, nil, sound)
	ctx := context.Background()

	first := f.create(t)
	second := f.create(t)

	_, err := f.svc.PullLever(ctx, second)
	require.NoError(t, err)
	assert.Zero(t, sound.count(), "second session is silent")

	_, err = f.svc.PullLever(ctx, first)
	require.NoError(t, err)
	heard := sound.count()
	assert.Positive(t, heard)
	assert.Contains(t, sound.cues, domain.CueLever)

	// deleting the owner frees the device for the next session
	f.repo.On("DeleteMachine", mock.Anything, first).Return(nil).Once()
	require.NoError(t, f.svc.Delete(ctx, first))

	third := f.create(t)
	_, err = f.svc.PullLever(ctx, third)
	require.NoError(t, err)
	assert.Greater(t, sound.count(), heard)
}
