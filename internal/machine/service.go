package machine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/reelslot/internal/concurrency"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/logger"
	"github.com/osse101/reelslot/internal/metrics"
	"github.com/osse101/reelslot/internal/paytable"
	"github.com/osse101/reelslot/internal/repository"
	"github.com/osse101/reelslot/internal/slots"
	"github.com/osse101/reelslot/internal/utils"
)

// Service hosts many machine sessions behind ids. Sessions live in an
// expiring in-memory cache and are written through to the repository after
// every evaluated spin and credit change.
type Service interface {
	Create(ctx context.Context) (domain.MachineView, error)
	Get(ctx context.Context, id uuid.UUID) (domain.MachineView, error)
	List(ctx context.Context, limit int) ([]domain.Machine, error)
	Delete(ctx context.Context, id uuid.UUID) error

	PullLever(ctx context.Context, id uuid.UUID) (domain.MachineView, error)
	RequestStop(ctx context.Context, id uuid.UUID, reel int) (domain.MachineView, error)
	// Tick advances one session by dt seconds of animation
	Tick(ctx context.Context, id uuid.UUID, dt float64) (domain.MachineView, error)
	Evaluate(ctx context.Context, id uuid.UUID) (domain.SpinResult, error)
	AddCredit(ctx context.Context, id uuid.UUID, amount int) (domain.MachineView, error)

	// TickAll advances every live session and returns how many were moving
	TickAll(ctx context.Context, dt float64) int
	// Flush persists every idle live session
	Flush(ctx context.Context) error
}

// RandomFactory builds the draw source for one session
type RandomFactory func() (slots.RandomSource, error)

// Config tunes the hosted sessions
type Config struct {
	InitialCredit int
	LeverGap      time.Duration
	ButtonGap     time.Duration
	DevMode       bool

	CacheSize int
	CacheTTL  time.Duration

	// AutoEvaluate settles a spin inside Tick once every reel has stopped
	AutoEvaluate bool
}

// Deps are the collaborators shared by all sessions
type Deps struct {
	Repo    repository.Machine
	Machine *paytable.Machine
	Bus     event.Bus
	Clock   slots.Clock
	Random  RandomFactory
	// Sound is the host's single sound device. One live session at a time
	// plays through it; the others are silent.
	Sound slots.SoundPlayer
}

type session struct {
	engine *slots.Engine
	spins  int64
}

type service struct {
	repo    repository.Machine
	machine *paytable.Machine
	bus     event.Bus
	clock   slots.Clock
	random  RandomFactory
	sound   slots.SoundPlayer
	cfg     Config

	locks *concurrency.LockManager[uuid.UUID]
	cache *expirable.LRU[uuid.UUID, *session]

	soundMu    sync.Mutex
	soundOwner uuid.UUID
}

// NewService creates the machine host
func NewService(deps Deps, cfg Config) (Service, error) {
	if deps.Repo == nil || deps.Machine == nil {
		return nil, fmt.Errorf("%w: machine service needs a repository and a machine", domain.ErrInvalidInput)
	}
	if cfg.InitialCredit < 0 {
		return nil, fmt.Errorf("%w: negative initial credit %d", domain.ErrInvalidInput, cfg.InitialCredit)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if deps.Random == nil {
		deps.Random = func() (slots.RandomSource, error) { return utils.NewSource() }
	}

	s := &service{
		repo:    deps.Repo,
		machine: deps.Machine,
		bus:     deps.Bus,
		clock:   deps.Clock,
		random:  deps.Random,
		sound:   deps.Sound,
		cfg:     cfg,
		locks:   concurrency.NewLockManager[uuid.UUID](),
	}
	s.cache = expirable.NewLRU[uuid.UUID, *session](cfg.CacheSize, s.onEvict, cfg.CacheTTL)
	return s, nil
}

// onEvict runs under the cache lock and must not call back into the cache
func (s *service) onEvict(id uuid.UUID, sess *session) {
	metrics.LiveMachines.Dec()
	s.releaseSound(id)
	if sess.engine.Phase() != domain.PhaseIdle {
		slog.Warn(LogMsgMidSpinEvicted, "machine", id, "phase", sess.engine.Phase())
		return
	}
	slog.Debug(LogMsgMachineEvicted, "machine", id)
}

// claimSound hands the sound device to id unless another live session owns
// it. A nil result leaves the engine on its silent default.
func (s *service) claimSound(id uuid.UUID) slots.SoundPlayer {
	if s.sound == nil {
		return nil
	}
	s.soundMu.Lock()
	defer s.soundMu.Unlock()
	if s.soundOwner != uuid.Nil && s.soundOwner != id {
		return slots.NopSound{}
	}
	s.soundOwner = id
	return s.sound
}

func (s *service) releaseSound(id uuid.UUID) {
	s.soundMu.Lock()
	defer s.soundMu.Unlock()
	if s.soundOwner == id {
		s.soundOwner = uuid.Nil
	}
}

func (s *service) newEngine(ctx context.Context, id uuid.UUID) (*slots.Engine, error) {
	rng, err := s.random()
	if err != nil {
		return nil, err
	}
	e, err := slots.NewEngine(s.machine, slots.Options{
		Clock:         s.clock,
		Random:        rng,
		Sound:         s.claimSound(id),
		Bus:           s.bus,
		Logger:        logger.FromContext(ctx),
		MachineID:     id.String(),
		LeverGap:      s.cfg.LeverGap,
		ButtonGap:     s.cfg.ButtonGap,
		DevMode:       s.cfg.DevMode,
		InitialCredit: s.cfg.InitialCredit,
	})
	if err != nil {
		s.releaseSound(id)
		return nil, err
	}
	return e, nil
}

// Create starts a fresh session on the base table with the initial credit
func (s *service) Create(ctx context.Context) (domain.MachineView, error) {
	id := uuid.New()
	engine, err := s.newEngine(ctx, id)
	if err != nil {
		return domain.MachineView{}, err
	}

	m := &domain.Machine{ID: id, State: engine.Snapshot()}
	if err := s.repo.CreateMachine(ctx, m); err != nil {
		s.releaseSound(id)
		return domain.MachineView{}, err
	}

	s.cache.Add(id, &session{engine: engine})
	metrics.LiveMachines.Inc()

	logger.FromContext(ctx).Info(LogMsgMachineCreated, "machine", id, "credit", m.State.Credit)
	return view(id, engine), nil
}

// load returns the live session, restoring it from storage on a cache miss.
// Callers hold the id's lock.
func (s *service) load(ctx context.Context, id uuid.UUID) (*session, error) {
	if sess, ok := s.cache.Get(id); ok {
		return sess, nil
	}

	m, err := s.repo.GetMachine(ctx, id)
	if err != nil {
		return nil, err
	}
	engine, err := s.newEngine(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := engine.Restore(m.State); err != nil {
		s.releaseSound(id)
		return nil, fmt.Errorf("failed to restore machine %s: %w", id, err)
	}

	sess := &session{engine: engine, spins: m.Spins}
	s.cache.Add(id, sess)
	metrics.LiveMachines.Inc()

	logger.FromContext(ctx).Debug(LogMsgMachineLoaded, "machine", id, "mode", m.State.Mode)
	return sess, nil
}

// with runs fn on the session under its lock
func (s *service) with(ctx context.Context, id uuid.UUID, fn func(*session) error) error {
	return s.locks.WithLock(id, func() error {
		sess, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		return fn(sess)
	})
}

func (s *service) save(ctx context.Context, id uuid.UUID, sess *session) error {
	if err := s.repo.SaveMachine(ctx, id, sess.engine.Snapshot(), sess.spins); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "machine", id, "error", err)
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgMachineSaved, "machine", id, "spins", sess.spins)
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (domain.MachineView, error) {
	var v domain.MachineView
	err := s.with(ctx, id, func(sess *session) error {
		v = view(id, sess.engine)
		return nil
	})
	return v, err
}

func (s *service) List(ctx context.Context, limit int) ([]domain.Machine, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListMachines(ctx, limit)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.locks.WithLock(id, func() error {
		if err := s.repo.DeleteMachine(ctx, id); err != nil {
			return err
		}
		s.cache.Remove(id)
		s.releaseSound(id)
		return nil
	})
	if err == nil {
		s.locks.Forget(id)
	}
	return err
}

// PullLever maps a refused pull to the reason a client can act on
func (s *service) PullLever(ctx context.Context, id uuid.UUID) (domain.MachineView, error) {
	var v domain.MachineView
	err := s.with(ctx, id, func(sess *session) error {
		e := sess.engine
		if !e.PullLever() {
			return leverRefusal(e)
		}
		sess.spins++
		v = view(id, e)
		return nil
	})
	return v, err
}

func leverRefusal(e *slots.Engine) error {
	if e.Phase() != domain.PhaseIdle {
		return domain.ErrReelsSpinning
	}
	st := e.Snapshot()
	if !st.ReplayPending && st.Credit < e.Machine().Bet() {
		return domain.ErrInsufficientCredit
	}
	return fmt.Errorf("%w: lever gated", domain.ErrInputRejected)
}

func (s *service) RequestStop(ctx context.Context, id uuid.UUID, reel int) (domain.MachineView, error) {
	if reel < 0 || reel >= s.machine.Reels() {
		return domain.MachineView{}, fmt.Errorf("%w: %d", domain.ErrInvalidReelIndex, reel)
	}
	var v domain.MachineView
	err := s.with(ctx, id, func(sess *session) error {
		if !sess.engine.RequestStop(reel) {
			return fmt.Errorf("%w: stop %d refused", domain.ErrInputRejected, reel)
		}
		v = view(id, sess.engine)
		return nil
	})
	return v, err
}

func (s *service) Tick(ctx context.Context, id uuid.UUID, dt float64) (domain.MachineView, error) {
	if dt < 0 {
		return domain.MachineView{}, fmt.Errorf("%w: negative frame time", domain.ErrInvalidInput)
	}
	var v domain.MachineView
	err := s.with(ctx, id, func(sess *session) error {
		if err := s.advance(ctx, id, sess, dt); err != nil {
			return err
		}
		v = view(id, sess.engine)
		return nil
	})
	return v, err
}

// advance steps one session and settles it when AutoEvaluate is on
func (s *service) advance(ctx context.Context, id uuid.UUID, sess *session, dt float64) error {
	e := sess.engine
	for dt > 0 {
		step := min(dt, MaxFrameSeconds)
		e.SpinReel(step)
		e.AnimateAncillary(step)
		dt -= step
	}

	if !s.cfg.AutoEvaluate || e.Phase() != domain.PhaseAllStopped {
		return nil
	}
	result, err := e.Evaluate()
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgAutoEvaluated, "machine", id, "category", result.Category, "payout", result.Payout)
	return s.save(ctx, id, sess)
}

func (s *service) Evaluate(ctx context.Context, id uuid.UUID) (domain.SpinResult, error) {
	var result domain.SpinResult
	err := s.with(ctx, id, func(sess *session) error {
		r, err := sess.engine.Evaluate()
		if err != nil {
			return err
		}
		result = r
		return s.save(ctx, id, sess)
	})
	return result, err
}

func (s *service) AddCredit(ctx context.Context, id uuid.UUID, amount int) (domain.MachineView, error) {
	var v domain.MachineView
	err := s.with(ctx, id, func(sess *session) error {
		if err := sess.engine.AddCredit(amount); err != nil {
			return err
		}
		// mid-spin the snapshot would record a drawn flag; persist at evaluation instead
		if sess.engine.Phase() == domain.PhaseIdle {
			if err := s.save(ctx, id, sess); err != nil {
				return err
			}
		}
		v = view(id, sess.engine)
		return nil
	})
	return v, err
}

func (s *service) TickAll(ctx context.Context, dt float64) int {
	moving := 0
	for _, id := range s.cache.Keys() {
		mu := s.locks.GetLock(id)
		mu.Lock()
		sess, ok := s.cache.Peek(id)
		if ok && sess.engine.Phase() != domain.PhaseIdle {
			moving++
			if err := s.advance(ctx, id, sess, dt); err != nil {
				logger.FromContext(ctx).Warn(LogMsgTickFailed, "machine", id, "error", err)
			}
		} else if ok {
			sess.engine.AnimateAncillary(dt)
		}
		mu.Unlock()
	}
	return moving
}

func (s *service) Flush(ctx context.Context) error {
	var errs []error
	saved := 0
	for _, id := range s.cache.Keys() {
		err := s.locks.WithLock(id, func() error {
			sess, ok := s.cache.Peek(id)
			if !ok || sess.engine.Phase() != domain.PhaseIdle {
				return nil
			}
			saved++
			return s.save(ctx, id, sess)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgFlushCompleted, "saved", saved, "failed", len(errs))
	return errors.Join(errs...)
}

func view(id uuid.UUID, e *slots.Engine) domain.MachineView {
	v := e.View()
	v.ID = id
	return v
}
