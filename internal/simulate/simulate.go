// Package simulate plays a machine headless on a manual clock with a seeded
// draw source and reports the return to player.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/osse101/reelslot/internal/clock"
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/paytable"
	"github.com/osse101/reelslot/internal/slots"
	"github.com/osse101/reelslot/internal/utils"
)

// ErrStuck is returned when a spin does not settle within MaxFramesPerSpin
var ErrStuck = errors.New("spin did not settle")

// Config describes one simulation run
type Config struct {
	Spins int
	Seed  uint64
	// FPS is the frame rate the reels are stepped at
	FPS float64
	// MinReaction and MaxReaction bound the player's delay before each stop
	MinReaction time.Duration
	MaxReaction time.Duration
	// Credit is topped up by the bet whenever the player runs dry
	Credit int

	// Sound receives engine cues; nil is silent
	Sound slots.SoundPlayer
	// Pace sleeps out each frame in wall time so cues are audible
	Pace bool
}

// DefaultConfig returns a ten thousand spin run at 60 frames per second
func DefaultConfig() Config {
	return Config{
		Spins:       DefaultSpins,
		Seed:        DefaultSeed,
		FPS:         DefaultFPS,
		MinReaction: DefaultMinReaction,
		MaxReaction: DefaultMaxReaction,
		Credit:      DefaultCredit,
	}
}

// Report aggregates a run
type Report struct {
	Machine      string                          `json:"machine"`
	Spins        int                             `json:"spins"`
	CoinsIn      int                             `json:"coins_in"`
	CoinsOut     int                             `json:"coins_out"`
	RTP          float64                         `json:"rtp"`
	Refills      int                             `json:"refills"`
	Categories   map[domain.FlagCategory]int     `json:"categories"`
	PaidBy       map[domain.FlagCategory]int     `json:"paid_by"`
	BonusLanded  map[domain.FlagCategory]int     `json:"bonus_landed"`
	ModeSpins    map[domain.ModeID]int           `json:"mode_spins"`
	ForcedMisses int                             `json:"forced_misses"`
	SlipCells    map[int]int                     `json:"slip_cells"`
	Expected     map[domain.ModeID][]Expectation `json:"expected"`
	Elapsed      time.Duration                   `json:"elapsed"`
}

// Expectation is a flag's effective draw probability in one table
type Expectation struct {
	Flag        string  `json:"flag"`
	Probability float64 `json:"probability"`
}

// SortedCategories returns the categories seen, most frequent first
func (r *Report) SortedCategories() []domain.FlagCategory {
	out := make([]domain.FlagCategory, 0, len(r.Categories))
	for c := range r.Categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if r.Categories[out[i]] != r.Categories[out[j]] {
			return r.Categories[out[i]] > r.Categories[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// Runner drives one engine
type Runner struct {
	cfg    Config
	m      *paytable.Machine
	engine *slots.Engine
	clock  *clock.Manual
	rng    slots.RandomSource
	report *Report
	log    *slog.Logger
}

// NewRunner builds a runner for machine m
func NewRunner(m *paytable.Machine, cfg Config, log *slog.Logger) (*Runner, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil machine", domain.ErrInvalidMachine)
	}
	if cfg.Spins <= 0 {
		return nil, fmt.Errorf("%w: spins must be positive", domain.ErrInvalidInput)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.MaxReaction < cfg.MinReaction {
		return nil, fmt.Errorf("%w: max reaction below min reaction", domain.ErrInvalidInput)
	}
	if log == nil {
		log = slog.Default()
	}

	rng := utils.NewSeededSource(cfg.Seed)
	clk := clock.NewManual(time.Unix(0, 0).UTC())
	bus := event.NewMemoryBus()

	r := &Runner{
		cfg:   cfg,
		m:     m,
		clock: clk,
		rng:   rng,
		log:   log,
		report: &Report{
			Machine:     m.Name(),
			Categories:  make(map[domain.FlagCategory]int),
			PaidBy:      make(map[domain.FlagCategory]int),
			BonusLanded: make(map[domain.FlagCategory]int),
			ModeSpins:   make(map[domain.ModeID]int),
			SlipCells:   make(map[int]int),
			Expected:    expectations(m),
		},
	}
	bus.Subscribe(event.ReelStopped, r.onReelStopped)

	// draws use their own stream, independent of reaction times
	engine, err := slots.NewEngine(m, slots.Options{
		Clock:         clk,
		Random:        utils.NewSeededSource(cfg.Seed ^ drawStreamSalt),
		Sound:         cfg.Sound,
		Bus:           bus,
		Logger:        log,
		MachineID:     "simulation",
		DevMode:       true,
		InitialCredit: cfg.Credit,
	})
	if err != nil {
		return nil, err
	}
	r.engine = engine
	return r, nil
}

func expectations(m *paytable.Machine) map[domain.ModeID][]Expectation {
	out := make(map[domain.ModeID][]Expectation)
	for _, mode := range m.Modes() {
		t, _ := m.Table(mode)
		probs := t.EffectiveProbabilities()
		list := make([]Expectation, len(probs))
		for i, p := range probs {
			list[i] = Expectation{Flag: t.Entry(i).Name, Probability: p}
		}
		out[mode] = list
	}
	return out
}

func (r *Runner) onReelStopped(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.ReelStoppedPayload](e.Payload)
	if err != nil {
		return err
	}
	r.report.SlipCells[p.Slip]++
	if p.ForcedMiss {
		r.report.ForcedMisses++
	}
	return nil
}

// Run plays every spin and returns the report. It stops early when ctx is
// cancelled and reports what was played.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	for n := 0; n < r.cfg.Spins; n++ {
		if err := ctx.Err(); err != nil {
			break
		}
		if err := r.spin(); err != nil {
			return r.finish(start), fmt.Errorf("spin %d: %w", n+1, err)
		}
		if (n+1)%progressEvery == 0 {
			r.log.Info(LogMsgProgress, "spins", n+1, "rtp", r.rtp())
		}
	}
	return r.finish(start), nil
}

func (r *Runner) finish(start time.Time) *Report {
	r.report.RTP = r.rtp()
	r.report.Elapsed = time.Since(start)
	return r.report
}

func (r *Runner) rtp() float64 {
	if r.report.CoinsIn == 0 {
		return 0
	}
	return float64(r.report.CoinsOut) / float64(r.report.CoinsIn)
}

func (r *Runner) spin() error {
	e := r.engine
	mode := e.Snapshot().Mode

	before := e.Credit()
	if !e.PullLever() {
		if err := e.AddCredit(r.m.Bet()); err != nil {
			return err
		}
		r.report.Refills++
		before = e.Credit()
		if !e.PullLever() {
			return fmt.Errorf("%w: lever refused", domain.ErrInputRejected)
		}
	}
	r.report.CoinsIn += before - e.Credit()
	r.report.ModeSpins[mode]++

	if err := r.stopAll(); err != nil {
		return err
	}

	res, err := e.Evaluate()
	if err != nil {
		return err
	}
	r.report.Spins++
	r.report.Categories[res.Category]++
	r.report.CoinsOut += res.Payout
	if res.Payout > 0 {
		r.report.PaidBy[res.Category] += res.Payout
	}
	if res.Landed {
		r.report.BonusLanded[res.Category]++
	}
	return nil
}

// stopAll presses each stop button left to right after a random reaction
// time and steps frames until every reel is at rest
func (r *Runner) stopAll() error {
	e := r.engine
	dt := 1 / r.cfg.FPS
	next := 0
	wait := r.reaction()

	for frame := 0; frame < MaxFramesPerSpin; frame++ {
		if e.Phase() == domain.PhaseAllStopped {
			return nil
		}
		if next < len(e.Reels()) {
			if !e.Reels()[next].IsSpinning() {
				next++
				wait = r.reaction()
			} else if wait <= 0 && e.RequestStop(next) {
				next++
				wait = r.reaction()
			}
		}

		e.SpinReel(dt)
		e.AnimateAncillary(dt)
		r.clock.AdvanceSeconds(dt)
		wait -= dt
		if r.cfg.Pace {
			time.Sleep(time.Duration(dt * float64(time.Second)))
		}
	}
	return ErrStuck
}

func (r *Runner) reaction() float64 {
	lo := r.cfg.MinReaction.Seconds()
	hi := r.cfg.MaxReaction.Seconds()
	return lo + (hi-lo)*r.rng.Float64()
}
