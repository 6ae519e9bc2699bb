package cooldown

import (
	"fmt"
	"log/slog"
	"time"
)

// Clock returns the current wall time
type Clock interface {
	Now() time.Time
}

// Service tracks when actions last happened on one machine and refuses
// actions whose gate has not elapsed. It is not safe for concurrent use;
// callers serialize access per machine.
type Service interface {
	// CheckCooldown reports whether the action is gated and for how long
	CheckCooldown(action string) (bool, time.Duration)

	// EnforceCooldown checks the gate, runs fn, and records the action if fn succeeds
	EnforceCooldown(action string, fn func() error) error

	// Record stamps the action with the current time
	Record(action string)

	// ResetCooldown forgets when an action last happened
	ResetCooldown(action string)

	// GetLastUsed returns when the action was last recorded, or nil
	GetLastUsed(action string) *time.Time
}

// ErrOnCooldown is returned when an action is still gated
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(ErrFmtCooldown, e.Action, e.Remaining.Milliseconds())
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

type memoryService struct {
	clock    Clock
	cfg      Config
	lastUsed map[string]time.Time
	log      *slog.Logger
}

// NewService creates an in-memory gate tracker
func NewService(clock Clock, cfg Config, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &memoryService{
		clock:    clock,
		cfg:      cfg,
		lastUsed: make(map[string]time.Time),
		log:      log,
	}
}

func (s *memoryService) CheckCooldown(action string) (bool, time.Duration) {
	if s.cfg.DevMode {
		return false, 0
	}
	rule, ok := s.cfg.GetRule(action)
	if !ok {
		return false, 0
	}
	last, ok := s.lastUsed[rule.Anchor]
	if !ok {
		return false, 0
	}
	return checkGate(s.clock.Now(), last, rule.Duration)
}

// checkGate is true while now - last < d
func checkGate(now, last time.Time, d time.Duration) (bool, time.Duration) {
	elapsed := now.Sub(last)
	if elapsed >= d {
		return false, 0
	}
	return true, d - elapsed
}

func (s *memoryService) EnforceCooldown(action string, fn func() error) error {
	if s.cfg.DevMode {
		s.log.Debug(LogMsgDevModeBypass, "action", action)
	} else if gated, remaining := s.CheckCooldown(action); gated {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}
	s.Record(action)
	return nil
}

func (s *memoryService) Record(action string) {
	s.lastUsed[action] = s.clock.Now()
}

func (s *memoryService) ResetCooldown(action string) {
	delete(s.lastUsed, action)
}

func (s *memoryService) GetLastUsed(action string) *time.Time {
	t, ok := s.lastUsed[action]
	if !ok {
		return nil
	}
	return &t
}
