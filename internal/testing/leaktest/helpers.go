// Package leaktest checks that the service's background loops exit when they
// are stopped: the SSE hub broadcast loop, the worker pool, and the resilient
// publisher's retry worker.
package leaktest

import (
	"context"
	"runtime"
	"testing"
	"time"
)

// SettleTimeout bounds how long a check waits for goroutines to exit
const SettleTimeout = time.Second

const pollInterval = 10 * time.Millisecond

// Runner is a component with an explicit Start and Stop, like sse.Hub and
// worker.Pool
type Runner interface {
	Start()
	Stop()
}

// Shutdowner is a component that starts on construction and stops under a
// deadline, like event.ResilientPublisher
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// GoroutineChecker records the goroutine count and later fails the test if it
// has not settled back within a tolerance
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check waits up to SettleTimeout for the goroutine count to fall to at most
// before+tolerance
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	g.CheckWithin(tolerance, SettleTimeout)
}

// CheckWithin is Check with an explicit timeout
func (g *GoroutineChecker) CheckWithin(tolerance int, timeout time.Duration) {
	g.t.Helper()

	limit := g.before + tolerance
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		after := runtime.NumGoroutine()
		if after <= limit {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
				g.before, after, after-g.before, tolerance)
			return
		}
		time.Sleep(pollInterval)
	}
}

// CheckRunner starts r, hands it to use, stops it, and fails the test if any
// goroutine r started is still running afterwards
func CheckRunner[R Runner](t testing.TB, r R, use func(R)) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	r.Start()
	if use != nil {
		use(r)
	}
	r.Stop()
	checker.Check(0)
}

// CheckShutdown builds a component with start, hands it to use, shuts it down
// within SettleTimeout, and fails the test if its goroutines outlive Shutdown
func CheckShutdown[S Shutdowner](t testing.TB, start func() (S, error), use func(S)) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	s, err := start()
	if err != nil {
		t.Fatalf("start: %v", err)
		return
	}
	if use != nil {
		use(s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), SettleTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("shutdown: %v", err)
	}
	checker.Check(0)
}
