package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails the first failures publishes
type flakyBus struct {
	mu       sync.Mutex
	calls    int
	failures int
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failures {
		return errors.New("mock publish error")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func newPublisher(t *testing.T, bus Bus, retries int) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	p, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     retries,
		RetryDelay:     5 * time.Millisecond,
		DeadLetterPath: path,
	})
	require.NoError(t, err)
	return p, path
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []DeadLetterEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		out = append(out, e)
	}
	return out
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &flakyBus{}
	p, _ := newPublisher(t, bus, 3)
	defer p.Shutdown(context.Background())

	assert.NoError(t, p.Publish(context.Background(), Event{Type: SpinStarted}))
	assert.Equal(t, 1, bus.Calls())
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	bus := &flakyBus{failures: 2}
	p, path := newPublisher(t, bus, 5)

	assert.NoError(t, p.Publish(context.Background(), Event{Type: SpinEvaluated}))
	assert.Eventually(t, func() bool { return bus.Calls() == 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_DeadLettersAfterRetries(t *testing.T) {
	bus := &flakyBus{failures: 100}
	p, path := newPublisher(t, bus, 2)

	assert.NoError(t, p.Publish(context.Background(), Event{Type: BonusLanded}))
	assert.Eventually(t, func() bool { return bus.Calls() == 3 }, time.Second, 5*time.Millisecond)
	// let the worker write the entry
	assert.Eventually(t, func() bool {
		info, err := os.Stat(path)
		return err == nil && info.Size() > 0
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, BonusLanded, entries[0].Event.Type)
	assert.Equal(t, 2, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	bus := &flakyBus{failures: 100}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	p, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     5,
		RetryDelay:     time.Hour,
		DeadLetterPath: path,
	})
	require.NoError(t, err)

	assert.NoError(t, p.Publish(context.Background(), Event{Type: ReelStopped}))
	require.NoError(t, p.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, ReelStopped, entries[0].Event.Type)
}

func TestResilientPublisher_BadDeadLetterPath(t *testing.T) {
	_, err := NewResilientPublisher(&flakyBus{}, ResilientConfig{
		DeadLetterPath: filepath.Join(t.TempDir(), "missing", "dir", "dl.jsonl"),
	})
	assert.Error(t, err)
}
