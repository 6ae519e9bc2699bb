package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/reelslot/internal/worker"
)

// countingJob signals every run
type countingJob struct {
	runs atomic.Int32
	done chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &countingJob{done: make(chan struct{}, 10)}
	sched.Schedule("counting", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_SkipsWhenQueueFull(t *testing.T) {
	// pool never started: the single queue slot fills on the first tick
	pool := worker.NewPool(1, 1)
	defer pool.Stop()

	sched := New(pool)
	job := &countingJob{done: make(chan struct{}, 10)}
	sched.Schedule("blocked", 5*time.Millisecond, job)

	time.Sleep(50 * time.Millisecond)
	sched.Stop()
	sched.Stop()

	assert.Zero(t, job.runs.Load())
}
