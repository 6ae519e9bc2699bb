package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	testWorkerCount = 2
	testQueueSize   = 10
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(testWorkerCount, testQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 2 },
		time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, testQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("failed") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error { panic("boom") }))
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 },
		time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueue(t *testing.T) {
	pool := NewPool(1, 1)

	var executed int32
	job := &testJob{executed: &executed}

	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job), "queue of one is full until a worker starts")

	pool.Start()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 },
		time.Second, 5*time.Millisecond)

	pool.Stop()
	assert.False(t, pool.TryEnqueue(job), "stopped pool refuses work")
}

func TestPool_StopCancelsJobContext(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))

	<-started
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the running job")
	}
}
