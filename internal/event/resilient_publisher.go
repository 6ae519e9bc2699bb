package event

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus so a failing subscriber never surfaces into
// the caller. Failed events are retried with exponential backoff on a worker
// goroutine and appended to the dead-letter file once retries run out.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter
	queue      chan retryItem
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewResilientPublisher creates the publisher and starts its retry worker
func NewResilientPublisher(inner Bus, config ResilientConfig) (*ResilientPublisher, error) {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	dlw, err := NewDeadLetterWriter(config.DeadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.worker()
	return p, nil
}

// Publish delivers the event once synchronously. On failure the event is
// queued for retry and nil is returned.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	slog.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err})
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.done:
		slog.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
		p.writeDeadLetter(item)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		slog.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, item.attempt))
	defer timer.Stop()

	select {
	case <-p.done:
		p.writeDeadLetter(item)
		return
	case <-timer.C:
	}

	err := p.inner.Publish(context.Background(), item.event)
	if err == nil {
		slog.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
		return
	}

	item.lastErr = err
	if item.attempt >= p.config.MaxRetries {
		slog.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
		p.writeDeadLetter(item)
		return
	}

	slog.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
	item.attempt++
	p.enqueue(item)
}

func (p *ResilientPublisher) drain() {
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item)
		default:
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		slog.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker. Pending retries are written to the
// dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.done) })

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return p.deadLetter.Close()
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
