package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/reelslot/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Slot event types
const (
	SpinStarted   = Type(domain.EventTypeSpinStarted)
	ReelStopped   = Type(domain.EventTypeReelStopped)
	SpinEvaluated = Type(domain.EventTypeSpinEvaluated)
	BonusHeld     = Type(domain.EventTypeBonusHeld)
	BonusLanded   = Type(domain.EventTypeBonusLanded)
	BonusFinished = Type(domain.EventTypeBonusFinished)
)

// MetadataMachine is the metadata key carrying the machine session id
const MetadataMachine = "machine"

func newEvent(t Type, payload interface{}, machine string) Event {
	evt := Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
	if machine != "" {
		evt.Metadata = Metadata{MetadataMachine: machine}
	}
	return evt
}

// NewSpinStartedEvent creates a spin.started event
func NewSpinStartedEvent(machine string, p domain.SpinStartedPayload) Event {
	return newEvent(SpinStarted, p, machine)
}

// NewReelStoppedEvent creates a reel.stopped event
func NewReelStoppedEvent(machine string, p domain.ReelStoppedPayload) Event {
	return newEvent(ReelStopped, p, machine)
}

// NewSpinEvaluatedEvent creates a spin.evaluated event
func NewSpinEvaluatedEvent(machine string, result domain.SpinResult) Event {
	return newEvent(SpinEvaluated, domain.SpinEvaluatedPayload{Result: result}, machine)
}

// NewBonusEvent creates one of the bonus.* events
func NewBonusEvent(t Type, machine string, p domain.BonusPayload) Event {
	return newEvent(t, p, machine)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
