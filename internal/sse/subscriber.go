package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/reelslot/internal/event"
)

// StreamedEvents are the bus events forwarded to clients
var StreamedEvents = []event.Type{
	event.SpinStarted,
	event.ReelStopped,
	event.SpinEvaluated,
	event.BonusHeld,
	event.BonusLanded,
	event.BonusFinished,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed type
func (s *Subscriber) Subscribe() {
	names := make([]string, len(StreamedEvents))
	for i, t := range StreamedEvents {
		s.bus.Subscribe(t, s.forward)
		names[i] = string(t)
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	machineID, _ := evt.GetMetadataValue(event.MetadataMachine).(string)
	s.hub.Broadcast(string(evt.Type), machineID, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "machine", machineID)
	return nil
}
