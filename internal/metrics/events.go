package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/logger"
)

// EventMetricsCollector subscribes to engine events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all engine events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinStarted,
		event.ReelStopped,
		event.SpinEvaluated,
		event.BonusHeld,
		event.BonusLanded,
		event.BonusFinished,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. A payload that cannot be
// decoded is logged and skipped so metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinStarted:
		err = recordSpinStarted(evt.Payload)
	case event.ReelStopped:
		err = recordReelStopped(evt.Payload)
	case event.SpinEvaluated:
		err = recordSpinEvaluated(evt.Payload)
	case event.BonusHeld, event.BonusLanded, event.BonusFinished:
		err = recordBonus(evt.Type, evt.Payload)
	}
	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordSpinStarted(raw interface{}) error {
	p, err := event.DecodePayload[domain.SpinStartedPayload](raw)
	if err != nil {
		return err
	}
	SpinsTotal.WithLabelValues(string(p.Mode), p.Category.String()).Inc()
	if !p.Replay {
		CreditsWagered.Add(float64(p.Bet))
	}
	return nil
}

func recordReelStopped(raw interface{}) error {
	p, err := event.DecodePayload[domain.ReelStoppedPayload](raw)
	if err != nil {
		return err
	}
	SlipCells.Observe(float64(p.Slip))
	if p.ForcedMiss {
		ForcedMisses.WithLabelValues(strconv.Itoa(p.Reel)).Inc()
	}
	return nil
}

func recordSpinEvaluated(raw interface{}) error {
	p, err := event.DecodePayload[domain.SpinEvaluatedPayload](raw)
	if err != nil {
		return err
	}
	if p.Result.Payout > 0 {
		CreditsPaid.WithLabelValues(p.Result.Category.String()).Add(float64(p.Result.Payout))
	}
	return nil
}

func recordBonus(t event.Type, raw interface{}) error {
	p, err := event.DecodePayload[domain.BonusPayload](raw)
	if err != nil {
		return err
	}
	transition := TransitionFinished
	switch t {
	case event.BonusHeld:
		transition = TransitionHeld
		if p.Hidden {
			transition = TransitionHeldHidden
		}
	case event.BonusLanded:
		transition = TransitionLanded
	}
	BonusTransitions.WithLabelValues(transition, p.Category.String()).Inc()
	return nil
}
