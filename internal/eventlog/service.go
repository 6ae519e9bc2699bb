package eventlog

import (
	"context"

	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all engine events
	Subscribe(bus event.Bus) error

	// History returns the newest logged events of one machine
	History(ctx context.Context, machineID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all engine event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinStarted,
		event.ReelStopped,
		event.SpinEvaluated,
		event.BonusHeld,
		event.BonusLanded,
		event.BonusFinished,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent flattens the typed payload to JSON and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}

	var machineID *string
	if id, ok := evt.GetMetadataValue(event.MetadataMachine).(string); ok && id != "" {
		machineID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), machineID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldMachine, machineID)
	return nil
}

func (s *service) History(ctx context.Context, machineID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.GetEventsByMachine(ctx, machineID, limit)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
