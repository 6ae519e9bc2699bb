package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/eventlog"
	"github.com/osse101/reelslot/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
}

// RegisterEventHandlers attaches the metrics collector and the event logger
// to the bus.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.EventLogService != nil {
		if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
		}
		slog.Info(LogMsgEventLoggerInitialized)
	}

	return nil
}
