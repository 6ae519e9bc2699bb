package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/reelslot/internal/config"
	"github.com/osse101/reelslot/internal/event"
)

// InitializeEventSystem creates the in-memory bus and the resilient
// publisher in front of it. Engines publish through the publisher;
// subscribers attach to the bus.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     cfg.EventMaxRetries,
		RetryDelay:     cfg.EventRetryDelay,
		DeadLetterPath: cfg.EventDeadLetterPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return eventBus, publisher, nil
}
