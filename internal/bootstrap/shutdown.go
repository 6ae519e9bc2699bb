package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/reelslot/internal/event"
	"github.com/osse101/reelslot/internal/machine"
	"github.com/osse101/reelslot/internal/scheduler"
	"github.com/osse101/reelslot/internal/server"
	"github.com/osse101/reelslot/internal/sse"
	"github.com/osse101/reelslot/internal/worker"
)

// Closer is an output device held open until shutdown
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Machines           machine.Service
	Stream             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Audio              Closer
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler, worker pool and event stream
// 3. Machine sessions (persist idle sessions)
// 4. Event publisher (flush pending retries)
// 5. Audio output
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Stream != nil {
		components.Stream.Stop()
	}

	if components.Machines != nil {
		if err := components.Machines.Flush(ctx); err != nil {
			slog.Error(LogMsgMachineFlushFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Audio != nil {
		components.Audio.Close()
	}

	slog.Info(LogMsgServerStopped)
}
