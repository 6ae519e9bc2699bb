package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/reelslot/internal/audio"
	"github.com/osse101/reelslot/internal/bootstrap"
	"github.com/osse101/reelslot/internal/clock"
	"github.com/osse101/reelslot/internal/config"
	"github.com/osse101/reelslot/internal/database"
	"github.com/osse101/reelslot/internal/eventlog"
	"github.com/osse101/reelslot/internal/machine"
	"github.com/osse101/reelslot/internal/scheduler"
	"github.com/osse101/reelslot/internal/server"
	"github.com/osse101/reelslot/internal/slots"
	"github.com/osse101/reelslot/internal/sse"
	"github.com/osse101/reelslot/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title Reelslot API
// @version 1.0
// @description Hosted skill-stop reel machines: lever, stop buttons, frame ticks and payouts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		log.Fatalf("Environment check failed: %v", err)
	} else {
		for _, w := range warnings {
			log.Printf("warning: %s", w)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	ctx := context.Background()

	dbPool, err := database.Open(ctx, cfg)
	if err != nil {
		fatal("Failed to connect to database", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		fatal("Failed to migrate database", err)
	}

	m, err := bootstrap.LoadMachine(cfg.MachineDefinition)
	if err != nil {
		fatal("Failed to load machine", err)
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		fatal("Failed to initialize event system", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	eventLogService := eventlog.NewService(repos.EventLog)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
	}); err != nil {
		fatal("Failed to register event handlers", err)
	}

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, eventBus).Subscribe()

	var sound slots.SoundPlayer = slots.NopSound{}
	var player *audio.Player
	if cfg.AudioEnabled {
		player = audio.NewPlayer(audio.DefaultConfig())
		if err := player.Start(); err != nil {
			slog.Warn("Audio unavailable, continuing silently", "error", err)
		} else {
			sound = player
		}
	}

	machines, err := machine.NewService(machine.Deps{
		Repo:    repos.Machine,
		Machine: m,
		Bus:     publisher,
		Clock:   clock.System{},
		Sound:   sound,
	}, machine.Config{
		InitialCredit: cfg.InitialCredit,
		LeverGap:      cfg.MinLeverGap,
		ButtonGap:     cfg.MinButtonGap,
		DevMode:       cfg.DevMode,
		CacheSize:     cfg.MachineCacheSize,
		CacheTTL:      cfg.MachineCacheTTL,
		AutoEvaluate:  cfg.TickInterval > 0,
	})
	if err != nil {
		fatal(bootstrap.ErrMsgFailedCreateMachines, err)
	}

	pool := worker.NewPool(cfg.WorkerCount, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	if cfg.TickInterval > 0 {
		dt := cfg.TickInterval.Seconds()
		sched.Schedule("machine-tick", cfg.TickInterval, worker.JobFunc(func(ctx context.Context) error {
			machines.TickAll(ctx, dt)
			return nil
		}))
	}
	sched.Schedule("eventlog-cleanup", cfg.EventLogCleanupEvery, eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		Detector:    server.DefaultDetectorConfig(),
		DBPool:      dbPool,
		Machines:    machines,
		EventLog:    eventLogService,
		Stream:      hub,
		MachineName: m.Name(),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("Server failed", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	components := bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		Machines:           machines,
		Stream:             hub,
		ResilientPublisher: publisher,
	}
	if player != nil {
		components.Audio = player
	}
	bootstrap.GracefulShutdown(shutdownCtx, components)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
