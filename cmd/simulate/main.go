package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/reelslot/internal/audio"
	"github.com/osse101/reelslot/internal/bootstrap"
	"github.com/osse101/reelslot/internal/logger"
	"github.com/osse101/reelslot/internal/simulate"
)

func main() {
	cfg := simulate.DefaultConfig()
	var (
		machinePath string
		asJSON      bool
		withAudio   bool
		logLevel    string
	)
	flag.IntVar(&cfg.Spins, "spins", cfg.Spins, "number of spins to play")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for draws and reaction times")
	flag.Float64Var(&cfg.FPS, "fps", cfg.FPS, "frames per second the reels are stepped at")
	flag.DurationVar(&cfg.MinReaction, "min-reaction", cfg.MinReaction, "shortest delay before pressing a stop button")
	flag.DurationVar(&cfg.MaxReaction, "max-reaction", cfg.MaxReaction, "longest delay before pressing a stop button")
	flag.IntVar(&cfg.Credit, "credit", cfg.Credit, "starting credit")
	flag.StringVar(&machinePath, "machine", "", "machine definition JSON (default: built-in cabinet)")
	flag.BoolVar(&asJSON, "json", false, "print the report as JSON")
	flag.BoolVar(&withAudio, "audio", false, "play cues on the sound device in real time")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Parse()

	logCfg := logger.DefaultConfig()
	logCfg.Level = logLevel
	log.SetFlags(0)
	slogger := logger.InitLoggerWithWriter(logCfg, os.Stderr)

	m, err := bootstrap.LoadMachine(machinePath)
	if err != nil {
		log.Fatalf("Failed to load machine: %v", err)
	}

	if withAudio {
		player := audio.NewPlayer(audio.DefaultConfig())
		if err := player.Start(); err != nil {
			log.Fatalf("Failed to open sound device: %v", err)
		}
		defer player.Close()
		cfg.Sound = player
		cfg.Pace = true
	}

	runner, err := simulate.NewRunner(m, cfg, slogger)
	if err != nil {
		log.Fatalf("Invalid simulation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, runErr := runner.Run(ctx)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
	} else {
		printReport(os.Stdout, report)
	}
	if runErr != nil {
		log.Fatalf("Simulation aborted: %v", runErr)
	}
}

func printReport(w io.Writer, r *simulate.Report) {
	fmt.Fprintf(w, "Machine:        %s\n", r.Machine)
	fmt.Fprintf(w, "Spins:          %d\n", r.Spins)
	fmt.Fprintf(w, "Coins in/out:   %d / %d\n", r.CoinsIn, r.CoinsOut)
	fmt.Fprintf(w, "RTP:            %.4f\n", r.RTP)
	fmt.Fprintf(w, "Refills:        %d\n", r.Refills)
	fmt.Fprintf(w, "Forced misses:  %d\n", r.ForcedMisses)
	fmt.Fprintf(w, "Elapsed:        %s\n", r.Elapsed)

	fmt.Fprintln(w, "\nOutcomes:")
	for _, c := range r.SortedCategories() {
		n := r.Categories[c]
		fmt.Fprintf(w, "  %-14s %8d  %6.2f%%  paid %d\n", c, n, 100*float64(n)/float64(max(r.Spins, 1)), r.PaidBy[c])
	}

	if len(r.BonusLanded) > 0 {
		fmt.Fprintln(w, "\nBonuses landed:")
		for c, n := range r.BonusLanded {
			fmt.Fprintf(w, "  %-14s %8d\n", c, n)
		}
	}

	fmt.Fprintln(w, "\nSpins by mode:")
	for mode, n := range r.ModeSpins {
		fmt.Fprintf(w, "  %-14s %8d\n", mode, n)
	}
}
