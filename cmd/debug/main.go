package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/reelslot/internal/database"
	"github.com/osse101/reelslot/internal/database/postgres"
	"github.com/osse101/reelslot/internal/eventlog"
)

func main() {
	limit := flag.Int("limit", 20, "machines to list")
	events := flag.Int("events", 5, "recent events to show per machine")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	machines := postgres.NewMachineRepository(dbPool)
	history := eventlog.NewService(postgres.NewEventLogRepository(dbPool))

	list, err := machines.ListMachines(ctx, *limit)
	if err != nil {
		log.Fatalf("Failed to list machines: %v", err)
	}

	fmt.Println("--- Machines ---")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODE\tCREDIT\tSPINS\tHELD\tUPDATED")
	for _, m := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%t\t%s\n",
			m.ID, m.State.Mode, m.State.Credit, m.Spins, m.State.BonusHeld, m.UpdatedAt.Format(time.RFC3339))
	}
	tw.Flush()

	if *events <= 0 {
		return
	}
	for _, m := range list {
		evts, err := history.History(ctx, m.ID.String(), *events)
		if err != nil {
			log.Printf("Failed to load events for %s: %v", m.ID, err)
			continue
		}
		fmt.Printf("\n--- Events %s ---\n", m.ID)
		for _, e := range evts {
			fmt.Printf("%s  %-16s %v\n", e.CreatedAt.Format(time.RFC3339), e.EventType, e.Payload)
		}
	}
}
