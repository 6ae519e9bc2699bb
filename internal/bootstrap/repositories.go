package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/reelslot/internal/database/postgres"
	"github.com/osse101/reelslot/internal/eventlog"
	"github.com/osse101/reelslot/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Machine  repository.Machine
	EventLog eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Machine:  postgres.NewMachineRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
