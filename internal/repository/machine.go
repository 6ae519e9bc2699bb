package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/reelslot/internal/domain"
)

// Machine stores hosted machine sessions between spins
type Machine interface {
	// CreateMachine inserts a new session
	CreateMachine(ctx context.Context, m *domain.Machine) error

	// GetMachine returns a session or domain.ErrMachineNotFound
	GetMachine(ctx context.Context, id uuid.UUID) (*domain.Machine, error)

	// SaveMachine overwrites the persisted state of an existing session
	SaveMachine(ctx context.Context, id uuid.UUID, state domain.MachineSnapshot, spins int64) error

	// DeleteMachine removes a session
	DeleteMachine(ctx context.Context, id uuid.UUID) error

	// ListMachines returns the most recently played sessions
	ListMachines(ctx context.Context, limit int) ([]domain.Machine, error)
}
