package machine

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/reelslot/internal/domain"
)

// MockRepository implements repository.Machine
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateMachine(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockRepository) GetMachine(ctx context.Context, id uuid.UUID) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

func (m *MockRepository) SaveMachine(ctx context.Context, id uuid.UUID, state domain.MachineSnapshot, spins int64) error {
	args := m.Called(ctx, id, state, spins)
	return args.Error(0)
}

func (m *MockRepository) DeleteMachine(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListMachines(ctx context.Context, limit int) ([]domain.Machine, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Machine), args.Error(1)
}
