package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/repository"
)

const machineColumns = `id, mode, drawn_mode, flag_index, credit, pending_bonus_payout, replay_pending, bonus_held, spins, created_at, updated_at`

// MachineRepository implements repository.Machine
type MachineRepository struct {
	db *pgxpool.Pool
}

var _ repository.Machine = (*MachineRepository)(nil)

// NewMachineRepository creates a new MachineRepository
func NewMachineRepository(db *pgxpool.Pool) *MachineRepository {
	return &MachineRepository{db: db}
}

// CreateMachine inserts a new session and fills in its timestamps
func (r *MachineRepository) CreateMachine(ctx context.Context, m *domain.Machine) error {
	query := `
		INSERT INTO machines (id, mode, drawn_mode, flag_index, credit, pending_bonus_payout, replay_pending, bonus_held, spins)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	s := m.State
	err := r.db.QueryRow(ctx, query,
		m.ID, string(s.Mode), string(s.DrawnMode), s.FlagIndex, s.Credit, s.PendingBonusPayout, s.ReplayPending, s.BonusHeld, m.Spins,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDuplicateMachine)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertMachine, err)
	}
	return nil
}

// GetMachine returns a session or domain.ErrMachineNotFound
func (r *MachineRepository) GetMachine(ctx context.Context, id uuid.UUID) (*domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`

	m, err := scanMachine(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMachineNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMachine, err)
	}
	return m, nil
}

// SaveMachine overwrites the persisted state of an existing session
func (r *MachineRepository) SaveMachine(ctx context.Context, id uuid.UUID, s domain.MachineSnapshot, spins int64) error {
	query := `
		UPDATE machines
		SET mode = $2, drawn_mode = $3, flag_index = $4, credit = $5, pending_bonus_payout = $6,
		    replay_pending = $7, bonus_held = $8, spins = $9, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		id, string(s.Mode), string(s.DrawnMode), s.FlagIndex, s.Credit, s.PendingBonusPayout, s.ReplayPending, s.BonusHeld, spins,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMachine, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMachineNotFound
	}
	return nil
}

// DeleteMachine removes a session
func (r *MachineRepository) DeleteMachine(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMachine, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMachineNotFound
	}
	return nil
}

// ListMachines returns the most recently played sessions
func (r *MachineRepository) ListMachines(ctx context.Context, limit int) ([]domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines ORDER BY updated_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
	}
	defer rows.Close()

	machines := []domain.Machine{}
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
		}
		machines = append(machines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMachines, err)
	}
	return machines, nil
}

func scanMachine(row pgx.Row) (*domain.Machine, error) {
	var m domain.Machine
	var mode, drawn string
	err := row.Scan(
		&m.ID,
		&mode,
		&drawn,
		&m.State.FlagIndex,
		&m.State.Credit,
		&m.State.PendingBonusPayout,
		&m.State.ReplayPending,
		&m.State.BonusHeld,
		&m.Spins,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.State.Mode = domain.ModeID(mode)
	m.State.DrawnMode = domain.ModeID(drawn)
	return &m, nil
}
