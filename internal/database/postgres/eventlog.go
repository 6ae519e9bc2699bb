package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/reelslot/internal/eventlog"
)

const eventColumns = `id, event_type, machine_id, payload, metadata, created_at`

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, machineID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO events (event_type, machine_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	var mid *uuid.UUID
	if machineID != nil {
		u, err := parseMachineUUID(*machineID)
		if err != nil {
			return err
		}
		mid = &u
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
		}
	}

	if _, err := r.db.Exec(ctx, query, eventType, mid, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventColumns + ` FROM events WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.MachineID != nil {
		mid, err := parseMachineUUID(*filter.MachineID)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&queryBuilder, " AND machine_id = $%d", argNum)
		args = append(args, mid)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	return r.query(ctx, queryBuilder.String(), args...)
}

// GetEventsByMachine retrieves the newest events of one machine
func (r *eventLogRepository) GetEventsByMachine(ctx context.Context, machineID string, limit int) ([]eventlog.Event, error) {
	mid, err := parseMachineUUID(machineID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE machine_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.query(ctx, query, mid, limit)
}

// GetEventsByType retrieves events of a specific type
func (r *eventLogRepository) GetEventsByType(ctx context.Context, eventType string, limit int) ([]eventlog.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_type = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.query(ctx, query, eventType, limit)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}

	return result.RowsAffected(), nil
}

func (r *eventLogRepository) query(ctx context.Context, sql string, args ...interface{}) ([]eventlog.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// scanEvents scans rows into Event structs
func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	events := []eventlog.Event{}

	for rows.Next() {
		var evt eventlog.Event
		var mid *uuid.UUID
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&mid,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if mid != nil {
			s := mid.String()
			evt.MachineID = &s
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
