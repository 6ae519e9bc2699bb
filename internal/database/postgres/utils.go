package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// parseMachineUUID parses a machine ID string with a consistent error message
func parseMachineUUID(machineID string) (uuid.UUID, error) {
	u, err := uuid.Parse(machineID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", ErrMsgInvalidMachineID, err)
	}
	return u, nil
}
