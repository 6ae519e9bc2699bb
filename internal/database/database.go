package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/reelslot/internal/config"
)

// Pool is the part of the connection pool the readiness check needs
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// ParsePoolConfig builds the pgx pool settings for connString. Zero durations
// keep the pgx defaults.
func ParsePoolConfig(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		pc.MaxConns = int32(maxConns)
	}
	pc.MinConns = min(DefaultMinConnections, pc.MaxConns)
	if maxLife > 0 {
		pc.MaxConnLifetime = maxLife
	}
	if maxIdle > 0 {
		pc.MaxConnIdleTime = maxIdle
	}
	if _, ok := pc.ConnConfig.RuntimeParams[RuntimeParamApplicationName]; !ok {
		pc.ConnConfig.RuntimeParams[RuntimeParamApplicationName] = ApplicationName
	}
	return pc, nil
}

// NewPool connects with explicit settings and pings the server
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	pc, err := ParsePoolConfig(connString, maxConns, maxIdle, maxLife)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancel()
	return connect(ctx, pc)
}

// Open connects using the DB_* settings of cfg
func Open(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pc, err := ParsePoolConfig(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()
	return connect(ctx, pc)
}

func connect(ctx context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", pc.ConnConfig.Host, "database", pc.ConnConfig.Database, "max_conns", pc.MaxConns)
	return pool, nil
}
