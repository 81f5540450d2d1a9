// Package database opens the Postgres pools behind the catalogue.
package database

import (
	"context"
	"fmt"
	"time"

	"showcase/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Purpose names what a pool is used for. It is sent as the connection's
// application_name, so catalogue reads, seeding and checks can be told apart
// in pg_stat_activity.
type Purpose string

const (
	PurposeCatalogue Purpose = "catalogue"
	PurposeSeed      Purpose = "seed"
	PurposeCheck     Purpose = "check"
)

// ApplicationName is the application_name reported for a pool.
func (p Purpose) ApplicationName() string {
	return "showcase-" + string(p)
}

func poolConfig(cfg config.DatabaseConfig, purpose Purpose) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pc.MaxConns = int32(cfg.MaxConnections)
	pc.MinConns = int32(cfg.MinConnections)
	pc.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	pc.MaxConnIdleTime = 30 * time.Minute
	pc.HealthCheckPeriod = time.Minute

	pc.ConnConfig.RuntimeParams["application_name"] = purpose.ApplicationName()
	if cfg.ConnectTimeout > 0 {
		pc.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	return pc, nil
}

// NewPool opens a pool for purpose and pings it. The ping is bounded by
// cfg.ConnectTimeout when set.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, purpose Purpose, logger zerolog.Logger) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg, purpose)
	if err != nil {
		return nil, err
	}

	log := logger.With().
		Str("component", "database").
		Str("purpose", string(purpose)).
		Logger()

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int32("max_conns", pc.MaxConns).
		Dur("connect_timeout", cfg.ConnectTimeout).
		Msg("opening connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s connection pool: %w", purpose, err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database for %s: %w", purpose, err)
	}

	log.Info().
		Dur("ping", time.Since(start)).
		Int32("total_conns", pool.Stat().TotalConns()).
		Msg("connection pool ready")

	return pool, nil
}
