package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent"
)

type Config struct {
	DSN              string
	AppName          string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// DB bundles the pgx pool with the ent client built on top of it. They
// share the same connections, so Close tears down both.
type DB struct {
	Ent  *ent.Client
	Pool *pgxpool.Pool

	logger *slog.Logger
}

// Open dials Postgres and layers the ent driver over the pool via the
// pgx stdlib adapter. The pool stays reachable for raw queries the
// generated client cannot express.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, stdlib.OpenDBFromPool(pool))
	db := &DB{
		Ent:    ent.NewClient(ent.Driver(drv)),
		Pool:   pool,
		logger: logger,
	}
	logger.Info("database connected", "max_conns", pc.MaxConns)
	return db, nil
}

// Ping verifies the pool end to end within the given timeout.
func (d *DB) Ping(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return d.Pool.Ping(ctx)
}

func (d *DB) Close() {
	if err := d.Ent.Close(); err != nil {
		d.logger.Error("closing ent client", "error", err)
	}
	d.Pool.Close()
	d.logger.Info("database connections closed")
}
