package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catalogkit/extractor/gen/ent"
)

// InitResult bundles the opened client with a cleanup closure, so callers
// don't track what kind of backend they got.
type InitResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for sqlite
	Cleanup func()
}

// InitDatabase opens postgres when dsn looks like a postgres URL, sqlite
// otherwise, and an in-memory sqlite database when inmem is set. For sqlite
// backends the schema is created on open; postgres schemas are managed by
// migrations.
func InitDatabase(ctx context.Context, dsn string, inmem bool, logger *slog.Logger) (*InitResult, error) {
	if inmem {
		dsn = "file:catalogctl?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}

	if !inmem && (strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")) {
		entc, pool, err := Open(ctx, Config{
			DSN:             dsn,
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		}, logger)
		if err != nil {
			return nil, err
		}
		if err := HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
			Close(entc, pool, logger)
			return nil, fmt.Errorf("database health: %w", err)
		}
		return &InitResult{
			Client:  entc,
			Pool:    pool,
			Cleanup: func() { Close(entc, pool, logger) },
		}, nil
	}

	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}
	entc, err := OpenSQLite(dsn, logger)
	if err != nil {
		return nil, err
	}
	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	logger.Info("sqlite database ready", "dsn", dsn)
	return &InitResult{
		Client:  entc,
		Cleanup: func() { _ = entc.Close() },
	}, nil
}
