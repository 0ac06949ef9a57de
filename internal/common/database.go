package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/bistrodata/invoice-tracker/gen/ent"
	"github.com/bistrodata/invoice-tracker/internal/repository"
)

// DatabaseResult bundles the opened Ent client with its teardown.
type DatabaseResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens the configured Postgres database, or an in-memory
// SQLite database when inmem is set (batch runs without infrastructure).
// The SQLite path creates the schema on open; Postgres schemas are managed
// by migration.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DatabaseResult, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:invoice-tracker?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, NewAppError("DB_ERROR", "failed to open in-memory database", err)
		}
		// A shared-cache memory DB vanishes when its last connection closes.
		db.SetMaxIdleConns(1)

		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, NewAppError("DB_ERROR", "failed to create in-memory schema", err)
		}
		logger.Info("using in-memory sqlite database")

		return &DatabaseResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(entc, pool, logger)
		return nil, err
	}

	return &DatabaseResult{
		Client: entc,
		Cleanup: func() {
			repository.Close(entc, pool, logger)
		},
	}, nil
}
