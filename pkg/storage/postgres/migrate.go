package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"freightqa/pkg/logger"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies the goose migrations found in dir of fsys. goose works on
// database/sql, so the pool is bridged through the pgx stdlib driver.
func (p *Postgres) Migrate(ctx context.Context, fsys fs.FS, dir string, log logger.Logger) error {
	const op = "storage.postgres.Migrate"

	db := stdlib.OpenDBFromPool(p.Pool)
	defer db.Close()

	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: set dialect: %w", op, err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("%s: up: %w", op, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: read version: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "database migrated",
		logger.Int64("version", version),
	)
	return nil
}

type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(fmt.Sprintf(format, v...), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(fmt.Sprintf(format, v...), "component", "goose")
}
