package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsDir = "migrations"

// Runner applies the embedded goose migrations.
type Runner struct {
	// Target is the version to migrate to; zero means latest.
	Target int64
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	if err := prepare(); err != nil {
		return err
	}

	var err error
	if r.Target > 0 {
		err = goose.UpToContext(ctx, db, migrationsDir, r.Target)
	} else {
		err = goose.UpContext(ctx, db, migrationsDir)
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Version reports the currently applied schema version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errors.New("nil db")
	}
	if err := prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}

func prepare() error {
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}
