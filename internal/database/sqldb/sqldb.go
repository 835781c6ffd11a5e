package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

var errNilDB = errors.New("nil db")

// DB adapts a *sql.DB to database.DB.
type DB struct {
	db *sql.DB
}

func New(db *sql.DB) *DB {
	return &DB{db: db}
}

// Open connects through the pgx database/sql driver and pings once. It suits
// short-lived processes such as the CLI, which only need a single connection.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return New(db), nil
}

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.db == nil {
		return errNilDB
	}
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d == nil || d.db == nil {
		return 0, errNilDB
	}
	return execAffected(d.db.ExecContext(ctx, query, args...))
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.db == nil {
		return nil, errNilDB
	}
	r, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows{rows: r}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if d == nil || d.db == nil {
		return errRow{err: errNilDB}
	}
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) Begin(ctx context.Context) (database.Tx, error) {
	if d == nil || d.db == nil {
		return nil, errNilDB
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

func (d *DB) SQLDB() *sql.DB {
	if d == nil {
		return nil
	}
	return d.db
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execAffected(t.tx.ExecContext(ctx, query, args...))
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows{rows: r}, nil
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t sqlTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

// Rollback after Commit is a no-op.
func (t sqlTx) Rollback(_ context.Context) error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

type rows struct {
	rows *sql.Rows
}

func (r rows) Close() {
	_ = r.rows.Close()
}

func (r rows) Next() bool {
	return r.rows.Next()
}

func (r rows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r rows) Err() error {
	return r.rows.Err()
}

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error {
	return r.err
}

func execAffected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}
