package seeder

import (
	"context"
	"errors"
	"fmt"

	"career-compass/internal/database"

	sq "github.com/Masterminds/squirrel"
)

var errEmptyName = errors.New("empty table or column name")

// EnsureTableColumns fails unless table exists in the current schema with
// every listed column. Seeders call it so a missed migration is reported
// before any write.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return errors.New("nil db")
	}
	if table == "" {
		return errEmptyName
	}
	for _, col := range columns {
		if col == "" {
			return errEmptyName
		}
	}

	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("column_name").
		From("information_schema.columns").
		Where("table_schema = current_schema()").
		Where(sq.Eq{"table_name": table}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build column query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list columns of %s: %w", table, err)
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %v", missing)
	}
	return nil
}
