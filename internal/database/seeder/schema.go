package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr-portal/internal/database"
)

// ErrSchemaMismatch means a seeder found its table without the columns it
// writes, usually because migrations have not been applied.
var ErrSchemaMismatch = errors.New("portal schema mismatch")

// EnsureTableColumns checks that table exists in the public schema with every
// listed column. All missing columns are reported together.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return database.ErrNotConnected
	}
	if strings.TrimSpace(table) == "" {
		return errors.New("ensure columns: empty table name")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	existing := map[string]bool{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(existing) == 0 {
		return fmt.Errorf("%w: table %s does not exist, run migrations first", ErrSchemaMismatch, table)
	}
	var missing []string
	for _, col := range columns {
		if !existing[col] {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
