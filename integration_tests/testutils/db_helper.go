//go:build integration

package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// TruncateTables truncates the given tables and resets their sequences.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, db *bun.DB, table string) (int, error) {
	return db.NewSelect().Table(table).Count(ctx)
}
