package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// statusCheckTables hold a content status column restricted to draft,
// published and archived.
var statusCheckTables = []string{"courses", "lessons"}

// addStatusChecks pins the status columns to the known values. SQLite cannot
// add a CHECK constraint to an existing table, so there the models' own
// validation is the only guard.
func addStatusChecks(ctx context.Context, db *bun.DB) error {
	if db.Dialect().Name() != dialect.PG {
		return nil
	}
	for _, table := range statusCheckTables {
		stmt := fmt.Sprintf(`ALTER TABLE %[1]s ADD CONSTRAINT %[1]s_status_check CHECK (status IN ('draft', 'published', 'archived'))`, table)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add %s status check: %w", table, err)
		}
	}
	return nil
}
