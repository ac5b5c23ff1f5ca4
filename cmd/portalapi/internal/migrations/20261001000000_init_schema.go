package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

func init() {
	Migrations.MustRegister(up_20261001000000, down_20261001000000)
}

var initTables = []struct {
	name  string
	model any
}{
	{"courses", (*models.Course)(nil)},
	{"lessons", (*models.Lesson)(nil)},
	{"enrollments", (*models.Enrollment)(nil)},
	{"completions", (*models.Completion)(nil)},
	{"profiles", (*models.Profile)(nil)},
	{"role_assignments", (*models.RoleAssignment)(nil)},
}

// up_20261001000000 creates the content, progress, profile and role tables
func up_20261001000000(ctx context.Context, db *bun.DB) error {
	for _, tbl := range initTables {
		fmt.Printf(" [up] creating %s table...", tbl.name)
		if _, err := db.NewCreateTable().Model(tbl.model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create %s table: %w", tbl.name, err)
		}
		fmt.Println(" OK")
	}

	fmt.Print(" [up] creating lessons course index...")
	_, err := db.NewCreateIndex().
		Model((*models.Lesson)(nil)).
		Index("idx_lessons_course_id").
		Column("course_id", "position").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create lessons course index: %w", err)
	}
	fmt.Println(" OK")

	fmt.Print(" [up] adding status checks...")
	if err := addStatusChecks(ctx, db); err != nil {
		return err
	}
	fmt.Println(" OK")

	return nil
}

// down_20261001000000 drops every table created by the init migration
func down_20261001000000(ctx context.Context, db *bun.DB) error {
	for i := len(initTables) - 1; i >= 0; i-- {
		tbl := initTables[i]
		fmt.Printf(" [down] dropping %s table...", tbl.name)
		if _, err := db.NewDropTable().Model(tbl.model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop %s table: %w", tbl.name, err)
		}
		fmt.Println(" OK")
	}
	return nil
}
