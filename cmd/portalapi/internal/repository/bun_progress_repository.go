package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

// BunProgressRepository stores enrollments and completions as one row per
// fact, so repeated calls are no-ops.
type BunProgressRepository struct {
	db bun.IDB
}

func NewBunProgressRepository(db bun.IDB) *BunProgressRepository {
	return &BunProgressRepository{db: db}
}

func (r *BunProgressRepository) Enroll(ctx context.Context, identity, courseID string) (bool, error) {
	res, err := r.db.NewInsert().
		Model(&models.Enrollment{Identity: identity, CourseID: courseID, CreatedAt: time.Now()}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("insert enrollment: %w", err)
	}
	return inserted(res)
}

func (r *BunProgressRepository) Complete(ctx context.Context, identity, lessonID string) (bool, error) {
	res, err := r.db.NewInsert().
		Model(&models.Completion{Identity: identity, LessonID: lessonID, CreatedAt: time.Now()}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("insert completion: %w", err)
	}
	return inserted(res)
}

// Get returns both sets in the order the facts were recorded. An identity
// with no record yields two empty slices.
func (r *BunProgressRepository) Get(ctx context.Context, identity string) ([]string, []string, error) {
	enrolled := []string{}
	err := r.db.NewSelect().
		Model((*models.Enrollment)(nil)).
		Column("course_id").
		Where("identity = ?", identity).
		Order("created_at ASC", "course_id ASC").
		Scan(ctx, &enrolled)
	if err != nil {
		return nil, nil, fmt.Errorf("list enrollments: %w", err)
	}

	completed := []string{}
	err = r.db.NewSelect().
		Model((*models.Completion)(nil)).
		Column("lesson_id").
		Where("identity = ?", identity).
		Order("created_at ASC", "lesson_id ASC").
		Scan(ctx, &completed)
	if err != nil {
		return nil, nil, fmt.Errorf("list completions: %w", err)
	}

	return enrolled, completed, nil
}

func inserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
