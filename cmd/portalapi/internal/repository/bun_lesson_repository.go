package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

// BunLessonRepository persists lessons using Bun ORM.
type BunLessonRepository struct {
	db bun.IDB
}

func NewBunLessonRepository(db bun.IDB) *BunLessonRepository {
	return &BunLessonRepository{db: db}
}

// Create inserts a lesson at the end of its course.
func (r *BunLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if err := lesson.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var last int64
	err := r.db.NewSelect().
		Model((*models.Lesson)(nil)).
		ColumnExpr("COALESCE(MAX(position), 0)").
		Where("course_id = ?", lesson.CourseID).
		Scan(ctx, &last)
	if err != nil {
		return fmt.Errorf("query lesson position: %w", err)
	}

	now := time.Now()
	lesson.Position = last + 1
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(lesson).Exec(ctx); err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("lesson '%s': %w", lesson.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("insert lesson: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of a lesson. Moving a lesson to
// another course keeps its position value.
func (r *BunLessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	if err := lesson.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	lesson.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().
		Model(lesson).
		Column("course_id", "title", "content", "status", "pdf_source", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	return requireAffected(res, "lesson", lesson.ID)
}

func (r *BunLessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	lesson := new(models.Lesson)
	if err := r.db.NewSelect().Model(lesson).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, notFound(err, "lesson", id)
	}
	return lesson, nil
}

func (r *BunLessonRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := r.db.NewSelect().
		Model(&lessons).
		Where("course_id = ?", courseID).
		Order("position ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

func (r *BunLessonRepository) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid lesson status %q", status)
	}

	res, err := r.db.NewUpdate().
		Model((*models.Lesson)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update lesson status: %w", err)
	}
	return requireAffected(res, "lesson", id)
}
