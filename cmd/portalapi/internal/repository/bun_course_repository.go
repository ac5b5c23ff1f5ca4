package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

// BunCourseRepository persists courses using Bun ORM.
type BunCourseRepository struct {
	db bun.IDB
}

// NewBunCourseRepository constructs a repository backed by Bun. db may be a
// transaction.
func NewBunCourseRepository(db bun.IDB) *BunCourseRepository {
	return &BunCourseRepository{db: db}
}

// Create inserts a new course with its author-chosen id.
func (r *BunCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := course.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(course).Exec(ctx); err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("course '%s': %w", course.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// Update overwrites title, description and status of an existing course.
func (r *BunCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if err := course.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	course.UpdatedAt = time.Now()
	res, err := r.db.NewUpdate().
		Model(course).
		Column("title", "description", "status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return requireAffected(res, "course", course.ID)
}

// GetByID fetches a course by id.
func (r *BunCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course := new(models.Course)
	if err := r.db.NewSelect().Model(course).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, notFound(err, "course", id)
	}
	return course, nil
}

// List returns every course ordered by creation time.
func (r *BunCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.NewSelect().Model(&courses).Order("created_at ASC", "id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// SetStatus changes only the status of a course.
func (r *BunCourseRepository) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid course status %q", status)
	}

	res, err := r.db.NewUpdate().
		Model((*models.Course)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update course status: %w", err)
	}
	return requireAffected(res, "course", id)
}
