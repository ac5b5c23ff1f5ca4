package repository

import (
	"context"
	"errors"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
)

var (
	// ErrNotFound is wrapped by lookups that match no row.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is wrapped by inserts that collide with an existing key.
	ErrAlreadyExists = errors.New("already exists")
)

// CourseRepository exposes persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	SetStatus(ctx context.Context, id, status string) error
}

// LessonRepository exposes persistence operations for lessons.
type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, lesson *models.Lesson) error
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// ListByCourse returns lessons in insertion order.
	ListByCourse(ctx context.Context, courseID string) ([]models.Lesson, error)
	SetStatus(ctx context.Context, id, status string) error
}

// ProgressRepository records enrollments and completions. Both only grow.
type ProgressRepository interface {
	// Enroll reports false when the identity was already enrolled.
	Enroll(ctx context.Context, identity, courseID string) (bool, error)
	// Complete reports false when the lesson was already completed.
	Complete(ctx context.Context, identity, lessonID string) (bool, error)
	Get(ctx context.Context, identity string) (enrolled, completed []string, err error)
}

// ProfileRepository stores self-service profiles.
type ProfileRepository interface {
	Get(ctx context.Context, identity string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// RoleRepository stores identity to role assignments.
type RoleRepository interface {
	Get(ctx context.Context, identity string) (*models.RoleAssignment, error)
	Assign(ctx context.Context, assignment *models.RoleAssignment) error
	List(ctx context.Context) ([]models.RoleAssignment, error)
}
