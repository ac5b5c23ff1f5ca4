// Package catalog implements the training portal's content, progress,
// profile and role rules on top of the repositories.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/uptrace/bun"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/repository"
)

// ErrInvalidArgument is wrapped by every input validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultRoleCacheSize bounds the identity to role cache.
const DefaultRoleCacheSize = 1024

// Service owns the portal's business rules.
type Service struct {
	db       *bun.DB
	courses  repository.CourseRepository
	lessons  repository.LessonRepository
	progress repository.ProgressRepository
	profiles repository.ProfileRepository
	roles    repository.RoleRepository

	roleCache *lru.Cache[string, string]
}

// NewService wires the Bun repositories around db.
func NewService(db *bun.DB, roleCacheSize int) (*Service, error) {
	if roleCacheSize <= 0 {
		roleCacheSize = DefaultRoleCacheSize
	}
	cache, err := lru.New[string, string](roleCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create role cache: %w", err)
	}

	return &Service{
		db:        db,
		courses:   repository.NewBunCourseRepository(db),
		lessons:   repository.NewBunLessonRepository(db),
		progress:  repository.NewBunProgressRepository(db),
		profiles:  repository.NewBunProfileRepository(db),
		roles:     repository.NewBunRoleRepository(db),
		roleCache: cache,
	}, nil
}

// Courses

func (s *Service) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses.List(ctx)
}

func (s *Service) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: course id is required", ErrInvalidArgument)
	}
	return s.courses.GetByID(ctx, id)
}

func (s *Service) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := checkContent(course.Validate()); err != nil {
		return err
	}
	return s.courses.Create(ctx, course)
}

func (s *Service) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := checkContent(course.Validate()); err != nil {
		return err
	}
	return s.courses.Update(ctx, course)
}

// Lessons

// ListLessons returns the lessons of courseID in insertion order. An unknown
// course yields an empty list.
func (s *Service) ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	return s.lessons.ListByCourse(ctx, courseID)
}

func (s *Service) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: lesson id is required", ErrInvalidArgument)
	}
	return s.lessons.GetByID(ctx, id)
}

// CreateLesson does not require the course to exist.
func (s *Service) CreateLesson(ctx context.Context, lesson *models.Lesson) error {
	if err := checkContent(lesson.Validate()); err != nil {
		return err
	}
	return s.lessons.Create(ctx, lesson)
}

func (s *Service) UpdateLesson(ctx context.Context, lesson *models.Lesson) error {
	if err := checkContent(lesson.Validate()); err != nil {
		return err
	}
	return s.lessons.Update(ctx, lesson)
}

// SetContentStatus changes the status of a course when isCourse is set,
// otherwise of a lesson.
func (s *Service) SetContentStatus(ctx context.Context, id, status string, isCourse bool) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: status %q", ErrInvalidArgument, status)
	}
	if isCourse {
		return s.courses.SetStatus(ctx, id, status)
	}
	return s.lessons.SetStatus(ctx, id, status)
}

// ImportPDF stores pdf as a new draft course with one draft lesson holding
// the document, and returns the course id.
func (s *Service) ImportPDF(ctx context.Context, pdf []byte) (string, error) {
	if len(pdf) == 0 {
		return "", fmt.Errorf("%w: pdf content is empty", ErrInvalidArgument)
	}

	id := "pdf-" + uuid.NewString()
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		course := &models.Course{
			ID:          id,
			Status:      models.StatusDraft,
			Title:       "Imported PDF " + id[len("pdf-"):len("pdf-")+8],
			Description: fmt.Sprintf("Imported from a %d byte PDF", len(pdf)),
		}
		if err := repository.NewBunCourseRepository(tx).Create(ctx, course); err != nil {
			return err
		}

		lesson := &models.Lesson{
			ID:        id + "-lesson",
			CourseID:  id,
			Status:    models.StatusDraft,
			Title:     course.Title,
			PDFSource: pdf,
		}
		return repository.NewBunLessonRepository(tx).Create(ctx, lesson)
	})
	if err != nil {
		return "", fmt.Errorf("import pdf: %w", err)
	}
	return id, nil
}

// Progress

// Enroll adds courseID to the identity's enrolled set. The course must exist.
func (s *Service) Enroll(ctx context.Context, identity, courseID string) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	_, err := s.progress.Enroll(ctx, identity, courseID)
	return err
}

// CompleteLesson adds lessonID to the identity's completed set. Repeating it
// is a no-op.
func (s *Service) CompleteLesson(ctx context.Context, identity, lessonID string) error {
	if _, err := s.lessons.GetByID(ctx, lessonID); err != nil {
		return err
	}
	_, err := s.progress.Complete(ctx, identity, lessonID)
	return err
}

// Progress returns the identity's enrolled courses and completed lessons.
func (s *Service) Progress(ctx context.Context, identity string) (enrolled, completed []string, err error) {
	return s.progress.Get(ctx, identity)
}

// Profiles

// Profile returns nil without error when the identity has no profile yet.
func (s *Service) Profile(ctx context.Context, identity string) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx, identity)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return profile, err
}

func (s *Service) SaveProfile(ctx context.Context, identity, name, email string) error {
	return s.profiles.Upsert(ctx, &models.Profile{Identity: identity, Name: name, Email: email})
}

// Roles

// RoleOf resolves the identity's role. Anonymous callers are guests and
// identities without an assignment are users.
func (s *Service) RoleOf(ctx context.Context, identity string) (string, error) {
	if identity == "" {
		return auth.RoleGuest, nil
	}
	if role, ok := s.roleCache.Get(identity); ok {
		return role, nil
	}

	role := auth.RoleUser
	assignment, err := s.roles.Get(ctx, identity)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return "", err
	default:
		role = assignment.Role
	}

	s.roleCache.Add(identity, role)
	return role, nil
}

// AssignRole records role for identity. assignedBy is empty for bootstrap.
func (s *Service) AssignRole(ctx context.Context, identity, role, assignedBy string) error {
	if identity == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidArgument)
	}
	if !auth.ValidRole(role) {
		return fmt.Errorf("%w: role %q", ErrInvalidArgument, role)
	}

	err := s.roles.Assign(ctx, &models.RoleAssignment{Identity: identity, Role: role, AssignedBy: assignedBy})
	if err != nil {
		return err
	}
	s.roleCache.Remove(identity)
	return nil
}

// ListRoleAssignments returns the explicit assignments ordered by identity.
func (s *Service) ListRoleAssignments(ctx context.Context) ([]models.RoleAssignment, error) {
	return s.roles.List(ctx)
}

// PurgeRoleCache drops every cached role so assignments made directly in the
// database are picked up.
func (s *Service) PurgeRoleCache() {
	s.roleCache.Purge()
}

func checkContent(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}
