package sdk

import "context"

// Port is the set of operations the portal backend exposes. Client implements
// it over Connect RPC; tests and the query layer only depend on this
// interface. Errors returned by implementations are passed through to callers
// untouched; see KindOf for classification.
type Port interface {
	GetAllCourses(ctx context.Context) ([]Course, error)
	GetCourse(ctx context.Context, id string) (Course, error)
	GetLessonsByCourse(ctx context.Context, courseID string) ([]Lesson, error)
	GetLesson(ctx context.Context, id string) (Lesson, error)

	SaveCourse(ctx context.Context, course Course) error
	UpdateCourse(ctx context.Context, course Course) error
	SaveLesson(ctx context.Context, lesson Lesson) error
	UpdateLesson(ctx context.Context, lesson Lesson) error
	SetContentStatus(ctx context.Context, id string, status ContentStatus, isCourse bool) error
	ImportPDF(ctx context.Context, pdf []byte) (string, error)

	EnrollInCourse(ctx context.Context, courseID string) error
	MarkLessonCompleted(ctx context.Context, lessonID string) error
	GetTraineeProgress(ctx context.Context) (TraineeProgress, error)

	GetCallerUserProfile(ctx context.Context) (*UserProfile, error)
	GetUserProfile(ctx context.Context, identity string) (*UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile UserProfile) error

	GetCallerUserRole(ctx context.Context) (UserRole, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignCallerUserRole(ctx context.Context, identity string, role UserRole) error
}
