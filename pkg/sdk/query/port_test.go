package query

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"connectrpc.com/connect"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

// fakePort is an in-memory sdk.Port that counts calls per method. Errors
// set in failures are returned once per call until cleared.
type fakePort struct {
	mu       sync.Mutex
	courses  []sdk.Course
	lessons  []sdk.Lesson
	progress sdk.TraineeProgress
	profile  *sdk.UserProfile
	role     sdk.UserRole
	imports  int

	calls    map[string]int
	failures map[string]error
	// blockers make a method wait until the channel is closed.
	blockers map[string]chan struct{}
}

var _ sdk.Port = (*fakePort)(nil)

func newFakePort() *fakePort {
	return &fakePort{
		role:     sdk.RoleUser,
		calls:    make(map[string]int),
		failures: make(map[string]error),
		blockers: make(map[string]chan struct{}),
	}
}

func (p *fakePort) enter(method string) error {
	p.mu.Lock()
	p.calls[method]++
	block := p.blockers[method]
	err := p.failures[method]
	p.mu.Unlock()

	if block != nil {
		<-block
	}
	return err
}

func (p *fakePort) callCount(method string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[method]
}

func (p *fakePort) fail(method string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, method)
		return
	}
	p.failures[method] = err
}

func (p *fakePort) block(method string) chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch := make(chan struct{})
	p.blockers[method] = ch
	return ch
}

func notFound(format string, args ...any) error {
	return connect.NewError(connect.CodeNotFound, fmt.Errorf(format, args...))
}

func (p *fakePort) GetAllCourses(context.Context) ([]sdk.Course, error) {
	if err := p.enter("GetAllCourses"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.courses), nil
}

func (p *fakePort) GetCourse(_ context.Context, id string) (sdk.Course, error) {
	if err := p.enter("GetCourse"); err != nil {
		return sdk.Course{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return sdk.Course{}, notFound("course %s not found", id)
}

func (p *fakePort) GetLessonsByCourse(_ context.Context, courseID string) ([]sdk.Lesson, error) {
	if err := p.enter("GetLessonsByCourse"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []sdk.Lesson{}
	for _, l := range p.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (p *fakePort) GetLesson(_ context.Context, id string) (sdk.Lesson, error) {
	if err := p.enter("GetLesson"); err != nil {
		return sdk.Lesson{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, l := range p.lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return sdk.Lesson{}, notFound("lesson %s not found", id)
}

func (p *fakePort) SaveCourse(_ context.Context, course sdk.Course) error {
	if err := p.enter("SaveCourse"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.courses = append(p.courses, course)
	return nil
}

func (p *fakePort) UpdateCourse(_ context.Context, course sdk.Course) error {
	if err := p.enter("UpdateCourse"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, c := range p.courses {
		if c.ID == course.ID {
			p.courses[i] = course
			return nil
		}
	}
	return notFound("course %s not found", course.ID)
}

func (p *fakePort) SaveLesson(_ context.Context, lesson sdk.Lesson) error {
	if err := p.enter("SaveLesson"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lessons = append(p.lessons, lesson)
	return nil
}

func (p *fakePort) UpdateLesson(_ context.Context, lesson sdk.Lesson) error {
	if err := p.enter("UpdateLesson"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, l := range p.lessons {
		if l.ID == lesson.ID {
			p.lessons[i] = lesson
			return nil
		}
	}
	return notFound("lesson %s not found", lesson.ID)
}

func (p *fakePort) SetContentStatus(_ context.Context, id string, status sdk.ContentStatus, isCourse bool) error {
	if err := p.enter("SetContentStatus"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if isCourse {
		for i := range p.courses {
			if p.courses[i].ID == id {
				p.courses[i].Status = status
				return nil
			}
		}
		return notFound("course %s not found", id)
	}
	for i := range p.lessons {
		if p.lessons[i].ID == id {
			p.lessons[i].Status = status
			return nil
		}
	}
	return notFound("lesson %s not found", id)
}

func (p *fakePort) ImportPDF(_ context.Context, pdf []byte) (string, error) {
	if err := p.enter("ImportPDF"); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.imports++
	id := fmt.Sprintf("draft-%d", 41+p.imports)
	p.courses = append(p.courses, sdk.Course{ID: id, Status: sdk.StatusDraft, Title: "Imported " + id})
	p.lessons = append(p.lessons, sdk.Lesson{
		ID:        id + "-lesson",
		Status:    sdk.StatusDraft,
		Title:     "Imported " + id,
		PDFSource: pdf,
		CourseID:  id,
	})
	return id, nil
}

func (p *fakePort) EnrollInCourse(_ context.Context, courseID string) error {
	if err := p.enter("EnrollInCourse"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress.Enroll(courseID)
	return nil
}

func (p *fakePort) MarkLessonCompleted(_ context.Context, lessonID string) error {
	if err := p.enter("MarkLessonCompleted"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress.MarkCompleted(lessonID)
	return nil
}

func (p *fakePort) GetTraineeProgress(context.Context) (sdk.TraineeProgress, error) {
	if err := p.enter("GetTraineeProgress"); err != nil {
		return sdk.TraineeProgress{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return sdk.TraineeProgress{
		CompletedLessons: slices.Clone(p.progress.CompletedLessons),
		EnrolledCourses:  slices.Clone(p.progress.EnrolledCourses),
	}, nil
}

func (p *fakePort) GetCallerUserProfile(context.Context) (*sdk.UserProfile, error) {
	if err := p.enter("GetCallerUserProfile"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.profile == nil {
		return nil, nil
	}
	cp := *p.profile
	return &cp, nil
}

func (p *fakePort) GetUserProfile(_ context.Context, identity string) (*sdk.UserProfile, error) {
	if err := p.enter("GetUserProfile"); err != nil {
		return nil, err
	}
	return nil, nil
}

func (p *fakePort) SaveCallerUserProfile(_ context.Context, profile sdk.UserProfile) error {
	if err := p.enter("SaveCallerUserProfile"); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = &profile
	return nil
}

func (p *fakePort) GetCallerUserRole(context.Context) (sdk.UserRole, error) {
	if err := p.enter("GetCallerUserRole"); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.role, nil
}

func (p *fakePort) IsCallerAdmin(context.Context) (bool, error) {
	if err := p.enter("IsCallerAdmin"); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.role == sdk.RoleAdmin, nil
}

func (p *fakePort) AssignCallerUserRole(_ context.Context, identity string, role sdk.UserRole) error {
	if err := p.enter("AssignCallerUserRole"); err != nil {
		return err
	}
	if identity == "" {
		return errors.New("identity required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.role = role
	return nil
}
