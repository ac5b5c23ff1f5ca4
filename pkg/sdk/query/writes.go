package query

import (
	"context"
	"errors"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/cache"
)

// A write runs only while the session is open. Its invalidations apply only
// after the remote side accepted it; a rejected write leaves every cached
// value as it was.

func (c *Client) SaveCourse(ctx context.Context, course sdk.Course) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.SaveCourse(ctx, course)
	}, courseEdges(course.ID))
}

func (c *Client) UpdateCourse(ctx context.Context, course sdk.Course) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.UpdateCourse(ctx, course)
	}, courseEdges(course.ID))
}

// SaveLesson makes the lesson's own course list stale along with the
// derived all-lessons read.
func (c *Client) SaveLesson(ctx context.Context, lesson sdk.Lesson) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.SaveLesson(ctx, lesson)
	}, edges{
		keys: []cache.Key{AllLessonsKey(), LessonsByCourseKey(lesson.CourseID), LessonKey(lesson.ID)},
	})
}

// UpdateLesson may move a lesson between courses, and the previous course
// is not known here, so every per-course lesson list goes stale.
func (c *Client) UpdateLesson(ctx context.Context, lesson sdk.Lesson) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.UpdateLesson(ctx, lesson)
	}, lessonEdges(lesson.ID))
}

// SetContentStatus changes a course (isCourse) or lesson status.
func (c *Client) SetContentStatus(ctx context.Context, id string, status sdk.ContentStatus, isCourse bool) error {
	e := lessonEdges(id)
	if isCourse {
		e = courseEdges(id)
	}
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.SetContentStatus(ctx, id, status, isCourse)
	}, e)
}

// ImportPDF creates one draft course and one draft lesson remotely and
// returns the import id.
func (c *Client) ImportPDF(ctx context.Context, pdf []byte) (string, error) {
	var id string
	err := c.write(ctx, func(ctx context.Context) error {
		var err error
		id, err = c.port.ImportPDF(ctx, pdf)
		return err
	}, edges{keys: []cache.Key{CoursesKey(), AllLessonsKey()}})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (c *Client) EnrollInCourse(ctx context.Context, courseID string) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.EnrollInCourse(ctx, courseID)
	}, edges{keys: []cache.Key{TraineeProgressKey()}})
}

func (c *Client) MarkLessonCompleted(ctx context.Context, lessonID string) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.MarkLessonCompleted(ctx, lessonID)
	}, edges{keys: []cache.Key{TraineeProgressKey()}})
}

func (c *Client) SaveCallerProfile(ctx context.Context, profile sdk.UserProfile) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.SaveCallerUserProfile(ctx, profile)
	}, edges{
		keys:  []cache.Key{CallerProfileKey()},
		kinds: []string{KindUserProfile},
	})
}

// AssignCallerUserRole is privileged. The caller's own role reads go stale
// since identity may be the caller.
func (c *Client) AssignCallerUserRole(ctx context.Context, identity string, role sdk.UserRole) error {
	return c.write(ctx, func(ctx context.Context) error {
		return c.port.AssignCallerUserRole(ctx, identity, role)
	}, edges{keys: []cache.Key{CallerRoleKey(), IsAdminKey()}})
}

// SubmitCourseForm validates form and routes it to SaveCourse when creating
// or UpdateCourse when editing. Invalid forms never reach the port.
func (c *Client) SubmitCourseForm(ctx context.Context, form *sdk.CourseForm) (sdk.Course, error) {
	course, err := form.Course()
	if err != nil {
		return sdk.Course{}, err
	}
	if form.Mode() == sdk.Editing {
		err = c.UpdateCourse(ctx, course)
	} else {
		err = c.SaveCourse(ctx, course)
	}
	if err != nil {
		return sdk.Course{}, err
	}
	return course, nil
}

// SubmitLessonForm is SubmitCourseForm for lessons.
func (c *Client) SubmitLessonForm(ctx context.Context, form *sdk.LessonForm) (sdk.Lesson, error) {
	lesson, err := form.Lesson()
	if err != nil {
		return sdk.Lesson{}, err
	}
	if form.Mode() == sdk.Editing {
		err = c.UpdateLesson(ctx, lesson)
	} else {
		err = c.SaveLesson(ctx, lesson)
	}
	if err != nil {
		return sdk.Lesson{}, err
	}
	return lesson, nil
}

// edges lists the keys a write makes stale: exact keys plus whole kinds.
type edges struct {
	keys  []cache.Key
	kinds []string
}

func courseEdges(id string) edges {
	return edges{keys: []cache.Key{CoursesKey(), CourseKey(id)}}
}

func lessonEdges(id string) edges {
	return edges{
		keys:  []cache.Key{AllLessonsKey(), LessonKey(id)},
		kinds: []string{KindLessonsByCourse},
	}
}

func (c *Client) write(ctx context.Context, call func(context.Context) error, e edges) error {
	if c.store.Closed() {
		return cache.ErrClosed
	}
	if err := call(ctx); err != nil {
		return err
	}

	// A store closed mid-call has nothing left to invalidate, and the
	// remote write already landed.
	var errs []error
	for _, key := range e.keys {
		errs = append(errs, ignoreClosed(c.store.Invalidate(key)))
	}
	for _, kind := range e.kinds {
		errs = append(errs, ignoreClosed(c.store.InvalidateKind(kind)))
	}
	return errors.Join(errs...)
}

func ignoreClosed(err error) error {
	if errors.Is(err, cache.ErrClosed) {
		return nil
	}
	return err
}
