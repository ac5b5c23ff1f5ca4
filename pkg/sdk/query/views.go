package query

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

// ProgressPanel is the enrollment and progress block of a course page.
type ProgressPanel struct {
	Enrollment sdk.Enrollment
	// Progress is only meaningful once enrolled.
	Progress sdk.CourseProgress
	// Completed holds the ids of completed published lessons.
	Completed map[string]bool
}

// CanEnroll reports whether the enroll action should be offered.
func (p *ProgressPanel) CanEnroll() bool {
	return p != nil && p.Enrollment == sdk.NotEnrolled
}

// CourseDetail is the course page model.
type CourseDetail struct {
	Course  sdk.Course
	Lessons []sdk.Lesson // published only
	// Panel is nil for anonymous callers: enrollment and progress are
	// hidden entirely rather than shown empty.
	Panel *ProgressPanel
}

// CourseDetail loads the course, its published lessons and, for an
// authenticated caller, the enrollment panel.
func (c *Client) CourseDetail(ctx context.Context, courseID string, authenticated bool) (*CourseDetail, error) {
	var (
		course   sdk.Course
		lessons  []sdk.Lesson
		progress sdk.TraineeProgress
	)
	withPanel := gate.RequireIdentity(authenticated) == gate.Granted

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		course, err = c.Course(gctx, courseID)
		return err
	})
	g.Go(func() error {
		var err error
		lessons, err = c.PublishedLessons(gctx, courseID)
		return err
	})
	if withPanel {
		g.Go(func() error {
			var err error
			progress, err = c.TraineeProgress(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &CourseDetail{Course: course, Lessons: lessons}
	if withPanel {
		panel := &ProgressPanel{
			Enrollment: sdk.EnrollmentState(progress, courseID),
			Progress:   sdk.ComputeCourseProgress(lessons, progress),
			Completed:  make(map[string]bool),
		}
		for _, l := range lessons {
			if progress.IsCompleted(l.ID) {
				panel.Completed[l.ID] = true
			}
		}
		detail.Panel = panel
	}
	return detail, nil
}

// LessonDetail is the lesson page model.
type LessonDetail struct {
	Lesson      sdk.Lesson
	CourseTitle string
	// Next is the following published lesson of the course, if any.
	Next *sdk.Lesson
	// Completed is only reported to authenticated callers.
	Completed   bool
	CanComplete bool
}

// LessonView loads a lesson together with its navigation context.
func (c *Client) LessonView(ctx context.Context, courseID, lessonID string, authenticated bool) (*LessonDetail, error) {
	lesson, err := c.Lesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	detail := &LessonDetail{Lesson: lesson, CourseTitle: courseID}

	// The course and its lesson list only decorate the page; an orphaned
	// lesson still renders with the raw course id.
	if course, err := c.Course(ctx, courseID); err == nil {
		detail.CourseTitle = sdk.CourseTitle([]sdk.Course{course}, courseID)
	} else if !sdk.IsNotFound(err) {
		return nil, err
	}

	lessons, err := c.LessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if next, ok := sdk.NextPublishedLesson(lessons, lessonID); ok {
		detail.Next = &next
	}

	if gate.RequireIdentity(authenticated) == gate.Granted {
		progress, err := c.TraineeProgress(ctx)
		if err != nil {
			return nil, err
		}
		detail.Completed = progress.IsCompleted(lessonID)
		detail.CanComplete = !detail.Completed
	}
	return detail, nil
}

// LessonRow pairs a lesson with the title of its course for admin listings.
type LessonRow struct {
	Lesson      sdk.Lesson
	CourseTitle string
}

// AdminLessonRows lists every lesson with its resolved course title.
// Orphans show their raw course id.
func (c *Client) AdminLessonRows(ctx context.Context) ([]LessonRow, error) {
	var (
		lessons []sdk.Lesson
		courses []sdk.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lessons, err = c.AllLessons(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = c.Courses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]LessonRow, 0, len(lessons))
	for _, l := range lessons {
		rows = append(rows, LessonRow{Lesson: l, CourseTitle: sdk.CourseTitle(courses, l.CourseID)})
	}
	return rows, nil
}

// Article is a published lesson read outside of any course context, as the
// public knowledge base shows it.
type Article struct {
	Lesson      sdk.Lesson
	CourseTitle string
}

// PublishedArticles lists every published lesson across all courses, in
// course-list order. Orphans show their raw course id.
func (c *Client) PublishedArticles(ctx context.Context) ([]Article, error) {
	var (
		lessons []sdk.Lesson
		courses []sdk.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lessons, err = c.AllLessons(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = c.Courses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	published := sdk.PublishedLessons(lessons)
	articles := make([]Article, 0, len(published))
	for _, l := range published {
		articles = append(articles, Article{Lesson: l, CourseTitle: sdk.CourseTitle(courses, l.CourseID)})
	}
	return articles, nil
}

// Article loads a single knowledge base article by lesson id. Draft and
// archived lessons are reported as not found.
func (c *Client) Article(ctx context.Context, lessonID string) (*Article, error) {
	lesson, err := c.Lesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.Status != sdk.StatusPublished {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("article %s not found", lessonID))
	}

	courses, err := c.Courses(ctx)
	if err != nil {
		return nil, err
	}
	return &Article{Lesson: lesson, CourseTitle: sdk.CourseTitle(courses, lesson.CourseID)}, nil
}
