// Package query binds each remote operation to a cache key and declares which
// keys a successful write makes stale.
package query

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/cache"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

// DefaultFanOutLimit bounds concurrent per-course lesson fetches in AllLessons.
const DefaultFanOutLimit = 4

// Client is the data access layer of one session. It owns no state besides
// the injected store.
type Client struct {
	port        sdk.Port
	store       *cache.Store
	fanOutLimit int
}

// Option configures a Client.
type Option func(*Client)

// WithFanOutLimit sets how many course lesson lists AllLessons fetches at once.
func WithFanOutLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.fanOutLimit = n
		}
	}
}

// New binds port to store. The store is shared by every accessor and is
// closed by Close.
func New(port sdk.Port, store *cache.Store, opts ...Option) *Client {
	c := &Client{
		port:        port,
		store:       store,
		fanOutLimit: DefaultFanOutLimit,
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// Store exposes the underlying cache, for subscriptions.
func (c *Client) Store() *cache.Store {
	return c.store
}

// Close ends the session: cached values are dropped and subscriptions end.
func (c *Client) Close() error {
	return c.store.Close()
}

// Courses lists every course, drafts and archived included.
func (c *Client) Courses(ctx context.Context) ([]sdk.Course, error) {
	courses, err := cache.Fetch(ctx, c.store, CoursesKey(), c.port.GetAllCourses)
	return slices.Clone(courses), err
}

// PublishedCourses is the public catalog.
func (c *Client) PublishedCourses(ctx context.Context) ([]sdk.Course, error) {
	courses, err := c.Courses(ctx)
	if err != nil {
		return nil, err
	}
	return sdk.PublishedCourses(courses), nil
}

func (c *Client) Course(ctx context.Context, id string) (sdk.Course, error) {
	return cache.Fetch(ctx, c.store, CourseKey(id), func(ctx context.Context) (sdk.Course, error) {
		return c.port.GetCourse(ctx, id)
	})
}

func (c *Client) LessonsByCourse(ctx context.Context, courseID string) ([]sdk.Lesson, error) {
	lessons, err := cache.Fetch(ctx, c.store, LessonsByCourseKey(courseID), func(ctx context.Context) ([]sdk.Lesson, error) {
		return c.port.GetLessonsByCourse(ctx, courseID)
	})
	return slices.Clone(lessons), err
}

// PublishedLessons lists the published lessons of one course.
func (c *Client) PublishedLessons(ctx context.Context, courseID string) ([]sdk.Lesson, error) {
	lessons, err := c.LessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return sdk.PublishedLessons(lessons), nil
}

func (c *Client) Lesson(ctx context.Context, id string) (sdk.Lesson, error) {
	return cache.Fetch(ctx, c.store, LessonKey(id), func(ctx context.Context) (sdk.Lesson, error) {
		return c.port.GetLesson(ctx, id)
	})
}

// AllLessons lists the lessons of every course, concatenated in course-list
// order. There is no remote list-all operation: the course list is fetched
// and then each course's lessons, so cost grows with the catalog.
func (c *Client) AllLessons(ctx context.Context) ([]sdk.Lesson, error) {
	lessons, err := cache.Fetch(ctx, c.store, AllLessonsKey(), c.fetchAllLessons)
	return slices.Clone(lessons), err
}

func (c *Client) fetchAllLessons(ctx context.Context) ([]sdk.Lesson, error) {
	courses, err := c.port.GetAllCourses(ctx)
	if err != nil {
		return nil, err
	}

	perCourse := make([][]sdk.Lesson, len(courses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.fanOutLimit)
	for i, course := range courses {
		g.Go(func() error {
			lessons, err := c.port.GetLessonsByCourse(gctx, course.ID)
			if err != nil {
				return err
			}
			perCourse[i] = lessons
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]sdk.Lesson, 0)
	for _, lessons := range perCourse {
		all = append(all, lessons...)
	}
	return all, nil
}

func (c *Client) TraineeProgress(ctx context.Context) (sdk.TraineeProgress, error) {
	progress, err := cache.Fetch(ctx, c.store, TraineeProgressKey(), c.port.GetTraineeProgress)
	return sdk.TraineeProgress{
		CompletedLessons: slices.Clone(progress.CompletedLessons),
		EnrolledCourses:  slices.Clone(progress.EnrolledCourses),
	}, err
}

// CallerProfile returns nil when the caller has not set up a profile.
func (c *Client) CallerProfile(ctx context.Context) (*sdk.UserProfile, error) {
	profile, err := cache.Fetch(ctx, c.store, CallerProfileKey(), c.port.GetCallerUserProfile)
	return cloneProfile(profile), err
}

func (c *Client) UserProfile(ctx context.Context, identity string) (*sdk.UserProfile, error) {
	profile, err := cache.Fetch(ctx, c.store, UserProfileKey(identity), func(ctx context.Context) (*sdk.UserProfile, error) {
		return c.port.GetUserProfile(ctx, identity)
	})
	return cloneProfile(profile), err
}

func (c *Client) CallerRole(ctx context.Context) (sdk.UserRole, error) {
	return cache.Fetch(ctx, c.store, CallerRoleKey(), c.port.GetCallerUserRole)
}

// IsCallerAdmin is never retried; a failure is returned as is.
func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	return cache.Fetch(ctx, c.store, IsAdminKey(), c.port.IsCallerAdmin)
}

// AdminGate returns a fresh gate over IsCallerAdmin. Use one per navigation.
func (c *Client) AdminGate(opts ...gate.Option) *gate.Gate {
	return gate.New(c.IsCallerAdmin, opts...)
}

func cloneProfile(p *sdk.UserProfile) *sdk.UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
