package sdk

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	portalv1 "github.com/aaalawyers/trainingportal/pkg/api/portal/v1"
	"github.com/aaalawyers/trainingportal/pkg/api/portal/v1/portalv1connect"
)

// Client provides a high-level interface to the portal API.
// It wraps the Connect RPC client with ergonomic methods and domain types.
type Client struct {
	rpc     portalv1connect.PortalServiceClient
	baseURL string
}

var _ Port = (*Client)(nil)

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for RPC calls. Identity is
// attached by this client's transport (for example an oauth2 bearer client).
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// NewClient creates a new portal SDK client that communicates with the API server at baseURL.
// An http.Client is created automatically when one is not supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Client{
		rpc:     portalv1connect.NewPortalServiceClient(opts.HTTPClient, baseURL),
		baseURL: baseURL,
	}
}

// BaseURL returns the server URL the client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAllCourses returns every course, including drafts and archived ones.
func (c *Client) GetAllCourses(ctx context.Context) ([]Course, error) {
	resp, err := c.rpc.GetAllCourses(ctx, connect.NewRequest(&portalv1.GetAllCoursesRequest{}))
	if err != nil {
		return nil, err
	}

	courses := make([]Course, 0, len(resp.Msg.GetCourses()))
	for _, pb := range resp.Msg.GetCourses() {
		courses = append(courses, courseFromProto(pb))
	}
	return courses, nil
}

// GetCourse fetches a course by ID.
func (c *Client) GetCourse(ctx context.Context, id string) (Course, error) {
	resp, err := c.rpc.GetCourse(ctx, connect.NewRequest(&portalv1.GetCourseRequest{Id: id}))
	if err != nil {
		return Course{}, err
	}
	if resp.Msg.Course == nil {
		return Course{}, connect.NewError(connect.CodeNotFound, fmt.Errorf("course %s not found", id))
	}
	return courseFromProto(resp.Msg.Course), nil
}

// GetLessonsByCourse lists the lessons attached to courseID.
func (c *Client) GetLessonsByCourse(ctx context.Context, courseID string) ([]Lesson, error) {
	resp, err := c.rpc.GetLessonsByCourse(ctx, connect.NewRequest(&portalv1.GetLessonsByCourseRequest{CourseId: courseID}))
	if err != nil {
		return nil, err
	}

	lessons := make([]Lesson, 0, len(resp.Msg.GetLessons()))
	for _, pb := range resp.Msg.GetLessons() {
		lessons = append(lessons, lessonFromProto(pb))
	}
	return lessons, nil
}

// GetLesson fetches a lesson by ID.
func (c *Client) GetLesson(ctx context.Context, id string) (Lesson, error) {
	resp, err := c.rpc.GetLesson(ctx, connect.NewRequest(&portalv1.GetLessonRequest{Id: id}))
	if err != nil {
		return Lesson{}, err
	}
	if resp.Msg.Lesson == nil {
		return Lesson{}, connect.NewError(connect.CodeNotFound, fmt.Errorf("lesson %s not found", id))
	}
	return lessonFromProto(resp.Msg.Lesson), nil
}

// SaveCourse creates a new course. Requires the admin role.
func (c *Client) SaveCourse(ctx context.Context, course Course) error {
	_, err := c.rpc.SaveCourse(ctx, connect.NewRequest(&portalv1.SaveCourseRequest{Course: courseToProto(course)}))
	return err
}

// UpdateCourse replaces an existing course. Requires the admin role.
func (c *Client) UpdateCourse(ctx context.Context, course Course) error {
	_, err := c.rpc.UpdateCourse(ctx, connect.NewRequest(&portalv1.UpdateCourseRequest{Course: courseToProto(course)}))
	return err
}

// SaveLesson creates a new lesson. Requires the admin role.
func (c *Client) SaveLesson(ctx context.Context, lesson Lesson) error {
	_, err := c.rpc.SaveLesson(ctx, connect.NewRequest(&portalv1.SaveLessonRequest{Lesson: lessonToProto(lesson)}))
	return err
}

// UpdateLesson replaces an existing lesson. Requires the admin role.
func (c *Client) UpdateLesson(ctx context.Context, lesson Lesson) error {
	_, err := c.rpc.UpdateLesson(ctx, connect.NewRequest(&portalv1.UpdateLessonRequest{Lesson: lessonToProto(lesson)}))
	return err
}

// SetContentStatus changes the status of a course (isCourse) or a lesson.
func (c *Client) SetContentStatus(ctx context.Context, id string, status ContentStatus, isCourse bool) error {
	req := connect.NewRequest(&portalv1.SetContentStatusRequest{
		ContentId: id,
		Status:    string(status),
		IsCourse:  isCourse,
	})
	_, err := c.rpc.SetContentStatus(ctx, req)
	return err
}

// ImportPDF uploads a PDF document. The server stores it and creates one
// draft course and one draft lesson; the returned ID identifies the import.
func (c *Client) ImportPDF(ctx context.Context, pdf []byte) (string, error) {
	resp, err := c.rpc.ImportPdf(ctx, connect.NewRequest(&portalv1.ImportPdfRequest{PdfContent: pdf}))
	if err != nil {
		return "", err
	}
	return resp.Msg.Id, nil
}

// EnrollInCourse enrolls the caller. Anonymous callers get CodeUnauthenticated.
func (c *Client) EnrollInCourse(ctx context.Context, courseID string) error {
	_, err := c.rpc.EnrollInCourse(ctx, connect.NewRequest(&portalv1.EnrollInCourseRequest{CourseId: courseID}))
	return err
}

// MarkLessonCompleted records a lesson completion for the caller.
func (c *Client) MarkLessonCompleted(ctx context.Context, lessonID string) error {
	_, err := c.rpc.MarkLessonCompleted(ctx, connect.NewRequest(&portalv1.MarkLessonCompletedRequest{LessonId: lessonID}))
	return err
}

// GetTraineeProgress returns the caller's enrolled courses and completed lessons.
func (c *Client) GetTraineeProgress(ctx context.Context) (TraineeProgress, error) {
	resp, err := c.rpc.GetTraineeProgress(ctx, connect.NewRequest(&portalv1.GetTraineeProgressRequest{}))
	if err != nil {
		return TraineeProgress{}, err
	}
	return progressFromProto(resp.Msg.Progress), nil
}

// GetCallerUserProfile returns nil when the caller has not saved a profile yet.
func (c *Client) GetCallerUserProfile(ctx context.Context) (*UserProfile, error) {
	resp, err := c.rpc.GetCallerUserProfile(ctx, connect.NewRequest(&portalv1.GetCallerUserProfileRequest{}))
	if err != nil {
		return nil, err
	}
	return profileFromProto(resp.Msg.Profile), nil
}

// GetUserProfile returns the profile saved by identity, or nil.
func (c *Client) GetUserProfile(ctx context.Context, identity string) (*UserProfile, error) {
	resp, err := c.rpc.GetUserProfile(ctx, connect.NewRequest(&portalv1.GetUserProfileRequest{Identity: identity}))
	if err != nil {
		return nil, err
	}
	return profileFromProto(resp.Msg.Profile), nil
}

// SaveCallerUserProfile replaces the caller's profile wholesale.
func (c *Client) SaveCallerUserProfile(ctx context.Context, profile UserProfile) error {
	req := connect.NewRequest(&portalv1.SaveCallerUserProfileRequest{
		Profile: &portalv1.UserProfile{Name: profile.Name, Email: profile.Email},
	})
	_, err := c.rpc.SaveCallerUserProfile(ctx, req)
	return err
}

// GetCallerUserRole returns the caller's role.
func (c *Client) GetCallerUserRole(ctx context.Context) (UserRole, error) {
	resp, err := c.rpc.GetCallerUserRole(ctx, connect.NewRequest(&portalv1.GetCallerUserRoleRequest{}))
	if err != nil {
		return "", err
	}
	return ParseUserRole(resp.Msg.Role)
}

// IsCallerAdmin reports whether the caller holds the admin role.
func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	resp, err := c.rpc.IsCallerAdmin(ctx, connect.NewRequest(&portalv1.IsCallerAdminRequest{}))
	if err != nil {
		return false, err
	}
	return resp.Msg.IsAdmin, nil
}

// AssignCallerUserRole assigns role to identity. Privileged.
func (c *Client) AssignCallerUserRole(ctx context.Context, identity string, role UserRole) error {
	req := connect.NewRequest(&portalv1.AssignCallerUserRoleRequest{
		Identity: identity,
		Role:     string(role),
	})
	_, err := c.rpc.AssignCallerUserRole(ctx, req)
	return err
}
