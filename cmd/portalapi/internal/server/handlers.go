package server

import (
	"context"
	"log"

	"connectrpc.com/connect"
	"github.com/casbin/casbin/v2"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/services/catalog"
	portalv1 "github.com/aaalawyers/trainingportal/pkg/api/portal/v1"
	"github.com/aaalawyers/trainingportal/pkg/api/portal/v1/portalv1connect"
)

// PortalServiceHandler wires the catalog service to the Connect RPC contract.
// Authorization happens in the interceptor chain; handlers only resolve the
// caller where the RPC is caller scoped.
type PortalServiceHandler struct {
	portalv1connect.UnimplementedPortalServiceHandler
	service  *catalog.Service
	enforcer casbin.IEnforcer
}

var _ portalv1connect.PortalServiceHandler = (*PortalServiceHandler)(nil)

// NewPortalServiceHandler constructs a handler backed by the provided service.
// enforcer answers the per-record checks the interceptor cannot make.
func NewPortalServiceHandler(service *catalog.Service, enforcer casbin.IEnforcer) *PortalServiceHandler {
	return &PortalServiceHandler{service: service, enforcer: enforcer}
}

func callerIdentity(ctx context.Context) (string, error) {
	principal, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return "", ErrIdentityRequired
	}
	return principal.Identity, nil
}

// Content

func (h *PortalServiceHandler) GetAllCourses(
	ctx context.Context,
	_ *connect.Request[portalv1.GetAllCoursesRequest],
) (*connect.Response[portalv1.GetAllCoursesResponse], error) {
	courses, err := h.service.ListCourses(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := &portalv1.GetAllCoursesResponse{Courses: make([]*portalv1.Course, 0, len(courses))}
	for i := range courses {
		resp.Courses = append(resp.Courses, courseToProto(&courses[i]))
	}
	return connect.NewResponse(resp), nil
}

func (h *PortalServiceHandler) GetCourse(
	ctx context.Context,
	req *connect.Request[portalv1.GetCourseRequest],
) (*connect.Response[portalv1.GetCourseResponse], error) {
	course, err := h.service.GetCourse(ctx, req.Msg.Id)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.GetCourseResponse{Course: courseToProto(course)}), nil
}

func (h *PortalServiceHandler) GetLessonsByCourse(
	ctx context.Context,
	req *connect.Request[portalv1.GetLessonsByCourseRequest],
) (*connect.Response[portalv1.GetLessonsByCourseResponse], error) {
	lessons, err := h.service.ListLessons(ctx, req.Msg.CourseId)
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := &portalv1.GetLessonsByCourseResponse{Lessons: make([]*portalv1.Lesson, 0, len(lessons))}
	for i := range lessons {
		resp.Lessons = append(resp.Lessons, lessonToProto(&lessons[i]))
	}
	return connect.NewResponse(resp), nil
}

func (h *PortalServiceHandler) GetLesson(
	ctx context.Context,
	req *connect.Request[portalv1.GetLessonRequest],
) (*connect.Response[portalv1.GetLessonResponse], error) {
	lesson, err := h.service.GetLesson(ctx, req.Msg.Id)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.GetLessonResponse{Lesson: lessonToProto(lesson)}), nil
}

func (h *PortalServiceHandler) SaveCourse(
	ctx context.Context,
	req *connect.Request[portalv1.SaveCourseRequest],
) (*connect.Response[portalv1.SaveCourseResponse], error) {
	if req.Msg.Course == nil {
		return nil, mapServiceError(ErrCourseRequired)
	}
	if err := h.service.CreateCourse(ctx, courseFromProto(req.Msg.Course)); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.SaveCourseResponse{}), nil
}

func (h *PortalServiceHandler) UpdateCourse(
	ctx context.Context,
	req *connect.Request[portalv1.UpdateCourseRequest],
) (*connect.Response[portalv1.UpdateCourseResponse], error) {
	if req.Msg.Course == nil {
		return nil, mapServiceError(ErrCourseRequired)
	}
	if err := h.service.UpdateCourse(ctx, courseFromProto(req.Msg.Course)); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.UpdateCourseResponse{}), nil
}

func (h *PortalServiceHandler) SaveLesson(
	ctx context.Context,
	req *connect.Request[portalv1.SaveLessonRequest],
) (*connect.Response[portalv1.SaveLessonResponse], error) {
	if req.Msg.Lesson == nil {
		return nil, mapServiceError(ErrLessonRequired)
	}
	if err := h.service.CreateLesson(ctx, lessonFromProto(req.Msg.Lesson)); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.SaveLessonResponse{}), nil
}

func (h *PortalServiceHandler) UpdateLesson(
	ctx context.Context,
	req *connect.Request[portalv1.UpdateLessonRequest],
) (*connect.Response[portalv1.UpdateLessonResponse], error) {
	if req.Msg.Lesson == nil {
		return nil, mapServiceError(ErrLessonRequired)
	}
	if err := h.service.UpdateLesson(ctx, lessonFromProto(req.Msg.Lesson)); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.UpdateLessonResponse{}), nil
}

func (h *PortalServiceHandler) SetContentStatus(
	ctx context.Context,
	req *connect.Request[portalv1.SetContentStatusRequest],
) (*connect.Response[portalv1.SetContentStatusResponse], error) {
	if err := h.service.SetContentStatus(ctx, req.Msg.ContentId, req.Msg.Status, req.Msg.IsCourse); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.SetContentStatusResponse{}), nil
}

func (h *PortalServiceHandler) ImportPdf(
	ctx context.Context,
	req *connect.Request[portalv1.ImportPdfRequest],
) (*connect.Response[portalv1.ImportPdfResponse], error) {
	id, err := h.service.ImportPDF(ctx, req.Msg.PdfContent)
	if err != nil {
		return nil, mapServiceError(err)
	}
	log.Printf("imported pdf of %d bytes as course %s", len(req.Msg.PdfContent), id)
	return connect.NewResponse(&portalv1.ImportPdfResponse{Id: id}), nil
}

// Progress

func (h *PortalServiceHandler) EnrollInCourse(
	ctx context.Context,
	req *connect.Request[portalv1.EnrollInCourseRequest],
) (*connect.Response[portalv1.EnrollInCourseResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if err := h.service.Enroll(ctx, identity, req.Msg.CourseId); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.EnrollInCourseResponse{}), nil
}

func (h *PortalServiceHandler) MarkLessonCompleted(
	ctx context.Context,
	req *connect.Request[portalv1.MarkLessonCompletedRequest],
) (*connect.Response[portalv1.MarkLessonCompletedResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if err := h.service.CompleteLesson(ctx, identity, req.Msg.LessonId); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.MarkLessonCompletedResponse{}), nil
}

func (h *PortalServiceHandler) GetTraineeProgress(
	ctx context.Context,
	_ *connect.Request[portalv1.GetTraineeProgressRequest],
) (*connect.Response[portalv1.GetTraineeProgressResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	enrolled, completed, err := h.service.Progress(ctx, identity)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.GetTraineeProgressResponse{
		Progress: &portalv1.TraineeProgress{
			EnrolledCourses:  enrolled,
			CompletedLessons: completed,
		},
	}), nil
}

// Profiles

func (h *PortalServiceHandler) GetCallerUserProfile(
	ctx context.Context,
	_ *connect.Request[portalv1.GetCallerUserProfileRequest],
) (*connect.Response[portalv1.GetCallerUserProfileResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	profile, err := h.service.Profile(ctx, identity)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.GetCallerUserProfileResponse{Profile: profileToProto(profile)}), nil
}

// GetUserProfile serves the caller's own profile to any user and any profile
// to callers allowed to read-any.
func (h *PortalServiceHandler) GetUserProfile(
	ctx context.Context,
	req *connect.Request[portalv1.GetUserProfileRequest],
) (*connect.Response[portalv1.GetUserProfileResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if req.Msg.Identity != identity {
		role, err := h.service.RoleOf(ctx, identity)
		if err != nil {
			return nil, mapServiceError(err)
		}
		allowed, err := h.enforcer.Enforce(role, auth.ObjectProfile, auth.ActionReadAny)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		if !allowed {
			return nil, connect.NewError(connect.CodePermissionDenied, ErrForeignProfile)
		}
	}

	profile, err := h.service.Profile(ctx, req.Msg.Identity)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.GetUserProfileResponse{Profile: profileToProto(profile)}), nil
}

func (h *PortalServiceHandler) SaveCallerUserProfile(
	ctx context.Context,
	req *connect.Request[portalv1.SaveCallerUserProfileRequest],
) (*connect.Response[portalv1.SaveCallerUserProfileResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if req.Msg.Profile == nil {
		return nil, mapServiceError(ErrProfileRequired)
	}
	if err := h.service.SaveProfile(ctx, identity, req.Msg.Profile.Name, req.Msg.Profile.Email); err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.SaveCallerUserProfileResponse{}), nil
}

// Roles

func (h *PortalServiceHandler) GetCallerUserRole(
	ctx context.Context,
	_ *connect.Request[portalv1.GetCallerUserRoleRequest],
) (*connect.Response[portalv1.GetCallerUserRoleResponse], error) {
	principal, _ := auth.PrincipalFromContext(ctx)
	role, err := h.service.RoleOf(ctx, principal.Identity)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.GetCallerUserRoleResponse{Role: role}), nil
}

func (h *PortalServiceHandler) IsCallerAdmin(
	ctx context.Context,
	_ *connect.Request[portalv1.IsCallerAdminRequest],
) (*connect.Response[portalv1.IsCallerAdminResponse], error) {
	principal, _ := auth.PrincipalFromContext(ctx)
	role, err := h.service.RoleOf(ctx, principal.Identity)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return connect.NewResponse(&portalv1.IsCallerAdminResponse{IsAdmin: role == auth.RoleAdmin}), nil
}

func (h *PortalServiceHandler) AssignCallerUserRole(
	ctx context.Context,
	req *connect.Request[portalv1.AssignCallerUserRoleRequest],
) (*connect.Response[portalv1.AssignCallerUserRoleResponse], error) {
	identity, err := callerIdentity(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if err := h.service.AssignRole(ctx, req.Msg.Identity, req.Msg.Role, identity); err != nil {
		return nil, mapServiceError(err)
	}
	log.Printf("role %s assigned to %s by %s", req.Msg.Role, req.Msg.Identity, identity)
	return connect.NewResponse(&portalv1.AssignCallerUserRoleResponse{}), nil
}
