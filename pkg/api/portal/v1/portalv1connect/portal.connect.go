// Package portalv1connect holds the Connect RPC bindings for the training
// portal service. Messages are encoded as JSON on the wire; see Codec.
package portalv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	portalv1 "github.com/aaalawyers/trainingportal/pkg/api/portal/v1"
)

// PortalServiceName is the fully-qualified name of the PortalService service.
const PortalServiceName = "portal.v1.PortalService"

// Procedure paths for every PortalService RPC. They are useful when mounting
// interceptors that need to switch on the called procedure.
const (
	PortalServiceGetAllCoursesProcedure         = "/portal.v1.PortalService/GetAllCourses"
	PortalServiceGetCourseProcedure             = "/portal.v1.PortalService/GetCourse"
	PortalServiceGetLessonsByCourseProcedure    = "/portal.v1.PortalService/GetLessonsByCourse"
	PortalServiceGetLessonProcedure             = "/portal.v1.PortalService/GetLesson"
	PortalServiceSaveCourseProcedure            = "/portal.v1.PortalService/SaveCourse"
	PortalServiceUpdateCourseProcedure          = "/portal.v1.PortalService/UpdateCourse"
	PortalServiceSaveLessonProcedure            = "/portal.v1.PortalService/SaveLesson"
	PortalServiceUpdateLessonProcedure          = "/portal.v1.PortalService/UpdateLesson"
	PortalServiceSetContentStatusProcedure      = "/portal.v1.PortalService/SetContentStatus"
	PortalServiceImportPdfProcedure             = "/portal.v1.PortalService/ImportPdf"
	PortalServiceEnrollInCourseProcedure        = "/portal.v1.PortalService/EnrollInCourse"
	PortalServiceMarkLessonCompletedProcedure   = "/portal.v1.PortalService/MarkLessonCompleted"
	PortalServiceGetTraineeProgressProcedure    = "/portal.v1.PortalService/GetTraineeProgress"
	PortalServiceGetCallerUserProfileProcedure  = "/portal.v1.PortalService/GetCallerUserProfile"
	PortalServiceGetUserProfileProcedure        = "/portal.v1.PortalService/GetUserProfile"
	PortalServiceSaveCallerUserProfileProcedure = "/portal.v1.PortalService/SaveCallerUserProfile"
	PortalServiceGetCallerUserRoleProcedure     = "/portal.v1.PortalService/GetCallerUserRole"
	PortalServiceIsCallerAdminProcedure         = "/portal.v1.PortalService/IsCallerAdmin"
	PortalServiceAssignCallerUserRoleProcedure  = "/portal.v1.PortalService/AssignCallerUserRole"
)

// PortalServiceClient is a client for the portal.v1.PortalService service.
type PortalServiceClient interface {
	// GetAllCourses returns every course regardless of status.
	GetAllCourses(context.Context, *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error)
	// GetCourse returns a single course or CodeNotFound.
	GetCourse(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error)
	// GetLessonsByCourse returns the lessons that belong to a course.
	GetLessonsByCourse(context.Context, *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error)
	// GetLesson returns a single lesson or CodeNotFound.
	GetLesson(context.Context, *connect.Request[portalv1.GetLessonRequest]) (*connect.Response[portalv1.GetLessonResponse], error)
	// SaveCourse creates a course. Admin only.
	SaveCourse(context.Context, *connect.Request[portalv1.SaveCourseRequest]) (*connect.Response[portalv1.SaveCourseResponse], error)
	// UpdateCourse replaces an existing course. Admin only.
	UpdateCourse(context.Context, *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error)
	// SaveLesson creates a lesson. Admin only.
	SaveLesson(context.Context, *connect.Request[portalv1.SaveLessonRequest]) (*connect.Response[portalv1.SaveLessonResponse], error)
	// UpdateLesson replaces an existing lesson. Admin only.
	UpdateLesson(context.Context, *connect.Request[portalv1.UpdateLessonRequest]) (*connect.Response[portalv1.UpdateLessonResponse], error)
	// SetContentStatus changes the status of a course or lesson. Admin only.
	SetContentStatus(context.Context, *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error)
	// ImportPdf stores a PDF and creates a draft course and lesson for it. Admin only.
	ImportPdf(context.Context, *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error)
	// EnrollInCourse enrolls the caller in a course.
	EnrollInCourse(context.Context, *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error)
	// MarkLessonCompleted records a completed lesson for the caller.
	MarkLessonCompleted(context.Context, *connect.Request[portalv1.MarkLessonCompletedRequest]) (*connect.Response[portalv1.MarkLessonCompletedResponse], error)
	// GetTraineeProgress returns the caller's enrollments and completions.
	GetTraineeProgress(context.Context, *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error)
	// GetCallerUserProfile returns the caller's profile, if one was saved.
	GetCallerUserProfile(context.Context, *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error)
	// GetUserProfile returns the profile of another identity.
	GetUserProfile(context.Context, *connect.Request[portalv1.GetUserProfileRequest]) (*connect.Response[portalv1.GetUserProfileResponse], error)
	// SaveCallerUserProfile replaces the caller's profile.
	SaveCallerUserProfile(context.Context, *connect.Request[portalv1.SaveCallerUserProfileRequest]) (*connect.Response[portalv1.SaveCallerUserProfileResponse], error)
	// GetCallerUserRole returns the caller's role.
	GetCallerUserRole(context.Context, *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error)
	// IsCallerAdmin reports whether the caller holds the admin role.
	IsCallerAdmin(context.Context, *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error)
	// AssignCallerUserRole assigns a role to an identity. Privileged.
	AssignCallerUserRole(context.Context, *connect.Request[portalv1.AssignCallerUserRoleRequest]) (*connect.Response[portalv1.AssignCallerUserRoleResponse], error)
}

// NewPortalServiceClient constructs a client for the portal.v1.PortalService
// service. The JSON codec is installed ahead of any caller supplied options.
//
// The URL supplied here should be the base URL for the service
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewPortalServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PortalServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &portalServiceClient{
		getAllCourses: connect.NewClient[portalv1.GetAllCoursesRequest, portalv1.GetAllCoursesResponse](
			httpClient,
			baseURL+PortalServiceGetAllCoursesProcedure,
			opts...,
		),
		getCourse: connect.NewClient[portalv1.GetCourseRequest, portalv1.GetCourseResponse](
			httpClient,
			baseURL+PortalServiceGetCourseProcedure,
			opts...,
		),
		getLessonsByCourse: connect.NewClient[portalv1.GetLessonsByCourseRequest, portalv1.GetLessonsByCourseResponse](
			httpClient,
			baseURL+PortalServiceGetLessonsByCourseProcedure,
			opts...,
		),
		getLesson: connect.NewClient[portalv1.GetLessonRequest, portalv1.GetLessonResponse](
			httpClient,
			baseURL+PortalServiceGetLessonProcedure,
			opts...,
		),
		saveCourse: connect.NewClient[portalv1.SaveCourseRequest, portalv1.SaveCourseResponse](
			httpClient,
			baseURL+PortalServiceSaveCourseProcedure,
			opts...,
		),
		updateCourse: connect.NewClient[portalv1.UpdateCourseRequest, portalv1.UpdateCourseResponse](
			httpClient,
			baseURL+PortalServiceUpdateCourseProcedure,
			opts...,
		),
		saveLesson: connect.NewClient[portalv1.SaveLessonRequest, portalv1.SaveLessonResponse](
			httpClient,
			baseURL+PortalServiceSaveLessonProcedure,
			opts...,
		),
		updateLesson: connect.NewClient[portalv1.UpdateLessonRequest, portalv1.UpdateLessonResponse](
			httpClient,
			baseURL+PortalServiceUpdateLessonProcedure,
			opts...,
		),
		setContentStatus: connect.NewClient[portalv1.SetContentStatusRequest, portalv1.SetContentStatusResponse](
			httpClient,
			baseURL+PortalServiceSetContentStatusProcedure,
			opts...,
		),
		importPdf: connect.NewClient[portalv1.ImportPdfRequest, portalv1.ImportPdfResponse](
			httpClient,
			baseURL+PortalServiceImportPdfProcedure,
			opts...,
		),
		enrollInCourse: connect.NewClient[portalv1.EnrollInCourseRequest, portalv1.EnrollInCourseResponse](
			httpClient,
			baseURL+PortalServiceEnrollInCourseProcedure,
			opts...,
		),
		markLessonCompleted: connect.NewClient[portalv1.MarkLessonCompletedRequest, portalv1.MarkLessonCompletedResponse](
			httpClient,
			baseURL+PortalServiceMarkLessonCompletedProcedure,
			opts...,
		),
		getTraineeProgress: connect.NewClient[portalv1.GetTraineeProgressRequest, portalv1.GetTraineeProgressResponse](
			httpClient,
			baseURL+PortalServiceGetTraineeProgressProcedure,
			opts...,
		),
		getCallerUserProfile: connect.NewClient[portalv1.GetCallerUserProfileRequest, portalv1.GetCallerUserProfileResponse](
			httpClient,
			baseURL+PortalServiceGetCallerUserProfileProcedure,
			opts...,
		),
		getUserProfile: connect.NewClient[portalv1.GetUserProfileRequest, portalv1.GetUserProfileResponse](
			httpClient,
			baseURL+PortalServiceGetUserProfileProcedure,
			opts...,
		),
		saveCallerUserProfile: connect.NewClient[portalv1.SaveCallerUserProfileRequest, portalv1.SaveCallerUserProfileResponse](
			httpClient,
			baseURL+PortalServiceSaveCallerUserProfileProcedure,
			opts...,
		),
		getCallerUserRole: connect.NewClient[portalv1.GetCallerUserRoleRequest, portalv1.GetCallerUserRoleResponse](
			httpClient,
			baseURL+PortalServiceGetCallerUserRoleProcedure,
			opts...,
		),
		isCallerAdmin: connect.NewClient[portalv1.IsCallerAdminRequest, portalv1.IsCallerAdminResponse](
			httpClient,
			baseURL+PortalServiceIsCallerAdminProcedure,
			opts...,
		),
		assignCallerUserRole: connect.NewClient[portalv1.AssignCallerUserRoleRequest, portalv1.AssignCallerUserRoleResponse](
			httpClient,
			baseURL+PortalServiceAssignCallerUserRoleProcedure,
			opts...,
		),
	}
}

// portalServiceClient implements PortalServiceClient.
type portalServiceClient struct {
	getAllCourses         *connect.Client[portalv1.GetAllCoursesRequest, portalv1.GetAllCoursesResponse]
	getCourse             *connect.Client[portalv1.GetCourseRequest, portalv1.GetCourseResponse]
	getLessonsByCourse    *connect.Client[portalv1.GetLessonsByCourseRequest, portalv1.GetLessonsByCourseResponse]
	getLesson             *connect.Client[portalv1.GetLessonRequest, portalv1.GetLessonResponse]
	saveCourse            *connect.Client[portalv1.SaveCourseRequest, portalv1.SaveCourseResponse]
	updateCourse          *connect.Client[portalv1.UpdateCourseRequest, portalv1.UpdateCourseResponse]
	saveLesson            *connect.Client[portalv1.SaveLessonRequest, portalv1.SaveLessonResponse]
	updateLesson          *connect.Client[portalv1.UpdateLessonRequest, portalv1.UpdateLessonResponse]
	setContentStatus      *connect.Client[portalv1.SetContentStatusRequest, portalv1.SetContentStatusResponse]
	importPdf             *connect.Client[portalv1.ImportPdfRequest, portalv1.ImportPdfResponse]
	enrollInCourse        *connect.Client[portalv1.EnrollInCourseRequest, portalv1.EnrollInCourseResponse]
	markLessonCompleted   *connect.Client[portalv1.MarkLessonCompletedRequest, portalv1.MarkLessonCompletedResponse]
	getTraineeProgress    *connect.Client[portalv1.GetTraineeProgressRequest, portalv1.GetTraineeProgressResponse]
	getCallerUserProfile  *connect.Client[portalv1.GetCallerUserProfileRequest, portalv1.GetCallerUserProfileResponse]
	getUserProfile        *connect.Client[portalv1.GetUserProfileRequest, portalv1.GetUserProfileResponse]
	saveCallerUserProfile *connect.Client[portalv1.SaveCallerUserProfileRequest, portalv1.SaveCallerUserProfileResponse]
	getCallerUserRole     *connect.Client[portalv1.GetCallerUserRoleRequest, portalv1.GetCallerUserRoleResponse]
	isCallerAdmin         *connect.Client[portalv1.IsCallerAdminRequest, portalv1.IsCallerAdminResponse]
	assignCallerUserRole  *connect.Client[portalv1.AssignCallerUserRoleRequest, portalv1.AssignCallerUserRoleResponse]
}

// GetAllCourses calls portal.v1.PortalService.GetAllCourses.
func (c *portalServiceClient) GetAllCourses(ctx context.Context, req *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error) {
	return c.getAllCourses.CallUnary(ctx, req)
}

// GetCourse calls portal.v1.PortalService.GetCourse.
func (c *portalServiceClient) GetCourse(ctx context.Context, req *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error) {
	return c.getCourse.CallUnary(ctx, req)
}

// GetLessonsByCourse calls portal.v1.PortalService.GetLessonsByCourse.
func (c *portalServiceClient) GetLessonsByCourse(ctx context.Context, req *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error) {
	return c.getLessonsByCourse.CallUnary(ctx, req)
}

// GetLesson calls portal.v1.PortalService.GetLesson.
func (c *portalServiceClient) GetLesson(ctx context.Context, req *connect.Request[portalv1.GetLessonRequest]) (*connect.Response[portalv1.GetLessonResponse], error) {
	return c.getLesson.CallUnary(ctx, req)
}

// SaveCourse calls portal.v1.PortalService.SaveCourse.
func (c *portalServiceClient) SaveCourse(ctx context.Context, req *connect.Request[portalv1.SaveCourseRequest]) (*connect.Response[portalv1.SaveCourseResponse], error) {
	return c.saveCourse.CallUnary(ctx, req)
}

// UpdateCourse calls portal.v1.PortalService.UpdateCourse.
func (c *portalServiceClient) UpdateCourse(ctx context.Context, req *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error) {
	return c.updateCourse.CallUnary(ctx, req)
}

// SaveLesson calls portal.v1.PortalService.SaveLesson.
func (c *portalServiceClient) SaveLesson(ctx context.Context, req *connect.Request[portalv1.SaveLessonRequest]) (*connect.Response[portalv1.SaveLessonResponse], error) {
	return c.saveLesson.CallUnary(ctx, req)
}

// UpdateLesson calls portal.v1.PortalService.UpdateLesson.
func (c *portalServiceClient) UpdateLesson(ctx context.Context, req *connect.Request[portalv1.UpdateLessonRequest]) (*connect.Response[portalv1.UpdateLessonResponse], error) {
	return c.updateLesson.CallUnary(ctx, req)
}

// SetContentStatus calls portal.v1.PortalService.SetContentStatus.
func (c *portalServiceClient) SetContentStatus(ctx context.Context, req *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error) {
	return c.setContentStatus.CallUnary(ctx, req)
}

// ImportPdf calls portal.v1.PortalService.ImportPdf.
func (c *portalServiceClient) ImportPdf(ctx context.Context, req *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error) {
	return c.importPdf.CallUnary(ctx, req)
}

// EnrollInCourse calls portal.v1.PortalService.EnrollInCourse.
func (c *portalServiceClient) EnrollInCourse(ctx context.Context, req *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error) {
	return c.enrollInCourse.CallUnary(ctx, req)
}

// MarkLessonCompleted calls portal.v1.PortalService.MarkLessonCompleted.
func (c *portalServiceClient) MarkLessonCompleted(ctx context.Context, req *connect.Request[portalv1.MarkLessonCompletedRequest]) (*connect.Response[portalv1.MarkLessonCompletedResponse], error) {
	return c.markLessonCompleted.CallUnary(ctx, req)
}

// GetTraineeProgress calls portal.v1.PortalService.GetTraineeProgress.
func (c *portalServiceClient) GetTraineeProgress(ctx context.Context, req *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error) {
	return c.getTraineeProgress.CallUnary(ctx, req)
}

// GetCallerUserProfile calls portal.v1.PortalService.GetCallerUserProfile.
func (c *portalServiceClient) GetCallerUserProfile(ctx context.Context, req *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error) {
	return c.getCallerUserProfile.CallUnary(ctx, req)
}

// GetUserProfile calls portal.v1.PortalService.GetUserProfile.
func (c *portalServiceClient) GetUserProfile(ctx context.Context, req *connect.Request[portalv1.GetUserProfileRequest]) (*connect.Response[portalv1.GetUserProfileResponse], error) {
	return c.getUserProfile.CallUnary(ctx, req)
}

// SaveCallerUserProfile calls portal.v1.PortalService.SaveCallerUserProfile.
func (c *portalServiceClient) SaveCallerUserProfile(ctx context.Context, req *connect.Request[portalv1.SaveCallerUserProfileRequest]) (*connect.Response[portalv1.SaveCallerUserProfileResponse], error) {
	return c.saveCallerUserProfile.CallUnary(ctx, req)
}

// GetCallerUserRole calls portal.v1.PortalService.GetCallerUserRole.
func (c *portalServiceClient) GetCallerUserRole(ctx context.Context, req *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error) {
	return c.getCallerUserRole.CallUnary(ctx, req)
}

// IsCallerAdmin calls portal.v1.PortalService.IsCallerAdmin.
func (c *portalServiceClient) IsCallerAdmin(ctx context.Context, req *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error) {
	return c.isCallerAdmin.CallUnary(ctx, req)
}

// AssignCallerUserRole calls portal.v1.PortalService.AssignCallerUserRole.
func (c *portalServiceClient) AssignCallerUserRole(ctx context.Context, req *connect.Request[portalv1.AssignCallerUserRoleRequest]) (*connect.Response[portalv1.AssignCallerUserRoleResponse], error) {
	return c.assignCallerUserRole.CallUnary(ctx, req)
}

// PortalServiceHandler is an implementation of the portal.v1.PortalService service.
type PortalServiceHandler interface {
	GetAllCourses(context.Context, *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error)
	GetCourse(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error)
	GetLessonsByCourse(context.Context, *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error)
	GetLesson(context.Context, *connect.Request[portalv1.GetLessonRequest]) (*connect.Response[portalv1.GetLessonResponse], error)
	SaveCourse(context.Context, *connect.Request[portalv1.SaveCourseRequest]) (*connect.Response[portalv1.SaveCourseResponse], error)
	UpdateCourse(context.Context, *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error)
	SaveLesson(context.Context, *connect.Request[portalv1.SaveLessonRequest]) (*connect.Response[portalv1.SaveLessonResponse], error)
	UpdateLesson(context.Context, *connect.Request[portalv1.UpdateLessonRequest]) (*connect.Response[portalv1.UpdateLessonResponse], error)
	SetContentStatus(context.Context, *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error)
	ImportPdf(context.Context, *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error)
	EnrollInCourse(context.Context, *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error)
	MarkLessonCompleted(context.Context, *connect.Request[portalv1.MarkLessonCompletedRequest]) (*connect.Response[portalv1.MarkLessonCompletedResponse], error)
	GetTraineeProgress(context.Context, *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error)
	GetCallerUserProfile(context.Context, *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error)
	GetUserProfile(context.Context, *connect.Request[portalv1.GetUserProfileRequest]) (*connect.Response[portalv1.GetUserProfileResponse], error)
	SaveCallerUserProfile(context.Context, *connect.Request[portalv1.SaveCallerUserProfileRequest]) (*connect.Response[portalv1.SaveCallerUserProfileResponse], error)
	GetCallerUserRole(context.Context, *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error)
	IsCallerAdmin(context.Context, *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error)
	AssignCallerUserRole(context.Context, *connect.Request[portalv1.AssignCallerUserRoleRequest]) (*connect.Response[portalv1.AssignCallerUserRoleResponse], error)
}

// NewPortalServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewPortalServiceHandler(svc PortalServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	getAllCoursesHandler := connect.NewUnaryHandler(
		PortalServiceGetAllCoursesProcedure,
		svc.GetAllCourses,
		opts...,
	)
	getCourseHandler := connect.NewUnaryHandler(
		PortalServiceGetCourseProcedure,
		svc.GetCourse,
		opts...,
	)
	getLessonsByCourseHandler := connect.NewUnaryHandler(
		PortalServiceGetLessonsByCourseProcedure,
		svc.GetLessonsByCourse,
		opts...,
	)
	getLessonHandler := connect.NewUnaryHandler(
		PortalServiceGetLessonProcedure,
		svc.GetLesson,
		opts...,
	)
	saveCourseHandler := connect.NewUnaryHandler(
		PortalServiceSaveCourseProcedure,
		svc.SaveCourse,
		opts...,
	)
	updateCourseHandler := connect.NewUnaryHandler(
		PortalServiceUpdateCourseProcedure,
		svc.UpdateCourse,
		opts...,
	)
	saveLessonHandler := connect.NewUnaryHandler(
		PortalServiceSaveLessonProcedure,
		svc.SaveLesson,
		opts...,
	)
	updateLessonHandler := connect.NewUnaryHandler(
		PortalServiceUpdateLessonProcedure,
		svc.UpdateLesson,
		opts...,
	)
	setContentStatusHandler := connect.NewUnaryHandler(
		PortalServiceSetContentStatusProcedure,
		svc.SetContentStatus,
		opts...,
	)
	importPdfHandler := connect.NewUnaryHandler(
		PortalServiceImportPdfProcedure,
		svc.ImportPdf,
		opts...,
	)
	enrollInCourseHandler := connect.NewUnaryHandler(
		PortalServiceEnrollInCourseProcedure,
		svc.EnrollInCourse,
		opts...,
	)
	markLessonCompletedHandler := connect.NewUnaryHandler(
		PortalServiceMarkLessonCompletedProcedure,
		svc.MarkLessonCompleted,
		opts...,
	)
	getTraineeProgressHandler := connect.NewUnaryHandler(
		PortalServiceGetTraineeProgressProcedure,
		svc.GetTraineeProgress,
		opts...,
	)
	getCallerUserProfileHandler := connect.NewUnaryHandler(
		PortalServiceGetCallerUserProfileProcedure,
		svc.GetCallerUserProfile,
		opts...,
	)
	getUserProfileHandler := connect.NewUnaryHandler(
		PortalServiceGetUserProfileProcedure,
		svc.GetUserProfile,
		opts...,
	)
	saveCallerUserProfileHandler := connect.NewUnaryHandler(
		PortalServiceSaveCallerUserProfileProcedure,
		svc.SaveCallerUserProfile,
		opts...,
	)
	getCallerUserRoleHandler := connect.NewUnaryHandler(
		PortalServiceGetCallerUserRoleProcedure,
		svc.GetCallerUserRole,
		opts...,
	)
	isCallerAdminHandler := connect.NewUnaryHandler(
		PortalServiceIsCallerAdminProcedure,
		svc.IsCallerAdmin,
		opts...,
	)
	assignCallerUserRoleHandler := connect.NewUnaryHandler(
		PortalServiceAssignCallerUserRoleProcedure,
		svc.AssignCallerUserRole,
		opts...,
	)
	return "/portal.v1.PortalService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PortalServiceGetAllCoursesProcedure:
			getAllCoursesHandler.ServeHTTP(w, r)
		case PortalServiceGetCourseProcedure:
			getCourseHandler.ServeHTTP(w, r)
		case PortalServiceGetLessonsByCourseProcedure:
			getLessonsByCourseHandler.ServeHTTP(w, r)
		case PortalServiceGetLessonProcedure:
			getLessonHandler.ServeHTTP(w, r)
		case PortalServiceSaveCourseProcedure:
			saveCourseHandler.ServeHTTP(w, r)
		case PortalServiceUpdateCourseProcedure:
			updateCourseHandler.ServeHTTP(w, r)
		case PortalServiceSaveLessonProcedure:
			saveLessonHandler.ServeHTTP(w, r)
		case PortalServiceUpdateLessonProcedure:
			updateLessonHandler.ServeHTTP(w, r)
		case PortalServiceSetContentStatusProcedure:
			setContentStatusHandler.ServeHTTP(w, r)
		case PortalServiceImportPdfProcedure:
			importPdfHandler.ServeHTTP(w, r)
		case PortalServiceEnrollInCourseProcedure:
			enrollInCourseHandler.ServeHTTP(w, r)
		case PortalServiceMarkLessonCompletedProcedure:
			markLessonCompletedHandler.ServeHTTP(w, r)
		case PortalServiceGetTraineeProgressProcedure:
			getTraineeProgressHandler.ServeHTTP(w, r)
		case PortalServiceGetCallerUserProfileProcedure:
			getCallerUserProfileHandler.ServeHTTP(w, r)
		case PortalServiceGetUserProfileProcedure:
			getUserProfileHandler.ServeHTTP(w, r)
		case PortalServiceSaveCallerUserProfileProcedure:
			saveCallerUserProfileHandler.ServeHTTP(w, r)
		case PortalServiceGetCallerUserRoleProcedure:
			getCallerUserRoleHandler.ServeHTTP(w, r)
		case PortalServiceIsCallerAdminProcedure:
			isCallerAdminHandler.ServeHTTP(w, r)
		case PortalServiceAssignCallerUserRoleProcedure:
			assignCallerUserRoleHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedPortalServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPortalServiceHandler struct{}

func (UnimplementedPortalServiceHandler) GetAllCourses(context.Context, *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetAllCourses is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetCourse(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetCourse is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetLessonsByCourse(context.Context, *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetLessonsByCourse is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetLesson(context.Context, *connect.Request[portalv1.GetLessonRequest]) (*connect.Response[portalv1.GetLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetLesson is not implemented"))
}

func (UnimplementedPortalServiceHandler) SaveCourse(context.Context, *connect.Request[portalv1.SaveCourseRequest]) (*connect.Response[portalv1.SaveCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.SaveCourse is not implemented"))
}

func (UnimplementedPortalServiceHandler) UpdateCourse(context.Context, *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.UpdateCourse is not implemented"))
}

func (UnimplementedPortalServiceHandler) SaveLesson(context.Context, *connect.Request[portalv1.SaveLessonRequest]) (*connect.Response[portalv1.SaveLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.SaveLesson is not implemented"))
}

func (UnimplementedPortalServiceHandler) UpdateLesson(context.Context, *connect.Request[portalv1.UpdateLessonRequest]) (*connect.Response[portalv1.UpdateLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.UpdateLesson is not implemented"))
}

func (UnimplementedPortalServiceHandler) SetContentStatus(context.Context, *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.SetContentStatus is not implemented"))
}

func (UnimplementedPortalServiceHandler) ImportPdf(context.Context, *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.ImportPdf is not implemented"))
}

func (UnimplementedPortalServiceHandler) EnrollInCourse(context.Context, *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.EnrollInCourse is not implemented"))
}

func (UnimplementedPortalServiceHandler) MarkLessonCompleted(context.Context, *connect.Request[portalv1.MarkLessonCompletedRequest]) (*connect.Response[portalv1.MarkLessonCompletedResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.MarkLessonCompleted is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetTraineeProgress(context.Context, *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetTraineeProgress is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetCallerUserProfile(context.Context, *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetCallerUserProfile is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetUserProfile(context.Context, *connect.Request[portalv1.GetUserProfileRequest]) (*connect.Response[portalv1.GetUserProfileResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetUserProfile is not implemented"))
}

func (UnimplementedPortalServiceHandler) SaveCallerUserProfile(context.Context, *connect.Request[portalv1.SaveCallerUserProfileRequest]) (*connect.Response[portalv1.SaveCallerUserProfileResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.SaveCallerUserProfile is not implemented"))
}

func (UnimplementedPortalServiceHandler) GetCallerUserRole(context.Context, *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.GetCallerUserRole is not implemented"))
}

func (UnimplementedPortalServiceHandler) IsCallerAdmin(context.Context, *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.IsCallerAdmin is not implemented"))
}

func (UnimplementedPortalServiceHandler) AssignCallerUserRole(context.Context, *connect.Request[portalv1.AssignCallerUserRoleRequest]) (*connect.Response[portalv1.AssignCallerUserRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("portal.v1.PortalService.AssignCallerUserRole is not implemented"))
}
