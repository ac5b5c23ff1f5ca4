package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portalv1 "github.com/aaalawyers/trainingportal/pkg/api/portal/v1"
	"github.com/aaalawyers/trainingportal/pkg/api/portal/v1/portalv1connect"
	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

// mockPortalServiceHandler implements a test handler for PortalService
type mockPortalServiceHandler struct {
	portalv1connect.UnimplementedPortalServiceHandler
	getAllCoursesFunc        func(context.Context, *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error)
	getCourseFunc            func(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error)
	getLessonsByCourseFunc   func(context.Context, *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error)
	updateCourseFunc         func(context.Context, *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error)
	setContentStatusFunc     func(context.Context, *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error)
	importPdfFunc            func(context.Context, *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error)
	enrollInCourseFunc       func(context.Context, *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error)
	getTraineeProgressFunc   func(context.Context, *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error)
	getCallerUserProfileFunc func(context.Context, *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error)
	getCallerUserRoleFunc    func(context.Context, *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error)
	isCallerAdminFunc        func(context.Context, *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error)
}

func (m *mockPortalServiceHandler) GetAllCourses(ctx context.Context, req *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error) {
	if m.getAllCoursesFunc != nil {
		return m.getAllCoursesFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) GetCourse(ctx context.Context, req *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error) {
	if m.getCourseFunc != nil {
		return m.getCourseFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) GetLessonsByCourse(ctx context.Context, req *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error) {
	if m.getLessonsByCourseFunc != nil {
		return m.getLessonsByCourseFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) UpdateCourse(ctx context.Context, req *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error) {
	if m.updateCourseFunc != nil {
		return m.updateCourseFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) SetContentStatus(ctx context.Context, req *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error) {
	if m.setContentStatusFunc != nil {
		return m.setContentStatusFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) ImportPdf(ctx context.Context, req *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error) {
	if m.importPdfFunc != nil {
		return m.importPdfFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) EnrollInCourse(ctx context.Context, req *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error) {
	if m.enrollInCourseFunc != nil {
		return m.enrollInCourseFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) GetTraineeProgress(ctx context.Context, req *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error) {
	if m.getTraineeProgressFunc != nil {
		return m.getTraineeProgressFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) GetCallerUserProfile(ctx context.Context, req *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error) {
	if m.getCallerUserProfileFunc != nil {
		return m.getCallerUserProfileFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) GetCallerUserRole(ctx context.Context, req *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error) {
	if m.getCallerUserRoleFunc != nil {
		return m.getCallerUserRoleFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (m *mockPortalServiceHandler) IsCallerAdmin(ctx context.Context, req *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error) {
	if m.isCallerAdminFunc != nil {
		return m.isCallerAdminFunc(ctx, req)
	}
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newSDKClient(handler *mockPortalServiceHandler) *sdk.Client {
	mux := http.NewServeMux()
	path, h := portalv1connect.NewPortalServiceHandler(handler)
	mux.Handle(path, h)

	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		resp := recorder.Result()
		resp.Request = req
		return resp, nil
	})

	return sdk.NewClient("http://example.com", sdk.WithHTTPClient(&http.Client{Transport: transport}))
}

func TestClient_GetAllCourses(t *testing.T) {
	client := newSDKClient(&mockPortalServiceHandler{
		getAllCoursesFunc: func(context.Context, *connect.Request[portalv1.GetAllCoursesRequest]) (*connect.Response[portalv1.GetAllCoursesResponse], error) {
			return connect.NewResponse(&portalv1.GetAllCoursesResponse{
				Courses: []*portalv1.Course{
					{Id: "c1", Status: portalv1.StatusPublished, Title: "Client Intake", Description: "Basics"},
					{Id: "c2", Status: portalv1.StatusDraft, Title: "Discovery"},
				},
			}), nil
		},
	})

	courses, err := client.GetAllCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, sdk.Course{ID: "c1", Status: sdk.StatusPublished, Title: "Client Intake", Description: "Basics"}, courses[0])
	assert.Equal(t, sdk.StatusDraft, courses[1].Status)
}

func TestClient_GetCourse(t *testing.T) {
	tests := []struct {
		name     string
		mockFunc func(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error)
		wantKind sdk.ErrorKind
		wantErr  bool
	}{
		{
			name: "success",
			mockFunc: func(_ context.Context, req *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error) {
				return connect.NewResponse(&portalv1.GetCourseResponse{
					Course: &portalv1.Course{Id: req.Msg.Id, Status: portalv1.StatusPublished, Title: "Ethics"},
				}), nil
			},
		},
		{
			name: "not found",
			mockFunc: func(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error) {
				return nil, connect.NewError(connect.CodeNotFound, errors.New("course not found"))
			},
			wantErr:  true,
			wantKind: sdk.KindNotFound,
		},
		{
			name: "empty response treated as not found",
			mockFunc: func(context.Context, *connect.Request[portalv1.GetCourseRequest]) (*connect.Response[portalv1.GetCourseResponse], error) {
				return connect.NewResponse(&portalv1.GetCourseResponse{}), nil
			},
			wantErr:  true,
			wantKind: sdk.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newSDKClient(&mockPortalServiceHandler{getCourseFunc: tt.mockFunc})

			course, err := client.GetCourse(context.Background(), "c1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, sdk.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "c1", course.ID)
			assert.Equal(t, "Ethics", course.Title)
		})
	}
}

func TestClient_GetLessonsByCourse(t *testing.T) {
	client := newSDKClient(&mockPortalServiceHandler{
		getLessonsByCourseFunc: func(_ context.Context, req *connect.Request[portalv1.GetLessonsByCourseRequest]) (*connect.Response[portalv1.GetLessonsByCourseResponse], error) {
			return connect.NewResponse(&portalv1.GetLessonsByCourseResponse{
				Lessons: []*portalv1.Lesson{
					{Id: "l1", Status: portalv1.StatusPublished, Title: "One", CourseId: req.Msg.CourseId, PdfSource: []byte("%PDF")},
				},
			}), nil
		},
	})

	lessons, err := client.GetLessonsByCourse(context.Background(), "c9")
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "c9", lessons[0].CourseID)
	assert.Equal(t, []byte("%PDF"), lessons[0].PDFSource)
}

func TestClient_RemoteErrorsPassThrough(t *testing.T) {
	client := newSDKClient(&mockPortalServiceHandler{
		updateCourseFunc: func(context.Context, *connect.Request[portalv1.UpdateCourseRequest]) (*connect.Response[portalv1.UpdateCourseResponse], error) {
			return nil, connect.NewError(connect.CodePermissionDenied, errors.New("admin role required"))
		},
		enrollInCourseFunc: func(context.Context, *connect.Request[portalv1.EnrollInCourseRequest]) (*connect.Response[portalv1.EnrollInCourseResponse], error) {
			return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("sign in required"))
		},
	})

	err := client.UpdateCourse(context.Background(), sdk.Course{ID: "c1", Title: "x", Status: sdk.StatusDraft})
	require.Error(t, err)
	var connectErr *connect.Error
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, connect.CodePermissionDenied, connectErr.Code())
	assert.True(t, sdk.IsPermissionDenied(err))

	err = client.EnrollInCourse(context.Background(), "c1")
	assert.True(t, sdk.IsUnauthenticated(err))
}

func TestClient_SetContentStatus(t *testing.T) {
	var got *portalv1.SetContentStatusRequest
	client := newSDKClient(&mockPortalServiceHandler{
		setContentStatusFunc: func(_ context.Context, req *connect.Request[portalv1.SetContentStatusRequest]) (*connect.Response[portalv1.SetContentStatusResponse], error) {
			got = req.Msg
			return connect.NewResponse(&portalv1.SetContentStatusResponse{}), nil
		},
	})

	require.NoError(t, client.SetContentStatus(context.Background(), "c1", sdk.StatusArchived, true))
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ContentId)
	assert.Equal(t, portalv1.StatusArchived, got.Status)
	assert.True(t, got.IsCourse)
}

func TestClient_ImportPDF(t *testing.T) {
	client := newSDKClient(&mockPortalServiceHandler{
		importPdfFunc: func(_ context.Context, req *connect.Request[portalv1.ImportPdfRequest]) (*connect.Response[portalv1.ImportPdfResponse], error) {
			if len(req.Msg.PdfContent) == 0 {
				return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("empty document"))
			}
			return connect.NewResponse(&portalv1.ImportPdfResponse{Id: "draft-42"}), nil
		},
	})

	id, err := client.ImportPDF(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "draft-42", id)

	_, err = client.ImportPDF(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestClient_GetTraineeProgress(t *testing.T) {
	tests := []struct {
		name          string
		progress      *portalv1.TraineeProgress
		wantCompleted []string
		wantEnrolled  []string
	}{
		{
			name:          "nil progress is empty",
			progress:      nil,
			wantCompleted: []string{},
			wantEnrolled:  []string{},
		},
		{
			name: "duplicates collapse",
			progress: &portalv1.TraineeProgress{
				CompletedLessons: []string{"l1", "l2", "l1"},
				EnrolledCourses:  []string{"c1", "c1"},
			},
			wantCompleted: []string{"l1", "l2"},
			wantEnrolled:  []string{"c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newSDKClient(&mockPortalServiceHandler{
				getTraineeProgressFunc: func(context.Context, *connect.Request[portalv1.GetTraineeProgressRequest]) (*connect.Response[portalv1.GetTraineeProgressResponse], error) {
					return connect.NewResponse(&portalv1.GetTraineeProgressResponse{Progress: tt.progress}), nil
				},
			})

			progress, err := client.GetTraineeProgress(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompleted, progress.CompletedLessons)
			assert.Equal(t, tt.wantEnrolled, progress.EnrolledCourses)
		})
	}
}

func TestClient_GetCallerUserProfile(t *testing.T) {
	t.Run("absent profile", func(t *testing.T) {
		client := newSDKClient(&mockPortalServiceHandler{
			getCallerUserProfileFunc: func(context.Context, *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error) {
				return connect.NewResponse(&portalv1.GetCallerUserProfileResponse{}), nil
			},
		})

		profile, err := client.GetCallerUserProfile(context.Background())
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("saved profile", func(t *testing.T) {
		client := newSDKClient(&mockPortalServiceHandler{
			getCallerUserProfileFunc: func(context.Context, *connect.Request[portalv1.GetCallerUserProfileRequest]) (*connect.Response[portalv1.GetCallerUserProfileResponse], error) {
				return connect.NewResponse(&portalv1.GetCallerUserProfileResponse{
					Profile: &portalv1.UserProfile{Name: "Ada", Email: "ada@example.com"},
				}), nil
			},
		})

		profile, err := client.GetCallerUserProfile(context.Background())
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "Ada", profile.Name)
	})
}

func TestClient_Roles(t *testing.T) {
	client := newSDKClient(&mockPortalServiceHandler{
		getCallerUserRoleFunc: func(context.Context, *connect.Request[portalv1.GetCallerUserRoleRequest]) (*connect.Response[portalv1.GetCallerUserRoleResponse], error) {
			return connect.NewResponse(&portalv1.GetCallerUserRoleResponse{Role: portalv1.RoleAdmin}), nil
		},
		isCallerAdminFunc: func(context.Context, *connect.Request[portalv1.IsCallerAdminRequest]) (*connect.Response[portalv1.IsCallerAdminResponse], error) {
			return connect.NewResponse(&portalv1.IsCallerAdminResponse{IsAdmin: true}), nil
		},
	})

	role, err := client.GetCallerUserRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sdk.RoleAdmin, role)

	isAdmin, err := client.IsCallerAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestClient_Unimplemented(t *testing.T) {
	client := newSDKClient(&mockPortalServiceHandler{})

	_, err := client.GetLesson(context.Background(), "l1")
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnimplemented, connect.CodeOf(err))
	assert.Equal(t, sdk.KindUnknown, sdk.KindOf(err))
}
