// Package portalv1 defines the messages exchanged with the training portal
// service. Field names follow the JSON wire format used by the portal RPC
// bindings in portalv1connect.
package portalv1

// Content status values carried on the wire.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Role values carried on the wire.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

type Course struct {
	Id          string `json:"id"`
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (x *Course) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

type Lesson struct {
	Id        string `json:"id"`
	Status    string `json:"status"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	PdfSource []byte `json:"pdfSource,omitempty"`
	CourseId  string `json:"courseId"`
}

func (x *Lesson) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *Lesson) GetCourseId() string {
	if x == nil {
		return ""
	}
	return x.CourseId
}

type TraineeProgress struct {
	CompletedLessons []string `json:"completedLessons"`
	EnrolledCourses  []string `json:"enrolledCourses"`
}

type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GetAllCoursesRequest struct{}

type GetAllCoursesResponse struct {
	Courses []*Course `json:"courses"`
}

func (x *GetAllCoursesResponse) GetCourses() []*Course {
	if x == nil {
		return nil
	}
	return x.Courses
}

type GetCourseRequest struct {
	Id string `json:"id"`
}

type GetCourseResponse struct {
	Course *Course `json:"course"`
}

type GetLessonsByCourseRequest struct {
	CourseId string `json:"courseId"`
}

type GetLessonsByCourseResponse struct {
	Lessons []*Lesson `json:"lessons"`
}

func (x *GetLessonsByCourseResponse) GetLessons() []*Lesson {
	if x == nil {
		return nil
	}
	return x.Lessons
}

type GetLessonRequest struct {
	Id string `json:"id"`
}

type GetLessonResponse struct {
	Lesson *Lesson `json:"lesson"`
}

type SaveCourseRequest struct {
	Course *Course `json:"course"`
}

type SaveCourseResponse struct{}

type UpdateCourseRequest struct {
	Course *Course `json:"course"`
}

type UpdateCourseResponse struct{}

type SaveLessonRequest struct {
	Lesson *Lesson `json:"lesson"`
}

type SaveLessonResponse struct{}

type UpdateLessonRequest struct {
	Lesson *Lesson `json:"lesson"`
}

type UpdateLessonResponse struct{}

type SetContentStatusRequest struct {
	ContentId string `json:"contentId"`
	Status    string `json:"status"`
	IsCourse  bool   `json:"isCourse"`
}

type SetContentStatusResponse struct{}

type ImportPdfRequest struct {
	PdfContent []byte `json:"pdfContent"`
}

type ImportPdfResponse struct {
	Id string `json:"id"`
}

type EnrollInCourseRequest struct {
	CourseId string `json:"courseId"`
}

type EnrollInCourseResponse struct{}

type MarkLessonCompletedRequest struct {
	LessonId string `json:"lessonId"`
}

type MarkLessonCompletedResponse struct{}

type GetTraineeProgressRequest struct{}

type GetTraineeProgressResponse struct {
	Progress *TraineeProgress `json:"progress"`
}

type GetCallerUserProfileRequest struct{}

// GetCallerUserProfileResponse carries a nil Profile when the caller has not
// set one up yet.
type GetCallerUserProfileResponse struct {
	Profile *UserProfile `json:"profile,omitempty"`
}

type GetUserProfileRequest struct {
	Identity string `json:"identity"`
}

type GetUserProfileResponse struct {
	Profile *UserProfile `json:"profile,omitempty"`
}

type SaveCallerUserProfileRequest struct {
	Profile *UserProfile `json:"profile"`
}

type SaveCallerUserProfileResponse struct{}

type GetCallerUserRoleRequest struct{}

type GetCallerUserRoleResponse struct {
	Role string `json:"role"`
}

type IsCallerAdminRequest struct{}

type IsCallerAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type AssignCallerUserRoleRequest struct {
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

type AssignCallerUserRoleResponse struct{}
