package sdk

import (
	"fmt"
	"slices"

	portalv1 "github.com/aaalawyers/trainingportal/pkg/api/portal/v1"
)

// ContentStatus is the publication state shared by courses and lessons.
// Archival is the only way content leaves the catalog; nothing is deleted.
type ContentStatus string

const (
	StatusDraft     ContentStatus = portalv1.StatusDraft
	StatusPublished ContentStatus = portalv1.StatusPublished
	StatusArchived  ContentStatus = portalv1.StatusArchived
)

// ContentStatuses lists the valid statuses in display order.
var ContentStatuses = []ContentStatus{StatusDraft, StatusPublished, StatusArchived}

// ParseContentStatus validates a status string.
func ParseContentStatus(s string) (ContentStatus, error) {
	status := ContentStatus(s)
	if !slices.Contains(ContentStatuses, status) {
		return "", fmt.Errorf("invalid content status %q (want draft, published or archived)", s)
	}
	return status, nil
}

// UserRole is the role assigned to an identity out of band.
type UserRole string

const (
	RoleAdmin UserRole = portalv1.RoleAdmin
	RoleUser  UserRole = portalv1.RoleUser
	RoleGuest UserRole = portalv1.RoleGuest
)

// ParseUserRole validates a role string.
func ParseUserRole(s string) (UserRole, error) {
	switch role := UserRole(s); role {
	case RoleAdmin, RoleUser, RoleGuest:
		return role, nil
	default:
		return "", fmt.Errorf("invalid user role %q (want admin, user or guest)", s)
	}
}

// Course is a unit of training content. ID is assigned by the caller when the
// course is created and never changes afterwards.
type Course struct {
	ID          string
	Status      ContentStatus
	Title       string
	Description string
}

// Lesson belongs to exactly one course through CourseID. The reference is not
// checked client side; a lesson whose course no longer resolves is orphaned.
type Lesson struct {
	ID        string
	Status    ContentStatus
	Title     string
	Content   string
	PDFSource []byte
	CourseID  string
}

// UserProfile is the caller's self-service profile.
type UserProfile struct {
	Name  string
	Email string
}

// TraineeProgress is the caller's enrollment and completion record. Both sets
// only grow.
type TraineeProgress struct {
	CompletedLessons []string
	EnrolledCourses  []string
}

// IsEnrolled reports whether the course is in the enrolled set.
func (p TraineeProgress) IsEnrolled(courseID string) bool {
	return slices.Contains(p.EnrolledCourses, courseID)
}

// IsCompleted reports whether the lesson is in the completed set.
func (p TraineeProgress) IsCompleted(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// Enroll adds courseID to the enrolled set. It returns false when the caller
// was already enrolled.
func (p *TraineeProgress) Enroll(courseID string) bool {
	if p.IsEnrolled(courseID) {
		return false
	}
	p.EnrolledCourses = append(p.EnrolledCourses, courseID)
	return true
}

// MarkCompleted adds lessonID to the completed set. Marking a lesson twice is
// a no-op and returns false.
func (p *TraineeProgress) MarkCompleted(lessonID string) bool {
	if p.IsCompleted(lessonID) {
		return false
	}
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
	return true
}

func courseFromProto(pb *portalv1.Course) Course {
	if pb == nil {
		return Course{}
	}
	return Course{
		ID:          pb.Id,
		Status:      ContentStatus(pb.Status),
		Title:       pb.Title,
		Description: pb.Description,
	}
}

func courseToProto(c Course) *portalv1.Course {
	return &portalv1.Course{
		Id:          c.ID,
		Status:      string(c.Status),
		Title:       c.Title,
		Description: c.Description,
	}
}

func lessonFromProto(pb *portalv1.Lesson) Lesson {
	if pb == nil {
		return Lesson{}
	}
	return Lesson{
		ID:        pb.Id,
		Status:    ContentStatus(pb.Status),
		Title:     pb.Title,
		Content:   pb.Content,
		PDFSource: pb.PdfSource,
		CourseID:  pb.CourseId,
	}
}

func lessonToProto(l Lesson) *portalv1.Lesson {
	return &portalv1.Lesson{
		Id:        l.ID,
		Status:    string(l.Status),
		Title:     l.Title,
		Content:   l.Content,
		PdfSource: l.PDFSource,
		CourseId:  l.CourseID,
	}
}

// progressFromProto de-duplicates both sets so callers can rely on set
// semantics even if the remote side repeats an entry.
func progressFromProto(pb *portalv1.TraineeProgress) TraineeProgress {
	progress := TraineeProgress{CompletedLessons: []string{}, EnrolledCourses: []string{}}
	if pb == nil {
		return progress
	}
	for _, id := range pb.EnrolledCourses {
		progress.Enroll(id)
	}
	for _, id := range pb.CompletedLessons {
		progress.MarkCompleted(id)
	}
	return progress
}

func profileFromProto(pb *portalv1.UserProfile) *UserProfile {
	if pb == nil {
		return nil
	}
	return &UserProfile{Name: pb.Name, Email: pb.Email}
}
