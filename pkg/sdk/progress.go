package sdk

// Enrollment is the per-caller, per-course enrollment state. The only
// transition is NotEnrolled to Enrolled.
type Enrollment int

const (
	NotEnrolled Enrollment = iota
	Enrolled
)

func (e Enrollment) String() string {
	if e == Enrolled {
		return "enrolled"
	}
	return "not-enrolled"
}

// EnrollmentState returns the caller's enrollment state for courseID.
func EnrollmentState(progress TraineeProgress, courseID string) Enrollment {
	if progress.IsEnrolled(courseID) {
		return Enrolled
	}
	return NotEnrolled
}

// CourseProgress summarises completion of a course's published lessons.
type CourseProgress struct {
	Completed int
	Total     int
	Percent   int
}

// ComputeCourseProgress counts completed lessons among the published ones.
// Drafts and archived lessons are excluded from both counts. A course with no
// published lessons is at 0%.
func ComputeCourseProgress(lessons []Lesson, progress TraineeProgress) CourseProgress {
	var cp CourseProgress
	for _, l := range lessons {
		if l.Status != StatusPublished {
			continue
		}
		cp.Total++
		if progress.IsCompleted(l.ID) {
			cp.Completed++
		}
	}
	cp.Percent = roundPercent(cp.Completed, cp.Total)
	return cp
}

// roundPercent rounds 100*n/d to the nearest integer, halves rounding up.
func roundPercent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return (200*n + d) / (2 * d)
}

// PublishedCourses keeps only published courses, preserving order.
func PublishedCourses(courses []Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Status == StatusPublished {
			out = append(out, c)
		}
	}
	return out
}

// PublishedLessons keeps only published lessons, preserving order.
func PublishedLessons(lessons []Lesson) []Lesson {
	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Status == StatusPublished {
			out = append(out, l)
		}
	}
	return out
}

// NextPublishedLesson returns the published lesson that follows currentID in
// lessons. ok is false when currentID is the last one or is not published.
func NextPublishedLesson(lessons []Lesson, currentID string) (Lesson, bool) {
	published := PublishedLessons(lessons)
	for i, l := range published {
		if l.ID == currentID && i+1 < len(published) {
			return published[i+1], true
		}
	}
	return Lesson{}, false
}

// CourseTitle resolves a course title for display. Orphaned lessons point at
// a course that no longer resolves; the raw id is shown instead.
func CourseTitle(courses []Course, courseID string) string {
	for _, c := range courses {
		if c.ID == courseID && c.Title != "" {
			return c.Title
		}
	}
	return courseID
}
