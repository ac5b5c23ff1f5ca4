package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCourseProgress(t *testing.T) {
	published := func(id string) Lesson { return Lesson{ID: id, Status: StatusPublished, CourseID: "c1"} }
	draft := func(id string) Lesson { return Lesson{ID: id, Status: StatusDraft, CourseID: "c1"} }

	tests := []struct {
		name      string
		lessons   []Lesson
		completed []string
		want      CourseProgress
	}{
		{
			name: "no lessons",
			want: CourseProgress{},
		},
		{
			name:      "zero published lessons",
			lessons:   []Lesson{draft("l1"), {ID: "l2", Status: StatusArchived}},
			completed: []string{"l1", "l2"},
			want:      CourseProgress{Completed: 0, Total: 0, Percent: 0},
		},
		{
			name:      "one of three",
			lessons:   []Lesson{published("l1"), published("l2"), published("l3")},
			completed: []string{"l2"},
			want:      CourseProgress{Completed: 1, Total: 3, Percent: 33},
		},
		{
			name:      "two of three rounds up",
			lessons:   []Lesson{published("l1"), published("l2"), published("l3")},
			completed: []string{"l1", "l2"},
			want:      CourseProgress{Completed: 2, Total: 3, Percent: 67},
		},
		{
			name:      "half rounds up",
			lessons:   []Lesson{published("l1"), published("l2"), published("l3"), published("l4"), published("l5"), published("l6"), published("l7"), published("l8")},
			completed: []string{"l1"},
			want:      CourseProgress{Completed: 1, Total: 8, Percent: 13},
		},
		{
			name:      "unpublished completions ignored",
			lessons:   []Lesson{published("l1"), draft("l2")},
			completed: []string{"l2"},
			want:      CourseProgress{Completed: 0, Total: 1, Percent: 0},
		},
		{
			name:      "all complete",
			lessons:   []Lesson{published("l1"), published("l2")},
			completed: []string{"l1", "l2", "other"},
			want:      CourseProgress{Completed: 2, Total: 2, Percent: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCourseProgress(tt.lessons, TraineeProgress{CompletedLessons: tt.completed})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTraineeProgress_MarkCompletedIdempotent(t *testing.T) {
	var p TraineeProgress
	assert.True(t, p.MarkCompleted("l1"))
	assert.False(t, p.MarkCompleted("l1"))
	assert.Equal(t, []string{"l1"}, p.CompletedLessons)

	assert.True(t, p.Enroll("c1"))
	assert.False(t, p.Enroll("c1"))
	assert.Equal(t, []string{"c1"}, p.EnrolledCourses)
}

func TestEnrollmentState(t *testing.T) {
	p := TraineeProgress{}
	assert.Equal(t, NotEnrolled, EnrollmentState(p, "c1"))

	p.Enroll("c1")
	assert.Equal(t, Enrolled, EnrollmentState(p, "c1"))
	assert.Equal(t, NotEnrolled, EnrollmentState(p, "c2"))
	assert.Equal(t, "enrolled", Enrolled.String())
}

func TestNextPublishedLesson(t *testing.T) {
	lessons := []Lesson{
		{ID: "l1", Status: StatusPublished},
		{ID: "l2", Status: StatusDraft},
		{ID: "l3", Status: StatusPublished},
	}

	next, ok := NextPublishedLesson(lessons, "l1")
	assert.True(t, ok)
	assert.Equal(t, "l3", next.ID)

	_, ok = NextPublishedLesson(lessons, "l3")
	assert.False(t, ok)

	_, ok = NextPublishedLesson(lessons, "l2")
	assert.False(t, ok)
}

func TestCourseTitle(t *testing.T) {
	courses := []Course{{ID: "c1", Title: "Client Intake"}, {ID: "c2"}}

	assert.Equal(t, "Client Intake", CourseTitle(courses, "c1"))
	assert.Equal(t, "c2", CourseTitle(courses, "c2"))
	assert.Equal(t, "gone", CourseTitle(courses, "gone"))
}

func TestPublishedCourses(t *testing.T) {
	courses := []Course{
		{ID: "c1", Status: StatusArchived},
		{ID: "c2", Status: StatusPublished},
		{ID: "c3", Status: StatusDraft},
		{ID: "c4", Status: StatusPublished},
	}

	got := PublishedCourses(courses)
	assert.Equal(t, []Course{courses[1], courses[3]}, got)
}
