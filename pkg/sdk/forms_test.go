package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseForm_Creating(t *testing.T) {
	form := NewCourseForm()
	assert.Equal(t, Creating, form.Mode())
	assert.Equal(t, StatusDraft, form.Fields().Status)

	_, editing := form.Original()
	assert.False(t, editing)

	_, err := form.Course()
	require.Error(t, err)
	assert.Equal(t, KindValidationFailed, KindOf(err))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	msg, ok := vErr.Field("id")
	assert.True(t, ok)
	assert.Equal(t, "id cannot be blank", msg)
	_, ok = vErr.Field("title")
	assert.True(t, ok)
	_, ok = vErr.Field("description")
	assert.False(t, ok)

	require.NoError(t, form.SetID("c1"))
	form.SetTitle("   ")
	_, err = form.Course()
	require.ErrorAs(t, err, &vErr)
	_, ok = vErr.Field("title")
	assert.True(t, ok, "whitespace-only title must be rejected")

	form.SetTitle("Client Intake")
	form.SetDescription("First steps")
	course, err := form.Course()
	require.NoError(t, err)
	assert.Equal(t, Course{ID: "c1", Status: StatusDraft, Title: "Client Intake", Description: "First steps"}, course)
}

func TestCourseForm_Editing(t *testing.T) {
	original := Course{ID: "c1", Status: StatusPublished, Title: "Old", Description: "d"}
	form := EditCourseForm(original)

	assert.Equal(t, Editing, form.Mode())
	got, editing := form.Original()
	assert.True(t, editing)
	assert.Equal(t, original, got)

	assert.ErrorIs(t, form.SetID("c2"), ErrIDLocked)
	assert.NoError(t, form.SetID("c1"))

	form.SetTitle("New")
	form.SetStatus(StatusArchived)
	course, err := form.Course()
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Equal(t, "New", course.Title)
	assert.Equal(t, StatusArchived, course.Status)
}

func TestCourseForm_InvalidStatus(t *testing.T) {
	form := NewCourseForm()
	require.NoError(t, form.SetID("c1"))
	form.SetTitle("T")
	form.SetStatus(ContentStatus("retired"))

	err := form.Validate()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	msg, ok := vErr.Field("status")
	assert.True(t, ok)
	assert.Contains(t, msg, "draft, published or archived")
}

func TestLessonForm(t *testing.T) {
	t.Run("course is required", func(t *testing.T) {
		form := NewLessonForm("")
		require.NoError(t, form.SetID("l1"))
		form.SetTitle("Intro")

		_, err := form.Lesson()
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		_, ok := vErr.Field("courseId")
		assert.True(t, ok)
	})

	t.Run("creating", func(t *testing.T) {
		form := NewLessonForm("c1")
		require.NoError(t, form.SetID("l1"))
		form.SetTitle("Intro")
		form.SetContent("Welcome")

		lesson, err := form.Lesson()
		require.NoError(t, err)
		assert.Equal(t, Lesson{ID: "l1", Status: StatusDraft, Title: "Intro", Content: "Welcome", CourseID: "c1"}, lesson)
	})

	t.Run("editing keeps pdf payload", func(t *testing.T) {
		original := Lesson{ID: "l1", Status: StatusDraft, Title: "Intro", CourseID: "c1", PDFSource: []byte("%PDF")}
		form := EditLessonForm(original)
		assert.ErrorIs(t, form.SetID("l2"), ErrIDLocked)
		form.SetCourseID("c2")

		lesson, err := form.Lesson()
		require.NoError(t, err)
		assert.Equal(t, "c2", lesson.CourseID)
		assert.Equal(t, []byte("%PDF"), lesson.PDFSource)
	})
}
