package admin

import (
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
	"github.com/aaalawyers/trainingportal/pkg/sdk/gate"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestCourseInputApply(t *testing.T) {
	t.Run("create sets only changed fields", func(t *testing.T) {
		form := sdk.NewCourseForm()
		in := courseInput{id: "c1", title: "Ethics", description: "ignored", status: "published"}

		require.NoError(t, in.apply(form, changedSet("id", "title", "status")))

		fields := form.Fields()
		assert.Equal(t, "c1", fields.ID)
		assert.Equal(t, "Ethics", fields.Title)
		assert.Empty(t, fields.Description)
		assert.Equal(t, sdk.StatusPublished, fields.Status)
	})

	t.Run("update keeps untouched fields", func(t *testing.T) {
		form := sdk.EditCourseForm(sdk.Course{ID: "c1", Title: "Old", Description: "desc", Status: sdk.StatusDraft})

		require.NoError(t, courseInput{title: "New"}.apply(form, changedSet("title")))

		course, err := form.Course()
		require.NoError(t, err)
		assert.Equal(t, sdk.Course{ID: "c1", Title: "New", Description: "desc", Status: sdk.StatusDraft}, course)
	})

	t.Run("invalid status", func(t *testing.T) {
		form := sdk.NewCourseForm()
		assert.Error(t, courseInput{status: "live"}.apply(form, changedSet("status")))
	})

	t.Run("id locked while editing", func(t *testing.T) {
		form := sdk.EditCourseForm(sdk.Course{ID: "c1", Title: "t"})
		err := courseInput{id: "c2"}.apply(form, changedSet("id"))
		assert.ErrorIs(t, err, sdk.ErrIDLocked)
	})
}

func TestLessonInputApply(t *testing.T) {
	form := sdk.EditLessonForm(sdk.Lesson{ID: "l1", CourseID: "c1", Title: "Intro", PDFSource: []byte("%PDF")})

	require.NoError(t, lessonInput{content: "body", courseID: "c2"}.apply(form, changedSet("content", "course")))

	lesson, err := form.Lesson()
	require.NoError(t, err)
	assert.Equal(t, "c2", lesson.CourseID)
	assert.Equal(t, "body", lesson.Content)
	assert.Equal(t, []byte("%PDF"), lesson.PDFSource)
}

func TestLessonInputApply_MissingCourse(t *testing.T) {
	form := sdk.NewLessonForm("")
	require.NoError(t, lessonInput{id: "l1", title: "Intro"}.apply(form, changedSet("id", "title")))

	_, err := form.Lesson()
	var vErr *sdk.ValidationError
	require.ErrorAs(t, err, &vErr)
	_, ok := vErr.Field("courseId")
	assert.True(t, ok)
}

func TestGateError(t *testing.T) {
	assert.NoError(t, gateError(gate.Granted, gate.Denial{}))
	assert.ErrorIs(t, gateError(gate.Denied, gate.Denial{Fallback: "/"}), errNotAdmin)

	remote := connect.NewError(connect.CodeUnavailable, errors.New("down"))
	err := gateError(gate.Denied, gate.Denial{Err: remote})
	assert.ErrorIs(t, err, remote)
	assert.Contains(t, err.Error(), "portal server unavailable")

	assert.EqualError(t, gateError(gate.Unknown, gate.Denial{}), "timed out checking admin access")
}
