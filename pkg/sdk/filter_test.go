package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	courses := []Course{
		{ID: "c1", Status: StatusPublished, Title: "Client Intake"},
		{ID: "c2", Status: StatusDraft, Title: "Client Billing"},
		{ID: "c3", Status: StatusPublished, Title: "Ethics"},
	}

	tests := []struct {
		name    string
		expr    string
		wantIDs []string
		wantErr bool
	}{
		{name: "empty matches all", expr: "", wantIDs: []string{"c1", "c2", "c3"}},
		{name: "status", expr: `status == "published"`, wantIDs: []string{"c1", "c3"}},
		{name: "contains", expr: `title contains "Client" and status != "draft"`, wantIDs: []string{"c1"}},
		{name: "syntax error", expr: `status ==`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := []string{}
			for _, c := range FilterCourses(courses, f) {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterLessons(t *testing.T) {
	lessons := []Lesson{
		{ID: "l1", CourseID: "c1", Status: StatusPublished},
		{ID: "l2", CourseID: "c2", Status: StatusPublished},
	}

	f, err := ParseFilter(`courseId == "c2"`)
	require.NoError(t, err)
	got := FilterLessons(lessons, f)
	require.Len(t, got, 1)
	assert.Equal(t, "l2", got[0].ID)
}
