package catalog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/auth"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/bunx"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/migrations"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := bunx.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bunx.Close(db) })

	ctx := context.Background()
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	svc, err := NewService(db, 0)
	require.NoError(t, err)
	return svc
}

func TestService_Content(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("invalid course", func(t *testing.T) {
		err := svc.CreateCourse(ctx, &models.Course{ID: "c1", Status: models.StatusDraft})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("duplicate course", func(t *testing.T) {
		require.NoError(t, svc.CreateCourse(ctx, &models.Course{ID: "c1", Title: "One", Status: models.StatusDraft}))
		err := svc.CreateCourse(ctx, &models.Course{ID: "c1", Title: "One", Status: models.StatusDraft})
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	})

	t.Run("lesson without course is accepted", func(t *testing.T) {
		require.NoError(t, svc.CreateLesson(ctx, &models.Lesson{ID: "orphan", CourseID: "gone", Title: "Orphan", Status: models.StatusDraft}))
		lessons, err := svc.ListLessons(ctx, "gone")
		require.NoError(t, err)
		assert.Len(t, lessons, 1)
	})

	t.Run("status split by kind", func(t *testing.T) {
		require.NoError(t, svc.SetContentStatus(ctx, "c1", models.StatusPublished, true))
		err := svc.SetContentStatus(ctx, "c1", models.StatusPublished, false)
		assert.ErrorIs(t, err, repository.ErrNotFound, "c1 is not a lesson")
		assert.ErrorIs(t, svc.SetContentStatus(ctx, "c1", "live", true), ErrInvalidArgument)
	})

	t.Run("empty id lookups", func(t *testing.T) {
		_, err := svc.GetCourse(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = svc.GetLesson(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestService_ImportPDF(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ImportPDF(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	id, err := svc.ImportPDF(ctx, []byte("%PDF-1.7 body"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "pdf-"))

	course, err := svc.GetCourse(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, course.Status)

	lesson, err := svc.GetLesson(ctx, id+"-lesson")
	require.NoError(t, err)
	assert.Equal(t, id, lesson.CourseID)
	assert.Equal(t, models.StatusDraft, lesson.Status)
	assert.Equal(t, []byte("%PDF-1.7 body"), lesson.PDFSource)
}

func TestService_Progress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateCourse(ctx, &models.Course{ID: "c1", Title: "One", Status: models.StatusPublished}))
	require.NoError(t, svc.CreateLesson(ctx, &models.Lesson{ID: "l1", CourseID: "c1", Title: "L1", Status: models.StatusPublished}))

	assert.ErrorIs(t, svc.Enroll(ctx, "user:alice", "missing"), repository.ErrNotFound)
	assert.ErrorIs(t, svc.CompleteLesson(ctx, "user:alice", "missing"), repository.ErrNotFound)

	require.NoError(t, svc.Enroll(ctx, "user:alice", "c1"))
	require.NoError(t, svc.CompleteLesson(ctx, "user:alice", "l1"))
	require.NoError(t, svc.CompleteLesson(ctx, "user:alice", "l1"))

	enrolled, completed, err := svc.Progress(ctx, "user:alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, enrolled)
	assert.Equal(t, []string{"l1"}, completed, "repeated completion is a no-op")
}

func TestService_Profile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Profile(ctx, "user:alice")
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, svc.SaveProfile(ctx, "user:alice", "Alice", "alice@example.com"))
	profile, err = svc.Profile(ctx, "user:alice")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alice", profile.Name)
}

func TestService_Roles(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	role, err := svc.RoleOf(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleGuest, role)

	role, err = svc.RoleOf(ctx, "user:alice")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, role)

	// the cached answer is dropped on assignment
	require.NoError(t, svc.AssignRole(ctx, "user:alice", auth.RoleAdmin, ""))
	role, err = svc.RoleOf(ctx, "user:alice")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)

	assignments, err := svc.ListRoleAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "user:alice", assignments[0].Identity)

	assert.ErrorIs(t, svc.AssignRole(ctx, "user:alice", "root", ""), ErrInvalidArgument)
	assert.ErrorIs(t, svc.AssignRole(ctx, "", auth.RoleUser, ""), ErrInvalidArgument)
}

func TestService_PurgeRoleCache(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	role, err := svc.RoleOf(ctx, "user:bob")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, role)

	// written behind the service's back
	require.NoError(t, svc.roles.Assign(ctx, &models.RoleAssignment{Identity: "user:bob", Role: auth.RoleAdmin}))
	role, err = svc.RoleOf(ctx, "user:bob")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, role)

	svc.PurgeRoleCache()
	role, err = svc.RoleOf(ctx, "user:bob")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)
}
