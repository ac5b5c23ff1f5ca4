package server

import (
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/repository"
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/services/catalog"
)

var (
	// ErrIdentityRequired is returned when a caller-scoped RPC runs without a principal.
	ErrIdentityRequired = errors.New("caller identity is required")

	// ErrCourseRequired is returned when a course write carries no course.
	ErrCourseRequired = errors.New("course is required")

	// ErrLessonRequired is returned when a lesson write carries no lesson.
	ErrLessonRequired = errors.New("lesson is required")

	// ErrForeignProfile is returned when a caller reads a profile it may not see.
	ErrForeignProfile = errors.New("reading another user's profile requires the admin role")

	// ErrProfileRequired is returned when a profile save carries no profile.
	ErrProfileRequired = errors.New("profile is required")
)

// mapServiceError translates service errors into Connect codes.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, repository.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, catalog.ErrInvalidArgument),
		errors.Is(err, ErrCourseRequired),
		errors.Is(err, ErrLessonRequired),
		errors.Is(err, ErrProfileRequired):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrIdentityRequired):
		return connect.NewError(connect.CodeUnauthenticated, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return connect.NewError(connect.CodeNotFound, err)
	case strings.Contains(msg, "already exists"):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
