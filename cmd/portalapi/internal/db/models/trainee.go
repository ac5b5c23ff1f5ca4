package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Enrollment records that an identity enrolled in a course.
type Enrollment struct {
	bun.BaseModel `bun:"table:enrollments,alias:e"`

	Identity  string    `bun:"identity,pk"`
	CourseID  string    `bun:"course_id,pk"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Completion records that an identity completed a lesson.
type Completion struct {
	bun.BaseModel `bun:"table:completions,alias:cp"`

	Identity  string    `bun:"identity,pk"`
	LessonID  string    `bun:"lesson_id,pk"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Profile is the self-service profile of an identity.
type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	Identity  string    `bun:"identity,pk"`
	Name      string    `bun:"name,notnull,default:''"`
	Email     string    `bun:"email,notnull,default:''"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// RoleAssignment maps an identity to its role.
type RoleAssignment struct {
	bun.BaseModel `bun:"table:role_assignments,alias:ra"`

	Identity   string    `bun:"identity,pk"`
	Role       string    `bun:"role,notnull"`
	AssignedBy string    `bun:"assigned_by,notnull,default:''"`
	AssignedAt time.Time `bun:"assigned_at,notnull,default:current_timestamp"`
}
