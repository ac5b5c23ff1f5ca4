package models

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// Content status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is a known content status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Course is a persisted course. ID is chosen by the author.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID          string    `bun:"id,pk"`
	Status      string    `bun:"status,notnull,default:'draft'"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull,default:''"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Validate verifies the record is well formed before it is written.
func (c *Course) Validate() error {
	if c.ID == "" {
		return errors.New("course id is required")
	}
	if len(c.ID) > 128 {
		return errors.New("course id exceeds maximum length")
	}
	if c.Title == "" {
		return errors.New("course title is required")
	}
	if !ValidStatus(c.Status) {
		return errors.New("invalid course status")
	}
	return nil
}

// Lesson is a persisted lesson. CourseID is not a foreign key: lessons may
// outlive their course.
type Lesson struct {
	bun.BaseModel `bun:"table:lessons,alias:l"`

	ID        string    `bun:"id,pk"`
	CourseID  string    `bun:"course_id,notnull"`
	Status    string    `bun:"status,notnull,default:'draft'"`
	Title     string    `bun:"title,notnull"`
	Content   string    `bun:"content,notnull,default:''"`
	PDFSource []byte    `bun:"pdf_source"`
	Position  int64     `bun:"position,notnull,default:0"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (l *Lesson) Validate() error {
	if l.ID == "" {
		return errors.New("lesson id is required")
	}
	if len(l.ID) > 128 {
		return errors.New("lesson id exceeds maximum length")
	}
	if l.CourseID == "" {
		return errors.New("lesson course id is required")
	}
	if l.Title == "" {
		return errors.New("lesson title is required")
	}
	if !ValidStatus(l.Status) {
		return errors.New("invalid lesson status")
	}
	return nil
}
