package sdk

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-bexpr"
)

// Filter is a compiled go-bexpr expression evaluated against course and lesson
// fields, e.g. `status == "published" and title contains "Intake"`.
// Selectors are id, status, title, description (courses) and id, status,
// title, content, courseId (lessons).
type Filter struct {
	expr      string
	evaluator *bexpr.Evaluator
}

// ParseFilter compiles expr. An empty expression matches everything.
func ParseFilter(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &Filter{}, nil
	}
	evaluator, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
	}
	return &Filter{expr: expr, evaluator: evaluator}, nil
}

func (f *Filter) String() string { return f.expr }

// MatchCourse reports whether c satisfies the filter. Evaluation errors
// (for example an unknown selector) count as no match.
func (f *Filter) MatchCourse(c Course) bool {
	return f.match(map[string]any{
		"id":          c.ID,
		"status":      string(c.Status),
		"title":       c.Title,
		"description": c.Description,
	})
}

// MatchLesson reports whether l satisfies the filter.
func (f *Filter) MatchLesson(l Lesson) bool {
	return f.match(map[string]any{
		"id":       l.ID,
		"status":   string(l.Status),
		"title":    l.Title,
		"content":  l.Content,
		"courseId": l.CourseID,
	})
}

func (f *Filter) match(fields map[string]any) bool {
	if f == nil || f.evaluator == nil {
		return true
	}
	ok, err := f.evaluator.Evaluate(fields)
	if err != nil {
		return false
	}
	return ok
}

// FilterCourses returns the courses matching f, preserving order.
func FilterCourses(courses []Course, f *Filter) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if f.MatchCourse(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilterLessons returns the lessons matching f, preserving order.
func FilterLessons(lessons []Lesson, f *Filter) []Lesson {
	out := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if f.MatchLesson(l) {
			out = append(out, l)
		}
	}
	return out
}
