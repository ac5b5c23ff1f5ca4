package server

import (
	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/db/models"
	portalv1 "github.com/aaalawyers/trainingportal/pkg/api/portal/v1"
)

func courseToProto(c *models.Course) *portalv1.Course {
	return &portalv1.Course{
		Id:          c.ID,
		Status:      c.Status,
		Title:       c.Title,
		Description: c.Description,
	}
}

func courseFromProto(c *portalv1.Course) *models.Course {
	return &models.Course{
		ID:          c.Id,
		Status:      c.Status,
		Title:       c.Title,
		Description: c.Description,
	}
}

func lessonToProto(l *models.Lesson) *portalv1.Lesson {
	return &portalv1.Lesson{
		Id:        l.ID,
		Status:    l.Status,
		Title:     l.Title,
		Content:   l.Content,
		PdfSource: l.PDFSource,
		CourseId:  l.CourseID,
	}
}

func lessonFromProto(l *portalv1.Lesson) *models.Lesson {
	return &models.Lesson{
		ID:        l.Id,
		CourseID:  l.CourseId,
		Status:    l.Status,
		Title:     l.Title,
		Content:   l.Content,
		PDFSource: l.PdfSource,
	}
}

func profileToProto(p *models.Profile) *portalv1.UserProfile {
	if p == nil {
		return nil
	}
	return &portalv1.UserProfile{Name: p.Name, Email: p.Email}
}
