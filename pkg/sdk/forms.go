package sdk

import "errors"

// FormMode tags an admin form as creating new content or editing existing
// content. The mode decides which port write a submission routes to.
type FormMode int

const (
	Creating FormMode = iota
	Editing
)

func (m FormMode) String() string {
	if m == Editing {
		return "editing"
	}
	return "creating"
}

// ErrIDLocked is returned when changing the ID of content being edited.
var ErrIDLocked = errors.New("content id cannot be changed while editing")

// CourseFields is the typed field set of the course form.
type CourseFields struct {
	ID          string        `form:"id" validate:"notblank"`
	Title       string        `form:"title" validate:"notblank"`
	Description string        `form:"description"`
	Status      ContentStatus `form:"status" validate:"content_status"`
}

// CourseForm is either Creating (zero original) or Editing an existing course.
type CourseForm struct {
	mode     FormMode
	original Course
	fields   CourseFields
}

// NewCourseForm returns an empty form in Creating mode. New content starts as a draft.
func NewCourseForm() *CourseForm {
	return &CourseForm{
		mode:   Creating,
		fields: CourseFields{Status: StatusDraft},
	}
}

// EditCourseForm returns a form in Editing mode prefilled from c.
func EditCourseForm(c Course) *CourseForm {
	return &CourseForm{
		mode:     Editing,
		original: c,
		fields: CourseFields{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Status:      c.Status,
		},
	}
}

func (f *CourseForm) Mode() FormMode { return f.mode }

// Original returns the course being edited; ok is false in Creating mode.
func (f *CourseForm) Original() (Course, bool) {
	return f.original, f.mode == Editing
}

func (f *CourseForm) Fields() CourseFields { return f.fields }

// SetID sets the ID. IDs are immutable once content exists.
func (f *CourseForm) SetID(id string) error {
	if f.mode == Editing && id != f.original.ID {
		return ErrIDLocked
	}
	f.fields.ID = id
	return nil
}

func (f *CourseForm) SetTitle(title string)             { f.fields.Title = title }
func (f *CourseForm) SetDescription(description string) { f.fields.Description = description }
func (f *CourseForm) SetStatus(status ContentStatus)    { f.fields.Status = status }

// Validate checks required fields without contacting the remote side.
func (f *CourseForm) Validate() error {
	return validateStruct(f.fields)
}

// Course validates the form and returns the course it describes.
func (f *CourseForm) Course() (Course, error) {
	if err := f.Validate(); err != nil {
		return Course{}, err
	}
	return Course{
		ID:          f.fields.ID,
		Status:      f.fields.Status,
		Title:       f.fields.Title,
		Description: f.fields.Description,
	}, nil
}

// LessonFields is the typed field set of the lesson form.
type LessonFields struct {
	ID       string        `form:"id" validate:"notblank"`
	Title    string        `form:"title" validate:"notblank"`
	Content  string        `form:"content"`
	CourseID string        `form:"courseId" validate:"notblank"`
	Status   ContentStatus `form:"status" validate:"content_status"`
}

// LessonForm is either Creating or Editing an existing lesson.
type LessonForm struct {
	mode     FormMode
	original Lesson
	fields   LessonFields
}

// NewLessonForm returns an empty draft lesson form. courseID may be empty.
func NewLessonForm(courseID string) *LessonForm {
	return &LessonForm{
		mode:   Creating,
		fields: LessonFields{CourseID: courseID, Status: StatusDraft},
	}
}

// EditLessonForm returns a form in Editing mode prefilled from l.
func EditLessonForm(l Lesson) *LessonForm {
	return &LessonForm{
		mode:     Editing,
		original: l,
		fields: LessonFields{
			ID:       l.ID,
			Title:    l.Title,
			Content:  l.Content,
			CourseID: l.CourseID,
			Status:   l.Status,
		},
	}
}

func (f *LessonForm) Mode() FormMode { return f.mode }

// Original returns the lesson being edited; ok is false in Creating mode.
func (f *LessonForm) Original() (Lesson, bool) {
	return f.original, f.mode == Editing
}

func (f *LessonForm) Fields() LessonFields { return f.fields }

// SetID sets the ID. IDs are immutable once content exists.
func (f *LessonForm) SetID(id string) error {
	if f.mode == Editing && id != f.original.ID {
		return ErrIDLocked
	}
	f.fields.ID = id
	return nil
}

func (f *LessonForm) SetTitle(title string)          { f.fields.Title = title }
func (f *LessonForm) SetContent(content string)      { f.fields.Content = content }
func (f *LessonForm) SetCourseID(courseID string)    { f.fields.CourseID = courseID }
func (f *LessonForm) SetStatus(status ContentStatus) { f.fields.Status = status }

// Validate checks required fields without contacting the remote side.
func (f *LessonForm) Validate() error {
	return validateStruct(f.fields)
}

// Lesson validates the form and returns the lesson it describes. Editing
// keeps the stored PDF payload; the form never edits it.
func (f *LessonForm) Lesson() (Lesson, error) {
	if err := f.Validate(); err != nil {
		return Lesson{}, err
	}
	lesson := Lesson{
		ID:       f.fields.ID,
		Status:   f.fields.Status,
		Title:    f.fields.Title,
		Content:  f.fields.Content,
		CourseID: f.fields.CourseID,
	}
	if f.mode == Editing {
		lesson.PDFSource = f.original.PDFSource
	}
	return lesson, nil
}
