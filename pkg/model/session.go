package model

// Session is one schedulable block of instruction for a section. Sessions are
// built once from the roster and consumed exactly once by the allocator.
type Session struct {
	Section       string
	Subject       string // display label, may carry an odd/even roll suffix for lab halves
	Teacher       string
	DurationHours int
	IsLab         bool
}

// LabSessionHours is the fixed block length of a half-class lab session.
const LabSessionHours = 3

// TeacherRow is one normalized row of the teacher roster.
type TeacherRow struct {
	Name        string   `validate:"required"`
	Courses     []string `validate:"min=1"`
	CreditHours int      `validate:"min=1"`
}

// SectionRow is one normalized row of the sections roster.
type SectionRow struct {
	Section  string   `validate:"required"`
	Subjects []string `validate:"min=1"`
}

// Roster holds the three input tables after ingestion and normalization.
type Roster struct {
	Teachers []TeacherRow `validate:"min=1,dive"`
	Sections []SectionRow `validate:"min=1,dive"`
	Rooms    []Room       `validate:"min=1,dive"`
}
