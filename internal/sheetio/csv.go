package sheetio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/model"
)

// TeacherCSVRow mirrors one raw row of the teacher roster table. The "Nmae"
// column is a misspelling that ships in real source sheets and is honored as
// a fallback for "Name".
type TeacherCSVRow struct {
	Name        string `csv:"Name"`
	NameTypo    string `csv:"Nmae"`
	Courses     string `csv:"courses"`
	CreditHours string `csv:"credit hours"`
}

// SectionCSVRow mirrors one raw row of the sections roster table.
type SectionCSVRow struct {
	Section string `csv:"Section"`
	Subject string `csv:"Subject"`
}

// LoadRosterCSV reads and parses the three roster CSV files.
func LoadRosterCSV(teachersPath, sectionsPath, roomsPath string) (*model.Roster, error) {
	var teacherRows []*TeacherCSVRow
	if err := unmarshalCSVFile(teachersPath, &teacherRows); err != nil {
		return nil, err
	}
	var sectionRows []*SectionCSVRow
	if err := unmarshalCSVFile(sectionsPath, &sectionRows); err != nil {
		return nil, err
	}
	var rooms []*model.Room
	if err := unmarshalCSVFile(roomsPath, &rooms); err != nil {
		return nil, err
	}

	roster := &model.Roster{}
	for _, row := range teacherRows {
		roster.Teachers = append(roster.Teachers, NormalizeTeacherRow(row.Name, row.NameTypo, row.Courses, row.CreditHours))
	}
	for _, row := range sectionRows {
		roster.Sections = append(roster.Sections, model.SectionRow{
			Section:  strings.TrimSpace(row.Section),
			Subjects: SplitList(row.Subject),
		})
	}
	for _, r := range rooms {
		roster.Rooms = append(roster.Rooms, *r)
	}
	return roster, ValidateRoster(roster)
}

func unmarshalCSVFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrMalformedInput.Code, apperrors.ErrMalformedInput.Status,
			fmt.Sprintf("failed to open %s, please make sure the file exists", path))
	}
	defer f.Close()
	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrMalformedInput.Code, apperrors.ErrMalformedInput.Status,
			fmt.Sprintf("failed to parse data from %s, please check the data integrity and format", path))
	}
	return nil
}

// NormalizeTeacherRow resolves the name column fallback, splits the course
// list and parses credit hours with a default of 1.
func NormalizeTeacherRow(name, nameTypo, courses, creditHours string) model.TeacherRow {
	resolved := strings.TrimSpace(name)
	if resolved == "" {
		resolved = strings.TrimSpace(nameTypo)
	}
	return model.TeacherRow{
		Name:        resolved,
		Courses:     SplitList(courses),
		CreditHours: ParseCreditHours(creditHours),
	}
}

// SplitList splits a comma-separated cell into trimmed non-empty entries.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseCreditHours parses the credit hours cell, defaulting to 1 when the
// value is absent or unparseable.
func ParseCreditHours(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ValidateRoster rejects rosters with an absent or empty table before any
// scheduling is attempted.
func ValidateRoster(roster *model.Roster) error {
	if len(roster.Teachers) == 0 {
		return apperrors.Clone(apperrors.ErrMalformedInput, "teacher table is empty")
	}
	if len(roster.Sections) == 0 {
		return apperrors.Clone(apperrors.ErrMalformedInput, "sections table is empty")
	}
	if len(roster.Rooms) == 0 {
		return apperrors.Clone(apperrors.ErrMalformedInput, "rooms table is empty")
	}
	return nil
}
