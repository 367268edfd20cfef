package scheduler

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/model"
)

type teacherEntry struct {
	name        string
	creditHours int
}

// BuildSessions turns the roster into the flat, ordered list of sessions the
// allocator consumes. Lab subjects expand into two half-class blocks; theory
// duration follows the teacher's credit hours. Longer blocks sort first so
// they are placed before the grid fragments.
func BuildSessions(roster *model.Roster) ([]model.Session, error) {
	subjectTeachers, err := buildTeacherMap(roster.Teachers)
	if err != nil {
		return nil, err
	}

	var sessions []model.Session
	for _, row := range roster.Sections {
		section := strings.TrimSpace(row.Section)
		if section == "" {
			return nil, apperrors.Clone(apperrors.ErrMalformedInput, "sections table contains a row without a section name")
		}
		for _, subject := range row.Subjects {
			subject = strings.TrimSpace(subject)
			if subject == "" {
				continue
			}
			entry, ok := subjectTeachers[subject]
			if !ok {
				return nil, apperrors.Clone(apperrors.ErrUnresolvedTeacher,
					fmt.Sprintf("no teacher found for subject %q required by section %q", subject, section))
			}
			if IsLabSubject(subject) {
				// Odd and even roll-number halves each need their own block.
				sessions = append(sessions,
					model.Session{
						Section:       section,
						Subject:       subject + " (Odd Roll#)",
						Teacher:       entry.name,
						DurationHours: model.LabSessionHours,
						IsLab:         true,
					},
					model.Session{
						Section:       section,
						Subject:       subject + " (Even Roll#)",
						Teacher:       entry.name,
						DurationHours: model.LabSessionHours,
						IsLab:         true,
					})
			} else {
				sessions = append(sessions, model.Session{
					Section:       section,
					Subject:       subject,
					Teacher:       entry.name,
					DurationHours: entry.creditHours,
					IsLab:         false,
				})
			}
		}
	}

	// Stable so equal durations keep roster order and the search stays
	// deterministic.
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].DurationHours > sessions[j].DurationHours
	})
	return sessions, nil
}

func buildTeacherMap(teachers []model.TeacherRow) (map[string]teacherEntry, error) {
	subjectTeachers := make(map[string]teacherEntry)
	for _, row := range teachers {
		name := strings.TrimSpace(row.Name)
		if name == "" || len(row.Courses) == 0 {
			return nil, apperrors.Clone(apperrors.ErrMalformedInput, "teacher table contains a row without a name or courses")
		}
		creditHours := row.CreditHours
		if creditHours < 1 {
			creditHours = 1
		}
		for _, course := range row.Courses {
			course = strings.TrimSpace(course)
			if course == "" {
				continue
			}
			subjectTeachers[course] = teacherEntry{name: name, creditHours: creditHours}
		}
	}
	return subjectTeachers, nil
}
