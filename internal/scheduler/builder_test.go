package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/model"
)

func rosterFixture() *model.Roster {
	return &model.Roster{
		Teachers: []model.TeacherRow{
			{Name: "Mr Khan", Courses: []string{"Math"}, CreditHours: 2},
			{Name: "Ms Noor", Courses: []string{"Networks Lab", "Networks"}, CreditHours: 1},
		},
		Sections: []model.SectionRow{
			{Section: "CS1", Subjects: []string{"Math", "Networks Lab", "Networks"}},
		},
		Rooms: []model.Room{
			{ID: "R1", Type: "classroom"},
			{ID: "L1", Type: "computer lab"},
		},
	}
}

func TestBuildSessionsSplitsLabs(t *testing.T) {
	sessions, err := BuildSessions(rosterFixture())
	require.NoError(t, err)
	require.Len(t, sessions, 4)

	var labSubjects []string
	for _, s := range sessions {
		if s.IsLab {
			labSubjects = append(labSubjects, s.Subject)
			assert.Equal(t, model.LabSessionHours, s.DurationHours)
			assert.Equal(t, "Ms Noor", s.Teacher)
		}
	}
	assert.ElementsMatch(t, []string{"Networks Lab (Odd Roll#)", "Networks Lab (Even Roll#)"}, labSubjects)
}

func TestBuildSessionsTheoryUsesCreditHours(t *testing.T) {
	sessions, err := BuildSessions(rosterFixture())
	require.NoError(t, err)

	byName := make(map[string]model.Session)
	for _, s := range sessions {
		byName[s.Subject] = s
	}
	assert.Equal(t, 2, byName["Math"].DurationHours)
	assert.Equal(t, 1, byName["Networks"].DurationHours)
	assert.False(t, byName["Math"].IsLab)
}

func TestBuildSessionsOrderedByDurationDescending(t *testing.T) {
	sessions, err := BuildSessions(rosterFixture())
	require.NoError(t, err)
	for i := 1; i < len(sessions); i++ {
		assert.GreaterOrEqual(t, sessions[i-1].DurationHours, sessions[i].DurationHours)
	}
	// Equal durations keep roster order: odd half before even half.
	assert.Equal(t, "Networks Lab (Odd Roll#)", sessions[0].Subject)
	assert.Equal(t, "Networks Lab (Even Roll#)", sessions[1].Subject)
}

func TestBuildSessionsDefaultsCreditHours(t *testing.T) {
	roster := rosterFixture()
	roster.Teachers[0].CreditHours = 0
	sessions, err := BuildSessions(roster)
	require.NoError(t, err)
	for _, s := range sessions {
		if s.Subject == "Math" {
			assert.Equal(t, 1, s.DurationHours)
		}
	}
}

func TestBuildSessionsUnresolvedTeacherIsFatal(t *testing.T) {
	roster := rosterFixture()
	roster.Sections[0].Subjects = append(roster.Sections[0].Subjects, "History")

	sessions, err := BuildSessions(roster)
	require.Error(t, err)
	assert.Nil(t, sessions)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnresolvedTeacher))
	assert.Contains(t, err.Error(), "History")
	assert.Contains(t, err.Error(), "CS1")
}

func TestBuildSessionsRejectsNamelessTeacher(t *testing.T) {
	roster := rosterFixture()
	roster.Teachers[0].Name = "  "
	_, err := BuildSessions(roster)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrMalformedInput))
}
