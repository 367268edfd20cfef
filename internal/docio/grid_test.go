package docio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexai/timetablegen/pkg/model"
)

func timetableFixture() model.Timetable {
	return model.Timetable{
		"CS2": {
			{Section: "CS2", Subject: "Physics", Teacher: "Ms Noor", Day: model.Tuesday, StartHour: 8, EndHour: 9, RoomID: "R2"},
		},
		"CS1": {
			{Section: "CS1", Subject: "Math", Teacher: "Mr Khan", Day: model.Monday, StartHour: 9, EndHour: 11, RoomID: "R1"},
			{Section: "CS1", Subject: "Networks Lab (Odd Roll#)", Teacher: "Ms Noor", Day: model.Friday, StartHour: 8, EndHour: 11, RoomID: "L1", IsLab: true},
		},
	}
}

func TestBuildGridsSortsSections(t *testing.T) {
	grids := BuildGrids(timetableFixture())
	require.Len(t, grids, 2)
	assert.Equal(t, "CS1", grids[0].Section)
	assert.Equal(t, "CS2", grids[1].Section)
}

func TestBuildGridsExpandsBookingSpans(t *testing.T) {
	grids := BuildGrids(timetableFixture())
	cs1 := grids[0]
	require.Len(t, cs1.Rows, model.DayEndHour-model.DayStartHour)

	monday := 0
	want := "Math\n(Mr Khan)\n[R1]"
	assert.Equal(t, want, cs1.Rows[1].Cells[monday]) // 9:00
	assert.Equal(t, want, cs1.Rows[2].Cells[monday]) // 10:00
	assert.Empty(t, cs1.Rows[0].Cells[monday])
	assert.Empty(t, cs1.Rows[3].Cells[monday])

	friday := 4
	lab := "Networks Lab (Odd Roll#)\n(Ms Noor)\n[L1]"
	for _, row := range []int{0, 1, 2} { // 8:00-11:00
		assert.Equal(t, lab, cs1.Rows[row].Cells[friday])
	}
}

func TestBuildGridsOverlaysBreakAndJummah(t *testing.T) {
	grids := BuildGrids(timetableFixture())
	for _, grid := range grids {
		breakRow := grid.Rows[model.BreakStartHour-model.DayStartHour]
		for i := range model.Week {
			assert.Equal(t, CellBreak, breakRow.Cells[i])
		}
		jummahRow := grid.Rows[13-model.DayStartHour]
		assert.Equal(t, CellJummah, jummahRow.Cells[4])
		assert.Empty(t, jummahRow.Cells[0])
	}
}

func TestBuildGridsTimeLabels(t *testing.T) {
	grids := BuildGrids(timetableFixture())
	assert.Equal(t, "8:00-9:00", grids[0].Rows[0].TimeLabel)
	assert.Equal(t, "15:00-16:00", grids[0].Rows[7].TimeLabel)
}
