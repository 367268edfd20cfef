package sheetio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/nexai/timetablegen/pkg/errors"
)

type workbookSpec struct {
	teachers [][]interface{}
	sections [][]interface{}
	rooms    [][]interface{}
	skip     map[string]bool
}

func buildWorkbook(t *testing.T, spec workbookSpec) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetTeachers, spec.teachers},
		{SheetSections, spec.sections},
		{SheetRooms, spec.rooms},
	}
	for _, sheet := range sheets {
		if spec.skip[sheet.name] {
			continue
		}
		_, err := f.NewSheet(sheet.name)
		require.NoError(t, err)
		for i, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func defaultWorkbookSpec() workbookSpec {
	return workbookSpec{
		teachers: [][]interface{}{
			{"Name", "courses", "credit hours"},
			{"Mr Khan", "Math, Physics", 2},
			{"Ms Noor", "Networks Lab", "oops"},
		},
		sections: [][]interface{}{
			{"Section", "Subject"},
			{"CS1", "Math, Networks Lab"},
		},
		rooms: [][]interface{}{
			{"room id", "type"},
			{"R1", "classroom"},
			{"L1", "computer lab"},
		},
	}
}

func TestLoadWorkbook(t *testing.T) {
	data := buildWorkbook(t, defaultWorkbookSpec())

	roster, err := LoadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)

	require.Len(t, roster.Teachers, 2)
	assert.Equal(t, "Mr Khan", roster.Teachers[0].Name)
	assert.Equal(t, []string{"Math", "Physics"}, roster.Teachers[0].Courses)
	assert.Equal(t, 2, roster.Teachers[0].CreditHours)
	assert.Equal(t, 1, roster.Teachers[1].CreditHours)

	require.Len(t, roster.Sections, 1)
	assert.Equal(t, []string{"Math", "Networks Lab"}, roster.Sections[0].Subjects)

	require.Len(t, roster.Rooms, 2)
	assert.Equal(t, "L1", roster.Rooms[1].ID)
	assert.Equal(t, "computer lab", roster.Rooms[1].Type)
}

func TestLoadWorkbookNameMisspelling(t *testing.T) {
	spec := defaultWorkbookSpec()
	spec.teachers = [][]interface{}{
		{"Nmae", "courses", "credit hours"},
		{"Ms Noor", "Networks Lab", 1},
	}
	spec.sections = [][]interface{}{
		{"Section", "Subject"},
		{"CS1", "Networks Lab"},
	}
	data := buildWorkbook(t, spec)

	roster, err := LoadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, roster.Teachers, 1)
	assert.Equal(t, "Ms Noor", roster.Teachers[0].Name)
}

func TestLoadWorkbookMissingSheet(t *testing.T) {
	spec := defaultWorkbookSpec()
	spec.skip = map[string]bool{SheetRooms: true}
	data := buildWorkbook(t, spec)

	_, err := LoadWorkbook(bytes.NewReader(data))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrMalformedInput))
	assert.Contains(t, err.Error(), "rooms")
}

func TestLoadWorkbookHeaderOnlySheet(t *testing.T) {
	spec := defaultWorkbookSpec()
	spec.sections = [][]interface{}{{"Section", "Subject"}}
	data := buildWorkbook(t, spec)

	_, err := LoadWorkbook(bytes.NewReader(data))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrMalformedInput))
}

func TestLoadWorkbookRejectsGarbage(t *testing.T) {
	_, err := LoadWorkbook(bytes.NewReader([]byte("definitely not a workbook")))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrMalformedInput))
}
