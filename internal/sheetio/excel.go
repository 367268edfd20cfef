package sheetio

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/model"
)

// Required sheet names, exactly as they appear in the source workbooks.
const (
	SheetTeachers = "Teacher"
	SheetSections = "Sections"
	SheetRooms    = "rooms"
)

// LoadWorkbook reads the roster from an xlsx workbook with the Teacher,
// Sections and rooms sheets. The first row of each sheet is the header row.
func LoadWorkbook(r io.Reader) (*model.Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrMalformedInput.Code, apperrors.ErrMalformedInput.Status,
			"failed to open workbook, please upload a valid xlsx file")
	}
	defer f.Close()

	for _, sheet := range []string{SheetTeachers, SheetSections, SheetRooms} {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			return nil, apperrors.Clone(apperrors.ErrMalformedInput,
				fmt.Sprintf("workbook is missing the required sheet %q", sheet))
		}
	}

	teacherRows, err := sheetRecords(f, SheetTeachers)
	if err != nil {
		return nil, err
	}
	sectionRows, err := sheetRecords(f, SheetSections)
	if err != nil {
		return nil, err
	}
	roomRows, err := sheetRecords(f, SheetRooms)
	if err != nil {
		return nil, err
	}

	roster := &model.Roster{}
	for _, rec := range teacherRows {
		roster.Teachers = append(roster.Teachers,
			NormalizeTeacherRow(rec["Name"], rec["Nmae"], rec["courses"], rec["credit hours"]))
	}
	for _, rec := range sectionRows {
		roster.Sections = append(roster.Sections, model.SectionRow{
			Section:  strings.TrimSpace(rec["Section"]),
			Subjects: SplitList(rec["Subject"]),
		})
	}
	for _, rec := range roomRows {
		roster.Rooms = append(roster.Rooms, model.Room{
			ID:   strings.TrimSpace(rec["room id"]),
			Type: rec["type"],
		})
	}
	return roster, ValidateRoster(roster)
}

// sheetRecords converts a sheet into column-name → value records, skipping
// rows with no content.
func sheetRecords(f *excelize.File, sheet string) ([]map[string]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrMalformedInput.Code, apperrors.ErrMalformedInput.Status,
			fmt.Sprintf("failed to read sheet %q", sheet))
	}
	if len(rows) < 2 {
		return nil, apperrors.Clone(apperrors.ErrMalformedInput,
			fmt.Sprintf("sheet %q has no data rows", sheet))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var records []map[string]string
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var value string
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			rec[header] = value
			if value != "" {
				empty = false
			}
		}
		if !empty {
			records = append(records, rec)
		}
	}
	return records, nil
}
