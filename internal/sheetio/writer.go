package sheetio

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/nexai/timetablegen/pkg/model"
)

// ExportTimetable writes the committed bookings to the CSV file at path.
func ExportTimetable(timetable model.Timetable, path string) error {
	rows := flattenTimetable(timetable)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write schedule csv: %w", err)
	}
	return nil
}

// TimetableCSVString renders the committed bookings as a CSV document.
func TimetableCSVString(timetable model.Timetable) (string, error) {
	rows := flattenTimetable(timetable)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshal schedule csv: %w", err)
	}
	return str, nil
}

// PrintTimetable prints the bookings grouped by section name.
func PrintTimetable(timetable model.Timetable) {
	rows := flattenTimetable(timetable)
	seen := make(map[string]bool, len(timetable))
	for _, r := range rows {
		if !seen[r.Section] {
			seen[r.Section] = true
			fmt.Printf("\n%s %s %s\n", strings.Repeat("-", (32-len(r.Section))/2), r.Section,
				strings.Repeat("-", int(0.5+(32-float32(len(r.Section)))/2.0)))
		}
		fmt.Printf("%-12s %5s-%-5s  %-28s %-16s %s\n", r.Day, r.Start, r.End, r.Subject, r.Teacher, r.Room)
	}
	fmt.Printf("Printed rows: %d\n", len(rows))
}

func flattenTimetable(timetable model.Timetable) []*model.BookingCSVRow {
	var bookings []model.Booking
	for _, sectionBookings := range timetable {
		bookings = append(bookings, sectionBookings...)
	}
	slices.SortFunc(bookings, func(a, b model.Booking) int {
		if c := strings.Compare(a.Section, b.Section); c != 0 {
			return c
		}
		if c := int(a.Day) - int(b.Day); c != 0 {
			return c
		}
		if c := a.StartHour - b.StartHour; c != 0 {
			return c
		}
		return strings.Compare(a.Subject, b.Subject)
	})

	formatted := make([]*model.BookingCSVRow, 0, len(bookings))
	for _, b := range bookings {
		formatted = append(formatted, &model.BookingCSVRow{
			Section: b.Section,
			Day:     b.Day.String(),
			Start:   b.StartLabel(),
			End:     b.EndLabel(),
			Subject: b.Subject,
			Teacher: b.Teacher,
			Room:    b.RoomLabel(),
		})
	}
	return formatted
}
