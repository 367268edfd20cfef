package docio

import (
	"fmt"
	"sort"

	"github.com/nexai/timetablegen/pkg/model"
)

// Display-only overlay cells. Breaks are overlaid regardless of booking
// content; the allocator guarantees no booking reaches these hours anyway.
const (
	CellBreak  = "BREAK"
	CellJummah = "JUMMAH"
)

// GridRow is one hour of a section's weekly grid.
type GridRow struct {
	Hour      int
	TimeLabel string
	Cells     []string // one per day, Monday first
}

// SectionGrid is the rendered view of one section's week.
type SectionGrid struct {
	Section string
	Rows    []GridRow
}

// BuildGrids projects committed bookings into per-section display grids,
// sorted by section name. Each booking is expanded across every hour of its
// span.
func BuildGrids(timetable model.Timetable) []SectionGrid {
	sections := make([]string, 0, len(timetable))
	for section := range timetable {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	grids := make([]SectionGrid, 0, len(sections))
	for _, section := range sections {
		lookup := make(map[model.Day]map[int]string)
		for _, b := range timetable[section] {
			if lookup[b.Day] == nil {
				lookup[b.Day] = make(map[int]string)
			}
			content := fmt.Sprintf("%s\n(%s)\n%s", b.Subject, b.Teacher, b.RoomLabel())
			for _, h := range b.Hours() {
				lookup[b.Day][h] = content
			}
		}

		grid := SectionGrid{Section: section}
		for h := model.DayStartHour; h < model.DayEndHour; h++ {
			row := GridRow{
				Hour:      h,
				TimeLabel: fmt.Sprintf("%d:00-%d:00", h, h+1),
				Cells:     make([]string, len(model.Week)),
			}
			for i, day := range model.Week {
				switch {
				case h == model.BreakStartHour:
					row.Cells[i] = CellBreak
				case day == model.Friday && h == 13:
					row.Cells[i] = CellJummah
				default:
					row.Cells[i] = lookup[day][h]
				}
			}
			grid.Rows = append(grid.Rows, row)
		}
		grids = append(grids, grid)
	}
	return grids
}
