package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nexai/timetablegen/internal/service"
	"github.com/nexai/timetablegen/internal/sheetio"
	apperrors "github.com/nexai/timetablegen/pkg/errors"
)

func main() {
	teachersFile := flag.String("teachers", "./res/teachers.csv", "teacher roster csv")
	sectionsFile := flag.String("sections", "./res/sections.csv", "sections roster csv")
	roomsFile := flag.String("rooms", "./res/rooms.csv", "rooms csv")
	outDir := flag.String("out", ".", "output directory for schedule.csv and timetable.pdf")
	flag.Parse()

	roster, err := sheetio.LoadRosterCSV(*teachersFile, *sectionsFile, *roomsFile)
	if err != nil {
		fail(err)
	}

	start := time.Now()
	generator := service.NewGenerator(nil, nil, nil)
	result, err := generator.Generate(context.Background(), roster)
	if err != nil {
		fail(err)
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fail(err)
	}
	csvPath := filepath.Join(*outDir, "schedule.csv")
	if err := os.WriteFile(csvPath, result.CSV, 0o644); err != nil {
		fail(err)
	}
	pdfPath := filepath.Join(*outDir, "timetable.pdf")
	if err := os.WriteFile(pdfPath, result.PDF, 0o644); err != nil {
		fail(err)
	}

	sheetio.PrintTimetable(result.Timetable)
	fmt.Println(result.Report)
	fmt.Printf("Bookings: %d\n", len(result.Bookings))
	fmt.Printf("Exported: %s, %s\n", csvPath, pdfPath)
	fmt.Printf("Timer: %f ms\n", float64(elapsed.Nanoseconds())/1000000.0)
}

// Exit codes mirror the error taxonomy so shell callers can tell input
// problems apart from scheduling failures.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	switch apperrors.FromError(err).Code {
	case apperrors.ErrUnresolvedTeacher.Code:
		os.Exit(2)
	case apperrors.ErrInfeasible.Code:
		os.Exit(3)
	default:
		os.Exit(1)
	}
}
