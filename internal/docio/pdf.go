package docio

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nexai/timetablegen/pkg/model"
)

const (
	pageMargin = 10.0
	timeColW   = 37.0
	dayColW    = 48.0
	rowH       = 13.0
	lineH      = 3.6
)

// RenderPDF renders the committed timetable into a PDF document, one
// landscape page per section with a Time x Monday..Friday grid.
func RenderPDF(timetable model.Timetable) ([]byte, error) {
	grids := BuildGrids(timetable)
	if len(grids) == 0 {
		return nil, fmt.Errorf("pdf requires at least one section")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	// Fixed creation date keeps output byte-identical for identical input.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(pageMargin, 12, pageMargin)
	pdf.SetAutoPageBreak(false, 0)

	for _, grid := range grids {
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, "Section: "+grid.Section, "", 1, "C", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(timeColW, 8, "Time", "1", 0, "C", false, 0, "")
		for _, day := range model.Week {
			pdf.CellFormat(dayColW, 8, day.String(), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 7)
		for _, row := range grid.Rows {
			y := pdf.GetY()
			x := pageMargin
			pdf.SetXY(x, y)
			pdf.CellFormat(timeColW, rowH, row.TimeLabel, "1", 0, "C", false, 0, "")
			x += timeColW
			for _, cell := range row.Cells {
				pdf.SetXY(x, y)
				pdf.CellFormat(dayColW, rowH, "", "1", 0, "", false, 0, "")
				if cell != "" {
					lines := strings.Split(cell, "\n")
					offset := (rowH - lineH*float64(len(lines))) / 2
					pdf.SetXY(x, y+offset)
					pdf.MultiCell(dayColW, lineH, cell, "", "C", false)
				}
				x += dayColW
			}
			pdf.SetXY(pageMargin, y+rowH)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
