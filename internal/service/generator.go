package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nexai/timetablegen/internal/docio"
	"github.com/nexai/timetablegen/internal/metrics"
	"github.com/nexai/timetablegen/internal/scheduler"
	"github.com/nexai/timetablegen/internal/sheetio"
	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/model"
)

// Result is the output of one successful generation run.
type Result struct {
	ID        string
	Timetable model.Timetable
	Bookings  []model.Booking
	CSV       []byte
	PDF       []byte
	Report    string
}

// Generator runs the full pipeline: roster validation, session building,
// allocation, projection and rendering. Each invocation owns a fresh ledger,
// so independent runs may execute concurrently.
type Generator struct {
	validate *validator.Validate
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewGenerator wires the generation pipeline.
func NewGenerator(validate *validator.Validate, logger *zap.Logger, m *metrics.Metrics) *Generator {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{validate: validate, logger: logger, metrics: m}
}

// Generate produces a complete timetable or fails with a typed error. No
// partial results are ever returned.
func (g *Generator) Generate(ctx context.Context, roster *model.Roster) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.validate.Struct(roster); err != nil {
		return nil, g.fail(apperrors.Wrap(err, apperrors.ErrMalformedInput.Code,
			apperrors.ErrMalformedInput.Status, "roster failed validation"))
	}

	sessions, err := scheduler.BuildSessions(roster)
	if err != nil {
		return nil, g.fail(err)
	}

	ledger := scheduler.NewLedger()
	bookings, err := scheduler.Allocate(sessions, roster.Rooms, ledger)
	if err != nil {
		return nil, g.fail(err)
	}

	timetable := make(model.Timetable, len(roster.Sections))
	for _, b := range bookings {
		timetable[b.Section] = append(timetable[b.Section], b)
	}

	valid, report := scheduler.Validate(bookings, roster.Rooms)
	if !valid {
		g.logger.Error("committed run failed invariant check", zap.String("report", report))
		return nil, g.fail(apperrors.Clone(apperrors.ErrInternal, "generated timetable violates scheduling invariants"))
	}

	csvDoc, err := sheetio.TimetableCSVString(timetable)
	if err != nil {
		return nil, g.fail(err)
	}
	pdfDoc, err := docio.RenderPDF(timetable)
	if err != nil {
		return nil, g.fail(err)
	}

	result := &Result{
		ID:        uuid.NewString(),
		Timetable: timetable,
		Bookings:  bookings,
		CSV:       []byte(csvDoc),
		PDF:       pdfDoc,
		Report:    report,
	}
	if g.metrics != nil {
		g.metrics.ObserveGeneration("ok", len(bookings))
	}
	g.logger.Info("timetable generated",
		zap.String("generation_id", result.ID),
		zap.Int("sessions", len(sessions)),
		zap.Int("bookings", len(bookings)),
		zap.Int("sections", len(timetable)),
	)
	return result, nil
}

func (g *Generator) fail(err error) error {
	appErr := apperrors.FromError(err)
	if g.metrics != nil {
		g.metrics.ObserveGeneration(appErr.Code, 0)
	}
	g.logger.Warn("generation failed",
		zap.String("kind", appErr.Code),
		zap.String("reason", appErr.Message),
	)
	return err
}
