package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexai/timetablegen/internal/service"
	"github.com/nexai/timetablegen/internal/sheetio"
	"github.com/nexai/timetablegen/pkg/config"
	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/response"
)

const (
	pdfSuffix = "-timetable.pdf"
	csvSuffix = "-schedule.csv"
)

// Server holds the handler dependencies.
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	generator *service.Generator
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handlePostTimetable accepts an xlsx workbook upload, runs the full
// generation pipeline and returns the rendered PDF. Stored copies of the PDF
// and CSV remain retrievable by generation id.
func (s *Server) handlePostTimetable(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperrors.Clone(apperrors.ErrMalformedInput, "multipart field \"file\" is required"))
		return
	}
	if fileHeader.Size > s.cfg.Upload.MaxBytes {
		response.Error(c, apperrors.Clone(apperrors.ErrMalformedInput, "uploaded workbook exceeds the size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrMalformedInput.Code,
			apperrors.ErrMalformedInput.Status, "failed to read uploaded workbook"))
		return
	}
	defer file.Close()

	roster, err := sheetio.LoadWorkbook(file)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), roster)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.store(result); err != nil {
		s.logger.Error("failed to store generated documents", zap.Error(err))
	}

	c.Header("X-Generation-ID", result.ID)
	c.Header("Content-Disposition", `attachment; filename=timetable.pdf`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (s *Server) handleListTimetables(c *gin.Context) {
	files, err := os.ReadDir(s.cfg.Output.Dir)
	if err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrInternal.Code,
			apperrors.ErrInternal.Status, "failed to list generated documents"))
		return
	}

	ids := []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if id, ok := strings.CutSuffix(file.Name(), pdfSuffix); ok {
			ids = append(ids, id)
		}
	}
	response.JSON(c, http.StatusOK, gin.H{"timetableIds": ids})
}

func (s *Server) handleGetTimetable(c *gin.Context) {
	id := c.Param("id")
	if id == "" || strings.ContainsAny(id, `/\.`) {
		response.Error(c, apperrors.Clone(apperrors.ErrNotFound, "unknown timetable id"))
		return
	}

	content, err := os.ReadFile(filepath.Join(s.cfg.Output.Dir, id+pdfSuffix))
	if err != nil {
		response.Error(c, apperrors.Clone(apperrors.ErrNotFound, "unknown timetable id"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename=timetable.pdf`)
	c.Data(http.StatusOK, "application/pdf", content)
}

func (s *Server) store(result *service.Result) error {
	pdfPath := filepath.Join(s.cfg.Output.Dir, result.ID+pdfSuffix)
	if err := os.WriteFile(pdfPath, result.PDF, 0o644); err != nil {
		return err
	}
	csvPath := filepath.Join(s.cfg.Output.Dir, result.ID+csvSuffix)
	return os.WriteFile(csvPath, result.CSV, 0o644)
}
