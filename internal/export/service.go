// Package export produces XLSX review sheets so question candidates can be
// checked offline or shared outside the review UI.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/seyi-ajayi/examscan/internal/provider"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

// Service is a tiny facade over repositories that produces XLSX bytes.
type Service struct {
	jobs      repository.JobRepository
	extracted repository.ExtractedRepository
	logger    *slog.Logger
}

func NewService(jobs repository.JobRepository, extracted repository.ExtractedRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, extracted: extracted, logger: logger}
}

// ExportReviewSheetXLSX returns a workbook with one row per extracted
// question, in page order, for the given job.
func (s *Service) ExportReviewSheetXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	questions, err := s.extracted.ListQuestions(ctx, jobID, "")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Page",
		"Review Status",
		"Question",
		"Type",
		"Options",
		"Correct Answer",
		"Domain",
		"Difficulty",
		"Confidence",
		"Problems",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, q := range questions {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		pageNumber := 0
		if q.Edges.Page != nil {
			pageNumber = q.Edges.Page.PageNumber
		}
		write(1, pageNumber)
		write(2, q.ReviewStatus)
		write(3, q.QuestionText)
		write(4, q.QuestionType)
		write(5, formatOptions(q.Options))
		write(6, strings.Join(q.CorrectAnswer, " | "))
		if q.Domain != nil {
			write(7, *q.Domain)
		}
		if q.Difficulty != nil {
			write(8, *q.Difficulty)
		}
		write(9, fmt.Sprintf("%.2f", q.ExtractionConfidence))
		write(10, strings.Join(q.ValidationErrors, "; "))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.review_sheet.ok",
		"job_id", jobID,
		"filename", job.PdfFilename,
		"rows", row-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatOptions(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var opts []provider.Option
	if err := json.Unmarshal(raw, &opts); err != nil {
		return string(raw)
	}
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, o.ID+") "+o.Text)
	}
	return strings.Join(parts, "  ")
}
