package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// PageResult carries the outcome of processing a single page.
type PageResult struct {
	Markdown        string
	IsQuestionPage  bool
	State           constants.PageState
	OCRCostCents    int
	StructCostCents int
	ProviderUsed    string
	ImagePNG        []byte
	DetectedFigures json.RawMessage
}

type PageRepository interface {
	EnsureAll(ctx context.Context, jobID uuid.UUID, totalPages int) error
	Get(ctx context.Context, jobID uuid.UUID, pageNumber int) (*ent.JobPage, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.JobPage, error)
	ListByState(ctx context.Context, jobID uuid.UUID, states ...constants.PageState) ([]*ent.JobPage, error)
	ListSkipped(ctx context.Context, jobID uuid.UUID) ([]*ent.JobPage, error)
	SaveResult(ctx context.Context, pageID uuid.UUID, res PageResult) error
	MarkFailed(ctx context.Context, pageID uuid.UUID, message string) error
	Reset(ctx context.Context, pageIDs []uuid.UUID, clearMarkdown bool) error
	Image(ctx context.Context, jobID uuid.UUID, pageNumber int) ([]byte, error)
}

type pageRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPageRepository(entc *ent.Client, log *slog.Logger) PageRepository {
	return &pageRepo{ent: entc, log: log}
}

// EnsureAll creates missing page rows for a job. Existing rows are left
// untouched so a resumed job keeps its checkpoints.
func (r *pageRepo) EnsureAll(ctx context.Context, jobID uuid.UUID, totalPages int) error {
	existing, err := r.ent.JobPage.
		Query().
		Where(jobpage.JobID(jobID)).
		Select(jobpage.FieldPageNumber).
		Ints(ctx)
	if err != nil {
		return err
	}
	have := make(map[int]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}
	var creates []*ent.JobPageCreate
	for n := 1; n <= totalPages; n++ {
		if have[n] {
			continue
		}
		creates = append(creates, r.ent.JobPage.Create().
			SetJobID(jobID).
			SetPageNumber(n))
	}
	if len(creates) == 0 {
		return nil
	}
	if _, err := r.ent.JobPage.CreateBulk(creates...).Save(ctx); err != nil {
		r.log.Error("page.ensure failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *pageRepo) Get(ctx context.Context, jobID uuid.UUID, pageNumber int) (*ent.JobPage, error) {
	page, err := r.ent.JobPage.
		Query().
		Where(jobpage.JobID(jobID), jobpage.PageNumber(pageNumber)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return page, err
}

func (r *pageRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.JobPage, error) {
	return r.ent.JobPage.
		Query().
		Where(jobpage.JobID(jobID)).
		Order(ent.Asc(jobpage.FieldPageNumber)).
		All(ctx)
}

func (r *pageRepo) ListByState(ctx context.Context, jobID uuid.UUID, states ...constants.PageState) ([]*ent.JobPage, error) {
	vals := make([]string, len(states))
	for i, s := range states {
		vals[i] = string(s)
	}
	return r.ent.JobPage.
		Query().
		Where(jobpage.JobID(jobID), jobpage.StateIn(vals...)).
		Order(ent.Asc(jobpage.FieldPageNumber)).
		All(ctx)
}

// ListSkipped returns pages that were OCR'd but classified as non-question
// pages, the candidates for a second structuring pass.
func (r *pageRepo) ListSkipped(ctx context.Context, jobID uuid.UUID) ([]*ent.JobPage, error) {
	return r.ent.JobPage.
		Query().
		Where(
			jobpage.JobID(jobID),
			jobpage.StateIn(string(constants.PageStateOCRDone), string(constants.PageStateComplete)),
			jobpage.IsQuestionPage(false),
		).
		Order(ent.Asc(jobpage.FieldPageNumber)).
		All(ctx)
}

func (r *pageRepo) SaveResult(ctx context.Context, pageID uuid.UUID, res PageResult) error {
	upd := r.ent.JobPage.
		UpdateOneID(pageID).
		SetMarkdown(res.Markdown).
		SetIsQuestionPage(res.IsQuestionPage).
		SetState(string(res.State)).
		AddOcrCostCents(res.OCRCostCents).
		AddStructuringCostCents(res.StructCostCents).
		ClearErrorMessage()
	if res.ProviderUsed != "" {
		upd.SetProviderUsed(res.ProviderUsed)
	}
	if len(res.ImagePNG) > 0 {
		upd.SetImagePng(res.ImagePNG)
	}
	if len(res.DetectedFigures) > 0 {
		upd.SetDetectedFigures(res.DetectedFigures)
	}
	_, err := upd.Save(ctx)
	return err
}

func (r *pageRepo) MarkFailed(ctx context.Context, pageID uuid.UUID, message string) error {
	_, err := r.ent.JobPage.
		UpdateOneID(pageID).
		SetState(string(constants.PageStateFailed)).
		SetErrorMessage(message).
		AddRetryCount(1).
		SetLastErrorAt(time.Now()).
		Save(ctx)
	return err
}

// Reset returns pages to the unprocessed state so the pipeline picks them up
// again. Markdown is kept unless the caller wants a full re-OCR.
func (r *pageRepo) Reset(ctx context.Context, pageIDs []uuid.UUID, clearMarkdown bool) error {
	upd := r.ent.JobPage.
		Update().
		Where(jobpage.IDIn(pageIDs...)).
		SetState(string(constants.PageStateUnprocessed)).
		SetIsQuestionPage(false).
		ClearErrorMessage().
		ClearProviderUsed()
	if clearMarkdown {
		upd.ClearMarkdown()
	}
	_, err := upd.Save(ctx)
	return err
}

func (r *pageRepo) Image(ctx context.Context, jobID uuid.UUID, pageNumber int) ([]byte, error) {
	page, err := r.Get(ctx, jobID, pageNumber)
	if err != nil {
		return nil, err
	}
	if len(page.ImagePng) == 0 {
		return nil, common.NewAppError("NO_IMAGE", "page has no stored raster", common.ErrNotFound)
	}
	return page.ImagePng, nil
}
