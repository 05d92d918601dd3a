package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// CreateJobParams carries everything needed to register an uploaded PDF.
type CreateJobParams struct {
	UserID         uuid.UUID
	TargetModuleID *uuid.UUID
	Filename       string
	Path           string
	Hash           string
	TotalPages     int
	Provider       constants.Provider
	EstimatedCents int
	TestConfigs    json.RawMessage
}

// JobCounters is a delta applied to a job's progress counters.
type JobCounters struct {
	ProcessedPages     int
	QuestionPages      int
	SkippedPages       int
	FailedPages        int
	ExtractedQuestions int
	ActualCostCents    int
}

type JobRepository interface {
	Create(ctx context.Context, p CreateJobParams) (*ent.ExtractionJob, error)
	Get(ctx context.Context, jobID uuid.UUID) (*ent.ExtractionJob, error)
	GetForUser(ctx context.Context, jobID, userID uuid.UUID) (*ent.ExtractionJob, error)
	List(ctx context.Context, userID uuid.UUID, status constants.JobStatus, limit, offset int) ([]*ent.ExtractionJob, int, error)
	FindActiveByHash(ctx context.Context, userID uuid.UUID, hash string) (*ent.ExtractionJob, error)
	Transition(ctx context.Context, jobID uuid.UUID, to constants.JobStatus) (*ent.ExtractionJob, error)
	AddCounters(ctx context.Context, jobID uuid.UUID, d JobCounters) error
	SetCounters(ctx context.Context, jobID uuid.UUID, c JobCounters) error
	AddApproved(ctx context.Context, jobID uuid.UUID, delta int) error
	RecordImport(ctx context.Context, jobID uuid.UUID, imported int, testIDs []uuid.UUID) error
	SetTaskID(ctx context.Context, jobID uuid.UUID, taskID string) error
	SetTestConfigs(ctx context.Context, jobID uuid.UUID, configs json.RawMessage) (*ent.ExtractionJob, error)
	SetFailure(ctx context.Context, jobID uuid.UUID, message string, lastErrorPage int) error
	IncRetry(ctx context.Context, jobID uuid.UUID) (int, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, p CreateJobParams) (*ent.ExtractionJob, error) {
	create := r.ent.ExtractionJob.
		Create().
		SetUserID(p.UserID).
		SetPdfFilename(p.Filename).
		SetPdfPath(p.Path).
		SetPdfHash(p.Hash).
		SetTotalPages(p.TotalPages).
		SetProvider(string(p.Provider)).
		SetEstimatedCostCents(p.EstimatedCents)
	if p.TargetModuleID != nil {
		create.SetTargetModuleID(*p.TargetModuleID)
	}
	if len(p.TestConfigs) > 0 {
		create.SetTestConfigs(p.TestConfigs)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("job.create failed", "user_id", p.UserID, "err", err)
		return nil, err
	}
	r.log.Info("job.created", "job_id", job.ID, "user_id", p.UserID, "pages", p.TotalPages, "provider", p.Provider)
	return job, nil
}

func (r *jobRepo) Get(ctx context.Context, jobID uuid.UUID) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) GetForUser(ctx context.Context, jobID, userID uuid.UUID) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.
		Query().
		Where(extractionjob.ID(jobID), extractionjob.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) List(ctx context.Context, userID uuid.UUID, status constants.JobStatus, limit, offset int) ([]*ent.ExtractionJob, int, error) {
	q := r.ent.ExtractionJob.
		Query().
		Where(extractionjob.UserID(userID))
	if status != "" {
		q = q.Where(extractionjob.Status(string(status)))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	jobs, err := q.
		Order(ent.Desc(extractionjob.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	return jobs, total, err
}

// FindActiveByHash returns an in-flight job for the same user and PDF digest,
// used to reject duplicate uploads while the first one is still running.
func (r *jobRepo) FindActiveByHash(ctx context.Context, userID uuid.UUID, hash string) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.
		Query().
		Where(
			extractionjob.UserID(userID),
			extractionjob.PdfHash(hash),
			extractionjob.StatusIn(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
			),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return job, err
}

// Transition moves a job to a new status, enforcing the allowed transitions.
// started_at and completed_at are stamped on the relevant edges.
func (r *jobRepo) Transition(ctx context.Context, jobID uuid.UUID, to constants.JobStatus) (*ent.ExtractionJob, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.ExtractionJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	from := constants.JobStatus(job.Status)
	if !constants.CanTransition(from, to) {
		return nil, common.NewAppError("INVALID_TRANSITION",
			fmt.Sprintf("cannot move job from %s to %s", from, to), common.ErrConflict)
	}

	upd := tx.ExtractionJob.UpdateOneID(jobID).SetStatus(string(to))
	switch to {
	case constants.JobStatusProcessing:
		if job.StartedAt == nil {
			upd.SetStartedAt(time.Now())
		}
	case constants.JobStatusCompleted, constants.JobStatusFailed, constants.JobStatusCancelled:
		upd.SetCompletedAt(time.Now())
	}
	job, err = upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("job.transition", "job_id", jobID, "from", from, "to", to)
	return job, nil
}

func (r *jobRepo) AddCounters(ctx context.Context, jobID uuid.UUID, d JobCounters) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		AddProcessedPages(d.ProcessedPages).
		AddQuestionPages(d.QuestionPages).
		AddSkippedPages(d.SkippedPages).
		AddFailedPages(d.FailedPages).
		AddExtractedQuestions(d.ExtractedQuestions).
		AddActualCostCents(d.ActualCostCents).
		Save(ctx)
	return err
}

// SetCounters overwrites the page and cost aggregates with recomputed
// absolute values.
func (r *jobRepo) SetCounters(ctx context.Context, jobID uuid.UUID, c JobCounters) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetProcessedPages(c.ProcessedPages).
		SetQuestionPages(c.QuestionPages).
		SetSkippedPages(c.SkippedPages).
		SetFailedPages(c.FailedPages).
		SetExtractedQuestions(c.ExtractedQuestions).
		SetActualCostCents(c.ActualCostCents).
		Save(ctx)
	return err
}

func (r *jobRepo) AddApproved(ctx context.Context, jobID uuid.UUID, delta int) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		AddApprovedQuestions(delta).
		Save(ctx)
	return err
}

func (r *jobRepo) RecordImport(ctx context.Context, jobID uuid.UUID, imported int, testIDs []uuid.UUID) error {
	upd := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		AddImportedQuestions(imported)
	if len(testIDs) > 0 {
		upd.AppendCreatedTestIds(testIDs)
	}
	_, err := upd.Save(ctx)
	return err
}

func (r *jobRepo) SetTaskID(ctx context.Context, jobID uuid.UUID, taskID string) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetTaskID(taskID).
		Save(ctx)
	return err
}

func (r *jobRepo) SetTestConfigs(ctx context.Context, jobID uuid.UUID, configs json.RawMessage) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetTestConfigs(configs).
		Save(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) SetFailure(ctx context.Context, jobID uuid.UUID, message string, lastErrorPage int) error {
	upd := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetErrorMessage(message)
	if lastErrorPage > 0 {
		upd.SetLastErrorPage(lastErrorPage)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("job.set_failure failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("job.failed", "job_id", jobID, "error", message, "page", lastErrorPage)
	return nil
}

func (r *jobRepo) IncRetry(ctx context.Context, jobID uuid.UUID) (int, error) {
	job, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		AddRetryCount(1).
		Save(ctx)
	if err != nil {
		return 0, err
	}
	return job.RetryCount, nil
}
