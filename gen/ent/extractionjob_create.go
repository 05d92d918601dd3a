// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExtractionJobCreate) SetUserID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTargetModuleID sets the "target_module_id" field.
func (_c *ExtractionJobCreate) SetTargetModuleID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetTargetModuleID(v)
	return _c
}

// SetNillableTargetModuleID sets the "target_module_id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTargetModuleID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetTargetModuleID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionJobCreate) SetStatus(v string) *ExtractionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStatus(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPdfFilename sets the "pdf_filename" field.
func (_c *ExtractionJobCreate) SetPdfFilename(v string) *ExtractionJobCreate {
	_c.mutation.SetPdfFilename(v)
	return _c
}

// SetPdfPath sets the "pdf_path" field.
func (_c *ExtractionJobCreate) SetPdfPath(v string) *ExtractionJobCreate {
	_c.mutation.SetPdfPath(v)
	return _c
}

// SetPdfHash sets the "pdf_hash" field.
func (_c *ExtractionJobCreate) SetPdfHash(v string) *ExtractionJobCreate {
	_c.mutation.SetPdfHash(v)
	return _c
}

// SetTotalPages sets the "total_pages" field.
func (_c *ExtractionJobCreate) SetTotalPages(v int) *ExtractionJobCreate {
	_c.mutation.SetTotalPages(v)
	return _c
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTotalPages(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetTotalPages(*v)
	}
	return _c
}

// SetProcessedPages sets the "processed_pages" field.
func (_c *ExtractionJobCreate) SetProcessedPages(v int) *ExtractionJobCreate {
	_c.mutation.SetProcessedPages(v)
	return _c
}

// SetNillableProcessedPages sets the "processed_pages" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableProcessedPages(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetProcessedPages(*v)
	}
	return _c
}

// SetQuestionPages sets the "question_pages" field.
func (_c *ExtractionJobCreate) SetQuestionPages(v int) *ExtractionJobCreate {
	_c.mutation.SetQuestionPages(v)
	return _c
}

// SetNillableQuestionPages sets the "question_pages" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableQuestionPages(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetQuestionPages(*v)
	}
	return _c
}

// SetSkippedPages sets the "skipped_pages" field.
func (_c *ExtractionJobCreate) SetSkippedPages(v int) *ExtractionJobCreate {
	_c.mutation.SetSkippedPages(v)
	return _c
}

// SetNillableSkippedPages sets the "skipped_pages" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableSkippedPages(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetSkippedPages(*v)
	}
	return _c
}

// SetFailedPages sets the "failed_pages" field.
func (_c *ExtractionJobCreate) SetFailedPages(v int) *ExtractionJobCreate {
	_c.mutation.SetFailedPages(v)
	return _c
}

// SetNillableFailedPages sets the "failed_pages" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableFailedPages(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetFailedPages(*v)
	}
	return _c
}

// SetExtractedQuestions sets the "extracted_questions" field.
func (_c *ExtractionJobCreate) SetExtractedQuestions(v int) *ExtractionJobCreate {
	_c.mutation.SetExtractedQuestions(v)
	return _c
}

// SetNillableExtractedQuestions sets the "extracted_questions" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableExtractedQuestions(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetExtractedQuestions(*v)
	}
	return _c
}

// SetApprovedQuestions sets the "approved_questions" field.
func (_c *ExtractionJobCreate) SetApprovedQuestions(v int) *ExtractionJobCreate {
	_c.mutation.SetApprovedQuestions(v)
	return _c
}

// SetNillableApprovedQuestions sets the "approved_questions" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableApprovedQuestions(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetApprovedQuestions(*v)
	}
	return _c
}

// SetImportedQuestions sets the "imported_questions" field.
func (_c *ExtractionJobCreate) SetImportedQuestions(v int) *ExtractionJobCreate {
	_c.mutation.SetImportedQuestions(v)
	return _c
}

// SetNillableImportedQuestions sets the "imported_questions" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableImportedQuestions(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetImportedQuestions(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ExtractionJobCreate) SetProvider(v string) *ExtractionJobCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableProvider(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (_c *ExtractionJobCreate) SetEstimatedCostCents(v int) *ExtractionJobCreate {
	_c.mutation.SetEstimatedCostCents(v)
	return _c
}

// SetNillableEstimatedCostCents sets the "estimated_cost_cents" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableEstimatedCostCents(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetEstimatedCostCents(*v)
	}
	return _c
}

// SetActualCostCents sets the "actual_cost_cents" field.
func (_c *ExtractionJobCreate) SetActualCostCents(v int) *ExtractionJobCreate {
	_c.mutation.SetActualCostCents(v)
	return _c
}

// SetNillableActualCostCents sets the "actual_cost_cents" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableActualCostCents(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetActualCostCents(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionJobCreate) SetStartedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStartedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExtractionJobCreate) SetCompletedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableCompletedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionJobCreate) SetErrorMessage(v string) *ExtractionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableErrorMessage(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLastErrorPage sets the "last_error_page" field.
func (_c *ExtractionJobCreate) SetLastErrorPage(v int) *ExtractionJobCreate {
	_c.mutation.SetLastErrorPage(v)
	return _c
}

// SetNillableLastErrorPage sets the "last_error_page" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableLastErrorPage(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetLastErrorPage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ExtractionJobCreate) SetRetryCount(v int) *ExtractionJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableRetryCount(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ExtractionJobCreate) SetTaskID(v string) *ExtractionJobCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTaskID(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetTestConfigs sets the "test_configs" field.
func (_c *ExtractionJobCreate) SetTestConfigs(v json.RawMessage) *ExtractionJobCreate {
	_c.mutation.SetTestConfigs(v)
	return _c
}

// SetCreatedTestIds sets the "created_test_ids" field.
func (_c *ExtractionJobCreate) SetCreatedTestIds(v []uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetCreatedTestIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionJobCreate) SetCreatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableCreatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionJobCreate) SetUpdatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPageIDs adds the "pages" edge to the JobPage entity by IDs.
func (_c *ExtractionJobCreate) AddPageIDs(ids ...uuid.UUID) *ExtractionJobCreate {
	_c.mutation.AddPageIDs(ids...)
	return _c
}

// AddPages adds the "pages" edges to the JobPage entity.
func (_c *ExtractionJobCreate) AddPages(v ...*JobPage) *ExtractionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPageIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_c *ExtractionJobCreate) AddQuestionIDs(ids ...uuid.UUID) *ExtractionJobCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_c *ExtractionJobCreate) AddQuestions(v ...*ExtractedQuestion) *ExtractionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by IDs.
func (_c *ExtractionJobCreate) AddPassageIDs(ids ...uuid.UUID) *ExtractionJobCreate {
	_c.mutation.AddPassageIDs(ids...)
	return _c
}

// AddPassages adds the "passages" edges to the ExtractedPassage entity.
func (_c *ExtractionJobCreate) AddPassages(v ...*ExtractedPassage) *ExtractionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPassageIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalPages(); !ok {
		v := extractionjob.DefaultTotalPages
		_c.mutation.SetTotalPages(v)
	}
	if _, ok := _c.mutation.ProcessedPages(); !ok {
		v := extractionjob.DefaultProcessedPages
		_c.mutation.SetProcessedPages(v)
	}
	if _, ok := _c.mutation.QuestionPages(); !ok {
		v := extractionjob.DefaultQuestionPages
		_c.mutation.SetQuestionPages(v)
	}
	if _, ok := _c.mutation.SkippedPages(); !ok {
		v := extractionjob.DefaultSkippedPages
		_c.mutation.SetSkippedPages(v)
	}
	if _, ok := _c.mutation.FailedPages(); !ok {
		v := extractionjob.DefaultFailedPages
		_c.mutation.SetFailedPages(v)
	}
	if _, ok := _c.mutation.ExtractedQuestions(); !ok {
		v := extractionjob.DefaultExtractedQuestions
		_c.mutation.SetExtractedQuestions(v)
	}
	if _, ok := _c.mutation.ApprovedQuestions(); !ok {
		v := extractionjob.DefaultApprovedQuestions
		_c.mutation.SetApprovedQuestions(v)
	}
	if _, ok := _c.mutation.ImportedQuestions(); !ok {
		v := extractionjob.DefaultImportedQuestions
		_c.mutation.SetImportedQuestions(v)
	}
	if _, ok := _c.mutation.Provider(); !ok {
		v := extractionjob.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.EstimatedCostCents(); !ok {
		v := extractionjob.DefaultEstimatedCostCents
		_c.mutation.SetEstimatedCostCents(v)
	}
	if _, ok := _c.mutation.ActualCostCents(); !ok {
		v := extractionjob.DefaultActualCostCents
		_c.mutation.SetActualCostCents(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := extractionjob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExtractionJob.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PdfFilename(); !ok {
		return &ValidationError{Name: "pdf_filename", err: errors.New(`ent: missing required field "ExtractionJob.pdf_filename"`)}
	}
	if v, ok := _c.mutation.PdfFilename(); ok {
		if err := extractionjob.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PdfPath(); !ok {
		return &ValidationError{Name: "pdf_path", err: errors.New(`ent: missing required field "ExtractionJob.pdf_path"`)}
	}
	if v, ok := _c.mutation.PdfPath(); ok {
		if err := extractionjob.PdfPathValidator(v); err != nil {
			return &ValidationError{Name: "pdf_path", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PdfHash(); !ok {
		return &ValidationError{Name: "pdf_hash", err: errors.New(`ent: missing required field "ExtractionJob.pdf_hash"`)}
	}
	if v, ok := _c.mutation.PdfHash(); ok {
		if err := extractionjob.PdfHashValidator(v); err != nil {
			return &ValidationError{Name: "pdf_hash", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPages(); !ok {
		return &ValidationError{Name: "total_pages", err: errors.New(`ent: missing required field "ExtractionJob.total_pages"`)}
	}
	if v, ok := _c.mutation.TotalPages(); ok {
		if err := extractionjob.TotalPagesValidator(v); err != nil {
			return &ValidationError{Name: "total_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.total_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedPages(); !ok {
		return &ValidationError{Name: "processed_pages", err: errors.New(`ent: missing required field "ExtractionJob.processed_pages"`)}
	}
	if v, ok := _c.mutation.ProcessedPages(); ok {
		if err := extractionjob.ProcessedPagesValidator(v); err != nil {
			return &ValidationError{Name: "processed_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.processed_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionPages(); !ok {
		return &ValidationError{Name: "question_pages", err: errors.New(`ent: missing required field "ExtractionJob.question_pages"`)}
	}
	if v, ok := _c.mutation.QuestionPages(); ok {
		if err := extractionjob.QuestionPagesValidator(v); err != nil {
			return &ValidationError{Name: "question_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.question_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkippedPages(); !ok {
		return &ValidationError{Name: "skipped_pages", err: errors.New(`ent: missing required field "ExtractionJob.skipped_pages"`)}
	}
	if v, ok := _c.mutation.SkippedPages(); ok {
		if err := extractionjob.SkippedPagesValidator(v); err != nil {
			return &ValidationError{Name: "skipped_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.skipped_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedPages(); !ok {
		return &ValidationError{Name: "failed_pages", err: errors.New(`ent: missing required field "ExtractionJob.failed_pages"`)}
	}
	if v, ok := _c.mutation.FailedPages(); ok {
		if err := extractionjob.FailedPagesValidator(v); err != nil {
			return &ValidationError{Name: "failed_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.failed_pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedQuestions(); !ok {
		return &ValidationError{Name: "extracted_questions", err: errors.New(`ent: missing required field "ExtractionJob.extracted_questions"`)}
	}
	if v, ok := _c.mutation.ExtractedQuestions(); ok {
		if err := extractionjob.ExtractedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "extracted_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.extracted_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovedQuestions(); !ok {
		return &ValidationError{Name: "approved_questions", err: errors.New(`ent: missing required field "ExtractionJob.approved_questions"`)}
	}
	if v, ok := _c.mutation.ApprovedQuestions(); ok {
		if err := extractionjob.ApprovedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "approved_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.approved_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedQuestions(); !ok {
		return &ValidationError{Name: "imported_questions", err: errors.New(`ent: missing required field "ExtractionJob.imported_questions"`)}
	}
	if v, ok := _c.mutation.ImportedQuestions(); ok {
		if err := extractionjob.ImportedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "imported_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.imported_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ExtractionJob.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := extractionjob.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedCostCents(); !ok {
		return &ValidationError{Name: "estimated_cost_cents", err: errors.New(`ent: missing required field "ExtractionJob.estimated_cost_cents"`)}
	}
	if v, ok := _c.mutation.EstimatedCostCents(); ok {
		if err := extractionjob.EstimatedCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "estimated_cost_cents", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.estimated_cost_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActualCostCents(); !ok {
		return &ValidationError{Name: "actual_cost_cents", err: errors.New(`ent: missing required field "ExtractionJob.actual_cost_cents"`)}
	}
	if v, ok := _c.mutation.ActualCostCents(); ok {
		if err := extractionjob.ActualCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "actual_cost_cents", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.actual_cost_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ExtractionJob.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := extractionjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionJob.updated_at"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(extractionjob.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TargetModuleID(); ok {
		_spec.SetField(extractionjob.FieldTargetModuleID, field.TypeUUID, value)
		_node.TargetModuleID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PdfFilename(); ok {
		_spec.SetField(extractionjob.FieldPdfFilename, field.TypeString, value)
		_node.PdfFilename = value
	}
	if value, ok := _c.mutation.PdfPath(); ok {
		_spec.SetField(extractionjob.FieldPdfPath, field.TypeString, value)
		_node.PdfPath = value
	}
	if value, ok := _c.mutation.PdfHash(); ok {
		_spec.SetField(extractionjob.FieldPdfHash, field.TypeString, value)
		_node.PdfHash = value
	}
	if value, ok := _c.mutation.TotalPages(); ok {
		_spec.SetField(extractionjob.FieldTotalPages, field.TypeInt, value)
		_node.TotalPages = value
	}
	if value, ok := _c.mutation.ProcessedPages(); ok {
		_spec.SetField(extractionjob.FieldProcessedPages, field.TypeInt, value)
		_node.ProcessedPages = value
	}
	if value, ok := _c.mutation.QuestionPages(); ok {
		_spec.SetField(extractionjob.FieldQuestionPages, field.TypeInt, value)
		_node.QuestionPages = value
	}
	if value, ok := _c.mutation.SkippedPages(); ok {
		_spec.SetField(extractionjob.FieldSkippedPages, field.TypeInt, value)
		_node.SkippedPages = value
	}
	if value, ok := _c.mutation.FailedPages(); ok {
		_spec.SetField(extractionjob.FieldFailedPages, field.TypeInt, value)
		_node.FailedPages = value
	}
	if value, ok := _c.mutation.ExtractedQuestions(); ok {
		_spec.SetField(extractionjob.FieldExtractedQuestions, field.TypeInt, value)
		_node.ExtractedQuestions = value
	}
	if value, ok := _c.mutation.ApprovedQuestions(); ok {
		_spec.SetField(extractionjob.FieldApprovedQuestions, field.TypeInt, value)
		_node.ApprovedQuestions = value
	}
	if value, ok := _c.mutation.ImportedQuestions(); ok {
		_spec.SetField(extractionjob.FieldImportedQuestions, field.TypeInt, value)
		_node.ImportedQuestions = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(extractionjob.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EstimatedCostCents(); ok {
		_spec.SetField(extractionjob.FieldEstimatedCostCents, field.TypeInt, value)
		_node.EstimatedCostCents = value
	}
	if value, ok := _c.mutation.ActualCostCents(); ok {
		_spec.SetField(extractionjob.FieldActualCostCents, field.TypeInt, value)
		_node.ActualCostCents = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(extractionjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LastErrorPage(); ok {
		_spec.SetField(extractionjob.FieldLastErrorPage, field.TypeInt, value)
		_node.LastErrorPage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(extractionjob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(extractionjob.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.TestConfigs(); ok {
		_spec.SetField(extractionjob.FieldTestConfigs, field.TypeJSON, value)
		_node.TestConfigs = value
	}
	if value, ok := _c.mutation.CreatedTestIds(); ok {
		_spec.SetField(extractionjob.FieldCreatedTestIds, field.TypeJSON, value)
		_node.CreatedTestIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedquestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PassagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PassagesTable,
			Columns: []string{extractionjob.PassagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedpassage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
