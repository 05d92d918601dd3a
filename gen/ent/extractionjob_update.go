// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExtractionJobUpdate) SetUserID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableUserID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTargetModuleID sets the "target_module_id" field.
func (_u *ExtractionJobUpdate) SetTargetModuleID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetTargetModuleID(v)
	return _u
}

// SetNillableTargetModuleID sets the "target_module_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTargetModuleID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTargetModuleID(*v)
	}
	return _u
}

// ClearTargetModuleID clears the value of the "target_module_id" field.
func (_u *ExtractionJobUpdate) ClearTargetModuleID() *ExtractionJobUpdate {
	_u.mutation.ClearTargetModuleID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPdfFilename sets the "pdf_filename" field.
func (_u *ExtractionJobUpdate) SetPdfFilename(v string) *ExtractionJobUpdate {
	_u.mutation.SetPdfFilename(v)
	return _u
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillablePdfFilename(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetPdfFilename(*v)
	}
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *ExtractionJobUpdate) SetPdfPath(v string) *ExtractionJobUpdate {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillablePdfPath(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// SetPdfHash sets the "pdf_hash" field.
func (_u *ExtractionJobUpdate) SetPdfHash(v string) *ExtractionJobUpdate {
	_u.mutation.SetPdfHash(v)
	return _u
}

// SetNillablePdfHash sets the "pdf_hash" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillablePdfHash(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetPdfHash(*v)
	}
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *ExtractionJobUpdate) SetTotalPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTotalPages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *ExtractionJobUpdate) AddTotalPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetProcessedPages sets the "processed_pages" field.
func (_u *ExtractionJobUpdate) SetProcessedPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetProcessedPages()
	_u.mutation.SetProcessedPages(v)
	return _u
}

// SetNillableProcessedPages sets the "processed_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableProcessedPages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetProcessedPages(*v)
	}
	return _u
}

// AddProcessedPages adds value to the "processed_pages" field.
func (_u *ExtractionJobUpdate) AddProcessedPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddProcessedPages(v)
	return _u
}

// SetQuestionPages sets the "question_pages" field.
func (_u *ExtractionJobUpdate) SetQuestionPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetQuestionPages()
	_u.mutation.SetQuestionPages(v)
	return _u
}

// SetNillableQuestionPages sets the "question_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableQuestionPages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetQuestionPages(*v)
	}
	return _u
}

// AddQuestionPages adds value to the "question_pages" field.
func (_u *ExtractionJobUpdate) AddQuestionPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddQuestionPages(v)
	return _u
}

// SetSkippedPages sets the "skipped_pages" field.
func (_u *ExtractionJobUpdate) SetSkippedPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetSkippedPages()
	_u.mutation.SetSkippedPages(v)
	return _u
}

// SetNillableSkippedPages sets the "skipped_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableSkippedPages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetSkippedPages(*v)
	}
	return _u
}

// AddSkippedPages adds value to the "skipped_pages" field.
func (_u *ExtractionJobUpdate) AddSkippedPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddSkippedPages(v)
	return _u
}

// SetFailedPages sets the "failed_pages" field.
func (_u *ExtractionJobUpdate) SetFailedPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetFailedPages()
	_u.mutation.SetFailedPages(v)
	return _u
}

// SetNillableFailedPages sets the "failed_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFailedPages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFailedPages(*v)
	}
	return _u
}

// AddFailedPages adds value to the "failed_pages" field.
func (_u *ExtractionJobUpdate) AddFailedPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddFailedPages(v)
	return _u
}

// SetExtractedQuestions sets the "extracted_questions" field.
func (_u *ExtractionJobUpdate) SetExtractedQuestions(v int) *ExtractionJobUpdate {
	_u.mutation.ResetExtractedQuestions()
	_u.mutation.SetExtractedQuestions(v)
	return _u
}

// SetNillableExtractedQuestions sets the "extracted_questions" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableExtractedQuestions(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetExtractedQuestions(*v)
	}
	return _u
}

// AddExtractedQuestions adds value to the "extracted_questions" field.
func (_u *ExtractionJobUpdate) AddExtractedQuestions(v int) *ExtractionJobUpdate {
	_u.mutation.AddExtractedQuestions(v)
	return _u
}

// SetApprovedQuestions sets the "approved_questions" field.
func (_u *ExtractionJobUpdate) SetApprovedQuestions(v int) *ExtractionJobUpdate {
	_u.mutation.ResetApprovedQuestions()
	_u.mutation.SetApprovedQuestions(v)
	return _u
}

// SetNillableApprovedQuestions sets the "approved_questions" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableApprovedQuestions(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetApprovedQuestions(*v)
	}
	return _u
}

// AddApprovedQuestions adds value to the "approved_questions" field.
func (_u *ExtractionJobUpdate) AddApprovedQuestions(v int) *ExtractionJobUpdate {
	_u.mutation.AddApprovedQuestions(v)
	return _u
}

// SetImportedQuestions sets the "imported_questions" field.
func (_u *ExtractionJobUpdate) SetImportedQuestions(v int) *ExtractionJobUpdate {
	_u.mutation.ResetImportedQuestions()
	_u.mutation.SetImportedQuestions(v)
	return _u
}

// SetNillableImportedQuestions sets the "imported_questions" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableImportedQuestions(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetImportedQuestions(*v)
	}
	return _u
}

// AddImportedQuestions adds value to the "imported_questions" field.
func (_u *ExtractionJobUpdate) AddImportedQuestions(v int) *ExtractionJobUpdate {
	_u.mutation.AddImportedQuestions(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExtractionJobUpdate) SetProvider(v string) *ExtractionJobUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableProvider(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (_u *ExtractionJobUpdate) SetEstimatedCostCents(v int) *ExtractionJobUpdate {
	_u.mutation.ResetEstimatedCostCents()
	_u.mutation.SetEstimatedCostCents(v)
	return _u
}

// SetNillableEstimatedCostCents sets the "estimated_cost_cents" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableEstimatedCostCents(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetEstimatedCostCents(*v)
	}
	return _u
}

// AddEstimatedCostCents adds value to the "estimated_cost_cents" field.
func (_u *ExtractionJobUpdate) AddEstimatedCostCents(v int) *ExtractionJobUpdate {
	_u.mutation.AddEstimatedCostCents(v)
	return _u
}

// SetActualCostCents sets the "actual_cost_cents" field.
func (_u *ExtractionJobUpdate) SetActualCostCents(v int) *ExtractionJobUpdate {
	_u.mutation.ResetActualCostCents()
	_u.mutation.SetActualCostCents(v)
	return _u
}

// SetNillableActualCostCents sets the "actual_cost_cents" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableActualCostCents(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetActualCostCents(*v)
	}
	return _u
}

// AddActualCostCents adds value to the "actual_cost_cents" field.
func (_u *ExtractionJobUpdate) AddActualCostCents(v int) *ExtractionJobUpdate {
	_u.mutation.AddActualCostCents(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdate) SetStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionJobUpdate) ClearStartedAt() *ExtractionJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExtractionJobUpdate) SetCompletedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableCompletedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExtractionJobUpdate) ClearCompletedAt() *ExtractionJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLastErrorPage sets the "last_error_page" field.
func (_u *ExtractionJobUpdate) SetLastErrorPage(v int) *ExtractionJobUpdate {
	_u.mutation.ResetLastErrorPage()
	_u.mutation.SetLastErrorPage(v)
	return _u
}

// SetNillableLastErrorPage sets the "last_error_page" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableLastErrorPage(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetLastErrorPage(*v)
	}
	return _u
}

// AddLastErrorPage adds value to the "last_error_page" field.
func (_u *ExtractionJobUpdate) AddLastErrorPage(v int) *ExtractionJobUpdate {
	_u.mutation.AddLastErrorPage(v)
	return _u
}

// ClearLastErrorPage clears the value of the "last_error_page" field.
func (_u *ExtractionJobUpdate) ClearLastErrorPage() *ExtractionJobUpdate {
	_u.mutation.ClearLastErrorPage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionJobUpdate) SetRetryCount(v int) *ExtractionJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableRetryCount(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionJobUpdate) AddRetryCount(v int) *ExtractionJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ExtractionJobUpdate) SetTaskID(v string) *ExtractionJobUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTaskID(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ExtractionJobUpdate) ClearTaskID() *ExtractionJobUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetTestConfigs sets the "test_configs" field.
func (_u *ExtractionJobUpdate) SetTestConfigs(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.SetTestConfigs(v)
	return _u
}

// AppendTestConfigs appends value to the "test_configs" field.
func (_u *ExtractionJobUpdate) AppendTestConfigs(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.AppendTestConfigs(v)
	return _u
}

// ClearTestConfigs clears the value of the "test_configs" field.
func (_u *ExtractionJobUpdate) ClearTestConfigs() *ExtractionJobUpdate {
	_u.mutation.ClearTestConfigs()
	return _u
}

// SetCreatedTestIds sets the "created_test_ids" field.
func (_u *ExtractionJobUpdate) SetCreatedTestIds(v []uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetCreatedTestIds(v)
	return _u
}

// AppendCreatedTestIds appends value to the "created_test_ids" field.
func (_u *ExtractionJobUpdate) AppendCreatedTestIds(v []uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.AppendCreatedTestIds(v)
	return _u
}

// ClearCreatedTestIds clears the value of the "created_test_ids" field.
func (_u *ExtractionJobUpdate) ClearCreatedTestIds() *ExtractionJobUpdate {
	_u.mutation.ClearCreatedTestIds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdate) SetUpdatedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPageIDs adds the "pages" edge to the JobPage entity by IDs.
func (_u *ExtractionJobUpdate) AddPageIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the JobPage entity.
func (_u *ExtractionJobUpdate) AddPages(v ...*JobPage) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_u *ExtractionJobUpdate) AddQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractionJobUpdate) AddQuestions(v ...*ExtractedQuestion) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by IDs.
func (_u *ExtractionJobUpdate) AddPassageIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.AddPassageIDs(ids...)
	return _u
}

// AddPassages adds the "passages" edges to the ExtractedPassage entity.
func (_u *ExtractionJobUpdate) AddPassages(v ...*ExtractedPassage) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassageIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the JobPage entity.
func (_u *ExtractionJobUpdate) ClearPages() *ExtractionJobUpdate {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to JobPage entities by IDs.
func (_u *ExtractionJobUpdate) RemovePageIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to JobPage entities.
func (_u *ExtractionJobUpdate) RemovePages(v ...*JobPage) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractionJobUpdate) ClearQuestions() *ExtractionJobUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExtractedQuestion entities by IDs.
func (_u *ExtractionJobUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExtractedQuestion entities.
func (_u *ExtractionJobUpdate) RemoveQuestions(v ...*ExtractedQuestion) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearPassages clears all "passages" edges to the ExtractedPassage entity.
func (_u *ExtractionJobUpdate) ClearPassages() *ExtractionJobUpdate {
	_u.mutation.ClearPassages()
	return _u
}

// RemovePassageIDs removes the "passages" edge to ExtractedPassage entities by IDs.
func (_u *ExtractionJobUpdate) RemovePassageIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.RemovePassageIDs(ids...)
	return _u
}

// RemovePassages removes "passages" edges to ExtractedPassage entities.
func (_u *ExtractionJobUpdate) RemovePassages(v ...*ExtractedPassage) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfFilename(); ok {
		if err := extractionjob.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfPath(); ok {
		if err := extractionjob.PdfPathValidator(v); err != nil {
			return &ValidationError{Name: "pdf_path", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfHash(); ok {
		if err := extractionjob.PdfHashValidator(v); err != nil {
			return &ValidationError{Name: "pdf_hash", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPages(); ok {
		if err := extractionjob.TotalPagesValidator(v); err != nil {
			return &ValidationError{Name: "total_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.total_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedPages(); ok {
		if err := extractionjob.ProcessedPagesValidator(v); err != nil {
			return &ValidationError{Name: "processed_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.processed_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionPages(); ok {
		if err := extractionjob.QuestionPagesValidator(v); err != nil {
			return &ValidationError{Name: "question_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.question_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkippedPages(); ok {
		if err := extractionjob.SkippedPagesValidator(v); err != nil {
			return &ValidationError{Name: "skipped_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.skipped_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedPages(); ok {
		if err := extractionjob.FailedPagesValidator(v); err != nil {
			return &ValidationError{Name: "failed_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.failed_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractedQuestions(); ok {
		if err := extractionjob.ExtractedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "extracted_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.extracted_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovedQuestions(); ok {
		if err := extractionjob.ApprovedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "approved_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.approved_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImportedQuestions(); ok {
		if err := extractionjob.ImportedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "imported_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.imported_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := extractionjob.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedCostCents(); ok {
		if err := extractionjob.EstimatedCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "estimated_cost_cents", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.estimated_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActualCostCents(); ok {
		if err := extractionjob.ActualCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "actual_cost_cents", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.actual_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := extractionjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(extractionjob.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TargetModuleID(); ok {
		_spec.SetField(extractionjob.FieldTargetModuleID, field.TypeUUID, value)
	}
	if _u.mutation.TargetModuleIDCleared() {
		_spec.ClearField(extractionjob.FieldTargetModuleID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfFilename(); ok {
		_spec.SetField(extractionjob.FieldPdfFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(extractionjob.FieldPdfPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfHash(); ok {
		_spec.SetField(extractionjob.FieldPdfHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedPages(); ok {
		_spec.SetField(extractionjob.FieldProcessedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedPages(); ok {
		_spec.AddField(extractionjob.FieldProcessedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionPages(); ok {
		_spec.SetField(extractionjob.FieldQuestionPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionPages(); ok {
		_spec.AddField(extractionjob.FieldQuestionPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedPages(); ok {
		_spec.SetField(extractionjob.FieldSkippedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedPages(); ok {
		_spec.AddField(extractionjob.FieldSkippedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedPages(); ok {
		_spec.SetField(extractionjob.FieldFailedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedPages(); ok {
		_spec.AddField(extractionjob.FieldFailedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedQuestions(); ok {
		_spec.SetField(extractionjob.FieldExtractedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedQuestions(); ok {
		_spec.AddField(extractionjob.FieldExtractedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovedQuestions(); ok {
		_spec.SetField(extractionjob.FieldApprovedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovedQuestions(); ok {
		_spec.AddField(extractionjob.FieldApprovedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImportedQuestions(); ok {
		_spec.SetField(extractionjob.FieldImportedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImportedQuestions(); ok {
		_spec.AddField(extractionjob.FieldImportedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(extractionjob.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedCostCents(); ok {
		_spec.SetField(extractionjob.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostCents(); ok {
		_spec.AddField(extractionjob.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualCostCents(); ok {
		_spec.SetField(extractionjob.FieldActualCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualCostCents(); ok {
		_spec.AddField(extractionjob.FieldActualCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(extractionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(extractionjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorPage(); ok {
		_spec.SetField(extractionjob.FieldLastErrorPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastErrorPage(); ok {
		_spec.AddField(extractionjob.FieldLastErrorPage, field.TypeInt, value)
	}
	if _u.mutation.LastErrorPageCleared() {
		_spec.ClearField(extractionjob.FieldLastErrorPage, field.TypeInt)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(extractionjob.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(extractionjob.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.TestConfigs(); ok {
		_spec.SetField(extractionjob.FieldTestConfigs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestConfigs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldTestConfigs, value)
		})
	}
	if _u.mutation.TestConfigsCleared() {
		_spec.ClearField(extractionjob.FieldTestConfigs, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedTestIds(); ok {
		_spec.SetField(extractionjob.FieldCreatedTestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreatedTestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldCreatedTestIds, value)
		})
	}
	if _u.mutation.CreatedTestIdsCleared() {
		_spec.ClearField(extractionjob.FieldCreatedTestIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPassagesIDs(); len(nodes) > 0 && !_u.mutation.PassagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExtractionJobUpdateOne) SetUserID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableUserID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTargetModuleID sets the "target_module_id" field.
func (_u *ExtractionJobUpdateOne) SetTargetModuleID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetTargetModuleID(v)
	return _u
}

// SetNillableTargetModuleID sets the "target_module_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTargetModuleID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTargetModuleID(*v)
	}
	return _u
}

// ClearTargetModuleID clears the value of the "target_module_id" field.
func (_u *ExtractionJobUpdateOne) ClearTargetModuleID() *ExtractionJobUpdateOne {
	_u.mutation.ClearTargetModuleID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPdfFilename sets the "pdf_filename" field.
func (_u *ExtractionJobUpdateOne) SetPdfFilename(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetPdfFilename(v)
	return _u
}

// SetNillablePdfFilename sets the "pdf_filename" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillablePdfFilename(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetPdfFilename(*v)
	}
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *ExtractionJobUpdateOne) SetPdfPath(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillablePdfPath(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// SetPdfHash sets the "pdf_hash" field.
func (_u *ExtractionJobUpdateOne) SetPdfHash(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetPdfHash(v)
	return _u
}

// SetNillablePdfHash sets the "pdf_hash" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillablePdfHash(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetPdfHash(*v)
	}
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *ExtractionJobUpdateOne) SetTotalPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTotalPages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *ExtractionJobUpdateOne) AddTotalPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetProcessedPages sets the "processed_pages" field.
func (_u *ExtractionJobUpdateOne) SetProcessedPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetProcessedPages()
	_u.mutation.SetProcessedPages(v)
	return _u
}

// SetNillableProcessedPages sets the "processed_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableProcessedPages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetProcessedPages(*v)
	}
	return _u
}

// AddProcessedPages adds value to the "processed_pages" field.
func (_u *ExtractionJobUpdateOne) AddProcessedPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddProcessedPages(v)
	return _u
}

// SetQuestionPages sets the "question_pages" field.
func (_u *ExtractionJobUpdateOne) SetQuestionPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetQuestionPages()
	_u.mutation.SetQuestionPages(v)
	return _u
}

// SetNillableQuestionPages sets the "question_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableQuestionPages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetQuestionPages(*v)
	}
	return _u
}

// AddQuestionPages adds value to the "question_pages" field.
func (_u *ExtractionJobUpdateOne) AddQuestionPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddQuestionPages(v)
	return _u
}

// SetSkippedPages sets the "skipped_pages" field.
func (_u *ExtractionJobUpdateOne) SetSkippedPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetSkippedPages()
	_u.mutation.SetSkippedPages(v)
	return _u
}

// SetNillableSkippedPages sets the "skipped_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableSkippedPages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetSkippedPages(*v)
	}
	return _u
}

// AddSkippedPages adds value to the "skipped_pages" field.
func (_u *ExtractionJobUpdateOne) AddSkippedPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddSkippedPages(v)
	return _u
}

// SetFailedPages sets the "failed_pages" field.
func (_u *ExtractionJobUpdateOne) SetFailedPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetFailedPages()
	_u.mutation.SetFailedPages(v)
	return _u
}

// SetNillableFailedPages sets the "failed_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFailedPages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFailedPages(*v)
	}
	return _u
}

// AddFailedPages adds value to the "failed_pages" field.
func (_u *ExtractionJobUpdateOne) AddFailedPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddFailedPages(v)
	return _u
}

// SetExtractedQuestions sets the "extracted_questions" field.
func (_u *ExtractionJobUpdateOne) SetExtractedQuestions(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetExtractedQuestions()
	_u.mutation.SetExtractedQuestions(v)
	return _u
}

// SetNillableExtractedQuestions sets the "extracted_questions" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableExtractedQuestions(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetExtractedQuestions(*v)
	}
	return _u
}

// AddExtractedQuestions adds value to the "extracted_questions" field.
func (_u *ExtractionJobUpdateOne) AddExtractedQuestions(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddExtractedQuestions(v)
	return _u
}

// SetApprovedQuestions sets the "approved_questions" field.
func (_u *ExtractionJobUpdateOne) SetApprovedQuestions(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetApprovedQuestions()
	_u.mutation.SetApprovedQuestions(v)
	return _u
}

// SetNillableApprovedQuestions sets the "approved_questions" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableApprovedQuestions(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetApprovedQuestions(*v)
	}
	return _u
}

// AddApprovedQuestions adds value to the "approved_questions" field.
func (_u *ExtractionJobUpdateOne) AddApprovedQuestions(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddApprovedQuestions(v)
	return _u
}

// SetImportedQuestions sets the "imported_questions" field.
func (_u *ExtractionJobUpdateOne) SetImportedQuestions(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetImportedQuestions()
	_u.mutation.SetImportedQuestions(v)
	return _u
}

// SetNillableImportedQuestions sets the "imported_questions" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableImportedQuestions(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetImportedQuestions(*v)
	}
	return _u
}

// AddImportedQuestions adds value to the "imported_questions" field.
func (_u *ExtractionJobUpdateOne) AddImportedQuestions(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddImportedQuestions(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ExtractionJobUpdateOne) SetProvider(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableProvider(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (_u *ExtractionJobUpdateOne) SetEstimatedCostCents(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetEstimatedCostCents()
	_u.mutation.SetEstimatedCostCents(v)
	return _u
}

// SetNillableEstimatedCostCents sets the "estimated_cost_cents" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableEstimatedCostCents(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetEstimatedCostCents(*v)
	}
	return _u
}

// AddEstimatedCostCents adds value to the "estimated_cost_cents" field.
func (_u *ExtractionJobUpdateOne) AddEstimatedCostCents(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddEstimatedCostCents(v)
	return _u
}

// SetActualCostCents sets the "actual_cost_cents" field.
func (_u *ExtractionJobUpdateOne) SetActualCostCents(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetActualCostCents()
	_u.mutation.SetActualCostCents(v)
	return _u
}

// SetNillableActualCostCents sets the "actual_cost_cents" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableActualCostCents(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetActualCostCents(*v)
	}
	return _u
}

// AddActualCostCents adds value to the "actual_cost_cents" field.
func (_u *ExtractionJobUpdateOne) AddActualCostCents(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddActualCostCents(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdateOne) SetStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionJobUpdateOne) ClearStartedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExtractionJobUpdateOne) SetCompletedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExtractionJobUpdateOne) ClearCompletedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLastErrorPage sets the "last_error_page" field.
func (_u *ExtractionJobUpdateOne) SetLastErrorPage(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetLastErrorPage()
	_u.mutation.SetLastErrorPage(v)
	return _u
}

// SetNillableLastErrorPage sets the "last_error_page" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableLastErrorPage(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetLastErrorPage(*v)
	}
	return _u
}

// AddLastErrorPage adds value to the "last_error_page" field.
func (_u *ExtractionJobUpdateOne) AddLastErrorPage(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddLastErrorPage(v)
	return _u
}

// ClearLastErrorPage clears the value of the "last_error_page" field.
func (_u *ExtractionJobUpdateOne) ClearLastErrorPage() *ExtractionJobUpdateOne {
	_u.mutation.ClearLastErrorPage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionJobUpdateOne) SetRetryCount(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableRetryCount(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionJobUpdateOne) AddRetryCount(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ExtractionJobUpdateOne) SetTaskID(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTaskID(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ExtractionJobUpdateOne) ClearTaskID() *ExtractionJobUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetTestConfigs sets the "test_configs" field.
func (_u *ExtractionJobUpdateOne) SetTestConfigs(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.SetTestConfigs(v)
	return _u
}

// AppendTestConfigs appends value to the "test_configs" field.
func (_u *ExtractionJobUpdateOne) AppendTestConfigs(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.AppendTestConfigs(v)
	return _u
}

// ClearTestConfigs clears the value of the "test_configs" field.
func (_u *ExtractionJobUpdateOne) ClearTestConfigs() *ExtractionJobUpdateOne {
	_u.mutation.ClearTestConfigs()
	return _u
}

// SetCreatedTestIds sets the "created_test_ids" field.
func (_u *ExtractionJobUpdateOne) SetCreatedTestIds(v []uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetCreatedTestIds(v)
	return _u
}

// AppendCreatedTestIds appends value to the "created_test_ids" field.
func (_u *ExtractionJobUpdateOne) AppendCreatedTestIds(v []uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.AppendCreatedTestIds(v)
	return _u
}

// ClearCreatedTestIds clears the value of the "created_test_ids" field.
func (_u *ExtractionJobUpdateOne) ClearCreatedTestIds() *ExtractionJobUpdateOne {
	_u.mutation.ClearCreatedTestIds()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdateOne) SetUpdatedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPageIDs adds the "pages" edge to the JobPage entity by IDs.
func (_u *ExtractionJobUpdateOne) AddPageIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the JobPage entity.
func (_u *ExtractionJobUpdateOne) AddPages(v ...*JobPage) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_u *ExtractionJobUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractionJobUpdateOne) AddQuestions(v ...*ExtractedQuestion) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by IDs.
func (_u *ExtractionJobUpdateOne) AddPassageIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.AddPassageIDs(ids...)
	return _u
}

// AddPassages adds the "passages" edges to the ExtractedPassage entity.
func (_u *ExtractionJobUpdateOne) AddPassages(v ...*ExtractedPassage) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassageIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the JobPage entity.
func (_u *ExtractionJobUpdateOne) ClearPages() *ExtractionJobUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to JobPage entities by IDs.
func (_u *ExtractionJobUpdateOne) RemovePageIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to JobPage entities.
func (_u *ExtractionJobUpdateOne) RemovePages(v ...*JobPage) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractionJobUpdateOne) ClearQuestions() *ExtractionJobUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExtractedQuestion entities by IDs.
func (_u *ExtractionJobUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExtractedQuestion entities.
func (_u *ExtractionJobUpdateOne) RemoveQuestions(v ...*ExtractedQuestion) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearPassages clears all "passages" edges to the ExtractedPassage entity.
func (_u *ExtractionJobUpdateOne) ClearPassages() *ExtractionJobUpdateOne {
	_u.mutation.ClearPassages()
	return _u
}

// RemovePassageIDs removes the "passages" edge to ExtractedPassage entities by IDs.
func (_u *ExtractionJobUpdateOne) RemovePassageIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.RemovePassageIDs(ids...)
	return _u
}

// RemovePassages removes "passages" edges to ExtractedPassage entities.
func (_u *ExtractionJobUpdateOne) RemovePassages(v ...*ExtractedPassage) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassageIDs(ids...)
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfFilename(); ok {
		if err := extractionjob.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfPath(); ok {
		if err := extractionjob.PdfPathValidator(v); err != nil {
			return &ValidationError{Name: "pdf_path", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfHash(); ok {
		if err := extractionjob.PdfHashValidator(v); err != nil {
			return &ValidationError{Name: "pdf_hash", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.pdf_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPages(); ok {
		if err := extractionjob.TotalPagesValidator(v); err != nil {
			return &ValidationError{Name: "total_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.total_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedPages(); ok {
		if err := extractionjob.ProcessedPagesValidator(v); err != nil {
			return &ValidationError{Name: "processed_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.processed_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionPages(); ok {
		if err := extractionjob.QuestionPagesValidator(v); err != nil {
			return &ValidationError{Name: "question_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.question_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkippedPages(); ok {
		if err := extractionjob.SkippedPagesValidator(v); err != nil {
			return &ValidationError{Name: "skipped_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.skipped_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedPages(); ok {
		if err := extractionjob.FailedPagesValidator(v); err != nil {
			return &ValidationError{Name: "failed_pages", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.failed_pages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractedQuestions(); ok {
		if err := extractionjob.ExtractedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "extracted_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.extracted_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovedQuestions(); ok {
		if err := extractionjob.ApprovedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "approved_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.approved_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImportedQuestions(); ok {
		if err := extractionjob.ImportedQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "imported_questions", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.imported_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := extractionjob.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedCostCents(); ok {
		if err := extractionjob.EstimatedCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "estimated_cost_cents", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.estimated_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActualCostCents(); ok {
		if err := extractionjob.ActualCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "actual_cost_cents", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.actual_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := extractionjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(extractionjob.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TargetModuleID(); ok {
		_spec.SetField(extractionjob.FieldTargetModuleID, field.TypeUUID, value)
	}
	if _u.mutation.TargetModuleIDCleared() {
		_spec.ClearField(extractionjob.FieldTargetModuleID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfFilename(); ok {
		_spec.SetField(extractionjob.FieldPdfFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(extractionjob.FieldPdfPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdfHash(); ok {
		_spec.SetField(extractionjob.FieldPdfHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedPages(); ok {
		_spec.SetField(extractionjob.FieldProcessedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedPages(); ok {
		_spec.AddField(extractionjob.FieldProcessedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionPages(); ok {
		_spec.SetField(extractionjob.FieldQuestionPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionPages(); ok {
		_spec.AddField(extractionjob.FieldQuestionPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedPages(); ok {
		_spec.SetField(extractionjob.FieldSkippedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedPages(); ok {
		_spec.AddField(extractionjob.FieldSkippedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedPages(); ok {
		_spec.SetField(extractionjob.FieldFailedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedPages(); ok {
		_spec.AddField(extractionjob.FieldFailedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedQuestions(); ok {
		_spec.SetField(extractionjob.FieldExtractedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedQuestions(); ok {
		_spec.AddField(extractionjob.FieldExtractedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovedQuestions(); ok {
		_spec.SetField(extractionjob.FieldApprovedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovedQuestions(); ok {
		_spec.AddField(extractionjob.FieldApprovedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImportedQuestions(); ok {
		_spec.SetField(extractionjob.FieldImportedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImportedQuestions(); ok {
		_spec.AddField(extractionjob.FieldImportedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(extractionjob.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedCostCents(); ok {
		_spec.SetField(extractionjob.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostCents(); ok {
		_spec.AddField(extractionjob.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualCostCents(); ok {
		_spec.SetField(extractionjob.FieldActualCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualCostCents(); ok {
		_spec.AddField(extractionjob.FieldActualCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(extractionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(extractionjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorPage(); ok {
		_spec.SetField(extractionjob.FieldLastErrorPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastErrorPage(); ok {
		_spec.AddField(extractionjob.FieldLastErrorPage, field.TypeInt, value)
	}
	if _u.mutation.LastErrorPageCleared() {
		_spec.ClearField(extractionjob.FieldLastErrorPage, field.TypeInt)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(extractionjob.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(extractionjob.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.TestConfigs(); ok {
		_spec.SetField(extractionjob.FieldTestConfigs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestConfigs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldTestConfigs, value)
		})
	}
	if _u.mutation.TestConfigsCleared() {
		_spec.ClearField(extractionjob.FieldTestConfigs, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedTestIds(); ok {
		_spec.SetField(extractionjob.FieldCreatedTestIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreatedTestIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldCreatedTestIds, value)
		})
	}
	if _u.mutation.CreatedTestIdsCleared() {
		_spec.ClearField(extractionjob.FieldCreatedTestIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPassagesIDs(); len(nodes) > 0 && !_u.mutation.PassagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
