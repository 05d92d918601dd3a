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

// JobPageUpdate is the builder for updating JobPage entities.
type JobPageUpdate struct {
	config
	hooks    []Hook
	mutation *JobPageMutation
}

// Where appends a list predicates to the JobPageUpdate builder.
func (_u *JobPageUpdate) Where(ps ...predicate.JobPage) *JobPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobPageUpdate) SetJobID(v uuid.UUID) *JobPageUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableJobID(v *uuid.UUID) *JobPageUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *JobPageUpdate) SetPageNumber(v int) *JobPageUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillablePageNumber(v *int) *JobPageUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *JobPageUpdate) AddPageNumber(v int) *JobPageUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetMarkdown sets the "markdown" field.
func (_u *JobPageUpdate) SetMarkdown(v string) *JobPageUpdate {
	_u.mutation.SetMarkdown(v)
	return _u
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableMarkdown(v *string) *JobPageUpdate {
	if v != nil {
		_u.SetMarkdown(*v)
	}
	return _u
}

// ClearMarkdown clears the value of the "markdown" field.
func (_u *JobPageUpdate) ClearMarkdown() *JobPageUpdate {
	_u.mutation.ClearMarkdown()
	return _u
}

// SetIsQuestionPage sets the "is_question_page" field.
func (_u *JobPageUpdate) SetIsQuestionPage(v bool) *JobPageUpdate {
	_u.mutation.SetIsQuestionPage(v)
	return _u
}

// SetNillableIsQuestionPage sets the "is_question_page" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableIsQuestionPage(v *bool) *JobPageUpdate {
	if v != nil {
		_u.SetIsQuestionPage(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobPageUpdate) SetState(v string) *JobPageUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableState(v *string) *JobPageUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetImagePng sets the "image_png" field.
func (_u *JobPageUpdate) SetImagePng(v []byte) *JobPageUpdate {
	_u.mutation.SetImagePng(v)
	return _u
}

// ClearImagePng clears the value of the "image_png" field.
func (_u *JobPageUpdate) ClearImagePng() *JobPageUpdate {
	_u.mutation.ClearImagePng()
	return _u
}

// SetOcrCostCents sets the "ocr_cost_cents" field.
func (_u *JobPageUpdate) SetOcrCostCents(v int) *JobPageUpdate {
	_u.mutation.ResetOcrCostCents()
	_u.mutation.SetOcrCostCents(v)
	return _u
}

// SetNillableOcrCostCents sets the "ocr_cost_cents" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableOcrCostCents(v *int) *JobPageUpdate {
	if v != nil {
		_u.SetOcrCostCents(*v)
	}
	return _u
}

// AddOcrCostCents adds value to the "ocr_cost_cents" field.
func (_u *JobPageUpdate) AddOcrCostCents(v int) *JobPageUpdate {
	_u.mutation.AddOcrCostCents(v)
	return _u
}

// SetStructuringCostCents sets the "structuring_cost_cents" field.
func (_u *JobPageUpdate) SetStructuringCostCents(v int) *JobPageUpdate {
	_u.mutation.ResetStructuringCostCents()
	_u.mutation.SetStructuringCostCents(v)
	return _u
}

// SetNillableStructuringCostCents sets the "structuring_cost_cents" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableStructuringCostCents(v *int) *JobPageUpdate {
	if v != nil {
		_u.SetStructuringCostCents(*v)
	}
	return _u
}

// AddStructuringCostCents adds value to the "structuring_cost_cents" field.
func (_u *JobPageUpdate) AddStructuringCostCents(v int) *JobPageUpdate {
	_u.mutation.AddStructuringCostCents(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobPageUpdate) SetErrorMessage(v string) *JobPageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableErrorMessage(v *string) *JobPageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobPageUpdate) ClearErrorMessage() *JobPageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobPageUpdate) SetRetryCount(v int) *JobPageUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableRetryCount(v *int) *JobPageUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobPageUpdate) AddRetryCount(v int) *JobPageUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastErrorAt sets the "last_error_at" field.
func (_u *JobPageUpdate) SetLastErrorAt(v time.Time) *JobPageUpdate {
	_u.mutation.SetLastErrorAt(v)
	return _u
}

// SetNillableLastErrorAt sets the "last_error_at" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableLastErrorAt(v *time.Time) *JobPageUpdate {
	if v != nil {
		_u.SetLastErrorAt(*v)
	}
	return _u
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (_u *JobPageUpdate) ClearLastErrorAt() *JobPageUpdate {
	_u.mutation.ClearLastErrorAt()
	return _u
}

// SetProviderUsed sets the "provider_used" field.
func (_u *JobPageUpdate) SetProviderUsed(v string) *JobPageUpdate {
	_u.mutation.SetProviderUsed(v)
	return _u
}

// SetNillableProviderUsed sets the "provider_used" field if the given value is not nil.
func (_u *JobPageUpdate) SetNillableProviderUsed(v *string) *JobPageUpdate {
	if v != nil {
		_u.SetProviderUsed(*v)
	}
	return _u
}

// ClearProviderUsed clears the value of the "provider_used" field.
func (_u *JobPageUpdate) ClearProviderUsed() *JobPageUpdate {
	_u.mutation.ClearProviderUsed()
	return _u
}

// SetDetectedFigures sets the "detected_figures" field.
func (_u *JobPageUpdate) SetDetectedFigures(v json.RawMessage) *JobPageUpdate {
	_u.mutation.SetDetectedFigures(v)
	return _u
}

// AppendDetectedFigures appends value to the "detected_figures" field.
func (_u *JobPageUpdate) AppendDetectedFigures(v json.RawMessage) *JobPageUpdate {
	_u.mutation.AppendDetectedFigures(v)
	return _u
}

// ClearDetectedFigures clears the value of the "detected_figures" field.
func (_u *JobPageUpdate) ClearDetectedFigures() *JobPageUpdate {
	_u.mutation.ClearDetectedFigures()
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *JobPageUpdate) SetJob(v *ExtractionJob) *JobPageUpdate {
	return _u.SetJobID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_u *JobPageUpdate) AddQuestionIDs(ids ...uuid.UUID) *JobPageUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_u *JobPageUpdate) AddQuestions(v ...*ExtractedQuestion) *JobPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by IDs.
func (_u *JobPageUpdate) AddPassageIDs(ids ...uuid.UUID) *JobPageUpdate {
	_u.mutation.AddPassageIDs(ids...)
	return _u
}

// AddPassages adds the "passages" edges to the ExtractedPassage entity.
func (_u *JobPageUpdate) AddPassages(v ...*ExtractedPassage) *JobPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassageIDs(ids...)
}

// Mutation returns the JobPageMutation object of the builder.
func (_u *JobPageUpdate) Mutation() *JobPageMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *JobPageUpdate) ClearJob() *JobPageUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearQuestions clears all "questions" edges to the ExtractedQuestion entity.
func (_u *JobPageUpdate) ClearQuestions() *JobPageUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExtractedQuestion entities by IDs.
func (_u *JobPageUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *JobPageUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExtractedQuestion entities.
func (_u *JobPageUpdate) RemoveQuestions(v ...*ExtractedQuestion) *JobPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearPassages clears all "passages" edges to the ExtractedPassage entity.
func (_u *JobPageUpdate) ClearPassages() *JobPageUpdate {
	_u.mutation.ClearPassages()
	return _u
}

// RemovePassageIDs removes the "passages" edge to ExtractedPassage entities by IDs.
func (_u *JobPageUpdate) RemovePassageIDs(ids ...uuid.UUID) *JobPageUpdate {
	_u.mutation.RemovePassageIDs(ids...)
	return _u
}

// RemovePassages removes "passages" edges to ExtractedPassage entities.
func (_u *JobPageUpdate) RemovePassages(v ...*ExtractedPassage) *JobPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobPageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPageUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := jobpage.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "JobPage.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := jobpage.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "JobPage.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrCostCents(); ok {
		if err := jobpage.OcrCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "ocr_cost_cents", err: fmt.Errorf(`ent: validator failed for field "JobPage.ocr_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StructuringCostCents(); ok {
		if err := jobpage.StructuringCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "structuring_cost_cents", err: fmt.Errorf(`ent: validator failed for field "JobPage.structuring_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := jobpage.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "JobPage.retry_count": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobPage.job"`)
	}
	return nil
}

func (_u *JobPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpage.Table, jobpage.Columns, sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(jobpage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(jobpage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Markdown(); ok {
		_spec.SetField(jobpage.FieldMarkdown, field.TypeString, value)
	}
	if _u.mutation.MarkdownCleared() {
		_spec.ClearField(jobpage.FieldMarkdown, field.TypeString)
	}
	if value, ok := _u.mutation.IsQuestionPage(); ok {
		_spec.SetField(jobpage.FieldIsQuestionPage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(jobpage.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePng(); ok {
		_spec.SetField(jobpage.FieldImagePng, field.TypeBytes, value)
	}
	if _u.mutation.ImagePngCleared() {
		_spec.ClearField(jobpage.FieldImagePng, field.TypeBytes)
	}
	if value, ok := _u.mutation.OcrCostCents(); ok {
		_spec.SetField(jobpage.FieldOcrCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrCostCents(); ok {
		_spec.AddField(jobpage.FieldOcrCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StructuringCostCents(); ok {
		_spec.SetField(jobpage.FieldStructuringCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStructuringCostCents(); ok {
		_spec.AddField(jobpage.FieldStructuringCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(jobpage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(jobpage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(jobpage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(jobpage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorAt(); ok {
		_spec.SetField(jobpage.FieldLastErrorAt, field.TypeTime, value)
	}
	if _u.mutation.LastErrorAtCleared() {
		_spec.ClearField(jobpage.FieldLastErrorAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProviderUsed(); ok {
		_spec.SetField(jobpage.FieldProviderUsed, field.TypeString, value)
	}
	if _u.mutation.ProviderUsedCleared() {
		_spec.ClearField(jobpage.FieldProviderUsed, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedFigures(); ok {
		_spec.SetField(jobpage.FieldDetectedFigures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedFigures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobpage.FieldDetectedFigures, value)
		})
	}
	if _u.mutation.DetectedFiguresCleared() {
		_spec.ClearField(jobpage.FieldDetectedFigures, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobpage.JobTable,
			Columns: []string{jobpage.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobpage.JobTable,
			Columns: []string{jobpage.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
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
			Table:   jobpage.QuestionsTable,
			Columns: []string{jobpage.QuestionsColumn},
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
			Table:   jobpage.QuestionsTable,
			Columns: []string{jobpage.QuestionsColumn},
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
			Table:   jobpage.QuestionsTable,
			Columns: []string{jobpage.QuestionsColumn},
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
			Table:   jobpage.PassagesTable,
			Columns: []string{jobpage.PassagesColumn},
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
			Table:   jobpage.PassagesTable,
			Columns: []string{jobpage.PassagesColumn},
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
			Table:   jobpage.PassagesTable,
			Columns: []string{jobpage.PassagesColumn},
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
			err = &NotFoundError{jobpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobPageUpdateOne is the builder for updating a single JobPage entity.
type JobPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobPageMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobPageUpdateOne) SetJobID(v uuid.UUID) *JobPageUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableJobID(v *uuid.UUID) *JobPageUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *JobPageUpdateOne) SetPageNumber(v int) *JobPageUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillablePageNumber(v *int) *JobPageUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *JobPageUpdateOne) AddPageNumber(v int) *JobPageUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetMarkdown sets the "markdown" field.
func (_u *JobPageUpdateOne) SetMarkdown(v string) *JobPageUpdateOne {
	_u.mutation.SetMarkdown(v)
	return _u
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableMarkdown(v *string) *JobPageUpdateOne {
	if v != nil {
		_u.SetMarkdown(*v)
	}
	return _u
}

// ClearMarkdown clears the value of the "markdown" field.
func (_u *JobPageUpdateOne) ClearMarkdown() *JobPageUpdateOne {
	_u.mutation.ClearMarkdown()
	return _u
}

// SetIsQuestionPage sets the "is_question_page" field.
func (_u *JobPageUpdateOne) SetIsQuestionPage(v bool) *JobPageUpdateOne {
	_u.mutation.SetIsQuestionPage(v)
	return _u
}

// SetNillableIsQuestionPage sets the "is_question_page" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableIsQuestionPage(v *bool) *JobPageUpdateOne {
	if v != nil {
		_u.SetIsQuestionPage(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobPageUpdateOne) SetState(v string) *JobPageUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableState(v *string) *JobPageUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetImagePng sets the "image_png" field.
func (_u *JobPageUpdateOne) SetImagePng(v []byte) *JobPageUpdateOne {
	_u.mutation.SetImagePng(v)
	return _u
}

// ClearImagePng clears the value of the "image_png" field.
func (_u *JobPageUpdateOne) ClearImagePng() *JobPageUpdateOne {
	_u.mutation.ClearImagePng()
	return _u
}

// SetOcrCostCents sets the "ocr_cost_cents" field.
func (_u *JobPageUpdateOne) SetOcrCostCents(v int) *JobPageUpdateOne {
	_u.mutation.ResetOcrCostCents()
	_u.mutation.SetOcrCostCents(v)
	return _u
}

// SetNillableOcrCostCents sets the "ocr_cost_cents" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableOcrCostCents(v *int) *JobPageUpdateOne {
	if v != nil {
		_u.SetOcrCostCents(*v)
	}
	return _u
}

// AddOcrCostCents adds value to the "ocr_cost_cents" field.
func (_u *JobPageUpdateOne) AddOcrCostCents(v int) *JobPageUpdateOne {
	_u.mutation.AddOcrCostCents(v)
	return _u
}

// SetStructuringCostCents sets the "structuring_cost_cents" field.
func (_u *JobPageUpdateOne) SetStructuringCostCents(v int) *JobPageUpdateOne {
	_u.mutation.ResetStructuringCostCents()
	_u.mutation.SetStructuringCostCents(v)
	return _u
}

// SetNillableStructuringCostCents sets the "structuring_cost_cents" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableStructuringCostCents(v *int) *JobPageUpdateOne {
	if v != nil {
		_u.SetStructuringCostCents(*v)
	}
	return _u
}

// AddStructuringCostCents adds value to the "structuring_cost_cents" field.
func (_u *JobPageUpdateOne) AddStructuringCostCents(v int) *JobPageUpdateOne {
	_u.mutation.AddStructuringCostCents(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobPageUpdateOne) SetErrorMessage(v string) *JobPageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableErrorMessage(v *string) *JobPageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobPageUpdateOne) ClearErrorMessage() *JobPageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobPageUpdateOne) SetRetryCount(v int) *JobPageUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableRetryCount(v *int) *JobPageUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobPageUpdateOne) AddRetryCount(v int) *JobPageUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastErrorAt sets the "last_error_at" field.
func (_u *JobPageUpdateOne) SetLastErrorAt(v time.Time) *JobPageUpdateOne {
	_u.mutation.SetLastErrorAt(v)
	return _u
}

// SetNillableLastErrorAt sets the "last_error_at" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableLastErrorAt(v *time.Time) *JobPageUpdateOne {
	if v != nil {
		_u.SetLastErrorAt(*v)
	}
	return _u
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (_u *JobPageUpdateOne) ClearLastErrorAt() *JobPageUpdateOne {
	_u.mutation.ClearLastErrorAt()
	return _u
}

// SetProviderUsed sets the "provider_used" field.
func (_u *JobPageUpdateOne) SetProviderUsed(v string) *JobPageUpdateOne {
	_u.mutation.SetProviderUsed(v)
	return _u
}

// SetNillableProviderUsed sets the "provider_used" field if the given value is not nil.
func (_u *JobPageUpdateOne) SetNillableProviderUsed(v *string) *JobPageUpdateOne {
	if v != nil {
		_u.SetProviderUsed(*v)
	}
	return _u
}

// ClearProviderUsed clears the value of the "provider_used" field.
func (_u *JobPageUpdateOne) ClearProviderUsed() *JobPageUpdateOne {
	_u.mutation.ClearProviderUsed()
	return _u
}

// SetDetectedFigures sets the "detected_figures" field.
func (_u *JobPageUpdateOne) SetDetectedFigures(v json.RawMessage) *JobPageUpdateOne {
	_u.mutation.SetDetectedFigures(v)
	return _u
}

// AppendDetectedFigures appends value to the "detected_figures" field.
func (_u *JobPageUpdateOne) AppendDetectedFigures(v json.RawMessage) *JobPageUpdateOne {
	_u.mutation.AppendDetectedFigures(v)
	return _u
}

// ClearDetectedFigures clears the value of the "detected_figures" field.
func (_u *JobPageUpdateOne) ClearDetectedFigures() *JobPageUpdateOne {
	_u.mutation.ClearDetectedFigures()
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *JobPageUpdateOne) SetJob(v *ExtractionJob) *JobPageUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_u *JobPageUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *JobPageUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_u *JobPageUpdateOne) AddQuestions(v ...*ExtractedQuestion) *JobPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by IDs.
func (_u *JobPageUpdateOne) AddPassageIDs(ids ...uuid.UUID) *JobPageUpdateOne {
	_u.mutation.AddPassageIDs(ids...)
	return _u
}

// AddPassages adds the "passages" edges to the ExtractedPassage entity.
func (_u *JobPageUpdateOne) AddPassages(v ...*ExtractedPassage) *JobPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassageIDs(ids...)
}

// Mutation returns the JobPageMutation object of the builder.
func (_u *JobPageUpdateOne) Mutation() *JobPageMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *JobPageUpdateOne) ClearJob() *JobPageUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearQuestions clears all "questions" edges to the ExtractedQuestion entity.
func (_u *JobPageUpdateOne) ClearQuestions() *JobPageUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExtractedQuestion entities by IDs.
func (_u *JobPageUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *JobPageUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExtractedQuestion entities.
func (_u *JobPageUpdateOne) RemoveQuestions(v ...*ExtractedQuestion) *JobPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearPassages clears all "passages" edges to the ExtractedPassage entity.
func (_u *JobPageUpdateOne) ClearPassages() *JobPageUpdateOne {
	_u.mutation.ClearPassages()
	return _u
}

// RemovePassageIDs removes the "passages" edge to ExtractedPassage entities by IDs.
func (_u *JobPageUpdateOne) RemovePassageIDs(ids ...uuid.UUID) *JobPageUpdateOne {
	_u.mutation.RemovePassageIDs(ids...)
	return _u
}

// RemovePassages removes "passages" edges to ExtractedPassage entities.
func (_u *JobPageUpdateOne) RemovePassages(v ...*ExtractedPassage) *JobPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassageIDs(ids...)
}

// Where appends a list predicates to the JobPageUpdate builder.
func (_u *JobPageUpdateOne) Where(ps ...predicate.JobPage) *JobPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobPageUpdateOne) Select(field string, fields ...string) *JobPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobPage entity.
func (_u *JobPageUpdateOne) Save(ctx context.Context) (*JobPage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPageUpdateOne) SaveX(ctx context.Context) *JobPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPageUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := jobpage.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "JobPage.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := jobpage.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "JobPage.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrCostCents(); ok {
		if err := jobpage.OcrCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "ocr_cost_cents", err: fmt.Errorf(`ent: validator failed for field "JobPage.ocr_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StructuringCostCents(); ok {
		if err := jobpage.StructuringCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "structuring_cost_cents", err: fmt.Errorf(`ent: validator failed for field "JobPage.structuring_cost_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := jobpage.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "JobPage.retry_count": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobPage.job"`)
	}
	return nil
}

func (_u *JobPageUpdateOne) sqlSave(ctx context.Context) (_node *JobPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpage.Table, jobpage.Columns, sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobpage.FieldID)
		for _, f := range fields {
			if !jobpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobpage.FieldID {
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
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(jobpage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(jobpage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Markdown(); ok {
		_spec.SetField(jobpage.FieldMarkdown, field.TypeString, value)
	}
	if _u.mutation.MarkdownCleared() {
		_spec.ClearField(jobpage.FieldMarkdown, field.TypeString)
	}
	if value, ok := _u.mutation.IsQuestionPage(); ok {
		_spec.SetField(jobpage.FieldIsQuestionPage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(jobpage.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePng(); ok {
		_spec.SetField(jobpage.FieldImagePng, field.TypeBytes, value)
	}
	if _u.mutation.ImagePngCleared() {
		_spec.ClearField(jobpage.FieldImagePng, field.TypeBytes)
	}
	if value, ok := _u.mutation.OcrCostCents(); ok {
		_spec.SetField(jobpage.FieldOcrCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrCostCents(); ok {
		_spec.AddField(jobpage.FieldOcrCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StructuringCostCents(); ok {
		_spec.SetField(jobpage.FieldStructuringCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStructuringCostCents(); ok {
		_spec.AddField(jobpage.FieldStructuringCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(jobpage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(jobpage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(jobpage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(jobpage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorAt(); ok {
		_spec.SetField(jobpage.FieldLastErrorAt, field.TypeTime, value)
	}
	if _u.mutation.LastErrorAtCleared() {
		_spec.ClearField(jobpage.FieldLastErrorAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProviderUsed(); ok {
		_spec.SetField(jobpage.FieldProviderUsed, field.TypeString, value)
	}
	if _u.mutation.ProviderUsedCleared() {
		_spec.ClearField(jobpage.FieldProviderUsed, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedFigures(); ok {
		_spec.SetField(jobpage.FieldDetectedFigures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedFigures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobpage.FieldDetectedFigures, value)
		})
	}
	if _u.mutation.DetectedFiguresCleared() {
		_spec.ClearField(jobpage.FieldDetectedFigures, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobpage.JobTable,
			Columns: []string{jobpage.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobpage.JobTable,
			Columns: []string{jobpage.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
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
			Table:   jobpage.QuestionsTable,
			Columns: []string{jobpage.QuestionsColumn},
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
			Table:   jobpage.QuestionsTable,
			Columns: []string{jobpage.QuestionsColumn},
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
			Table:   jobpage.QuestionsTable,
			Columns: []string{jobpage.QuestionsColumn},
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
			Table:   jobpage.PassagesTable,
			Columns: []string{jobpage.PassagesColumn},
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
			Table:   jobpage.PassagesTable,
			Columns: []string{jobpage.PassagesColumn},
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
			Table:   jobpage.PassagesTable,
			Columns: []string{jobpage.PassagesColumn},
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
	_node = &JobPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
