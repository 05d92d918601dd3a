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

// JobPageCreate is the builder for creating a JobPage entity.
type JobPageCreate struct {
	config
	mutation *JobPageMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobPageCreate) SetJobID(v uuid.UUID) *JobPageCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *JobPageCreate) SetPageNumber(v int) *JobPageCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetMarkdown sets the "markdown" field.
func (_c *JobPageCreate) SetMarkdown(v string) *JobPageCreate {
	_c.mutation.SetMarkdown(v)
	return _c
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableMarkdown(v *string) *JobPageCreate {
	if v != nil {
		_c.SetMarkdown(*v)
	}
	return _c
}

// SetIsQuestionPage sets the "is_question_page" field.
func (_c *JobPageCreate) SetIsQuestionPage(v bool) *JobPageCreate {
	_c.mutation.SetIsQuestionPage(v)
	return _c
}

// SetNillableIsQuestionPage sets the "is_question_page" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableIsQuestionPage(v *bool) *JobPageCreate {
	if v != nil {
		_c.SetIsQuestionPage(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *JobPageCreate) SetState(v string) *JobPageCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableState(v *string) *JobPageCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetImagePng sets the "image_png" field.
func (_c *JobPageCreate) SetImagePng(v []byte) *JobPageCreate {
	_c.mutation.SetImagePng(v)
	return _c
}

// SetOcrCostCents sets the "ocr_cost_cents" field.
func (_c *JobPageCreate) SetOcrCostCents(v int) *JobPageCreate {
	_c.mutation.SetOcrCostCents(v)
	return _c
}

// SetNillableOcrCostCents sets the "ocr_cost_cents" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableOcrCostCents(v *int) *JobPageCreate {
	if v != nil {
		_c.SetOcrCostCents(*v)
	}
	return _c
}

// SetStructuringCostCents sets the "structuring_cost_cents" field.
func (_c *JobPageCreate) SetStructuringCostCents(v int) *JobPageCreate {
	_c.mutation.SetStructuringCostCents(v)
	return _c
}

// SetNillableStructuringCostCents sets the "structuring_cost_cents" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableStructuringCostCents(v *int) *JobPageCreate {
	if v != nil {
		_c.SetStructuringCostCents(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobPageCreate) SetErrorMessage(v string) *JobPageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableErrorMessage(v *string) *JobPageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *JobPageCreate) SetRetryCount(v int) *JobPageCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableRetryCount(v *int) *JobPageCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastErrorAt sets the "last_error_at" field.
func (_c *JobPageCreate) SetLastErrorAt(v time.Time) *JobPageCreate {
	_c.mutation.SetLastErrorAt(v)
	return _c
}

// SetNillableLastErrorAt sets the "last_error_at" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableLastErrorAt(v *time.Time) *JobPageCreate {
	if v != nil {
		_c.SetLastErrorAt(*v)
	}
	return _c
}

// SetProviderUsed sets the "provider_used" field.
func (_c *JobPageCreate) SetProviderUsed(v string) *JobPageCreate {
	_c.mutation.SetProviderUsed(v)
	return _c
}

// SetNillableProviderUsed sets the "provider_used" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableProviderUsed(v *string) *JobPageCreate {
	if v != nil {
		_c.SetProviderUsed(*v)
	}
	return _c
}

// SetDetectedFigures sets the "detected_figures" field.
func (_c *JobPageCreate) SetDetectedFigures(v json.RawMessage) *JobPageCreate {
	_c.mutation.SetDetectedFigures(v)
	return _c
}

// SetID sets the "id" field.
func (_c *JobPageCreate) SetID(v uuid.UUID) *JobPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobPageCreate) SetNillableID(v *uuid.UUID) *JobPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_c *JobPageCreate) SetJob(v *ExtractionJob) *JobPageCreate {
	return _c.SetJobID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_c *JobPageCreate) AddQuestionIDs(ids ...uuid.UUID) *JobPageCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_c *JobPageCreate) AddQuestions(v ...*ExtractedQuestion) *JobPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by IDs.
func (_c *JobPageCreate) AddPassageIDs(ids ...uuid.UUID) *JobPageCreate {
	_c.mutation.AddPassageIDs(ids...)
	return _c
}

// AddPassages adds the "passages" edges to the ExtractedPassage entity.
func (_c *JobPageCreate) AddPassages(v ...*ExtractedPassage) *JobPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPassageIDs(ids...)
}

// Mutation returns the JobPageMutation object of the builder.
func (_c *JobPageCreate) Mutation() *JobPageMutation {
	return _c.mutation
}

// Save creates the JobPage in the database.
func (_c *JobPageCreate) Save(ctx context.Context) (*JobPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobPageCreate) SaveX(ctx context.Context) *JobPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobPageCreate) defaults() {
	if _, ok := _c.mutation.IsQuestionPage(); !ok {
		v := jobpage.DefaultIsQuestionPage
		_c.mutation.SetIsQuestionPage(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := jobpage.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.OcrCostCents(); !ok {
		v := jobpage.DefaultOcrCostCents
		_c.mutation.SetOcrCostCents(v)
	}
	if _, ok := _c.mutation.StructuringCostCents(); !ok {
		v := jobpage.DefaultStructuringCostCents
		_c.mutation.SetStructuringCostCents(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := jobpage.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobPageCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobPage.job_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "JobPage.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := jobpage.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "JobPage.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsQuestionPage(); !ok {
		return &ValidationError{Name: "is_question_page", err: errors.New(`ent: missing required field "JobPage.is_question_page"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "JobPage.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := jobpage.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "JobPage.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrCostCents(); !ok {
		return &ValidationError{Name: "ocr_cost_cents", err: errors.New(`ent: missing required field "JobPage.ocr_cost_cents"`)}
	}
	if v, ok := _c.mutation.OcrCostCents(); ok {
		if err := jobpage.OcrCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "ocr_cost_cents", err: fmt.Errorf(`ent: validator failed for field "JobPage.ocr_cost_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StructuringCostCents(); !ok {
		return &ValidationError{Name: "structuring_cost_cents", err: errors.New(`ent: missing required field "JobPage.structuring_cost_cents"`)}
	}
	if v, ok := _c.mutation.StructuringCostCents(); ok {
		if err := jobpage.StructuringCostCentsValidator(v); err != nil {
			return &ValidationError{Name: "structuring_cost_cents", err: fmt.Errorf(`ent: validator failed for field "JobPage.structuring_cost_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "JobPage.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := jobpage.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "JobPage.retry_count": %w`, err)}
		}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobPage.job"`)}
	}
	return nil
}

func (_c *JobPageCreate) sqlSave(ctx context.Context) (*JobPage, error) {
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

func (_c *JobPageCreate) createSpec() (*JobPage, *sqlgraph.CreateSpec) {
	var (
		_node = &JobPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobpage.Table, sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(jobpage.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.Markdown(); ok {
		_spec.SetField(jobpage.FieldMarkdown, field.TypeString, value)
		_node.Markdown = &value
	}
	if value, ok := _c.mutation.IsQuestionPage(); ok {
		_spec.SetField(jobpage.FieldIsQuestionPage, field.TypeBool, value)
		_node.IsQuestionPage = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(jobpage.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ImagePng(); ok {
		_spec.SetField(jobpage.FieldImagePng, field.TypeBytes, value)
		_node.ImagePng = value
	}
	if value, ok := _c.mutation.OcrCostCents(); ok {
		_spec.SetField(jobpage.FieldOcrCostCents, field.TypeInt, value)
		_node.OcrCostCents = value
	}
	if value, ok := _c.mutation.StructuringCostCents(); ok {
		_spec.SetField(jobpage.FieldStructuringCostCents, field.TypeInt, value)
		_node.StructuringCostCents = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(jobpage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(jobpage.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastErrorAt(); ok {
		_spec.SetField(jobpage.FieldLastErrorAt, field.TypeTime, value)
		_node.LastErrorAt = &value
	}
	if value, ok := _c.mutation.ProviderUsed(); ok {
		_spec.SetField(jobpage.FieldProviderUsed, field.TypeString, value)
		_node.ProviderUsed = &value
	}
	if value, ok := _c.mutation.DetectedFigures(); ok {
		_spec.SetField(jobpage.FieldDetectedFigures, field.TypeJSON, value)
		_node.DetectedFigures = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PassagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobPageCreateBulk is the builder for creating many JobPage entities in bulk.
type JobPageCreateBulk struct {
	config
	err      error
	builders []*JobPageCreate
}

// Save creates the JobPage entities in the database.
func (_c *JobPageCreateBulk) Save(ctx context.Context) ([]*JobPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobPageMutation)
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
func (_c *JobPageCreateBulk) SaveX(ctx context.Context) []*JobPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
