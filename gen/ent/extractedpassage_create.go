// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// ExtractedPassageCreate is the builder for creating a ExtractedPassage entity.
type ExtractedPassageCreate struct {
	config
	mutation *ExtractedPassageMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ExtractedPassageCreate) SetJobID(v uuid.UUID) *ExtractedPassageCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPageID sets the "page_id" field.
func (_c *ExtractedPassageCreate) SetPageID(v uuid.UUID) *ExtractedPassageCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetTempRef sets the "temp_ref" field.
func (_c *ExtractedPassageCreate) SetTempRef(v string) *ExtractedPassageCreate {
	_c.mutation.SetTempRef(v)
	return _c
}

// SetNillableTempRef sets the "temp_ref" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableTempRef(v *string) *ExtractedPassageCreate {
	if v != nil {
		_c.SetTempRef(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ExtractedPassageCreate) SetTitle(v string) *ExtractedPassageCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableTitle(v *string) *ExtractedPassageCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ExtractedPassageCreate) SetSource(v string) *ExtractedPassageCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableSource(v *string) *ExtractedPassageCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ExtractedPassageCreate) SetAuthor(v string) *ExtractedPassageCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableAuthor(v *string) *ExtractedPassageCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ExtractedPassageCreate) SetContent(v string) *ExtractedPassageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetFigures sets the "figures" field.
func (_c *ExtractedPassageCreate) SetFigures(v []string) *ExtractedPassageCreate {
	_c.mutation.SetFigures(v)
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *ExtractedPassageCreate) SetExtractionConfidence(v float32) *ExtractedPassageCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableExtractionConfidence(v *float32) *ExtractedPassageCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *ExtractedPassageCreate) SetReviewStatus(v string) *ExtractedPassageCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableReviewStatus(v *string) *ExtractedPassageCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetImportedPassageID sets the "imported_passage_id" field.
func (_c *ExtractedPassageCreate) SetImportedPassageID(v uuid.UUID) *ExtractedPassageCreate {
	_c.mutation.SetImportedPassageID(v)
	return _c
}

// SetNillableImportedPassageID sets the "imported_passage_id" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableImportedPassageID(v *uuid.UUID) *ExtractedPassageCreate {
	if v != nil {
		_c.SetImportedPassageID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedPassageCreate) SetCreatedAt(v time.Time) *ExtractedPassageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableCreatedAt(v *time.Time) *ExtractedPassageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedPassageCreate) SetID(v uuid.UUID) *ExtractedPassageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedPassageCreate) SetNillableID(v *uuid.UUID) *ExtractedPassageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_c *ExtractedPassageCreate) SetJob(v *ExtractionJob) *ExtractedPassageCreate {
	return _c.SetJobID(v.ID)
}

// SetPage sets the "page" edge to the JobPage entity.
func (_c *ExtractedPassageCreate) SetPage(v *JobPage) *ExtractedPassageCreate {
	return _c.SetPageID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_c *ExtractedPassageCreate) AddQuestionIDs(ids ...uuid.UUID) *ExtractedPassageCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_c *ExtractedPassageCreate) AddQuestions(v ...*ExtractedQuestion) *ExtractedPassageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the ExtractedPassageMutation object of the builder.
func (_c *ExtractedPassageCreate) Mutation() *ExtractedPassageMutation {
	return _c.mutation
}

// Save creates the ExtractedPassage in the database.
func (_c *ExtractedPassageCreate) Save(ctx context.Context) (*ExtractedPassage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedPassageCreate) SaveX(ctx context.Context) *ExtractedPassage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedPassageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedPassageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedPassageCreate) defaults() {
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := extractedpassage.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := extractedpassage.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedpassage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedpassage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedPassageCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ExtractedPassage.job_id"`)}
	}
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "ExtractedPassage.page_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExtractedPassage.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := extractedpassage.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ExtractedPassage.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "ExtractedPassage.extraction_confidence"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "ExtractedPassage.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := extractedpassage.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedPassage.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedPassage.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ExtractedPassage.job"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "ExtractedPassage.page"`)}
	}
	return nil
}

func (_c *ExtractedPassageCreate) sqlSave(ctx context.Context) (*ExtractedPassage, error) {
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

func (_c *ExtractedPassageCreate) createSpec() (*ExtractedPassage, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedPassage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedpassage.Table, sqlgraph.NewFieldSpec(extractedpassage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TempRef(); ok {
		_spec.SetField(extractedpassage.FieldTempRef, field.TypeString, value)
		_node.TempRef = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(extractedpassage.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(extractedpassage.FieldSource, field.TypeString, value)
		_node.Source = &value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(extractedpassage.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(extractedpassage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Figures(); ok {
		_spec.SetField(extractedpassage.FieldFigures, field.TypeJSON, value)
		_node.Figures = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractedpassage.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(extractedpassage.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ImportedPassageID(); ok {
		_spec.SetField(extractedpassage.FieldImportedPassageID, field.TypeUUID, value)
		_node.ImportedPassageID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedpassage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedpassage.JobTable,
			Columns: []string{extractedpassage.JobColumn},
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
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedpassage.PageTable,
			Columns: []string{extractedpassage.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedpassage.QuestionsTable,
			Columns: []string{extractedpassage.QuestionsColumn},
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
	return _node, _spec
}

// ExtractedPassageCreateBulk is the builder for creating many ExtractedPassage entities in bulk.
type ExtractedPassageCreateBulk struct {
	config
	err      error
	builders []*ExtractedPassageCreate
}

// Save creates the ExtractedPassage entities in the database.
func (_c *ExtractedPassageCreateBulk) Save(ctx context.Context) ([]*ExtractedPassage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedPassage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedPassageMutation)
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
func (_c *ExtractedPassageCreateBulk) SaveX(ctx context.Context) []*ExtractedPassage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedPassageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedPassageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
