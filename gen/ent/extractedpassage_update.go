// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

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

// ExtractedPassageUpdate is the builder for updating ExtractedPassage entities.
type ExtractedPassageUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedPassageMutation
}

// Where appends a list predicates to the ExtractedPassageUpdate builder.
func (_u *ExtractedPassageUpdate) Where(ps ...predicate.ExtractedPassage) *ExtractedPassageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ExtractedPassageUpdate) SetJobID(v uuid.UUID) *ExtractedPassageUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableJobID(v *uuid.UUID) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *ExtractedPassageUpdate) SetPageID(v uuid.UUID) *ExtractedPassageUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillablePageID(v *uuid.UUID) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetTempRef sets the "temp_ref" field.
func (_u *ExtractedPassageUpdate) SetTempRef(v string) *ExtractedPassageUpdate {
	_u.mutation.SetTempRef(v)
	return _u
}

// SetNillableTempRef sets the "temp_ref" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableTempRef(v *string) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetTempRef(*v)
	}
	return _u
}

// ClearTempRef clears the value of the "temp_ref" field.
func (_u *ExtractedPassageUpdate) ClearTempRef() *ExtractedPassageUpdate {
	_u.mutation.ClearTempRef()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExtractedPassageUpdate) SetTitle(v string) *ExtractedPassageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableTitle(v *string) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExtractedPassageUpdate) ClearTitle() *ExtractedPassageUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExtractedPassageUpdate) SetSource(v string) *ExtractedPassageUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableSource(v *string) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ExtractedPassageUpdate) ClearSource() *ExtractedPassageUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ExtractedPassageUpdate) SetAuthor(v string) *ExtractedPassageUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableAuthor(v *string) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ExtractedPassageUpdate) ClearAuthor() *ExtractedPassageUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetContent sets the "content" field.
func (_u *ExtractedPassageUpdate) SetContent(v string) *ExtractedPassageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableContent(v *string) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFigures sets the "figures" field.
func (_u *ExtractedPassageUpdate) SetFigures(v []string) *ExtractedPassageUpdate {
	_u.mutation.SetFigures(v)
	return _u
}

// AppendFigures appends value to the "figures" field.
func (_u *ExtractedPassageUpdate) AppendFigures(v []string) *ExtractedPassageUpdate {
	_u.mutation.AppendFigures(v)
	return _u
}

// ClearFigures clears the value of the "figures" field.
func (_u *ExtractedPassageUpdate) ClearFigures() *ExtractedPassageUpdate {
	_u.mutation.ClearFigures()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ExtractedPassageUpdate) SetExtractionConfidence(v float32) *ExtractedPassageUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableExtractionConfidence(v *float32) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ExtractedPassageUpdate) AddExtractionConfidence(v float32) *ExtractedPassageUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ExtractedPassageUpdate) SetReviewStatus(v string) *ExtractedPassageUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableReviewStatus(v *string) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetImportedPassageID sets the "imported_passage_id" field.
func (_u *ExtractedPassageUpdate) SetImportedPassageID(v uuid.UUID) *ExtractedPassageUpdate {
	_u.mutation.SetImportedPassageID(v)
	return _u
}

// SetNillableImportedPassageID sets the "imported_passage_id" field if the given value is not nil.
func (_u *ExtractedPassageUpdate) SetNillableImportedPassageID(v *uuid.UUID) *ExtractedPassageUpdate {
	if v != nil {
		_u.SetImportedPassageID(*v)
	}
	return _u
}

// ClearImportedPassageID clears the value of the "imported_passage_id" field.
func (_u *ExtractedPassageUpdate) ClearImportedPassageID() *ExtractedPassageUpdate {
	_u.mutation.ClearImportedPassageID()
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *ExtractedPassageUpdate) SetJob(v *ExtractionJob) *ExtractedPassageUpdate {
	return _u.SetJobID(v.ID)
}

// SetPage sets the "page" edge to the JobPage entity.
func (_u *ExtractedPassageUpdate) SetPage(v *JobPage) *ExtractedPassageUpdate {
	return _u.SetPageID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_u *ExtractedPassageUpdate) AddQuestionIDs(ids ...uuid.UUID) *ExtractedPassageUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractedPassageUpdate) AddQuestions(v ...*ExtractedQuestion) *ExtractedPassageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ExtractedPassageMutation object of the builder.
func (_u *ExtractedPassageUpdate) Mutation() *ExtractedPassageMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *ExtractedPassageUpdate) ClearJob() *ExtractedPassageUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearPage clears the "page" edge to the JobPage entity.
func (_u *ExtractedPassageUpdate) ClearPage() *ExtractedPassageUpdate {
	_u.mutation.ClearPage()
	return _u
}

// ClearQuestions clears all "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractedPassageUpdate) ClearQuestions() *ExtractedPassageUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExtractedQuestion entities by IDs.
func (_u *ExtractedPassageUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *ExtractedPassageUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExtractedQuestion entities.
func (_u *ExtractedPassageUpdate) RemoveQuestions(v ...*ExtractedQuestion) *ExtractedPassageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedPassageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedPassageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedPassageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedPassageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedPassageUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := extractedpassage.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ExtractedPassage.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := extractedpassage.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedPassage.review_status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedPassage.job"`)
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedPassage.page"`)
	}
	return nil
}

func (_u *ExtractedPassageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedpassage.Table, extractedpassage.Columns, sqlgraph.NewFieldSpec(extractedpassage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TempRef(); ok {
		_spec.SetField(extractedpassage.FieldTempRef, field.TypeString, value)
	}
	if _u.mutation.TempRefCleared() {
		_spec.ClearField(extractedpassage.FieldTempRef, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(extractedpassage.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(extractedpassage.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(extractedpassage.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(extractedpassage.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(extractedpassage.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(extractedpassage.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(extractedpassage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Figures(); ok {
		_spec.SetField(extractedpassage.FieldFigures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFigures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedpassage.FieldFigures, value)
		})
	}
	if _u.mutation.FiguresCleared() {
		_spec.ClearField(extractedpassage.FieldFigures, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractedpassage.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractedpassage.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(extractedpassage.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportedPassageID(); ok {
		_spec.SetField(extractedpassage.FieldImportedPassageID, field.TypeUUID, value)
	}
	if _u.mutation.ImportedPassageIDCleared() {
		_spec.ClearField(extractedpassage.FieldImportedPassageID, field.TypeUUID)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedpassage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedPassageUpdateOne is the builder for updating a single ExtractedPassage entity.
type ExtractedPassageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedPassageMutation
}

// SetJobID sets the "job_id" field.
func (_u *ExtractedPassageUpdateOne) SetJobID(v uuid.UUID) *ExtractedPassageUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableJobID(v *uuid.UUID) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *ExtractedPassageUpdateOne) SetPageID(v uuid.UUID) *ExtractedPassageUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillablePageID(v *uuid.UUID) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetTempRef sets the "temp_ref" field.
func (_u *ExtractedPassageUpdateOne) SetTempRef(v string) *ExtractedPassageUpdateOne {
	_u.mutation.SetTempRef(v)
	return _u
}

// SetNillableTempRef sets the "temp_ref" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableTempRef(v *string) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetTempRef(*v)
	}
	return _u
}

// ClearTempRef clears the value of the "temp_ref" field.
func (_u *ExtractedPassageUpdateOne) ClearTempRef() *ExtractedPassageUpdateOne {
	_u.mutation.ClearTempRef()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExtractedPassageUpdateOne) SetTitle(v string) *ExtractedPassageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableTitle(v *string) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExtractedPassageUpdateOne) ClearTitle() *ExtractedPassageUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExtractedPassageUpdateOne) SetSource(v string) *ExtractedPassageUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableSource(v *string) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ExtractedPassageUpdateOne) ClearSource() *ExtractedPassageUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ExtractedPassageUpdateOne) SetAuthor(v string) *ExtractedPassageUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableAuthor(v *string) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *ExtractedPassageUpdateOne) ClearAuthor() *ExtractedPassageUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetContent sets the "content" field.
func (_u *ExtractedPassageUpdateOne) SetContent(v string) *ExtractedPassageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableContent(v *string) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFigures sets the "figures" field.
func (_u *ExtractedPassageUpdateOne) SetFigures(v []string) *ExtractedPassageUpdateOne {
	_u.mutation.SetFigures(v)
	return _u
}

// AppendFigures appends value to the "figures" field.
func (_u *ExtractedPassageUpdateOne) AppendFigures(v []string) *ExtractedPassageUpdateOne {
	_u.mutation.AppendFigures(v)
	return _u
}

// ClearFigures clears the value of the "figures" field.
func (_u *ExtractedPassageUpdateOne) ClearFigures() *ExtractedPassageUpdateOne {
	_u.mutation.ClearFigures()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ExtractedPassageUpdateOne) SetExtractionConfidence(v float32) *ExtractedPassageUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableExtractionConfidence(v *float32) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ExtractedPassageUpdateOne) AddExtractionConfidence(v float32) *ExtractedPassageUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ExtractedPassageUpdateOne) SetReviewStatus(v string) *ExtractedPassageUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableReviewStatus(v *string) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetImportedPassageID sets the "imported_passage_id" field.
func (_u *ExtractedPassageUpdateOne) SetImportedPassageID(v uuid.UUID) *ExtractedPassageUpdateOne {
	_u.mutation.SetImportedPassageID(v)
	return _u
}

// SetNillableImportedPassageID sets the "imported_passage_id" field if the given value is not nil.
func (_u *ExtractedPassageUpdateOne) SetNillableImportedPassageID(v *uuid.UUID) *ExtractedPassageUpdateOne {
	if v != nil {
		_u.SetImportedPassageID(*v)
	}
	return _u
}

// ClearImportedPassageID clears the value of the "imported_passage_id" field.
func (_u *ExtractedPassageUpdateOne) ClearImportedPassageID() *ExtractedPassageUpdateOne {
	_u.mutation.ClearImportedPassageID()
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *ExtractedPassageUpdateOne) SetJob(v *ExtractionJob) *ExtractedPassageUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetPage sets the "page" edge to the JobPage entity.
func (_u *ExtractedPassageUpdateOne) SetPage(v *JobPage) *ExtractedPassageUpdateOne {
	return _u.SetPageID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by IDs.
func (_u *ExtractedPassageUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *ExtractedPassageUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractedPassageUpdateOne) AddQuestions(v ...*ExtractedQuestion) *ExtractedPassageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ExtractedPassageMutation object of the builder.
func (_u *ExtractedPassageUpdateOne) Mutation() *ExtractedPassageMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *ExtractedPassageUpdateOne) ClearJob() *ExtractedPassageUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearPage clears the "page" edge to the JobPage entity.
func (_u *ExtractedPassageUpdateOne) ClearPage() *ExtractedPassageUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// ClearQuestions clears all "questions" edges to the ExtractedQuestion entity.
func (_u *ExtractedPassageUpdateOne) ClearQuestions() *ExtractedPassageUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to ExtractedQuestion entities by IDs.
func (_u *ExtractedPassageUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *ExtractedPassageUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to ExtractedQuestion entities.
func (_u *ExtractedPassageUpdateOne) RemoveQuestions(v ...*ExtractedQuestion) *ExtractedPassageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the ExtractedPassageUpdate builder.
func (_u *ExtractedPassageUpdateOne) Where(ps ...predicate.ExtractedPassage) *ExtractedPassageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedPassageUpdateOne) Select(field string, fields ...string) *ExtractedPassageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedPassage entity.
func (_u *ExtractedPassageUpdateOne) Save(ctx context.Context) (*ExtractedPassage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedPassageUpdateOne) SaveX(ctx context.Context) *ExtractedPassage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedPassageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedPassageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedPassageUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := extractedpassage.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ExtractedPassage.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := extractedpassage.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedPassage.review_status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedPassage.job"`)
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedPassage.page"`)
	}
	return nil
}

func (_u *ExtractedPassageUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedPassage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedpassage.Table, extractedpassage.Columns, sqlgraph.NewFieldSpec(extractedpassage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedPassage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedpassage.FieldID)
		for _, f := range fields {
			if !extractedpassage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedpassage.FieldID {
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
	if value, ok := _u.mutation.TempRef(); ok {
		_spec.SetField(extractedpassage.FieldTempRef, field.TypeString, value)
	}
	if _u.mutation.TempRefCleared() {
		_spec.ClearField(extractedpassage.FieldTempRef, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(extractedpassage.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(extractedpassage.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(extractedpassage.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(extractedpassage.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(extractedpassage.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(extractedpassage.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(extractedpassage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Figures(); ok {
		_spec.SetField(extractedpassage.FieldFigures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFigures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedpassage.FieldFigures, value)
		})
	}
	if _u.mutation.FiguresCleared() {
		_spec.ClearField(extractedpassage.FieldFigures, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractedpassage.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractedpassage.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(extractedpassage.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportedPassageID(); ok {
		_spec.SetField(extractedpassage.FieldImportedPassageID, field.TypeUUID, value)
	}
	if _u.mutation.ImportedPassageIDCleared() {
		_spec.ClearField(extractedpassage.FieldImportedPassageID, field.TypeUUID)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedPassage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedpassage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
