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

// ExtractedQuestionCreate is the builder for creating a ExtractedQuestion entity.
type ExtractedQuestionCreate struct {
	config
	mutation *ExtractedQuestionMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ExtractedQuestionCreate) SetJobID(v uuid.UUID) *ExtractedQuestionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPageID sets the "page_id" field.
func (_c *ExtractedQuestionCreate) SetPageID(v uuid.UUID) *ExtractedQuestionCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetPassageID sets the "passage_id" field.
func (_c *ExtractedQuestionCreate) SetPassageID(v uuid.UUID) *ExtractedQuestionCreate {
	_c.mutation.SetPassageID(v)
	return _c
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillablePassageID(v *uuid.UUID) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetPassageID(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *ExtractedQuestionCreate) SetReviewStatus(v string) *ExtractedQuestionCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableReviewStatus(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *ExtractedQuestionCreate) SetReviewedBy(v uuid.UUID) *ExtractedQuestionCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableReviewedBy(v *uuid.UUID) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ExtractedQuestionCreate) SetReviewedAt(v time.Time) *ExtractedQuestionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableReviewedAt(v *time.Time) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *ExtractedQuestionCreate) SetExtractionConfidence(v float32) *ExtractedQuestionCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableExtractionConfidence(v *float32) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetAnswerConfidence sets the "answer_confidence" field.
func (_c *ExtractedQuestionCreate) SetAnswerConfidence(v float32) *ExtractedQuestionCreate {
	_c.mutation.SetAnswerConfidence(v)
	return _c
}

// SetNillableAnswerConfidence sets the "answer_confidence" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableAnswerConfidence(v *float32) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetAnswerConfidence(*v)
	}
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *ExtractedQuestionCreate) SetQuestionText(v string) *ExtractedQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *ExtractedQuestionCreate) SetQuestionType(v string) *ExtractedQuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableQuestionType(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetPassageText sets the "passage_text" field.
func (_c *ExtractedQuestionCreate) SetPassageText(v string) *ExtractedQuestionCreate {
	_c.mutation.SetPassageText(v)
	return _c
}

// SetNillablePassageText sets the "passage_text" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillablePassageText(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetPassageText(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *ExtractedQuestionCreate) SetOptions(v json.RawMessage) *ExtractedQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetTableData sets the "table_data" field.
func (_c *ExtractedQuestionCreate) SetTableData(v json.RawMessage) *ExtractedQuestionCreate {
	_c.mutation.SetTableData(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ExtractedQuestionCreate) SetCorrectAnswer(v []string) *ExtractedQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNeedsAnswer sets the "needs_answer" field.
func (_c *ExtractedQuestionCreate) SetNeedsAnswer(v bool) *ExtractedQuestionCreate {
	_c.mutation.SetNeedsAnswer(v)
	return _c
}

// SetNillableNeedsAnswer sets the "needs_answer" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableNeedsAnswer(v *bool) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetNeedsAnswer(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ExtractedQuestionCreate) SetExplanation(v string) *ExtractedQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableExplanation(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ExtractedQuestionCreate) SetDifficulty(v string) *ExtractedQuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableDifficulty(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *ExtractedQuestionCreate) SetDomain(v string) *ExtractedQuestionCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableDomain(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetSkillTags sets the "skill_tags" field.
func (_c *ExtractedQuestionCreate) SetSkillTags(v []string) *ExtractedQuestionCreate {
	_c.mutation.SetSkillTags(v)
	return _c
}

// SetNeedsImage sets the "needs_image" field.
func (_c *ExtractedQuestionCreate) SetNeedsImage(v bool) *ExtractedQuestionCreate {
	_c.mutation.SetNeedsImage(v)
	return _c
}

// SetNillableNeedsImage sets the "needs_image" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableNeedsImage(v *bool) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetNeedsImage(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *ExtractedQuestionCreate) SetImageURL(v string) *ExtractedQuestionCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableImageURL(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetImageStatus sets the "image_status" field.
func (_c *ExtractedQuestionCreate) SetImageStatus(v string) *ExtractedQuestionCreate {
	_c.mutation.SetImageStatus(v)
	return _c
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableImageStatus(v *string) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetImageStatus(*v)
	}
	return _c
}

// SetValidationErrors sets the "validation_errors" field.
func (_c *ExtractedQuestionCreate) SetValidationErrors(v []string) *ExtractedQuestionCreate {
	_c.mutation.SetValidationErrors(v)
	return _c
}

// SetImportedQuestionID sets the "imported_question_id" field.
func (_c *ExtractedQuestionCreate) SetImportedQuestionID(v uuid.UUID) *ExtractedQuestionCreate {
	_c.mutation.SetImportedQuestionID(v)
	return _c
}

// SetNillableImportedQuestionID sets the "imported_question_id" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableImportedQuestionID(v *uuid.UUID) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetImportedQuestionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedQuestionCreate) SetCreatedAt(v time.Time) *ExtractedQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableCreatedAt(v *time.Time) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractedQuestionCreate) SetUpdatedAt(v time.Time) *ExtractedQuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableUpdatedAt(v *time.Time) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedQuestionCreate) SetID(v uuid.UUID) *ExtractedQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedQuestionCreate) SetNillableID(v *uuid.UUID) *ExtractedQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_c *ExtractedQuestionCreate) SetJob(v *ExtractionJob) *ExtractedQuestionCreate {
	return _c.SetJobID(v.ID)
}

// SetPage sets the "page" edge to the JobPage entity.
func (_c *ExtractedQuestionCreate) SetPage(v *JobPage) *ExtractedQuestionCreate {
	return _c.SetPageID(v.ID)
}

// SetPassage sets the "passage" edge to the ExtractedPassage entity.
func (_c *ExtractedQuestionCreate) SetPassage(v *ExtractedPassage) *ExtractedQuestionCreate {
	return _c.SetPassageID(v.ID)
}

// Mutation returns the ExtractedQuestionMutation object of the builder.
func (_c *ExtractedQuestionCreate) Mutation() *ExtractedQuestionMutation {
	return _c.mutation
}

// Save creates the ExtractedQuestion in the database.
func (_c *ExtractedQuestionCreate) Save(ctx context.Context) (*ExtractedQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedQuestionCreate) SaveX(ctx context.Context) *ExtractedQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedQuestionCreate) defaults() {
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := extractedquestion.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := extractedquestion.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.AnswerConfidence(); !ok {
		v := extractedquestion.DefaultAnswerConfidence
		_c.mutation.SetAnswerConfidence(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := extractedquestion.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.NeedsAnswer(); !ok {
		v := extractedquestion.DefaultNeedsAnswer
		_c.mutation.SetNeedsAnswer(v)
	}
	if _, ok := _c.mutation.NeedsImage(); !ok {
		v := extractedquestion.DefaultNeedsImage
		_c.mutation.SetNeedsImage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractedquestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedQuestionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ExtractedQuestion.job_id"`)}
	}
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "ExtractedQuestion.page_id"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "ExtractedQuestion.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := extractedquestion.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "ExtractedQuestion.extraction_confidence"`)}
	}
	if _, ok := _c.mutation.AnswerConfidence(); !ok {
		return &ValidationError{Name: "answer_confidence", err: errors.New(`ent: missing required field "ExtractedQuestion.answer_confidence"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "ExtractedQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := extractedquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "ExtractedQuestion.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := extractedquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsAnswer(); !ok {
		return &ValidationError{Name: "needs_answer", err: errors.New(`ent: missing required field "ExtractedQuestion.needs_answer"`)}
	}
	if _, ok := _c.mutation.NeedsImage(); !ok {
		return &ValidationError{Name: "needs_image", err: errors.New(`ent: missing required field "ExtractedQuestion.needs_image"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractedQuestion.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ExtractedQuestion.job"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "ExtractedQuestion.page"`)}
	}
	return nil
}

func (_c *ExtractedQuestionCreate) sqlSave(ctx context.Context) (*ExtractedQuestion, error) {
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

func (_c *ExtractedQuestionCreate) createSpec() (*ExtractedQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedquestion.Table, sqlgraph.NewFieldSpec(extractedquestion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(extractedquestion.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(extractedquestion.FieldReviewedBy, field.TypeUUID, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(extractedquestion.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractedquestion.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.AnswerConfidence(); ok {
		_spec.SetField(extractedquestion.FieldAnswerConfidence, field.TypeFloat32, value)
		_node.AnswerConfidence = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(extractedquestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(extractedquestion.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.PassageText(); ok {
		_spec.SetField(extractedquestion.FieldPassageText, field.TypeString, value)
		_node.PassageText = &value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(extractedquestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.TableData(); ok {
		_spec.SetField(extractedquestion.FieldTableData, field.TypeJSON, value)
		_node.TableData = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(extractedquestion.FieldCorrectAnswer, field.TypeJSON, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.NeedsAnswer(); ok {
		_spec.SetField(extractedquestion.FieldNeedsAnswer, field.TypeBool, value)
		_node.NeedsAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(extractedquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = &value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(extractedquestion.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = &value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(extractedquestion.FieldDomain, field.TypeString, value)
		_node.Domain = &value
	}
	if value, ok := _c.mutation.SkillTags(); ok {
		_spec.SetField(extractedquestion.FieldSkillTags, field.TypeJSON, value)
		_node.SkillTags = value
	}
	if value, ok := _c.mutation.NeedsImage(); ok {
		_spec.SetField(extractedquestion.FieldNeedsImage, field.TypeBool, value)
		_node.NeedsImage = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(extractedquestion.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	if value, ok := _c.mutation.ImageStatus(); ok {
		_spec.SetField(extractedquestion.FieldImageStatus, field.TypeString, value)
		_node.ImageStatus = &value
	}
	if value, ok := _c.mutation.ValidationErrors(); ok {
		_spec.SetField(extractedquestion.FieldValidationErrors, field.TypeJSON, value)
		_node.ValidationErrors = value
	}
	if value, ok := _c.mutation.ImportedQuestionID(); ok {
		_spec.SetField(extractedquestion.FieldImportedQuestionID, field.TypeUUID, value)
		_node.ImportedQuestionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedquestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedquestion.JobTable,
			Columns: []string{extractedquestion.JobColumn},
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
			Table:   extractedquestion.PageTable,
			Columns: []string{extractedquestion.PageColumn},
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
	if nodes := _c.mutation.PassageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedquestion.PassageTable,
			Columns: []string{extractedquestion.PassageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedpassage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PassageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedQuestionCreateBulk is the builder for creating many ExtractedQuestion entities in bulk.
type ExtractedQuestionCreateBulk struct {
	config
	err      error
	builders []*ExtractedQuestionCreate
}

// Save creates the ExtractedQuestion entities in the database.
func (_c *ExtractedQuestionCreateBulk) Save(ctx context.Context) ([]*ExtractedQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedQuestionMutation)
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
func (_c *ExtractedQuestionCreateBulk) SaveX(ctx context.Context) []*ExtractedQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
