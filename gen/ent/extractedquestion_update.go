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

// ExtractedQuestionUpdate is the builder for updating ExtractedQuestion entities.
type ExtractedQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedQuestionMutation
}

// Where appends a list predicates to the ExtractedQuestionUpdate builder.
func (_u *ExtractedQuestionUpdate) Where(ps ...predicate.ExtractedQuestion) *ExtractedQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ExtractedQuestionUpdate) SetJobID(v uuid.UUID) *ExtractedQuestionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableJobID(v *uuid.UUID) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *ExtractedQuestionUpdate) SetPageID(v uuid.UUID) *ExtractedQuestionUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillablePageID(v *uuid.UUID) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetPassageID sets the "passage_id" field.
func (_u *ExtractedQuestionUpdate) SetPassageID(v uuid.UUID) *ExtractedQuestionUpdate {
	_u.mutation.SetPassageID(v)
	return _u
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillablePassageID(v *uuid.UUID) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetPassageID(*v)
	}
	return _u
}

// ClearPassageID clears the value of the "passage_id" field.
func (_u *ExtractedQuestionUpdate) ClearPassageID() *ExtractedQuestionUpdate {
	_u.mutation.ClearPassageID()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ExtractedQuestionUpdate) SetReviewStatus(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableReviewStatus(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ExtractedQuestionUpdate) SetReviewedBy(v uuid.UUID) *ExtractedQuestionUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableReviewedBy(v *uuid.UUID) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ExtractedQuestionUpdate) ClearReviewedBy() *ExtractedQuestionUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ExtractedQuestionUpdate) SetReviewedAt(v time.Time) *ExtractedQuestionUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableReviewedAt(v *time.Time) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ExtractedQuestionUpdate) ClearReviewedAt() *ExtractedQuestionUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ExtractedQuestionUpdate) SetExtractionConfidence(v float32) *ExtractedQuestionUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableExtractionConfidence(v *float32) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ExtractedQuestionUpdate) AddExtractionConfidence(v float32) *ExtractedQuestionUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetAnswerConfidence sets the "answer_confidence" field.
func (_u *ExtractedQuestionUpdate) SetAnswerConfidence(v float32) *ExtractedQuestionUpdate {
	_u.mutation.ResetAnswerConfidence()
	_u.mutation.SetAnswerConfidence(v)
	return _u
}

// SetNillableAnswerConfidence sets the "answer_confidence" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableAnswerConfidence(v *float32) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetAnswerConfidence(*v)
	}
	return _u
}

// AddAnswerConfidence adds value to the "answer_confidence" field.
func (_u *ExtractedQuestionUpdate) AddAnswerConfidence(v float32) *ExtractedQuestionUpdate {
	_u.mutation.AddAnswerConfidence(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ExtractedQuestionUpdate) SetQuestionText(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableQuestionText(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *ExtractedQuestionUpdate) SetQuestionType(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableQuestionType(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetPassageText sets the "passage_text" field.
func (_u *ExtractedQuestionUpdate) SetPassageText(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetPassageText(v)
	return _u
}

// SetNillablePassageText sets the "passage_text" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillablePassageText(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetPassageText(*v)
	}
	return _u
}

// ClearPassageText clears the value of the "passage_text" field.
func (_u *ExtractedQuestionUpdate) ClearPassageText() *ExtractedQuestionUpdate {
	_u.mutation.ClearPassageText()
	return _u
}

// SetOptions sets the "options" field.
func (_u *ExtractedQuestionUpdate) SetOptions(v json.RawMessage) *ExtractedQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ExtractedQuestionUpdate) AppendOptions(v json.RawMessage) *ExtractedQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ExtractedQuestionUpdate) ClearOptions() *ExtractedQuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetTableData sets the "table_data" field.
func (_u *ExtractedQuestionUpdate) SetTableData(v json.RawMessage) *ExtractedQuestionUpdate {
	_u.mutation.SetTableData(v)
	return _u
}

// AppendTableData appends value to the "table_data" field.
func (_u *ExtractedQuestionUpdate) AppendTableData(v json.RawMessage) *ExtractedQuestionUpdate {
	_u.mutation.AppendTableData(v)
	return _u
}

// ClearTableData clears the value of the "table_data" field.
func (_u *ExtractedQuestionUpdate) ClearTableData() *ExtractedQuestionUpdate {
	_u.mutation.ClearTableData()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExtractedQuestionUpdate) SetCorrectAnswer(v []string) *ExtractedQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// AppendCorrectAnswer appends value to the "correct_answer" field.
func (_u *ExtractedQuestionUpdate) AppendCorrectAnswer(v []string) *ExtractedQuestionUpdate {
	_u.mutation.AppendCorrectAnswer(v)
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *ExtractedQuestionUpdate) ClearCorrectAnswer() *ExtractedQuestionUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetNeedsAnswer sets the "needs_answer" field.
func (_u *ExtractedQuestionUpdate) SetNeedsAnswer(v bool) *ExtractedQuestionUpdate {
	_u.mutation.SetNeedsAnswer(v)
	return _u
}

// SetNillableNeedsAnswer sets the "needs_answer" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableNeedsAnswer(v *bool) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetNeedsAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ExtractedQuestionUpdate) SetExplanation(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableExplanation(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *ExtractedQuestionUpdate) ClearExplanation() *ExtractedQuestionUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ExtractedQuestionUpdate) SetDifficulty(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableDifficulty(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *ExtractedQuestionUpdate) ClearDifficulty() *ExtractedQuestionUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ExtractedQuestionUpdate) SetDomain(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableDomain(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *ExtractedQuestionUpdate) ClearDomain() *ExtractedQuestionUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetSkillTags sets the "skill_tags" field.
func (_u *ExtractedQuestionUpdate) SetSkillTags(v []string) *ExtractedQuestionUpdate {
	_u.mutation.SetSkillTags(v)
	return _u
}

// AppendSkillTags appends value to the "skill_tags" field.
func (_u *ExtractedQuestionUpdate) AppendSkillTags(v []string) *ExtractedQuestionUpdate {
	_u.mutation.AppendSkillTags(v)
	return _u
}

// ClearSkillTags clears the value of the "skill_tags" field.
func (_u *ExtractedQuestionUpdate) ClearSkillTags() *ExtractedQuestionUpdate {
	_u.mutation.ClearSkillTags()
	return _u
}

// SetNeedsImage sets the "needs_image" field.
func (_u *ExtractedQuestionUpdate) SetNeedsImage(v bool) *ExtractedQuestionUpdate {
	_u.mutation.SetNeedsImage(v)
	return _u
}

// SetNillableNeedsImage sets the "needs_image" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableNeedsImage(v *bool) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetNeedsImage(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ExtractedQuestionUpdate) SetImageURL(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableImageURL(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ExtractedQuestionUpdate) ClearImageURL() *ExtractedQuestionUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetImageStatus sets the "image_status" field.
func (_u *ExtractedQuestionUpdate) SetImageStatus(v string) *ExtractedQuestionUpdate {
	_u.mutation.SetImageStatus(v)
	return _u
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableImageStatus(v *string) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetImageStatus(*v)
	}
	return _u
}

// ClearImageStatus clears the value of the "image_status" field.
func (_u *ExtractedQuestionUpdate) ClearImageStatus() *ExtractedQuestionUpdate {
	_u.mutation.ClearImageStatus()
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractedQuestionUpdate) SetValidationErrors(v []string) *ExtractedQuestionUpdate {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractedQuestionUpdate) AppendValidationErrors(v []string) *ExtractedQuestionUpdate {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractedQuestionUpdate) ClearValidationErrors() *ExtractedQuestionUpdate {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetImportedQuestionID sets the "imported_question_id" field.
func (_u *ExtractedQuestionUpdate) SetImportedQuestionID(v uuid.UUID) *ExtractedQuestionUpdate {
	_u.mutation.SetImportedQuestionID(v)
	return _u
}

// SetNillableImportedQuestionID sets the "imported_question_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdate) SetNillableImportedQuestionID(v *uuid.UUID) *ExtractedQuestionUpdate {
	if v != nil {
		_u.SetImportedQuestionID(*v)
	}
	return _u
}

// ClearImportedQuestionID clears the value of the "imported_question_id" field.
func (_u *ExtractedQuestionUpdate) ClearImportedQuestionID() *ExtractedQuestionUpdate {
	_u.mutation.ClearImportedQuestionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedQuestionUpdate) SetUpdatedAt(v time.Time) *ExtractedQuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *ExtractedQuestionUpdate) SetJob(v *ExtractionJob) *ExtractedQuestionUpdate {
	return _u.SetJobID(v.ID)
}

// SetPage sets the "page" edge to the JobPage entity.
func (_u *ExtractedQuestionUpdate) SetPage(v *JobPage) *ExtractedQuestionUpdate {
	return _u.SetPageID(v.ID)
}

// SetPassage sets the "passage" edge to the ExtractedPassage entity.
func (_u *ExtractedQuestionUpdate) SetPassage(v *ExtractedPassage) *ExtractedQuestionUpdate {
	return _u.SetPassageID(v.ID)
}

// Mutation returns the ExtractedQuestionMutation object of the builder.
func (_u *ExtractedQuestionUpdate) Mutation() *ExtractedQuestionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *ExtractedQuestionUpdate) ClearJob() *ExtractedQuestionUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearPage clears the "page" edge to the JobPage entity.
func (_u *ExtractedQuestionUpdate) ClearPage() *ExtractedQuestionUpdate {
	_u.mutation.ClearPage()
	return _u
}

// ClearPassage clears the "passage" edge to the ExtractedPassage entity.
func (_u *ExtractedQuestionUpdate) ClearPassage() *ExtractedQuestionUpdate {
	_u.mutation.ClearPassage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedQuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedQuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractedquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedQuestionUpdate) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := extractedquestion.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.review_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := extractedquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := extractedquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.question_type": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedQuestion.job"`)
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedQuestion.page"`)
	}
	return nil
}

func (_u *ExtractedQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedquestion.Table, extractedquestion.Columns, sqlgraph.NewFieldSpec(extractedquestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(extractedquestion.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(extractedquestion.FieldReviewedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(extractedquestion.FieldReviewedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(extractedquestion.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(extractedquestion.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractedquestion.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractedquestion.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AnswerConfidence(); ok {
		_spec.SetField(extractedquestion.FieldAnswerConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedAnswerConfidence(); ok {
		_spec.AddField(extractedquestion.FieldAnswerConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(extractedquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(extractedquestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassageText(); ok {
		_spec.SetField(extractedquestion.FieldPassageText, field.TypeString, value)
	}
	if _u.mutation.PassageTextCleared() {
		_spec.ClearField(extractedquestion.FieldPassageText, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(extractedquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(extractedquestion.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.TableData(); ok {
		_spec.SetField(extractedquestion.FieldTableData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldTableData, value)
		})
	}
	if _u.mutation.TableDataCleared() {
		_spec.ClearField(extractedquestion.FieldTableData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(extractedquestion.FieldCorrectAnswer, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswer(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldCorrectAnswer, value)
		})
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(extractedquestion.FieldCorrectAnswer, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsAnswer(); ok {
		_spec.SetField(extractedquestion.FieldNeedsAnswer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(extractedquestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(extractedquestion.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(extractedquestion.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(extractedquestion.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(extractedquestion.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(extractedquestion.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.SkillTags(); ok {
		_spec.SetField(extractedquestion.FieldSkillTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldSkillTags, value)
		})
	}
	if _u.mutation.SkillTagsCleared() {
		_spec.ClearField(extractedquestion.FieldSkillTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsImage(); ok {
		_spec.SetField(extractedquestion.FieldNeedsImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(extractedquestion.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(extractedquestion.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.ImageStatus(); ok {
		_spec.SetField(extractedquestion.FieldImageStatus, field.TypeString, value)
	}
	if _u.mutation.ImageStatusCleared() {
		_spec.ClearField(extractedquestion.FieldImageStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractedquestion.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractedquestion.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportedQuestionID(); ok {
		_spec.SetField(extractedquestion.FieldImportedQuestionID, field.TypeUUID, value)
	}
	if _u.mutation.ImportedQuestionIDCleared() {
		_spec.ClearField(extractedquestion.FieldImportedQuestionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedQuestionUpdateOne is the builder for updating a single ExtractedQuestion entity.
type ExtractedQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedQuestionMutation
}

// SetJobID sets the "job_id" field.
func (_u *ExtractedQuestionUpdateOne) SetJobID(v uuid.UUID) *ExtractedQuestionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableJobID(v *uuid.UUID) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *ExtractedQuestionUpdateOne) SetPageID(v uuid.UUID) *ExtractedQuestionUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillablePageID(v *uuid.UUID) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetPassageID sets the "passage_id" field.
func (_u *ExtractedQuestionUpdateOne) SetPassageID(v uuid.UUID) *ExtractedQuestionUpdateOne {
	_u.mutation.SetPassageID(v)
	return _u
}

// SetNillablePassageID sets the "passage_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillablePassageID(v *uuid.UUID) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetPassageID(*v)
	}
	return _u
}

// ClearPassageID clears the value of the "passage_id" field.
func (_u *ExtractedQuestionUpdateOne) ClearPassageID() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearPassageID()
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *ExtractedQuestionUpdateOne) SetReviewStatus(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableReviewStatus(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ExtractedQuestionUpdateOne) SetReviewedBy(v uuid.UUID) *ExtractedQuestionUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableReviewedBy(v *uuid.UUID) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ExtractedQuestionUpdateOne) ClearReviewedBy() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ExtractedQuestionUpdateOne) SetReviewedAt(v time.Time) *ExtractedQuestionUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableReviewedAt(v *time.Time) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ExtractedQuestionUpdateOne) ClearReviewedAt() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ExtractedQuestionUpdateOne) SetExtractionConfidence(v float32) *ExtractedQuestionUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableExtractionConfidence(v *float32) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ExtractedQuestionUpdateOne) AddExtractionConfidence(v float32) *ExtractedQuestionUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetAnswerConfidence sets the "answer_confidence" field.
func (_u *ExtractedQuestionUpdateOne) SetAnswerConfidence(v float32) *ExtractedQuestionUpdateOne {
	_u.mutation.ResetAnswerConfidence()
	_u.mutation.SetAnswerConfidence(v)
	return _u
}

// SetNillableAnswerConfidence sets the "answer_confidence" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableAnswerConfidence(v *float32) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetAnswerConfidence(*v)
	}
	return _u
}

// AddAnswerConfidence adds value to the "answer_confidence" field.
func (_u *ExtractedQuestionUpdateOne) AddAnswerConfidence(v float32) *ExtractedQuestionUpdateOne {
	_u.mutation.AddAnswerConfidence(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ExtractedQuestionUpdateOne) SetQuestionText(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableQuestionText(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *ExtractedQuestionUpdateOne) SetQuestionType(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableQuestionType(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetPassageText sets the "passage_text" field.
func (_u *ExtractedQuestionUpdateOne) SetPassageText(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetPassageText(v)
	return _u
}

// SetNillablePassageText sets the "passage_text" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillablePassageText(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetPassageText(*v)
	}
	return _u
}

// ClearPassageText clears the value of the "passage_text" field.
func (_u *ExtractedQuestionUpdateOne) ClearPassageText() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearPassageText()
	return _u
}

// SetOptions sets the "options" field.
func (_u *ExtractedQuestionUpdateOne) SetOptions(v json.RawMessage) *ExtractedQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ExtractedQuestionUpdateOne) AppendOptions(v json.RawMessage) *ExtractedQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ExtractedQuestionUpdateOne) ClearOptions() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetTableData sets the "table_data" field.
func (_u *ExtractedQuestionUpdateOne) SetTableData(v json.RawMessage) *ExtractedQuestionUpdateOne {
	_u.mutation.SetTableData(v)
	return _u
}

// AppendTableData appends value to the "table_data" field.
func (_u *ExtractedQuestionUpdateOne) AppendTableData(v json.RawMessage) *ExtractedQuestionUpdateOne {
	_u.mutation.AppendTableData(v)
	return _u
}

// ClearTableData clears the value of the "table_data" field.
func (_u *ExtractedQuestionUpdateOne) ClearTableData() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearTableData()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExtractedQuestionUpdateOne) SetCorrectAnswer(v []string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// AppendCorrectAnswer appends value to the "correct_answer" field.
func (_u *ExtractedQuestionUpdateOne) AppendCorrectAnswer(v []string) *ExtractedQuestionUpdateOne {
	_u.mutation.AppendCorrectAnswer(v)
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *ExtractedQuestionUpdateOne) ClearCorrectAnswer() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetNeedsAnswer sets the "needs_answer" field.
func (_u *ExtractedQuestionUpdateOne) SetNeedsAnswer(v bool) *ExtractedQuestionUpdateOne {
	_u.mutation.SetNeedsAnswer(v)
	return _u
}

// SetNillableNeedsAnswer sets the "needs_answer" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableNeedsAnswer(v *bool) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetNeedsAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ExtractedQuestionUpdateOne) SetExplanation(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableExplanation(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *ExtractedQuestionUpdateOne) ClearExplanation() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ExtractedQuestionUpdateOne) SetDifficulty(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableDifficulty(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *ExtractedQuestionUpdateOne) ClearDifficulty() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ExtractedQuestionUpdateOne) SetDomain(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableDomain(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *ExtractedQuestionUpdateOne) ClearDomain() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetSkillTags sets the "skill_tags" field.
func (_u *ExtractedQuestionUpdateOne) SetSkillTags(v []string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetSkillTags(v)
	return _u
}

// AppendSkillTags appends value to the "skill_tags" field.
func (_u *ExtractedQuestionUpdateOne) AppendSkillTags(v []string) *ExtractedQuestionUpdateOne {
	_u.mutation.AppendSkillTags(v)
	return _u
}

// ClearSkillTags clears the value of the "skill_tags" field.
func (_u *ExtractedQuestionUpdateOne) ClearSkillTags() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearSkillTags()
	return _u
}

// SetNeedsImage sets the "needs_image" field.
func (_u *ExtractedQuestionUpdateOne) SetNeedsImage(v bool) *ExtractedQuestionUpdateOne {
	_u.mutation.SetNeedsImage(v)
	return _u
}

// SetNillableNeedsImage sets the "needs_image" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableNeedsImage(v *bool) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetNeedsImage(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ExtractedQuestionUpdateOne) SetImageURL(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableImageURL(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ExtractedQuestionUpdateOne) ClearImageURL() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetImageStatus sets the "image_status" field.
func (_u *ExtractedQuestionUpdateOne) SetImageStatus(v string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetImageStatus(v)
	return _u
}

// SetNillableImageStatus sets the "image_status" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableImageStatus(v *string) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetImageStatus(*v)
	}
	return _u
}

// ClearImageStatus clears the value of the "image_status" field.
func (_u *ExtractedQuestionUpdateOne) ClearImageStatus() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearImageStatus()
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractedQuestionUpdateOne) SetValidationErrors(v []string) *ExtractedQuestionUpdateOne {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractedQuestionUpdateOne) AppendValidationErrors(v []string) *ExtractedQuestionUpdateOne {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractedQuestionUpdateOne) ClearValidationErrors() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetImportedQuestionID sets the "imported_question_id" field.
func (_u *ExtractedQuestionUpdateOne) SetImportedQuestionID(v uuid.UUID) *ExtractedQuestionUpdateOne {
	_u.mutation.SetImportedQuestionID(v)
	return _u
}

// SetNillableImportedQuestionID sets the "imported_question_id" field if the given value is not nil.
func (_u *ExtractedQuestionUpdateOne) SetNillableImportedQuestionID(v *uuid.UUID) *ExtractedQuestionUpdateOne {
	if v != nil {
		_u.SetImportedQuestionID(*v)
	}
	return _u
}

// ClearImportedQuestionID clears the value of the "imported_question_id" field.
func (_u *ExtractedQuestionUpdateOne) ClearImportedQuestionID() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearImportedQuestionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedQuestionUpdateOne) SetUpdatedAt(v time.Time) *ExtractedQuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *ExtractedQuestionUpdateOne) SetJob(v *ExtractionJob) *ExtractedQuestionUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetPage sets the "page" edge to the JobPage entity.
func (_u *ExtractedQuestionUpdateOne) SetPage(v *JobPage) *ExtractedQuestionUpdateOne {
	return _u.SetPageID(v.ID)
}

// SetPassage sets the "passage" edge to the ExtractedPassage entity.
func (_u *ExtractedQuestionUpdateOne) SetPassage(v *ExtractedPassage) *ExtractedQuestionUpdateOne {
	return _u.SetPassageID(v.ID)
}

// Mutation returns the ExtractedQuestionMutation object of the builder.
func (_u *ExtractedQuestionUpdateOne) Mutation() *ExtractedQuestionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *ExtractedQuestionUpdateOne) ClearJob() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearPage clears the "page" edge to the JobPage entity.
func (_u *ExtractedQuestionUpdateOne) ClearPage() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// ClearPassage clears the "passage" edge to the ExtractedPassage entity.
func (_u *ExtractedQuestionUpdateOne) ClearPassage() *ExtractedQuestionUpdateOne {
	_u.mutation.ClearPassage()
	return _u
}

// Where appends a list predicates to the ExtractedQuestionUpdate builder.
func (_u *ExtractedQuestionUpdateOne) Where(ps ...predicate.ExtractedQuestion) *ExtractedQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedQuestionUpdateOne) Select(field string, fields ...string) *ExtractedQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedQuestion entity.
func (_u *ExtractedQuestionUpdateOne) Save(ctx context.Context) (*ExtractedQuestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedQuestionUpdateOne) SaveX(ctx context.Context) *ExtractedQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedQuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractedquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := extractedquestion.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.review_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := extractedquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := extractedquestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "ExtractedQuestion.question_type": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedQuestion.job"`)
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedQuestion.page"`)
	}
	return nil
}

func (_u *ExtractedQuestionUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedquestion.Table, extractedquestion.Columns, sqlgraph.NewFieldSpec(extractedquestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedquestion.FieldID)
		for _, f := range fields {
			if !extractedquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedquestion.FieldID {
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
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(extractedquestion.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(extractedquestion.FieldReviewedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(extractedquestion.FieldReviewedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(extractedquestion.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(extractedquestion.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractedquestion.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractedquestion.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AnswerConfidence(); ok {
		_spec.SetField(extractedquestion.FieldAnswerConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedAnswerConfidence(); ok {
		_spec.AddField(extractedquestion.FieldAnswerConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(extractedquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(extractedquestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassageText(); ok {
		_spec.SetField(extractedquestion.FieldPassageText, field.TypeString, value)
	}
	if _u.mutation.PassageTextCleared() {
		_spec.ClearField(extractedquestion.FieldPassageText, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(extractedquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(extractedquestion.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.TableData(); ok {
		_spec.SetField(extractedquestion.FieldTableData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldTableData, value)
		})
	}
	if _u.mutation.TableDataCleared() {
		_spec.ClearField(extractedquestion.FieldTableData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(extractedquestion.FieldCorrectAnswer, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswer(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldCorrectAnswer, value)
		})
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(extractedquestion.FieldCorrectAnswer, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsAnswer(); ok {
		_spec.SetField(extractedquestion.FieldNeedsAnswer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(extractedquestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(extractedquestion.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(extractedquestion.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(extractedquestion.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(extractedquestion.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(extractedquestion.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.SkillTags(); ok {
		_spec.SetField(extractedquestion.FieldSkillTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldSkillTags, value)
		})
	}
	if _u.mutation.SkillTagsCleared() {
		_spec.ClearField(extractedquestion.FieldSkillTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.NeedsImage(); ok {
		_spec.SetField(extractedquestion.FieldNeedsImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(extractedquestion.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(extractedquestion.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.ImageStatus(); ok {
		_spec.SetField(extractedquestion.FieldImageStatus, field.TypeString, value)
	}
	if _u.mutation.ImageStatusCleared() {
		_spec.ClearField(extractedquestion.FieldImageStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractedquestion.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedquestion.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractedquestion.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportedQuestionID(); ok {
		_spec.SetField(extractedquestion.FieldImportedQuestionID, field.TypeUUID, value)
	}
	if _u.mutation.ImportedQuestionIDCleared() {
		_spec.ClearField(extractedquestion.FieldImportedQuestionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
