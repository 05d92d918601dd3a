// Code generated by ent, DO NOT EDIT.

package extractedquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldJobID, v))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldPageID, v))
}

// PassageID applies equality check predicate on the "passage_id" field. It's identical to PassageIDEQ.
func PassageID(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldPassageID, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldReviewedAt, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldExtractionConfidence, v))
}

// AnswerConfidence applies equality check predicate on the "answer_confidence" field. It's identical to AnswerConfidenceEQ.
func AnswerConfidence(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldAnswerConfidence, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// PassageText applies equality check predicate on the "passage_text" field. It's identical to PassageTextEQ.
func PassageText(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldPassageText, v))
}

// NeedsAnswer applies equality check predicate on the "needs_answer" field. It's identical to NeedsAnswerEQ.
func NeedsAnswer(v bool) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldNeedsAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldExplanation, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldDomain, v))
}

// NeedsImage applies equality check predicate on the "needs_image" field. It's identical to NeedsImageEQ.
func NeedsImage(v bool) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldNeedsImage, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldImageURL, v))
}

// ImageStatus applies equality check predicate on the "image_status" field. It's identical to ImageStatusEQ.
func ImageStatus(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldImageStatus, v))
}

// ImportedQuestionID applies equality check predicate on the "imported_question_id" field. It's identical to ImportedQuestionIDEQ.
func ImportedQuestionID(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldImportedQuestionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldJobID, vs...))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldPageID, vs...))
}

// PassageIDEQ applies the EQ predicate on the "passage_id" field.
func PassageIDEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldPassageID, v))
}

// PassageIDNEQ applies the NEQ predicate on the "passage_id" field.
func PassageIDNEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldPassageID, v))
}

// PassageIDIn applies the In predicate on the "passage_id" field.
func PassageIDIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldPassageID, vs...))
}

// PassageIDNotIn applies the NotIn predicate on the "passage_id" field.
func PassageIDNotIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldPassageID, vs...))
}

// PassageIDIsNil applies the IsNil predicate on the "passage_id" field.
func PassageIDIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldPassageID))
}

// PassageIDNotNil applies the NotNil predicate on the "passage_id" field.
func PassageIDNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldPassageID))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldReviewStatus, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldReviewedAt))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldExtractionConfidence, v))
}

// AnswerConfidenceEQ applies the EQ predicate on the "answer_confidence" field.
func AnswerConfidenceEQ(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldAnswerConfidence, v))
}

// AnswerConfidenceNEQ applies the NEQ predicate on the "answer_confidence" field.
func AnswerConfidenceNEQ(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldAnswerConfidence, v))
}

// AnswerConfidenceIn applies the In predicate on the "answer_confidence" field.
func AnswerConfidenceIn(vs ...float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldAnswerConfidence, vs...))
}

// AnswerConfidenceNotIn applies the NotIn predicate on the "answer_confidence" field.
func AnswerConfidenceNotIn(vs ...float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldAnswerConfidence, vs...))
}

// AnswerConfidenceGT applies the GT predicate on the "answer_confidence" field.
func AnswerConfidenceGT(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldAnswerConfidence, v))
}

// AnswerConfidenceGTE applies the GTE predicate on the "answer_confidence" field.
func AnswerConfidenceGTE(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldAnswerConfidence, v))
}

// AnswerConfidenceLT applies the LT predicate on the "answer_confidence" field.
func AnswerConfidenceLT(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldAnswerConfidence, v))
}

// AnswerConfidenceLTE applies the LTE predicate on the "answer_confidence" field.
func AnswerConfidenceLTE(v float32) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldAnswerConfidence, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldQuestionText, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldQuestionType, v))
}

// PassageTextEQ applies the EQ predicate on the "passage_text" field.
func PassageTextEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldPassageText, v))
}

// PassageTextNEQ applies the NEQ predicate on the "passage_text" field.
func PassageTextNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldPassageText, v))
}

// PassageTextIn applies the In predicate on the "passage_text" field.
func PassageTextIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldPassageText, vs...))
}

// PassageTextNotIn applies the NotIn predicate on the "passage_text" field.
func PassageTextNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldPassageText, vs...))
}

// PassageTextGT applies the GT predicate on the "passage_text" field.
func PassageTextGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldPassageText, v))
}

// PassageTextGTE applies the GTE predicate on the "passage_text" field.
func PassageTextGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldPassageText, v))
}

// PassageTextLT applies the LT predicate on the "passage_text" field.
func PassageTextLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldPassageText, v))
}

// PassageTextLTE applies the LTE predicate on the "passage_text" field.
func PassageTextLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldPassageText, v))
}

// PassageTextContains applies the Contains predicate on the "passage_text" field.
func PassageTextContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldPassageText, v))
}

// PassageTextHasPrefix applies the HasPrefix predicate on the "passage_text" field.
func PassageTextHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldPassageText, v))
}

// PassageTextHasSuffix applies the HasSuffix predicate on the "passage_text" field.
func PassageTextHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldPassageText, v))
}

// PassageTextIsNil applies the IsNil predicate on the "passage_text" field.
func PassageTextIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldPassageText))
}

// PassageTextNotNil applies the NotNil predicate on the "passage_text" field.
func PassageTextNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldPassageText))
}

// PassageTextEqualFold applies the EqualFold predicate on the "passage_text" field.
func PassageTextEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldPassageText, v))
}

// PassageTextContainsFold applies the ContainsFold predicate on the "passage_text" field.
func PassageTextContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldPassageText, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldOptions))
}

// TableDataIsNil applies the IsNil predicate on the "table_data" field.
func TableDataIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldTableData))
}

// TableDataNotNil applies the NotNil predicate on the "table_data" field.
func TableDataNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldTableData))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldCorrectAnswer))
}

// NeedsAnswerEQ applies the EQ predicate on the "needs_answer" field.
func NeedsAnswerEQ(v bool) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldNeedsAnswer, v))
}

// NeedsAnswerNEQ applies the NEQ predicate on the "needs_answer" field.
func NeedsAnswerNEQ(v bool) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldNeedsAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldDifficulty, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainIsNil applies the IsNil predicate on the "domain" field.
func DomainIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldDomain))
}

// DomainNotNil applies the NotNil predicate on the "domain" field.
func DomainNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldDomain))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldDomain, v))
}

// SkillTagsIsNil applies the IsNil predicate on the "skill_tags" field.
func SkillTagsIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldSkillTags))
}

// SkillTagsNotNil applies the NotNil predicate on the "skill_tags" field.
func SkillTagsNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldSkillTags))
}

// NeedsImageEQ applies the EQ predicate on the "needs_image" field.
func NeedsImageEQ(v bool) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldNeedsImage, v))
}

// NeedsImageNEQ applies the NEQ predicate on the "needs_image" field.
func NeedsImageNEQ(v bool) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldNeedsImage, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldImageURL, v))
}

// ImageStatusEQ applies the EQ predicate on the "image_status" field.
func ImageStatusEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldImageStatus, v))
}

// ImageStatusNEQ applies the NEQ predicate on the "image_status" field.
func ImageStatusNEQ(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldImageStatus, v))
}

// ImageStatusIn applies the In predicate on the "image_status" field.
func ImageStatusIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldImageStatus, vs...))
}

// ImageStatusNotIn applies the NotIn predicate on the "image_status" field.
func ImageStatusNotIn(vs ...string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldImageStatus, vs...))
}

// ImageStatusGT applies the GT predicate on the "image_status" field.
func ImageStatusGT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldImageStatus, v))
}

// ImageStatusGTE applies the GTE predicate on the "image_status" field.
func ImageStatusGTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldImageStatus, v))
}

// ImageStatusLT applies the LT predicate on the "image_status" field.
func ImageStatusLT(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldImageStatus, v))
}

// ImageStatusLTE applies the LTE predicate on the "image_status" field.
func ImageStatusLTE(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldImageStatus, v))
}

// ImageStatusContains applies the Contains predicate on the "image_status" field.
func ImageStatusContains(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContains(FieldImageStatus, v))
}

// ImageStatusHasPrefix applies the HasPrefix predicate on the "image_status" field.
func ImageStatusHasPrefix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasPrefix(FieldImageStatus, v))
}

// ImageStatusHasSuffix applies the HasSuffix predicate on the "image_status" field.
func ImageStatusHasSuffix(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldHasSuffix(FieldImageStatus, v))
}

// ImageStatusIsNil applies the IsNil predicate on the "image_status" field.
func ImageStatusIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldImageStatus))
}

// ImageStatusNotNil applies the NotNil predicate on the "image_status" field.
func ImageStatusNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldImageStatus))
}

// ImageStatusEqualFold applies the EqualFold predicate on the "image_status" field.
func ImageStatusEqualFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEqualFold(FieldImageStatus, v))
}

// ImageStatusContainsFold applies the ContainsFold predicate on the "image_status" field.
func ImageStatusContainsFold(v string) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldContainsFold(FieldImageStatus, v))
}

// ValidationErrorsIsNil applies the IsNil predicate on the "validation_errors" field.
func ValidationErrorsIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldValidationErrors))
}

// ValidationErrorsNotNil applies the NotNil predicate on the "validation_errors" field.
func ValidationErrorsNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldValidationErrors))
}

// ImportedQuestionIDEQ applies the EQ predicate on the "imported_question_id" field.
func ImportedQuestionIDEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldImportedQuestionID, v))
}

// ImportedQuestionIDNEQ applies the NEQ predicate on the "imported_question_id" field.
func ImportedQuestionIDNEQ(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldImportedQuestionID, v))
}

// ImportedQuestionIDIn applies the In predicate on the "imported_question_id" field.
func ImportedQuestionIDIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldImportedQuestionID, vs...))
}

// ImportedQuestionIDNotIn applies the NotIn predicate on the "imported_question_id" field.
func ImportedQuestionIDNotIn(vs ...uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldImportedQuestionID, vs...))
}

// ImportedQuestionIDGT applies the GT predicate on the "imported_question_id" field.
func ImportedQuestionIDGT(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldImportedQuestionID, v))
}

// ImportedQuestionIDGTE applies the GTE predicate on the "imported_question_id" field.
func ImportedQuestionIDGTE(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldImportedQuestionID, v))
}

// ImportedQuestionIDLT applies the LT predicate on the "imported_question_id" field.
func ImportedQuestionIDLT(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldImportedQuestionID, v))
}

// ImportedQuestionIDLTE applies the LTE predicate on the "imported_question_id" field.
func ImportedQuestionIDLTE(v uuid.UUID) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldImportedQuestionID, v))
}

// ImportedQuestionIDIsNil applies the IsNil predicate on the "imported_question_id" field.
func ImportedQuestionIDIsNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIsNull(FieldImportedQuestionID))
}

// ImportedQuestionIDNotNil applies the NotNil predicate on the "imported_question_id" field.
func ImportedQuestionIDNotNil() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotNull(FieldImportedQuestionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractionJob) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.JobPage) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPassage applies the HasEdge predicate on the "passage" edge.
func HasPassage() predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PassageTable, PassageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPassageWith applies the HasEdge predicate on the "passage" edge with a given conditions (other predicates).
func HasPassageWith(preds ...predicate.ExtractedPassage) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(func(s *sql.Selector) {
		step := newPassageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedQuestion) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedQuestion) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedQuestion) predicate.ExtractedQuestion {
	return predicate.ExtractedQuestion(sql.NotPredicates(p))
}
