// Code generated by ent, DO NOT EDIT.

package extractedpassage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldJobID, v))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldPageID, v))
}

// TempRef applies equality check predicate on the "temp_ref" field. It's identical to TempRefEQ.
func TempRef(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldTempRef, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldTitle, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldSource, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldAuthor, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldContent, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldReviewStatus, v))
}

// ImportedPassageID applies equality check predicate on the "imported_passage_id" field. It's identical to ImportedPassageIDEQ.
func ImportedPassageID(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldImportedPassageID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldJobID, vs...))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldPageID, vs...))
}

// TempRefEQ applies the EQ predicate on the "temp_ref" field.
func TempRefEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldTempRef, v))
}

// TempRefNEQ applies the NEQ predicate on the "temp_ref" field.
func TempRefNEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldTempRef, v))
}

// TempRefIn applies the In predicate on the "temp_ref" field.
func TempRefIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldTempRef, vs...))
}

// TempRefNotIn applies the NotIn predicate on the "temp_ref" field.
func TempRefNotIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldTempRef, vs...))
}

// TempRefGT applies the GT predicate on the "temp_ref" field.
func TempRefGT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldTempRef, v))
}

// TempRefGTE applies the GTE predicate on the "temp_ref" field.
func TempRefGTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldTempRef, v))
}

// TempRefLT applies the LT predicate on the "temp_ref" field.
func TempRefLT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldTempRef, v))
}

// TempRefLTE applies the LTE predicate on the "temp_ref" field.
func TempRefLTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldTempRef, v))
}

// TempRefContains applies the Contains predicate on the "temp_ref" field.
func TempRefContains(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContains(FieldTempRef, v))
}

// TempRefHasPrefix applies the HasPrefix predicate on the "temp_ref" field.
func TempRefHasPrefix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasPrefix(FieldTempRef, v))
}

// TempRefHasSuffix applies the HasSuffix predicate on the "temp_ref" field.
func TempRefHasSuffix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasSuffix(FieldTempRef, v))
}

// TempRefIsNil applies the IsNil predicate on the "temp_ref" field.
func TempRefIsNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIsNull(FieldTempRef))
}

// TempRefNotNil applies the NotNil predicate on the "temp_ref" field.
func TempRefNotNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotNull(FieldTempRef))
}

// TempRefEqualFold applies the EqualFold predicate on the "temp_ref" field.
func TempRefEqualFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEqualFold(FieldTempRef, v))
}

// TempRefContainsFold applies the ContainsFold predicate on the "temp_ref" field.
func TempRefContainsFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContainsFold(FieldTempRef, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContainsFold(FieldTitle, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContainsFold(FieldSource, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContainsFold(FieldAuthor, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContainsFold(FieldContent, v))
}

// FiguresIsNil applies the IsNil predicate on the "figures" field.
func FiguresIsNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIsNull(FieldFigures))
}

// FiguresNotNil applies the NotNil predicate on the "figures" field.
func FiguresNotNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotNull(FieldFigures))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldContainsFold(FieldReviewStatus, v))
}

// ImportedPassageIDEQ applies the EQ predicate on the "imported_passage_id" field.
func ImportedPassageIDEQ(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldImportedPassageID, v))
}

// ImportedPassageIDNEQ applies the NEQ predicate on the "imported_passage_id" field.
func ImportedPassageIDNEQ(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldImportedPassageID, v))
}

// ImportedPassageIDIn applies the In predicate on the "imported_passage_id" field.
func ImportedPassageIDIn(vs ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldImportedPassageID, vs...))
}

// ImportedPassageIDNotIn applies the NotIn predicate on the "imported_passage_id" field.
func ImportedPassageIDNotIn(vs ...uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldImportedPassageID, vs...))
}

// ImportedPassageIDGT applies the GT predicate on the "imported_passage_id" field.
func ImportedPassageIDGT(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldImportedPassageID, v))
}

// ImportedPassageIDGTE applies the GTE predicate on the "imported_passage_id" field.
func ImportedPassageIDGTE(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldImportedPassageID, v))
}

// ImportedPassageIDLT applies the LT predicate on the "imported_passage_id" field.
func ImportedPassageIDLT(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldImportedPassageID, v))
}

// ImportedPassageIDLTE applies the LTE predicate on the "imported_passage_id" field.
func ImportedPassageIDLTE(v uuid.UUID) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldImportedPassageID, v))
}

// ImportedPassageIDIsNil applies the IsNil predicate on the "imported_passage_id" field.
func ImportedPassageIDIsNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIsNull(FieldImportedPassageID))
}

// ImportedPassageIDNotNil applies the NotNil predicate on the "imported_passage_id" field.
func ImportedPassageIDNotNil() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotNull(FieldImportedPassageID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractionJob) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.JobPage) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.ExtractedPassage {
	return predicate.ExtractedPassage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.ExtractedQuestion) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedPassage) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedPassage) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedPassage) predicate.ExtractedPassage {
	return predicate.ExtractedPassage(sql.NotPredicates(p))
}
