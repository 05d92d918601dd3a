// Code generated by ent, DO NOT EDIT.

package jobpage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldJobID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldPageNumber, v))
}

// Markdown applies equality check predicate on the "markdown" field. It's identical to MarkdownEQ.
func Markdown(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldMarkdown, v))
}

// IsQuestionPage applies equality check predicate on the "is_question_page" field. It's identical to IsQuestionPageEQ.
func IsQuestionPage(v bool) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldIsQuestionPage, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldState, v))
}

// ImagePng applies equality check predicate on the "image_png" field. It's identical to ImagePngEQ.
func ImagePng(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldImagePng, v))
}

// OcrCostCents applies equality check predicate on the "ocr_cost_cents" field. It's identical to OcrCostCentsEQ.
func OcrCostCents(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldOcrCostCents, v))
}

// StructuringCostCents applies equality check predicate on the "structuring_cost_cents" field. It's identical to StructuringCostCentsEQ.
func StructuringCostCents(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldStructuringCostCents, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldRetryCount, v))
}

// LastErrorAt applies equality check predicate on the "last_error_at" field. It's identical to LastErrorAtEQ.
func LastErrorAt(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldLastErrorAt, v))
}

// ProviderUsed applies equality check predicate on the "provider_used" field. It's identical to ProviderUsedEQ.
func ProviderUsed(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldProviderUsed, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldJobID, vs...))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldPageNumber, v))
}

// MarkdownEQ applies the EQ predicate on the "markdown" field.
func MarkdownEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldMarkdown, v))
}

// MarkdownNEQ applies the NEQ predicate on the "markdown" field.
func MarkdownNEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldMarkdown, v))
}

// MarkdownIn applies the In predicate on the "markdown" field.
func MarkdownIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldMarkdown, vs...))
}

// MarkdownNotIn applies the NotIn predicate on the "markdown" field.
func MarkdownNotIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldMarkdown, vs...))
}

// MarkdownGT applies the GT predicate on the "markdown" field.
func MarkdownGT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldMarkdown, v))
}

// MarkdownGTE applies the GTE predicate on the "markdown" field.
func MarkdownGTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldMarkdown, v))
}

// MarkdownLT applies the LT predicate on the "markdown" field.
func MarkdownLT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldMarkdown, v))
}

// MarkdownLTE applies the LTE predicate on the "markdown" field.
func MarkdownLTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldMarkdown, v))
}

// MarkdownContains applies the Contains predicate on the "markdown" field.
func MarkdownContains(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContains(FieldMarkdown, v))
}

// MarkdownHasPrefix applies the HasPrefix predicate on the "markdown" field.
func MarkdownHasPrefix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasPrefix(FieldMarkdown, v))
}

// MarkdownHasSuffix applies the HasSuffix predicate on the "markdown" field.
func MarkdownHasSuffix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasSuffix(FieldMarkdown, v))
}

// MarkdownIsNil applies the IsNil predicate on the "markdown" field.
func MarkdownIsNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldIsNull(FieldMarkdown))
}

// MarkdownNotNil applies the NotNil predicate on the "markdown" field.
func MarkdownNotNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldNotNull(FieldMarkdown))
}

// MarkdownEqualFold applies the EqualFold predicate on the "markdown" field.
func MarkdownEqualFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEqualFold(FieldMarkdown, v))
}

// MarkdownContainsFold applies the ContainsFold predicate on the "markdown" field.
func MarkdownContainsFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContainsFold(FieldMarkdown, v))
}

// IsQuestionPageEQ applies the EQ predicate on the "is_question_page" field.
func IsQuestionPageEQ(v bool) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldIsQuestionPage, v))
}

// IsQuestionPageNEQ applies the NEQ predicate on the "is_question_page" field.
func IsQuestionPageNEQ(v bool) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldIsQuestionPage, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContainsFold(FieldState, v))
}

// ImagePngEQ applies the EQ predicate on the "image_png" field.
func ImagePngEQ(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldImagePng, v))
}

// ImagePngNEQ applies the NEQ predicate on the "image_png" field.
func ImagePngNEQ(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldImagePng, v))
}

// ImagePngIn applies the In predicate on the "image_png" field.
func ImagePngIn(vs ...[]byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldImagePng, vs...))
}

// ImagePngNotIn applies the NotIn predicate on the "image_png" field.
func ImagePngNotIn(vs ...[]byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldImagePng, vs...))
}

// ImagePngGT applies the GT predicate on the "image_png" field.
func ImagePngGT(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldImagePng, v))
}

// ImagePngGTE applies the GTE predicate on the "image_png" field.
func ImagePngGTE(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldImagePng, v))
}

// ImagePngLT applies the LT predicate on the "image_png" field.
func ImagePngLT(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldImagePng, v))
}

// ImagePngLTE applies the LTE predicate on the "image_png" field.
func ImagePngLTE(v []byte) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldImagePng, v))
}

// ImagePngIsNil applies the IsNil predicate on the "image_png" field.
func ImagePngIsNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldIsNull(FieldImagePng))
}

// ImagePngNotNil applies the NotNil predicate on the "image_png" field.
func ImagePngNotNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldNotNull(FieldImagePng))
}

// OcrCostCentsEQ applies the EQ predicate on the "ocr_cost_cents" field.
func OcrCostCentsEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldOcrCostCents, v))
}

// OcrCostCentsNEQ applies the NEQ predicate on the "ocr_cost_cents" field.
func OcrCostCentsNEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldOcrCostCents, v))
}

// OcrCostCentsIn applies the In predicate on the "ocr_cost_cents" field.
func OcrCostCentsIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldOcrCostCents, vs...))
}

// OcrCostCentsNotIn applies the NotIn predicate on the "ocr_cost_cents" field.
func OcrCostCentsNotIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldOcrCostCents, vs...))
}

// OcrCostCentsGT applies the GT predicate on the "ocr_cost_cents" field.
func OcrCostCentsGT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldOcrCostCents, v))
}

// OcrCostCentsGTE applies the GTE predicate on the "ocr_cost_cents" field.
func OcrCostCentsGTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldOcrCostCents, v))
}

// OcrCostCentsLT applies the LT predicate on the "ocr_cost_cents" field.
func OcrCostCentsLT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldOcrCostCents, v))
}

// OcrCostCentsLTE applies the LTE predicate on the "ocr_cost_cents" field.
func OcrCostCentsLTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldOcrCostCents, v))
}

// StructuringCostCentsEQ applies the EQ predicate on the "structuring_cost_cents" field.
func StructuringCostCentsEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldStructuringCostCents, v))
}

// StructuringCostCentsNEQ applies the NEQ predicate on the "structuring_cost_cents" field.
func StructuringCostCentsNEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldStructuringCostCents, v))
}

// StructuringCostCentsIn applies the In predicate on the "structuring_cost_cents" field.
func StructuringCostCentsIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldStructuringCostCents, vs...))
}

// StructuringCostCentsNotIn applies the NotIn predicate on the "structuring_cost_cents" field.
func StructuringCostCentsNotIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldStructuringCostCents, vs...))
}

// StructuringCostCentsGT applies the GT predicate on the "structuring_cost_cents" field.
func StructuringCostCentsGT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldStructuringCostCents, v))
}

// StructuringCostCentsGTE applies the GTE predicate on the "structuring_cost_cents" field.
func StructuringCostCentsGTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldStructuringCostCents, v))
}

// StructuringCostCentsLT applies the LT predicate on the "structuring_cost_cents" field.
func StructuringCostCentsLT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldStructuringCostCents, v))
}

// StructuringCostCentsLTE applies the LTE predicate on the "structuring_cost_cents" field.
func StructuringCostCentsLTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldStructuringCostCents, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldRetryCount, v))
}

// LastErrorAtEQ applies the EQ predicate on the "last_error_at" field.
func LastErrorAtEQ(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldLastErrorAt, v))
}

// LastErrorAtNEQ applies the NEQ predicate on the "last_error_at" field.
func LastErrorAtNEQ(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldLastErrorAt, v))
}

// LastErrorAtIn applies the In predicate on the "last_error_at" field.
func LastErrorAtIn(vs ...time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldLastErrorAt, vs...))
}

// LastErrorAtNotIn applies the NotIn predicate on the "last_error_at" field.
func LastErrorAtNotIn(vs ...time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldLastErrorAt, vs...))
}

// LastErrorAtGT applies the GT predicate on the "last_error_at" field.
func LastErrorAtGT(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldLastErrorAt, v))
}

// LastErrorAtGTE applies the GTE predicate on the "last_error_at" field.
func LastErrorAtGTE(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldLastErrorAt, v))
}

// LastErrorAtLT applies the LT predicate on the "last_error_at" field.
func LastErrorAtLT(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldLastErrorAt, v))
}

// LastErrorAtLTE applies the LTE predicate on the "last_error_at" field.
func LastErrorAtLTE(v time.Time) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldLastErrorAt, v))
}

// LastErrorAtIsNil applies the IsNil predicate on the "last_error_at" field.
func LastErrorAtIsNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldIsNull(FieldLastErrorAt))
}

// LastErrorAtNotNil applies the NotNil predicate on the "last_error_at" field.
func LastErrorAtNotNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldNotNull(FieldLastErrorAt))
}

// ProviderUsedEQ applies the EQ predicate on the "provider_used" field.
func ProviderUsedEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEQ(FieldProviderUsed, v))
}

// ProviderUsedNEQ applies the NEQ predicate on the "provider_used" field.
func ProviderUsedNEQ(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNEQ(FieldProviderUsed, v))
}

// ProviderUsedIn applies the In predicate on the "provider_used" field.
func ProviderUsedIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldIn(FieldProviderUsed, vs...))
}

// ProviderUsedNotIn applies the NotIn predicate on the "provider_used" field.
func ProviderUsedNotIn(vs ...string) predicate.JobPage {
	return predicate.JobPage(sql.FieldNotIn(FieldProviderUsed, vs...))
}

// ProviderUsedGT applies the GT predicate on the "provider_used" field.
func ProviderUsedGT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGT(FieldProviderUsed, v))
}

// ProviderUsedGTE applies the GTE predicate on the "provider_used" field.
func ProviderUsedGTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldGTE(FieldProviderUsed, v))
}

// ProviderUsedLT applies the LT predicate on the "provider_used" field.
func ProviderUsedLT(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLT(FieldProviderUsed, v))
}

// ProviderUsedLTE applies the LTE predicate on the "provider_used" field.
func ProviderUsedLTE(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldLTE(FieldProviderUsed, v))
}

// ProviderUsedContains applies the Contains predicate on the "provider_used" field.
func ProviderUsedContains(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContains(FieldProviderUsed, v))
}

// ProviderUsedHasPrefix applies the HasPrefix predicate on the "provider_used" field.
func ProviderUsedHasPrefix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasPrefix(FieldProviderUsed, v))
}

// ProviderUsedHasSuffix applies the HasSuffix predicate on the "provider_used" field.
func ProviderUsedHasSuffix(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldHasSuffix(FieldProviderUsed, v))
}

// ProviderUsedIsNil applies the IsNil predicate on the "provider_used" field.
func ProviderUsedIsNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldIsNull(FieldProviderUsed))
}

// ProviderUsedNotNil applies the NotNil predicate on the "provider_used" field.
func ProviderUsedNotNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldNotNull(FieldProviderUsed))
}

// ProviderUsedEqualFold applies the EqualFold predicate on the "provider_used" field.
func ProviderUsedEqualFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldEqualFold(FieldProviderUsed, v))
}

// ProviderUsedContainsFold applies the ContainsFold predicate on the "provider_used" field.
func ProviderUsedContainsFold(v string) predicate.JobPage {
	return predicate.JobPage(sql.FieldContainsFold(FieldProviderUsed, v))
}

// DetectedFiguresIsNil applies the IsNil predicate on the "detected_figures" field.
func DetectedFiguresIsNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldIsNull(FieldDetectedFigures))
}

// DetectedFiguresNotNil applies the NotNil predicate on the "detected_figures" field.
func DetectedFiguresNotNil() predicate.JobPage {
	return predicate.JobPage(sql.FieldNotNull(FieldDetectedFigures))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobPage {
	return predicate.JobPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractionJob) predicate.JobPage {
	return predicate.JobPage(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.JobPage {
	return predicate.JobPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.ExtractedQuestion) predicate.JobPage {
	return predicate.JobPage(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPassages applies the HasEdge predicate on the "passages" edge.
func HasPassages() predicate.JobPage {
	return predicate.JobPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PassagesTable, PassagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPassagesWith applies the HasEdge predicate on the "passages" edge with a given conditions (other predicates).
func HasPassagesWith(preds ...predicate.ExtractedPassage) predicate.JobPage {
	return predicate.JobPage(func(s *sql.Selector) {
		step := newPassagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobPage) predicate.JobPage {
	return predicate.JobPage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobPage) predicate.JobPage {
	return predicate.JobPage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobPage) predicate.JobPage {
	return predicate.JobPage(sql.NotPredicates(p))
}
