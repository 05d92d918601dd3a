// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldUserID, v))
}

// TargetModuleID applies equality check predicate on the "target_module_id" field. It's identical to TargetModuleIDEQ.
func TargetModuleID(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTargetModuleID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStatus, v))
}

// PdfFilename applies equality check predicate on the "pdf_filename" field. It's identical to PdfFilenameEQ.
func PdfFilename(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPdfFilename, v))
}

// PdfPath applies equality check predicate on the "pdf_path" field. It's identical to PdfPathEQ.
func PdfPath(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPdfPath, v))
}

// PdfHash applies equality check predicate on the "pdf_hash" field. It's identical to PdfHashEQ.
func PdfHash(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPdfHash, v))
}

// TotalPages applies equality check predicate on the "total_pages" field. It's identical to TotalPagesEQ.
func TotalPages(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTotalPages, v))
}

// ProcessedPages applies equality check predicate on the "processed_pages" field. It's identical to ProcessedPagesEQ.
func ProcessedPages(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldProcessedPages, v))
}

// QuestionPages applies equality check predicate on the "question_pages" field. It's identical to QuestionPagesEQ.
func QuestionPages(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldQuestionPages, v))
}

// SkippedPages applies equality check predicate on the "skipped_pages" field. It's identical to SkippedPagesEQ.
func SkippedPages(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldSkippedPages, v))
}

// FailedPages applies equality check predicate on the "failed_pages" field. It's identical to FailedPagesEQ.
func FailedPages(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldFailedPages, v))
}

// ExtractedQuestions applies equality check predicate on the "extracted_questions" field. It's identical to ExtractedQuestionsEQ.
func ExtractedQuestions(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldExtractedQuestions, v))
}

// ApprovedQuestions applies equality check predicate on the "approved_questions" field. It's identical to ApprovedQuestionsEQ.
func ApprovedQuestions(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldApprovedQuestions, v))
}

// ImportedQuestions applies equality check predicate on the "imported_questions" field. It's identical to ImportedQuestionsEQ.
func ImportedQuestions(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldImportedQuestions, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldProvider, v))
}

// EstimatedCostCents applies equality check predicate on the "estimated_cost_cents" field. It's identical to EstimatedCostCentsEQ.
func EstimatedCostCents(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldEstimatedCostCents, v))
}

// ActualCostCents applies equality check predicate on the "actual_cost_cents" field. It's identical to ActualCostCentsEQ.
func ActualCostCents(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldActualCostCents, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// LastErrorPage applies equality check predicate on the "last_error_page" field. It's identical to LastErrorPageEQ.
func LastErrorPage(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldLastErrorPage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldRetryCount, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTaskID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldUserID, v))
}

// TargetModuleIDEQ applies the EQ predicate on the "target_module_id" field.
func TargetModuleIDEQ(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTargetModuleID, v))
}

// TargetModuleIDNEQ applies the NEQ predicate on the "target_module_id" field.
func TargetModuleIDNEQ(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldTargetModuleID, v))
}

// TargetModuleIDIn applies the In predicate on the "target_module_id" field.
func TargetModuleIDIn(vs ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldTargetModuleID, vs...))
}

// TargetModuleIDNotIn applies the NotIn predicate on the "target_module_id" field.
func TargetModuleIDNotIn(vs ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldTargetModuleID, vs...))
}

// TargetModuleIDGT applies the GT predicate on the "target_module_id" field.
func TargetModuleIDGT(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldTargetModuleID, v))
}

// TargetModuleIDGTE applies the GTE predicate on the "target_module_id" field.
func TargetModuleIDGTE(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldTargetModuleID, v))
}

// TargetModuleIDLT applies the LT predicate on the "target_module_id" field.
func TargetModuleIDLT(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldTargetModuleID, v))
}

// TargetModuleIDLTE applies the LTE predicate on the "target_module_id" field.
func TargetModuleIDLTE(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldTargetModuleID, v))
}

// TargetModuleIDIsNil applies the IsNil predicate on the "target_module_id" field.
func TargetModuleIDIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldTargetModuleID))
}

// TargetModuleIDNotNil applies the NotNil predicate on the "target_module_id" field.
func TargetModuleIDNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldTargetModuleID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldStatus, v))
}

// PdfFilenameEQ applies the EQ predicate on the "pdf_filename" field.
func PdfFilenameEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPdfFilename, v))
}

// PdfFilenameNEQ applies the NEQ predicate on the "pdf_filename" field.
func PdfFilenameNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldPdfFilename, v))
}

// PdfFilenameIn applies the In predicate on the "pdf_filename" field.
func PdfFilenameIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldPdfFilename, vs...))
}

// PdfFilenameNotIn applies the NotIn predicate on the "pdf_filename" field.
func PdfFilenameNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldPdfFilename, vs...))
}

// PdfFilenameGT applies the GT predicate on the "pdf_filename" field.
func PdfFilenameGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldPdfFilename, v))
}

// PdfFilenameGTE applies the GTE predicate on the "pdf_filename" field.
func PdfFilenameGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldPdfFilename, v))
}

// PdfFilenameLT applies the LT predicate on the "pdf_filename" field.
func PdfFilenameLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldPdfFilename, v))
}

// PdfFilenameLTE applies the LTE predicate on the "pdf_filename" field.
func PdfFilenameLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldPdfFilename, v))
}

// PdfFilenameContains applies the Contains predicate on the "pdf_filename" field.
func PdfFilenameContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldPdfFilename, v))
}

// PdfFilenameHasPrefix applies the HasPrefix predicate on the "pdf_filename" field.
func PdfFilenameHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldPdfFilename, v))
}

// PdfFilenameHasSuffix applies the HasSuffix predicate on the "pdf_filename" field.
func PdfFilenameHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldPdfFilename, v))
}

// PdfFilenameEqualFold applies the EqualFold predicate on the "pdf_filename" field.
func PdfFilenameEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldPdfFilename, v))
}

// PdfFilenameContainsFold applies the ContainsFold predicate on the "pdf_filename" field.
func PdfFilenameContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldPdfFilename, v))
}

// PdfPathEQ applies the EQ predicate on the "pdf_path" field.
func PdfPathEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPdfPath, v))
}

// PdfPathNEQ applies the NEQ predicate on the "pdf_path" field.
func PdfPathNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldPdfPath, v))
}

// PdfPathIn applies the In predicate on the "pdf_path" field.
func PdfPathIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldPdfPath, vs...))
}

// PdfPathNotIn applies the NotIn predicate on the "pdf_path" field.
func PdfPathNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldPdfPath, vs...))
}

// PdfPathGT applies the GT predicate on the "pdf_path" field.
func PdfPathGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldPdfPath, v))
}

// PdfPathGTE applies the GTE predicate on the "pdf_path" field.
func PdfPathGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldPdfPath, v))
}

// PdfPathLT applies the LT predicate on the "pdf_path" field.
func PdfPathLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldPdfPath, v))
}

// PdfPathLTE applies the LTE predicate on the "pdf_path" field.
func PdfPathLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldPdfPath, v))
}

// PdfPathContains applies the Contains predicate on the "pdf_path" field.
func PdfPathContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldPdfPath, v))
}

// PdfPathHasPrefix applies the HasPrefix predicate on the "pdf_path" field.
func PdfPathHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldPdfPath, v))
}

// PdfPathHasSuffix applies the HasSuffix predicate on the "pdf_path" field.
func PdfPathHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldPdfPath, v))
}

// PdfPathEqualFold applies the EqualFold predicate on the "pdf_path" field.
func PdfPathEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldPdfPath, v))
}

// PdfPathContainsFold applies the ContainsFold predicate on the "pdf_path" field.
func PdfPathContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldPdfPath, v))
}

// PdfHashEQ applies the EQ predicate on the "pdf_hash" field.
func PdfHashEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPdfHash, v))
}

// PdfHashNEQ applies the NEQ predicate on the "pdf_hash" field.
func PdfHashNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldPdfHash, v))
}

// PdfHashIn applies the In predicate on the "pdf_hash" field.
func PdfHashIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldPdfHash, vs...))
}

// PdfHashNotIn applies the NotIn predicate on the "pdf_hash" field.
func PdfHashNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldPdfHash, vs...))
}

// PdfHashGT applies the GT predicate on the "pdf_hash" field.
func PdfHashGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldPdfHash, v))
}

// PdfHashGTE applies the GTE predicate on the "pdf_hash" field.
func PdfHashGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldPdfHash, v))
}

// PdfHashLT applies the LT predicate on the "pdf_hash" field.
func PdfHashLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldPdfHash, v))
}

// PdfHashLTE applies the LTE predicate on the "pdf_hash" field.
func PdfHashLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldPdfHash, v))
}

// PdfHashContains applies the Contains predicate on the "pdf_hash" field.
func PdfHashContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldPdfHash, v))
}

// PdfHashHasPrefix applies the HasPrefix predicate on the "pdf_hash" field.
func PdfHashHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldPdfHash, v))
}

// PdfHashHasSuffix applies the HasSuffix predicate on the "pdf_hash" field.
func PdfHashHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldPdfHash, v))
}

// PdfHashEqualFold applies the EqualFold predicate on the "pdf_hash" field.
func PdfHashEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldPdfHash, v))
}

// PdfHashContainsFold applies the ContainsFold predicate on the "pdf_hash" field.
func PdfHashContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldPdfHash, v))
}

// TotalPagesEQ applies the EQ predicate on the "total_pages" field.
func TotalPagesEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTotalPages, v))
}

// TotalPagesNEQ applies the NEQ predicate on the "total_pages" field.
func TotalPagesNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldTotalPages, v))
}

// TotalPagesIn applies the In predicate on the "total_pages" field.
func TotalPagesIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldTotalPages, vs...))
}

// TotalPagesNotIn applies the NotIn predicate on the "total_pages" field.
func TotalPagesNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldTotalPages, vs...))
}

// TotalPagesGT applies the GT predicate on the "total_pages" field.
func TotalPagesGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldTotalPages, v))
}

// TotalPagesGTE applies the GTE predicate on the "total_pages" field.
func TotalPagesGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldTotalPages, v))
}

// TotalPagesLT applies the LT predicate on the "total_pages" field.
func TotalPagesLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldTotalPages, v))
}

// TotalPagesLTE applies the LTE predicate on the "total_pages" field.
func TotalPagesLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldTotalPages, v))
}

// ProcessedPagesEQ applies the EQ predicate on the "processed_pages" field.
func ProcessedPagesEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldProcessedPages, v))
}

// ProcessedPagesNEQ applies the NEQ predicate on the "processed_pages" field.
func ProcessedPagesNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldProcessedPages, v))
}

// ProcessedPagesIn applies the In predicate on the "processed_pages" field.
func ProcessedPagesIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldProcessedPages, vs...))
}

// ProcessedPagesNotIn applies the NotIn predicate on the "processed_pages" field.
func ProcessedPagesNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldProcessedPages, vs...))
}

// ProcessedPagesGT applies the GT predicate on the "processed_pages" field.
func ProcessedPagesGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldProcessedPages, v))
}

// ProcessedPagesGTE applies the GTE predicate on the "processed_pages" field.
func ProcessedPagesGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldProcessedPages, v))
}

// ProcessedPagesLT applies the LT predicate on the "processed_pages" field.
func ProcessedPagesLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldProcessedPages, v))
}

// ProcessedPagesLTE applies the LTE predicate on the "processed_pages" field.
func ProcessedPagesLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldProcessedPages, v))
}

// QuestionPagesEQ applies the EQ predicate on the "question_pages" field.
func QuestionPagesEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldQuestionPages, v))
}

// QuestionPagesNEQ applies the NEQ predicate on the "question_pages" field.
func QuestionPagesNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldQuestionPages, v))
}

// QuestionPagesIn applies the In predicate on the "question_pages" field.
func QuestionPagesIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldQuestionPages, vs...))
}

// QuestionPagesNotIn applies the NotIn predicate on the "question_pages" field.
func QuestionPagesNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldQuestionPages, vs...))
}

// QuestionPagesGT applies the GT predicate on the "question_pages" field.
func QuestionPagesGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldQuestionPages, v))
}

// QuestionPagesGTE applies the GTE predicate on the "question_pages" field.
func QuestionPagesGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldQuestionPages, v))
}

// QuestionPagesLT applies the LT predicate on the "question_pages" field.
func QuestionPagesLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldQuestionPages, v))
}

// QuestionPagesLTE applies the LTE predicate on the "question_pages" field.
func QuestionPagesLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldQuestionPages, v))
}

// SkippedPagesEQ applies the EQ predicate on the "skipped_pages" field.
func SkippedPagesEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldSkippedPages, v))
}

// SkippedPagesNEQ applies the NEQ predicate on the "skipped_pages" field.
func SkippedPagesNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldSkippedPages, v))
}

// SkippedPagesIn applies the In predicate on the "skipped_pages" field.
func SkippedPagesIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldSkippedPages, vs...))
}

// SkippedPagesNotIn applies the NotIn predicate on the "skipped_pages" field.
func SkippedPagesNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldSkippedPages, vs...))
}

// SkippedPagesGT applies the GT predicate on the "skipped_pages" field.
func SkippedPagesGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldSkippedPages, v))
}

// SkippedPagesGTE applies the GTE predicate on the "skipped_pages" field.
func SkippedPagesGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldSkippedPages, v))
}

// SkippedPagesLT applies the LT predicate on the "skipped_pages" field.
func SkippedPagesLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldSkippedPages, v))
}

// SkippedPagesLTE applies the LTE predicate on the "skipped_pages" field.
func SkippedPagesLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldSkippedPages, v))
}

// FailedPagesEQ applies the EQ predicate on the "failed_pages" field.
func FailedPagesEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldFailedPages, v))
}

// FailedPagesNEQ applies the NEQ predicate on the "failed_pages" field.
func FailedPagesNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldFailedPages, v))
}

// FailedPagesIn applies the In predicate on the "failed_pages" field.
func FailedPagesIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldFailedPages, vs...))
}

// FailedPagesNotIn applies the NotIn predicate on the "failed_pages" field.
func FailedPagesNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldFailedPages, vs...))
}

// FailedPagesGT applies the GT predicate on the "failed_pages" field.
func FailedPagesGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldFailedPages, v))
}

// FailedPagesGTE applies the GTE predicate on the "failed_pages" field.
func FailedPagesGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldFailedPages, v))
}

// FailedPagesLT applies the LT predicate on the "failed_pages" field.
func FailedPagesLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldFailedPages, v))
}

// FailedPagesLTE applies the LTE predicate on the "failed_pages" field.
func FailedPagesLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldFailedPages, v))
}

// ExtractedQuestionsEQ applies the EQ predicate on the "extracted_questions" field.
func ExtractedQuestionsEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldExtractedQuestions, v))
}

// ExtractedQuestionsNEQ applies the NEQ predicate on the "extracted_questions" field.
func ExtractedQuestionsNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldExtractedQuestions, v))
}

// ExtractedQuestionsIn applies the In predicate on the "extracted_questions" field.
func ExtractedQuestionsIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldExtractedQuestions, vs...))
}

// ExtractedQuestionsNotIn applies the NotIn predicate on the "extracted_questions" field.
func ExtractedQuestionsNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldExtractedQuestions, vs...))
}

// ExtractedQuestionsGT applies the GT predicate on the "extracted_questions" field.
func ExtractedQuestionsGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldExtractedQuestions, v))
}

// ExtractedQuestionsGTE applies the GTE predicate on the "extracted_questions" field.
func ExtractedQuestionsGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldExtractedQuestions, v))
}

// ExtractedQuestionsLT applies the LT predicate on the "extracted_questions" field.
func ExtractedQuestionsLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldExtractedQuestions, v))
}

// ExtractedQuestionsLTE applies the LTE predicate on the "extracted_questions" field.
func ExtractedQuestionsLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldExtractedQuestions, v))
}

// ApprovedQuestionsEQ applies the EQ predicate on the "approved_questions" field.
func ApprovedQuestionsEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldApprovedQuestions, v))
}

// ApprovedQuestionsNEQ applies the NEQ predicate on the "approved_questions" field.
func ApprovedQuestionsNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldApprovedQuestions, v))
}

// ApprovedQuestionsIn applies the In predicate on the "approved_questions" field.
func ApprovedQuestionsIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldApprovedQuestions, vs...))
}

// ApprovedQuestionsNotIn applies the NotIn predicate on the "approved_questions" field.
func ApprovedQuestionsNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldApprovedQuestions, vs...))
}

// ApprovedQuestionsGT applies the GT predicate on the "approved_questions" field.
func ApprovedQuestionsGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldApprovedQuestions, v))
}

// ApprovedQuestionsGTE applies the GTE predicate on the "approved_questions" field.
func ApprovedQuestionsGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldApprovedQuestions, v))
}

// ApprovedQuestionsLT applies the LT predicate on the "approved_questions" field.
func ApprovedQuestionsLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldApprovedQuestions, v))
}

// ApprovedQuestionsLTE applies the LTE predicate on the "approved_questions" field.
func ApprovedQuestionsLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldApprovedQuestions, v))
}

// ImportedQuestionsEQ applies the EQ predicate on the "imported_questions" field.
func ImportedQuestionsEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldImportedQuestions, v))
}

// ImportedQuestionsNEQ applies the NEQ predicate on the "imported_questions" field.
func ImportedQuestionsNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldImportedQuestions, v))
}

// ImportedQuestionsIn applies the In predicate on the "imported_questions" field.
func ImportedQuestionsIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldImportedQuestions, vs...))
}

// ImportedQuestionsNotIn applies the NotIn predicate on the "imported_questions" field.
func ImportedQuestionsNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldImportedQuestions, vs...))
}

// ImportedQuestionsGT applies the GT predicate on the "imported_questions" field.
func ImportedQuestionsGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldImportedQuestions, v))
}

// ImportedQuestionsGTE applies the GTE predicate on the "imported_questions" field.
func ImportedQuestionsGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldImportedQuestions, v))
}

// ImportedQuestionsLT applies the LT predicate on the "imported_questions" field.
func ImportedQuestionsLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldImportedQuestions, v))
}

// ImportedQuestionsLTE applies the LTE predicate on the "imported_questions" field.
func ImportedQuestionsLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldImportedQuestions, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldProvider, v))
}

// EstimatedCostCentsEQ applies the EQ predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsNEQ applies the NEQ predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsIn applies the In predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldEstimatedCostCents, vs...))
}

// EstimatedCostCentsNotIn applies the NotIn predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldEstimatedCostCents, vs...))
}

// EstimatedCostCentsGT applies the GT predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsGTE applies the GTE predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsLT applies the LT predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsLTE applies the LTE predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldEstimatedCostCents, v))
}

// ActualCostCentsEQ applies the EQ predicate on the "actual_cost_cents" field.
func ActualCostCentsEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldActualCostCents, v))
}

// ActualCostCentsNEQ applies the NEQ predicate on the "actual_cost_cents" field.
func ActualCostCentsNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldActualCostCents, v))
}

// ActualCostCentsIn applies the In predicate on the "actual_cost_cents" field.
func ActualCostCentsIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldActualCostCents, vs...))
}

// ActualCostCentsNotIn applies the NotIn predicate on the "actual_cost_cents" field.
func ActualCostCentsNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldActualCostCents, vs...))
}

// ActualCostCentsGT applies the GT predicate on the "actual_cost_cents" field.
func ActualCostCentsGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldActualCostCents, v))
}

// ActualCostCentsGTE applies the GTE predicate on the "actual_cost_cents" field.
func ActualCostCentsGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldActualCostCents, v))
}

// ActualCostCentsLT applies the LT predicate on the "actual_cost_cents" field.
func ActualCostCentsLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldActualCostCents, v))
}

// ActualCostCentsLTE applies the LTE predicate on the "actual_cost_cents" field.
func ActualCostCentsLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldActualCostCents, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LastErrorPageEQ applies the EQ predicate on the "last_error_page" field.
func LastErrorPageEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldLastErrorPage, v))
}

// LastErrorPageNEQ applies the NEQ predicate on the "last_error_page" field.
func LastErrorPageNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldLastErrorPage, v))
}

// LastErrorPageIn applies the In predicate on the "last_error_page" field.
func LastErrorPageIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldLastErrorPage, vs...))
}

// LastErrorPageNotIn applies the NotIn predicate on the "last_error_page" field.
func LastErrorPageNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldLastErrorPage, vs...))
}

// LastErrorPageGT applies the GT predicate on the "last_error_page" field.
func LastErrorPageGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldLastErrorPage, v))
}

// LastErrorPageGTE applies the GTE predicate on the "last_error_page" field.
func LastErrorPageGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldLastErrorPage, v))
}

// LastErrorPageLT applies the LT predicate on the "last_error_page" field.
func LastErrorPageLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldLastErrorPage, v))
}

// LastErrorPageLTE applies the LTE predicate on the "last_error_page" field.
func LastErrorPageLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldLastErrorPage, v))
}

// LastErrorPageIsNil applies the IsNil predicate on the "last_error_page" field.
func LastErrorPageIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldLastErrorPage))
}

// LastErrorPageNotNil applies the NotNil predicate on the "last_error_page" field.
func LastErrorPageNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldLastErrorPage))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldRetryCount, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldTaskID, v))
}

// TestConfigsIsNil applies the IsNil predicate on the "test_configs" field.
func TestConfigsIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldTestConfigs))
}

// TestConfigsNotNil applies the NotNil predicate on the "test_configs" field.
func TestConfigsNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldTestConfigs))
}

// CreatedTestIdsIsNil applies the IsNil predicate on the "created_test_ids" field.
func CreatedTestIdsIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldCreatedTestIds))
}

// CreatedTestIdsNotNil applies the NotNil predicate on the "created_test_ids" field.
func CreatedTestIdsNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldCreatedTestIds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPages applies the HasEdge predicate on the "pages" edge.
func HasPages() predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPagesWith applies the HasEdge predicate on the "pages" edge with a given conditions (other predicates).
func HasPagesWith(preds ...predicate.JobPage) predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := newPagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.ExtractedQuestion) predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPassages applies the HasEdge predicate on the "passages" edge.
func HasPassages() predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PassagesTable, PassagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPassagesWith applies the HasEdge predicate on the "passages" edge with a given conditions (other predicates).
func HasPassagesWith(preds ...predicate.ExtractedPassage) predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := newPassagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.NotPredicates(p))
}
