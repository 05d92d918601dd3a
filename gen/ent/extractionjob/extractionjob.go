// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionjob type in the database.
	Label = "extraction_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTargetModuleID holds the string denoting the target_module_id field in the database.
	FieldTargetModuleID = "target_module_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPdfFilename holds the string denoting the pdf_filename field in the database.
	FieldPdfFilename = "pdf_filename"
	// FieldPdfPath holds the string denoting the pdf_path field in the database.
	FieldPdfPath = "pdf_path"
	// FieldPdfHash holds the string denoting the pdf_hash field in the database.
	FieldPdfHash = "pdf_hash"
	// FieldTotalPages holds the string denoting the total_pages field in the database.
	FieldTotalPages = "total_pages"
	// FieldProcessedPages holds the string denoting the processed_pages field in the database.
	FieldProcessedPages = "processed_pages"
	// FieldQuestionPages holds the string denoting the question_pages field in the database.
	FieldQuestionPages = "question_pages"
	// FieldSkippedPages holds the string denoting the skipped_pages field in the database.
	FieldSkippedPages = "skipped_pages"
	// FieldFailedPages holds the string denoting the failed_pages field in the database.
	FieldFailedPages = "failed_pages"
	// FieldExtractedQuestions holds the string denoting the extracted_questions field in the database.
	FieldExtractedQuestions = "extracted_questions"
	// FieldApprovedQuestions holds the string denoting the approved_questions field in the database.
	FieldApprovedQuestions = "approved_questions"
	// FieldImportedQuestions holds the string denoting the imported_questions field in the database.
	FieldImportedQuestions = "imported_questions"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldEstimatedCostCents holds the string denoting the estimated_cost_cents field in the database.
	FieldEstimatedCostCents = "estimated_cost_cents"
	// FieldActualCostCents holds the string denoting the actual_cost_cents field in the database.
	FieldActualCostCents = "actual_cost_cents"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldLastErrorPage holds the string denoting the last_error_page field in the database.
	FieldLastErrorPage = "last_error_page"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldTestConfigs holds the string denoting the test_configs field in the database.
	FieldTestConfigs = "test_configs"
	// FieldCreatedTestIds holds the string denoting the created_test_ids field in the database.
	FieldCreatedTestIds = "created_test_ids"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePages holds the string denoting the pages edge name in mutations.
	EdgePages = "pages"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgePassages holds the string denoting the passages edge name in mutations.
	EdgePassages = "passages"
	// Table holds the table name of the extractionjob in the database.
	Table = "extraction_jobs"
	// PagesTable is the table that holds the pages relation/edge.
	PagesTable = "job_pages"
	// PagesInverseTable is the table name for the JobPage entity.
	// It exists in this package in order to avoid circular dependency with the "jobpage" package.
	PagesInverseTable = "job_pages"
	// PagesColumn is the table column denoting the pages relation/edge.
	PagesColumn = "job_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "extracted_questions"
	// QuestionsInverseTable is the table name for the ExtractedQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "extractedquestion" package.
	QuestionsInverseTable = "extracted_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "job_id"
	// PassagesTable is the table that holds the passages relation/edge.
	PassagesTable = "extracted_passages"
	// PassagesInverseTable is the table name for the ExtractedPassage entity.
	// It exists in this package in order to avoid circular dependency with the "extractedpassage" package.
	PassagesInverseTable = "extracted_passages"
	// PassagesColumn is the table column denoting the passages relation/edge.
	PassagesColumn = "job_id"
)

// Columns holds all SQL columns for extractionjob fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTargetModuleID,
	FieldStatus,
	FieldPdfFilename,
	FieldPdfPath,
	FieldPdfHash,
	FieldTotalPages,
	FieldProcessedPages,
	FieldQuestionPages,
	FieldSkippedPages,
	FieldFailedPages,
	FieldExtractedQuestions,
	FieldApprovedQuestions,
	FieldImportedQuestions,
	FieldProvider,
	FieldEstimatedCostCents,
	FieldActualCostCents,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldLastErrorPage,
	FieldRetryCount,
	FieldTaskID,
	FieldTestConfigs,
	FieldCreatedTestIds,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// PdfFilenameValidator is a validator for the "pdf_filename" field. It is called by the builders before save.
	PdfFilenameValidator func(string) error
	// PdfPathValidator is a validator for the "pdf_path" field. It is called by the builders before save.
	PdfPathValidator func(string) error
	// PdfHashValidator is a validator for the "pdf_hash" field. It is called by the builders before save.
	PdfHashValidator func(string) error
	// DefaultTotalPages holds the default value on creation for the "total_pages" field.
	DefaultTotalPages int
	// TotalPagesValidator is a validator for the "total_pages" field. It is called by the builders before save.
	TotalPagesValidator func(int) error
	// DefaultProcessedPages holds the default value on creation for the "processed_pages" field.
	DefaultProcessedPages int
	// ProcessedPagesValidator is a validator for the "processed_pages" field. It is called by the builders before save.
	ProcessedPagesValidator func(int) error
	// DefaultQuestionPages holds the default value on creation for the "question_pages" field.
	DefaultQuestionPages int
	// QuestionPagesValidator is a validator for the "question_pages" field. It is called by the builders before save.
	QuestionPagesValidator func(int) error
	// DefaultSkippedPages holds the default value on creation for the "skipped_pages" field.
	DefaultSkippedPages int
	// SkippedPagesValidator is a validator for the "skipped_pages" field. It is called by the builders before save.
	SkippedPagesValidator func(int) error
	// DefaultFailedPages holds the default value on creation for the "failed_pages" field.
	DefaultFailedPages int
	// FailedPagesValidator is a validator for the "failed_pages" field. It is called by the builders before save.
	FailedPagesValidator func(int) error
	// DefaultExtractedQuestions holds the default value on creation for the "extracted_questions" field.
	DefaultExtractedQuestions int
	// ExtractedQuestionsValidator is a validator for the "extracted_questions" field. It is called by the builders before save.
	ExtractedQuestionsValidator func(int) error
	// DefaultApprovedQuestions holds the default value on creation for the "approved_questions" field.
	DefaultApprovedQuestions int
	// ApprovedQuestionsValidator is a validator for the "approved_questions" field. It is called by the builders before save.
	ApprovedQuestionsValidator func(int) error
	// DefaultImportedQuestions holds the default value on creation for the "imported_questions" field.
	DefaultImportedQuestions int
	// ImportedQuestionsValidator is a validator for the "imported_questions" field. It is called by the builders before save.
	ImportedQuestionsValidator func(int) error
	// DefaultProvider holds the default value on creation for the "provider" field.
	DefaultProvider string
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// DefaultEstimatedCostCents holds the default value on creation for the "estimated_cost_cents" field.
	DefaultEstimatedCostCents int
	// EstimatedCostCentsValidator is a validator for the "estimated_cost_cents" field. It is called by the builders before save.
	EstimatedCostCentsValidator func(int) error
	// DefaultActualCostCents holds the default value on creation for the "actual_cost_cents" field.
	DefaultActualCostCents int
	// ActualCostCentsValidator is a validator for the "actual_cost_cents" field. It is called by the builders before save.
	ActualCostCentsValidator func(int) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTargetModuleID orders the results by the target_module_id field.
func ByTargetModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetModuleID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPdfFilename orders the results by the pdf_filename field.
func ByPdfFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfFilename, opts...).ToFunc()
}

// ByPdfPath orders the results by the pdf_path field.
func ByPdfPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfPath, opts...).ToFunc()
}

// ByPdfHash orders the results by the pdf_hash field.
func ByPdfHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfHash, opts...).ToFunc()
}

// ByTotalPages orders the results by the total_pages field.
func ByTotalPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPages, opts...).ToFunc()
}

// ByProcessedPages orders the results by the processed_pages field.
func ByProcessedPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedPages, opts...).ToFunc()
}

// ByQuestionPages orders the results by the question_pages field.
func ByQuestionPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionPages, opts...).ToFunc()
}

// BySkippedPages orders the results by the skipped_pages field.
func BySkippedPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedPages, opts...).ToFunc()
}

// ByFailedPages orders the results by the failed_pages field.
func ByFailedPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedPages, opts...).ToFunc()
}

// ByExtractedQuestions orders the results by the extracted_questions field.
func ByExtractedQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedQuestions, opts...).ToFunc()
}

// ByApprovedQuestions orders the results by the approved_questions field.
func ByApprovedQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedQuestions, opts...).ToFunc()
}

// ByImportedQuestions orders the results by the imported_questions field.
func ByImportedQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedQuestions, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByEstimatedCostCents orders the results by the estimated_cost_cents field.
func ByEstimatedCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostCents, opts...).ToFunc()
}

// ByActualCostCents orders the results by the actual_cost_cents field.
func ByActualCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualCostCents, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLastErrorPage orders the results by the last_error_page field.
func ByLastErrorPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorPage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPagesCount orders the results by pages count.
func ByPagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPagesStep(), opts...)
	}
}

// ByPages orders the results by pages terms.
func ByPages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPassagesCount orders the results by passages count.
func ByPassagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPassagesStep(), opts...)
	}
}

// ByPassages orders the results by passages terms.
func ByPassages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newPassagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PassagesTable, PassagesColumn),
	)
}
