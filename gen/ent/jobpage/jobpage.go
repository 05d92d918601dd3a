// Code generated by ent, DO NOT EDIT.

package jobpage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobpage type in the database.
	Label = "job_page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldMarkdown holds the string denoting the markdown field in the database.
	FieldMarkdown = "markdown"
	// FieldIsQuestionPage holds the string denoting the is_question_page field in the database.
	FieldIsQuestionPage = "is_question_page"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldImagePng holds the string denoting the image_png field in the database.
	FieldImagePng = "image_png"
	// FieldOcrCostCents holds the string denoting the ocr_cost_cents field in the database.
	FieldOcrCostCents = "ocr_cost_cents"
	// FieldStructuringCostCents holds the string denoting the structuring_cost_cents field in the database.
	FieldStructuringCostCents = "structuring_cost_cents"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastErrorAt holds the string denoting the last_error_at field in the database.
	FieldLastErrorAt = "last_error_at"
	// FieldProviderUsed holds the string denoting the provider_used field in the database.
	FieldProviderUsed = "provider_used"
	// FieldDetectedFigures holds the string denoting the detected_figures field in the database.
	FieldDetectedFigures = "detected_figures"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgePassages holds the string denoting the passages edge name in mutations.
	EdgePassages = "passages"
	// Table holds the table name of the jobpage in the database.
	Table = "job_pages"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_pages"
	// JobInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobInverseTable = "extraction_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "extracted_questions"
	// QuestionsInverseTable is the table name for the ExtractedQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "extractedquestion" package.
	QuestionsInverseTable = "extracted_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "page_id"
	// PassagesTable is the table that holds the passages relation/edge.
	PassagesTable = "extracted_passages"
	// PassagesInverseTable is the table name for the ExtractedPassage entity.
	// It exists in this package in order to avoid circular dependency with the "extractedpassage" package.
	PassagesInverseTable = "extracted_passages"
	// PassagesColumn is the table column denoting the passages relation/edge.
	PassagesColumn = "page_id"
)

// Columns holds all SQL columns for jobpage fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldPageNumber,
	FieldMarkdown,
	FieldIsQuestionPage,
	FieldState,
	FieldImagePng,
	FieldOcrCostCents,
	FieldStructuringCostCents,
	FieldErrorMessage,
	FieldRetryCount,
	FieldLastErrorAt,
	FieldProviderUsed,
	FieldDetectedFigures,
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
	// PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	PageNumberValidator func(int) error
	// DefaultIsQuestionPage holds the default value on creation for the "is_question_page" field.
	DefaultIsQuestionPage bool
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultOcrCostCents holds the default value on creation for the "ocr_cost_cents" field.
	DefaultOcrCostCents int
	// OcrCostCentsValidator is a validator for the "ocr_cost_cents" field. It is called by the builders before save.
	OcrCostCentsValidator func(int) error
	// DefaultStructuringCostCents holds the default value on creation for the "structuring_cost_cents" field.
	DefaultStructuringCostCents int
	// StructuringCostCentsValidator is a validator for the "structuring_cost_cents" field. It is called by the builders before save.
	StructuringCostCentsValidator func(int) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobPage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByMarkdown orders the results by the markdown field.
func ByMarkdown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdown, opts...).ToFunc()
}

// ByIsQuestionPage orders the results by the is_question_page field.
func ByIsQuestionPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsQuestionPage, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByOcrCostCents orders the results by the ocr_cost_cents field.
func ByOcrCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrCostCents, opts...).ToFunc()
}

// ByStructuringCostCents orders the results by the structuring_cost_cents field.
func ByStructuringCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructuringCostCents, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastErrorAt orders the results by the last_error_at field.
func ByLastErrorAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorAt, opts...).ToFunc()
}

// ByProviderUsed orders the results by the provider_used field.
func ByProviderUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderUsed, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
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
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
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
