// Code generated by ent, DO NOT EDIT.

package extractedquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedquestion type in the database.
	Label = "extracted_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldPassageID holds the string denoting the passage_id field in the database.
	FieldPassageID = "passage_id"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldReviewedBy holds the string denoting the reviewed_by field in the database.
	FieldReviewedBy = "reviewed_by"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldAnswerConfidence holds the string denoting the answer_confidence field in the database.
	FieldAnswerConfidence = "answer_confidence"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldPassageText holds the string denoting the passage_text field in the database.
	FieldPassageText = "passage_text"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldTableData holds the string denoting the table_data field in the database.
	FieldTableData = "table_data"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldNeedsAnswer holds the string denoting the needs_answer field in the database.
	FieldNeedsAnswer = "needs_answer"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldSkillTags holds the string denoting the skill_tags field in the database.
	FieldSkillTags = "skill_tags"
	// FieldNeedsImage holds the string denoting the needs_image field in the database.
	FieldNeedsImage = "needs_image"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldImageStatus holds the string denoting the image_status field in the database.
	FieldImageStatus = "image_status"
	// FieldValidationErrors holds the string denoting the validation_errors field in the database.
	FieldValidationErrors = "validation_errors"
	// FieldImportedQuestionID holds the string denoting the imported_question_id field in the database.
	FieldImportedQuestionID = "imported_question_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// EdgePassage holds the string denoting the passage edge name in mutations.
	EdgePassage = "passage"
	// Table holds the table name of the extractedquestion in the database.
	Table = "extracted_questions"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "extracted_questions"
	// JobInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobInverseTable = "extraction_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "extracted_questions"
	// PageInverseTable is the table name for the JobPage entity.
	// It exists in this package in order to avoid circular dependency with the "jobpage" package.
	PageInverseTable = "job_pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
	// PassageTable is the table that holds the passage relation/edge.
	PassageTable = "extracted_questions"
	// PassageInverseTable is the table name for the ExtractedPassage entity.
	// It exists in this package in order to avoid circular dependency with the "extractedpassage" package.
	PassageInverseTable = "extracted_passages"
	// PassageColumn is the table column denoting the passage relation/edge.
	PassageColumn = "passage_id"
)

// Columns holds all SQL columns for extractedquestion fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldPageID,
	FieldPassageID,
	FieldReviewStatus,
	FieldReviewedBy,
	FieldReviewedAt,
	FieldExtractionConfidence,
	FieldAnswerConfidence,
	FieldQuestionText,
	FieldQuestionType,
	FieldPassageText,
	FieldOptions,
	FieldTableData,
	FieldCorrectAnswer,
	FieldNeedsAnswer,
	FieldExplanation,
	FieldDifficulty,
	FieldDomain,
	FieldSkillTags,
	FieldNeedsImage,
	FieldImageURL,
	FieldImageStatus,
	FieldValidationErrors,
	FieldImportedQuestionID,
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
	// DefaultReviewStatus holds the default value on creation for the "review_status" field.
	DefaultReviewStatus string
	// ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	ReviewStatusValidator func(string) error
	// DefaultExtractionConfidence holds the default value on creation for the "extraction_confidence" field.
	DefaultExtractionConfidence float32
	// DefaultAnswerConfidence holds the default value on creation for the "answer_confidence" field.
	DefaultAnswerConfidence float32
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// DefaultQuestionType holds the default value on creation for the "question_type" field.
	DefaultQuestionType string
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// DefaultNeedsAnswer holds the default value on creation for the "needs_answer" field.
	DefaultNeedsAnswer bool
	// DefaultNeedsImage holds the default value on creation for the "needs_image" field.
	DefaultNeedsImage bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByPassageID orders the results by the passage_id field.
func ByPassageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassageID, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByReviewedBy orders the results by the reviewed_by field.
func ByReviewedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedBy, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByAnswerConfidence orders the results by the answer_confidence field.
func ByAnswerConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerConfidence, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByPassageText orders the results by the passage_text field.
func ByPassageText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassageText, opts...).ToFunc()
}

// ByNeedsAnswer orders the results by the needs_answer field.
func ByNeedsAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsAnswer, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByNeedsImage orders the results by the needs_image field.
func ByNeedsImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsImage, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByImageStatus orders the results by the image_status field.
func ByImageStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageStatus, opts...).ToFunc()
}

// ByImportedQuestionID orders the results by the imported_question_id field.
func ByImportedQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedQuestionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByPageField orders the results by page field.
func ByPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPageStep(), sql.OrderByField(field, opts...))
	}
}

// ByPassageField orders the results by passage field.
func ByPassageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassageStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
	)
}
func newPassageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PassageTable, PassageColumn),
	)
}
