// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
)

// ExtractionJob is the model entity for the ExtractionJob schema.
type ExtractionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// TargetModuleID holds the value of the "target_module_id" field.
	TargetModuleID *uuid.UUID `json:"target_module_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PdfFilename holds the value of the "pdf_filename" field.
	PdfFilename string `json:"pdf_filename,omitempty"`
	// PdfPath holds the value of the "pdf_path" field.
	PdfPath string `json:"pdf_path,omitempty"`
	// PdfHash holds the value of the "pdf_hash" field.
	PdfHash string `json:"pdf_hash,omitempty"`
	// TotalPages holds the value of the "total_pages" field.
	TotalPages int `json:"total_pages,omitempty"`
	// ProcessedPages holds the value of the "processed_pages" field.
	ProcessedPages int `json:"processed_pages,omitempty"`
	// QuestionPages holds the value of the "question_pages" field.
	QuestionPages int `json:"question_pages,omitempty"`
	// SkippedPages holds the value of the "skipped_pages" field.
	SkippedPages int `json:"skipped_pages,omitempty"`
	// FailedPages holds the value of the "failed_pages" field.
	FailedPages int `json:"failed_pages,omitempty"`
	// ExtractedQuestions holds the value of the "extracted_questions" field.
	ExtractedQuestions int `json:"extracted_questions,omitempty"`
	// ApprovedQuestions holds the value of the "approved_questions" field.
	ApprovedQuestions int `json:"approved_questions,omitempty"`
	// ImportedQuestions holds the value of the "imported_questions" field.
	ImportedQuestions int `json:"imported_questions,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// EstimatedCostCents holds the value of the "estimated_cost_cents" field.
	EstimatedCostCents int `json:"estimated_cost_cents,omitempty"`
	// ActualCostCents holds the value of the "actual_cost_cents" field.
	ActualCostCents int `json:"actual_cost_cents,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// LastErrorPage holds the value of the "last_error_page" field.
	LastErrorPage *int `json:"last_error_page,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID *string `json:"task_id,omitempty"`
	// TestConfigs holds the value of the "test_configs" field.
	TestConfigs json.RawMessage `json:"test_configs,omitempty"`
	// CreatedTestIds holds the value of the "created_test_ids" field.
	CreatedTestIds []uuid.UUID `json:"created_test_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionJobQuery when eager-loading is set.
	Edges        ExtractionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionJobEdges holds the relations/edges for other nodes in the graph.
type ExtractionJobEdges struct {
	// Pages holds the value of the pages edge.
	Pages []*JobPage `json:"pages,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*ExtractedQuestion `json:"questions,omitempty"`
	// Passages holds the value of the passages edge.
	Passages []*ExtractedPassage `json:"passages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PagesOrErr returns the Pages value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionJobEdges) PagesOrErr() ([]*JobPage, error) {
	if e.loadedTypes[0] {
		return e.Pages, nil
	}
	return nil, &NotLoadedError{edge: "pages"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionJobEdges) QuestionsOrErr() ([]*ExtractedQuestion, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// PassagesOrErr returns the Passages value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionJobEdges) PassagesOrErr() ([]*ExtractedPassage, error) {
	if e.loadedTypes[2] {
		return e.Passages, nil
	}
	return nil, &NotLoadedError{edge: "passages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldTargetModuleID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractionjob.FieldTestConfigs, extractionjob.FieldCreatedTestIds:
			values[i] = new([]byte)
		case extractionjob.FieldTotalPages, extractionjob.FieldProcessedPages, extractionjob.FieldQuestionPages, extractionjob.FieldSkippedPages, extractionjob.FieldFailedPages, extractionjob.FieldExtractedQuestions, extractionjob.FieldApprovedQuestions, extractionjob.FieldImportedQuestions, extractionjob.FieldEstimatedCostCents, extractionjob.FieldActualCostCents, extractionjob.FieldLastErrorPage, extractionjob.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case extractionjob.FieldStatus, extractionjob.FieldPdfFilename, extractionjob.FieldPdfPath, extractionjob.FieldPdfHash, extractionjob.FieldProvider, extractionjob.FieldErrorMessage, extractionjob.FieldTaskID:
			values[i] = new(sql.NullString)
		case extractionjob.FieldStartedAt, extractionjob.FieldCompletedAt, extractionjob.FieldCreatedAt, extractionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionjob.FieldID, extractionjob.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionJob fields.
func (_m *ExtractionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionjob.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case extractionjob.FieldTargetModuleID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field target_module_id", values[i])
			} else if value.Valid {
				_m.TargetModuleID = new(uuid.UUID)
				*_m.TargetModuleID = *value.S.(*uuid.UUID)
			}
		case extractionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionjob.FieldPdfFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_filename", values[i])
			} else if value.Valid {
				_m.PdfFilename = value.String
			}
		case extractionjob.FieldPdfPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_path", values[i])
			} else if value.Valid {
				_m.PdfPath = value.String
			}
		case extractionjob.FieldPdfHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_hash", values[i])
			} else if value.Valid {
				_m.PdfHash = value.String
			}
		case extractionjob.FieldTotalPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_pages", values[i])
			} else if value.Valid {
				_m.TotalPages = int(value.Int64)
			}
		case extractionjob.FieldProcessedPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_pages", values[i])
			} else if value.Valid {
				_m.ProcessedPages = int(value.Int64)
			}
		case extractionjob.FieldQuestionPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_pages", values[i])
			} else if value.Valid {
				_m.QuestionPages = int(value.Int64)
			}
		case extractionjob.FieldSkippedPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_pages", values[i])
			} else if value.Valid {
				_m.SkippedPages = int(value.Int64)
			}
		case extractionjob.FieldFailedPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_pages", values[i])
			} else if value.Valid {
				_m.FailedPages = int(value.Int64)
			}
		case extractionjob.FieldExtractedQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_questions", values[i])
			} else if value.Valid {
				_m.ExtractedQuestions = int(value.Int64)
			}
		case extractionjob.FieldApprovedQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field approved_questions", values[i])
			} else if value.Valid {
				_m.ApprovedQuestions = int(value.Int64)
			}
		case extractionjob.FieldImportedQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field imported_questions", values[i])
			} else if value.Valid {
				_m.ImportedQuestions = int(value.Int64)
			}
		case extractionjob.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case extractionjob.FieldEstimatedCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_cents", values[i])
			} else if value.Valid {
				_m.EstimatedCostCents = int(value.Int64)
			}
		case extractionjob.FieldActualCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_cost_cents", values[i])
			} else if value.Valid {
				_m.ActualCostCents = int(value.Int64)
			}
		case extractionjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case extractionjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case extractionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionjob.FieldLastErrorPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_error_page", values[i])
			} else if value.Valid {
				_m.LastErrorPage = new(int)
				*_m.LastErrorPage = int(value.Int64)
			}
		case extractionjob.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case extractionjob.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case extractionjob.FieldTestConfigs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_configs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestConfigs); err != nil {
					return fmt.Errorf("unmarshal field test_configs: %w", err)
				}
			}
		case extractionjob.FieldCreatedTestIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field created_test_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CreatedTestIds); err != nil {
					return fmt.Errorf("unmarshal field created_test_ids: %w", err)
				}
			}
		case extractionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPages queries the "pages" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryPages() *JobPageQuery {
	return NewExtractionJobClient(_m.config).QueryPages(_m)
}

// QueryQuestions queries the "questions" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryQuestions() *ExtractedQuestionQuery {
	return NewExtractionJobClient(_m.config).QueryQuestions(_m)
}

// QueryPassages queries the "passages" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryPassages() *ExtractedPassageQuery {
	return NewExtractionJobClient(_m.config).QueryPassages(_m)
}

// Update returns a builder for updating this ExtractionJob.
// Note that you need to call ExtractionJob.Unwrap() before calling this method if this ExtractionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionJob) Update() *ExtractionJobUpdateOne {
	return NewExtractionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionJob) Unwrap() *ExtractionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.TargetModuleID; v != nil {
		builder.WriteString("target_module_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("pdf_filename=")
	builder.WriteString(_m.PdfFilename)
	builder.WriteString(", ")
	builder.WriteString("pdf_path=")
	builder.WriteString(_m.PdfPath)
	builder.WriteString(", ")
	builder.WriteString("pdf_hash=")
	builder.WriteString(_m.PdfHash)
	builder.WriteString(", ")
	builder.WriteString("total_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPages))
	builder.WriteString(", ")
	builder.WriteString("processed_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedPages))
	builder.WriteString(", ")
	builder.WriteString("question_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionPages))
	builder.WriteString(", ")
	builder.WriteString("skipped_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkippedPages))
	builder.WriteString(", ")
	builder.WriteString("failed_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedPages))
	builder.WriteString(", ")
	builder.WriteString("extracted_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedQuestions))
	builder.WriteString(", ")
	builder.WriteString("approved_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovedQuestions))
	builder.WriteString(", ")
	builder.WriteString("imported_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImportedQuestions))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostCents))
	builder.WriteString(", ")
	builder.WriteString("actual_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualCostCents))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastErrorPage; v != nil {
		builder.WriteString("last_error_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("test_configs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestConfigs))
	builder.WriteString(", ")
	builder.WriteString("created_test_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedTestIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionJobs is a parsable slice of ExtractionJob.
type ExtractionJobs []*ExtractionJob
