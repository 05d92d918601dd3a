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
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
)

// JobPage is the model entity for the JobPage schema.
type JobPage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// Markdown holds the value of the "markdown" field.
	Markdown *string `json:"markdown,omitempty"`
	// IsQuestionPage holds the value of the "is_question_page" field.
	IsQuestionPage bool `json:"is_question_page,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// ImagePng holds the value of the "image_png" field.
	ImagePng []byte `json:"image_png,omitempty"`
	// OcrCostCents holds the value of the "ocr_cost_cents" field.
	OcrCostCents int `json:"ocr_cost_cents,omitempty"`
	// StructuringCostCents holds the value of the "structuring_cost_cents" field.
	StructuringCostCents int `json:"structuring_cost_cents,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// LastErrorAt holds the value of the "last_error_at" field.
	LastErrorAt *time.Time `json:"last_error_at,omitempty"`
	// ProviderUsed holds the value of the "provider_used" field.
	ProviderUsed *string `json:"provider_used,omitempty"`
	// DetectedFigures holds the value of the "detected_figures" field.
	DetectedFigures json.RawMessage `json:"detected_figures,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobPageQuery when eager-loading is set.
	Edges        JobPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobPageEdges holds the relations/edges for other nodes in the graph.
type JobPageEdges struct {
	// Job holds the value of the job edge.
	Job *ExtractionJob `json:"job,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*ExtractedQuestion `json:"questions,omitempty"`
	// Passages holds the value of the passages edge.
	Passages []*ExtractedPassage `json:"passages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobPageEdges) JobOrErr() (*ExtractionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e JobPageEdges) QuestionsOrErr() ([]*ExtractedQuestion, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// PassagesOrErr returns the Passages value or an error if the edge
// was not loaded in eager-loading.
func (e JobPageEdges) PassagesOrErr() ([]*ExtractedPassage, error) {
	if e.loadedTypes[2] {
		return e.Passages, nil
	}
	return nil, &NotLoadedError{edge: "passages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobpage.FieldImagePng, jobpage.FieldDetectedFigures:
			values[i] = new([]byte)
		case jobpage.FieldIsQuestionPage:
			values[i] = new(sql.NullBool)
		case jobpage.FieldPageNumber, jobpage.FieldOcrCostCents, jobpage.FieldStructuringCostCents, jobpage.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case jobpage.FieldMarkdown, jobpage.FieldState, jobpage.FieldErrorMessage, jobpage.FieldProviderUsed:
			values[i] = new(sql.NullString)
		case jobpage.FieldLastErrorAt:
			values[i] = new(sql.NullTime)
		case jobpage.FieldID, jobpage.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobPage fields.
func (_m *JobPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobpage.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobpage.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case jobpage.FieldMarkdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown", values[i])
			} else if value.Valid {
				_m.Markdown = new(string)
				*_m.Markdown = value.String
			}
		case jobpage.FieldIsQuestionPage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_question_page", values[i])
			} else if value.Valid {
				_m.IsQuestionPage = value.Bool
			}
		case jobpage.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case jobpage.FieldImagePng:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_png", values[i])
			} else if value != nil {
				_m.ImagePng = *value
			}
		case jobpage.FieldOcrCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_cost_cents", values[i])
			} else if value.Valid {
				_m.OcrCostCents = int(value.Int64)
			}
		case jobpage.FieldStructuringCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field structuring_cost_cents", values[i])
			} else if value.Valid {
				_m.StructuringCostCents = int(value.Int64)
			}
		case jobpage.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case jobpage.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case jobpage.FieldLastErrorAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_error_at", values[i])
			} else if value.Valid {
				_m.LastErrorAt = new(time.Time)
				*_m.LastErrorAt = value.Time
			}
		case jobpage.FieldProviderUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_used", values[i])
			} else if value.Valid {
				_m.ProviderUsed = new(string)
				*_m.ProviderUsed = value.String
			}
		case jobpage.FieldDetectedFigures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_figures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedFigures); err != nil {
					return fmt.Errorf("unmarshal field detected_figures: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobPage.
// This includes values selected through modifiers, order, etc.
func (_m *JobPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobPage entity.
func (_m *JobPage) QueryJob() *ExtractionJobQuery {
	return NewJobPageClient(_m.config).QueryJob(_m)
}

// QueryQuestions queries the "questions" edge of the JobPage entity.
func (_m *JobPage) QueryQuestions() *ExtractedQuestionQuery {
	return NewJobPageClient(_m.config).QueryQuestions(_m)
}

// QueryPassages queries the "passages" edge of the JobPage entity.
func (_m *JobPage) QueryPassages() *ExtractedPassageQuery {
	return NewJobPageClient(_m.config).QueryPassages(_m)
}

// Update returns a builder for updating this JobPage.
// Note that you need to call JobPage.Unwrap() before calling this method if this JobPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobPage) Update() *JobPageUpdateOne {
	return NewJobPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobPage) Unwrap() *JobPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobPage) String() string {
	var builder strings.Builder
	builder.WriteString("JobPage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	if v := _m.Markdown; v != nil {
		builder.WriteString("markdown=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_question_page=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsQuestionPage))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("image_png=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImagePng))
	builder.WriteString(", ")
	builder.WriteString("ocr_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrCostCents))
	builder.WriteString(", ")
	builder.WriteString("structuring_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuringCostCents))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastErrorAt; v != nil {
		builder.WriteString("last_error_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProviderUsed; v != nil {
		builder.WriteString("provider_used=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("detected_figures=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedFigures))
	builder.WriteByte(')')
	return builder.String()
}

// JobPages is a parsable slice of JobPage.
type JobPages []*JobPage
