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
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
)

// ExtractedPassage is the model entity for the ExtractedPassage schema.
type ExtractedPassage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID uuid.UUID `json:"page_id,omitempty"`
	// TempRef holds the value of the "temp_ref" field.
	TempRef string `json:"temp_ref,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// Source holds the value of the "source" field.
	Source *string `json:"source,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Figures holds the value of the "figures" field.
	Figures []string `json:"figures,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence float32 `json:"extraction_confidence,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus string `json:"review_status,omitempty"`
	// ImportedPassageID holds the value of the "imported_passage_id" field.
	ImportedPassageID *uuid.UUID `json:"imported_passage_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedPassageQuery when eager-loading is set.
	Edges        ExtractedPassageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedPassageEdges holds the relations/edges for other nodes in the graph.
type ExtractedPassageEdges struct {
	// Job holds the value of the job edge.
	Job *ExtractionJob `json:"job,omitempty"`
	// Page holds the value of the page edge.
	Page *JobPage `json:"page,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*ExtractedQuestion `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedPassageEdges) JobOrErr() (*ExtractionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedPassageEdges) PageOrErr() (*JobPage, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: jobpage.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractedPassageEdges) QuestionsOrErr() ([]*ExtractedQuestion, error) {
	if e.loadedTypes[2] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedPassage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedpassage.FieldImportedPassageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractedpassage.FieldFigures:
			values[i] = new([]byte)
		case extractedpassage.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case extractedpassage.FieldTempRef, extractedpassage.FieldTitle, extractedpassage.FieldSource, extractedpassage.FieldAuthor, extractedpassage.FieldContent, extractedpassage.FieldReviewStatus:
			values[i] = new(sql.NullString)
		case extractedpassage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractedpassage.FieldID, extractedpassage.FieldJobID, extractedpassage.FieldPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedPassage fields.
func (_m *ExtractedPassage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedpassage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedpassage.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case extractedpassage.FieldPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value != nil {
				_m.PageID = *value
			}
		case extractedpassage.FieldTempRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field temp_ref", values[i])
			} else if value.Valid {
				_m.TempRef = value.String
			}
		case extractedpassage.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case extractedpassage.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = new(string)
				*_m.Source = value.String
			}
		case extractedpassage.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case extractedpassage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case extractedpassage.FieldFigures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field figures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Figures); err != nil {
					return fmt.Errorf("unmarshal field figures: %w", err)
				}
			}
		case extractedpassage.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = float32(value.Float64)
			}
		case extractedpassage.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = value.String
			}
		case extractedpassage.FieldImportedPassageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field imported_passage_id", values[i])
			} else if value.Valid {
				_m.ImportedPassageID = new(uuid.UUID)
				*_m.ImportedPassageID = *value.S.(*uuid.UUID)
			}
		case extractedpassage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedPassage.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedPassage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ExtractedPassage entity.
func (_m *ExtractedPassage) QueryJob() *ExtractionJobQuery {
	return NewExtractedPassageClient(_m.config).QueryJob(_m)
}

// QueryPage queries the "page" edge of the ExtractedPassage entity.
func (_m *ExtractedPassage) QueryPage() *JobPageQuery {
	return NewExtractedPassageClient(_m.config).QueryPage(_m)
}

// QueryQuestions queries the "questions" edge of the ExtractedPassage entity.
func (_m *ExtractedPassage) QueryQuestions() *ExtractedQuestionQuery {
	return NewExtractedPassageClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this ExtractedPassage.
// Note that you need to call ExtractedPassage.Unwrap() before calling this method if this ExtractedPassage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedPassage) Update() *ExtractedPassageUpdateOne {
	return NewExtractedPassageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedPassage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedPassage) Unwrap() *ExtractedPassage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedPassage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedPassage) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedPassage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageID))
	builder.WriteString(", ")
	builder.WriteString("temp_ref=")
	builder.WriteString(_m.TempRef)
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Source; v != nil {
		builder.WriteString("source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("figures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Figures))
	builder.WriteString(", ")
	builder.WriteString("extraction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionConfidence))
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(_m.ReviewStatus)
	builder.WriteString(", ")
	if v := _m.ImportedPassageID; v != nil {
		builder.WriteString("imported_passage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedPassages is a parsable slice of ExtractedPassage.
type ExtractedPassages []*ExtractedPassage
