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
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
)

// ExtractedQuestion is the model entity for the ExtractedQuestion schema.
type ExtractedQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID uuid.UUID `json:"page_id,omitempty"`
	// PassageID holds the value of the "passage_id" field.
	PassageID *uuid.UUID `json:"passage_id,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus string `json:"review_status,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence float32 `json:"extraction_confidence,omitempty"`
	// AnswerConfidence holds the value of the "answer_confidence" field.
	AnswerConfidence float32 `json:"answer_confidence,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType string `json:"question_type,omitempty"`
	// PassageText holds the value of the "passage_text" field.
	PassageText *string `json:"passage_text,omitempty"`
	// Options holds the value of the "options" field.
	Options json.RawMessage `json:"options,omitempty"`
	// TableData holds the value of the "table_data" field.
	TableData json.RawMessage `json:"table_data,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer []string `json:"correct_answer,omitempty"`
	// NeedsAnswer holds the value of the "needs_answer" field.
	NeedsAnswer bool `json:"needs_answer,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation *string `json:"explanation,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty *string `json:"difficulty,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain *string `json:"domain,omitempty"`
	// SkillTags holds the value of the "skill_tags" field.
	SkillTags []string `json:"skill_tags,omitempty"`
	// NeedsImage holds the value of the "needs_image" field.
	NeedsImage bool `json:"needs_image,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL *string `json:"image_url,omitempty"`
	// ImageStatus holds the value of the "image_status" field.
	ImageStatus *string `json:"image_status,omitempty"`
	// ValidationErrors holds the value of the "validation_errors" field.
	ValidationErrors []string `json:"validation_errors,omitempty"`
	// ImportedQuestionID holds the value of the "imported_question_id" field.
	ImportedQuestionID *uuid.UUID `json:"imported_question_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedQuestionQuery when eager-loading is set.
	Edges        ExtractedQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedQuestionEdges holds the relations/edges for other nodes in the graph.
type ExtractedQuestionEdges struct {
	// Job holds the value of the job edge.
	Job *ExtractionJob `json:"job,omitempty"`
	// Page holds the value of the page edge.
	Page *JobPage `json:"page,omitempty"`
	// Passage holds the value of the passage edge.
	Passage *ExtractedPassage `json:"passage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedQuestionEdges) JobOrErr() (*ExtractionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedQuestionEdges) PageOrErr() (*JobPage, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: jobpage.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// PassageOrErr returns the Passage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedQuestionEdges) PassageOrErr() (*ExtractedPassage, error) {
	if e.Passage != nil {
		return e.Passage, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: extractedpassage.Label}
	}
	return nil, &NotLoadedError{edge: "passage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedquestion.FieldPassageID, extractedquestion.FieldReviewedBy, extractedquestion.FieldImportedQuestionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractedquestion.FieldOptions, extractedquestion.FieldTableData, extractedquestion.FieldCorrectAnswer, extractedquestion.FieldSkillTags, extractedquestion.FieldValidationErrors:
			values[i] = new([]byte)
		case extractedquestion.FieldNeedsAnswer, extractedquestion.FieldNeedsImage:
			values[i] = new(sql.NullBool)
		case extractedquestion.FieldExtractionConfidence, extractedquestion.FieldAnswerConfidence:
			values[i] = new(sql.NullFloat64)
		case extractedquestion.FieldReviewStatus, extractedquestion.FieldQuestionText, extractedquestion.FieldQuestionType, extractedquestion.FieldPassageText, extractedquestion.FieldExplanation, extractedquestion.FieldDifficulty, extractedquestion.FieldDomain, extractedquestion.FieldImageURL, extractedquestion.FieldImageStatus:
			values[i] = new(sql.NullString)
		case extractedquestion.FieldReviewedAt, extractedquestion.FieldCreatedAt, extractedquestion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractedquestion.FieldID, extractedquestion.FieldJobID, extractedquestion.FieldPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedQuestion fields.
func (_m *ExtractedQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedquestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedquestion.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case extractedquestion.FieldPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value != nil {
				_m.PageID = *value
			}
		case extractedquestion.FieldPassageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field passage_id", values[i])
			} else if value.Valid {
				_m.PassageID = new(uuid.UUID)
				*_m.PassageID = *value.S.(*uuid.UUID)
			}
		case extractedquestion.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = value.String
			}
		case extractedquestion.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(uuid.UUID)
				*_m.ReviewedBy = *value.S.(*uuid.UUID)
			}
		case extractedquestion.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case extractedquestion.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = float32(value.Float64)
			}
		case extractedquestion.FieldAnswerConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_confidence", values[i])
			} else if value.Valid {
				_m.AnswerConfidence = float32(value.Float64)
			}
		case extractedquestion.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case extractedquestion.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case extractedquestion.FieldPassageText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field passage_text", values[i])
			} else if value.Valid {
				_m.PassageText = new(string)
				*_m.PassageText = value.String
			}
		case extractedquestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case extractedquestion.FieldTableData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field table_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TableData); err != nil {
					return fmt.Errorf("unmarshal field table_data: %w", err)
				}
			}
		case extractedquestion.FieldCorrectAnswer:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrectAnswer); err != nil {
					return fmt.Errorf("unmarshal field correct_answer: %w", err)
				}
			}
		case extractedquestion.FieldNeedsAnswer:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_answer", values[i])
			} else if value.Valid {
				_m.NeedsAnswer = value.Bool
			}
		case extractedquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = new(string)
				*_m.Explanation = value.String
			}
		case extractedquestion.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = new(string)
				*_m.Difficulty = value.String
			}
		case extractedquestion.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = new(string)
				*_m.Domain = value.String
			}
		case extractedquestion.FieldSkillTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillTags); err != nil {
					return fmt.Errorf("unmarshal field skill_tags: %w", err)
				}
			}
		case extractedquestion.FieldNeedsImage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_image", values[i])
			} else if value.Valid {
				_m.NeedsImage = value.Bool
			}
		case extractedquestion.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = new(string)
				*_m.ImageURL = value.String
			}
		case extractedquestion.FieldImageStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_status", values[i])
			} else if value.Valid {
				_m.ImageStatus = new(string)
				*_m.ImageStatus = value.String
			}
		case extractedquestion.FieldValidationErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationErrors); err != nil {
					return fmt.Errorf("unmarshal field validation_errors: %w", err)
				}
			}
		case extractedquestion.FieldImportedQuestionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field imported_question_id", values[i])
			} else if value.Valid {
				_m.ImportedQuestionID = new(uuid.UUID)
				*_m.ImportedQuestionID = *value.S.(*uuid.UUID)
			}
		case extractedquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractedquestion.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ExtractedQuestion entity.
func (_m *ExtractedQuestion) QueryJob() *ExtractionJobQuery {
	return NewExtractedQuestionClient(_m.config).QueryJob(_m)
}

// QueryPage queries the "page" edge of the ExtractedQuestion entity.
func (_m *ExtractedQuestion) QueryPage() *JobPageQuery {
	return NewExtractedQuestionClient(_m.config).QueryPage(_m)
}

// QueryPassage queries the "passage" edge of the ExtractedQuestion entity.
func (_m *ExtractedQuestion) QueryPassage() *ExtractedPassageQuery {
	return NewExtractedQuestionClient(_m.config).QueryPassage(_m)
}

// Update returns a builder for updating this ExtractedQuestion.
// Note that you need to call ExtractedQuestion.Unwrap() before calling this method if this ExtractedQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedQuestion) Update() *ExtractedQuestionUpdateOne {
	return NewExtractedQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedQuestion) Unwrap() *ExtractedQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageID))
	builder.WriteString(", ")
	if v := _m.PassageID; v != nil {
		builder.WriteString("passage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(_m.ReviewStatus)
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionConfidence))
	builder.WriteString(", ")
	builder.WriteString("answer_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerConfidence))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	if v := _m.PassageText; v != nil {
		builder.WriteString("passage_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("table_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.TableData))
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswer))
	builder.WriteString(", ")
	builder.WriteString("needs_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsAnswer))
	builder.WriteString(", ")
	if v := _m.Explanation; v != nil {
		builder.WriteString("explanation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Difficulty; v != nil {
		builder.WriteString("difficulty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Domain; v != nil {
		builder.WriteString("domain=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("skill_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillTags))
	builder.WriteString(", ")
	builder.WriteString("needs_image=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsImage))
	builder.WriteString(", ")
	if v := _m.ImageURL; v != nil {
		builder.WriteString("image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageStatus; v != nil {
		builder.WriteString("image_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("validation_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationErrors))
	builder.WriteString(", ")
	if v := _m.ImportedQuestionID; v != nil {
		builder.WriteString("imported_question_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedQuestions is a parsable slice of ExtractedQuestion.
type ExtractedQuestions []*ExtractedQuestion
