// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
	"github.com/seyi-ajayi/examscan/gen/ent/passage"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/gen/ent/test"
	"github.com/seyi-ajayi/examscan/gen/ent/testmodule"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractedPassage  = "ExtractedPassage"
	TypeExtractedQuestion = "ExtractedQuestion"
	TypeExtractionJob     = "ExtractionJob"
	TypeJobPage           = "JobPage"
	TypePassage           = "Passage"
	TypeQuestion          = "Question"
	TypeTest              = "Test"
	TypeTestModule        = "TestModule"
)

// ExtractedPassageMutation represents an operation that mutates the ExtractedPassage nodes in the graph.
type ExtractedPassageMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	temp_ref                 *string
	title                    *string
	source                   *string
	author                   *string
	content                  *string
	figures                  *[]string
	appendfigures            []string
	extraction_confidence    *float32
	addextraction_confidence *float32
	review_status            *string
	imported_passage_id      *uuid.UUID
	created_at               *time.Time
	clearedFields            map[string]struct{}
	job                      *uuid.UUID
	clearedjob               bool
	page                     *uuid.UUID
	clearedpage              bool
	questions                map[uuid.UUID]struct{}
	removedquestions         map[uuid.UUID]struct{}
	clearedquestions         bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractedPassage, error)
	predicates               []predicate.ExtractedPassage
}

var _ ent.Mutation = (*ExtractedPassageMutation)(nil)

// extractedpassageOption allows management of the mutation configuration using functional options.
type extractedpassageOption func(*ExtractedPassageMutation)

// newExtractedPassageMutation creates new mutation for the ExtractedPassage entity.
func newExtractedPassageMutation(c config, op Op, opts ...extractedpassageOption) *ExtractedPassageMutation {
	m := &ExtractedPassageMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedPassage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedPassageID sets the ID field of the mutation.
func withExtractedPassageID(id uuid.UUID) extractedpassageOption {
	return func(m *ExtractedPassageMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedPassage
		)
		m.oldValue = func(ctx context.Context) (*ExtractedPassage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedPassage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedPassage sets the old ExtractedPassage of the mutation.
func withExtractedPassage(node *ExtractedPassage) extractedpassageOption {
	return func(m *ExtractedPassageMutation) {
		m.oldValue = func(context.Context) (*ExtractedPassage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedPassageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedPassageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedPassage entities.
func (m *ExtractedPassageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedPassageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedPassageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedPassage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ExtractedPassageMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ExtractedPassageMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ExtractedPassageMutation) ResetJobID() {
	m.job = nil
}

// SetPageID sets the "page_id" field.
func (m *ExtractedPassageMutation) SetPageID(u uuid.UUID) {
	m.page = &u
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *ExtractedPassageMutation) PageID() (r uuid.UUID, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *ExtractedPassageMutation) ResetPageID() {
	m.page = nil
}

// SetTempRef sets the "temp_ref" field.
func (m *ExtractedPassageMutation) SetTempRef(s string) {
	m.temp_ref = &s
}

// TempRef returns the value of the "temp_ref" field in the mutation.
func (m *ExtractedPassageMutation) TempRef() (r string, exists bool) {
	v := m.temp_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTempRef returns the old "temp_ref" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldTempRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTempRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTempRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTempRef: %w", err)
	}
	return oldValue.TempRef, nil
}

// ClearTempRef clears the value of the "temp_ref" field.
func (m *ExtractedPassageMutation) ClearTempRef() {
	m.temp_ref = nil
	m.clearedFields[extractedpassage.FieldTempRef] = struct{}{}
}

// TempRefCleared returns if the "temp_ref" field was cleared in this mutation.
func (m *ExtractedPassageMutation) TempRefCleared() bool {
	_, ok := m.clearedFields[extractedpassage.FieldTempRef]
	return ok
}

// ResetTempRef resets all changes to the "temp_ref" field.
func (m *ExtractedPassageMutation) ResetTempRef() {
	m.temp_ref = nil
	delete(m.clearedFields, extractedpassage.FieldTempRef)
}

// SetTitle sets the "title" field.
func (m *ExtractedPassageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExtractedPassageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ExtractedPassageMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[extractedpassage.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ExtractedPassageMutation) TitleCleared() bool {
	_, ok := m.clearedFields[extractedpassage.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ExtractedPassageMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, extractedpassage.FieldTitle)
}

// SetSource sets the "source" field.
func (m *ExtractedPassageMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ExtractedPassageMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *ExtractedPassageMutation) ClearSource() {
	m.source = nil
	m.clearedFields[extractedpassage.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *ExtractedPassageMutation) SourceCleared() bool {
	_, ok := m.clearedFields[extractedpassage.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *ExtractedPassageMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, extractedpassage.FieldSource)
}

// SetAuthor sets the "author" field.
func (m *ExtractedPassageMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ExtractedPassageMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ExtractedPassageMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[extractedpassage.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ExtractedPassageMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[extractedpassage.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ExtractedPassageMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, extractedpassage.FieldAuthor)
}

// SetContent sets the "content" field.
func (m *ExtractedPassageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ExtractedPassageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ExtractedPassageMutation) ResetContent() {
	m.content = nil
}

// SetFigures sets the "figures" field.
func (m *ExtractedPassageMutation) SetFigures(s []string) {
	m.figures = &s
	m.appendfigures = nil
}

// Figures returns the value of the "figures" field in the mutation.
func (m *ExtractedPassageMutation) Figures() (r []string, exists bool) {
	v := m.figures
	if v == nil {
		return
	}
	return *v, true
}

// OldFigures returns the old "figures" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldFigures(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFigures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFigures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFigures: %w", err)
	}
	return oldValue.Figures, nil
}

// AppendFigures adds s to the "figures" field.
func (m *ExtractedPassageMutation) AppendFigures(s []string) {
	m.appendfigures = append(m.appendfigures, s...)
}

// AppendedFigures returns the list of values that were appended to the "figures" field in this mutation.
func (m *ExtractedPassageMutation) AppendedFigures() ([]string, bool) {
	if len(m.appendfigures) == 0 {
		return nil, false
	}
	return m.appendfigures, true
}

// ClearFigures clears the value of the "figures" field.
func (m *ExtractedPassageMutation) ClearFigures() {
	m.figures = nil
	m.appendfigures = nil
	m.clearedFields[extractedpassage.FieldFigures] = struct{}{}
}

// FiguresCleared returns if the "figures" field was cleared in this mutation.
func (m *ExtractedPassageMutation) FiguresCleared() bool {
	_, ok := m.clearedFields[extractedpassage.FieldFigures]
	return ok
}

// ResetFigures resets all changes to the "figures" field.
func (m *ExtractedPassageMutation) ResetFigures() {
	m.figures = nil
	m.appendfigures = nil
	delete(m.clearedFields, extractedpassage.FieldFigures)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractedPassageMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractedPassageMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldExtractionConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractedPassageMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractedPassageMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractedPassageMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetReviewStatus sets the "review_status" field.
func (m *ExtractedPassageMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *ExtractedPassageMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *ExtractedPassageMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetImportedPassageID sets the "imported_passage_id" field.
func (m *ExtractedPassageMutation) SetImportedPassageID(u uuid.UUID) {
	m.imported_passage_id = &u
}

// ImportedPassageID returns the value of the "imported_passage_id" field in the mutation.
func (m *ExtractedPassageMutation) ImportedPassageID() (r uuid.UUID, exists bool) {
	v := m.imported_passage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedPassageID returns the old "imported_passage_id" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldImportedPassageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedPassageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedPassageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedPassageID: %w", err)
	}
	return oldValue.ImportedPassageID, nil
}

// ClearImportedPassageID clears the value of the "imported_passage_id" field.
func (m *ExtractedPassageMutation) ClearImportedPassageID() {
	m.imported_passage_id = nil
	m.clearedFields[extractedpassage.FieldImportedPassageID] = struct{}{}
}

// ImportedPassageIDCleared returns if the "imported_passage_id" field was cleared in this mutation.
func (m *ExtractedPassageMutation) ImportedPassageIDCleared() bool {
	_, ok := m.clearedFields[extractedpassage.FieldImportedPassageID]
	return ok
}

// ResetImportedPassageID resets all changes to the "imported_passage_id" field.
func (m *ExtractedPassageMutation) ResetImportedPassageID() {
	m.imported_passage_id = nil
	delete(m.clearedFields, extractedpassage.FieldImportedPassageID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedPassageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedPassageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedPassage entity.
// If the ExtractedPassage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedPassageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedPassageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *ExtractedPassageMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[extractedpassage.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *ExtractedPassageMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ExtractedPassageMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ExtractedPassageMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearPage clears the "page" edge to the JobPage entity.
func (m *ExtractedPassageMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[extractedpassage.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the JobPage entity was cleared.
func (m *ExtractedPassageMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *ExtractedPassageMutation) PageIDs() (ids []uuid.UUID) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *ExtractedPassageMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by ids.
func (m *ExtractedPassageMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the ExtractedQuestion entity.
func (m *ExtractedPassageMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the ExtractedQuestion entity was cleared.
func (m *ExtractedPassageMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the ExtractedQuestion entity by IDs.
func (m *ExtractedPassageMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the ExtractedQuestion entity.
func (m *ExtractedPassageMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *ExtractedPassageMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *ExtractedPassageMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the ExtractedPassageMutation builder.
func (m *ExtractedPassageMutation) Where(ps ...predicate.ExtractedPassage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedPassageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedPassageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedPassage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedPassageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedPassageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedPassage).
func (m *ExtractedPassageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedPassageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, extractedpassage.FieldJobID)
	}
	if m.page != nil {
		fields = append(fields, extractedpassage.FieldPageID)
	}
	if m.temp_ref != nil {
		fields = append(fields, extractedpassage.FieldTempRef)
	}
	if m.title != nil {
		fields = append(fields, extractedpassage.FieldTitle)
	}
	if m.source != nil {
		fields = append(fields, extractedpassage.FieldSource)
	}
	if m.author != nil {
		fields = append(fields, extractedpassage.FieldAuthor)
	}
	if m.content != nil {
		fields = append(fields, extractedpassage.FieldContent)
	}
	if m.figures != nil {
		fields = append(fields, extractedpassage.FieldFigures)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractedpassage.FieldExtractionConfidence)
	}
	if m.review_status != nil {
		fields = append(fields, extractedpassage.FieldReviewStatus)
	}
	if m.imported_passage_id != nil {
		fields = append(fields, extractedpassage.FieldImportedPassageID)
	}
	if m.created_at != nil {
		fields = append(fields, extractedpassage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedPassageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedpassage.FieldJobID:
		return m.JobID()
	case extractedpassage.FieldPageID:
		return m.PageID()
	case extractedpassage.FieldTempRef:
		return m.TempRef()
	case extractedpassage.FieldTitle:
		return m.Title()
	case extractedpassage.FieldSource:
		return m.Source()
	case extractedpassage.FieldAuthor:
		return m.Author()
	case extractedpassage.FieldContent:
		return m.Content()
	case extractedpassage.FieldFigures:
		return m.Figures()
	case extractedpassage.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractedpassage.FieldReviewStatus:
		return m.ReviewStatus()
	case extractedpassage.FieldImportedPassageID:
		return m.ImportedPassageID()
	case extractedpassage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedPassageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedpassage.FieldJobID:
		return m.OldJobID(ctx)
	case extractedpassage.FieldPageID:
		return m.OldPageID(ctx)
	case extractedpassage.FieldTempRef:
		return m.OldTempRef(ctx)
	case extractedpassage.FieldTitle:
		return m.OldTitle(ctx)
	case extractedpassage.FieldSource:
		return m.OldSource(ctx)
	case extractedpassage.FieldAuthor:
		return m.OldAuthor(ctx)
	case extractedpassage.FieldContent:
		return m.OldContent(ctx)
	case extractedpassage.FieldFigures:
		return m.OldFigures(ctx)
	case extractedpassage.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractedpassage.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case extractedpassage.FieldImportedPassageID:
		return m.OldImportedPassageID(ctx)
	case extractedpassage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedPassage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedPassageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedpassage.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case extractedpassage.FieldPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case extractedpassage.FieldTempRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTempRef(v)
		return nil
	case extractedpassage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case extractedpassage.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case extractedpassage.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case extractedpassage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case extractedpassage.FieldFigures:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFigures(v)
		return nil
	case extractedpassage.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractedpassage.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case extractedpassage.FieldImportedPassageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedPassageID(v)
		return nil
	case extractedpassage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedPassage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedPassageMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractedpassage.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedPassageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedpassage.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedPassageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedpassage.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedPassage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedPassageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedpassage.FieldTempRef) {
		fields = append(fields, extractedpassage.FieldTempRef)
	}
	if m.FieldCleared(extractedpassage.FieldTitle) {
		fields = append(fields, extractedpassage.FieldTitle)
	}
	if m.FieldCleared(extractedpassage.FieldSource) {
		fields = append(fields, extractedpassage.FieldSource)
	}
	if m.FieldCleared(extractedpassage.FieldAuthor) {
		fields = append(fields, extractedpassage.FieldAuthor)
	}
	if m.FieldCleared(extractedpassage.FieldFigures) {
		fields = append(fields, extractedpassage.FieldFigures)
	}
	if m.FieldCleared(extractedpassage.FieldImportedPassageID) {
		fields = append(fields, extractedpassage.FieldImportedPassageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedPassageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedPassageMutation) ClearField(name string) error {
	switch name {
	case extractedpassage.FieldTempRef:
		m.ClearTempRef()
		return nil
	case extractedpassage.FieldTitle:
		m.ClearTitle()
		return nil
	case extractedpassage.FieldSource:
		m.ClearSource()
		return nil
	case extractedpassage.FieldAuthor:
		m.ClearAuthor()
		return nil
	case extractedpassage.FieldFigures:
		m.ClearFigures()
		return nil
	case extractedpassage.FieldImportedPassageID:
		m.ClearImportedPassageID()
		return nil
	}
	return fmt.Errorf("unknown ExtractedPassage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedPassageMutation) ResetField(name string) error {
	switch name {
	case extractedpassage.FieldJobID:
		m.ResetJobID()
		return nil
	case extractedpassage.FieldPageID:
		m.ResetPageID()
		return nil
	case extractedpassage.FieldTempRef:
		m.ResetTempRef()
		return nil
	case extractedpassage.FieldTitle:
		m.ResetTitle()
		return nil
	case extractedpassage.FieldSource:
		m.ResetSource()
		return nil
	case extractedpassage.FieldAuthor:
		m.ResetAuthor()
		return nil
	case extractedpassage.FieldContent:
		m.ResetContent()
		return nil
	case extractedpassage.FieldFigures:
		m.ResetFigures()
		return nil
	case extractedpassage.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractedpassage.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case extractedpassage.FieldImportedPassageID:
		m.ResetImportedPassageID()
		return nil
	case extractedpassage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedPassage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedPassageMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job != nil {
		edges = append(edges, extractedpassage.EdgeJob)
	}
	if m.page != nil {
		edges = append(edges, extractedpassage.EdgePage)
	}
	if m.questions != nil {
		edges = append(edges, extractedpassage.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedPassageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedpassage.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case extractedpassage.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	case extractedpassage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedPassageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedquestions != nil {
		edges = append(edges, extractedpassage.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedPassageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractedpassage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedPassageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob {
		edges = append(edges, extractedpassage.EdgeJob)
	}
	if m.clearedpage {
		edges = append(edges, extractedpassage.EdgePage)
	}
	if m.clearedquestions {
		edges = append(edges, extractedpassage.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedPassageMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedpassage.EdgeJob:
		return m.clearedjob
	case extractedpassage.EdgePage:
		return m.clearedpage
	case extractedpassage.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedPassageMutation) ClearEdge(name string) error {
	switch name {
	case extractedpassage.EdgeJob:
		m.ClearJob()
		return nil
	case extractedpassage.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedPassage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedPassageMutation) ResetEdge(name string) error {
	switch name {
	case extractedpassage.EdgeJob:
		m.ResetJob()
		return nil
	case extractedpassage.EdgePage:
		m.ResetPage()
		return nil
	case extractedpassage.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown ExtractedPassage edge %s", name)
}

// ExtractedQuestionMutation represents an operation that mutates the ExtractedQuestion nodes in the graph.
type ExtractedQuestionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	review_status            *string
	reviewed_by              *uuid.UUID
	reviewed_at              *time.Time
	extraction_confidence    *float32
	addextraction_confidence *float32
	answer_confidence        *float32
	addanswer_confidence     *float32
	question_text            *string
	question_type            *string
	passage_text             *string
	options                  *json.RawMessage
	appendoptions            json.RawMessage
	table_data               *json.RawMessage
	appendtable_data         json.RawMessage
	correct_answer           *[]string
	appendcorrect_answer     []string
	needs_answer             *bool
	explanation              *string
	difficulty               *string
	domain                   *string
	skill_tags               *[]string
	appendskill_tags         []string
	needs_image              *bool
	image_url                *string
	image_status             *string
	validation_errors        *[]string
	appendvalidation_errors  []string
	imported_question_id     *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	job                      *uuid.UUID
	clearedjob               bool
	page                     *uuid.UUID
	clearedpage              bool
	passage                  *uuid.UUID
	clearedpassage           bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractedQuestion, error)
	predicates               []predicate.ExtractedQuestion
}

var _ ent.Mutation = (*ExtractedQuestionMutation)(nil)

// extractedquestionOption allows management of the mutation configuration using functional options.
type extractedquestionOption func(*ExtractedQuestionMutation)

// newExtractedQuestionMutation creates new mutation for the ExtractedQuestion entity.
func newExtractedQuestionMutation(c config, op Op, opts ...extractedquestionOption) *ExtractedQuestionMutation {
	m := &ExtractedQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedQuestionID sets the ID field of the mutation.
func withExtractedQuestionID(id uuid.UUID) extractedquestionOption {
	return func(m *ExtractedQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedQuestion
		)
		m.oldValue = func(ctx context.Context) (*ExtractedQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedQuestion sets the old ExtractedQuestion of the mutation.
func withExtractedQuestion(node *ExtractedQuestion) extractedquestionOption {
	return func(m *ExtractedQuestionMutation) {
		m.oldValue = func(context.Context) (*ExtractedQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedQuestion entities.
func (m *ExtractedQuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedQuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedQuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ExtractedQuestionMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ExtractedQuestionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ExtractedQuestionMutation) ResetJobID() {
	m.job = nil
}

// SetPageID sets the "page_id" field.
func (m *ExtractedQuestionMutation) SetPageID(u uuid.UUID) {
	m.page = &u
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *ExtractedQuestionMutation) PageID() (r uuid.UUID, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *ExtractedQuestionMutation) ResetPageID() {
	m.page = nil
}

// SetPassageID sets the "passage_id" field.
func (m *ExtractedQuestionMutation) SetPassageID(u uuid.UUID) {
	m.passage = &u
}

// PassageID returns the value of the "passage_id" field in the mutation.
func (m *ExtractedQuestionMutation) PassageID() (r uuid.UUID, exists bool) {
	v := m.passage
	if v == nil {
		return
	}
	return *v, true
}

// OldPassageID returns the old "passage_id" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldPassageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassageID: %w", err)
	}
	return oldValue.PassageID, nil
}

// ClearPassageID clears the value of the "passage_id" field.
func (m *ExtractedQuestionMutation) ClearPassageID() {
	m.passage = nil
	m.clearedFields[extractedquestion.FieldPassageID] = struct{}{}
}

// PassageIDCleared returns if the "passage_id" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) PassageIDCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldPassageID]
	return ok
}

// ResetPassageID resets all changes to the "passage_id" field.
func (m *ExtractedQuestionMutation) ResetPassageID() {
	m.passage = nil
	delete(m.clearedFields, extractedquestion.FieldPassageID)
}

// SetReviewStatus sets the "review_status" field.
func (m *ExtractedQuestionMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *ExtractedQuestionMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *ExtractedQuestionMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *ExtractedQuestionMutation) SetReviewedBy(u uuid.UUID) {
	m.reviewed_by = &u
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *ExtractedQuestionMutation) ReviewedBy() (r uuid.UUID, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldReviewedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *ExtractedQuestionMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[extractedquestion.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *ExtractedQuestionMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, extractedquestion.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ExtractedQuestionMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ExtractedQuestionMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *ExtractedQuestionMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[extractedquestion.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ExtractedQuestionMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, extractedquestion.FieldReviewedAt)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractedQuestionMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractedQuestionMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldExtractionConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractedQuestionMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractedQuestionMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractedQuestionMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetAnswerConfidence sets the "answer_confidence" field.
func (m *ExtractedQuestionMutation) SetAnswerConfidence(f float32) {
	m.answer_confidence = &f
	m.addanswer_confidence = nil
}

// AnswerConfidence returns the value of the "answer_confidence" field in the mutation.
func (m *ExtractedQuestionMutation) AnswerConfidence() (r float32, exists bool) {
	v := m.answer_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerConfidence returns the old "answer_confidence" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldAnswerConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerConfidence: %w", err)
	}
	return oldValue.AnswerConfidence, nil
}

// AddAnswerConfidence adds f to the "answer_confidence" field.
func (m *ExtractedQuestionMutation) AddAnswerConfidence(f float32) {
	if m.addanswer_confidence != nil {
		*m.addanswer_confidence += f
	} else {
		m.addanswer_confidence = &f
	}
}

// AddedAnswerConfidence returns the value that was added to the "answer_confidence" field in this mutation.
func (m *ExtractedQuestionMutation) AddedAnswerConfidence() (r float32, exists bool) {
	v := m.addanswer_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswerConfidence resets all changes to the "answer_confidence" field.
func (m *ExtractedQuestionMutation) ResetAnswerConfidence() {
	m.answer_confidence = nil
	m.addanswer_confidence = nil
}

// SetQuestionText sets the "question_text" field.
func (m *ExtractedQuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *ExtractedQuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *ExtractedQuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetQuestionType sets the "question_type" field.
func (m *ExtractedQuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *ExtractedQuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *ExtractedQuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetPassageText sets the "passage_text" field.
func (m *ExtractedQuestionMutation) SetPassageText(s string) {
	m.passage_text = &s
}

// PassageText returns the value of the "passage_text" field in the mutation.
func (m *ExtractedQuestionMutation) PassageText() (r string, exists bool) {
	v := m.passage_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPassageText returns the old "passage_text" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldPassageText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassageText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassageText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassageText: %w", err)
	}
	return oldValue.PassageText, nil
}

// ClearPassageText clears the value of the "passage_text" field.
func (m *ExtractedQuestionMutation) ClearPassageText() {
	m.passage_text = nil
	m.clearedFields[extractedquestion.FieldPassageText] = struct{}{}
}

// PassageTextCleared returns if the "passage_text" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) PassageTextCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldPassageText]
	return ok
}

// ResetPassageText resets all changes to the "passage_text" field.
func (m *ExtractedQuestionMutation) ResetPassageText() {
	m.passage_text = nil
	delete(m.clearedFields, extractedquestion.FieldPassageText)
}

// SetOptions sets the "options" field.
func (m *ExtractedQuestionMutation) SetOptions(jm json.RawMessage) {
	m.options = &jm
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *ExtractedQuestionMutation) Options() (r json.RawMessage, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldOptions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds jm to the "options" field.
func (m *ExtractedQuestionMutation) AppendOptions(jm json.RawMessage) {
	m.appendoptions = append(m.appendoptions, jm...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *ExtractedQuestionMutation) AppendedOptions() (json.RawMessage, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *ExtractedQuestionMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[extractedquestion.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *ExtractedQuestionMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, extractedquestion.FieldOptions)
}

// SetTableData sets the "table_data" field.
func (m *ExtractedQuestionMutation) SetTableData(jm json.RawMessage) {
	m.table_data = &jm
	m.appendtable_data = nil
}

// TableData returns the value of the "table_data" field in the mutation.
func (m *ExtractedQuestionMutation) TableData() (r json.RawMessage, exists bool) {
	v := m.table_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTableData returns the old "table_data" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldTableData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableData: %w", err)
	}
	return oldValue.TableData, nil
}

// AppendTableData adds jm to the "table_data" field.
func (m *ExtractedQuestionMutation) AppendTableData(jm json.RawMessage) {
	m.appendtable_data = append(m.appendtable_data, jm...)
}

// AppendedTableData returns the list of values that were appended to the "table_data" field in this mutation.
func (m *ExtractedQuestionMutation) AppendedTableData() (json.RawMessage, bool) {
	if len(m.appendtable_data) == 0 {
		return nil, false
	}
	return m.appendtable_data, true
}

// ClearTableData clears the value of the "table_data" field.
func (m *ExtractedQuestionMutation) ClearTableData() {
	m.table_data = nil
	m.appendtable_data = nil
	m.clearedFields[extractedquestion.FieldTableData] = struct{}{}
}

// TableDataCleared returns if the "table_data" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) TableDataCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldTableData]
	return ok
}

// ResetTableData resets all changes to the "table_data" field.
func (m *ExtractedQuestionMutation) ResetTableData() {
	m.table_data = nil
	m.appendtable_data = nil
	delete(m.clearedFields, extractedquestion.FieldTableData)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *ExtractedQuestionMutation) SetCorrectAnswer(s []string) {
	m.correct_answer = &s
	m.appendcorrect_answer = nil
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *ExtractedQuestionMutation) CorrectAnswer() (r []string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldCorrectAnswer(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// AppendCorrectAnswer adds s to the "correct_answer" field.
func (m *ExtractedQuestionMutation) AppendCorrectAnswer(s []string) {
	m.appendcorrect_answer = append(m.appendcorrect_answer, s...)
}

// AppendedCorrectAnswer returns the list of values that were appended to the "correct_answer" field in this mutation.
func (m *ExtractedQuestionMutation) AppendedCorrectAnswer() ([]string, bool) {
	if len(m.appendcorrect_answer) == 0 {
		return nil, false
	}
	return m.appendcorrect_answer, true
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *ExtractedQuestionMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.appendcorrect_answer = nil
	m.clearedFields[extractedquestion.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *ExtractedQuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	m.appendcorrect_answer = nil
	delete(m.clearedFields, extractedquestion.FieldCorrectAnswer)
}

// SetNeedsAnswer sets the "needs_answer" field.
func (m *ExtractedQuestionMutation) SetNeedsAnswer(b bool) {
	m.needs_answer = &b
}

// NeedsAnswer returns the value of the "needs_answer" field in the mutation.
func (m *ExtractedQuestionMutation) NeedsAnswer() (r bool, exists bool) {
	v := m.needs_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsAnswer returns the old "needs_answer" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldNeedsAnswer(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsAnswer: %w", err)
	}
	return oldValue.NeedsAnswer, nil
}

// ResetNeedsAnswer resets all changes to the "needs_answer" field.
func (m *ExtractedQuestionMutation) ResetNeedsAnswer() {
	m.needs_answer = nil
}

// SetExplanation sets the "explanation" field.
func (m *ExtractedQuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *ExtractedQuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldExplanation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *ExtractedQuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[extractedquestion.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *ExtractedQuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, extractedquestion.FieldExplanation)
}

// SetDifficulty sets the "difficulty" field.
func (m *ExtractedQuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ExtractedQuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldDifficulty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ClearDifficulty clears the value of the "difficulty" field.
func (m *ExtractedQuestionMutation) ClearDifficulty() {
	m.difficulty = nil
	m.clearedFields[extractedquestion.FieldDifficulty] = struct{}{}
}

// DifficultyCleared returns if the "difficulty" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) DifficultyCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldDifficulty]
	return ok
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ExtractedQuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	delete(m.clearedFields, extractedquestion.FieldDifficulty)
}

// SetDomain sets the "domain" field.
func (m *ExtractedQuestionMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *ExtractedQuestionMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldDomain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *ExtractedQuestionMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[extractedquestion.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) DomainCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *ExtractedQuestionMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, extractedquestion.FieldDomain)
}

// SetSkillTags sets the "skill_tags" field.
func (m *ExtractedQuestionMutation) SetSkillTags(s []string) {
	m.skill_tags = &s
	m.appendskill_tags = nil
}

// SkillTags returns the value of the "skill_tags" field in the mutation.
func (m *ExtractedQuestionMutation) SkillTags() (r []string, exists bool) {
	v := m.skill_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillTags returns the old "skill_tags" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldSkillTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillTags: %w", err)
	}
	return oldValue.SkillTags, nil
}

// AppendSkillTags adds s to the "skill_tags" field.
func (m *ExtractedQuestionMutation) AppendSkillTags(s []string) {
	m.appendskill_tags = append(m.appendskill_tags, s...)
}

// AppendedSkillTags returns the list of values that were appended to the "skill_tags" field in this mutation.
func (m *ExtractedQuestionMutation) AppendedSkillTags() ([]string, bool) {
	if len(m.appendskill_tags) == 0 {
		return nil, false
	}
	return m.appendskill_tags, true
}

// ClearSkillTags clears the value of the "skill_tags" field.
func (m *ExtractedQuestionMutation) ClearSkillTags() {
	m.skill_tags = nil
	m.appendskill_tags = nil
	m.clearedFields[extractedquestion.FieldSkillTags] = struct{}{}
}

// SkillTagsCleared returns if the "skill_tags" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) SkillTagsCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldSkillTags]
	return ok
}

// ResetSkillTags resets all changes to the "skill_tags" field.
func (m *ExtractedQuestionMutation) ResetSkillTags() {
	m.skill_tags = nil
	m.appendskill_tags = nil
	delete(m.clearedFields, extractedquestion.FieldSkillTags)
}

// SetNeedsImage sets the "needs_image" field.
func (m *ExtractedQuestionMutation) SetNeedsImage(b bool) {
	m.needs_image = &b
}

// NeedsImage returns the value of the "needs_image" field in the mutation.
func (m *ExtractedQuestionMutation) NeedsImage() (r bool, exists bool) {
	v := m.needs_image
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsImage returns the old "needs_image" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldNeedsImage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsImage: %w", err)
	}
	return oldValue.NeedsImage, nil
}

// ResetNeedsImage resets all changes to the "needs_image" field.
func (m *ExtractedQuestionMutation) ResetNeedsImage() {
	m.needs_image = nil
}

// SetImageURL sets the "image_url" field.
func (m *ExtractedQuestionMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *ExtractedQuestionMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *ExtractedQuestionMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[extractedquestion.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *ExtractedQuestionMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, extractedquestion.FieldImageURL)
}

// SetImageStatus sets the "image_status" field.
func (m *ExtractedQuestionMutation) SetImageStatus(s string) {
	m.image_status = &s
}

// ImageStatus returns the value of the "image_status" field in the mutation.
func (m *ExtractedQuestionMutation) ImageStatus() (r string, exists bool) {
	v := m.image_status
	if v == nil {
		return
	}
	return *v, true
}

// OldImageStatus returns the old "image_status" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldImageStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageStatus: %w", err)
	}
	return oldValue.ImageStatus, nil
}

// ClearImageStatus clears the value of the "image_status" field.
func (m *ExtractedQuestionMutation) ClearImageStatus() {
	m.image_status = nil
	m.clearedFields[extractedquestion.FieldImageStatus] = struct{}{}
}

// ImageStatusCleared returns if the "image_status" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ImageStatusCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldImageStatus]
	return ok
}

// ResetImageStatus resets all changes to the "image_status" field.
func (m *ExtractedQuestionMutation) ResetImageStatus() {
	m.image_status = nil
	delete(m.clearedFields, extractedquestion.FieldImageStatus)
}

// SetValidationErrors sets the "validation_errors" field.
func (m *ExtractedQuestionMutation) SetValidationErrors(s []string) {
	m.validation_errors = &s
	m.appendvalidation_errors = nil
}

// ValidationErrors returns the value of the "validation_errors" field in the mutation.
func (m *ExtractedQuestionMutation) ValidationErrors() (r []string, exists bool) {
	v := m.validation_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationErrors returns the old "validation_errors" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldValidationErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationErrors: %w", err)
	}
	return oldValue.ValidationErrors, nil
}

// AppendValidationErrors adds s to the "validation_errors" field.
func (m *ExtractedQuestionMutation) AppendValidationErrors(s []string) {
	m.appendvalidation_errors = append(m.appendvalidation_errors, s...)
}

// AppendedValidationErrors returns the list of values that were appended to the "validation_errors" field in this mutation.
func (m *ExtractedQuestionMutation) AppendedValidationErrors() ([]string, bool) {
	if len(m.appendvalidation_errors) == 0 {
		return nil, false
	}
	return m.appendvalidation_errors, true
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (m *ExtractedQuestionMutation) ClearValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	m.clearedFields[extractedquestion.FieldValidationErrors] = struct{}{}
}

// ValidationErrorsCleared returns if the "validation_errors" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ValidationErrorsCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldValidationErrors]
	return ok
}

// ResetValidationErrors resets all changes to the "validation_errors" field.
func (m *ExtractedQuestionMutation) ResetValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	delete(m.clearedFields, extractedquestion.FieldValidationErrors)
}

// SetImportedQuestionID sets the "imported_question_id" field.
func (m *ExtractedQuestionMutation) SetImportedQuestionID(u uuid.UUID) {
	m.imported_question_id = &u
}

// ImportedQuestionID returns the value of the "imported_question_id" field in the mutation.
func (m *ExtractedQuestionMutation) ImportedQuestionID() (r uuid.UUID, exists bool) {
	v := m.imported_question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedQuestionID returns the old "imported_question_id" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldImportedQuestionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedQuestionID: %w", err)
	}
	return oldValue.ImportedQuestionID, nil
}

// ClearImportedQuestionID clears the value of the "imported_question_id" field.
func (m *ExtractedQuestionMutation) ClearImportedQuestionID() {
	m.imported_question_id = nil
	m.clearedFields[extractedquestion.FieldImportedQuestionID] = struct{}{}
}

// ImportedQuestionIDCleared returns if the "imported_question_id" field was cleared in this mutation.
func (m *ExtractedQuestionMutation) ImportedQuestionIDCleared() bool {
	_, ok := m.clearedFields[extractedquestion.FieldImportedQuestionID]
	return ok
}

// ResetImportedQuestionID resets all changes to the "imported_question_id" field.
func (m *ExtractedQuestionMutation) ResetImportedQuestionID() {
	m.imported_question_id = nil
	delete(m.clearedFields, extractedquestion.FieldImportedQuestionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractedQuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractedQuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractedQuestion entity.
// If the ExtractedQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedQuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractedQuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *ExtractedQuestionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[extractedquestion.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *ExtractedQuestionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ExtractedQuestionMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ExtractedQuestionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearPage clears the "page" edge to the JobPage entity.
func (m *ExtractedQuestionMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[extractedquestion.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the JobPage entity was cleared.
func (m *ExtractedQuestionMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *ExtractedQuestionMutation) PageIDs() (ids []uuid.UUID) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *ExtractedQuestionMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// ClearPassage clears the "passage" edge to the ExtractedPassage entity.
func (m *ExtractedQuestionMutation) ClearPassage() {
	m.clearedpassage = true
	m.clearedFields[extractedquestion.FieldPassageID] = struct{}{}
}

// PassageCleared reports if the "passage" edge to the ExtractedPassage entity was cleared.
func (m *ExtractedQuestionMutation) PassageCleared() bool {
	return m.PassageIDCleared() || m.clearedpassage
}

// PassageIDs returns the "passage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PassageID instead. It exists only for internal usage by the builders.
func (m *ExtractedQuestionMutation) PassageIDs() (ids []uuid.UUID) {
	if id := m.passage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPassage resets all changes to the "passage" edge.
func (m *ExtractedQuestionMutation) ResetPassage() {
	m.passage = nil
	m.clearedpassage = false
}

// Where appends a list predicates to the ExtractedQuestionMutation builder.
func (m *ExtractedQuestionMutation) Where(ps ...predicate.ExtractedQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedQuestion).
func (m *ExtractedQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedQuestionMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.job != nil {
		fields = append(fields, extractedquestion.FieldJobID)
	}
	if m.page != nil {
		fields = append(fields, extractedquestion.FieldPageID)
	}
	if m.passage != nil {
		fields = append(fields, extractedquestion.FieldPassageID)
	}
	if m.review_status != nil {
		fields = append(fields, extractedquestion.FieldReviewStatus)
	}
	if m.reviewed_by != nil {
		fields = append(fields, extractedquestion.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, extractedquestion.FieldReviewedAt)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractedquestion.FieldExtractionConfidence)
	}
	if m.answer_confidence != nil {
		fields = append(fields, extractedquestion.FieldAnswerConfidence)
	}
	if m.question_text != nil {
		fields = append(fields, extractedquestion.FieldQuestionText)
	}
	if m.question_type != nil {
		fields = append(fields, extractedquestion.FieldQuestionType)
	}
	if m.passage_text != nil {
		fields = append(fields, extractedquestion.FieldPassageText)
	}
	if m.options != nil {
		fields = append(fields, extractedquestion.FieldOptions)
	}
	if m.table_data != nil {
		fields = append(fields, extractedquestion.FieldTableData)
	}
	if m.correct_answer != nil {
		fields = append(fields, extractedquestion.FieldCorrectAnswer)
	}
	if m.needs_answer != nil {
		fields = append(fields, extractedquestion.FieldNeedsAnswer)
	}
	if m.explanation != nil {
		fields = append(fields, extractedquestion.FieldExplanation)
	}
	if m.difficulty != nil {
		fields = append(fields, extractedquestion.FieldDifficulty)
	}
	if m.domain != nil {
		fields = append(fields, extractedquestion.FieldDomain)
	}
	if m.skill_tags != nil {
		fields = append(fields, extractedquestion.FieldSkillTags)
	}
	if m.needs_image != nil {
		fields = append(fields, extractedquestion.FieldNeedsImage)
	}
	if m.image_url != nil {
		fields = append(fields, extractedquestion.FieldImageURL)
	}
	if m.image_status != nil {
		fields = append(fields, extractedquestion.FieldImageStatus)
	}
	if m.validation_errors != nil {
		fields = append(fields, extractedquestion.FieldValidationErrors)
	}
	if m.imported_question_id != nil {
		fields = append(fields, extractedquestion.FieldImportedQuestionID)
	}
	if m.created_at != nil {
		fields = append(fields, extractedquestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractedquestion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedquestion.FieldJobID:
		return m.JobID()
	case extractedquestion.FieldPageID:
		return m.PageID()
	case extractedquestion.FieldPassageID:
		return m.PassageID()
	case extractedquestion.FieldReviewStatus:
		return m.ReviewStatus()
	case extractedquestion.FieldReviewedBy:
		return m.ReviewedBy()
	case extractedquestion.FieldReviewedAt:
		return m.ReviewedAt()
	case extractedquestion.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractedquestion.FieldAnswerConfidence:
		return m.AnswerConfidence()
	case extractedquestion.FieldQuestionText:
		return m.QuestionText()
	case extractedquestion.FieldQuestionType:
		return m.QuestionType()
	case extractedquestion.FieldPassageText:
		return m.PassageText()
	case extractedquestion.FieldOptions:
		return m.Options()
	case extractedquestion.FieldTableData:
		return m.TableData()
	case extractedquestion.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case extractedquestion.FieldNeedsAnswer:
		return m.NeedsAnswer()
	case extractedquestion.FieldExplanation:
		return m.Explanation()
	case extractedquestion.FieldDifficulty:
		return m.Difficulty()
	case extractedquestion.FieldDomain:
		return m.Domain()
	case extractedquestion.FieldSkillTags:
		return m.SkillTags()
	case extractedquestion.FieldNeedsImage:
		return m.NeedsImage()
	case extractedquestion.FieldImageURL:
		return m.ImageURL()
	case extractedquestion.FieldImageStatus:
		return m.ImageStatus()
	case extractedquestion.FieldValidationErrors:
		return m.ValidationErrors()
	case extractedquestion.FieldImportedQuestionID:
		return m.ImportedQuestionID()
	case extractedquestion.FieldCreatedAt:
		return m.CreatedAt()
	case extractedquestion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedquestion.FieldJobID:
		return m.OldJobID(ctx)
	case extractedquestion.FieldPageID:
		return m.OldPageID(ctx)
	case extractedquestion.FieldPassageID:
		return m.OldPassageID(ctx)
	case extractedquestion.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case extractedquestion.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case extractedquestion.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case extractedquestion.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractedquestion.FieldAnswerConfidence:
		return m.OldAnswerConfidence(ctx)
	case extractedquestion.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case extractedquestion.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case extractedquestion.FieldPassageText:
		return m.OldPassageText(ctx)
	case extractedquestion.FieldOptions:
		return m.OldOptions(ctx)
	case extractedquestion.FieldTableData:
		return m.OldTableData(ctx)
	case extractedquestion.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case extractedquestion.FieldNeedsAnswer:
		return m.OldNeedsAnswer(ctx)
	case extractedquestion.FieldExplanation:
		return m.OldExplanation(ctx)
	case extractedquestion.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case extractedquestion.FieldDomain:
		return m.OldDomain(ctx)
	case extractedquestion.FieldSkillTags:
		return m.OldSkillTags(ctx)
	case extractedquestion.FieldNeedsImage:
		return m.OldNeedsImage(ctx)
	case extractedquestion.FieldImageURL:
		return m.OldImageURL(ctx)
	case extractedquestion.FieldImageStatus:
		return m.OldImageStatus(ctx)
	case extractedquestion.FieldValidationErrors:
		return m.OldValidationErrors(ctx)
	case extractedquestion.FieldImportedQuestionID:
		return m.OldImportedQuestionID(ctx)
	case extractedquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractedquestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedquestion.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case extractedquestion.FieldPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case extractedquestion.FieldPassageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassageID(v)
		return nil
	case extractedquestion.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case extractedquestion.FieldReviewedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case extractedquestion.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case extractedquestion.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractedquestion.FieldAnswerConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerConfidence(v)
		return nil
	case extractedquestion.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case extractedquestion.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case extractedquestion.FieldPassageText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassageText(v)
		return nil
	case extractedquestion.FieldOptions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case extractedquestion.FieldTableData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableData(v)
		return nil
	case extractedquestion.FieldCorrectAnswer:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case extractedquestion.FieldNeedsAnswer:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsAnswer(v)
		return nil
	case extractedquestion.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case extractedquestion.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case extractedquestion.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case extractedquestion.FieldSkillTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillTags(v)
		return nil
	case extractedquestion.FieldNeedsImage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsImage(v)
		return nil
	case extractedquestion.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case extractedquestion.FieldImageStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageStatus(v)
		return nil
	case extractedquestion.FieldValidationErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationErrors(v)
		return nil
	case extractedquestion.FieldImportedQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedQuestionID(v)
		return nil
	case extractedquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractedquestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractedquestion.FieldExtractionConfidence)
	}
	if m.addanswer_confidence != nil {
		fields = append(fields, extractedquestion.FieldAnswerConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedquestion.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	case extractedquestion.FieldAnswerConfidence:
		return m.AddedAnswerConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedquestion.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	case extractedquestion.FieldAnswerConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswerConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedquestion.FieldPassageID) {
		fields = append(fields, extractedquestion.FieldPassageID)
	}
	if m.FieldCleared(extractedquestion.FieldReviewedBy) {
		fields = append(fields, extractedquestion.FieldReviewedBy)
	}
	if m.FieldCleared(extractedquestion.FieldReviewedAt) {
		fields = append(fields, extractedquestion.FieldReviewedAt)
	}
	if m.FieldCleared(extractedquestion.FieldPassageText) {
		fields = append(fields, extractedquestion.FieldPassageText)
	}
	if m.FieldCleared(extractedquestion.FieldOptions) {
		fields = append(fields, extractedquestion.FieldOptions)
	}
	if m.FieldCleared(extractedquestion.FieldTableData) {
		fields = append(fields, extractedquestion.FieldTableData)
	}
	if m.FieldCleared(extractedquestion.FieldCorrectAnswer) {
		fields = append(fields, extractedquestion.FieldCorrectAnswer)
	}
	if m.FieldCleared(extractedquestion.FieldExplanation) {
		fields = append(fields, extractedquestion.FieldExplanation)
	}
	if m.FieldCleared(extractedquestion.FieldDifficulty) {
		fields = append(fields, extractedquestion.FieldDifficulty)
	}
	if m.FieldCleared(extractedquestion.FieldDomain) {
		fields = append(fields, extractedquestion.FieldDomain)
	}
	if m.FieldCleared(extractedquestion.FieldSkillTags) {
		fields = append(fields, extractedquestion.FieldSkillTags)
	}
	if m.FieldCleared(extractedquestion.FieldImageURL) {
		fields = append(fields, extractedquestion.FieldImageURL)
	}
	if m.FieldCleared(extractedquestion.FieldImageStatus) {
		fields = append(fields, extractedquestion.FieldImageStatus)
	}
	if m.FieldCleared(extractedquestion.FieldValidationErrors) {
		fields = append(fields, extractedquestion.FieldValidationErrors)
	}
	if m.FieldCleared(extractedquestion.FieldImportedQuestionID) {
		fields = append(fields, extractedquestion.FieldImportedQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedQuestionMutation) ClearField(name string) error {
	switch name {
	case extractedquestion.FieldPassageID:
		m.ClearPassageID()
		return nil
	case extractedquestion.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case extractedquestion.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case extractedquestion.FieldPassageText:
		m.ClearPassageText()
		return nil
	case extractedquestion.FieldOptions:
		m.ClearOptions()
		return nil
	case extractedquestion.FieldTableData:
		m.ClearTableData()
		return nil
	case extractedquestion.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case extractedquestion.FieldExplanation:
		m.ClearExplanation()
		return nil
	case extractedquestion.FieldDifficulty:
		m.ClearDifficulty()
		return nil
	case extractedquestion.FieldDomain:
		m.ClearDomain()
		return nil
	case extractedquestion.FieldSkillTags:
		m.ClearSkillTags()
		return nil
	case extractedquestion.FieldImageURL:
		m.ClearImageURL()
		return nil
	case extractedquestion.FieldImageStatus:
		m.ClearImageStatus()
		return nil
	case extractedquestion.FieldValidationErrors:
		m.ClearValidationErrors()
		return nil
	case extractedquestion.FieldImportedQuestionID:
		m.ClearImportedQuestionID()
		return nil
	}
	return fmt.Errorf("unknown ExtractedQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedQuestionMutation) ResetField(name string) error {
	switch name {
	case extractedquestion.FieldJobID:
		m.ResetJobID()
		return nil
	case extractedquestion.FieldPageID:
		m.ResetPageID()
		return nil
	case extractedquestion.FieldPassageID:
		m.ResetPassageID()
		return nil
	case extractedquestion.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case extractedquestion.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case extractedquestion.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case extractedquestion.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractedquestion.FieldAnswerConfidence:
		m.ResetAnswerConfidence()
		return nil
	case extractedquestion.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case extractedquestion.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case extractedquestion.FieldPassageText:
		m.ResetPassageText()
		return nil
	case extractedquestion.FieldOptions:
		m.ResetOptions()
		return nil
	case extractedquestion.FieldTableData:
		m.ResetTableData()
		return nil
	case extractedquestion.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case extractedquestion.FieldNeedsAnswer:
		m.ResetNeedsAnswer()
		return nil
	case extractedquestion.FieldExplanation:
		m.ResetExplanation()
		return nil
	case extractedquestion.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case extractedquestion.FieldDomain:
		m.ResetDomain()
		return nil
	case extractedquestion.FieldSkillTags:
		m.ResetSkillTags()
		return nil
	case extractedquestion.FieldNeedsImage:
		m.ResetNeedsImage()
		return nil
	case extractedquestion.FieldImageURL:
		m.ResetImageURL()
		return nil
	case extractedquestion.FieldImageStatus:
		m.ResetImageStatus()
		return nil
	case extractedquestion.FieldValidationErrors:
		m.ResetValidationErrors()
		return nil
	case extractedquestion.FieldImportedQuestionID:
		m.ResetImportedQuestionID()
		return nil
	case extractedquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractedquestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job != nil {
		edges = append(edges, extractedquestion.EdgeJob)
	}
	if m.page != nil {
		edges = append(edges, extractedquestion.EdgePage)
	}
	if m.passage != nil {
		edges = append(edges, extractedquestion.EdgePassage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedquestion.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case extractedquestion.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	case extractedquestion.EdgePassage:
		if id := m.passage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob {
		edges = append(edges, extractedquestion.EdgeJob)
	}
	if m.clearedpage {
		edges = append(edges, extractedquestion.EdgePage)
	}
	if m.clearedpassage {
		edges = append(edges, extractedquestion.EdgePassage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedquestion.EdgeJob:
		return m.clearedjob
	case extractedquestion.EdgePage:
		return m.clearedpage
	case extractedquestion.EdgePassage:
		return m.clearedpassage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedQuestionMutation) ClearEdge(name string) error {
	switch name {
	case extractedquestion.EdgeJob:
		m.ClearJob()
		return nil
	case extractedquestion.EdgePage:
		m.ClearPage()
		return nil
	case extractedquestion.EdgePassage:
		m.ClearPassage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedQuestionMutation) ResetEdge(name string) error {
	switch name {
	case extractedquestion.EdgeJob:
		m.ResetJob()
		return nil
	case extractedquestion.EdgePage:
		m.ResetPage()
		return nil
	case extractedquestion.EdgePassage:
		m.ResetPassage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedQuestion edge %s", name)
}

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	user_id                 *uuid.UUID
	target_module_id        *uuid.UUID
	status                  *string
	pdf_filename            *string
	pdf_path                *string
	pdf_hash                *string
	total_pages             *int
	addtotal_pages          *int
	processed_pages         *int
	addprocessed_pages      *int
	question_pages          *int
	addquestion_pages       *int
	skipped_pages           *int
	addskipped_pages        *int
	failed_pages            *int
	addfailed_pages         *int
	extracted_questions     *int
	addextracted_questions  *int
	approved_questions      *int
	addapproved_questions   *int
	imported_questions      *int
	addimported_questions   *int
	provider                *string
	estimated_cost_cents    *int
	addestimated_cost_cents *int
	actual_cost_cents       *int
	addactual_cost_cents    *int
	started_at              *time.Time
	completed_at            *time.Time
	error_message           *string
	last_error_page         *int
	addlast_error_page      *int
	retry_count             *int
	addretry_count          *int
	task_id                 *string
	test_configs            *json.RawMessage
	appendtest_configs      json.RawMessage
	created_test_ids        *[]uuid.UUID
	appendcreated_test_ids  []uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	pages                   map[uuid.UUID]struct{}
	removedpages            map[uuid.UUID]struct{}
	clearedpages            bool
	questions               map[uuid.UUID]struct{}
	removedquestions        map[uuid.UUID]struct{}
	clearedquestions        bool
	passages                map[uuid.UUID]struct{}
	removedpassages         map[uuid.UUID]struct{}
	clearedpassages         bool
	done                    bool
	oldValue                func(context.Context) (*ExtractionJob, error)
	predicates              []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ExtractionJobMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExtractionJobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExtractionJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetTargetModuleID sets the "target_module_id" field.
func (m *ExtractionJobMutation) SetTargetModuleID(u uuid.UUID) {
	m.target_module_id = &u
}

// TargetModuleID returns the value of the "target_module_id" field in the mutation.
func (m *ExtractionJobMutation) TargetModuleID() (r uuid.UUID, exists bool) {
	v := m.target_module_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetModuleID returns the old "target_module_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTargetModuleID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetModuleID: %w", err)
	}
	return oldValue.TargetModuleID, nil
}

// ClearTargetModuleID clears the value of the "target_module_id" field.
func (m *ExtractionJobMutation) ClearTargetModuleID() {
	m.target_module_id = nil
	m.clearedFields[extractionjob.FieldTargetModuleID] = struct{}{}
}

// TargetModuleIDCleared returns if the "target_module_id" field was cleared in this mutation.
func (m *ExtractionJobMutation) TargetModuleIDCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTargetModuleID]
	return ok
}

// ResetTargetModuleID resets all changes to the "target_module_id" field.
func (m *ExtractionJobMutation) ResetTargetModuleID() {
	m.target_module_id = nil
	delete(m.clearedFields, extractionjob.FieldTargetModuleID)
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetPdfFilename sets the "pdf_filename" field.
func (m *ExtractionJobMutation) SetPdfFilename(s string) {
	m.pdf_filename = &s
}

// PdfFilename returns the value of the "pdf_filename" field in the mutation.
func (m *ExtractionJobMutation) PdfFilename() (r string, exists bool) {
	v := m.pdf_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfFilename returns the old "pdf_filename" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPdfFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfFilename: %w", err)
	}
	return oldValue.PdfFilename, nil
}

// ResetPdfFilename resets all changes to the "pdf_filename" field.
func (m *ExtractionJobMutation) ResetPdfFilename() {
	m.pdf_filename = nil
}

// SetPdfPath sets the "pdf_path" field.
func (m *ExtractionJobMutation) SetPdfPath(s string) {
	m.pdf_path = &s
}

// PdfPath returns the value of the "pdf_path" field in the mutation.
func (m *ExtractionJobMutation) PdfPath() (r string, exists bool) {
	v := m.pdf_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfPath returns the old "pdf_path" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPdfPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfPath: %w", err)
	}
	return oldValue.PdfPath, nil
}

// ResetPdfPath resets all changes to the "pdf_path" field.
func (m *ExtractionJobMutation) ResetPdfPath() {
	m.pdf_path = nil
}

// SetPdfHash sets the "pdf_hash" field.
func (m *ExtractionJobMutation) SetPdfHash(s string) {
	m.pdf_hash = &s
}

// PdfHash returns the value of the "pdf_hash" field in the mutation.
func (m *ExtractionJobMutation) PdfHash() (r string, exists bool) {
	v := m.pdf_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfHash returns the old "pdf_hash" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPdfHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfHash: %w", err)
	}
	return oldValue.PdfHash, nil
}

// ResetPdfHash resets all changes to the "pdf_hash" field.
func (m *ExtractionJobMutation) ResetPdfHash() {
	m.pdf_hash = nil
}

// SetTotalPages sets the "total_pages" field.
func (m *ExtractionJobMutation) SetTotalPages(i int) {
	m.total_pages = &i
	m.addtotal_pages = nil
}

// TotalPages returns the value of the "total_pages" field in the mutation.
func (m *ExtractionJobMutation) TotalPages() (r int, exists bool) {
	v := m.total_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPages returns the old "total_pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTotalPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPages: %w", err)
	}
	return oldValue.TotalPages, nil
}

// AddTotalPages adds i to the "total_pages" field.
func (m *ExtractionJobMutation) AddTotalPages(i int) {
	if m.addtotal_pages != nil {
		*m.addtotal_pages += i
	} else {
		m.addtotal_pages = &i
	}
}

// AddedTotalPages returns the value that was added to the "total_pages" field in this mutation.
func (m *ExtractionJobMutation) AddedTotalPages() (r int, exists bool) {
	v := m.addtotal_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPages resets all changes to the "total_pages" field.
func (m *ExtractionJobMutation) ResetTotalPages() {
	m.total_pages = nil
	m.addtotal_pages = nil
}

// SetProcessedPages sets the "processed_pages" field.
func (m *ExtractionJobMutation) SetProcessedPages(i int) {
	m.processed_pages = &i
	m.addprocessed_pages = nil
}

// ProcessedPages returns the value of the "processed_pages" field in the mutation.
func (m *ExtractionJobMutation) ProcessedPages() (r int, exists bool) {
	v := m.processed_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedPages returns the old "processed_pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldProcessedPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedPages: %w", err)
	}
	return oldValue.ProcessedPages, nil
}

// AddProcessedPages adds i to the "processed_pages" field.
func (m *ExtractionJobMutation) AddProcessedPages(i int) {
	if m.addprocessed_pages != nil {
		*m.addprocessed_pages += i
	} else {
		m.addprocessed_pages = &i
	}
}

// AddedProcessedPages returns the value that was added to the "processed_pages" field in this mutation.
func (m *ExtractionJobMutation) AddedProcessedPages() (r int, exists bool) {
	v := m.addprocessed_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedPages resets all changes to the "processed_pages" field.
func (m *ExtractionJobMutation) ResetProcessedPages() {
	m.processed_pages = nil
	m.addprocessed_pages = nil
}

// SetQuestionPages sets the "question_pages" field.
func (m *ExtractionJobMutation) SetQuestionPages(i int) {
	m.question_pages = &i
	m.addquestion_pages = nil
}

// QuestionPages returns the value of the "question_pages" field in the mutation.
func (m *ExtractionJobMutation) QuestionPages() (r int, exists bool) {
	v := m.question_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionPages returns the old "question_pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldQuestionPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionPages: %w", err)
	}
	return oldValue.QuestionPages, nil
}

// AddQuestionPages adds i to the "question_pages" field.
func (m *ExtractionJobMutation) AddQuestionPages(i int) {
	if m.addquestion_pages != nil {
		*m.addquestion_pages += i
	} else {
		m.addquestion_pages = &i
	}
}

// AddedQuestionPages returns the value that was added to the "question_pages" field in this mutation.
func (m *ExtractionJobMutation) AddedQuestionPages() (r int, exists bool) {
	v := m.addquestion_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionPages resets all changes to the "question_pages" field.
func (m *ExtractionJobMutation) ResetQuestionPages() {
	m.question_pages = nil
	m.addquestion_pages = nil
}

// SetSkippedPages sets the "skipped_pages" field.
func (m *ExtractionJobMutation) SetSkippedPages(i int) {
	m.skipped_pages = &i
	m.addskipped_pages = nil
}

// SkippedPages returns the value of the "skipped_pages" field in the mutation.
func (m *ExtractionJobMutation) SkippedPages() (r int, exists bool) {
	v := m.skipped_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedPages returns the old "skipped_pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSkippedPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedPages: %w", err)
	}
	return oldValue.SkippedPages, nil
}

// AddSkippedPages adds i to the "skipped_pages" field.
func (m *ExtractionJobMutation) AddSkippedPages(i int) {
	if m.addskipped_pages != nil {
		*m.addskipped_pages += i
	} else {
		m.addskipped_pages = &i
	}
}

// AddedSkippedPages returns the value that was added to the "skipped_pages" field in this mutation.
func (m *ExtractionJobMutation) AddedSkippedPages() (r int, exists bool) {
	v := m.addskipped_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkippedPages resets all changes to the "skipped_pages" field.
func (m *ExtractionJobMutation) ResetSkippedPages() {
	m.skipped_pages = nil
	m.addskipped_pages = nil
}

// SetFailedPages sets the "failed_pages" field.
func (m *ExtractionJobMutation) SetFailedPages(i int) {
	m.failed_pages = &i
	m.addfailed_pages = nil
}

// FailedPages returns the value of the "failed_pages" field in the mutation.
func (m *ExtractionJobMutation) FailedPages() (r int, exists bool) {
	v := m.failed_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedPages returns the old "failed_pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFailedPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedPages: %w", err)
	}
	return oldValue.FailedPages, nil
}

// AddFailedPages adds i to the "failed_pages" field.
func (m *ExtractionJobMutation) AddFailedPages(i int) {
	if m.addfailed_pages != nil {
		*m.addfailed_pages += i
	} else {
		m.addfailed_pages = &i
	}
}

// AddedFailedPages returns the value that was added to the "failed_pages" field in this mutation.
func (m *ExtractionJobMutation) AddedFailedPages() (r int, exists bool) {
	v := m.addfailed_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedPages resets all changes to the "failed_pages" field.
func (m *ExtractionJobMutation) ResetFailedPages() {
	m.failed_pages = nil
	m.addfailed_pages = nil
}

// SetExtractedQuestions sets the "extracted_questions" field.
func (m *ExtractionJobMutation) SetExtractedQuestions(i int) {
	m.extracted_questions = &i
	m.addextracted_questions = nil
}

// ExtractedQuestions returns the value of the "extracted_questions" field in the mutation.
func (m *ExtractionJobMutation) ExtractedQuestions() (r int, exists bool) {
	v := m.extracted_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedQuestions returns the old "extracted_questions" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldExtractedQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedQuestions: %w", err)
	}
	return oldValue.ExtractedQuestions, nil
}

// AddExtractedQuestions adds i to the "extracted_questions" field.
func (m *ExtractionJobMutation) AddExtractedQuestions(i int) {
	if m.addextracted_questions != nil {
		*m.addextracted_questions += i
	} else {
		m.addextracted_questions = &i
	}
}

// AddedExtractedQuestions returns the value that was added to the "extracted_questions" field in this mutation.
func (m *ExtractionJobMutation) AddedExtractedQuestions() (r int, exists bool) {
	v := m.addextracted_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractedQuestions resets all changes to the "extracted_questions" field.
func (m *ExtractionJobMutation) ResetExtractedQuestions() {
	m.extracted_questions = nil
	m.addextracted_questions = nil
}

// SetApprovedQuestions sets the "approved_questions" field.
func (m *ExtractionJobMutation) SetApprovedQuestions(i int) {
	m.approved_questions = &i
	m.addapproved_questions = nil
}

// ApprovedQuestions returns the value of the "approved_questions" field in the mutation.
func (m *ExtractionJobMutation) ApprovedQuestions() (r int, exists bool) {
	v := m.approved_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedQuestions returns the old "approved_questions" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldApprovedQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedQuestions: %w", err)
	}
	return oldValue.ApprovedQuestions, nil
}

// AddApprovedQuestions adds i to the "approved_questions" field.
func (m *ExtractionJobMutation) AddApprovedQuestions(i int) {
	if m.addapproved_questions != nil {
		*m.addapproved_questions += i
	} else {
		m.addapproved_questions = &i
	}
}

// AddedApprovedQuestions returns the value that was added to the "approved_questions" field in this mutation.
func (m *ExtractionJobMutation) AddedApprovedQuestions() (r int, exists bool) {
	v := m.addapproved_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetApprovedQuestions resets all changes to the "approved_questions" field.
func (m *ExtractionJobMutation) ResetApprovedQuestions() {
	m.approved_questions = nil
	m.addapproved_questions = nil
}

// SetImportedQuestions sets the "imported_questions" field.
func (m *ExtractionJobMutation) SetImportedQuestions(i int) {
	m.imported_questions = &i
	m.addimported_questions = nil
}

// ImportedQuestions returns the value of the "imported_questions" field in the mutation.
func (m *ExtractionJobMutation) ImportedQuestions() (r int, exists bool) {
	v := m.imported_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedQuestions returns the old "imported_questions" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldImportedQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedQuestions: %w", err)
	}
	return oldValue.ImportedQuestions, nil
}

// AddImportedQuestions adds i to the "imported_questions" field.
func (m *ExtractionJobMutation) AddImportedQuestions(i int) {
	if m.addimported_questions != nil {
		*m.addimported_questions += i
	} else {
		m.addimported_questions = &i
	}
}

// AddedImportedQuestions returns the value that was added to the "imported_questions" field in this mutation.
func (m *ExtractionJobMutation) AddedImportedQuestions() (r int, exists bool) {
	v := m.addimported_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportedQuestions resets all changes to the "imported_questions" field.
func (m *ExtractionJobMutation) ResetImportedQuestions() {
	m.imported_questions = nil
	m.addimported_questions = nil
}

// SetProvider sets the "provider" field.
func (m *ExtractionJobMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ExtractionJobMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ExtractionJobMutation) ResetProvider() {
	m.provider = nil
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (m *ExtractionJobMutation) SetEstimatedCostCents(i int) {
	m.estimated_cost_cents = &i
	m.addestimated_cost_cents = nil
}

// EstimatedCostCents returns the value of the "estimated_cost_cents" field in the mutation.
func (m *ExtractionJobMutation) EstimatedCostCents() (r int, exists bool) {
	v := m.estimated_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostCents returns the old "estimated_cost_cents" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldEstimatedCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostCents: %w", err)
	}
	return oldValue.EstimatedCostCents, nil
}

// AddEstimatedCostCents adds i to the "estimated_cost_cents" field.
func (m *ExtractionJobMutation) AddEstimatedCostCents(i int) {
	if m.addestimated_cost_cents != nil {
		*m.addestimated_cost_cents += i
	} else {
		m.addestimated_cost_cents = &i
	}
}

// AddedEstimatedCostCents returns the value that was added to the "estimated_cost_cents" field in this mutation.
func (m *ExtractionJobMutation) AddedEstimatedCostCents() (r int, exists bool) {
	v := m.addestimated_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostCents resets all changes to the "estimated_cost_cents" field.
func (m *ExtractionJobMutation) ResetEstimatedCostCents() {
	m.estimated_cost_cents = nil
	m.addestimated_cost_cents = nil
}

// SetActualCostCents sets the "actual_cost_cents" field.
func (m *ExtractionJobMutation) SetActualCostCents(i int) {
	m.actual_cost_cents = &i
	m.addactual_cost_cents = nil
}

// ActualCostCents returns the value of the "actual_cost_cents" field in the mutation.
func (m *ExtractionJobMutation) ActualCostCents() (r int, exists bool) {
	v := m.actual_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldActualCostCents returns the old "actual_cost_cents" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldActualCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualCostCents: %w", err)
	}
	return oldValue.ActualCostCents, nil
}

// AddActualCostCents adds i to the "actual_cost_cents" field.
func (m *ExtractionJobMutation) AddActualCostCents(i int) {
	if m.addactual_cost_cents != nil {
		*m.addactual_cost_cents += i
	} else {
		m.addactual_cost_cents = &i
	}
}

// AddedActualCostCents returns the value that was added to the "actual_cost_cents" field in this mutation.
func (m *ExtractionJobMutation) AddedActualCostCents() (r int, exists bool) {
	v := m.addactual_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualCostCents resets all changes to the "actual_cost_cents" field.
func (m *ExtractionJobMutation) ResetActualCostCents() {
	m.actual_cost_cents = nil
	m.addactual_cost_cents = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExtractionJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[extractionjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, extractionjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExtractionJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExtractionJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExtractionJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[extractionjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExtractionJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, extractionjob.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetLastErrorPage sets the "last_error_page" field.
func (m *ExtractionJobMutation) SetLastErrorPage(i int) {
	m.last_error_page = &i
	m.addlast_error_page = nil
}

// LastErrorPage returns the value of the "last_error_page" field in the mutation.
func (m *ExtractionJobMutation) LastErrorPage() (r int, exists bool) {
	v := m.last_error_page
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorPage returns the old "last_error_page" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldLastErrorPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorPage: %w", err)
	}
	return oldValue.LastErrorPage, nil
}

// AddLastErrorPage adds i to the "last_error_page" field.
func (m *ExtractionJobMutation) AddLastErrorPage(i int) {
	if m.addlast_error_page != nil {
		*m.addlast_error_page += i
	} else {
		m.addlast_error_page = &i
	}
}

// AddedLastErrorPage returns the value that was added to the "last_error_page" field in this mutation.
func (m *ExtractionJobMutation) AddedLastErrorPage() (r int, exists bool) {
	v := m.addlast_error_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastErrorPage clears the value of the "last_error_page" field.
func (m *ExtractionJobMutation) ClearLastErrorPage() {
	m.last_error_page = nil
	m.addlast_error_page = nil
	m.clearedFields[extractionjob.FieldLastErrorPage] = struct{}{}
}

// LastErrorPageCleared returns if the "last_error_page" field was cleared in this mutation.
func (m *ExtractionJobMutation) LastErrorPageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldLastErrorPage]
	return ok
}

// ResetLastErrorPage resets all changes to the "last_error_page" field.
func (m *ExtractionJobMutation) ResetLastErrorPage() {
	m.last_error_page = nil
	m.addlast_error_page = nil
	delete(m.clearedFields, extractionjob.FieldLastErrorPage)
}

// SetRetryCount sets the "retry_count" field.
func (m *ExtractionJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ExtractionJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ExtractionJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ExtractionJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ExtractionJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetTaskID sets the "task_id" field.
func (m *ExtractionJobMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ExtractionJobMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ExtractionJobMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[extractionjob.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ExtractionJobMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ExtractionJobMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, extractionjob.FieldTaskID)
}

// SetTestConfigs sets the "test_configs" field.
func (m *ExtractionJobMutation) SetTestConfigs(jm json.RawMessage) {
	m.test_configs = &jm
	m.appendtest_configs = nil
}

// TestConfigs returns the value of the "test_configs" field in the mutation.
func (m *ExtractionJobMutation) TestConfigs() (r json.RawMessage, exists bool) {
	v := m.test_configs
	if v == nil {
		return
	}
	return *v, true
}

// OldTestConfigs returns the old "test_configs" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTestConfigs(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestConfigs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestConfigs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestConfigs: %w", err)
	}
	return oldValue.TestConfigs, nil
}

// AppendTestConfigs adds jm to the "test_configs" field.
func (m *ExtractionJobMutation) AppendTestConfigs(jm json.RawMessage) {
	m.appendtest_configs = append(m.appendtest_configs, jm...)
}

// AppendedTestConfigs returns the list of values that were appended to the "test_configs" field in this mutation.
func (m *ExtractionJobMutation) AppendedTestConfigs() (json.RawMessage, bool) {
	if len(m.appendtest_configs) == 0 {
		return nil, false
	}
	return m.appendtest_configs, true
}

// ClearTestConfigs clears the value of the "test_configs" field.
func (m *ExtractionJobMutation) ClearTestConfigs() {
	m.test_configs = nil
	m.appendtest_configs = nil
	m.clearedFields[extractionjob.FieldTestConfigs] = struct{}{}
}

// TestConfigsCleared returns if the "test_configs" field was cleared in this mutation.
func (m *ExtractionJobMutation) TestConfigsCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTestConfigs]
	return ok
}

// ResetTestConfigs resets all changes to the "test_configs" field.
func (m *ExtractionJobMutation) ResetTestConfigs() {
	m.test_configs = nil
	m.appendtest_configs = nil
	delete(m.clearedFields, extractionjob.FieldTestConfigs)
}

// SetCreatedTestIds sets the "created_test_ids" field.
func (m *ExtractionJobMutation) SetCreatedTestIds(u []uuid.UUID) {
	m.created_test_ids = &u
	m.appendcreated_test_ids = nil
}

// CreatedTestIds returns the value of the "created_test_ids" field in the mutation.
func (m *ExtractionJobMutation) CreatedTestIds() (r []uuid.UUID, exists bool) {
	v := m.created_test_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedTestIds returns the old "created_test_ids" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedTestIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedTestIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedTestIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedTestIds: %w", err)
	}
	return oldValue.CreatedTestIds, nil
}

// AppendCreatedTestIds adds u to the "created_test_ids" field.
func (m *ExtractionJobMutation) AppendCreatedTestIds(u []uuid.UUID) {
	m.appendcreated_test_ids = append(m.appendcreated_test_ids, u...)
}

// AppendedCreatedTestIds returns the list of values that were appended to the "created_test_ids" field in this mutation.
func (m *ExtractionJobMutation) AppendedCreatedTestIds() ([]uuid.UUID, bool) {
	if len(m.appendcreated_test_ids) == 0 {
		return nil, false
	}
	return m.appendcreated_test_ids, true
}

// ClearCreatedTestIds clears the value of the "created_test_ids" field.
func (m *ExtractionJobMutation) ClearCreatedTestIds() {
	m.created_test_ids = nil
	m.appendcreated_test_ids = nil
	m.clearedFields[extractionjob.FieldCreatedTestIds] = struct{}{}
}

// CreatedTestIdsCleared returns if the "created_test_ids" field was cleared in this mutation.
func (m *ExtractionJobMutation) CreatedTestIdsCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldCreatedTestIds]
	return ok
}

// ResetCreatedTestIds resets all changes to the "created_test_ids" field.
func (m *ExtractionJobMutation) ResetCreatedTestIds() {
	m.created_test_ids = nil
	m.appendcreated_test_ids = nil
	delete(m.clearedFields, extractionjob.FieldCreatedTestIds)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPageIDs adds the "pages" edge to the JobPage entity by ids.
func (m *ExtractionJobMutation) AddPageIDs(ids ...uuid.UUID) {
	if m.pages == nil {
		m.pages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the JobPage entity.
func (m *ExtractionJobMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the JobPage entity was cleared.
func (m *ExtractionJobMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the JobPage entity by IDs.
func (m *ExtractionJobMutation) RemovePageIDs(ids ...uuid.UUID) {
	if m.removedpages == nil {
		m.removedpages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the JobPage entity.
func (m *ExtractionJobMutation) RemovedPagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *ExtractionJobMutation) PagesIDs() (ids []uuid.UUID) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *ExtractionJobMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by ids.
func (m *ExtractionJobMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the ExtractedQuestion entity.
func (m *ExtractionJobMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the ExtractedQuestion entity was cleared.
func (m *ExtractionJobMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the ExtractedQuestion entity by IDs.
func (m *ExtractionJobMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the ExtractedQuestion entity.
func (m *ExtractionJobMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *ExtractionJobMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *ExtractionJobMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by ids.
func (m *ExtractionJobMutation) AddPassageIDs(ids ...uuid.UUID) {
	if m.passages == nil {
		m.passages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.passages[ids[i]] = struct{}{}
	}
}

// ClearPassages clears the "passages" edge to the ExtractedPassage entity.
func (m *ExtractionJobMutation) ClearPassages() {
	m.clearedpassages = true
}

// PassagesCleared reports if the "passages" edge to the ExtractedPassage entity was cleared.
func (m *ExtractionJobMutation) PassagesCleared() bool {
	return m.clearedpassages
}

// RemovePassageIDs removes the "passages" edge to the ExtractedPassage entity by IDs.
func (m *ExtractionJobMutation) RemovePassageIDs(ids ...uuid.UUID) {
	if m.removedpassages == nil {
		m.removedpassages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.passages, ids[i])
		m.removedpassages[ids[i]] = struct{}{}
	}
}

// RemovedPassages returns the removed IDs of the "passages" edge to the ExtractedPassage entity.
func (m *ExtractionJobMutation) RemovedPassagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpassages {
		ids = append(ids, id)
	}
	return
}

// PassagesIDs returns the "passages" edge IDs in the mutation.
func (m *ExtractionJobMutation) PassagesIDs() (ids []uuid.UUID) {
	for id := range m.passages {
		ids = append(ids, id)
	}
	return
}

// ResetPassages resets all changes to the "passages" edge.
func (m *ExtractionJobMutation) ResetPassages() {
	m.passages = nil
	m.clearedpassages = false
	m.removedpassages = nil
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.user_id != nil {
		fields = append(fields, extractionjob.FieldUserID)
	}
	if m.target_module_id != nil {
		fields = append(fields, extractionjob.FieldTargetModuleID)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.pdf_filename != nil {
		fields = append(fields, extractionjob.FieldPdfFilename)
	}
	if m.pdf_path != nil {
		fields = append(fields, extractionjob.FieldPdfPath)
	}
	if m.pdf_hash != nil {
		fields = append(fields, extractionjob.FieldPdfHash)
	}
	if m.total_pages != nil {
		fields = append(fields, extractionjob.FieldTotalPages)
	}
	if m.processed_pages != nil {
		fields = append(fields, extractionjob.FieldProcessedPages)
	}
	if m.question_pages != nil {
		fields = append(fields, extractionjob.FieldQuestionPages)
	}
	if m.skipped_pages != nil {
		fields = append(fields, extractionjob.FieldSkippedPages)
	}
	if m.failed_pages != nil {
		fields = append(fields, extractionjob.FieldFailedPages)
	}
	if m.extracted_questions != nil {
		fields = append(fields, extractionjob.FieldExtractedQuestions)
	}
	if m.approved_questions != nil {
		fields = append(fields, extractionjob.FieldApprovedQuestions)
	}
	if m.imported_questions != nil {
		fields = append(fields, extractionjob.FieldImportedQuestions)
	}
	if m.provider != nil {
		fields = append(fields, extractionjob.FieldProvider)
	}
	if m.estimated_cost_cents != nil {
		fields = append(fields, extractionjob.FieldEstimatedCostCents)
	}
	if m.actual_cost_cents != nil {
		fields = append(fields, extractionjob.FieldActualCostCents)
	}
	if m.started_at != nil {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, extractionjob.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.last_error_page != nil {
		fields = append(fields, extractionjob.FieldLastErrorPage)
	}
	if m.retry_count != nil {
		fields = append(fields, extractionjob.FieldRetryCount)
	}
	if m.task_id != nil {
		fields = append(fields, extractionjob.FieldTaskID)
	}
	if m.test_configs != nil {
		fields = append(fields, extractionjob.FieldTestConfigs)
	}
	if m.created_test_ids != nil {
		fields = append(fields, extractionjob.FieldCreatedTestIds)
	}
	if m.created_at != nil {
		fields = append(fields, extractionjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldUserID:
		return m.UserID()
	case extractionjob.FieldTargetModuleID:
		return m.TargetModuleID()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldPdfFilename:
		return m.PdfFilename()
	case extractionjob.FieldPdfPath:
		return m.PdfPath()
	case extractionjob.FieldPdfHash:
		return m.PdfHash()
	case extractionjob.FieldTotalPages:
		return m.TotalPages()
	case extractionjob.FieldProcessedPages:
		return m.ProcessedPages()
	case extractionjob.FieldQuestionPages:
		return m.QuestionPages()
	case extractionjob.FieldSkippedPages:
		return m.SkippedPages()
	case extractionjob.FieldFailedPages:
		return m.FailedPages()
	case extractionjob.FieldExtractedQuestions:
		return m.ExtractedQuestions()
	case extractionjob.FieldApprovedQuestions:
		return m.ApprovedQuestions()
	case extractionjob.FieldImportedQuestions:
		return m.ImportedQuestions()
	case extractionjob.FieldProvider:
		return m.Provider()
	case extractionjob.FieldEstimatedCostCents:
		return m.EstimatedCostCents()
	case extractionjob.FieldActualCostCents:
		return m.ActualCostCents()
	case extractionjob.FieldStartedAt:
		return m.StartedAt()
	case extractionjob.FieldCompletedAt:
		return m.CompletedAt()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldLastErrorPage:
		return m.LastErrorPage()
	case extractionjob.FieldRetryCount:
		return m.RetryCount()
	case extractionjob.FieldTaskID:
		return m.TaskID()
	case extractionjob.FieldTestConfigs:
		return m.TestConfigs()
	case extractionjob.FieldCreatedTestIds:
		return m.CreatedTestIds()
	case extractionjob.FieldCreatedAt:
		return m.CreatedAt()
	case extractionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldUserID:
		return m.OldUserID(ctx)
	case extractionjob.FieldTargetModuleID:
		return m.OldTargetModuleID(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldPdfFilename:
		return m.OldPdfFilename(ctx)
	case extractionjob.FieldPdfPath:
		return m.OldPdfPath(ctx)
	case extractionjob.FieldPdfHash:
		return m.OldPdfHash(ctx)
	case extractionjob.FieldTotalPages:
		return m.OldTotalPages(ctx)
	case extractionjob.FieldProcessedPages:
		return m.OldProcessedPages(ctx)
	case extractionjob.FieldQuestionPages:
		return m.OldQuestionPages(ctx)
	case extractionjob.FieldSkippedPages:
		return m.OldSkippedPages(ctx)
	case extractionjob.FieldFailedPages:
		return m.OldFailedPages(ctx)
	case extractionjob.FieldExtractedQuestions:
		return m.OldExtractedQuestions(ctx)
	case extractionjob.FieldApprovedQuestions:
		return m.OldApprovedQuestions(ctx)
	case extractionjob.FieldImportedQuestions:
		return m.OldImportedQuestions(ctx)
	case extractionjob.FieldProvider:
		return m.OldProvider(ctx)
	case extractionjob.FieldEstimatedCostCents:
		return m.OldEstimatedCostCents(ctx)
	case extractionjob.FieldActualCostCents:
		return m.OldActualCostCents(ctx)
	case extractionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldLastErrorPage:
		return m.OldLastErrorPage(ctx)
	case extractionjob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case extractionjob.FieldTaskID:
		return m.OldTaskID(ctx)
	case extractionjob.FieldTestConfigs:
		return m.OldTestConfigs(ctx)
	case extractionjob.FieldCreatedTestIds:
		return m.OldCreatedTestIds(ctx)
	case extractionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case extractionjob.FieldTargetModuleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetModuleID(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldPdfFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfFilename(v)
		return nil
	case extractionjob.FieldPdfPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfPath(v)
		return nil
	case extractionjob.FieldPdfHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfHash(v)
		return nil
	case extractionjob.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPages(v)
		return nil
	case extractionjob.FieldProcessedPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedPages(v)
		return nil
	case extractionjob.FieldQuestionPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionPages(v)
		return nil
	case extractionjob.FieldSkippedPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedPages(v)
		return nil
	case extractionjob.FieldFailedPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedPages(v)
		return nil
	case extractionjob.FieldExtractedQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedQuestions(v)
		return nil
	case extractionjob.FieldApprovedQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedQuestions(v)
		return nil
	case extractionjob.FieldImportedQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedQuestions(v)
		return nil
	case extractionjob.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case extractionjob.FieldEstimatedCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostCents(v)
		return nil
	case extractionjob.FieldActualCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualCostCents(v)
		return nil
	case extractionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldLastErrorPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorPage(v)
		return nil
	case extractionjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case extractionjob.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case extractionjob.FieldTestConfigs:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestConfigs(v)
		return nil
	case extractionjob.FieldCreatedTestIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedTestIds(v)
		return nil
	case extractionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_pages != nil {
		fields = append(fields, extractionjob.FieldTotalPages)
	}
	if m.addprocessed_pages != nil {
		fields = append(fields, extractionjob.FieldProcessedPages)
	}
	if m.addquestion_pages != nil {
		fields = append(fields, extractionjob.FieldQuestionPages)
	}
	if m.addskipped_pages != nil {
		fields = append(fields, extractionjob.FieldSkippedPages)
	}
	if m.addfailed_pages != nil {
		fields = append(fields, extractionjob.FieldFailedPages)
	}
	if m.addextracted_questions != nil {
		fields = append(fields, extractionjob.FieldExtractedQuestions)
	}
	if m.addapproved_questions != nil {
		fields = append(fields, extractionjob.FieldApprovedQuestions)
	}
	if m.addimported_questions != nil {
		fields = append(fields, extractionjob.FieldImportedQuestions)
	}
	if m.addestimated_cost_cents != nil {
		fields = append(fields, extractionjob.FieldEstimatedCostCents)
	}
	if m.addactual_cost_cents != nil {
		fields = append(fields, extractionjob.FieldActualCostCents)
	}
	if m.addlast_error_page != nil {
		fields = append(fields, extractionjob.FieldLastErrorPage)
	}
	if m.addretry_count != nil {
		fields = append(fields, extractionjob.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldTotalPages:
		return m.AddedTotalPages()
	case extractionjob.FieldProcessedPages:
		return m.AddedProcessedPages()
	case extractionjob.FieldQuestionPages:
		return m.AddedQuestionPages()
	case extractionjob.FieldSkippedPages:
		return m.AddedSkippedPages()
	case extractionjob.FieldFailedPages:
		return m.AddedFailedPages()
	case extractionjob.FieldExtractedQuestions:
		return m.AddedExtractedQuestions()
	case extractionjob.FieldApprovedQuestions:
		return m.AddedApprovedQuestions()
	case extractionjob.FieldImportedQuestions:
		return m.AddedImportedQuestions()
	case extractionjob.FieldEstimatedCostCents:
		return m.AddedEstimatedCostCents()
	case extractionjob.FieldActualCostCents:
		return m.AddedActualCostCents()
	case extractionjob.FieldLastErrorPage:
		return m.AddedLastErrorPage()
	case extractionjob.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPages(v)
		return nil
	case extractionjob.FieldProcessedPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedPages(v)
		return nil
	case extractionjob.FieldQuestionPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionPages(v)
		return nil
	case extractionjob.FieldSkippedPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkippedPages(v)
		return nil
	case extractionjob.FieldFailedPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedPages(v)
		return nil
	case extractionjob.FieldExtractedQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedQuestions(v)
		return nil
	case extractionjob.FieldApprovedQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApprovedQuestions(v)
		return nil
	case extractionjob.FieldImportedQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportedQuestions(v)
		return nil
	case extractionjob.FieldEstimatedCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostCents(v)
		return nil
	case extractionjob.FieldActualCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualCostCents(v)
		return nil
	case extractionjob.FieldLastErrorPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastErrorPage(v)
		return nil
	case extractionjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldTargetModuleID) {
		fields = append(fields, extractionjob.FieldTargetModuleID)
	}
	if m.FieldCleared(extractionjob.FieldStartedAt) {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.FieldCleared(extractionjob.FieldCompletedAt) {
		fields = append(fields, extractionjob.FieldCompletedAt)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldLastErrorPage) {
		fields = append(fields, extractionjob.FieldLastErrorPage)
	}
	if m.FieldCleared(extractionjob.FieldTaskID) {
		fields = append(fields, extractionjob.FieldTaskID)
	}
	if m.FieldCleared(extractionjob.FieldTestConfigs) {
		fields = append(fields, extractionjob.FieldTestConfigs)
	}
	if m.FieldCleared(extractionjob.FieldCreatedTestIds) {
		fields = append(fields, extractionjob.FieldCreatedTestIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldTargetModuleID:
		m.ClearTargetModuleID()
		return nil
	case extractionjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case extractionjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldLastErrorPage:
		m.ClearLastErrorPage()
		return nil
	case extractionjob.FieldTaskID:
		m.ClearTaskID()
		return nil
	case extractionjob.FieldTestConfigs:
		m.ClearTestConfigs()
		return nil
	case extractionjob.FieldCreatedTestIds:
		m.ClearCreatedTestIds()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldUserID:
		m.ResetUserID()
		return nil
	case extractionjob.FieldTargetModuleID:
		m.ResetTargetModuleID()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldPdfFilename:
		m.ResetPdfFilename()
		return nil
	case extractionjob.FieldPdfPath:
		m.ResetPdfPath()
		return nil
	case extractionjob.FieldPdfHash:
		m.ResetPdfHash()
		return nil
	case extractionjob.FieldTotalPages:
		m.ResetTotalPages()
		return nil
	case extractionjob.FieldProcessedPages:
		m.ResetProcessedPages()
		return nil
	case extractionjob.FieldQuestionPages:
		m.ResetQuestionPages()
		return nil
	case extractionjob.FieldSkippedPages:
		m.ResetSkippedPages()
		return nil
	case extractionjob.FieldFailedPages:
		m.ResetFailedPages()
		return nil
	case extractionjob.FieldExtractedQuestions:
		m.ResetExtractedQuestions()
		return nil
	case extractionjob.FieldApprovedQuestions:
		m.ResetApprovedQuestions()
		return nil
	case extractionjob.FieldImportedQuestions:
		m.ResetImportedQuestions()
		return nil
	case extractionjob.FieldProvider:
		m.ResetProvider()
		return nil
	case extractionjob.FieldEstimatedCostCents:
		m.ResetEstimatedCostCents()
		return nil
	case extractionjob.FieldActualCostCents:
		m.ResetActualCostCents()
		return nil
	case extractionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldLastErrorPage:
		m.ResetLastErrorPage()
		return nil
	case extractionjob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case extractionjob.FieldTaskID:
		m.ResetTaskID()
		return nil
	case extractionjob.FieldTestConfigs:
		m.ResetTestConfigs()
		return nil
	case extractionjob.FieldCreatedTestIds:
		m.ResetCreatedTestIds()
		return nil
	case extractionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.pages != nil {
		edges = append(edges, extractionjob.EdgePages)
	}
	if m.questions != nil {
		edges = append(edges, extractionjob.EdgeQuestions)
	}
	if m.passages != nil {
		edges = append(edges, extractionjob.EdgePassages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgePassages:
		ids := make([]ent.Value, 0, len(m.passages))
		for id := range m.passages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpages != nil {
		edges = append(edges, extractionjob.EdgePages)
	}
	if m.removedquestions != nil {
		edges = append(edges, extractionjob.EdgeQuestions)
	}
	if m.removedpassages != nil {
		edges = append(edges, extractionjob.EdgePassages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgePassages:
		ids := make([]ent.Value, 0, len(m.removedpassages))
		for id := range m.removedpassages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpages {
		edges = append(edges, extractionjob.EdgePages)
	}
	if m.clearedquestions {
		edges = append(edges, extractionjob.EdgeQuestions)
	}
	if m.clearedpassages {
		edges = append(edges, extractionjob.EdgePassages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgePages:
		return m.clearedpages
	case extractionjob.EdgeQuestions:
		return m.clearedquestions
	case extractionjob.EdgePassages:
		return m.clearedpassages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgePages:
		m.ResetPages()
		return nil
	case extractionjob.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case extractionjob.EdgePassages:
		m.ResetPassages()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// JobPageMutation represents an operation that mutates the JobPage nodes in the graph.
type JobPageMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	page_number               *int
	addpage_number            *int
	markdown                  *string
	is_question_page          *bool
	state                     *string
	image_png                 *[]byte
	ocr_cost_cents            *int
	addocr_cost_cents         *int
	structuring_cost_cents    *int
	addstructuring_cost_cents *int
	error_message             *string
	retry_count               *int
	addretry_count            *int
	last_error_at             *time.Time
	provider_used             *string
	detected_figures          *json.RawMessage
	appenddetected_figures    json.RawMessage
	clearedFields             map[string]struct{}
	job                       *uuid.UUID
	clearedjob                bool
	questions                 map[uuid.UUID]struct{}
	removedquestions          map[uuid.UUID]struct{}
	clearedquestions          bool
	passages                  map[uuid.UUID]struct{}
	removedpassages           map[uuid.UUID]struct{}
	clearedpassages           bool
	done                      bool
	oldValue                  func(context.Context) (*JobPage, error)
	predicates                []predicate.JobPage
}

var _ ent.Mutation = (*JobPageMutation)(nil)

// jobpageOption allows management of the mutation configuration using functional options.
type jobpageOption func(*JobPageMutation)

// newJobPageMutation creates new mutation for the JobPage entity.
func newJobPageMutation(c config, op Op, opts ...jobpageOption) *JobPageMutation {
	m := &JobPageMutation{
		config:        c,
		op:            op,
		typ:           TypeJobPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobPageID sets the ID field of the mutation.
func withJobPageID(id uuid.UUID) jobpageOption {
	return func(m *JobPageMutation) {
		var (
			err   error
			once  sync.Once
			value *JobPage
		)
		m.oldValue = func(ctx context.Context) (*JobPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobPage sets the old JobPage of the mutation.
func withJobPage(node *JobPage) jobpageOption {
	return func(m *JobPageMutation) {
		m.oldValue = func(context.Context) (*JobPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobPage entities.
func (m *JobPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobPageMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobPageMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobPageMutation) ResetJobID() {
	m.job = nil
}

// SetPageNumber sets the "page_number" field.
func (m *JobPageMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *JobPageMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *JobPageMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *JobPageMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *JobPageMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetMarkdown sets the "markdown" field.
func (m *JobPageMutation) SetMarkdown(s string) {
	m.markdown = &s
}

// Markdown returns the value of the "markdown" field in the mutation.
func (m *JobPageMutation) Markdown() (r string, exists bool) {
	v := m.markdown
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdown returns the old "markdown" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldMarkdown(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdown: %w", err)
	}
	return oldValue.Markdown, nil
}

// ClearMarkdown clears the value of the "markdown" field.
func (m *JobPageMutation) ClearMarkdown() {
	m.markdown = nil
	m.clearedFields[jobpage.FieldMarkdown] = struct{}{}
}

// MarkdownCleared returns if the "markdown" field was cleared in this mutation.
func (m *JobPageMutation) MarkdownCleared() bool {
	_, ok := m.clearedFields[jobpage.FieldMarkdown]
	return ok
}

// ResetMarkdown resets all changes to the "markdown" field.
func (m *JobPageMutation) ResetMarkdown() {
	m.markdown = nil
	delete(m.clearedFields, jobpage.FieldMarkdown)
}

// SetIsQuestionPage sets the "is_question_page" field.
func (m *JobPageMutation) SetIsQuestionPage(b bool) {
	m.is_question_page = &b
}

// IsQuestionPage returns the value of the "is_question_page" field in the mutation.
func (m *JobPageMutation) IsQuestionPage() (r bool, exists bool) {
	v := m.is_question_page
	if v == nil {
		return
	}
	return *v, true
}

// OldIsQuestionPage returns the old "is_question_page" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldIsQuestionPage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsQuestionPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsQuestionPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsQuestionPage: %w", err)
	}
	return oldValue.IsQuestionPage, nil
}

// ResetIsQuestionPage resets all changes to the "is_question_page" field.
func (m *JobPageMutation) ResetIsQuestionPage() {
	m.is_question_page = nil
}

// SetState sets the "state" field.
func (m *JobPageMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *JobPageMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *JobPageMutation) ResetState() {
	m.state = nil
}

// SetImagePng sets the "image_png" field.
func (m *JobPageMutation) SetImagePng(b []byte) {
	m.image_png = &b
}

// ImagePng returns the value of the "image_png" field in the mutation.
func (m *JobPageMutation) ImagePng() (r []byte, exists bool) {
	v := m.image_png
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePng returns the old "image_png" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldImagePng(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePng: %w", err)
	}
	return oldValue.ImagePng, nil
}

// ClearImagePng clears the value of the "image_png" field.
func (m *JobPageMutation) ClearImagePng() {
	m.image_png = nil
	m.clearedFields[jobpage.FieldImagePng] = struct{}{}
}

// ImagePngCleared returns if the "image_png" field was cleared in this mutation.
func (m *JobPageMutation) ImagePngCleared() bool {
	_, ok := m.clearedFields[jobpage.FieldImagePng]
	return ok
}

// ResetImagePng resets all changes to the "image_png" field.
func (m *JobPageMutation) ResetImagePng() {
	m.image_png = nil
	delete(m.clearedFields, jobpage.FieldImagePng)
}

// SetOcrCostCents sets the "ocr_cost_cents" field.
func (m *JobPageMutation) SetOcrCostCents(i int) {
	m.ocr_cost_cents = &i
	m.addocr_cost_cents = nil
}

// OcrCostCents returns the value of the "ocr_cost_cents" field in the mutation.
func (m *JobPageMutation) OcrCostCents() (r int, exists bool) {
	v := m.ocr_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrCostCents returns the old "ocr_cost_cents" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldOcrCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrCostCents: %w", err)
	}
	return oldValue.OcrCostCents, nil
}

// AddOcrCostCents adds i to the "ocr_cost_cents" field.
func (m *JobPageMutation) AddOcrCostCents(i int) {
	if m.addocr_cost_cents != nil {
		*m.addocr_cost_cents += i
	} else {
		m.addocr_cost_cents = &i
	}
}

// AddedOcrCostCents returns the value that was added to the "ocr_cost_cents" field in this mutation.
func (m *JobPageMutation) AddedOcrCostCents() (r int, exists bool) {
	v := m.addocr_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetOcrCostCents resets all changes to the "ocr_cost_cents" field.
func (m *JobPageMutation) ResetOcrCostCents() {
	m.ocr_cost_cents = nil
	m.addocr_cost_cents = nil
}

// SetStructuringCostCents sets the "structuring_cost_cents" field.
func (m *JobPageMutation) SetStructuringCostCents(i int) {
	m.structuring_cost_cents = &i
	m.addstructuring_cost_cents = nil
}

// StructuringCostCents returns the value of the "structuring_cost_cents" field in the mutation.
func (m *JobPageMutation) StructuringCostCents() (r int, exists bool) {
	v := m.structuring_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuringCostCents returns the old "structuring_cost_cents" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldStructuringCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuringCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuringCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuringCostCents: %w", err)
	}
	return oldValue.StructuringCostCents, nil
}

// AddStructuringCostCents adds i to the "structuring_cost_cents" field.
func (m *JobPageMutation) AddStructuringCostCents(i int) {
	if m.addstructuring_cost_cents != nil {
		*m.addstructuring_cost_cents += i
	} else {
		m.addstructuring_cost_cents = &i
	}
}

// AddedStructuringCostCents returns the value that was added to the "structuring_cost_cents" field in this mutation.
func (m *JobPageMutation) AddedStructuringCostCents() (r int, exists bool) {
	v := m.addstructuring_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetStructuringCostCents resets all changes to the "structuring_cost_cents" field.
func (m *JobPageMutation) ResetStructuringCostCents() {
	m.structuring_cost_cents = nil
	m.addstructuring_cost_cents = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *JobPageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobPageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobPageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[jobpage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobPageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[jobpage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobPageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, jobpage.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *JobPageMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *JobPageMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *JobPageMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *JobPageMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *JobPageMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastErrorAt sets the "last_error_at" field.
func (m *JobPageMutation) SetLastErrorAt(t time.Time) {
	m.last_error_at = &t
}

// LastErrorAt returns the value of the "last_error_at" field in the mutation.
func (m *JobPageMutation) LastErrorAt() (r time.Time, exists bool) {
	v := m.last_error_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorAt returns the old "last_error_at" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldLastErrorAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorAt: %w", err)
	}
	return oldValue.LastErrorAt, nil
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (m *JobPageMutation) ClearLastErrorAt() {
	m.last_error_at = nil
	m.clearedFields[jobpage.FieldLastErrorAt] = struct{}{}
}

// LastErrorAtCleared returns if the "last_error_at" field was cleared in this mutation.
func (m *JobPageMutation) LastErrorAtCleared() bool {
	_, ok := m.clearedFields[jobpage.FieldLastErrorAt]
	return ok
}

// ResetLastErrorAt resets all changes to the "last_error_at" field.
func (m *JobPageMutation) ResetLastErrorAt() {
	m.last_error_at = nil
	delete(m.clearedFields, jobpage.FieldLastErrorAt)
}

// SetProviderUsed sets the "provider_used" field.
func (m *JobPageMutation) SetProviderUsed(s string) {
	m.provider_used = &s
}

// ProviderUsed returns the value of the "provider_used" field in the mutation.
func (m *JobPageMutation) ProviderUsed() (r string, exists bool) {
	v := m.provider_used
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderUsed returns the old "provider_used" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldProviderUsed(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderUsed: %w", err)
	}
	return oldValue.ProviderUsed, nil
}

// ClearProviderUsed clears the value of the "provider_used" field.
func (m *JobPageMutation) ClearProviderUsed() {
	m.provider_used = nil
	m.clearedFields[jobpage.FieldProviderUsed] = struct{}{}
}

// ProviderUsedCleared returns if the "provider_used" field was cleared in this mutation.
func (m *JobPageMutation) ProviderUsedCleared() bool {
	_, ok := m.clearedFields[jobpage.FieldProviderUsed]
	return ok
}

// ResetProviderUsed resets all changes to the "provider_used" field.
func (m *JobPageMutation) ResetProviderUsed() {
	m.provider_used = nil
	delete(m.clearedFields, jobpage.FieldProviderUsed)
}

// SetDetectedFigures sets the "detected_figures" field.
func (m *JobPageMutation) SetDetectedFigures(jm json.RawMessage) {
	m.detected_figures = &jm
	m.appenddetected_figures = nil
}

// DetectedFigures returns the value of the "detected_figures" field in the mutation.
func (m *JobPageMutation) DetectedFigures() (r json.RawMessage, exists bool) {
	v := m.detected_figures
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedFigures returns the old "detected_figures" field's value of the JobPage entity.
// If the JobPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPageMutation) OldDetectedFigures(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedFigures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedFigures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedFigures: %w", err)
	}
	return oldValue.DetectedFigures, nil
}

// AppendDetectedFigures adds jm to the "detected_figures" field.
func (m *JobPageMutation) AppendDetectedFigures(jm json.RawMessage) {
	m.appenddetected_figures = append(m.appenddetected_figures, jm...)
}

// AppendedDetectedFigures returns the list of values that were appended to the "detected_figures" field in this mutation.
func (m *JobPageMutation) AppendedDetectedFigures() (json.RawMessage, bool) {
	if len(m.appenddetected_figures) == 0 {
		return nil, false
	}
	return m.appenddetected_figures, true
}

// ClearDetectedFigures clears the value of the "detected_figures" field.
func (m *JobPageMutation) ClearDetectedFigures() {
	m.detected_figures = nil
	m.appenddetected_figures = nil
	m.clearedFields[jobpage.FieldDetectedFigures] = struct{}{}
}

// DetectedFiguresCleared returns if the "detected_figures" field was cleared in this mutation.
func (m *JobPageMutation) DetectedFiguresCleared() bool {
	_, ok := m.clearedFields[jobpage.FieldDetectedFigures]
	return ok
}

// ResetDetectedFigures resets all changes to the "detected_figures" field.
func (m *JobPageMutation) ResetDetectedFigures() {
	m.detected_figures = nil
	m.appenddetected_figures = nil
	delete(m.clearedFields, jobpage.FieldDetectedFigures)
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *JobPageMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobpage.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *JobPageMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobPageMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobPageMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddQuestionIDs adds the "questions" edge to the ExtractedQuestion entity by ids.
func (m *JobPageMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the ExtractedQuestion entity.
func (m *JobPageMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the ExtractedQuestion entity was cleared.
func (m *JobPageMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the ExtractedQuestion entity by IDs.
func (m *JobPageMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the ExtractedQuestion entity.
func (m *JobPageMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *JobPageMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *JobPageMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddPassageIDs adds the "passages" edge to the ExtractedPassage entity by ids.
func (m *JobPageMutation) AddPassageIDs(ids ...uuid.UUID) {
	if m.passages == nil {
		m.passages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.passages[ids[i]] = struct{}{}
	}
}

// ClearPassages clears the "passages" edge to the ExtractedPassage entity.
func (m *JobPageMutation) ClearPassages() {
	m.clearedpassages = true
}

// PassagesCleared reports if the "passages" edge to the ExtractedPassage entity was cleared.
func (m *JobPageMutation) PassagesCleared() bool {
	return m.clearedpassages
}

// RemovePassageIDs removes the "passages" edge to the ExtractedPassage entity by IDs.
func (m *JobPageMutation) RemovePassageIDs(ids ...uuid.UUID) {
	if m.removedpassages == nil {
		m.removedpassages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.passages, ids[i])
		m.removedpassages[ids[i]] = struct{}{}
	}
}

// RemovedPassages returns the removed IDs of the "passages" edge to the ExtractedPassage entity.
func (m *JobPageMutation) RemovedPassagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpassages {
		ids = append(ids, id)
	}
	return
}

// PassagesIDs returns the "passages" edge IDs in the mutation.
func (m *JobPageMutation) PassagesIDs() (ids []uuid.UUID) {
	for id := range m.passages {
		ids = append(ids, id)
	}
	return
}

// ResetPassages resets all changes to the "passages" edge.
func (m *JobPageMutation) ResetPassages() {
	m.passages = nil
	m.clearedpassages = false
	m.removedpassages = nil
}

// Where appends a list predicates to the JobPageMutation builder.
func (m *JobPageMutation) Where(ps ...predicate.JobPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobPage).
func (m *JobPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobPageMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, jobpage.FieldJobID)
	}
	if m.page_number != nil {
		fields = append(fields, jobpage.FieldPageNumber)
	}
	if m.markdown != nil {
		fields = append(fields, jobpage.FieldMarkdown)
	}
	if m.is_question_page != nil {
		fields = append(fields, jobpage.FieldIsQuestionPage)
	}
	if m.state != nil {
		fields = append(fields, jobpage.FieldState)
	}
	if m.image_png != nil {
		fields = append(fields, jobpage.FieldImagePng)
	}
	if m.ocr_cost_cents != nil {
		fields = append(fields, jobpage.FieldOcrCostCents)
	}
	if m.structuring_cost_cents != nil {
		fields = append(fields, jobpage.FieldStructuringCostCents)
	}
	if m.error_message != nil {
		fields = append(fields, jobpage.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, jobpage.FieldRetryCount)
	}
	if m.last_error_at != nil {
		fields = append(fields, jobpage.FieldLastErrorAt)
	}
	if m.provider_used != nil {
		fields = append(fields, jobpage.FieldProviderUsed)
	}
	if m.detected_figures != nil {
		fields = append(fields, jobpage.FieldDetectedFigures)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobpage.FieldJobID:
		return m.JobID()
	case jobpage.FieldPageNumber:
		return m.PageNumber()
	case jobpage.FieldMarkdown:
		return m.Markdown()
	case jobpage.FieldIsQuestionPage:
		return m.IsQuestionPage()
	case jobpage.FieldState:
		return m.State()
	case jobpage.FieldImagePng:
		return m.ImagePng()
	case jobpage.FieldOcrCostCents:
		return m.OcrCostCents()
	case jobpage.FieldStructuringCostCents:
		return m.StructuringCostCents()
	case jobpage.FieldErrorMessage:
		return m.ErrorMessage()
	case jobpage.FieldRetryCount:
		return m.RetryCount()
	case jobpage.FieldLastErrorAt:
		return m.LastErrorAt()
	case jobpage.FieldProviderUsed:
		return m.ProviderUsed()
	case jobpage.FieldDetectedFigures:
		return m.DetectedFigures()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobpage.FieldJobID:
		return m.OldJobID(ctx)
	case jobpage.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case jobpage.FieldMarkdown:
		return m.OldMarkdown(ctx)
	case jobpage.FieldIsQuestionPage:
		return m.OldIsQuestionPage(ctx)
	case jobpage.FieldState:
		return m.OldState(ctx)
	case jobpage.FieldImagePng:
		return m.OldImagePng(ctx)
	case jobpage.FieldOcrCostCents:
		return m.OldOcrCostCents(ctx)
	case jobpage.FieldStructuringCostCents:
		return m.OldStructuringCostCents(ctx)
	case jobpage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case jobpage.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case jobpage.FieldLastErrorAt:
		return m.OldLastErrorAt(ctx)
	case jobpage.FieldProviderUsed:
		return m.OldProviderUsed(ctx)
	case jobpage.FieldDetectedFigures:
		return m.OldDetectedFigures(ctx)
	}
	return nil, fmt.Errorf("unknown JobPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobpage.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobpage.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case jobpage.FieldMarkdown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdown(v)
		return nil
	case jobpage.FieldIsQuestionPage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsQuestionPage(v)
		return nil
	case jobpage.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case jobpage.FieldImagePng:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePng(v)
		return nil
	case jobpage.FieldOcrCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrCostCents(v)
		return nil
	case jobpage.FieldStructuringCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuringCostCents(v)
		return nil
	case jobpage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case jobpage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case jobpage.FieldLastErrorAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorAt(v)
		return nil
	case jobpage.FieldProviderUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderUsed(v)
		return nil
	case jobpage.FieldDetectedFigures:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedFigures(v)
		return nil
	}
	return fmt.Errorf("unknown JobPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobPageMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, jobpage.FieldPageNumber)
	}
	if m.addocr_cost_cents != nil {
		fields = append(fields, jobpage.FieldOcrCostCents)
	}
	if m.addstructuring_cost_cents != nil {
		fields = append(fields, jobpage.FieldStructuringCostCents)
	}
	if m.addretry_count != nil {
		fields = append(fields, jobpage.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobPageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobpage.FieldPageNumber:
		return m.AddedPageNumber()
	case jobpage.FieldOcrCostCents:
		return m.AddedOcrCostCents()
	case jobpage.FieldStructuringCostCents:
		return m.AddedStructuringCostCents()
	case jobpage.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobpage.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case jobpage.FieldOcrCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrCostCents(v)
		return nil
	case jobpage.FieldStructuringCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStructuringCostCents(v)
		return nil
	case jobpage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown JobPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobpage.FieldMarkdown) {
		fields = append(fields, jobpage.FieldMarkdown)
	}
	if m.FieldCleared(jobpage.FieldImagePng) {
		fields = append(fields, jobpage.FieldImagePng)
	}
	if m.FieldCleared(jobpage.FieldErrorMessage) {
		fields = append(fields, jobpage.FieldErrorMessage)
	}
	if m.FieldCleared(jobpage.FieldLastErrorAt) {
		fields = append(fields, jobpage.FieldLastErrorAt)
	}
	if m.FieldCleared(jobpage.FieldProviderUsed) {
		fields = append(fields, jobpage.FieldProviderUsed)
	}
	if m.FieldCleared(jobpage.FieldDetectedFigures) {
		fields = append(fields, jobpage.FieldDetectedFigures)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobPageMutation) ClearField(name string) error {
	switch name {
	case jobpage.FieldMarkdown:
		m.ClearMarkdown()
		return nil
	case jobpage.FieldImagePng:
		m.ClearImagePng()
		return nil
	case jobpage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case jobpage.FieldLastErrorAt:
		m.ClearLastErrorAt()
		return nil
	case jobpage.FieldProviderUsed:
		m.ClearProviderUsed()
		return nil
	case jobpage.FieldDetectedFigures:
		m.ClearDetectedFigures()
		return nil
	}
	return fmt.Errorf("unknown JobPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobPageMutation) ResetField(name string) error {
	switch name {
	case jobpage.FieldJobID:
		m.ResetJobID()
		return nil
	case jobpage.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case jobpage.FieldMarkdown:
		m.ResetMarkdown()
		return nil
	case jobpage.FieldIsQuestionPage:
		m.ResetIsQuestionPage()
		return nil
	case jobpage.FieldState:
		m.ResetState()
		return nil
	case jobpage.FieldImagePng:
		m.ResetImagePng()
		return nil
	case jobpage.FieldOcrCostCents:
		m.ResetOcrCostCents()
		return nil
	case jobpage.FieldStructuringCostCents:
		m.ResetStructuringCostCents()
		return nil
	case jobpage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case jobpage.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case jobpage.FieldLastErrorAt:
		m.ResetLastErrorAt()
		return nil
	case jobpage.FieldProviderUsed:
		m.ResetProviderUsed()
		return nil
	case jobpage.FieldDetectedFigures:
		m.ResetDetectedFigures()
		return nil
	}
	return fmt.Errorf("unknown JobPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job != nil {
		edges = append(edges, jobpage.EdgeJob)
	}
	if m.questions != nil {
		edges = append(edges, jobpage.EdgeQuestions)
	}
	if m.passages != nil {
		edges = append(edges, jobpage.EdgePassages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobpage.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobpage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case jobpage.EdgePassages:
		ids := make([]ent.Value, 0, len(m.passages))
		for id := range m.passages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedquestions != nil {
		edges = append(edges, jobpage.EdgeQuestions)
	}
	if m.removedpassages != nil {
		edges = append(edges, jobpage.EdgePassages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case jobpage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case jobpage.EdgePassages:
		ids := make([]ent.Value, 0, len(m.removedpassages))
		for id := range m.removedpassages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob {
		edges = append(edges, jobpage.EdgeJob)
	}
	if m.clearedquestions {
		edges = append(edges, jobpage.EdgeQuestions)
	}
	if m.clearedpassages {
		edges = append(edges, jobpage.EdgePassages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobPageMutation) EdgeCleared(name string) bool {
	switch name {
	case jobpage.EdgeJob:
		return m.clearedjob
	case jobpage.EdgeQuestions:
		return m.clearedquestions
	case jobpage.EdgePassages:
		return m.clearedpassages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobPageMutation) ClearEdge(name string) error {
	switch name {
	case jobpage.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobPageMutation) ResetEdge(name string) error {
	switch name {
	case jobpage.EdgeJob:
		m.ResetJob()
		return nil
	case jobpage.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case jobpage.EdgePassages:
		m.ResetPassages()
		return nil
	}
	return fmt.Errorf("unknown JobPage edge %s", name)
}

// PassageMutation represents an operation that mutates the Passage nodes in the graph.
type PassageMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	title            *string
	content          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	questions        map[uuid.UUID]struct{}
	removedquestions map[uuid.UUID]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*Passage, error)
	predicates       []predicate.Passage
}

var _ ent.Mutation = (*PassageMutation)(nil)

// passageOption allows management of the mutation configuration using functional options.
type passageOption func(*PassageMutation)

// newPassageMutation creates new mutation for the Passage entity.
func newPassageMutation(c config, op Op, opts ...passageOption) *PassageMutation {
	m := &PassageMutation{
		config:        c,
		op:            op,
		typ:           TypePassage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPassageID sets the ID field of the mutation.
func withPassageID(id uuid.UUID) passageOption {
	return func(m *PassageMutation) {
		var (
			err   error
			once  sync.Once
			value *Passage
		)
		m.oldValue = func(ctx context.Context) (*Passage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Passage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPassage sets the old Passage of the mutation.
func withPassage(node *Passage) passageOption {
	return func(m *PassageMutation) {
		m.oldValue = func(context.Context) (*Passage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PassageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PassageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Passage entities.
func (m *PassageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PassageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PassageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Passage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *PassageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PassageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Passage entity.
// If the Passage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassageMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *PassageMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[passage.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *PassageMutation) TitleCleared() bool {
	_, ok := m.clearedFields[passage.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *PassageMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, passage.FieldTitle)
}

// SetContent sets the "content" field.
func (m *PassageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PassageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Passage entity.
// If the Passage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PassageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PassageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PassageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Passage entity.
// If the Passage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PassageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *PassageMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *PassageMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *PassageMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *PassageMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *PassageMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *PassageMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *PassageMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the PassageMutation builder.
func (m *PassageMutation) Where(ps ...predicate.Passage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PassageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PassageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Passage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PassageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PassageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Passage).
func (m *PassageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PassageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.title != nil {
		fields = append(fields, passage.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, passage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, passage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PassageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passage.FieldTitle:
		return m.Title()
	case passage.FieldContent:
		return m.Content()
	case passage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PassageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passage.FieldTitle:
		return m.OldTitle(ctx)
	case passage.FieldContent:
		return m.OldContent(ctx)
	case passage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Passage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case passage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case passage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Passage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PassageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PassageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Passage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PassageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(passage.FieldTitle) {
		fields = append(fields, passage.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PassageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PassageMutation) ClearField(name string) error {
	switch name {
	case passage.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Passage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PassageMutation) ResetField(name string) error {
	switch name {
	case passage.FieldTitle:
		m.ResetTitle()
		return nil
	case passage.FieldContent:
		m.ResetContent()
		return nil
	case passage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Passage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PassageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.questions != nil {
		edges = append(edges, passage.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PassageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case passage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PassageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedquestions != nil {
		edges = append(edges, passage.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PassageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case passage.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PassageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestions {
		edges = append(edges, passage.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PassageMutation) EdgeCleared(name string) bool {
	switch name {
	case passage.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PassageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Passage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PassageMutation) ResetEdge(name string) error {
	switch name {
	case passage.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Passage edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	question_number      *int
	addquestion_number   *int
	question_text        *string
	question_type        *string
	options              *json.RawMessage
	appendoptions        json.RawMessage
	table_data           *json.RawMessage
	appendtable_data     json.RawMessage
	correct_answer       *[]string
	appendcorrect_answer []string
	explanation          *string
	difficulty           *string
	domain               *string
	skill_tags           *[]string
	appendskill_tags     []string
	image_url            *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	module               *uuid.UUID
	clearedmodule        bool
	passage              *uuid.UUID
	clearedpassage       bool
	done                 bool
	oldValue             func(context.Context) (*Question, error)
	predicates           []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModuleID sets the "module_id" field.
func (m *QuestionMutation) SetModuleID(u uuid.UUID) {
	m.module = &u
}

// ModuleID returns the value of the "module_id" field in the mutation.
func (m *QuestionMutation) ModuleID() (r uuid.UUID, exists bool) {
	v := m.module
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleID returns the old "module_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldModuleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleID: %w", err)
	}
	return oldValue.ModuleID, nil
}

// ResetModuleID resets all changes to the "module_id" field.
func (m *QuestionMutation) ResetModuleID() {
	m.module = nil
}

// SetQuestionNumber sets the "question_number" field.
func (m *QuestionMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *QuestionMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *QuestionMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *QuestionMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *QuestionMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
}

// SetQuestionText sets the "question_text" field.
func (m *QuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *QuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *QuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetPassageID sets the "passage_id" field.
func (m *QuestionMutation) SetPassageID(u uuid.UUID) {
	m.passage = &u
}

// PassageID returns the value of the "passage_id" field in the mutation.
func (m *QuestionMutation) PassageID() (r uuid.UUID, exists bool) {
	v := m.passage
	if v == nil {
		return
	}
	return *v, true
}

// OldPassageID returns the old "passage_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPassageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassageID: %w", err)
	}
	return oldValue.PassageID, nil
}

// ClearPassageID clears the value of the "passage_id" field.
func (m *QuestionMutation) ClearPassageID() {
	m.passage = nil
	m.clearedFields[question.FieldPassageID] = struct{}{}
}

// PassageIDCleared returns if the "passage_id" field was cleared in this mutation.
func (m *QuestionMutation) PassageIDCleared() bool {
	_, ok := m.clearedFields[question.FieldPassageID]
	return ok
}

// ResetPassageID resets all changes to the "passage_id" field.
func (m *QuestionMutation) ResetPassageID() {
	m.passage = nil
	delete(m.clearedFields, question.FieldPassageID)
}

// SetOptions sets the "options" field.
func (m *QuestionMutation) SetOptions(jm json.RawMessage) {
	m.options = &jm
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *QuestionMutation) Options() (r json.RawMessage, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOptions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds jm to the "options" field.
func (m *QuestionMutation) AppendOptions(jm json.RawMessage) {
	m.appendoptions = append(m.appendoptions, jm...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *QuestionMutation) AppendedOptions() (json.RawMessage, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *QuestionMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[question.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *QuestionMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[question.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, question.FieldOptions)
}

// SetTableData sets the "table_data" field.
func (m *QuestionMutation) SetTableData(jm json.RawMessage) {
	m.table_data = &jm
	m.appendtable_data = nil
}

// TableData returns the value of the "table_data" field in the mutation.
func (m *QuestionMutation) TableData() (r json.RawMessage, exists bool) {
	v := m.table_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTableData returns the old "table_data" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTableData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableData: %w", err)
	}
	return oldValue.TableData, nil
}

// AppendTableData adds jm to the "table_data" field.
func (m *QuestionMutation) AppendTableData(jm json.RawMessage) {
	m.appendtable_data = append(m.appendtable_data, jm...)
}

// AppendedTableData returns the list of values that were appended to the "table_data" field in this mutation.
func (m *QuestionMutation) AppendedTableData() (json.RawMessage, bool) {
	if len(m.appendtable_data) == 0 {
		return nil, false
	}
	return m.appendtable_data, true
}

// ClearTableData clears the value of the "table_data" field.
func (m *QuestionMutation) ClearTableData() {
	m.table_data = nil
	m.appendtable_data = nil
	m.clearedFields[question.FieldTableData] = struct{}{}
}

// TableDataCleared returns if the "table_data" field was cleared in this mutation.
func (m *QuestionMutation) TableDataCleared() bool {
	_, ok := m.clearedFields[question.FieldTableData]
	return ok
}

// ResetTableData resets all changes to the "table_data" field.
func (m *QuestionMutation) ResetTableData() {
	m.table_data = nil
	m.appendtable_data = nil
	delete(m.clearedFields, question.FieldTableData)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuestionMutation) SetCorrectAnswer(s []string) {
	m.correct_answer = &s
	m.appendcorrect_answer = nil
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuestionMutation) CorrectAnswer() (r []string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectAnswer(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// AppendCorrectAnswer adds s to the "correct_answer" field.
func (m *QuestionMutation) AppendCorrectAnswer(s []string) {
	m.appendcorrect_answer = append(m.appendcorrect_answer, s...)
}

// AppendedCorrectAnswer returns the list of values that were appended to the "correct_answer" field in this mutation.
func (m *QuestionMutation) AppendedCorrectAnswer() ([]string, bool) {
	if len(m.appendcorrect_answer) == 0 {
		return nil, false
	}
	return m.appendcorrect_answer, true
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *QuestionMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.appendcorrect_answer = nil
	m.clearedFields[question.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *QuestionMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[question.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	m.appendcorrect_answer = nil
	delete(m.clearedFields, question.FieldCorrectAnswer)
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[question.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[question.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, question.FieldExplanation)
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ClearDifficulty clears the value of the "difficulty" field.
func (m *QuestionMutation) ClearDifficulty() {
	m.difficulty = nil
	m.clearedFields[question.FieldDifficulty] = struct{}{}
}

// DifficultyCleared returns if the "difficulty" field was cleared in this mutation.
func (m *QuestionMutation) DifficultyCleared() bool {
	_, ok := m.clearedFields[question.FieldDifficulty]
	return ok
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	delete(m.clearedFields, question.FieldDifficulty)
}

// SetDomain sets the "domain" field.
func (m *QuestionMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *QuestionMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDomain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *QuestionMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[question.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *QuestionMutation) DomainCleared() bool {
	_, ok := m.clearedFields[question.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *QuestionMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, question.FieldDomain)
}

// SetSkillTags sets the "skill_tags" field.
func (m *QuestionMutation) SetSkillTags(s []string) {
	m.skill_tags = &s
	m.appendskill_tags = nil
}

// SkillTags returns the value of the "skill_tags" field in the mutation.
func (m *QuestionMutation) SkillTags() (r []string, exists bool) {
	v := m.skill_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillTags returns the old "skill_tags" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSkillTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillTags: %w", err)
	}
	return oldValue.SkillTags, nil
}

// AppendSkillTags adds s to the "skill_tags" field.
func (m *QuestionMutation) AppendSkillTags(s []string) {
	m.appendskill_tags = append(m.appendskill_tags, s...)
}

// AppendedSkillTags returns the list of values that were appended to the "skill_tags" field in this mutation.
func (m *QuestionMutation) AppendedSkillTags() ([]string, bool) {
	if len(m.appendskill_tags) == 0 {
		return nil, false
	}
	return m.appendskill_tags, true
}

// ClearSkillTags clears the value of the "skill_tags" field.
func (m *QuestionMutation) ClearSkillTags() {
	m.skill_tags = nil
	m.appendskill_tags = nil
	m.clearedFields[question.FieldSkillTags] = struct{}{}
}

// SkillTagsCleared returns if the "skill_tags" field was cleared in this mutation.
func (m *QuestionMutation) SkillTagsCleared() bool {
	_, ok := m.clearedFields[question.FieldSkillTags]
	return ok
}

// ResetSkillTags resets all changes to the "skill_tags" field.
func (m *QuestionMutation) ResetSkillTags() {
	m.skill_tags = nil
	m.appendskill_tags = nil
	delete(m.clearedFields, question.FieldSkillTags)
}

// SetImageURL sets the "image_url" field.
func (m *QuestionMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *QuestionMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *QuestionMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[question.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *QuestionMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[question.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *QuestionMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, question.FieldImageURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearModule clears the "module" edge to the TestModule entity.
func (m *QuestionMutation) ClearModule() {
	m.clearedmodule = true
	m.clearedFields[question.FieldModuleID] = struct{}{}
}

// ModuleCleared reports if the "module" edge to the TestModule entity was cleared.
func (m *QuestionMutation) ModuleCleared() bool {
	return m.clearedmodule
}

// ModuleIDs returns the "module" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ModuleID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) ModuleIDs() (ids []uuid.UUID) {
	if id := m.module; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetModule resets all changes to the "module" edge.
func (m *QuestionMutation) ResetModule() {
	m.module = nil
	m.clearedmodule = false
}

// ClearPassage clears the "passage" edge to the Passage entity.
func (m *QuestionMutation) ClearPassage() {
	m.clearedpassage = true
	m.clearedFields[question.FieldPassageID] = struct{}{}
}

// PassageCleared reports if the "passage" edge to the Passage entity was cleared.
func (m *QuestionMutation) PassageCleared() bool {
	return m.PassageIDCleared() || m.clearedpassage
}

// PassageIDs returns the "passage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PassageID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) PassageIDs() (ids []uuid.UUID) {
	if id := m.passage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPassage resets all changes to the "passage" edge.
func (m *QuestionMutation) ResetPassage() {
	m.passage = nil
	m.clearedpassage = false
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.module != nil {
		fields = append(fields, question.FieldModuleID)
	}
	if m.question_number != nil {
		fields = append(fields, question.FieldQuestionNumber)
	}
	if m.question_text != nil {
		fields = append(fields, question.FieldQuestionText)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.passage != nil {
		fields = append(fields, question.FieldPassageID)
	}
	if m.options != nil {
		fields = append(fields, question.FieldOptions)
	}
	if m.table_data != nil {
		fields = append(fields, question.FieldTableData)
	}
	if m.correct_answer != nil {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.domain != nil {
		fields = append(fields, question.FieldDomain)
	}
	if m.skill_tags != nil {
		fields = append(fields, question.FieldSkillTags)
	}
	if m.image_url != nil {
		fields = append(fields, question.FieldImageURL)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldModuleID:
		return m.ModuleID()
	case question.FieldQuestionNumber:
		return m.QuestionNumber()
	case question.FieldQuestionText:
		return m.QuestionText()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldPassageID:
		return m.PassageID()
	case question.FieldOptions:
		return m.Options()
	case question.FieldTableData:
		return m.TableData()
	case question.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case question.FieldExplanation:
		return m.Explanation()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldDomain:
		return m.Domain()
	case question.FieldSkillTags:
		return m.SkillTags()
	case question.FieldImageURL:
		return m.ImageURL()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldModuleID:
		return m.OldModuleID(ctx)
	case question.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case question.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldPassageID:
		return m.OldPassageID(ctx)
	case question.FieldOptions:
		return m.OldOptions(ctx)
	case question.FieldTableData:
		return m.OldTableData(ctx)
	case question.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldDomain:
		return m.OldDomain(ctx)
	case question.FieldSkillTags:
		return m.OldSkillTags(ctx)
	case question.FieldImageURL:
		return m.OldImageURL(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldModuleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleID(v)
		return nil
	case question.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case question.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldPassageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassageID(v)
		return nil
	case question.FieldOptions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case question.FieldTableData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableData(v)
		return nil
	case question.FieldCorrectAnswer:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case question.FieldSkillTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillTags(v)
		return nil
	case question.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_number != nil {
		fields = append(fields, question.FieldQuestionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldPassageID) {
		fields = append(fields, question.FieldPassageID)
	}
	if m.FieldCleared(question.FieldOptions) {
		fields = append(fields, question.FieldOptions)
	}
	if m.FieldCleared(question.FieldTableData) {
		fields = append(fields, question.FieldTableData)
	}
	if m.FieldCleared(question.FieldCorrectAnswer) {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.FieldCleared(question.FieldExplanation) {
		fields = append(fields, question.FieldExplanation)
	}
	if m.FieldCleared(question.FieldDifficulty) {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.FieldCleared(question.FieldDomain) {
		fields = append(fields, question.FieldDomain)
	}
	if m.FieldCleared(question.FieldSkillTags) {
		fields = append(fields, question.FieldSkillTags)
	}
	if m.FieldCleared(question.FieldImageURL) {
		fields = append(fields, question.FieldImageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldPassageID:
		m.ClearPassageID()
		return nil
	case question.FieldOptions:
		m.ClearOptions()
		return nil
	case question.FieldTableData:
		m.ClearTableData()
		return nil
	case question.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case question.FieldExplanation:
		m.ClearExplanation()
		return nil
	case question.FieldDifficulty:
		m.ClearDifficulty()
		return nil
	case question.FieldDomain:
		m.ClearDomain()
		return nil
	case question.FieldSkillTags:
		m.ClearSkillTags()
		return nil
	case question.FieldImageURL:
		m.ClearImageURL()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldModuleID:
		m.ResetModuleID()
		return nil
	case question.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case question.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldPassageID:
		m.ResetPassageID()
		return nil
	case question.FieldOptions:
		m.ResetOptions()
		return nil
	case question.FieldTableData:
		m.ResetTableData()
		return nil
	case question.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldDomain:
		m.ResetDomain()
		return nil
	case question.FieldSkillTags:
		m.ResetSkillTags()
		return nil
	case question.FieldImageURL:
		m.ResetImageURL()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.module != nil {
		edges = append(edges, question.EdgeModule)
	}
	if m.passage != nil {
		edges = append(edges, question.EdgePassage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeModule:
		if id := m.module; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgePassage:
		if id := m.passage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmodule {
		edges = append(edges, question.EdgeModule)
	}
	if m.clearedpassage {
		edges = append(edges, question.EdgePassage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeModule:
		return m.clearedmodule
	case question.EdgePassage:
		return m.clearedpassage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeModule:
		m.ClearModule()
		return nil
	case question.EdgePassage:
		m.ClearPassage()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeModule:
		m.ResetModule()
		return nil
	case question.EdgePassage:
		m.ResetPassage()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// TestMutation represents an operation that mutates the Test nodes in the graph.
type TestMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	title          *string
	test_type      *string
	description    *string
	is_published   *bool
	created_by     *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	modules        map[uuid.UUID]struct{}
	removedmodules map[uuid.UUID]struct{}
	clearedmodules bool
	done           bool
	oldValue       func(context.Context) (*Test, error)
	predicates     []predicate.Test
}

var _ ent.Mutation = (*TestMutation)(nil)

// testOption allows management of the mutation configuration using functional options.
type testOption func(*TestMutation)

// newTestMutation creates new mutation for the Test entity.
func newTestMutation(c config, op Op, opts ...testOption) *TestMutation {
	m := &TestMutation{
		config:        c,
		op:            op,
		typ:           TypeTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestID sets the ID field of the mutation.
func withTestID(id uuid.UUID) testOption {
	return func(m *TestMutation) {
		var (
			err   error
			once  sync.Once
			value *Test
		)
		m.oldValue = func(ctx context.Context) (*Test, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Test.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTest sets the old Test of the mutation.
func withTest(node *Test) testOption {
	return func(m *TestMutation) {
		m.oldValue = func(context.Context) (*Test, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Test entities.
func (m *TestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Test.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TestMutation) ResetTitle() {
	m.title = nil
}

// SetTestType sets the "test_type" field.
func (m *TestMutation) SetTestType(s string) {
	m.test_type = &s
}

// TestType returns the value of the "test_type" field in the mutation.
func (m *TestMutation) TestType() (r string, exists bool) {
	v := m.test_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTestType returns the old "test_type" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestType: %w", err)
	}
	return oldValue.TestType, nil
}

// ResetTestType resets all changes to the "test_type" field.
func (m *TestMutation) ResetTestType() {
	m.test_type = nil
}

// SetDescription sets the "description" field.
func (m *TestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TestMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[test.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TestMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[test.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TestMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, test.FieldDescription)
}

// SetIsPublished sets the "is_published" field.
func (m *TestMutation) SetIsPublished(b bool) {
	m.is_published = &b
}

// IsPublished returns the value of the "is_published" field in the mutation.
func (m *TestMutation) IsPublished() (r bool, exists bool) {
	v := m.is_published
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublished returns the old "is_published" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldIsPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublished: %w", err)
	}
	return oldValue.IsPublished, nil
}

// ResetIsPublished resets all changes to the "is_published" field.
func (m *TestMutation) ResetIsPublished() {
	m.is_published = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *TestMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TestMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldCreatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *TestMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[test.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *TestMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[test.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TestMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, test.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddModuleIDs adds the "modules" edge to the TestModule entity by ids.
func (m *TestMutation) AddModuleIDs(ids ...uuid.UUID) {
	if m.modules == nil {
		m.modules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.modules[ids[i]] = struct{}{}
	}
}

// ClearModules clears the "modules" edge to the TestModule entity.
func (m *TestMutation) ClearModules() {
	m.clearedmodules = true
}

// ModulesCleared reports if the "modules" edge to the TestModule entity was cleared.
func (m *TestMutation) ModulesCleared() bool {
	return m.clearedmodules
}

// RemoveModuleIDs removes the "modules" edge to the TestModule entity by IDs.
func (m *TestMutation) RemoveModuleIDs(ids ...uuid.UUID) {
	if m.removedmodules == nil {
		m.removedmodules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.modules, ids[i])
		m.removedmodules[ids[i]] = struct{}{}
	}
}

// RemovedModules returns the removed IDs of the "modules" edge to the TestModule entity.
func (m *TestMutation) RemovedModulesIDs() (ids []uuid.UUID) {
	for id := range m.removedmodules {
		ids = append(ids, id)
	}
	return
}

// ModulesIDs returns the "modules" edge IDs in the mutation.
func (m *TestMutation) ModulesIDs() (ids []uuid.UUID) {
	for id := range m.modules {
		ids = append(ids, id)
	}
	return
}

// ResetModules resets all changes to the "modules" edge.
func (m *TestMutation) ResetModules() {
	m.modules = nil
	m.clearedmodules = false
	m.removedmodules = nil
}

// Where appends a list predicates to the TestMutation builder.
func (m *TestMutation) Where(ps ...predicate.Test) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Test, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Test).
func (m *TestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, test.FieldTitle)
	}
	if m.test_type != nil {
		fields = append(fields, test.FieldTestType)
	}
	if m.description != nil {
		fields = append(fields, test.FieldDescription)
	}
	if m.is_published != nil {
		fields = append(fields, test.FieldIsPublished)
	}
	if m.created_by != nil {
		fields = append(fields, test.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, test.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, test.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case test.FieldTitle:
		return m.Title()
	case test.FieldTestType:
		return m.TestType()
	case test.FieldDescription:
		return m.Description()
	case test.FieldIsPublished:
		return m.IsPublished()
	case test.FieldCreatedBy:
		return m.CreatedBy()
	case test.FieldCreatedAt:
		return m.CreatedAt()
	case test.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case test.FieldTitle:
		return m.OldTitle(ctx)
	case test.FieldTestType:
		return m.OldTestType(ctx)
	case test.FieldDescription:
		return m.OldDescription(ctx)
	case test.FieldIsPublished:
		return m.OldIsPublished(ctx)
	case test.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case test.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case test.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Test field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case test.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case test.FieldTestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestType(v)
		return nil
	case test.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case test.FieldIsPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublished(v)
		return nil
	case test.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case test.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case test.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Test numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(test.FieldDescription) {
		fields = append(fields, test.FieldDescription)
	}
	if m.FieldCleared(test.FieldCreatedBy) {
		fields = append(fields, test.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestMutation) ClearField(name string) error {
	switch name {
	case test.FieldDescription:
		m.ClearDescription()
		return nil
	case test.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Test nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestMutation) ResetField(name string) error {
	switch name {
	case test.FieldTitle:
		m.ResetTitle()
		return nil
	case test.FieldTestType:
		m.ResetTestType()
		return nil
	case test.FieldDescription:
		m.ResetDescription()
		return nil
	case test.FieldIsPublished:
		m.ResetIsPublished()
		return nil
	case test.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case test.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case test.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.modules != nil {
		edges = append(edges, test.EdgeModules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case test.EdgeModules:
		ids := make([]ent.Value, 0, len(m.modules))
		for id := range m.modules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmodules != nil {
		edges = append(edges, test.EdgeModules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case test.EdgeModules:
		ids := make([]ent.Value, 0, len(m.removedmodules))
		for id := range m.removedmodules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmodules {
		edges = append(edges, test.EdgeModules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestMutation) EdgeCleared(name string) bool {
	switch name {
	case test.EdgeModules:
		return m.clearedmodules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Test unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestMutation) ResetEdge(name string) error {
	switch name {
	case test.EdgeModules:
		m.ResetModules()
		return nil
	}
	return fmt.Errorf("unknown Test edge %s", name)
}

// TestModuleMutation represents an operation that mutates the TestModule nodes in the graph.
type TestModuleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	section               *string
	module_slot           *string
	module_difficulty     *string
	time_limit_minutes    *int
	addtime_limit_minutes *int
	order_index           *int
	addorder_index        *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	test                  *uuid.UUID
	clearedtest           bool
	questions             map[uuid.UUID]struct{}
	removedquestions      map[uuid.UUID]struct{}
	clearedquestions      bool
	done                  bool
	oldValue              func(context.Context) (*TestModule, error)
	predicates            []predicate.TestModule
}

var _ ent.Mutation = (*TestModuleMutation)(nil)

// testmoduleOption allows management of the mutation configuration using functional options.
type testmoduleOption func(*TestModuleMutation)

// newTestModuleMutation creates new mutation for the TestModule entity.
func newTestModuleMutation(c config, op Op, opts ...testmoduleOption) *TestModuleMutation {
	m := &TestModuleMutation{
		config:        c,
		op:            op,
		typ:           TypeTestModule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestModuleID sets the ID field of the mutation.
func withTestModuleID(id uuid.UUID) testmoduleOption {
	return func(m *TestModuleMutation) {
		var (
			err   error
			once  sync.Once
			value *TestModule
		)
		m.oldValue = func(ctx context.Context) (*TestModule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestModule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestModule sets the old TestModule of the mutation.
func withTestModule(node *TestModule) testmoduleOption {
	return func(m *TestModuleMutation) {
		m.oldValue = func(context.Context) (*TestModule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestModuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestModuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestModule entities.
func (m *TestModuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestModuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestModuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestModule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTestID sets the "test_id" field.
func (m *TestModuleMutation) SetTestID(u uuid.UUID) {
	m.test = &u
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *TestModuleMutation) TestID() (r uuid.UUID, exists bool) {
	v := m.test
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldTestID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ClearTestID clears the value of the "test_id" field.
func (m *TestModuleMutation) ClearTestID() {
	m.test = nil
	m.clearedFields[testmodule.FieldTestID] = struct{}{}
}

// TestIDCleared returns if the "test_id" field was cleared in this mutation.
func (m *TestModuleMutation) TestIDCleared() bool {
	_, ok := m.clearedFields[testmodule.FieldTestID]
	return ok
}

// ResetTestID resets all changes to the "test_id" field.
func (m *TestModuleMutation) ResetTestID() {
	m.test = nil
	delete(m.clearedFields, testmodule.FieldTestID)
}

// SetSection sets the "section" field.
func (m *TestModuleMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *TestModuleMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *TestModuleMutation) ResetSection() {
	m.section = nil
}

// SetModuleSlot sets the "module_slot" field.
func (m *TestModuleMutation) SetModuleSlot(s string) {
	m.module_slot = &s
}

// ModuleSlot returns the value of the "module_slot" field in the mutation.
func (m *TestModuleMutation) ModuleSlot() (r string, exists bool) {
	v := m.module_slot
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleSlot returns the old "module_slot" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldModuleSlot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleSlot: %w", err)
	}
	return oldValue.ModuleSlot, nil
}

// ResetModuleSlot resets all changes to the "module_slot" field.
func (m *TestModuleMutation) ResetModuleSlot() {
	m.module_slot = nil
}

// SetModuleDifficulty sets the "module_difficulty" field.
func (m *TestModuleMutation) SetModuleDifficulty(s string) {
	m.module_difficulty = &s
}

// ModuleDifficulty returns the value of the "module_difficulty" field in the mutation.
func (m *TestModuleMutation) ModuleDifficulty() (r string, exists bool) {
	v := m.module_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleDifficulty returns the old "module_difficulty" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldModuleDifficulty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleDifficulty: %w", err)
	}
	return oldValue.ModuleDifficulty, nil
}

// ClearModuleDifficulty clears the value of the "module_difficulty" field.
func (m *TestModuleMutation) ClearModuleDifficulty() {
	m.module_difficulty = nil
	m.clearedFields[testmodule.FieldModuleDifficulty] = struct{}{}
}

// ModuleDifficultyCleared returns if the "module_difficulty" field was cleared in this mutation.
func (m *TestModuleMutation) ModuleDifficultyCleared() bool {
	_, ok := m.clearedFields[testmodule.FieldModuleDifficulty]
	return ok
}

// ResetModuleDifficulty resets all changes to the "module_difficulty" field.
func (m *TestModuleMutation) ResetModuleDifficulty() {
	m.module_difficulty = nil
	delete(m.clearedFields, testmodule.FieldModuleDifficulty)
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (m *TestModuleMutation) SetTimeLimitMinutes(i int) {
	m.time_limit_minutes = &i
	m.addtime_limit_minutes = nil
}

// TimeLimitMinutes returns the value of the "time_limit_minutes" field in the mutation.
func (m *TestModuleMutation) TimeLimitMinutes() (r int, exists bool) {
	v := m.time_limit_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimitMinutes returns the old "time_limit_minutes" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldTimeLimitMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimitMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimitMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimitMinutes: %w", err)
	}
	return oldValue.TimeLimitMinutes, nil
}

// AddTimeLimitMinutes adds i to the "time_limit_minutes" field.
func (m *TestModuleMutation) AddTimeLimitMinutes(i int) {
	if m.addtime_limit_minutes != nil {
		*m.addtime_limit_minutes += i
	} else {
		m.addtime_limit_minutes = &i
	}
}

// AddedTimeLimitMinutes returns the value that was added to the "time_limit_minutes" field in this mutation.
func (m *TestModuleMutation) AddedTimeLimitMinutes() (r int, exists bool) {
	v := m.addtime_limit_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimitMinutes resets all changes to the "time_limit_minutes" field.
func (m *TestModuleMutation) ResetTimeLimitMinutes() {
	m.time_limit_minutes = nil
	m.addtime_limit_minutes = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *TestModuleMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *TestModuleMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *TestModuleMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *TestModuleMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *TestModuleMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TestModuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestModuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestModule entity.
// If the TestModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestModuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestModuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTest clears the "test" edge to the Test entity.
func (m *TestModuleMutation) ClearTest() {
	m.clearedtest = true
	m.clearedFields[testmodule.FieldTestID] = struct{}{}
}

// TestCleared reports if the "test" edge to the Test entity was cleared.
func (m *TestModuleMutation) TestCleared() bool {
	return m.TestIDCleared() || m.clearedtest
}

// TestIDs returns the "test" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestID instead. It exists only for internal usage by the builders.
func (m *TestModuleMutation) TestIDs() (ids []uuid.UUID) {
	if id := m.test; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTest resets all changes to the "test" edge.
func (m *TestModuleMutation) ResetTest() {
	m.test = nil
	m.clearedtest = false
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *TestModuleMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *TestModuleMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *TestModuleMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *TestModuleMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *TestModuleMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *TestModuleMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *TestModuleMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the TestModuleMutation builder.
func (m *TestModuleMutation) Where(ps ...predicate.TestModule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestModuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestModuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestModule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestModuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestModuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestModule).
func (m *TestModuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestModuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.test != nil {
		fields = append(fields, testmodule.FieldTestID)
	}
	if m.section != nil {
		fields = append(fields, testmodule.FieldSection)
	}
	if m.module_slot != nil {
		fields = append(fields, testmodule.FieldModuleSlot)
	}
	if m.module_difficulty != nil {
		fields = append(fields, testmodule.FieldModuleDifficulty)
	}
	if m.time_limit_minutes != nil {
		fields = append(fields, testmodule.FieldTimeLimitMinutes)
	}
	if m.order_index != nil {
		fields = append(fields, testmodule.FieldOrderIndex)
	}
	if m.created_at != nil {
		fields = append(fields, testmodule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestModuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testmodule.FieldTestID:
		return m.TestID()
	case testmodule.FieldSection:
		return m.Section()
	case testmodule.FieldModuleSlot:
		return m.ModuleSlot()
	case testmodule.FieldModuleDifficulty:
		return m.ModuleDifficulty()
	case testmodule.FieldTimeLimitMinutes:
		return m.TimeLimitMinutes()
	case testmodule.FieldOrderIndex:
		return m.OrderIndex()
	case testmodule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestModuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testmodule.FieldTestID:
		return m.OldTestID(ctx)
	case testmodule.FieldSection:
		return m.OldSection(ctx)
	case testmodule.FieldModuleSlot:
		return m.OldModuleSlot(ctx)
	case testmodule.FieldModuleDifficulty:
		return m.OldModuleDifficulty(ctx)
	case testmodule.FieldTimeLimitMinutes:
		return m.OldTimeLimitMinutes(ctx)
	case testmodule.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case testmodule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestModule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestModuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testmodule.FieldTestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case testmodule.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case testmodule.FieldModuleSlot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleSlot(v)
		return nil
	case testmodule.FieldModuleDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleDifficulty(v)
		return nil
	case testmodule.FieldTimeLimitMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimitMinutes(v)
		return nil
	case testmodule.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case testmodule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestModule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestModuleMutation) AddedFields() []string {
	var fields []string
	if m.addtime_limit_minutes != nil {
		fields = append(fields, testmodule.FieldTimeLimitMinutes)
	}
	if m.addorder_index != nil {
		fields = append(fields, testmodule.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestModuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testmodule.FieldTimeLimitMinutes:
		return m.AddedTimeLimitMinutes()
	case testmodule.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestModuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testmodule.FieldTimeLimitMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimitMinutes(v)
		return nil
	case testmodule.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown TestModule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestModuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testmodule.FieldTestID) {
		fields = append(fields, testmodule.FieldTestID)
	}
	if m.FieldCleared(testmodule.FieldModuleDifficulty) {
		fields = append(fields, testmodule.FieldModuleDifficulty)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestModuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestModuleMutation) ClearField(name string) error {
	switch name {
	case testmodule.FieldTestID:
		m.ClearTestID()
		return nil
	case testmodule.FieldModuleDifficulty:
		m.ClearModuleDifficulty()
		return nil
	}
	return fmt.Errorf("unknown TestModule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestModuleMutation) ResetField(name string) error {
	switch name {
	case testmodule.FieldTestID:
		m.ResetTestID()
		return nil
	case testmodule.FieldSection:
		m.ResetSection()
		return nil
	case testmodule.FieldModuleSlot:
		m.ResetModuleSlot()
		return nil
	case testmodule.FieldModuleDifficulty:
		m.ResetModuleDifficulty()
		return nil
	case testmodule.FieldTimeLimitMinutes:
		m.ResetTimeLimitMinutes()
		return nil
	case testmodule.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case testmodule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestModule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestModuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.test != nil {
		edges = append(edges, testmodule.EdgeTest)
	}
	if m.questions != nil {
		edges = append(edges, testmodule.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestModuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testmodule.EdgeTest:
		if id := m.test; id != nil {
			return []ent.Value{*id}
		}
	case testmodule.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestModuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, testmodule.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestModuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case testmodule.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestModuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtest {
		edges = append(edges, testmodule.EdgeTest)
	}
	if m.clearedquestions {
		edges = append(edges, testmodule.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestModuleMutation) EdgeCleared(name string) bool {
	switch name {
	case testmodule.EdgeTest:
		return m.clearedtest
	case testmodule.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestModuleMutation) ClearEdge(name string) error {
	switch name {
	case testmodule.EdgeTest:
		m.ClearTest()
		return nil
	}
	return fmt.Errorf("unknown TestModule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestModuleMutation) ResetEdge(name string) error {
	switch name {
	case testmodule.EdgeTest:
		m.ResetTest()
		return nil
	case testmodule.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown TestModule edge %s", name)
}
