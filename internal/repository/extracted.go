package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// PassageDraft is a passage as returned by a structuring provider, before it
// has a row. TempRef links questions from the same response to it.
type PassageDraft struct {
	TempRef    string
	Title      *string
	Source     *string
	Author     *string
	Content    string
	Figures    []string
	Confidence float32
}

// PassageEdit carries reviewer corrections to a passage. Nil pointers and
// an empty content string leave those fields unchanged.
type PassageEdit struct {
	Title        *string
	Source       *string
	Author       *string
	Content      string
	ReviewStatus *constants.ReviewStatus
}

// QuestionDraft is a structured question ready to persist for review.
type QuestionDraft struct {
	PassageTempRef       string
	QuestionText         string
	QuestionType         constants.QuestionType
	PassageText          *string
	Options              json.RawMessage
	TableData            json.RawMessage
	CorrectAnswer        []string
	NeedsAnswer          bool
	Explanation          *string
	Difficulty           *string
	Domain               *string
	SkillTags            []string
	NeedsImage           bool
	ExtractionConfidence float32
	AnswerConfidence     float32
	ValidationErrors     []string
}

// QuestionEdit carries reviewer corrections. Nil fields are left unchanged.
type QuestionEdit struct {
	QuestionText  *string
	QuestionType  *string
	PassageText   *string
	Options       json.RawMessage
	TableData     json.RawMessage
	CorrectAnswer []string
	Explanation   *string
	Difficulty    *string
	Domain        *string
	SkillTags     []string
	ImageURL      *string
}

type ExtractedRepository interface {
	InsertPageResults(ctx context.Context, jobID, pageID uuid.UUID, passages []PassageDraft, questions []QuestionDraft) (int, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*ent.ExtractedQuestion, error)
	ListQuestions(ctx context.Context, jobID uuid.UUID, status constants.ReviewStatus) ([]*ent.ExtractedQuestion, error)
	EditQuestion(ctx context.Context, id uuid.UUID, edit QuestionEdit) (*ent.ExtractedQuestion, error)
	SetReviewStatus(ctx context.Context, ids []uuid.UUID, status constants.ReviewStatus, reviewer uuid.UUID) (int, error)
	ListApprovedUnimported(ctx context.Context, jobID uuid.UUID, only ...uuid.UUID) ([]*ent.ExtractedQuestion, error)
	MarkImported(ctx context.Context, extractedID, questionID uuid.UUID) error
	DeleteByPages(ctx context.Context, pageIDs []uuid.UUID) (int, error)
	GetPassage(ctx context.Context, id uuid.UUID) (*ent.ExtractedPassage, error)
	ListPassages(ctx context.Context, jobID uuid.UUID) ([]*ent.ExtractedPassage, error)
	EditPassage(ctx context.Context, id uuid.UUID, edit PassageEdit) (*ent.ExtractedPassage, error)
	MarkPassageImported(ctx context.Context, extractedID, passageID uuid.UUID) error
}

type extractedRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractedRepository(entc *ent.Client, log *slog.Logger) ExtractedRepository {
	return &extractedRepo{ent: entc, log: log}
}

// InsertPageResults persists one page's passages and questions atomically.
// Passages go in first so questions can reference them by temp ref.
func (r *extractedRepo) InsertPageResults(ctx context.Context, jobID, pageID uuid.UUID, passages []PassageDraft, questions []QuestionDraft) (int, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	refs := make(map[string]uuid.UUID, len(passages))
	for _, p := range passages {
		create := tx.ExtractedPassage.
			Create().
			SetJobID(jobID).
			SetPageID(pageID).
			SetTempRef(p.TempRef).
			SetContent(p.Content).
			SetExtractionConfidence(p.Confidence)
		if p.Title != nil {
			create.SetTitle(*p.Title)
		}
		if p.Source != nil {
			create.SetSource(*p.Source)
		}
		if p.Author != nil {
			create.SetAuthor(*p.Author)
		}
		if len(p.Figures) > 0 {
			create.SetFigures(p.Figures)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return 0, err
		}
		if p.TempRef != "" {
			refs[p.TempRef] = row.ID
		}
	}

	for _, q := range questions {
		create := tx.ExtractedQuestion.
			Create().
			SetJobID(jobID).
			SetPageID(pageID).
			SetQuestionText(q.QuestionText).
			SetQuestionType(string(q.QuestionType)).
			SetNeedsAnswer(q.NeedsAnswer).
			SetNeedsImage(q.NeedsImage).
			SetExtractionConfidence(q.ExtractionConfidence).
			SetAnswerConfidence(q.AnswerConfidence)
		if pid, ok := refs[q.PassageTempRef]; ok {
			create.SetPassageID(pid)
		}
		if q.PassageText != nil {
			create.SetPassageText(*q.PassageText)
		}
		if len(q.Options) > 0 {
			create.SetOptions(q.Options)
		}
		if len(q.TableData) > 0 {
			create.SetTableData(q.TableData)
		}
		if len(q.CorrectAnswer) > 0 {
			create.SetCorrectAnswer(q.CorrectAnswer)
		}
		if q.Explanation != nil {
			create.SetExplanation(*q.Explanation)
		}
		if q.Difficulty != nil {
			create.SetDifficulty(*q.Difficulty)
		}
		if q.Domain != nil {
			create.SetDomain(*q.Domain)
		}
		if len(q.SkillTags) > 0 {
			create.SetSkillTags(q.SkillTags)
		}
		if len(q.ValidationErrors) > 0 {
			create.SetValidationErrors(q.ValidationErrors)
		}
		if _, err := create.Save(ctx); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(questions), nil
}

func (r *extractedRepo) GetQuestion(ctx context.Context, id uuid.UUID) (*ent.ExtractedQuestion, error) {
	q, err := r.ent.ExtractedQuestion.
		Query().
		Where(extractedquestion.ID(id)).
		WithPage().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return q, err
}

// ListQuestions returns a job's candidates in page order. An empty status
// returns everything.
func (r *extractedRepo) ListQuestions(ctx context.Context, jobID uuid.UUID, status constants.ReviewStatus) ([]*ent.ExtractedQuestion, error) {
	q := r.ent.ExtractedQuestion.
		Query().
		Where(extractedquestion.JobID(jobID)).
		WithPage()
	if status != "" {
		q = q.Where(extractedquestion.ReviewStatus(string(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	sortByPageOrder(rows)
	return rows, nil
}

func (r *extractedRepo) EditQuestion(ctx context.Context, id uuid.UUID, edit QuestionEdit) (*ent.ExtractedQuestion, error) {
	upd := r.ent.ExtractedQuestion.UpdateOneID(id)
	if edit.QuestionText != nil {
		upd.SetQuestionText(*edit.QuestionText)
	}
	if edit.QuestionType != nil {
		upd.SetQuestionType(*edit.QuestionType)
	}
	if edit.PassageText != nil {
		upd.SetPassageText(*edit.PassageText)
	}
	if len(edit.Options) > 0 {
		upd.SetOptions(edit.Options)
	}
	if len(edit.TableData) > 0 {
		upd.SetTableData(edit.TableData)
	}
	if edit.CorrectAnswer != nil {
		upd.SetCorrectAnswer(edit.CorrectAnswer).SetNeedsAnswer(false)
	}
	if edit.Explanation != nil {
		upd.SetExplanation(*edit.Explanation)
	}
	if edit.Difficulty != nil {
		upd.SetDifficulty(*edit.Difficulty)
	}
	if edit.Domain != nil {
		upd.SetDomain(*edit.Domain)
	}
	if edit.SkillTags != nil {
		upd.SetSkillTags(edit.SkillTags)
	}
	if edit.ImageURL != nil {
		upd.SetImageURL(*edit.ImageURL).SetImageStatus("attached")
	}
	row, err := upd.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return row, err
}

// SetReviewStatus bulk-updates review state. Imported rows are protected so a
// second approval pass cannot disturb them.
func (r *extractedRepo) SetReviewStatus(ctx context.Context, ids []uuid.UUID, status constants.ReviewStatus, reviewer uuid.UUID) (int, error) {
	n, err := r.ent.ExtractedQuestion.
		Update().
		Where(
			extractedquestion.IDIn(ids...),
			extractedquestion.ReviewStatusNEQ(string(constants.ReviewImported)),
		).
		SetReviewStatus(string(status)).
		SetReviewedBy(reviewer).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("review.bulk_update failed", "count", len(ids), "err", err)
		return 0, err
	}
	r.log.Info("review.bulk_update", "status", status, "requested", len(ids), "updated", n)
	return n, nil
}

// ListApprovedUnimported returns the import queue in page order, skipping
// rows already linked to a production question. A non-empty only list
// restricts the queue to those candidates.
func (r *extractedRepo) ListApprovedUnimported(ctx context.Context, jobID uuid.UUID, only ...uuid.UUID) ([]*ent.ExtractedQuestion, error) {
	q := r.ent.ExtractedQuestion.
		Query().
		Where(
			extractedquestion.JobID(jobID),
			extractedquestion.ReviewStatus(string(constants.ReviewApproved)),
			extractedquestion.ImportedQuestionIDIsNil(),
		)
	if len(only) > 0 {
		q = q.Where(extractedquestion.IDIn(only...))
	}
	rows, err := q.WithPage().All(ctx)
	if err != nil {
		return nil, err
	}
	sortByPageOrder(rows)
	return rows, nil
}

func (r *extractedRepo) MarkImported(ctx context.Context, extractedID, questionID uuid.UUID) error {
	_, err := r.ent.ExtractedQuestion.
		UpdateOneID(extractedID).
		SetImportedQuestionID(questionID).
		SetReviewStatus(string(constants.ReviewImported)).
		Save(ctx)
	return err
}

// DeleteByPages removes a page's extraction output ahead of a re-run.
func (r *extractedRepo) DeleteByPages(ctx context.Context, pageIDs []uuid.UUID) (int, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	nq, err := tx.ExtractedQuestion.
		Delete().
		Where(extractedquestion.PageIDIn(pageIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExtractedPassage.
		Delete().
		Where(extractedpassage.PageIDIn(pageIDs...)).
		Exec(ctx); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return nq, nil
}

func (r *extractedRepo) GetPassage(ctx context.Context, id uuid.UUID) (*ent.ExtractedPassage, error) {
	p, err := r.ent.ExtractedPassage.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return p, err
}

func (r *extractedRepo) ListPassages(ctx context.Context, jobID uuid.UUID) ([]*ent.ExtractedPassage, error) {
	return r.ent.ExtractedPassage.
		Query().
		Where(extractedpassage.JobID(jobID)).
		WithPage().
		Order(ent.Asc(extractedpassage.FieldCreatedAt)).
		All(ctx)
}

func (r *extractedRepo) EditPassage(ctx context.Context, id uuid.UUID, edit PassageEdit) (*ent.ExtractedPassage, error) {
	upd := r.ent.ExtractedPassage.UpdateOneID(id)
	if edit.Title != nil {
		upd.SetTitle(*edit.Title)
	}
	if edit.Source != nil {
		upd.SetSource(*edit.Source)
	}
	if edit.Author != nil {
		upd.SetAuthor(*edit.Author)
	}
	if edit.Content != "" {
		upd.SetContent(edit.Content)
	}
	if edit.ReviewStatus != nil {
		upd.SetReviewStatus(string(*edit.ReviewStatus))
	}
	row, err := upd.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return row, err
}

func (r *extractedRepo) MarkPassageImported(ctx context.Context, extractedID, passageID uuid.UUID) error {
	_, err := r.ent.ExtractedPassage.
		UpdateOneID(extractedID).
		SetImportedPassageID(passageID).
		Save(ctx)
	return err
}

// sortByPageOrder orders rows by the page they came from, then by id so
// multiple questions on one page keep a stable order.
func sortByPageOrder(rows []*ent.ExtractedQuestion) {
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := 0, 0
		if rows[i].Edges.Page != nil {
			pi = rows[i].Edges.Page.PageNumber
		}
		if rows[j].Edges.Page != nil {
			pj = rows[j].Edges.Page.PageNumber
		}
		if pi != pj {
			return pi < pj
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})
}
