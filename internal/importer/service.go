// Package importer moves approved question candidates into the production
// test bank, assigning numbers in page order.
package importer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

type Service struct {
	jobs      repository.JobRepository
	extracted repository.ExtractedRepository
	testbank  repository.TestbankRepository
	log       *slog.Logger
}

func NewService(
	jobs repository.JobRepository,
	extracted repository.ExtractedRepository,
	testbank repository.TestbankRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, extracted: extracted, testbank: testbank, log: logger}
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Imported    int
	FirstNumber int
	LastNumber  int
	QuestionIDs []uuid.UUID
}

// ImportToModule copies a job's approved questions into an existing module.
// Numbering continues from the module's highest question number, candidates
// keep their page order, and rows already imported are skipped, so running
// the import twice cannot duplicate questions. A non-empty questionIDs list
// imports only those candidates.
func (s *Service) ImportToModule(ctx context.Context, jobID, moduleID uuid.UUID, questionIDs []uuid.UUID) (ImportResult, error) {
	if _, err := s.testbank.GetModule(ctx, moduleID); err != nil {
		return ImportResult{}, err
	}
	candidates, err := s.extracted.ListApprovedUnimported(ctx, jobID, questionIDs...)
	if err != nil {
		return ImportResult{}, err
	}
	if len(candidates) == 0 {
		return ImportResult{}, common.NewAppError("NOTHING_TO_IMPORT",
			"no approved questions awaiting import", common.ErrInvalidInput)
	}

	next, err := s.testbank.MaxQuestionNumber(ctx, moduleID)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{FirstNumber: next + 1}
	for _, c := range candidates {
		next++
		q, iErr := s.importOne(ctx, c, moduleID, next)
		if iErr != nil {
			// Stop here; everything imported so far is already marked, so a
			// re-run resumes cleanly after the failure.
			s.log.Error("import.question_failed",
				"job_id", jobID, "extracted_id", c.ID, "number", next, "error", iErr)
			return res, iErr
		}
		res.Imported++
		res.LastNumber = next
		res.QuestionIDs = append(res.QuestionIDs, q.ID)
	}

	if err := s.jobs.RecordImport(ctx, jobID, res.Imported, nil); err != nil {
		return res, err
	}
	if err := s.maybeComplete(ctx, jobID); err != nil {
		return res, err
	}
	s.log.Info("import.done",
		"job_id", jobID, "module_id", moduleID,
		"imported", res.Imported, "first", res.FirstNumber, "last", res.LastNumber)
	return res, nil
}

// importOne writes one candidate into the bank and links it back.
func (s *Service) importOne(ctx context.Context, c *ent.ExtractedQuestion, moduleID uuid.UUID, number int) (*ent.Question, error) {
	passageID, err := s.resolvePassage(ctx, c)
	if err != nil {
		return nil, err
	}

	params := repository.InsertQuestionParams{
		ModuleID:       moduleID,
		QuestionNumber: number,
		QuestionText:   c.QuestionText,
		QuestionType:   constants.QuestionType(c.QuestionType),
		PassageID:      passageID,
		Options:        json.RawMessage(c.Options),
		TableData:      json.RawMessage(c.TableData),
		CorrectAnswer:  c.CorrectAnswer,
		Explanation:    c.Explanation,
		Difficulty:     c.Difficulty,
		Domain:         c.Domain,
		SkillTags:      c.SkillTags,
		ImageURL:       c.ImageURL,
	}
	q, err := s.testbank.InsertQuestion(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.extracted.MarkImported(ctx, c.ID, q.ID); err != nil {
		return nil, err
	}
	return q, nil
}

// resolvePassage finds or creates the production passage for a candidate.
// Linked passages are imported once and shared; inline passage text gets its
// own row.
func (s *Service) resolvePassage(ctx context.Context, c *ent.ExtractedQuestion) (*uuid.UUID, error) {
	if c.PassageID != nil {
		ep, err := s.extracted.GetPassage(ctx, *c.PassageID)
		if err != nil {
			return nil, err
		}
		if ep.ImportedPassageID != nil {
			return ep.ImportedPassageID, nil
		}
		p, err := s.testbank.InsertPassage(ctx, ep.Title, ep.Content)
		if err != nil {
			return nil, err
		}
		if err := s.extracted.MarkPassageImported(ctx, ep.ID, p.ID); err != nil {
			return nil, err
		}
		return &p.ID, nil
	}
	if c.PassageText != nil && *c.PassageText != "" {
		p, err := s.testbank.InsertPassage(ctx, nil, *c.PassageText)
		if err != nil {
			return nil, err
		}
		return &p.ID, nil
	}
	return nil, nil
}

// maybeComplete closes the job once nothing reviewable remains.
func (s *Service) maybeComplete(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if constants.JobStatus(job.Status) != constants.JobStatusReview {
		return nil
	}
	all, err := s.extracted.ListQuestions(ctx, jobID, "")
	if err != nil {
		return err
	}
	for _, q := range all {
		switch constants.ReviewStatus(q.ReviewStatus) {
		case constants.ReviewPending, constants.ReviewNeedsEdit, constants.ReviewApproved:
			return nil
		}
	}
	_, err = s.jobs.Transition(ctx, jobID, constants.JobStatusCompleted)
	return err
}
