package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// Digital SAT module lengths in minutes.
const (
	readingWritingMinutes = 32
	mathMinutes           = 35
)

// ModuleSpec carves one module out of the job's approved questions.
// Start and End are 1-based inclusive positions in page order.
type ModuleSpec struct {
	Section          constants.Section
	Slot             constants.ModuleSlot
	Difficulty       constants.ModuleDifficulty
	TimeLimitMinutes int
	QuestionStart    int
	QuestionEnd      int
}

// TestSpec describes a test to assemble during import.
type TestSpec struct {
	Title     string
	TestType  constants.TestType
	CreatedBy uuid.UUID
	Modules   []ModuleSpec
}

func defaultTimeLimit(section constants.Section) int {
	if section == constants.SectionMath {
		return mathMinutes
	}
	return readingWritingMinutes
}

// ImportWithTest creates a test with fresh modules and fills them from the
// job's approved questions. Each module numbers its questions from 1.
func (s *Service) ImportWithTest(ctx context.Context, jobID uuid.UUID, spec TestSpec) (*ent.Test, ImportResult, error) {
	if spec.Title == "" {
		return nil, ImportResult{}, common.NewAppError("INVALID_TEST_SPEC", "test title is required", common.ErrInvalidInput)
	}
	if len(spec.Modules) == 0 {
		return nil, ImportResult{}, common.NewAppError("INVALID_TEST_SPEC", "at least one module is required", common.ErrInvalidInput)
	}
	if spec.TestType == "" {
		spec.TestType = constants.TestFull
	}

	candidates, err := s.extracted.ListApprovedUnimported(ctx, jobID)
	if err != nil {
		return nil, ImportResult{}, err
	}
	if len(candidates) == 0 {
		return nil, ImportResult{}, common.NewAppError("NOTHING_TO_IMPORT",
			"no approved questions awaiting import", common.ErrInvalidInput)
	}
	for i, m := range spec.Modules {
		if m.QuestionStart < 1 || m.QuestionEnd < m.QuestionStart || m.QuestionEnd > len(candidates) {
			return nil, ImportResult{}, common.NewAppError("INVALID_TEST_SPEC",
				fmt.Sprintf("module %d range [%d,%d] outside 1..%d", i+1, m.QuestionStart, m.QuestionEnd, len(candidates)),
				common.ErrInvalidInput)
		}
	}

	test, err := s.testbank.CreateTest(ctx, spec.Title, spec.TestType, spec.CreatedBy)
	if err != nil {
		return nil, ImportResult{}, err
	}

	var res ImportResult
	res.FirstNumber = 1
	for i, m := range spec.Modules {
		limit := m.TimeLimitMinutes
		if limit <= 0 {
			limit = defaultTimeLimit(m.Section)
		}
		module, mErr := s.testbank.CreateModule(ctx, test.ID, m.Section, m.Slot, m.Difficulty, limit, i)
		if mErr != nil {
			return test, res, mErr
		}
		for idx := m.QuestionStart; idx <= m.QuestionEnd; idx++ {
			number := idx - m.QuestionStart + 1
			q, iErr := s.importOne(ctx, candidates[idx-1], module.ID, number)
			if iErr != nil {
				s.log.Error("import.test_question_failed",
					"job_id", jobID, "test_id", test.ID, "module_index", i, "number", number, "error", iErr)
				return test, res, iErr
			}
			res.Imported++
			res.LastNumber = number
			res.QuestionIDs = append(res.QuestionIDs, q.ID)
		}
	}

	if err := s.jobs.RecordImport(ctx, jobID, res.Imported, []uuid.UUID{test.ID}); err != nil {
		return test, res, err
	}
	if err := s.maybeComplete(ctx, jobID); err != nil {
		return test, res, err
	}
	s.log.Info("import.test_created",
		"job_id", jobID, "test_id", test.ID, "modules", len(spec.Modules), "imported", res.Imported)
	return test, res, nil
}
