package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// InsertQuestionParams is a reviewed question headed for the test bank.
type InsertQuestionParams struct {
	ModuleID       uuid.UUID
	QuestionNumber int
	QuestionText   string
	QuestionType   constants.QuestionType
	PassageID      *uuid.UUID
	Options        json.RawMessage
	TableData      json.RawMessage
	CorrectAnswer  []string
	Explanation    *string
	Difficulty     *string
	Domain         *string
	SkillTags      []string
	ImageURL       *string
}

type TestbankRepository interface {
	GetModule(ctx context.Context, moduleID uuid.UUID) (*ent.TestModule, error)
	MaxQuestionNumber(ctx context.Context, moduleID uuid.UUID) (int, error)
	InsertPassage(ctx context.Context, title *string, content string) (*ent.Passage, error)
	InsertQuestion(ctx context.Context, p InsertQuestionParams) (*ent.Question, error)
	CreateTest(ctx context.Context, title string, testType constants.TestType, createdBy uuid.UUID) (*ent.Test, error)
	CreateModule(ctx context.Context, testID uuid.UUID, section constants.Section, slot constants.ModuleSlot, difficulty constants.ModuleDifficulty, timeLimitMinutes, orderIndex int) (*ent.TestModule, error)
}

type testbankRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTestbankRepository(entc *ent.Client, log *slog.Logger) TestbankRepository {
	return &testbankRepo{ent: entc, log: log}
}

func (r *testbankRepo) GetModule(ctx context.Context, moduleID uuid.UUID) (*ent.TestModule, error) {
	m, err := r.ent.TestModule.Get(ctx, moduleID)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return m, err
}

// MaxQuestionNumber returns the highest assigned number in a module, 0 when
// the module is empty. Imports continue numbering from here.
func (r *testbankRepo) MaxQuestionNumber(ctx context.Context, moduleID uuid.UUID) (int, error) {
	var v []struct {
		Max int `json:"max"`
	}
	err := r.ent.Question.
		Query().
		Where(question.ModuleID(moduleID)).
		Aggregate(func(s *sql.Selector) string {
			return sql.As(sql.Max(question.FieldQuestionNumber), "max")
		}).
		Scan(ctx, &v)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Max, nil
}

func (r *testbankRepo) InsertPassage(ctx context.Context, title *string, content string) (*ent.Passage, error) {
	create := r.ent.Passage.Create().SetContent(content)
	if title != nil {
		create.SetTitle(*title)
	}
	return create.Save(ctx)
}

func (r *testbankRepo) InsertQuestion(ctx context.Context, p InsertQuestionParams) (*ent.Question, error) {
	create := r.ent.Question.
		Create().
		SetModuleID(p.ModuleID).
		SetQuestionNumber(p.QuestionNumber).
		SetQuestionText(p.QuestionText).
		SetQuestionType(string(p.QuestionType))
	if p.PassageID != nil {
		create.SetPassageID(*p.PassageID)
	}
	if len(p.Options) > 0 {
		create.SetOptions(p.Options)
	}
	if len(p.TableData) > 0 {
		create.SetTableData(p.TableData)
	}
	if len(p.CorrectAnswer) > 0 {
		create.SetCorrectAnswer(p.CorrectAnswer)
	}
	if p.Explanation != nil {
		create.SetExplanation(*p.Explanation)
	}
	if p.Difficulty != nil {
		create.SetDifficulty(*p.Difficulty)
	}
	if p.Domain != nil {
		create.SetDomain(*p.Domain)
	}
	if len(p.SkillTags) > 0 {
		create.SetSkillTags(p.SkillTags)
	}
	if p.ImageURL != nil {
		create.SetImageURL(*p.ImageURL)
	}
	q, err := create.Save(ctx)
	if err != nil {
		r.log.Error("testbank.insert_question failed", "module_id", p.ModuleID, "number", p.QuestionNumber, "err", err)
		return nil, err
	}
	return q, nil
}

func (r *testbankRepo) CreateTest(ctx context.Context, title string, testType constants.TestType, createdBy uuid.UUID) (*ent.Test, error) {
	create := r.ent.Test.
		Create().
		SetTitle(title).
		SetTestType(string(testType))
	if createdBy != uuid.Nil {
		create.SetCreatedBy(createdBy)
	}
	t, err := create.Save(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Info("testbank.test_created", "test_id", t.ID, "title", title, "type", testType)
	return t, nil
}

func (r *testbankRepo) CreateModule(ctx context.Context, testID uuid.UUID, section constants.Section, slot constants.ModuleSlot, difficulty constants.ModuleDifficulty, timeLimitMinutes, orderIndex int) (*ent.TestModule, error) {
	create := r.ent.TestModule.
		Create().
		SetSection(string(section)).
		SetModuleSlot(string(slot)).
		SetTimeLimitMinutes(timeLimitMinutes).
		SetOrderIndex(orderIndex)
	if testID != uuid.Nil {
		create.SetTestID(testID)
	}
	if difficulty != "" {
		create.SetModuleDifficulty(string(difficulty))
	}
	return create.Save(ctx)
}
