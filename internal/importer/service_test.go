package importer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/internal/repository"
	"github.com/seyi-ajayi/examscan/internal/testdb"
)

type testEnv struct {
	client    *ent.Client
	jobs      repository.JobRepository
	pages     repository.PageRepository
	extracted repository.ExtractedRepository
	testbank  repository.TestbankRepository
	svc       *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := testdb.Open(t)
	env := &testEnv{
		client:    client,
		jobs:      repository.NewJobRepository(client, logger),
		pages:     repository.NewPageRepository(client, logger),
		extracted: repository.NewExtractedRepository(client, logger),
		testbank:  repository.NewTestbankRepository(client, logger),
	}
	env.svc = NewService(env.jobs, env.extracted, env.testbank, logger)
	return env
}

// reviewJob creates a job parked in review with empty page rows.
func (e *testEnv) reviewJob(t *testing.T, totalPages int) *ent.ExtractionJob {
	t.Helper()
	ctx := testdb.Ctx()
	job, err := e.jobs.Create(ctx, repository.CreateJobParams{
		UserID:     uuid.New(),
		Filename:   "exam.pdf",
		Path:       "/tmp/exam.pdf",
		Hash:       "sha256-import-test",
		TotalPages: totalPages,
		Provider:   constants.ProviderOpenAI,
	})
	require.NoError(t, err)
	require.NoError(t, e.pages.EnsureAll(ctx, job.ID, totalPages))
	_, err = e.jobs.Transition(ctx, job.ID, constants.JobStatusProcessing)
	require.NoError(t, err)
	_, err = e.jobs.Transition(ctx, job.ID, constants.JobStatusReview)
	require.NoError(t, err)
	return job
}

// addQuestion inserts one candidate on a page and returns its id.
func (e *testEnv) addQuestion(t *testing.T, jobID uuid.UUID, pageNumber int, text string) uuid.UUID {
	t.Helper()
	ctx := testdb.Ctx()
	page, err := e.pages.Get(ctx, jobID, pageNumber)
	require.NoError(t, err)
	_, err = e.extracted.InsertPageResults(ctx, jobID, page.ID, nil, []repository.QuestionDraft{{
		QuestionText:  text,
		QuestionType:  constants.QuestionMultipleChoice,
		CorrectAnswer: []string{"A"},
	}})
	require.NoError(t, err)
	rows, err := e.extracted.ListQuestions(ctx, jobID, "")
	require.NoError(t, err)
	for _, r := range rows {
		if r.QuestionText == text {
			return r.ID
		}
	}
	t.Fatalf("question %q not found", text)
	return uuid.Nil
}

func (e *testEnv) approveAll(t *testing.T, jobID uuid.UUID) {
	t.Helper()
	ctx := testdb.Ctx()
	rows, err := e.extracted.ListQuestions(ctx, jobID, "")
	require.NoError(t, err)
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	_, err = e.extracted.SetReviewStatus(ctx, ids, constants.ReviewApproved, uuid.New())
	require.NoError(t, err)
}

func (e *testEnv) emptyModule(t *testing.T) *ent.TestModule {
	t.Helper()
	m, err := e.testbank.CreateModule(testdb.Ctx(), uuid.Nil,
		constants.SectionMath, constants.ModuleOne, "", 35, 0)
	require.NoError(t, err)
	return m
}

func TestImportFollowsPageOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 3)

	// Insert out of page order; numbering must follow pages, not insert time.
	env.addQuestion(t, job.ID, 3, "from page three")
	env.addQuestion(t, job.ID, 1, "from page one")
	env.addQuestion(t, job.ID, 2, "from page two")
	env.approveAll(t, job.ID)

	module := env.emptyModule(t)
	// The module already holds questions numbered up to 5.
	_, err := env.testbank.InsertQuestion(ctx, repository.InsertQuestionParams{
		ModuleID:       module.ID,
		QuestionNumber: 5,
		QuestionText:   "existing question",
		QuestionType:   constants.QuestionMultipleChoice,
	})
	require.NoError(t, err)

	res, err := env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, 6, res.FirstNumber)
	assert.Equal(t, 8, res.LastNumber)

	imported, err := env.client.Question.Query().
		Where(question.ModuleID(module.ID), question.QuestionNumberGTE(6)).
		Order(ent.Asc(question.FieldQuestionNumber)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, imported, 3)
	assert.Equal(t, "from page one", imported[0].QuestionText)
	assert.Equal(t, "from page two", imported[1].QuestionText)
	assert.Equal(t, "from page three", imported[2].QuestionText)
}

func TestImportIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 1)
	env.addQuestion(t, job.ID, 1, "only question")
	env.approveAll(t, job.ID)
	module := env.emptyModule(t)

	res, err := env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	// Second run finds nothing new and adds nothing.
	_, err = env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.Error(t, err)

	count, err := env.client.Question.Query().Where(question.ModuleID(module.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rows, err := env.extracted.ListQuestions(ctx, job.ID, constants.ReviewImported)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotNil(t, rows[0].ImportedQuestionID)
}

func TestImportSharesLinkedPassage(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 1)
	page, err := env.pages.Get(ctx, job.ID, 1)
	require.NoError(t, err)

	title := "The Long Migration"
	_, err = env.extracted.InsertPageResults(ctx, job.ID, page.ID,
		[]repository.PassageDraft{{TempRef: "p1", Title: &title, Content: "Arctic terns travel far..."}},
		[]repository.QuestionDraft{
			{PassageTempRef: "p1", QuestionText: "first about passage", QuestionType: constants.QuestionMultipleChoice, CorrectAnswer: []string{"A"}},
			{PassageTempRef: "p1", QuestionText: "second about passage", QuestionType: constants.QuestionMultipleChoice, CorrectAnswer: []string{"B"}},
		})
	require.NoError(t, err)
	env.approveAll(t, job.ID)

	module := env.emptyModule(t)
	res, err := env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)

	passages, err := env.client.Passage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, passages, 1)

	imported, err := env.client.Question.Query().Where(question.ModuleID(module.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	for _, q := range imported {
		require.NotNil(t, q.PassageID)
		assert.Equal(t, passages[0].ID, *q.PassageID)
	}
}

func TestImportCompletesJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 1)
	env.addQuestion(t, job.ID, 1, "only question")
	env.approveAll(t, job.ID)

	module := env.emptyModule(t)
	_, err := env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.NoError(t, err)

	job, err = env.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), job.Status)
	assert.Equal(t, 1, job.ImportedQuestions)
}

func TestImportLeavesJobOpenWithPendingQuestions(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 2)
	approved := env.addQuestion(t, job.ID, 1, "approved question")
	env.addQuestion(t, job.ID, 2, "still pending")
	_, err := env.extracted.SetReviewStatus(ctx, []uuid.UUID{approved}, constants.ReviewApproved, uuid.New())
	require.NoError(t, err)

	module := env.emptyModule(t)
	_, err = env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.NoError(t, err)

	job, err = env.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusReview), job.Status)
}

func TestImportWithTestBuildsModules(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 4)
	for i := 1; i <= 4; i++ {
		env.addQuestion(t, job.ID, i, string(rune('a'+i-1))+" question")
	}
	env.approveAll(t, job.ID)

	test, res, err := env.svc.ImportWithTest(ctx, job.ID, TestSpec{
		Title:    "Practice Test 1",
		TestType: constants.TestSection,
		Modules: []ModuleSpec{
			{Section: constants.SectionMath, Slot: constants.ModuleOne, QuestionStart: 1, QuestionEnd: 2},
			{Section: constants.SectionMath, Slot: constants.ModuleTwo, Difficulty: constants.ModuleHarder, QuestionStart: 3, QuestionEnd: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Imported)

	modules, err := env.client.TestModule.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	// Each module numbers from 1.
	for _, m := range modules {
		nums, qErr := env.client.Question.Query().
			Where(question.ModuleID(m.ID)).
			Order(ent.Asc(question.FieldQuestionNumber)).
			All(ctx)
		require.NoError(t, qErr)
		require.Len(t, nums, 2)
		assert.Equal(t, 1, nums[0].QuestionNumber)
		assert.Equal(t, 2, nums[1].QuestionNumber)
	}

	job, err = env.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), job.Status)
	assert.Contains(t, job.CreatedTestIds, test.ID)
}

func TestImportWithTestRejectsBadRange(t *testing.T) {
	env := newTestEnv(t)
	job := env.reviewJob(t, 1)
	env.addQuestion(t, job.ID, 1, "only question")
	env.approveAll(t, job.ID)

	_, _, err := env.svc.ImportWithTest(testdb.Ctx(), job.ID, TestSpec{
		Title: "Bad Test",
		Modules: []ModuleSpec{
			{Section: constants.SectionMath, Slot: constants.ModuleOne, QuestionStart: 1, QuestionEnd: 5},
		},
	})
	require.Error(t, err)

	tests, tErr := env.client.Test.Query().Count(testdb.Ctx())
	require.NoError(t, tErr)
	assert.Equal(t, 0, tests)
}

func TestImportSelectedQuestionsOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := testdb.Ctx()
	job := env.reviewJob(t, 3)
	first := env.addQuestion(t, job.ID, 1, "picked first")
	env.addQuestion(t, job.ID, 2, "left behind")
	third := env.addQuestion(t, job.ID, 3, "picked third")
	env.approveAll(t, job.ID)

	module := env.emptyModule(t)
	res, err := env.svc.ImportToModule(ctx, job.ID, module.ID, []uuid.UUID{first, third})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)

	imported, err := env.client.Question.Query().
		Where(question.ModuleID(module.ID)).
		Order(ent.Asc(question.FieldQuestionNumber)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "picked first", imported[0].QuestionText)
	assert.Equal(t, "picked third", imported[1].QuestionText)

	// The unselected candidate stays approved and importable later.
	pending, err := env.extracted.ListQuestions(ctx, job.ID, constants.ReviewApproved)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "left behind", pending[0].QuestionText)

	res, err = env.svc.ImportToModule(ctx, job.ID, module.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}
