package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/pdf"
	"github.com/seyi-ajayi/examscan/internal/provider"
	"github.com/seyi-ajayi/examscan/internal/repository"
	"github.com/seyi-ajayi/examscan/internal/testdb"
)

// fakeDoc serves scripted text layers and rasters.
type fakeDoc struct {
	pages   int
	texts   map[int]string
	renders atomic.Int32
}

func (d *fakeDoc) NumPages() int { return d.pages }

func (d *fakeDoc) RenderPNG(_ context.Context, page int, scale float64) ([]byte, error) {
	d.renders.Add(1)
	return []byte(fmt.Sprintf("png-%d@%g", page, scale)), nil
}

func (d *fakeDoc) Text(page int) (string, error) {
	return d.texts[page], nil
}

func (d *fakeDoc) Close() error { return nil }

// fakeProvider scripts OCR and structuring per page.
type fakeProvider struct {
	name        constants.Provider
	ocrFn       func(imagePNG []byte) (provider.OCRResult, error)
	structFn    func(markdown string) (provider.StructureResult, error)
	ocrCalls    atomic.Int32
	structCalls atomic.Int32
}

func (f *fakeProvider) Name() constants.Provider { return f.name }

func (f *fakeProvider) OCRPage(_ context.Context, imagePNG []byte) (provider.OCRResult, error) {
	f.ocrCalls.Add(1)
	return f.ocrFn(imagePNG)
}

func (f *fakeProvider) Structure(_ context.Context, markdown string, _ []string) (provider.StructureResult, error) {
	f.structCalls.Add(1)
	return f.structFn(markdown)
}

func oneQuestionResult(cost int) provider.StructureResult {
	return provider.StructureResult{
		Questions: []provider.StructuredQuestion{{
			QuestionText:  "Which choice best fits?",
			QuestionType:  constants.QuestionMultipleChoice,
			Options:       []provider.Option{{ID: "A", Text: "1"}, {ID: "B", Text: "2"}, {ID: "C", Text: "3"}, {ID: "D", Text: "4"}},
			CorrectAnswer: []string{"B"},
			Domain:        constants.DomainAlgebra,
			Difficulty:    constants.DifficultyMedium,
			Confidence:    0.9,
		}},
		CostCents: cost,
	}
}

// questionText is a born-digital page: long enough to skip the vision call
// and obviously exam content.
var questionText = "Question 1\n\nIf $2x + 3 = 11$, what is the value of $x$?\n\n" +
	"A) 2\nB) 4\nC) 6\nD) 8\n\n" + strings.Repeat("Work the problem carefully before answering. ", 4)

type testEnv struct {
	client    *ent.Client
	jobs      repository.JobRepository
	pages     repository.PageRepository
	extracted repository.ExtractedRepository
	registry  *provider.Registry
	orch      *Orchestrator
}

func newTestEnv(t *testing.T, doc *fakeDoc, prov *fakeProvider) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := testdb.Open(t)

	env := &testEnv{
		client:    client,
		jobs:      repository.NewJobRepository(client, logger),
		pages:     repository.NewPageRepository(client, logger),
		extracted: repository.NewExtractedRepository(client, logger),
		registry:  provider.NewRegistry(common.ProvidersConfig{}, provider.RetryPolicy{}, 2, logger),
	}
	env.registry.Register(prov)
	env.orch = NewOrchestrator(
		env.jobs, env.pages, env.extracted, env.registry,
		func(string) (pdf.Renderer, error) { return doc, nil },
		common.PipelineConfig{BatchSize: 2, DirectTextMinChars: 200, OCRScale: 3, CropScale: 2},
		logger,
	)
	return env
}

func (e *testEnv) createJob(t *testing.T, totalPages int) *ent.ExtractionJob {
	t.Helper()
	job, err := e.jobs.Create(testdb.Ctx(), repository.CreateJobParams{
		UserID:     uuid.New(),
		Filename:   "exam.pdf",
		Path:       "/tmp/exam.pdf",
		Hash:       "sha256-test",
		TotalPages: totalPages,
		Provider:   constants.ProviderOpenAI,
	})
	require.NoError(t, err)
	return job
}

func TestProcessJobEndToEnd(t *testing.T) {
	// Page 1 is born-digital, page 2 is an ad, page 3 needs OCR.
	doc := &fakeDoc{pages: 3, texts: map[int]string{1: questionText}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func(imagePNG []byte) (provider.OCRResult, error) {
			if strings.HasPrefix(string(imagePNG), "png-2@") {
				return provider.OCRResult{
					Markdown:       "Advertisement. Get ahead with our premium prep course today, students love it.",
					IsQuestionPage: false,
					CostCents:      2,
				}, nil
			}
			return provider.OCRResult{
				Markdown:       "Question 7\n\nWhich of the following is equivalent to $x^2 - 9$?\nA) ...\nB) ...\nC) ...\nD) ...",
				IsQuestionPage: true,
				CostCents:      3,
			}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 3)

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusReview), job.Status)
	assert.Equal(t, 3, job.ProcessedPages)
	assert.Equal(t, 2, job.QuestionPages)
	assert.Equal(t, 1, job.SkippedPages)
	assert.Equal(t, 0, job.FailedPages)
	assert.Equal(t, 2, job.ExtractedQuestions)

	// Page 1 never hit the vision model.
	assert.Equal(t, int32(2), prov.ocrCalls.Load())
	assert.Equal(t, int32(2), prov.structCalls.Load())

	// Job cost is exactly the sum of page costs.
	pages, err := env.pages.ListByJob(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	sum := 0
	for _, p := range pages {
		sum += p.OcrCostCents + p.StructuringCostCents
	}
	assert.Equal(t, sum, job.ActualCostCents)

	questions, err := env.extracted.ListQuestions(testdb.Ctx(), job.ID, "")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, string(constants.ReviewPending), questions[0].ReviewStatus)
}

func TestProcessJobResumesFromCheckpoint(t *testing.T) {
	doc := &fakeDoc{pages: 2, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			return provider.OCRResult{Markdown: "Question 1 ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 2)

	// First page checkpointed by a previous run that crashed before its
	// batch counters were committed.
	require.NoError(t, env.pages.EnsureAll(testdb.Ctx(), job.ID, 2))
	page1, err := env.pages.Get(testdb.Ctx(), job.ID, 1)
	require.NoError(t, err)
	require.NoError(t, env.pages.SaveResult(testdb.Ctx(), page1.ID, repository.PageResult{
		Markdown:        "done already",
		IsQuestionPage:  true,
		State:           constants.PageStateComplete,
		OCRCostCents:    3,
		StructCostCents: 2,
	}))

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	// Only the second page cost any model calls.
	assert.Equal(t, int32(1), prov.ocrCalls.Load())
	assert.Equal(t, int32(1), prov.structCalls.Load())

	job, err = env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusReview), job.Status)
	// Aggregates come from the page rows at the review transition, so the
	// crashed run's uncommitted batch is still accounted for.
	assert.Equal(t, 2, job.ProcessedPages)
	assert.Equal(t, 2, job.QuestionPages)
	assert.Equal(t, 7, job.ActualCostCents)
}

func TestProcessJobPageFailureIsolated(t *testing.T) {
	doc := &fakeDoc{pages: 2, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func(imagePNG []byte) (provider.OCRResult, error) {
			if strings.HasPrefix(string(imagePNG), "png-1@") {
				return provider.OCRResult{}, fmt.Errorf("model unavailable")
			}
			return provider.OCRResult{Markdown: "Question 2 ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 2)

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusReview), job.Status)
	assert.Equal(t, 1, job.ProcessedPages)
	assert.Equal(t, 1, job.FailedPages)
	require.NotNil(t, job.LastErrorPage)
	assert.Equal(t, 1, *job.LastErrorPage)

	page1, err := env.pages.Get(testdb.Ctx(), job.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, string(constants.PageStateFailed), page1.State)
	assert.Equal(t, 1, page1.RetryCount)
}

func TestRetryRecoversFailedPage(t *testing.T) {
	doc := &fakeDoc{pages: 2, texts: map[int]string{}}
	var failures atomic.Int32
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func(imagePNG []byte) (provider.OCRResult, error) {
			if strings.HasPrefix(string(imagePNG), "png-1@3") && failures.Add(1) == 1 {
				return provider.OCRResult{}, fmt.Errorf("model unavailable")
			}
			return provider.OCRResult{Markdown: "Question 5 ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 2)

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, job.FailedPages)

	retries, err := env.orch.Retry(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, retries)
	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	job, err = env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusReview), job.Status)
	assert.Equal(t, 2, job.ProcessedPages)
	assert.Equal(t, 0, job.FailedPages)

	page1, err := env.pages.Get(testdb.Ctx(), job.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, string(constants.PageStateComplete), page1.State)
	assert.Equal(t, 1, page1.RetryCount)
	assert.Nil(t, page1.ErrorMessage)
}

func TestProcessJobAllPagesFailed(t *testing.T) {
	doc := &fakeDoc{pages: 1, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			return provider.OCRResult{}, fmt.Errorf("model unavailable")
		},
		structFn: func(string) (provider.StructureResult, error) {
			return provider.StructureResult{}, nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 1)

	require.Error(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), job.Status)
}

func TestProcessJobInterruptedRunFailsJob(t *testing.T) {
	// Four pages, batch size two: the first batch cancels the run, so the
	// second batch boundary must take the job out of processing. A job left
	// in processing has no legal transition back in.
	ctx, cancel := context.WithCancel(testdb.Ctx())
	defer cancel()

	doc := &fakeDoc{pages: 4, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			cancel()
			return provider.OCRResult{}, context.Canceled
		},
		structFn: func(string) (provider.StructureResult, error) {
			return provider.StructureResult{}, nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 4)

	require.Error(t, env.orch.ProcessJob(ctx, job.ID))

	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), job.Status)

	_, err = env.orch.Retry(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	job, err = env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusProcessing), job.Status)
}

func TestProcessJobOpenFailureFailsJob(t *testing.T) {
	env := newTestEnv(t, &fakeDoc{pages: 1}, &fakeProvider{
		name:     constants.ProviderOpenAI,
		ocrFn:    func([]byte) (provider.OCRResult, error) { panic("should not be called") },
		structFn: func(string) (provider.StructureResult, error) { panic("should not be called") },
	})
	env.orch = NewOrchestrator(
		env.jobs, env.pages, env.extracted, env.registry,
		func(string) (pdf.Renderer, error) { return nil, fmt.Errorf("corrupt file") },
		common.PipelineConfig{BatchSize: 2, DirectTextMinChars: 200, OCRScale: 3, CropScale: 2},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	job := env.createJob(t, 1)

	require.Error(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "open pdf")
}

func TestProcessJobSkipsTerminalJob(t *testing.T) {
	doc := &fakeDoc{pages: 1, texts: map[int]string{}}
	prov := &fakeProvider{
		name:     constants.ProviderOpenAI,
		ocrFn:    func([]byte) (provider.OCRResult, error) { panic("should not be called") },
		structFn: func(string) (provider.StructureResult, error) { panic("should not be called") },
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 1)

	_, err := env.jobs.Transition(testdb.Ctx(), job.ID, constants.JobStatusCancelled)
	require.NoError(t, err)

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))
	assert.Equal(t, int32(0), prov.ocrCalls.Load())
}

func TestStructureSkippedFindsMissedQuestions(t *testing.T) {
	doc := &fakeDoc{pages: 1, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			// Classifier calls this page filler.
			return provider.OCRResult{Markdown: "Advertisement for a prep course with plenty of words in it.", CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(2), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 1)

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))
	job, err := env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	require.Equal(t, 1, job.SkippedPages)
	require.Equal(t, 0, job.ExtractedQuestions)

	n, err := env.orch.StructureSkipped(testdb.Ctx(), job.ID, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	job, err = env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, job.SkippedPages)
	assert.Equal(t, 1, job.QuestionPages)
	assert.Equal(t, 1, job.ExtractedQuestions)

	page, err := env.pages.Get(testdb.Ctx(), job.ID, 1)
	require.NoError(t, err)
	assert.True(t, page.IsQuestionPage)
}

func TestReextractPagesReplacesOutput(t *testing.T) {
	doc := &fakeDoc{pages: 1, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			return provider.OCRResult{Markdown: "Question 1 ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 1)
	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	before, err := env.extracted.ListQuestions(testdb.Ctx(), job.ID, "")
	require.NoError(t, err)
	require.Len(t, before, 1)

	// Second pass uses a different provider and yields two questions.
	alt := &fakeProvider{
		name: constants.ProviderDeepInfra,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			return provider.OCRResult{Markdown: "Question 1 ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			res := oneQuestionResult(1)
			res.Questions = append(res.Questions, res.Questions[0])
			return res, nil
		},
	}
	env.registry.Register(alt)

	n, err := env.orch.ReextractPages(testdb.Ctx(), job.ID, []int{1}, constants.ProviderDeepInfra)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int32(1), alt.ocrCalls.Load())

	after, err := env.extracted.ListQuestions(testdb.Ctx(), job.ID, "")
	require.NoError(t, err)
	require.Len(t, after, 2)
	for _, q := range after {
		assert.NotEqual(t, before[0].ID, q.ID)
	}

	job, err = env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, job.ExtractedQuestions)
	// The page went through the pipeline twice but counts once.
	assert.Equal(t, 1, job.ProcessedPages)
	assert.Equal(t, 1, job.QuestionPages)
	assert.LessOrEqual(t, job.ProcessedPages, job.TotalPages)

	page, err := env.pages.Get(testdb.Ctx(), job.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProviderDeepInfra), *page.ProviderUsed)
}

func TestProcessJobWalksPagesInOrder(t *testing.T) {
	doc := &fakeDoc{pages: 4, texts: map[int]string{}}
	var mu sync.Mutex
	var seen []int
	var inFlight, peak atomic.Int32
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func(imagePNG []byte) (provider.OCRResult, error) {
			if cur := inFlight.Add(1); cur > peak.Load() {
				peak.Store(cur)
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			var page int
			var scale float64
			_, _ = fmt.Sscanf(string(imagePNG), "png-%d@%g", &page, &scale)
			mu.Lock()
			seen = append(seen, page)
			mu.Unlock()
			return provider.OCRResult{Markdown: "Question ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 4)

	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	assert.Equal(t, []int{1, 2, 3, 4}, seen)
	assert.Equal(t, int32(1), peak.Load())
}

func TestReextractPagesOverlap(t *testing.T) {
	doc := &fakeDoc{pages: 2, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			return provider.OCRResult{Markdown: "Question ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 2)
	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	// Both pages must be in flight at once or the second run deadlocks here.
	release := make(chan struct{})
	var arrived atomic.Int32
	prov.ocrFn = func([]byte) (provider.OCRResult, error) {
		if arrived.Add(1) == 2 {
			close(release)
		}
		select {
		case <-release:
		case <-time.After(5 * time.Second):
			return provider.OCRResult{}, fmt.Errorf("pages ran one at a time")
		}
		return provider.OCRResult{Markdown: "Question ... A) B) C) D)", IsQuestionPage: true, CostCents: 1}, nil
	}

	n, err := env.orch.ReextractPages(testdb.Ctx(), job.ID, []int{1, 2}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStructureSkippedOverlap(t *testing.T) {
	doc := &fakeDoc{pages: 2, texts: map[int]string{}}
	prov := &fakeProvider{
		name: constants.ProviderOpenAI,
		ocrFn: func([]byte) (provider.OCRResult, error) {
			return provider.OCRResult{Markdown: "Advertisement for a prep course with plenty of words in it.", CostCents: 1}, nil
		},
		structFn: func(string) (provider.StructureResult, error) {
			return oneQuestionResult(1), nil
		},
	}
	env := newTestEnv(t, doc, prov)
	job := env.createJob(t, 2)
	require.NoError(t, env.orch.ProcessJob(testdb.Ctx(), job.ID))

	release := make(chan struct{})
	var arrived atomic.Int32
	prov.structFn = func(string) (provider.StructureResult, error) {
		if arrived.Add(1) == 2 {
			close(release)
		}
		select {
		case <-release:
		case <-time.After(5 * time.Second):
			return provider.StructureResult{}, fmt.Errorf("pages ran one at a time")
		}
		return oneQuestionResult(1), nil
	}

	n, err := env.orch.StructureSkipped(testdb.Ctx(), job.ID, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	job, err = env.jobs.Get(testdb.Ctx(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, job.SkippedPages)
	assert.Equal(t, 2, job.QuestionPages)
}
