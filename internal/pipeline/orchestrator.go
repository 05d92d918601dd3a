// Package pipeline drives extraction jobs from uploaded PDF to reviewed
// question candidates, checkpointing per page so interrupted jobs resume
// without repeating paid model calls.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/internal/classify"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/pdf"
	"github.com/seyi-ajayi/examscan/internal/provider"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

// OpenDocument opens a job's PDF. Swapped for a fake in tests.
type OpenDocument func(path string) (pdf.Renderer, error)

type Orchestrator struct {
	jobs      repository.JobRepository
	pages     repository.PageRepository
	extracted repository.ExtractedRepository
	registry  *provider.Registry
	openDoc   OpenDocument
	cfg       common.PipelineConfig
	log       *slog.Logger
}

func NewOrchestrator(
	jobs repository.JobRepository,
	pages repository.PageRepository,
	extracted repository.ExtractedRepository,
	registry *provider.Registry,
	openDoc OpenDocument,
	cfg common.PipelineConfig,
	logger *slog.Logger,
) *Orchestrator {
	if openDoc == nil {
		openDoc = func(path string) (pdf.Renderer, error) { return pdf.Open(path) }
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.OCRScale <= 0 {
		cfg.OCRScale = 3.0
	}
	if cfg.CropScale <= 0 {
		cfg.CropScale = 2.0
	}
	if cfg.DirectTextMinChars <= 0 {
		cfg.DirectTextMinChars = 200
	}
	return &Orchestrator{
		jobs:      jobs,
		pages:     pages,
		extracted: extracted,
		registry:  registry,
		openDoc:   openDoc,
		cfg:       cfg,
		log:       logger,
	}
}

// pageOutcome is what one page contributed to the job counters. wasFailed
// records the state the page entered with, so a retried page moves the
// failed counter back down instead of being counted twice.
type pageOutcome struct {
	processed bool
	question  bool
	skipped   bool
	failed    bool
	wasFailed bool
	extracted int
	costCents int
	errPage   int
}

// ProcessJob runs one extraction job to completion. Pages already marked
// complete are skipped, so calling this again after a crash or retry picks
// up where the job stopped.
func (o *Orchestrator) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	start := time.Now()
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}

	switch constants.JobStatus(job.Status) {
	case constants.JobStatusPending:
		if job, err = o.jobs.Transition(ctx, jobID, constants.JobStatusProcessing); err != nil {
			return err
		}
	case constants.JobStatusProcessing:
		// Resuming after an interruption.
	default:
		o.log.Warn("pipeline.job.not_runnable", "job_id", jobID, "status", job.Status)
		return nil
	}

	if err := o.runJob(ctx, jobID, job); err != nil {
		o.failJob(jobID, err)
		return err
	}
	o.log.Info("pipeline.job.done",
		"job_id", jobID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// failJob marks a job failed after an error escaped the main loop. It uses
// a fresh context: the run context is often already cancelled or expired,
// and a job left in processing has no legal way back in.
func (o *Orchestrator) failJob(jobID uuid.UUID, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = o.jobs.SetFailure(ctx, jobID, cause.Error(), 0)
	if _, err := o.jobs.Transition(ctx, jobID, constants.JobStatusFailed); err != nil {
		o.log.Error("pipeline.job.fail_transition_error", "job_id", jobID, "error", err)
	}
}

// runJob is the body of ProcessJob once the job is in processing. Any error
// it returns fails the job.
func (o *Orchestrator) runJob(ctx context.Context, jobID uuid.UUID, job *ent.ExtractionJob) error {
	prov, err := o.registry.Get(constants.ParseProvider(job.Provider))
	if err != nil {
		return err
	}

	doc, err := o.openDoc(job.PdfPath)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = doc.Close() }()

	if err := o.pages.EnsureAll(ctx, jobID, doc.NumPages()); err != nil {
		return err
	}
	pending, err := o.pages.ListByState(ctx, jobID,
		constants.PageStateUnprocessed, constants.PageStateOCRDone, constants.PageStateFailed)
	if err != nil {
		return err
	}
	o.log.Info("pipeline.job.start",
		"job_id", jobID,
		"provider", prov.Name(),
		"total_pages", doc.NumPages(),
		"pending_pages", len(pending),
	)

	var anyProcessed, anyFailed bool
	for batchStart := 0; batchStart < len(pending); batchStart += o.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cancelled, err := o.jobCancelled(ctx, jobID); err != nil {
			return err
		} else if cancelled {
			o.log.Info("pipeline.job.cancelled", "job_id", jobID)
			return nil
		}

		end := batchStart + o.cfg.BatchSize
		if end > len(pending) {
			end = len(pending)
		}
		outcomes := o.processBatch(ctx, jobID, prov, doc, pending[batchStart:end])
		for _, out := range outcomes {
			if out.processed {
				anyProcessed = true
			}
			if out.failed {
				anyFailed = true
			}
		}
	}

	if !anyProcessed && anyFailed {
		return fmt.Errorf("no pages could be processed")
	}
	if err := o.reconcileCounters(ctx, jobID); err != nil {
		return err
	}
	if _, err := o.jobs.Transition(ctx, jobID, constants.JobStatusReview); err != nil {
		return err
	}
	return nil
}

// reconcileCounters recomputes the job aggregates from the persisted page
// rows before entering review. Batch deltas can undercount when a crash
// lands between a page checkpoint and its batch commit, and resumed runs
// skip completed pages, so the rows are the source of truth.
func (o *Orchestrator) reconcileCounters(ctx context.Context, jobID uuid.UUID) error {
	pages, err := o.pages.ListByJob(ctx, jobID)
	if err != nil {
		return err
	}
	var totals repository.JobCounters
	for _, page := range pages {
		totals.ActualCostCents += page.OcrCostCents + page.StructuringCostCents
		switch constants.PageState(page.State) {
		case constants.PageStateComplete:
			totals.ProcessedPages++
			if page.IsQuestionPage {
				totals.QuestionPages++
			} else {
				totals.SkippedPages++
			}
		case constants.PageStateFailed:
			totals.FailedPages++
		}
	}
	questions, err := o.extracted.ListQuestions(ctx, jobID, "")
	if err != nil {
		return err
	}
	totals.ExtractedQuestions = len(questions)
	return o.jobs.SetCounters(ctx, jobID, totals)
}

func (o *Orchestrator) jobCancelled(ctx context.Context, jobID uuid.UUID) (bool, error) {
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return false, err
	}
	return constants.JobStatus(job.Status) == constants.JobStatusCancelled, nil
}

// processBatch walks a batch in page order, one page at a time, and commits
// the counters once the batch finishes. Keeping the main loop sequential
// means an interrupted job stops at a known page instead of a scatter of
// half-done ones.
func (o *Orchestrator) processBatch(ctx context.Context, jobID uuid.UUID, prov provider.ExtractionProvider, doc pdf.Renderer, batch []*ent.JobPage) []pageOutcome {
	outcomes := make([]pageOutcome, len(batch))
	for i, page := range batch {
		outcomes[i] = o.processPage(ctx, jobID, prov, doc, page)
	}
	o.commitOutcomes(ctx, jobID, outcomes)
	return outcomes
}

// processConcurrent runs pages in parallel and commits their counters in one
// batch. The reprocessing paths use it for small, reviewer-picked page sets;
// API concurrency is still capped inside the provider client.
func (o *Orchestrator) processConcurrent(ctx context.Context, jobID uuid.UUID, prov provider.ExtractionProvider, doc pdf.Renderer, pages []*ent.JobPage) []pageOutcome {
	outcomes := make([]pageOutcome, len(pages))
	var wg sync.WaitGroup
	for i, page := range pages {
		wg.Add(1)
		go func(i int, page *ent.JobPage) {
			defer wg.Done()
			outcomes[i] = o.processPage(ctx, jobID, prov, doc, page)
		}(i, page)
	}
	wg.Wait()
	o.commitOutcomes(ctx, jobID, outcomes)
	return outcomes
}

// commitOutcomes folds page outcomes into the job counters and records the
// first failed page, if any.
func (o *Orchestrator) commitOutcomes(ctx context.Context, jobID uuid.UUID, outcomes []pageOutcome) {
	var delta repository.JobCounters
	for _, out := range outcomes {
		if out.processed {
			delta.ProcessedPages++
		}
		if out.question {
			delta.QuestionPages++
		}
		if out.skipped {
			delta.SkippedPages++
		}
		if out.failed && !out.wasFailed {
			delta.FailedPages++
		}
		if out.processed && out.wasFailed {
			delta.FailedPages--
		}
		delta.ExtractedQuestions += out.extracted
		delta.ActualCostCents += out.costCents
	}
	if err := o.jobs.AddCounters(ctx, jobID, delta); err != nil {
		o.log.Error("pipeline.counters.update_failed", "job_id", jobID, "error", err)
	}
	for _, out := range outcomes {
		if out.failed && out.errPage > 0 {
			_ = o.jobs.SetFailure(ctx, jobID, "page processing failed", out.errPage)
			break
		}
	}
}

// processPage takes one page through OCR, classification, and structuring,
// checkpointing after the OCR stage so a structuring failure never repeats
// the vision call.
func (o *Orchestrator) processPage(ctx context.Context, jobID uuid.UUID, prov provider.ExtractionProvider, doc pdf.Renderer, page *ent.JobPage) pageOutcome {
	out := pageOutcome{
		errPage:   page.PageNumber,
		wasFailed: constants.PageState(page.State) == constants.PageStateFailed,
	}

	markdown := ""
	isQuestion := false
	// Retried pages that failed after the OCR checkpoint keep their markdown,
	// so only the structuring call is repeated.
	haveOCR := page.Markdown != nil && *page.Markdown != "" &&
		constants.PageState(page.State) != constants.PageStateUnprocessed

	if haveOCR {
		markdown = *page.Markdown
		isQuestion = page.IsQuestionPage
	} else {
		var ocrCost int
		var imagePNG []byte

		// Born-digital pages skip the vision call entirely.
		text, err := doc.Text(page.PageNumber)
		if err == nil && len(text) >= o.cfg.DirectTextMinChars {
			markdown = text
			isQuestion = classify.IsQuestionPage(markdown)
		} else {
			raster, rErr := doc.RenderPNG(ctx, page.PageNumber, o.cfg.OCRScale)
			if rErr != nil {
				return o.failPage(ctx, page, out, "render: "+rErr.Error())
			}
			res, oErr := prov.OCRPage(ctx, raster)
			if oErr != nil {
				return o.failPage(ctx, page, out, "ocr: "+oErr.Error())
			}
			markdown = res.Markdown
			isQuestion = res.IsQuestionPage
			ocrCost = res.CostCents
		}

		// Smaller raster kept for review display and manual cropping.
		if imagePNG, err = doc.RenderPNG(ctx, page.PageNumber, o.cfg.CropScale); err != nil {
			o.log.Warn("pipeline.page.raster_failed",
				"job_id", jobID, "page", page.PageNumber, "error", err)
		}

		state := constants.PageStateOCRDone
		if !isQuestion {
			state = constants.PageStateComplete
		}
		if err := o.pages.SaveResult(ctx, page.ID, repository.PageResult{
			Markdown:       markdown,
			IsQuestionPage: isQuestion,
			State:          state,
			OCRCostCents:   ocrCost,
			ProviderUsed:   string(prov.Name()),
			ImagePNG:       imagePNG,
		}); err != nil {
			return o.failPage(ctx, page, out, "checkpoint: "+err.Error())
		}
		out.costCents += ocrCost
	}

	if !isQuestion {
		out.processed = true
		out.skipped = true
		o.log.Info("pipeline.page.skipped", "job_id", jobID, "page", page.PageNumber)
		return out
	}

	n, structCost, err := o.structurePage(ctx, jobID, prov, page, markdown)
	if err != nil {
		return o.failPage(ctx, page, out, "structure: "+err.Error())
	}
	if err := o.pages.SaveResult(ctx, page.ID, repository.PageResult{
		Markdown:        markdown,
		IsQuestionPage:  true,
		State:           constants.PageStateComplete,
		StructCostCents: structCost,
		ProviderUsed:    string(prov.Name()),
	}); err != nil {
		return o.failPage(ctx, page, out, "checkpoint: "+err.Error())
	}

	out.processed = true
	out.question = true
	out.extracted = n
	out.costCents += structCost
	o.log.Info("pipeline.page.done",
		"job_id", jobID, "page", page.PageNumber, "questions", n, "cost_cents", out.costCents)
	return out
}

// structurePage runs the structuring call and persists its output.
func (o *Orchestrator) structurePage(ctx context.Context, jobID uuid.UUID, prov provider.ExtractionProvider, page *ent.JobPage, markdown string) (int, int, error) {
	var figures []string
	if len(page.DetectedFigures) > 0 {
		_ = json.Unmarshal(page.DetectedFigures, &figures)
	}
	res, err := prov.Structure(ctx, markdown, figures)
	if err != nil {
		return 0, 0, err
	}

	passages := make([]repository.PassageDraft, 0, len(res.Passages))
	for _, p := range res.Passages {
		draft := repository.PassageDraft{
			TempRef:    p.TempID,
			Title:      p.Title,
			Source:     p.Source,
			Author:     p.Author,
			Content:    p.Content,
			Confidence: p.Confidence,
		}
		if p.HasFigure {
			draft.Figures = figures
		}
		passages = append(passages, draft)
	}
	questions := make([]repository.QuestionDraft, 0, len(res.Questions))
	for _, q := range res.Questions {
		questions = append(questions, buildDraft(q))
	}

	n, err := o.extracted.InsertPageResults(ctx, jobID, page.ID, passages, questions)
	if err != nil {
		return 0, 0, err
	}
	return n, res.CostCents, nil
}

func buildDraft(q provider.StructuredQuestion) repository.QuestionDraft {
	extraction, answer, problems := provider.ScoreQuestion(q)
	draft := repository.QuestionDraft{
		PassageTempRef:       q.PassageRef,
		QuestionText:         q.QuestionText,
		QuestionType:         q.QuestionType,
		PassageText:          q.PassageText,
		CorrectAnswer:        q.CorrectAnswer,
		NeedsAnswer:          q.NeedsAnswer,
		Explanation:          q.Explanation,
		NeedsImage:           q.NeedsImage,
		ExtractionConfidence: extraction,
		AnswerConfidence:     answer,
		ValidationErrors:     problems,
	}
	if len(q.Options) > 0 {
		if b, err := json.Marshal(q.Options); err == nil {
			draft.Options = b
		}
	}
	if q.TableData != nil {
		if b, err := json.Marshal(q.TableData); err == nil {
			draft.TableData = b
		}
	}
	if q.Difficulty != "" {
		d := string(q.Difficulty)
		draft.Difficulty = &d
	}
	if q.Domain != "" {
		d := string(q.Domain)
		draft.Domain = &d
	}
	return draft
}

func (o *Orchestrator) failPage(ctx context.Context, page *ent.JobPage, out pageOutcome, message string) pageOutcome {
	if err := o.pages.MarkFailed(ctx, page.ID, message); err != nil {
		o.log.Error("pipeline.page.mark_failed_error", "page", page.PageNumber, "error", err)
	}
	o.log.Warn("pipeline.page.failed", "page", page.PageNumber, "error", message)
	out.failed = true
	return out
}
