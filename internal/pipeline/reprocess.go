package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

// StructureSkipped re-runs structuring over pages the classifier skipped.
// Reviewers trigger this when the heuristic missed real questions. The OCR
// markdown is already on the page rows, so no vision calls happen.
func (o *Orchestrator) StructureSkipped(ctx context.Context, jobID uuid.UUID, providerName constants.Provider, pageNumbers []int) (int, error) {
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if providerName == "" {
		providerName = constants.ParseProvider(job.Provider)
	}
	prov, err := o.registry.Get(providerName)
	if err != nil {
		return 0, err
	}

	skipped, err := o.pages.ListSkipped(ctx, jobID)
	if err != nil {
		return 0, err
	}
	wanted := make(map[int]bool, len(pageNumbers))
	for _, n := range pageNumbers {
		wanted[n] = true
	}

	eligible := make([]*ent.JobPage, 0, len(skipped))
	for _, page := range skipped {
		if len(wanted) > 0 && !wanted[page.PageNumber] {
			continue
		}
		if page.Markdown == nil || *page.Markdown == "" {
			continue
		}
		eligible = append(eligible, page)
	}

	// Structuring-only calls, so they run in parallel; the provider client
	// caps API concurrency.
	type restructured struct {
		questions int
		cost      int
		err       error
	}
	results := make([]restructured, len(eligible))
	var wg sync.WaitGroup
	for i, page := range eligible {
		wg.Add(1)
		go func(i int, page *ent.JobPage) {
			defer wg.Done()
			n, cost, sErr := o.structurePage(ctx, jobID, prov, page, *page.Markdown)
			if sErr != nil {
				o.log.Warn("pipeline.restructure.page_failed",
					"job_id", jobID, "page", page.PageNumber, "error", sErr)
				return
			}
			if n == 0 {
				return
			}
			if err := o.pages.SaveResult(ctx, page.ID, repository.PageResult{
				Markdown:        *page.Markdown,
				IsQuestionPage:  true,
				State:           constants.PageStateComplete,
				StructCostCents: cost,
				ProviderUsed:    string(prov.Name()),
			}); err != nil {
				results[i].err = err
				return
			}
			results[i] = restructured{questions: n, cost: cost}
		}(i, page)
	}
	wg.Wait()

	total := 0
	var delta repository.JobCounters
	var firstErr error
	for _, r := range results {
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		if r.questions == 0 {
			continue
		}
		total += r.questions
		delta.QuestionPages++
		delta.SkippedPages--
		delta.ExtractedQuestions += r.questions
		delta.ActualCostCents += r.cost
	}
	if err := o.jobs.AddCounters(ctx, jobID, delta); err != nil {
		return total, err
	}
	if firstErr != nil {
		return total, firstErr
	}
	o.log.Info("pipeline.restructure.done", "job_id", jobID, "questions", total)
	return total, nil
}

// ReextractPages throws away the output of specific pages and runs them
// again from the raster, optionally with a different provider. Anything a
// reviewer already imported from those pages is left alone in the test bank;
// only the candidate rows are replaced.
func (o *Orchestrator) ReextractPages(ctx context.Context, jobID uuid.UUID, pageNumbers []int, providerName constants.Provider) (int, error) {
	if len(pageNumbers) == 0 {
		return 0, fmt.Errorf("no pages requested")
	}
	job, err := o.jobs.Get(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if providerName == "" {
		providerName = constants.ParseProvider(job.Provider)
	}
	prov, err := o.registry.Get(providerName)
	if err != nil {
		return 0, err
	}

	var targets []*ent.JobPage
	var ids []uuid.UUID
	for _, n := range pageNumbers {
		page, gErr := o.pages.Get(ctx, jobID, n)
		if gErr != nil {
			return 0, fmt.Errorf("page %d: %w", n, gErr)
		}
		targets = append(targets, page)
		ids = append(ids, page.ID)
	}

	removed, err := o.extracted.DeleteByPages(ctx, ids)
	if err != nil {
		return 0, err
	}
	if err := o.pages.Reset(ctx, ids, true); err != nil {
		return 0, err
	}

	// Back out what the reset pages contributed so their second run does
	// not count them twice. Spent cost stays on the job.
	undo := repository.JobCounters{ExtractedQuestions: -removed}
	for _, page := range targets {
		switch constants.PageState(page.State) {
		case constants.PageStateComplete:
			undo.ProcessedPages--
			if page.IsQuestionPage {
				undo.QuestionPages--
			} else {
				undo.SkippedPages--
			}
		case constants.PageStateFailed:
			undo.FailedPages--
		}
	}
	if err := o.jobs.AddCounters(ctx, jobID, undo); err != nil {
		return 0, err
	}
	o.log.Info("pipeline.reextract.start",
		"job_id", jobID, "pages", len(targets), "provider", prov.Name(), "removed", removed)

	doc, err := o.openDoc(job.PdfPath)
	if err != nil {
		return 0, err
	}
	defer func() { _ = doc.Close() }()

	// Re-fetch after the reset so processPage sees clean state.
	fresh := make([]*ent.JobPage, len(targets))
	for i, prevPage := range targets {
		page, gErr := o.pages.Get(ctx, jobID, prevPage.PageNumber)
		if gErr != nil {
			return 0, gErr
		}
		fresh[i] = page
	}
	extractedTotal := 0
	for _, out := range o.processConcurrent(ctx, jobID, prov, doc, fresh) {
		extractedTotal += out.extracted
	}
	o.log.Info("pipeline.reextract.done", "job_id", jobID, "questions", extractedTotal)
	return extractedTotal, nil
}

// Cancel stops a job. The batch loop notices the status change between
// batches; in-flight pages finish and checkpoint normally.
func (o *Orchestrator) Cancel(ctx context.Context, jobID uuid.UUID) error {
	_, err := o.jobs.Transition(ctx, jobID, constants.JobStatusCancelled)
	return err
}

// Retry moves a failed job back to processing so a worker resumes it.
// Completed pages stay checkpointed.
func (o *Orchestrator) Retry(ctx context.Context, jobID uuid.UUID) (int, error) {
	retries, err := o.jobs.IncRetry(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if _, err := o.jobs.Transition(ctx, jobID, constants.JobStatusProcessing); err != nil {
		return retries, err
	}
	return retries, nil
}
