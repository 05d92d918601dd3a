package constants

// JobStatus is the canonical status for rows in extraction_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // created, waiting for a worker
	JobStatusProcessing JobStatus = "processing" // a worker owns the job
	JobStatusReview     JobStatus = "review"     // all pages done, awaiting human review
	JobStatusCompleted  JobStatus = "completed"  // approved questions imported
	JobStatusFailed     JobStatus = "failed"     // terminal failure (manually retryable)
	JobStatusCancelled  JobStatus = "cancelled"  // operator cancel
)

// JobStatuses holds the allowed values for the job status field.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusReview),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// Terminal reports whether a job in this status will never be picked up
// again without an explicit operator action.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// jobTransitions lists the allowed edges of the job state machine.
// processing is re-enterable from failed and review via resume/retry.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:    {JobStatusProcessing, JobStatusCancelled},
	JobStatusProcessing: {JobStatusReview, JobStatusFailed, JobStatusCancelled},
	JobStatusReview:     {JobStatusProcessing, JobStatusCompleted, JobStatusCancelled},
	JobStatusFailed:     {JobStatusProcessing},
}

// CanTransition reports whether from -> to is a legal job status change.
func CanTransition(from, to JobStatus) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PageState is the processing state of a single page checkpoint.
type PageState string

const (
	PageStateUnprocessed PageState = "unprocessed" // no work done yet
	PageStateOCRDone     PageState = "ocr_done"    // markdown extracted, structuring pending or skipped
	PageStateComplete    PageState = "complete"    // OCR + structuring finished
	PageStateFailed      PageState = "failed"      // gave up after page-level retries
)

// PageStates holds the allowed values for the page state field.
var PageStates = []string{
	string(PageStateUnprocessed),
	string(PageStateOCRDone),
	string(PageStateComplete),
	string(PageStateFailed),
}

// ReviewStatus is the review lifecycle of an extracted question or passage.
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending"
	ReviewApproved  ReviewStatus = "approved"
	ReviewRejected  ReviewStatus = "rejected"
	ReviewNeedsEdit ReviewStatus = "needs_edit"
	ReviewImported  ReviewStatus = "imported"
)

// ReviewStatuses holds the allowed values for review status fields.
var ReviewStatuses = []string{
	string(ReviewPending),
	string(ReviewApproved),
	string(ReviewRejected),
	string(ReviewNeedsEdit),
	string(ReviewImported),
}
