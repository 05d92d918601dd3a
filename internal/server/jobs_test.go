package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/async"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/repository"
	"github.com/seyi-ajayi/examscan/internal/testdb"
)

// recordingQueue captures queue calls without a redis behind it.
type recordingQueue struct {
	enqueued []async.Task
	dropped  []string
}

func (q *recordingQueue) Enqueue(_ context.Context, task async.Task) (string, error) {
	q.enqueued = append(q.enqueued, task)
	return fmt.Sprintf("0-%d", len(q.enqueued)), nil
}

func (q *recordingQueue) Drop(_ context.Context, entryID string) error {
	q.dropped = append(q.dropped, entryID)
	return nil
}

func (q *recordingQueue) Close() error { return nil }

func newJobService(t *testing.T) (*ExtractionService, repository.JobRepository, *recordingQueue) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := testdb.Open(t)
	jobs := repository.NewJobRepository(client, logger)
	queue := &recordingQueue{}
	svc := NewExtractionService(jobs, nil, nil, nil, nil, nil, queue, &common.Config{}, logger)
	return svc, jobs, queue
}

func createJob(t *testing.T, jobs repository.JobRepository) uuid.UUID {
	t.Helper()
	job, err := jobs.Create(testdb.Ctx(), repository.CreateJobParams{
		UserID:     uuid.New(),
		Filename:   "exam.pdf",
		Path:       "/tmp/exam.pdf",
		Hash:       "sha256-server-test",
		TotalPages: 3,
		Provider:   constants.ProviderOpenAI,
	})
	require.NoError(t, err)
	return job.ID
}

func TestCancelJobDropsQueuedTask(t *testing.T) {
	svc, jobs, queue := newJobService(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs)
	require.NoError(t, jobs.SetTaskID(ctx, jobID, "1700000000-0"))

	resp, err := svc.CancelJob(ctx, &examscanv1.CancelJobRequest{JobId: jobID.String()})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCancelled), resp.GetJob().GetStatus())
	assert.Equal(t, []string{"1700000000-0"}, queue.dropped)
}

func TestCancelJobWithoutQueuedTask(t *testing.T) {
	svc, jobs, queue := newJobService(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs)

	resp, err := svc.CancelJob(ctx, &examscanv1.CancelJobRequest{JobId: jobID.String()})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCancelled), resp.GetJob().GetStatus())
	assert.Empty(t, queue.dropped)
}
