package repository_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/repository"
	"github.com/seyi-ajayi/examscan/internal/testdb"
)

func newJobRepo(t *testing.T) repository.JobRepository {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repository.NewJobRepository(testdb.Open(t), logger)
}

func createJob(t *testing.T, jobs repository.JobRepository, userID uuid.UUID, hash string) uuid.UUID {
	t.Helper()
	job, err := jobs.Create(testdb.Ctx(), repository.CreateJobParams{
		UserID:     userID,
		Filename:   "exam.pdf",
		Path:       "/tmp/exam.pdf",
		Hash:       hash,
		TotalPages: 4,
		Provider:   constants.ProviderHybrid,
	})
	require.NoError(t, err)
	return job.ID
}

func TestTransitionFollowsStateMachine(t *testing.T) {
	jobs := newJobRepo(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs, uuid.New(), "hash-a")

	job, err := jobs.Transition(ctx, jobID, constants.JobStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusProcessing), job.Status)
	assert.NotNil(t, job.StartedAt)

	job, err = jobs.Transition(ctx, jobID, constants.JobStatusReview)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusReview), job.Status)

	job, err = jobs.Transition(ctx, jobID, constants.JobStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), job.Status)
	assert.NotNil(t, job.CompletedAt)
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	jobs := newJobRepo(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs, uuid.New(), "hash-b")

	// pending -> review skips processing and must fail.
	_, err := jobs.Transition(ctx, jobID, constants.JobStatusReview)
	require.Error(t, err)
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_TRANSITION", appErr.Code)

	job, err := jobs.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusPending), job.Status)
}

func TestFailedJobResumesOnlyThroughProcessing(t *testing.T) {
	jobs := newJobRepo(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs, uuid.New(), "hash-c")

	_, err := jobs.Transition(ctx, jobID, constants.JobStatusProcessing)
	require.NoError(t, err)
	_, err = jobs.Transition(ctx, jobID, constants.JobStatusFailed)
	require.NoError(t, err)

	_, err = jobs.Transition(ctx, jobID, constants.JobStatusPending)
	require.Error(t, err)

	job, err := jobs.Transition(ctx, jobID, constants.JobStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusProcessing), job.Status)
}

func TestFindActiveByHash(t *testing.T) {
	jobs := newJobRepo(t)
	ctx := testdb.Ctx()
	userID := uuid.New()
	jobID := createJob(t, jobs, userID, "hash-d")

	found, err := jobs.FindActiveByHash(ctx, userID, "hash-d")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, jobID, found.ID)

	// Another user's upload of the same file is not a duplicate.
	found, err = jobs.FindActiveByHash(ctx, uuid.New(), "hash-d")
	require.NoError(t, err)
	assert.Nil(t, found)

	// Terminal jobs do not block a re-upload.
	_, err = jobs.Transition(ctx, jobID, constants.JobStatusCancelled)
	require.NoError(t, err)
	found, err = jobs.FindActiveByHash(ctx, userID, "hash-d")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAddCountersAccumulates(t *testing.T) {
	jobs := newJobRepo(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs, uuid.New(), "hash-e")

	require.NoError(t, jobs.AddCounters(ctx, jobID, repository.JobCounters{
		ProcessedPages:     2,
		QuestionPages:      1,
		SkippedPages:       1,
		ExtractedQuestions: 3,
		ActualCostCents:    7,
	}))
	require.NoError(t, jobs.AddCounters(ctx, jobID, repository.JobCounters{
		ProcessedPages:  1,
		FailedPages:     1,
		ActualCostCents: 2,
	}))

	job, err := jobs.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 3, job.ProcessedPages)
	assert.Equal(t, 1, job.QuestionPages)
	assert.Equal(t, 1, job.SkippedPages)
	assert.Equal(t, 1, job.FailedPages)
	assert.Equal(t, 3, job.ExtractedQuestions)
	assert.Equal(t, 9, job.ActualCostCents)
}

func TestSetTestConfigsRoundTrips(t *testing.T) {
	jobs := newJobRepo(t)
	ctx := testdb.Ctx()
	jobID := createJob(t, jobs, uuid.New(), "hash-f")

	raw := json.RawMessage(`{"title":"Practice Test 4","modules":[{"section":"math","module_slot":"module_1","question_start":1,"question_end":22}]}`)
	job, err := jobs.SetTestConfigs(ctx, jobID, raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(job.TestConfigs))

	_, err = jobs.SetTestConfigs(ctx, uuid.New(), raw)
	require.ErrorIs(t, err, common.ErrNotFound)
}
