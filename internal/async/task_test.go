package async

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
)

func TestTaskRoundTripsThroughStreamFields(t *testing.T) {
	task := NewTask(TaskReextractPages, uuid.New())
	task.Pages = []int{3, 7}
	task.Provider = constants.ProviderDeepInfra

	got, err := taskFromFields(task.fields())
	require.NoError(t, err)

	assert.Equal(t, task.Kind, got.Kind)
	assert.Equal(t, task.JobID, got.JobID)
	assert.Equal(t, task.Pages, got.Pages)
	assert.Equal(t, task.Provider, got.Provider)
	assert.Equal(t, task.TraceID, got.TraceID)
}

func TestTaskFromFieldsRejectsUnknownKind(t *testing.T) {
	_, err := taskFromFields(map[string]any{
		"kind":   "mystery",
		"job_id": uuid.NewString(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task kind")
}

func TestTaskFromFieldsRejectsBadJobID(t *testing.T) {
	_, err := taskFromFields(map[string]any{
		"kind":   string(TaskProcessJob),
		"job_id": "not-a-uuid",
	})
	require.Error(t, err)
}

func TestTaskFromFieldsAcceptsCommaSeparatedPages(t *testing.T) {
	got, err := taskFromFields(map[string]any{
		"kind":   string(TaskStructureSkipped),
		"job_id": uuid.NewString(),
		"pages":  "2, 5, 9",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 9}, got.Pages)
}
