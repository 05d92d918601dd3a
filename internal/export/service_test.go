package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/internal/provider"
	"github.com/seyi-ajayi/examscan/internal/repository"
	"github.com/seyi-ajayi/examscan/internal/testdb"
)

func setupJob(t *testing.T) (*Service, repository.PageRepository, repository.ExtractedRepository, uuid.UUID) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := testdb.Open(t)
	jobs := repository.NewJobRepository(client, logger)
	pages := repository.NewPageRepository(client, logger)
	extracted := repository.NewExtractedRepository(client, logger)

	job, err := jobs.Create(testdb.Ctx(), repository.CreateJobParams{
		UserID:     uuid.New(),
		Filename:   "exam.pdf",
		Path:       "/tmp/exam.pdf",
		Hash:       "sha256-export-test",
		TotalPages: 3,
		Provider:   constants.ProviderHybrid,
	})
	require.NoError(t, err)
	require.NoError(t, pages.EnsureAll(testdb.Ctx(), job.ID, 3))

	return NewService(jobs, extracted, logger), pages, extracted, job.ID
}

func TestExportReviewSheetOrdersByPage(t *testing.T) {
	svc, pages, extracted, jobID := setupJob(t)
	ctx := testdb.Ctx()

	opts, err := json.Marshal([]provider.Option{
		{ID: "A", Text: "first"},
		{ID: "B", Text: "second"},
	})
	require.NoError(t, err)

	// Insert out of page order so the sheet has to re-sort.
	for _, pageNumber := range []int{3, 1} {
		page, err := pages.Get(ctx, jobID, pageNumber)
		require.NoError(t, err)
		domain := "algebra"
		_, err = extracted.InsertPageResults(ctx, jobID, page.ID, nil, []repository.QuestionDraft{{
			QuestionText:     fmt.Sprintf("question from page %d", pageNumber),
			QuestionType:     constants.QuestionMultipleChoice,
			Options:          opts,
			CorrectAnswer:    []string{"A"},
			Domain:           &domain,
			ValidationErrors: []string{"answer confidence low"},
		}})
		require.NoError(t, err)
	}

	data, err := svc.ExportReviewSheetXLSX(ctx, jobID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Questions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Page", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "3", rows[2][0])
	assert.Equal(t, "question from page 1", rows[1][2])
	assert.Contains(t, rows[1][4], "A) first")
	assert.Contains(t, rows[1][4], "B) second")
	assert.Equal(t, "A", rows[1][5])
	assert.Equal(t, "algebra", rows[1][6])
	assert.Equal(t, "answer confidence low", rows[1][9])
}

func TestExportReviewSheetEmptyJob(t *testing.T) {
	svc, _, _, jobID := setupJob(t)

	data, err := svc.ExportReviewSheetXLSX(testdb.Ctx(), jobID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Questions")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportReviewSheetUnknownJob(t *testing.T) {
	svc, _, _, _ := setupJob(t)
	_, err := svc.ExportReviewSheetXLSX(testdb.Ctx(), uuid.New())
	require.Error(t, err)
}
