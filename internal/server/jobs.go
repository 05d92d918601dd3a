package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/async"
	"github.com/seyi-ajayi/examscan/internal/pdf"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

// watchPollInterval is how often WatchJob re-reads the job row.
const watchPollInterval = 2 * time.Second

func (s *ExtractionService) UploadPDF(ctx context.Context, req *examscanv1.UploadPDFRequest) (*examscanv1.UploadPDFResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	filename := req.GetFilename()
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, status.Error(codes.InvalidArgument, "file must be a PDF")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is empty")
	}
	if int64(len(content)) > s.cfg.Upload.MaxSizeBytes {
		return nil, status.Errorf(codes.InvalidArgument,
			"PDF too large, max %d bytes", s.cfg.Upload.MaxSizeBytes)
	}

	var targetModuleID *uuid.UUID
	if req.GetTargetModuleId() != "" {
		id, err := parseUUID("target_module_id", req.GetTargetModuleId())
		if err != nil {
			return nil, err
		}
		if _, err := s.testbank.GetModule(ctx, id); err != nil {
			return nil, toStatus(err, "target module not found")
		}
		targetModuleID = &id
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	existing, err := s.jobs.FindActiveByHash(ctx, userID, hash)
	if err != nil {
		return nil, toStatus(err, "upload")
	}
	if existing != nil {
		return nil, status.Errorf(codes.AlreadyExists,
			"PDF already being processed, job %s", existing.ID)
	}

	doc, err := pdf.OpenBytes(content)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "content is not a readable PDF")
	}
	totalPages := doc.NumPages()
	doc.Close()
	if totalPages > s.cfg.Upload.MaxPages {
		return nil, status.Errorf(codes.InvalidArgument,
			"PDF has %d pages, max %d", totalPages, s.cfg.Upload.MaxPages)
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		return nil, status.Error(codes.Internal, "upload storage unavailable")
	}
	path := filepath.Join(s.cfg.Upload.Dir, fmt.Sprintf("%s_%s", hash[:16], filepath.Base(filename)))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, status.Error(codes.Internal, "failed to store upload")
	}

	job, err := s.jobs.Create(ctx, repository.CreateJobParams{
		UserID:         userID,
		TargetModuleID: targetModuleID,
		Filename:       filename,
		Path:           path,
		Hash:           hash,
		TotalPages:     totalPages,
		Provider:       constants.ParseProvider(req.GetProvider()),
		// rough 0.3 cents per page for the hybrid path
		EstimatedCents: totalPages * 3 / 10,
	})
	if err != nil {
		return nil, toStatus(err, "create job")
	}

	taskID, err := s.queue.Enqueue(ctx, async.NewTask(async.TaskProcessJob, job.ID))
	if err != nil {
		s.logger.Error("upload.enqueue_failed", "job_id", job.ID, "error", err)
		return nil, status.Error(codes.Internal, "failed to queue job")
	}
	if err := s.jobs.SetTaskID(ctx, job.ID, taskID); err != nil {
		s.logger.Warn("upload.task_id_not_recorded", "job_id", job.ID, "error", err)
	}

	job, err = s.jobs.Get(ctx, job.ID)
	if err != nil {
		return nil, toStatus(err, "job not found")
	}
	s.logger.Info("upload.accepted",
		"job_id", job.ID, "user_id", userID, "pages", totalPages, "provider", job.Provider)
	return &examscanv1.UploadPDFResponse{Job: jobToProto(job)}, nil
}

func (s *ExtractionService) GetJob(ctx context.Context, req *examscanv1.GetJobRequest) (*examscanv1.GetJobResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, toStatus(err, "job not found")
	}
	return &examscanv1.GetJobResponse{Job: jobToProto(job)}, nil
}

func (s *ExtractionService) ListJobs(ctx context.Context, req *examscanv1.ListJobsRequest) (*examscanv1.ListJobsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	var filter constants.JobStatus
	if req.GetStatus() != "" {
		filter, err = parseJobStatus(req.GetStatus())
		if err != nil {
			return nil, err
		}
	}
	limit := int(req.GetLimit())
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	jobs, total, err := s.jobs.List(ctx, userID, filter, limit, int(req.GetOffset()))
	if err != nil {
		return nil, toStatus(err, "list jobs")
	}
	out := make([]*examscanv1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToProto(j))
	}
	return &examscanv1.ListJobsResponse{Jobs: out, Total: int32(total)}, nil
}

// WatchJob streams job snapshots while processing runs. The stream ends
// once the job reaches a terminal status or the client goes away.
func (s *ExtractionService) WatchJob(req *examscanv1.WatchJobRequest, stream examscanv1.ExtractionService_WatchJobServer) error {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return err
	}
	ctx := stream.Context()

	var last *examscanv1.Job
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		job, err := s.jobs.Get(ctx, jobID)
		if err != nil {
			return toStatus(err, "job not found")
		}
		snap := jobToProto(job)
		if last == nil || jobChanged(last, snap) {
			if err := stream.Send(&examscanv1.JobStatusUpdate{Job: snap}); err != nil {
				return err
			}
			last = snap
		}
		st := constants.JobStatus(job.Status)
		if st.Terminal() || st == constants.JobStatusReview {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func jobChanged(a, b *examscanv1.Job) bool {
	return a.Status != b.Status ||
		a.ProcessedPages != b.ProcessedPages ||
		a.FailedPages != b.FailedPages ||
		a.ExtractedQuestions != b.ExtractedQuestions ||
		a.ActualCostCents != b.ActualCostCents
}

func (s *ExtractionService) CancelJob(ctx context.Context, req *examscanv1.CancelJobRequest) (*examscanv1.CancelJobResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Transition(ctx, jobID, constants.JobStatusCancelled)
	if err != nil {
		return nil, toStatus(err, "job not found")
	}
	// Best effort: pull the queued task so no worker picks the job up.
	// A task already in flight stops at the next batch boundary instead.
	if job.TaskID != nil && *job.TaskID != "" {
		if dErr := s.queue.Drop(ctx, *job.TaskID); dErr != nil {
			s.logger.Warn("cancel.task_not_dropped",
				"job_id", jobID, "task_id", *job.TaskID, "error", dErr)
		}
	}
	s.logger.Info("job.cancelled", "job_id", jobID)
	return &examscanv1.CancelJobResponse{Job: jobToProto(job)}, nil
}

// RetryJob moves a failed job back to processing and queues a resume.
// Completed pages keep their checkpoints, so only unfinished work reruns.
func (s *ExtractionService) RetryJob(ctx context.Context, req *examscanv1.RetryJobRequest) (*examscanv1.RetryJobResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.IncRetry(ctx, jobID); err != nil {
		return nil, toStatus(err, "job not found")
	}
	job, err := s.jobs.Transition(ctx, jobID, constants.JobStatusProcessing)
	if err != nil {
		return nil, toStatus(err, "job not found")
	}
	taskID, err := s.queue.Enqueue(ctx, async.NewTask(async.TaskProcessJob, jobID))
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to queue retry")
	}
	if err := s.jobs.SetTaskID(ctx, jobID, taskID); err != nil {
		s.logger.Warn("retry.task_id_not_recorded", "job_id", jobID, "error", err)
	}
	s.logger.Info("job.retry_queued", "job_id", jobID, "retry_count", job.RetryCount)
	return &examscanv1.RetryJobResponse{Job: jobToProto(job)}, nil
}
