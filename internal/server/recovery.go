package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/async"
)

// StructureSkippedPages queues a structuring pass over pages the
// classifier skipped. The stored OCR output is reused, so this costs
// only the structuring calls.
func (s *ExtractionService) StructureSkippedPages(ctx context.Context, req *examscanv1.StructureSkippedPagesRequest) (*examscanv1.StructureSkippedPagesResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.Get(ctx, jobID); err != nil {
		return nil, toStatus(err, "job not found")
	}

	task := async.NewTask(async.TaskStructureSkipped, jobID)
	task.Pages = pagesFromProto(req.GetPageNumbers())
	if req.GetProvider() != "" {
		task.Provider = constants.ParseProvider(req.GetProvider())
	}
	taskID, err := s.queue.Enqueue(ctx, task)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to queue restructure")
	}
	return &examscanv1.StructureSkippedPagesResponse{TaskId: taskID}, nil
}

// ReextractPages queues a full OCR and structuring rerun for specific
// pages, discarding their previous candidates first.
func (s *ExtractionService) ReextractPages(ctx context.Context, req *examscanv1.ReextractPagesRequest) (*examscanv1.ReextractPagesResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if len(req.GetPageNumbers()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "page_numbers is empty")
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, toStatus(err, "job not found")
	}
	for _, n := range req.GetPageNumbers() {
		if n < 1 || int(n) > job.TotalPages {
			return nil, status.Errorf(codes.InvalidArgument, "page %d out of range 1..%d", n, job.TotalPages)
		}
	}

	task := async.NewTask(async.TaskReextractPages, jobID)
	task.Pages = pagesFromProto(req.GetPageNumbers())
	if req.GetProvider() != "" {
		task.Provider = constants.ParseProvider(req.GetProvider())
	}
	taskID, err := s.queue.Enqueue(ctx, task)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to queue re-extraction")
	}
	return &examscanv1.ReextractPagesResponse{TaskId: taskID}, nil
}

func pagesFromProto(nums []int32) []int {
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		out = append(out, int(n))
	}
	return out
}
