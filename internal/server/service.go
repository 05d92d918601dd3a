// Package server implements the ExtractionService gRPC API.
package server

import (
	"errors"
	"fmt"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/async"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/export"
	"github.com/seyi-ajayi/examscan/internal/importer"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

type ExtractionService struct {
	examscanv1.UnimplementedExtractionServiceServer

	jobs      repository.JobRepository
	pages     repository.PageRepository
	extracted repository.ExtractedRepository
	testbank  repository.TestbankRepository
	importer  *importer.Service
	export    *export.Service
	queue     async.Queue
	cfg       *common.Config
	logger    *slog.Logger
}

func NewExtractionService(
	jobs repository.JobRepository,
	pages repository.PageRepository,
	extracted repository.ExtractedRepository,
	testbank repository.TestbankRepository,
	imp *importer.Service,
	exp *export.Service,
	queue async.Queue,
	cfg *common.Config,
	logger *slog.Logger,
) *ExtractionService {
	return &ExtractionService{
		jobs:      jobs,
		pages:     pages,
		extracted: extracted,
		testbank:  testbank,
		importer:  imp,
		export:    exp,
		queue:     queue,
		cfg:       cfg,
		logger:    logger,
	}
}

// parseUUID maps a request field to a UUID with a field-named error.
func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func parseReviewStatus(s string) (constants.ReviewStatus, error) {
	for _, allowed := range constants.ReviewStatuses {
		if s == allowed {
			return constants.ReviewStatus(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid review status %q", s)
}

func parseJobStatus(s string) (constants.JobStatus, error) {
	for _, allowed := range constants.JobStatuses {
		if s == allowed {
			return constants.JobStatus(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid job status %q", s)
}

// toStatus translates repository errors into gRPC codes. AppError codes
// carry operation-specific failures like illegal job transitions.
func toStatus(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return err
	}
	if errors.Is(err, common.ErrNotFound) {
		return status.Error(codes.NotFound, notFoundMsg)
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "INVALID_TRANSITION", "NOTHING_TO_IMPORT":
			return status.Error(codes.FailedPrecondition, appErr.Message)
		case "INVALID_TEST_SPEC":
			return status.Error(codes.InvalidArgument, appErr.Message)
		case "NO_IMAGE":
			return status.Error(codes.NotFound, appErr.Message)
		}
	}
	return status.Error(codes.Internal, fmt.Sprintf("%s: operation failed", notFoundMsg))
}
