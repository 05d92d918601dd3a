package server

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/pdf"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

// GetPageImage returns the stored page raster used by the cropping UI, or
// re-renders the page from the retained PDF when a scale is requested.
func (s *ExtractionService) GetPageImage(ctx context.Context, req *examscanv1.GetPageImageRequest) (*examscanv1.GetPageImageResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if req.GetPageNumber() < 1 {
		return nil, status.Error(codes.InvalidArgument, "page_number must be positive")
	}

	if scale := req.GetScale(); scale > 0 {
		job, err := s.jobs.Get(ctx, jobID)
		if err != nil {
			return nil, toStatus(err, "job not found")
		}
		doc, err := pdf.Open(job.PdfPath)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "open pdf: %v", err)
		}
		defer func() { _ = doc.Close() }()
		if n := int(req.GetPageNumber()); n > doc.NumPages() {
			return nil, status.Errorf(codes.InvalidArgument, "page %d out of range, document has %d pages", n, doc.NumPages())
		}
		png, err := doc.RenderPNG(ctx, int(req.GetPageNumber()), scale)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "render: %v", err)
		}
		return &examscanv1.GetPageImageResponse{ImagePng: png}, nil
	}

	png, err := s.pages.Image(ctx, jobID, int(req.GetPageNumber()))
	if err != nil {
		return nil, toStatus(err, "page image not found")
	}
	return &examscanv1.GetPageImageResponse{ImagePng: png}, nil
}

// CropPageImage cuts a region out of a page raster. With a question_id the
// crop is saved next to the upload and attached to the question.
func (s *ExtractionService) CropPageImage(ctx context.Context, req *examscanv1.CropPageImageRequest) (*examscanv1.CropPageImageResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if req.GetPageNumber() < 1 {
		return nil, status.Error(codes.InvalidArgument, "page_number must be positive")
	}
	region := req.GetRegion()
	if region == nil || region.GetWidth() <= 0 || region.GetHeight() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "region must have positive width and height")
	}

	png, err := s.pages.Image(ctx, jobID, int(req.GetPageNumber()))
	if err != nil {
		return nil, toStatus(err, "page image not found")
	}
	crop, err := pdf.CropPNG(png, pdf.CropRegion{
		X:      int(region.GetX()),
		Y:      int(region.GetY()),
		Width:  int(region.GetWidth()),
		Height: int(region.GetHeight()),
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "crop failed: %v", err)
	}

	resp := &examscanv1.CropPageImageResponse{ImagePng: crop}
	if req.GetQuestionId() == "" {
		return resp, nil
	}

	questionID, err := parseUUID("question_id", req.GetQuestionId())
	if err != nil {
		return nil, err
	}
	path, err := s.attachImage(ctx, questionID, fmt.Sprintf("%s_p%d_%s.png", jobID, req.GetPageNumber(), questionID), crop)
	if err != nil {
		return nil, err
	}
	s.logger.Info("image.crop_attached", "job_id", jobID, "question_id", questionID, "path", path)
	resp.ImageUrl = path
	return resp, nil
}

// AttachQuestionImage stores a crop the reviewer made on their own machine
// and records it as the question's figure.
func (s *ExtractionService) AttachQuestionImage(ctx context.Context, req *examscanv1.AttachQuestionImageRequest) (*examscanv1.AttachQuestionImageResponse, error) {
	questionID, err := parseUUID("question_id", req.GetQuestionId())
	if err != nil {
		return nil, err
	}
	png := req.GetImagePng()
	if len(png) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image_png is required")
	}
	if !bytes.HasPrefix(png, pngMagic) {
		return nil, status.Error(codes.InvalidArgument, "image must be a PNG")
	}
	path, err := s.attachImage(ctx, questionID, fmt.Sprintf("upload_%s.png", questionID), png)
	if err != nil {
		return nil, err
	}
	s.logger.Info("image.upload_attached", "question_id", questionID, "path", path)
	return &examscanv1.AttachQuestionImageResponse{ImageUrl: path}, nil
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// attachImage writes the bytes under the upload directory and points the
// question's image at them.
func (s *ExtractionService) attachImage(ctx context.Context, questionID uuid.UUID, name string, png []byte) (string, error) {
	dir := filepath.Join(s.cfg.Upload.Dir, "crops")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", status.Error(codes.Internal, "crop storage unavailable")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", status.Error(codes.Internal, "failed to store crop")
	}
	if _, err := s.extracted.EditQuestion(ctx, questionID, repository.QuestionEdit{ImageURL: &path}); err != nil {
		return "", toStatus(err, "question not found")
	}
	return path, nil
}
