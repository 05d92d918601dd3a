package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/gen/ent"
)

// ListPages reports per-page processing state, including which pages the
// classifier skipped and which failed.
func (s *ExtractionService) ListPages(ctx context.Context, req *examscanv1.ListPagesRequest) (*examscanv1.ListPagesResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}

	var rows []*ent.JobPage
	switch {
	case req.GetOnlySkipped():
		rows, err = s.pages.ListSkipped(ctx, jobID)
	case req.GetState() != "":
		state, perr := parsePageState(req.GetState())
		if perr != nil {
			return nil, perr
		}
		rows, err = s.pages.ListByState(ctx, jobID, state)
	default:
		rows, err = s.pages.ListByJob(ctx, jobID)
	}
	if err != nil {
		return nil, toStatus(err, "list pages")
	}

	out := make([]*examscanv1.Page, 0, len(rows))
	for _, p := range rows {
		out = append(out, pageToProto(p))
	}
	return &examscanv1.ListPagesResponse{Pages: out}, nil
}

func parsePageState(s string) (constants.PageState, error) {
	for _, allowed := range constants.PageStates {
		if s == allowed {
			return constants.PageState(s), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid page state %q", s)
}

func pageToProto(p *ent.JobPage) *examscanv1.Page {
	out := &examscanv1.Page{
		PageNumber:           int32(p.PageNumber),
		State:                p.State,
		IsQuestionPage:       p.IsQuestionPage,
		OcrCostCents:         int32(p.OcrCostCents),
		StructuringCostCents: int32(p.StructuringCostCents),
		RetryCount:           int32(p.RetryCount),
		HasImage:             len(p.ImagePng) > 0,
	}
	if p.ErrorMessage != nil {
		out.ErrorMessage = *p.ErrorMessage
	}
	if p.ProviderUsed != nil {
		out.ProviderUsed = *p.ProviderUsed
	}
	return out
}
