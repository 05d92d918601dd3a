package server

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seyi-ajayi/examscan/constants"
	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/provider"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

func (s *ExtractionService) ListQuestions(ctx context.Context, req *examscanv1.ListQuestionsRequest) (*examscanv1.ListQuestionsResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	var filter constants.ReviewStatus
	if req.GetReviewStatus() != "" {
		filter, err = parseReviewStatus(req.GetReviewStatus())
		if err != nil {
			return nil, err
		}
	}
	rows, err := s.extracted.ListQuestions(ctx, jobID, filter)
	if err != nil {
		return nil, toStatus(err, "list questions")
	}
	out := make([]*examscanv1.Question, 0, len(rows))
	for _, q := range rows {
		out = append(out, questionToProto(q))
	}
	return &examscanv1.ListQuestionsResponse{Questions: out}, nil
}

func (s *ExtractionService) GetQuestion(ctx context.Context, req *examscanv1.GetQuestionRequest) (*examscanv1.GetQuestionResponse, error) {
	id, err := parseUUID("question_id", req.GetQuestionId())
	if err != nil {
		return nil, err
	}
	q, err := s.extracted.GetQuestion(ctx, id)
	if err != nil {
		return nil, toStatus(err, "question not found")
	}
	return &examscanv1.GetQuestionResponse{Question: questionToProto(q)}, nil
}

func (s *ExtractionService) UpdateQuestion(ctx context.Context, req *examscanv1.UpdateQuestionRequest) (*examscanv1.UpdateQuestionResponse, error) {
	id, err := parseUUID("question_id", req.GetQuestionId())
	if err != nil {
		return nil, err
	}

	edit := repository.QuestionEdit{
		QuestionText: req.QuestionText,
		QuestionType: req.QuestionType,
		PassageText:  req.PassageText,
		Explanation:  req.Explanation,
		Difficulty:   req.Difficulty,
		Domain:       req.Domain,
	}
	if req.QuestionType != nil {
		valid := false
		for _, allowed := range constants.QuestionTypes {
			if *req.QuestionType == allowed {
				valid = true
			}
		}
		if !valid {
			return nil, status.Errorf(codes.InvalidArgument, "invalid question type %q", *req.QuestionType)
		}
	}
	if len(req.GetOptions()) > 0 {
		opts := make([]provider.Option, 0, len(req.GetOptions()))
		for _, o := range req.GetOptions() {
			opts = append(opts, provider.Option{ID: o.GetId(), Text: o.GetText()})
		}
		raw, err := json.Marshal(opts)
		if err != nil {
			return nil, status.Error(codes.Internal, "failed to encode options")
		}
		edit.Options = raw
	}
	if req.TableData != nil {
		tbl := provider.Table{Headers: req.TableData.GetHeaders()}
		for _, row := range req.TableData.GetRows() {
			tbl.Rows = append(tbl.Rows, row.GetCells())
		}
		raw, err := json.Marshal(tbl)
		if err != nil {
			return nil, status.Error(codes.Internal, "failed to encode table")
		}
		edit.TableData = raw
	}
	if len(req.GetCorrectAnswer()) > 0 {
		edit.CorrectAnswer = req.GetCorrectAnswer()
	}
	if len(req.GetSkillTags()) > 0 {
		edit.SkillTags = req.GetSkillTags()
	}

	q, err := s.extracted.EditQuestion(ctx, id, edit)
	if err != nil {
		return nil, toStatus(err, "question not found")
	}

	if req.ReviewStatus != nil {
		st, err := parseReviewStatus(*req.ReviewStatus)
		if err != nil {
			return nil, err
		}
		reviewer, err := parseUUID("reviewed_by", req.GetReviewedBy())
		if err != nil {
			return nil, err
		}
		if err := s.applyReview(ctx, q.JobID, []uuid.UUID{id}, st, reviewer); err != nil {
			return nil, err
		}
		q, err = s.extracted.GetQuestion(ctx, id)
		if err != nil {
			return nil, toStatus(err, "question not found")
		}
	}
	return &examscanv1.UpdateQuestionResponse{Question: questionToProto(q)}, nil
}

func (s *ExtractionService) BulkReview(ctx context.Context, req *examscanv1.BulkReviewRequest) (*examscanv1.BulkReviewResponse, error) {
	if len(req.GetQuestionIds()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "question_ids is empty")
	}
	st, err := parseReviewStatus(req.GetReviewStatus())
	if err != nil {
		return nil, err
	}
	if st == constants.ReviewImported {
		return nil, status.Error(codes.InvalidArgument, "imported status is set by import, not review")
	}
	reviewer, err := parseUUID("reviewed_by", req.GetReviewedBy())
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.GetQuestionIds()))
	for _, raw := range req.GetQuestionIds() {
		id, err := parseUUID("question_ids", raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	// All candidates in one call share a job; take it from the first row.
	first, err := s.extracted.GetQuestion(ctx, ids[0])
	if err != nil {
		return nil, toStatus(err, "question not found")
	}
	if err := s.applyReview(ctx, first.JobID, ids, st, reviewer); err != nil {
		return nil, err
	}

	n, err := s.countUpdated(ctx, first.JobID, st, ids)
	if err != nil {
		return nil, toStatus(err, "bulk review")
	}
	return &examscanv1.BulkReviewResponse{Updated: int32(n)}, nil
}

// applyReview sets the review status and keeps the job's approved counter
// in sync with the net approval change.
func (s *ExtractionService) applyReview(ctx context.Context, jobID uuid.UUID, ids []uuid.UUID, st constants.ReviewStatus, reviewer uuid.UUID) error {
	approvedBefore, err := s.countApproved(ctx, jobID, ids)
	if err != nil {
		return toStatus(err, "review")
	}
	if _, err := s.extracted.SetReviewStatus(ctx, ids, st, reviewer); err != nil {
		return toStatus(err, "review")
	}
	approvedAfter, err := s.countApproved(ctx, jobID, ids)
	if err != nil {
		return toStatus(err, "review")
	}
	if delta := approvedAfter - approvedBefore; delta != 0 {
		if err := s.jobs.AddApproved(ctx, jobID, delta); err != nil {
			s.logger.Warn("review.approved_counter_drift", "job_id", jobID, "error", err)
		}
	}
	return nil
}

func (s *ExtractionService) countApproved(ctx context.Context, jobID uuid.UUID, ids []uuid.UUID) (int, error) {
	rows, err := s.extracted.ListQuestions(ctx, jobID, constants.ReviewApproved)
	if err != nil {
		return 0, err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	n := 0
	for _, q := range rows {
		if wanted[q.ID] {
			n++
		}
	}
	return n, nil
}

func (s *ExtractionService) countUpdated(ctx context.Context, jobID uuid.UUID, st constants.ReviewStatus, ids []uuid.UUID) (int, error) {
	rows, err := s.extracted.ListQuestions(ctx, jobID, st)
	if err != nil {
		return 0, err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	n := 0
	for _, q := range rows {
		if wanted[q.ID] {
			n++
		}
	}
	return n, nil
}

func (s *ExtractionService) GetPassage(ctx context.Context, req *examscanv1.GetPassageRequest) (*examscanv1.GetPassageResponse, error) {
	id, err := parseUUID("passage_id", req.GetPassageId())
	if err != nil {
		return nil, err
	}
	p, err := s.extracted.GetPassage(ctx, id)
	if err != nil {
		return nil, toStatus(err, "passage not found")
	}
	return &examscanv1.GetPassageResponse{Passage: passageToProto(p)}, nil
}

func (s *ExtractionService) ListPassages(ctx context.Context, req *examscanv1.ListPassagesRequest) (*examscanv1.ListPassagesResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	rows, err := s.extracted.ListPassages(ctx, jobID)
	if err != nil {
		return nil, toStatus(err, "list passages")
	}
	out := make([]*examscanv1.Passage, 0, len(rows))
	for _, p := range rows {
		out = append(out, passageToProto(p))
	}
	return &examscanv1.ListPassagesResponse{Passages: out}, nil
}

func (s *ExtractionService) UpdatePassage(ctx context.Context, req *examscanv1.UpdatePassageRequest) (*examscanv1.UpdatePassageResponse, error) {
	id, err := parseUUID("passage_id", req.GetPassageId())
	if err != nil {
		return nil, err
	}
	edit := repository.PassageEdit{
		Title:  req.Title,
		Source: req.Source,
		Author: req.Author,
	}
	if req.Content != nil {
		edit.Content = *req.Content
	}
	if req.ReviewStatus != nil {
		rs, err := parseReviewStatus(*req.ReviewStatus)
		if err != nil {
			return nil, err
		}
		edit.ReviewStatus = &rs
	}
	p, err := s.extracted.EditPassage(ctx, id, edit)
	if err != nil {
		return nil, toStatus(err, "passage not found")
	}
	return &examscanv1.UpdatePassageResponse{Passage: passageToProto(p)}, nil
}
