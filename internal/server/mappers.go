package server

import (
	"encoding/json"
	"time"

	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/gen/ent"
	"github.com/seyi-ajayi/examscan/internal/provider"
)

func jobToProto(j *ent.ExtractionJob) *examscanv1.Job {
	out := &examscanv1.Job{
		Id:                 j.ID.String(),
		UserId:             j.UserID.String(),
		Status:             j.Status,
		PdfFilename:        j.PdfFilename,
		Provider:           j.Provider,
		TotalPages:         int32(j.TotalPages),
		ProcessedPages:     int32(j.ProcessedPages),
		QuestionPages:      int32(j.QuestionPages),
		SkippedPages:       int32(j.SkippedPages),
		FailedPages:        int32(j.FailedPages),
		ExtractedQuestions: int32(j.ExtractedQuestions),
		ApprovedQuestions:  int32(j.ApprovedQuestions),
		ImportedQuestions:  int32(j.ImportedQuestions),
		EstimatedCostCents: int32(j.EstimatedCostCents),
		ActualCostCents:    int32(j.ActualCostCents),
		RetryCount:         int32(j.RetryCount),
		CreatedAt:          j.CreatedAt.Format(time.RFC3339Nano),
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	if j.LastErrorPage != nil {
		out.LastErrorPage = int32(*j.LastErrorPage)
	}
	if j.TargetModuleID != nil {
		out.TargetModuleId = j.TargetModuleID.String()
	}
	for _, id := range j.CreatedTestIds {
		out.CreatedTestIds = append(out.CreatedTestIds, id.String())
	}
	if j.StartedAt != nil {
		out.StartedAt = j.StartedAt.Format(time.RFC3339Nano)
	}
	if j.CompletedAt != nil {
		out.CompletedAt = j.CompletedAt.Format(time.RFC3339Nano)
	}
	return out
}

func questionToProto(q *ent.ExtractedQuestion) *examscanv1.Question {
	out := &examscanv1.Question{
		Id:                   q.ID.String(),
		JobId:                q.JobID.String(),
		ReviewStatus:         q.ReviewStatus,
		QuestionText:         q.QuestionText,
		QuestionType:         q.QuestionType,
		CorrectAnswer:        q.CorrectAnswer,
		NeedsAnswer:          q.NeedsAnswer,
		SkillTags:            q.SkillTags,
		ExtractionConfidence: q.ExtractionConfidence,
		AnswerConfidence:     q.AnswerConfidence,
		NeedsImage:           q.NeedsImage,
		ValidationErrors:     q.ValidationErrors,
	}
	if q.Edges.Page != nil {
		out.PageNumber = int32(q.Edges.Page.PageNumber)
	}
	if q.PassageID != nil {
		out.PassageId = q.PassageID.String()
	}
	if q.PassageText != nil {
		out.PassageText = *q.PassageText
	}
	if q.Explanation != nil {
		out.Explanation = *q.Explanation
	}
	if q.Difficulty != nil {
		out.Difficulty = *q.Difficulty
	}
	if q.Domain != nil {
		out.Domain = *q.Domain
	}
	if q.ImageURL != nil {
		out.ImageUrl = *q.ImageURL
	}
	if q.ImageStatus != nil {
		out.ImageStatus = *q.ImageStatus
	}
	if q.ImportedQuestionID != nil {
		out.ImportedQuestionId = q.ImportedQuestionID.String()
	}
	if len(q.Options) > 0 {
		var opts []provider.Option
		if err := json.Unmarshal(q.Options, &opts); err == nil {
			for _, o := range opts {
				out.Options = append(out.Options, &examscanv1.Option{Id: o.ID, Text: o.Text})
			}
		}
	}
	if len(q.TableData) > 0 {
		var tbl provider.Table
		if err := json.Unmarshal(q.TableData, &tbl); err == nil {
			out.TableData = tableToProto(tbl)
		}
	}
	return out
}

func tableToProto(t provider.Table) *examscanv1.Table {
	out := &examscanv1.Table{Headers: t.Headers}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, &examscanv1.TableRow{Cells: row})
	}
	return out
}

func passageToProto(p *ent.ExtractedPassage) *examscanv1.Passage {
	out := &examscanv1.Passage{
		Id:                   p.ID.String(),
		JobId:                p.JobID.String(),
		Content:              p.Content,
		Figures:              p.Figures,
		ExtractionConfidence: p.ExtractionConfidence,
		ReviewStatus:         p.ReviewStatus,
	}
	if p.Edges.Page != nil {
		out.PageNumber = int32(p.Edges.Page.PageNumber)
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.Author != nil {
		out.Author = *p.Author
	}
	if p.ImportedPassageID != nil {
		out.ImportedPassageId = p.ImportedPassageID.String()
	}
	return out
}
