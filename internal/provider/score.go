package provider

import (
	"fmt"

	"github.com/seyi-ajayi/examscan/constants"
)

const expectedOptionCount = 4

// ScoreQuestion derives the review confidences and flags content problems a
// schema check cannot see. A missing answer halves the answer confidence
// instead of failing the question, so reviewers still see it.
func ScoreQuestion(q StructuredQuestion) (extraction, answer float32, problems []string) {
	extraction = q.Confidence
	answer = q.Confidence
	if q.NeedsAnswer {
		answer *= constants.AnswerMissingPenalty
		problems = append(problems, "correct answer could not be determined")
	}

	if q.QuestionType == constants.QuestionMultipleChoice {
		if n := len(q.Options); n != expectedOptionCount {
			problems = append(problems, fmt.Sprintf("expected %d options, got %d", expectedOptionCount, n))
		}
		seen := map[string]bool{}
		for _, o := range q.Options {
			if seen[o.ID] {
				problems = append(problems, "duplicate option id "+o.ID)
			}
			seen[o.ID] = true
		}
	} else if len(q.Options) > 0 {
		problems = append(problems, "student-produced response should not have options")
	}

	if q.Domain.ReadingWriting() {
		if (q.PassageText == nil || *q.PassageText == "") && q.PassageRef == "" {
			problems = append(problems, "reading/writing question has no passage")
		}
	}

	if q.NeedsImage && q.ImageIn == "" {
		problems = append(problems, "needs_image set without a location")
	}
	return extraction, answer, problems
}
