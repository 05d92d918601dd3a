package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seyi-ajayi/examscan/constants"
)

func fourOptions() []Option {
	return []Option{
		{ID: "A", Text: "one"},
		{ID: "B", Text: "two"},
		{ID: "C", Text: "three"},
		{ID: "D", Text: "four"},
	}
}

func TestScoreQuestionClean(t *testing.T) {
	ext, ans, problems := ScoreQuestion(StructuredQuestion{
		QuestionText:  "Which value is prime?",
		QuestionType:  constants.QuestionMultipleChoice,
		Options:       fourOptions(),
		CorrectAnswer: []string{"B"},
		Domain:        constants.DomainAlgebra,
		Confidence:    0.9,
	})
	assert.InDelta(t, 0.9, ext, 0.001)
	assert.InDelta(t, 0.9, ans, 0.001)
	assert.Empty(t, problems)
}

func TestScoreQuestionMissingAnswerHalvesConfidence(t *testing.T) {
	_, ans, problems := ScoreQuestion(StructuredQuestion{
		QuestionText: "What does the graph show?",
		QuestionType: constants.QuestionMultipleChoice,
		Options:      fourOptions(),
		NeedsAnswer:  true,
		Confidence:   0.8,
	})
	assert.InDelta(t, 0.4, ans, 0.001)
	assert.Contains(t, problems, "correct answer could not be determined")
}

func TestScoreQuestionOptionCount(t *testing.T) {
	_, _, problems := ScoreQuestion(StructuredQuestion{
		QuestionText:  "Pick one.",
		QuestionType:  constants.QuestionMultipleChoice,
		Options:       fourOptions()[:3],
		CorrectAnswer: []string{"A"},
		Confidence:    0.9,
	})
	assert.Contains(t, problems, "expected 4 options, got 3")
}

func TestScoreQuestionReadingWritingNeedsPassage(t *testing.T) {
	_, _, problems := ScoreQuestion(StructuredQuestion{
		QuestionText:  "Which choice completes the text?",
		QuestionType:  constants.QuestionMultipleChoice,
		Options:       fourOptions(),
		CorrectAnswer: []string{"C"},
		Domain:        constants.DomainCraftAndStructure,
		Confidence:    0.9,
	})
	assert.Contains(t, problems, "reading/writing question has no passage")
}

func TestScoreQuestionGridInWithOptions(t *testing.T) {
	_, _, problems := ScoreQuestion(StructuredQuestion{
		QuestionText:  "Solve for $x$.",
		QuestionType:  constants.QuestionGridIn,
		Options:       fourOptions(),
		CorrectAnswer: []string{"5"},
		Domain:        constants.DomainAlgebra,
		Confidence:    0.9,
	})
	assert.Contains(t, problems, "student-produced response should not have options")
}

func TestCostCentsRoundsHalfUp(t *testing.T) {
	// gpt-4o-mini: 15 millicents in, 60 millicents out per 1K tokens.
	assert.Equal(t, 0, CostCents("gpt-4o-mini", 1000, 1000))       // 0.075 cents
	assert.Equal(t, 1, CostCents("gpt-4o-mini", 10000, 10000))     // 0.75 cents
	assert.Equal(t, 8, CostCents("gpt-4o-mini", 100000, 100000))   // 7.5 cents
	assert.Equal(t, 75, CostCents("gpt-4o-mini", 1000000, 1000000))
}

func TestCostCentsUnknownModel(t *testing.T) {
	// Unknown models fall back to a flat default rate.
	assert.Equal(t, 20, CostCents("mystery-model", 1000000, 1000000))
}
