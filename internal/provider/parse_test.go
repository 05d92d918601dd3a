package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
)

const goodResponse = `{
  "passages": [
    {
      "temp_id": "p1",
      "title": "The Long Migration",
      "content": "Arctic terns travel farther than any other bird...",
      "confidence": 0.9
    }
  ],
  "questions": [
    {
      "passage_ref": "p1",
      "question_text": "Which choice best states the main purpose of the text?",
      "question_type": "multiple_choice",
      "options": [
        {"id": "A", "text": "To describe tern migration"},
        {"id": "B", "text": "To argue for conservation"},
        {"id": "C", "text": "To compare bird species"},
        {"id": "D", "text": "To explain magnetic navigation"}
      ],
      "correct_answer": ["A"],
      "domain": "information_and_ideas",
      "difficulty": "easy",
      "confidence": 0.92
    },
    {
      "question_text": "If $3x + 7 = 22$, what is the value of $x$?",
      "question_type": "student_produced_response",
      "correct_answer": ["5", "5.0"],
      "domain": "algebra",
      "difficulty": "medium",
      "confidence": 0.88
    }
  ]
}`

func TestParseStructureResponse(t *testing.T) {
	res, repairs, err := ParseStructureResponse(goodResponse)
	require.NoError(t, err)
	assert.Empty(t, repairs)
	require.Len(t, res.Passages, 1)
	require.Len(t, res.Questions, 2)

	q0 := res.Questions[0]
	assert.Equal(t, constants.QuestionMultipleChoice, q0.QuestionType)
	assert.Equal(t, "p1", q0.PassageRef)
	require.NotNil(t, q0.PassageText)
	assert.Contains(t, *q0.PassageText, "Arctic terns")
	assert.Equal(t, []string{"A"}, q0.CorrectAnswer)
	assert.False(t, q0.NeedsAnswer)
	assert.Equal(t, constants.DomainInformationAndIdeas, q0.Domain)

	q1 := res.Questions[1]
	assert.Equal(t, constants.QuestionGridIn, q1.QuestionType)
	assert.Empty(t, q1.PassageRef)
	assert.Equal(t, []string{"5", "5.0"}, q1.CorrectAnswer)
}

func TestParseStructureResponseCodeFence(t *testing.T) {
	res, _, err := ParseStructureResponse("```json\n" + goodResponse + "\n```")
	require.NoError(t, err)
	assert.Len(t, res.Questions, 2)
}

func TestParseStructureResponseNeedAnswerSentinel(t *testing.T) {
	res, _, err := ParseStructureResponse(`{
	  "questions": [{
	    "question_text": "What is shown in the figure?",
	    "question_type": "multiple_choice",
	    "correct_answer": ["[NEED_ANSWER]"],
	    "confidence": 0.7
	  }]
	}`)
	require.NoError(t, err)
	require.Len(t, res.Questions, 1)
	assert.True(t, res.Questions[0].NeedsAnswer)
	assert.Nil(t, res.Questions[0].CorrectAnswer)
}

func TestParseStructureResponseSanitizesSingleObject(t *testing.T) {
	// A bare question object without the envelope still parses after repair.
	res, repairs, err := ParseStructureResponse(`{
	  "question_text": "Solve $x^2 = 9$ for positive $x$.",
	  "question_type": "Student Produced Response",
	  "correct_answer": "3"
	}`)
	require.NoError(t, err)
	assert.NotEmpty(t, repairs)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, constants.QuestionGridIn, res.Questions[0].QuestionType)
	assert.Equal(t, []string{"3"}, res.Questions[0].CorrectAnswer)
}

func TestParseStructureResponseRejectsGarbage(t *testing.T) {
	_, _, err := ParseStructureResponse("I could not find any questions on this page.")
	assert.Error(t, err)
}

func TestParseStructureResponseDefaultsConfidence(t *testing.T) {
	res, _, err := ParseStructureResponse(`{
	  "questions": [{"question_text": "Which of the following is even?", "correct_answer": ["B"]}]
	}`)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, res.Questions[0].Confidence, 0.001)
}
