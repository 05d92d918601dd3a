package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuestionPageShortText(t *testing.T) {
	assert.False(t, IsQuestionPage(""))
	assert.False(t, IsQuestionPage("   \n  "))
	assert.False(t, IsQuestionPage("Page 4"))
}

func TestIsQuestionPageAnswerKey(t *testing.T) {
	text := "Answer Key\n1. A\n2. B\n3. C\n4. D\n5. A\n6. B\n7. C\n8. D\n9. A\n10. B"
	assert.False(t, IsQuestionPage(text))
}

func TestIsQuestionPageAdvertisement(t *testing.T) {
	text := "Get ahead with our premium prep course! This advertisement brought to you by Test Prep Co."
	assert.False(t, IsQuestionPage(text))
}

func TestIsQuestionPageMultipleChoice(t *testing.T) {
	text := `Question 12

Which of the following best describes the author's tone?

A) skeptical
B) celebratory
C) indifferent
D) resigned`
	assert.True(t, IsQuestionPage(text))
}

func TestIsQuestionPageMathNotation(t *testing.T) {
	text := `Solve for x where the expression \frac{x+2}{3} equals five and state your answer as a decimal.`
	assert.True(t, IsQuestionPage(text))
}

func TestIsQuestionPageMarkForReview(t *testing.T) {
	text := "Mark for Review □  If 3x + 7 = 22, the value of x is shown in which row of the table below?"
	assert.True(t, IsQuestionPage(text))
}

func TestIsQuestionPageSubstantialTextFallback(t *testing.T) {
	// No explicit markers but enough prose to be worth structuring.
	text := strings.Repeat("The passage discusses migratory birds and their habits. ", 4)
	assert.True(t, IsQuestionPage(text))
}

func TestIsQuestionPageAnswerKeyBeatsMarkers(t *testing.T) {
	// Negative markers win even when option letters appear.
	text := "Answer Key for Module 1\n1. A) 2. B) 3. C) 4. D)\n5. A) 6. B) 7. C) 8. D)"
	assert.False(t, IsQuestionPage(text))
}
