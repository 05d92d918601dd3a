// Package classify decides whether an OCR'd page holds exam questions or
// filler like ads, instructions, and answer keys.
package classify

import (
	"regexp"
	"strings"
)

const (
	minTextLen     = 50
	substantialLen = 150
)

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`mark\s+for\s+review`),
	regexp.MustCompile(`question\s+\d+`),
	regexp.MustCompile(`\b(a\)|b\)|c\)|d\))`),
	regexp.MustCompile(`\b(a\.|b\.|c\.|d\.)`),
	regexp.MustCompile(`\bwhat is\b`),
	regexp.MustCompile(`\bwhich of\b`),
	regexp.MustCompile(`\bif\s+.+\s*=`),
	regexp.MustCompile(`\bsolve\b`),
	regexp.MustCompile(`\bthe value of\b`),
	regexp.MustCompile(`\bequation\b`),
	regexp.MustCompile(`\bgraph\b`),
	regexp.MustCompile(`\bfunction\b`),
	regexp.MustCompile(`\$.*\$`),
	regexp.MustCompile(`\\frac\{`),
	regexp.MustCompile(`\\sqrt\{`),
}

var nonQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^answer\s*key`),
	regexp.MustCompile(`advertisement`),
	regexp.MustCompile(`^instructions?:?\s*$`),
}

// IsQuestionPage reports whether page text looks like exam content.
// Negative markers win over positive ones; near-empty pages never qualify.
func IsQuestionPage(markdown string) bool {
	text := strings.ToLower(strings.TrimSpace(markdown))

	if len(text) < minTextLen {
		return false
	}
	for _, p := range nonQuestionPatterns {
		if p.MatchString(text) {
			return false
		}
	}
	for _, p := range questionPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return len(text) > substantialLen
}
