package provider

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

const ocrSystemPrompt = `SAT exam OCR extractor. Output clean Markdown.
Rules:
1) Extract ALL text including question numbers and options A-D
2) CRITICAL - Math formatting: ALWAYS wrap ALL mathematical expressions in LaTeX delimiters:
   - Use $...$ for inline math (equations, variables, functions like $f(x) = 2x + 1$, $x^2$, $\frac{1}{2}$)
   - Use $$...$$ for display/block math (standalone equations)
   - This includes: variables (x, y), functions f(x), equations, fractions, exponents, etc.
3) Tables: output as HTML <table> tags
4) Graphs/Charts: describe briefly, note "needs_image: true" if visual is required
5) Ignore watermarks and page numbers`

const structureSystemPrompt = `SAT question extractor. Return JSON with SEPARATE passages and questions.

OUTPUT FORMAT:
{
  "passages": [
    {
      "temp_id": "p1",
      "title": "Passage title or null",
      "content": "Full passage text...",
      "source": "Publication name or null",
      "author": "Author name or null",
      "has_figure": false,
      "word_count": 150,
      "confidence": 0.95
    }
  ],
  "questions": [
    {
      "passage_ref": "p1" | null,
      "question_text": "Question stem only",
      "question_type": "multiple_choice" | "student_produced_response",
      "table_data": {"headers": [...], "rows": [...], "title": "..."} | null,
      "needs_image": true | false,
      "image_in": "question" | "passage" | "option_A" | "option_B" | "option_C" | "option_D" | null,
      "options": [{"id": "A", "text": "...", "has_image": false}] | null,
      "correct_answer": ["C"] | ["1/2", "0.5", ".5"],
      "explanation": "Why this answer is correct",
      "domain": "algebra" | "advanced_math" | "geometry_trigonometry" | "problem_solving_data_analysis" | "craft_and_structure" | "information_and_ideas" | "expression_of_ideas" | "standard_english_conventions",
      "difficulty": "easy" | "medium" | "hard",
      "confidence": 0.95
    }
  ]
}

DIGITAL SAT RULES:
1. **CRITICAL - MATH FORMATTING**: ALL math MUST use LaTeX $...$ delimiters!
   - Wrap ALL variables, equations, expressions in $...$
   - Examples: $x$, $8^2 + b^2 = 20^2$, $f(x) = 2x + 1$, $\frac{1}{2}$
   - Convert \(...\) to $...$ and \[...\] to $$...$$
   - Options with math: {"id": "A", "text": "$8^2 + b^2 = 20^2$"}
2. EBRW: Extract passage SEPARATELY into "passages" array, question references via passage_ref
3. Math: No passage needed, question_text contains full context
4. Tables: Convert to structured JSON format (NOT HTML)
5. SPR (grid-in): options=null, correct_answer has ALL valid formats (e.g., ["1/2", "0.5", ".5"])
6. Images: Set needs_image=true if visual is required, image_in specifies where
7. Domain: Use exact enum values (lowercase with underscores)
8. ALWAYS try to determine correct_answer. Only use ["[NEED_ANSWER]"] if truly impossible.

Return valid JSON only.`

func ocrMessages(imagePNG []byte) []map[string]any {
	b64 := base64.StdEncoding.EncodeToString(imagePNG)
	return []map[string]any{
		{"role": "system", "content": ocrSystemPrompt},
		{
			"role": "user",
			"content": []map[string]any{
				{"type": "text", "text": "Extract all text from this SAT page:"},
				{
					"type":      "image_url",
					"image_url": map[string]any{"url": "data:image/png;base64," + b64},
				},
			},
		},
	}
}

func structureMessages(markdown string, figures []string) []map[string]any {
	names := make([]string, 0, len(figures))
	for _, f := range figures {
		names = append(names, filepath.Base(f))
	}
	figureList := strings.Join(names, ", ")
	if figureList == "" {
		figureList = "none"
	}
	return []map[string]any{
		{"role": "system", "content": structureSystemPrompt},
		{"role": "user", "content": "Images: " + figureList + "\n\nOCR TEXT:\n" + markdown},
	}
}
