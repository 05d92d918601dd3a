package provider

import (
	"context"

	"github.com/seyi-ajayi/examscan/constants"
)

// Option is one answer choice of a multiple-choice question.
type Option struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	HasImage bool   `json:"has_image,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Table is tabular data embedded in a question, already converted from
// whatever markup the OCR pass produced.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// StructuredPassage is a reading passage as returned by the structuring model.
type StructuredPassage struct {
	TempID     string  `json:"temp_id"`
	Title      *string `json:"title"`
	Content    string  `json:"content"`
	Source     *string `json:"source,omitempty"`
	Author     *string `json:"author,omitempty"`
	HasFigure  bool    `json:"has_figure,omitempty"`
	WordCount  int     `json:"word_count,omitempty"`
	Confidence float32 `json:"confidence,omitempty"`
}

// StructuredQuestion is one question as returned by the structuring model.
type StructuredQuestion struct {
	PassageRef    string                 `json:"passage_ref,omitempty"`
	QuestionText  string                 `json:"question_text"`
	QuestionType  constants.QuestionType `json:"question_type"`
	PassageText   *string                `json:"passage_text,omitempty"`
	Options       []Option               `json:"options,omitempty"`
	TableData     *Table                 `json:"table_data,omitempty"`
	CorrectAnswer []string               `json:"correct_answer,omitempty"`
	NeedsAnswer   bool                   `json:"-"`
	Explanation   *string                `json:"explanation,omitempty"`
	Domain        constants.Domain       `json:"domain,omitempty"`
	Difficulty    constants.Difficulty   `json:"difficulty,omitempty"`
	NeedsImage    bool                   `json:"needs_image,omitempty"`
	ImageIn       string                 `json:"image_in,omitempty"`
	Confidence    float32                `json:"confidence,omitempty"`
}

// OCRResult is the outcome of reading one page raster.
type OCRResult struct {
	Markdown       string
	IsQuestionPage bool
	CostCents      int
	TokensUsed     int
}

// StructureResult is the outcome of structuring one page's markdown.
type StructureResult struct {
	Passages  []StructuredPassage
	Questions []StructuredQuestion
	CostCents int
}

// ExtractionProvider turns page rasters into markdown and markdown into
// structured questions. Implementations wrap one or two model endpoints.
type ExtractionProvider interface {
	Name() constants.Provider
	OCRPage(ctx context.Context, imagePNG []byte) (OCRResult, error)
	Structure(ctx context.Context, markdown string, figures []string) (StructureResult, error)
}
