package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/internal/classify"
)

// Token counts assumed when an endpoint omits its usage block.
const (
	fallbackPromptTokens     = 500
	fallbackCompletionTokens = 500
)

// Client implements ExtractionProvider on top of one or two chat endpoints.
// The hybrid provider reads pages with one vendor and structures with another.
type Client struct {
	name       constants.Provider
	ocr        *chatClient
	ocrModel   string
	structurer *chatClient
	llmModel   string
	log        *slog.Logger
}

func (c *Client) Name() constants.Provider { return c.name }

// OCRPage reads one page raster into markdown and classifies it.
func (c *Client) OCRPage(ctx context.Context, imagePNG []byte) (OCRResult, error) {
	start := time.Now()
	resp, err := c.ocr.chat(ctx, c.ocrModel, ocrMessages(imagePNG), false)
	if err != nil {
		return OCRResult{}, err
	}

	in, out := resp.Usage.PromptTokens, resp.Usage.CompletionTokens
	if resp.Usage.TotalTokens == 0 {
		in, out = fallbackPromptTokens, fallbackCompletionTokens
	}
	res := OCRResult{
		Markdown:       resp.Content,
		IsQuestionPage: classify.IsQuestionPage(resp.Content),
		CostCents:      CostCents(c.ocrModel, in, out),
		TokensUsed:     resp.Usage.TotalTokens,
	}
	c.log.Info("provider.ocr.ok",
		"provider", c.name,
		"model", c.ocrModel,
		"markdown_len", len(res.Markdown),
		"is_question_page", res.IsQuestionPage,
		"cost_cents", res.CostCents,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// Structure turns page markdown into passages and questions.
func (c *Client) Structure(ctx context.Context, markdown string, figures []string) (StructureResult, error) {
	start := time.Now()
	resp, err := c.structurer.chat(ctx, c.llmModel, structureMessages(markdown, figures), true)
	if err != nil {
		return StructureResult{}, err
	}

	result, repairs, err := ParseStructureResponse(resp.Content)
	if err != nil {
		c.log.Error("provider.structure.invalid",
			"provider", c.name, "model", c.llmModel, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return StructureResult{}, err
	}
	if len(repairs) > 0 {
		c.log.Warn("provider.structure.lenient_sanitize_applied",
			"provider", c.name, "repairs", repairs)
	}

	in, out := resp.Usage.PromptTokens, resp.Usage.CompletionTokens
	if resp.Usage.TotalTokens == 0 {
		in, out = fallbackPromptTokens, fallbackCompletionTokens
	}
	result.CostCents = CostCents(c.llmModel, in, out)

	c.log.Info("provider.structure.ok",
		"provider", c.name,
		"model", c.llmModel,
		"passages", len(result.Passages),
		"questions", len(result.Questions),
		"cost_cents", result.CostCents,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
