package provider

import (
	"time"

	"github.com/seyi-ajayi/examscan/constants"
)

// ModelCost is the price per 1000 tokens, in millicents of a US dollar.
// Millicents keep the table integral; page costs round to whole cents once.
type ModelCost struct {
	InputPer1K  int64
	OutputPer1K int64
}

// EndpointConfig describes one OpenAI-compatible chat completions endpoint.
type EndpointConfig struct {
	URL          string
	VisionModel  string
	LLMModel     string
	ExtraHeaders map[string]string
	// Some endpoints reject the response_format parameter.
	SupportsResponseFormat bool
}

// Endpoints maps each provider to its endpoint and model pair.
var Endpoints = map[constants.Provider]EndpointConfig{
	constants.ProviderDeepInfra: {
		URL:         "https://api.deepinfra.com/v1/openai/chat/completions",
		VisionModel: "allenai/olmOCR-2-7B-1025",
		LLMModel:    "deepseek-ai/DeepSeek-V3.1",
	},
	constants.ProviderOpenAI: {
		URL:                    "https://api.openai.com/v1/chat/completions",
		VisionModel:            "gpt-4o-mini",
		LLMModel:               "gpt-4o-mini",
		SupportsResponseFormat: true,
	},
	constants.ProviderOpenRouter: {
		URL:         "https://openrouter.ai/api/v1/chat/completions",
		VisionModel: "qwen/qwen2.5-vl-32b-instruct",
		LLMModel:    "deepseek/deepseek-v3.2",
		ExtraHeaders: map[string]string{
			"HTTP-Referer": "https://sat-platform.app",
			"X-Title":      "SAT Platform OCR",
		},
		SupportsResponseFormat: true,
	},
}

// modelCosts holds per-model prices in millicents per 1K tokens.
var modelCosts = map[string]ModelCost{
	"gpt-4o-mini":                  {InputPer1K: 15, OutputPer1K: 60},
	"allenai/olmOCR-2-7B-1025":     {InputPer1K: 5, OutputPer1K: 5},
	"deepseek-ai/DeepSeek-V3.1":    {InputPer1K: 1, OutputPer1K: 2},
	"qwen/qwen2.5-vl-32b-instruct": {InputPer1K: 5, OutputPer1K: 22},
	"qwen/qwen2.5-vl-72b-instruct": {InputPer1K: 40, OutputPer1K: 40},
	"deepseek/deepseek-v3.2":       {InputPer1K: 25, OutputPer1K: 38},
	"Qwen/Qwen2.5-VL-32B-Instruct": {InputPer1K: 12, OutputPer1K: 12},
}

var defaultCost = ModelCost{InputPer1K: 10, OutputPer1K: 10}

// CostCents prices a call in whole cents, rounding half up so repeated small
// calls do not silently vanish from job totals.
func CostCents(model string, inputTokens, outputTokens int) int {
	c, ok := modelCosts[model]
	if !ok {
		c = defaultCost
	}
	raw := int64(inputTokens)*c.InputPer1K + int64(outputTokens)*c.OutputPer1K
	return int((raw + 500_000) / 1_000_000)
}

// RetryPolicy controls the client retry loop.
type RetryPolicy struct {
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = 3
	}
	if p.RetryDelay <= 0 {
		p.RetryDelay = 2 * time.Second
	}
	if p.Timeout <= 0 {
		p.Timeout = 120 * time.Second
	}
	return p
}
