package provider

import (
	"fmt"
	"log/slog"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// Registry holds one ExtractionProvider per configured provider enum value.
// Lookups are by enum so callers never branch on provider strings.
type Registry struct {
	providers map[constants.Provider]ExtractionProvider
}

// NewRegistry wires providers from configured API keys. Providers without a
// key are simply absent; hybrid needs both of its halves.
func NewRegistry(cfg common.ProvidersConfig, policy RetryPolicy, maxConcurrent int, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{providers: make(map[constants.Provider]ExtractionProvider)}

	var openaiChat, deepinfraChat, openrouterChat *chatClient
	if cfg.OpenAIKey != "" {
		openaiChat = newChatClient(Endpoints[constants.ProviderOpenAI], cfg.OpenAIKey, policy, maxConcurrent, logger)
	}
	if cfg.DeepInfraKey != "" {
		deepinfraChat = newChatClient(Endpoints[constants.ProviderDeepInfra], cfg.DeepInfraKey, policy, maxConcurrent, logger)
	}
	if cfg.OpenRouterKey != "" {
		openrouterChat = newChatClient(Endpoints[constants.ProviderOpenRouter], cfg.OpenRouterKey, policy, maxConcurrent, logger)
	}

	if openaiChat != nil {
		ep := Endpoints[constants.ProviderOpenAI]
		r.providers[constants.ProviderOpenAI] = &Client{
			name:       constants.ProviderOpenAI,
			ocr:        openaiChat,
			ocrModel:   ep.VisionModel,
			structurer: openaiChat,
			llmModel:   ep.LLMModel,
			log:        logger,
		}
	}
	if deepinfraChat != nil {
		ep := Endpoints[constants.ProviderDeepInfra]
		r.providers[constants.ProviderDeepInfra] = &Client{
			name:       constants.ProviderDeepInfra,
			ocr:        deepinfraChat,
			ocrModel:   ep.VisionModel,
			structurer: deepinfraChat,
			llmModel:   ep.LLMModel,
			log:        logger,
		}
	}
	if openrouterChat != nil {
		ep := Endpoints[constants.ProviderOpenRouter]
		r.providers[constants.ProviderOpenRouter] = &Client{
			name:       constants.ProviderOpenRouter,
			ocr:        openrouterChat,
			ocrModel:   ep.VisionModel,
			structurer: openrouterChat,
			llmModel:   ep.LLMModel,
			log:        logger,
		}
	}
	// Hybrid pairs the stronger vision model with the cheaper structuring one.
	if openaiChat != nil && deepinfraChat != nil {
		r.providers[constants.ProviderHybrid] = &Client{
			name:       constants.ProviderHybrid,
			ocr:        openaiChat,
			ocrModel:   Endpoints[constants.ProviderOpenAI].VisionModel,
			structurer: deepinfraChat,
			llmModel:   Endpoints[constants.ProviderDeepInfra].LLMModel,
			log:        logger,
		}
	}
	return r
}

// Register installs or replaces a provider, mainly for tests.
func (r *Registry) Register(p ExtractionProvider) {
	r.providers[p.Name()] = p
}

// Get returns the provider for an enum value.
func (r *Registry) Get(p constants.Provider) (ExtractionProvider, error) {
	impl, ok := r.providers[p]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", p)
	}
	return impl, nil
}

// Available lists configured provider names.
func (r *Registry) Available() []constants.Provider {
	out := make([]constants.Provider, 0, len(r.providers))
	for _, p := range constants.Providers {
		name := constants.Provider(p)
		if _, ok := r.providers[name]; ok {
			out = append(out, name)
		}
	}
	return out
}
