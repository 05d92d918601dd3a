package constants

import "strings"

// Provider selects which extraction back-end a job uses.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderDeepInfra  Provider = "deepinfra"
	ProviderOpenRouter Provider = "openrouter"
	// ProviderHybrid uses OpenAI for vision OCR and DeepInfra for JSON
	// structuring. OpenAI's vision endpoint is the most stable; DeepInfra's
	// DeepSeek is far cheaper for the structuring call.
	ProviderHybrid Provider = "hybrid"
)

// Providers holds the allowed values for the provider field.
var Providers = []string{
	string(ProviderOpenAI),
	string(ProviderDeepInfra),
	string(ProviderOpenRouter),
	string(ProviderHybrid),
}

// ParseProvider maps a user-supplied provider name to the enum,
// defaulting to hybrid for unknown input.
func ParseProvider(s string) Provider {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderOpenAI:
		return ProviderOpenAI
	case ProviderDeepInfra:
		return ProviderDeepInfra
	case ProviderOpenRouter:
		return ProviderOpenRouter
	default:
		return ProviderHybrid
	}
}
