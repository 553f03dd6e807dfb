package factory

import (
	"fmt"

	"placid-catalog-be/pkg/llm"
	"placid-catalog-be/pkg/llm/gemini"
	"placid-catalog-be/pkg/llm/ollama"
)

// NewLLMProvider picks the chat backend from config. Unknown providers are a
// startup error rather than a silent fallback.
func NewLLMProvider(providerType, modelName, baseURL, geminiApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewProvider(baseURL, modelName), nil
	case "gemini":
		return gemini.NewGeminiProvider(geminiApiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
