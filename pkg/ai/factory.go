package ai

import (
	"fmt"

	"vidsum-backend/pkg/gemini"
	"vidsum-backend/pkg/openai"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama", "openai" or "auto"

	// Gemini config
	GeminiAPIKey string

	// OpenAI config
	OpenAIAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewSummarizerService creates a SummarizerService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewSummarizerService(cfg Config) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return openai.NewOpenAIService(cfg.OpenAIAPIKey), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	case ProviderAuto:
		// Ollama first (local, free), remote providers as fallback
		var remote SummarizerService
		if cfg.GeminiAPIKey != "" {
			remote = gemini.NewGeminiService(cfg.GeminiAPIKey)
		} else if cfg.OpenAIAPIKey != "" {
			remote = openai.NewOpenAIService(cfg.OpenAIAPIKey)
		}
		return NewFallbackService(remote, NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)), nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
