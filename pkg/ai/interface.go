package ai

import "context"

// SummarizerService is the interface for AI video summarization.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type SummarizerService interface {
	// SummarizeVideo produces a summary of videoText (a URL, or URL plus
	// fetched title/description) in the requested language
	SummarizeVideo(ctx context.Context, videoText, language string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderOpenAI ProviderType = "openai"
	ProviderAuto   ProviderType = "auto"
)
