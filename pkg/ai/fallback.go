package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService routes summarization to Ollama first (local, free) and
// falls back to the remote provider when Ollama is unreachable. If the
// remote provider hits a quota error, Ollama gets one more attempt.
type FallbackService struct {
	remote SummarizerService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service
func NewFallbackService(remote SummarizerService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		remote: remote,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// SummarizeVideo tries Ollama first, falls back to the remote provider
func (f *FallbackService) SummarizeVideo(ctx context.Context, videoText, language string) (string, error) {
	if f.ollama != nil {
		result, err := f.ollama.SummarizeVideo(ctx, videoText, language)
		if err == nil {
			return result, nil
		}

		if isConnectionError(err) {
			log.Printf("[AI] Ollama connection failed: %v, falling back to remote provider", err)
		} else {
			log.Printf("[AI] Ollama error: %v, falling back to remote provider", err)
		}
	}

	if f.remote != nil {
		result, err := f.remote.SummarizeVideo(ctx, videoText, language)
		if err == nil {
			return result, nil
		}

		// Quota exhaustion on the remote side may be transient on the
		// local side, so give Ollama one more attempt
		if isQuotaError(err) && f.ollama != nil {
			log.Printf("[AI] Remote provider quota exhausted: %v, retrying Ollama", err)
			return f.ollama.SummarizeVideo(ctx, videoText, language)
		}

		return "", fmt.Errorf("remote summarization failed: %w", err)
	}

	return "", fmt.Errorf("no AI provider available for summarization")
}
