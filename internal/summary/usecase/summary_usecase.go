package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	summarydomain "vidsum-backend/internal/summary/domain"
	"vidsum-backend/internal/summary/repository"
	"vidsum-backend/pkg/ai"
	"vidsum-backend/pkg/youtube"
)

// MetadataFetcher enriches the provider input with video title/description.
// Optional; the raw URL is used when no fetcher is configured.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (youtube.Metadata, error)
}

// summaryUsecase implements SummaryUsecase
type summaryUsecase struct {
	summaryRepo repository.SummaryRepository
	summarizer  ai.SummarizerService
	metadata    MetadataFetcher
	timeout     time.Duration
}

// NewSummaryUsecase creates a new instance of summaryUsecase
func NewSummaryUsecase(summaryRepo repository.SummaryRepository, summarizer ai.SummarizerService, timeout time.Duration) SummaryUsecase {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &summaryUsecase{
		summaryRepo: summaryRepo,
		summarizer:  summarizer,
		timeout:     timeout,
	}
}

// SetMetadataFetcher enables title/description enrichment before the provider call
func (u *summaryUsecase) SetMetadataFetcher(fetcher MetadataFetcher) {
	u.metadata = fetcher
}

func (u *summaryUsecase) CreateSummary(ctx context.Context, ownerID, sourceURL, language string) (*summarydomain.SummaryRecord, error) {
	if ownerID == "" {
		return nil, summarydomain.InvalidRequest("owner is required")
	}
	sourceURL = strings.TrimSpace(sourceURL)
	if sourceURL == "" {
		return nil, summarydomain.InvalidRequest("source_url is required")
	}
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, summarydomain.InvalidRequest("language is required")
	}
	if u.summarizer == nil {
		return nil, summarydomain.SummarizationFailed("no summarization provider configured", nil)
	}

	videoText := u.describeVideo(ctx, sourceURL)

	// The provider call is the slow part: external network plus model
	// inference. Nothing is held across the wait beyond the bounded context.
	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := u.summarizer.SummarizeVideo(callCtx, videoText, language)
	if err != nil {
		return nil, summarydomain.SummarizationFailed("failed to summarize video", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, summarydomain.SummarizationFailed("provider returned an empty summary", nil)
	}

	record := &summarydomain.SummaryRecord{
		OwnerID:   ownerID,
		SourceURL: sourceURL,
		Text:      text,
		Language:  language,
	}
	if err := u.summaryRepo.Create(record); err != nil {
		// The generated text is lost here; surfaced distinctly so the
		// caller can tell a store outage from a provider outage.
		return nil, summarydomain.PersistenceFailed("failed to save summary", err)
	}

	return record, nil
}

func (u *summaryUsecase) ListSummaries(ctx context.Context, ownerID string) ([]*summarydomain.SummaryRecord, error) {
	if ownerID == "" {
		return nil, summarydomain.InvalidRequest("owner is required")
	}

	records, err := u.summaryRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, summarydomain.PersistenceFailed("failed to fetch history", err)
	}
	if records == nil {
		records = []*summarydomain.SummaryRecord{}
	}
	return records, nil
}

// describeVideo composes the text handed to the provider: title and
// description when metadata is available, otherwise the bare URL.
// Enrichment failure is non-fatal.
func (u *summaryUsecase) describeVideo(ctx context.Context, sourceURL string) string {
	if u.metadata == nil {
		return sourceURL
	}

	videoID, err := youtube.ExtractVideoID(sourceURL)
	if err != nil {
		log.Printf("[Summary] Could not extract video ID from %q: %v", sourceURL, err)
		return sourceURL
	}

	md, err := u.metadata.FetchMetadata(ctx, videoID)
	if err != nil {
		log.Printf("[Summary] Metadata lookup failed for %s: %v", videoID, err)
		return sourceURL
	}

	return youtube.ComposeVideoText(sourceURL, md)
}
