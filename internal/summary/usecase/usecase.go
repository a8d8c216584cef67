package usecase

import (
	"context"

	summarydomain "vidsum-backend/internal/summary/domain"
)

// SummaryUsecase exposes the two operations of the summary service
type SummaryUsecase interface {
	// CreateSummary validates the request, runs the summarization provider
	// and persists the result. Nothing is persisted on any failure.
	CreateSummary(ctx context.Context, ownerID, sourceURL, language string) (*summarydomain.SummaryRecord, error)
	// ListSummaries returns the owner's records newest first. An owner with
	// no records gets an empty slice, not an error.
	ListSummaries(ctx context.Context, ownerID string) ([]*summarydomain.SummaryRecord, error)
	// SetMetadataFetcher enables video metadata enrichment
	SetMetadataFetcher(fetcher MetadataFetcher)
}
