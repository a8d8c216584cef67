package dto

// CreateSummaryRequest is the body for POST /api/summaries.
// An empty source_url or language is rejected before the provider is called.
type CreateSummaryRequest struct {
	SourceURL string `json:"source_url"`
	Language  string `json:"language"`
}
