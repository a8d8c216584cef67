package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Metadata is the snippet data used to enrich summarization input
type Metadata struct {
	Title       string
	Description string
	Channel     string
}

// MetadataService looks up video snippets through the YouTube Data API
type MetadataService struct {
	client *youtube.Service
}

// NewMetadataService creates a MetadataService with an API key
func NewMetadataService(ctx context.Context, apiKey string) (*MetadataService, error) {
	client, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}
	return &MetadataService{client: client}, nil
}

// FetchMetadata returns the snippet for a single video ID
func (s *MetadataService) FetchMetadata(ctx context.Context, videoID string) (Metadata, error) {
	call := s.client.Videos.
		List([]string{"snippet"}).
		Id(videoID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return Metadata{}, err
	}

	if len(response.Items) == 0 {
		return Metadata{}, fmt.Errorf("video not found: %s", videoID)
	}

	snippet := response.Items[0].Snippet
	return Metadata{
		Title:       snippet.Title,
		Description: snippet.Description,
		Channel:     snippet.ChannelTitle,
	}, nil
}

// ComposeVideoText renders the provider input from a URL and its metadata.
// Empty fields are skipped so a bare URL still produces usable input.
func ComposeVideoText(sourceURL string, md Metadata) string {
	parts := []string{"URL: " + sourceURL}
	if md.Title != "" {
		parts = append(parts, "Title: "+md.Title)
	}
	if md.Channel != "" {
		parts = append(parts, "Channel: "+md.Channel)
	}
	if md.Description != "" {
		parts = append(parts, "Description:\n"+md.Description)
	}
	return strings.Join(parts, "\n")
}
