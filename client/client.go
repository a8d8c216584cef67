// Package client is the caller-facing surface for the summary API: submit a
// video URL for summarization and keep a most-recent-first history in sync
// with the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	summarydomain "vidsum-backend/internal/summary/domain"
)

// Session carries the caller identity. It is handed to the client
// explicitly; the client never reads credentials from ambient storage.
type Session struct {
	AccessToken string
}

// APIError is the decoded error payload from the server
type APIError struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Client talks to the summary API and holds the local history list.
// Submit and LoadHistory are independent round trips; the mutex guards
// only the list, never an in-flight request.
type Client struct {
	baseURL string
	session Session
	http    *http.Client

	mu      sync.Mutex
	history []*summarydomain.SummaryRecord
}

// New creates a Client for the given API base URL and session
func New(baseURL string, session Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		http:    &http.Client{Timeout: 150 * time.Second},
	}
}

type createRequest struct {
	SourceURL string `json:"source_url"`
	Language  string `json:"language"`
}

type listResponse struct {
	Summaries []*summarydomain.SummaryRecord `json:"summaries"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// Submit sends a create request and, on success, prepends the returned
// record to whatever history list is current when the response resolves.
// A concurrent LoadHistory completing first does not lose the new record.
// On failure local state is untouched.
func (c *Client) Submit(ctx context.Context, sourceURL, language string) (*summarydomain.SummaryRecord, error) {
	// Convenience check only; the server revalidates
	if strings.TrimSpace(sourceURL) == "" {
		return nil, &APIError{Category: "invalid_request", Message: "please enter a video URL"}
	}

	body, err := json.Marshal(createRequest{SourceURL: sourceURL, Language: language})
	if err != nil {
		return nil, err
	}

	var record summarydomain.SummaryRecord
	if err := c.do(ctx, http.MethodPost, "/api/summaries", bytes.NewReader(body), &record); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.history = append([]*summarydomain.SummaryRecord{&record}, c.history...)
	c.mu.Unlock()

	return &record, nil
}

// LoadHistory fetches the server-side history and replaces the local list
// verbatim. Server order is authoritative; nothing is re-sorted locally.
func (c *Client) LoadHistory(ctx context.Context) ([]*summarydomain.SummaryRecord, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/api/summaries", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Summaries == nil {
		resp.Summaries = []*summarydomain.SummaryRecord{}
	}

	c.mu.Lock()
	c.history = resp.Summaries
	c.mu.Unlock()

	return c.History(), nil
}

// History returns a copy of the current local list, most recent first
func (c *Client) History() []*summarydomain.SummaryRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*summarydomain.SummaryRecord, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Category != "" {
			return &errResp.Error
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
