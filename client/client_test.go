package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	summarydomain "vidsum-backend/internal/summary/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, url, text string) *summarydomain.SummaryRecord {
	return &summarydomain.SummaryRecord{
		ID:        id,
		OwnerID:   "user-1",
		SourceURL: url,
		Text:      text,
		Language:  "english",
		CreatedAt: time.Now(),
	}
}

func TestSubmitPrependsOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodPost:
			var req struct {
				SourceURL string `json:"source_url"`
				Language  string `json:"language"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "https://youtu.be/abc123xyz00", req.SourceURL)
			assert.Equal(t, "spanish", req.Language)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(record("rec-new", req.SourceURL, "Resumen de prueba"))
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"summaries": []*summarydomain.SummaryRecord{record("rec-old", "u1", "t1")},
			})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, Session{AccessToken: "token-123"})

	_, err := c.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, c.History(), 1)

	rec, err := c.Submit(context.Background(), "https://youtu.be/abc123xyz00", "spanish")
	require.NoError(t, err)
	assert.Equal(t, "Resumen de prueba", rec.Text)

	history := c.History()
	require.Len(t, history, 2)
	assert.Equal(t, "rec-new", history[0].ID)
	assert.Equal(t, "rec-old", history[1].ID)
}

func TestSubmitEmptyURLRejectedLocally(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := New(srv.URL, Session{AccessToken: "token-123"})

	_, err := c.Submit(context.Background(), "   ", "english")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "invalid_request", apiErr.Category)
	assert.Zero(t, requests, "no round trip for the trivial empty-URL case")
}

func TestSubmitFailureLeavesStateUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"category": "summarization_failed", "message": "upstream timeout"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summaries": []*summarydomain.SummaryRecord{record("rec-old", "u1", "t1")},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, Session{AccessToken: "token-123"})
	_, err := c.LoadHistory(context.Background())
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), "https://youtu.be/abc123xyz00", "english")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "summarization_failed", apiErr.Category)
	assert.Equal(t, "upstream timeout", apiErr.Message)

	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, "rec-old", history[0].ID)
}

func TestLoadHistoryReplacesListVerbatim(t *testing.T) {
	page := []*summarydomain.SummaryRecord{
		record("rec-3", "u3", "t3"),
		record("rec-1", "u1", "t1"),
		record("rec-2", "u2", "t2"), // deliberately not sorted; server order is authoritative
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"summaries": page})
	}))
	defer srv.Close()

	c := New(srv.URL, Session{AccessToken: "token-123"})
	got, err := c.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "rec-3", got[0].ID)
	assert.Equal(t, "rec-1", got[1].ID)
	assert.Equal(t, "rec-2", got[2].ID)
}

func TestLoadHistoryEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"summaries": []*summarydomain.SummaryRecord{}})
	}))
	defer srv.Close()

	c := New(srv.URL, Session{AccessToken: "token-123"})
	got, err := c.LoadHistory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// A submit response that resolves after a concurrent refresh has completed
// must still end up prepended to the refreshed list, not lost.
func TestSubmitResolvingAfterRefreshIsNotLost(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			<-release // hold the submit response until the refresh is done
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(record("rec-new", "https://youtu.be/abc123xyz00", "late arrival"))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summaries": []*summarydomain.SummaryRecord{record("rec-refreshed", "u1", "t1")},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, Session{AccessToken: "token-123"})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Submit(context.Background(), "https://youtu.be/abc123xyz00", "english")
		assert.NoError(t, err)
	}()

	// Refresh completes while the submit is still in flight
	_, err := c.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, c.History(), 1)

	close(release)
	wg.Wait()

	history := c.History()
	require.Len(t, history, 2)
	assert.Equal(t, "rec-new", history[0].ID, "late submit response prepended to the current list")
	assert.Equal(t, "rec-refreshed", history[1].ID)
}
