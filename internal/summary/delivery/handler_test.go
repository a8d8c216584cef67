package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	summarydomain "vidsum-backend/internal/summary/domain"
	"vidsum-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase returns canned results per operation
type stubUsecase struct {
	createRecord *summarydomain.SummaryRecord
	createErr    error
	listRecords  []*summarydomain.SummaryRecord
	listErr      error
}

func (s *stubUsecase) CreateSummary(_ context.Context, ownerID, sourceURL, language string) (*summarydomain.SummaryRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createRecord, nil
}

func (s *stubUsecase) ListSummaries(_ context.Context, ownerID string) ([]*summarydomain.SummaryRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listRecords, nil
}

func (s *stubUsecase) SetMetadataFetcher(usecase.MetadataFetcher) {}

func newRouter(uc usecase.SummaryUsecase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSummaryHandler(uc)

	// Stand-in for the auth middleware
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})
	r.POST("/api/summaries", h.CreateSummary)
	r.GET("/api/summaries", h.ListSummaries)
	return r
}

func postSummary(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/summaries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSummarySuccess(t *testing.T) {
	record := &summarydomain.SummaryRecord{
		ID:        "rec-1",
		OwnerID:   "user-1",
		SourceURL: "https://youtu.be/abc123xyz00",
		Text:      "a summary",
		Language:  "english",
		CreatedAt: time.Now(),
	}
	r := newRouter(&stubUsecase{createRecord: record}, "user-1")

	w := postSummary(t, r, `{"source_url":"https://youtu.be/abc123xyz00","language":"english"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got summarydomain.SummaryRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "rec-1", got.ID)
	assert.Equal(t, "a summary", got.Text)
	assert.Equal(t, "english", got.Language)
}

func TestCreateSummaryErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCat    string
	}{
		{"invalid request", summarydomain.InvalidRequest("source_url is required"), http.StatusBadRequest, "invalid_request"},
		{"provider failure", summarydomain.SummarizationFailed("failed to summarize video", errors.New("timeout")), http.StatusBadGateway, "summarization_failed"},
		{"store failure", summarydomain.PersistenceFailed("failed to save summary", errors.New("down")), http.StatusInternalServerError, "persistence_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&stubUsecase{createErr: tt.err}, "user-1")

			w := postSummary(t, r, `{"source_url":"x","language":"english"}`)
			require.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Error struct {
					Category string `json:"category"`
					Message  string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCat, resp.Error.Category)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestCreateSummaryUnauthenticated(t *testing.T) {
	r := newRouter(&stubUsecase{}, "")

	w := postSummary(t, r, `{"source_url":"x","language":"english"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSummariesResponseShape(t *testing.T) {
	records := []*summarydomain.SummaryRecord{
		{ID: "rec-2", OwnerID: "user-1", SourceURL: "u2", Text: "t2", Language: "english"},
		{ID: "rec-1", OwnerID: "user-1", SourceURL: "u1", Text: "t1", Language: "english"},
	}
	r := newRouter(&stubUsecase{listRecords: records}, "user-1")

	req := httptest.NewRequest(http.MethodGet, "/api/summaries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summaries []*summarydomain.SummaryRecord `json:"summaries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Summaries, 2)
	// Server order passed through verbatim
	assert.Equal(t, "rec-2", resp.Summaries[0].ID)
	assert.Equal(t, "rec-1", resp.Summaries[1].ID)
}

func TestListSummariesEmpty(t *testing.T) {
	r := newRouter(&stubUsecase{listRecords: []*summarydomain.SummaryRecord{}}, "user-1")

	req := httptest.NewRequest(http.MethodGet, "/api/summaries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summaries":[]}`, w.Body.String())
}
