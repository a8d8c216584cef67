package delivery

import (
	"net/http"

	summarydomain "vidsum-backend/internal/summary/domain"
	summarydto "vidsum-backend/internal/summary/dto"
	"vidsum-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles summary HTTP requests
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// POST /api/summaries
// CreateSummary generates and persists a summary for the submitted video URL
func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"category": "unauthorized", "message": "not authenticated"}})
		return
	}

	var req summarydto.CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"category": "invalid_request", "message": err.Error()}})
		return
	}

	record, err := h.summaryUsecase.CreateSummary(c.Request.Context(), userID, req.SourceURL, req.Language)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GET /api/summaries
// ListSummaries returns the caller's history, newest first
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"category": "unauthorized", "message": "not authenticated"}})
		return
	}

	records, err := h.summaryUsecase.ListSummaries(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": records})
}

// writeError maps the error taxonomy to HTTP statuses
func writeError(c *gin.Context, err error) {
	category := summarydomain.CategoryOf(err)

	status := http.StatusInternalServerError
	switch category {
	case summarydomain.CategoryInvalidRequest:
		status = http.StatusBadRequest
	case summarydomain.CategoryUnauthorized:
		status = http.StatusUnauthorized
	case summarydomain.CategorySummarizationFailed:
		status = http.StatusBadGateway
	case summarydomain.CategoryPersistenceFailed:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if e, ok := err.(*summarydomain.Error); ok {
		message = e.Message
		if e.Err != nil {
			message = e.Message + ": " + e.Err.Error()
		}
	}

	c.JSON(status, gin.H{"error": gin.H{"category": string(category), "message": message}})
}
