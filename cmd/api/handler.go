package api

import (
	"context"
	"log"

	authUsecase "vidsum-backend/internal/auth/usecase"
	summaryUsecasePkg "vidsum-backend/internal/summary/usecase"
	"vidsum-backend/pkg/ai"
	"vidsum-backend/pkg/config"
	"vidsum-backend/pkg/youtube"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	summaryUsecase summaryUsecasePkg.SummaryUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, summaryUc summaryUsecasePkg.SummaryUsecase, cfg *config.Config) *Handler {
	// Optional metadata enrichment for the provider input
	if cfg.YouTubeApiKey != "" {
		metadataService, err := youtube.NewMetadataService(context.Background(), cfg.YouTubeApiKey)
		if err != nil {
			log.Printf("Warning: Failed to initialize YouTube metadata service: %v. Summaries will use the raw URL.", err)
		} else {
			summaryUc.SetMetadataFetcher(metadataService)
			log.Println("YouTube metadata service initialized")
		}
	} else {
		log.Println("YOUTUBE_API_KEY not set; summaries will use the raw URL")
	}

	return &Handler{
		authUsecase:    authUc,
		summaryUsecase: summaryUc,
		config:         cfg,
	}
}

// NewSummarizer builds the AI provider from config
func NewSummarizer(cfg *config.Config) (ai.SummarizerService, error) {
	return ai.NewSummarizerService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		OpenAIAPIKey:  cfg.OpenAIApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.summaryUsecase)

	return r.Run(addr)
}
