package main

import (
	"log"

	api "vidsum-backend/cmd/api"
	authdomain "vidsum-backend/internal/auth/domain"
	authRepo "vidsum-backend/internal/auth/repository"
	authUsecase "vidsum-backend/internal/auth/usecase"
	summarydomain "vidsum-backend/internal/summary/domain"
	summaryRepo "vidsum-backend/internal/summary/repository"
	summaryUsecase "vidsum-backend/internal/summary/usecase"
	"vidsum-backend/pkg/config"
	"vidsum-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &summarydomain.SummaryRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	summaryRepository := summaryRepo.NewSummaryRepository(db)

	// Initialize AI provider
	summarizer, err := api.NewSummarizer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize AI provider:", err)
	}
	log.Printf("AI provider initialized: %s", cfg.AIProvider)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	summaryUsecaseInstance := summaryUsecase.NewSummaryUsecase(summaryRepository, summarizer, cfg.SummarizeTimeout)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, summaryUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
