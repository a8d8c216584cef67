package api

import (
	"net/http"

	"vidsum-backend/internal/auth/delivery"
	authUsecase "vidsum-backend/internal/auth/usecase"
	summaryDelivery "vidsum-backend/internal/summary/delivery"
	summaryUsecase "vidsum-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, summaryUc summaryUsecase.SummaryUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	summaryHandler := summaryDelivery.NewSummaryHandler(summaryUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Summary routes (protected)
		summaries := api.Group("/summaries")
		summaries.Use(delivery.AuthMiddleware(authUc))
		{
			summaries.POST("", summaryHandler.CreateSummary)
			summaries.GET("", summaryHandler.ListSummaries)
		}
	}
}
