package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaa44111/Location-Recommendation-System/internal/config"
	"github.com/kaa44111/Location-Recommendation-System/internal/handler"
	"github.com/kaa44111/Location-Recommendation-System/internal/middleware"
	"github.com/kaa44111/Location-Recommendation-System/internal/service"
)

// SetupRouter wires the HTTP routes around a fully built recommendation
// service
func SetupRouter(cfg *config.Config, svc *service.RecommendService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Location Recommendation API is running",
		})
	})

	recommendHandler := handler.NewRecommendHandler(svc)
	datasetHandler := handler.NewDatasetHandler(svc)

	api := r.Group("/api/v1")
	{
		dataset := api.Group("/dataset")
		{
			dataset.GET("/stats", datasetHandler.GetStats)
		}

		users := api.Group("/users")
		{
			users.GET("/:id/profile", datasetHandler.GetProfile)
			users.GET("/:id/similar", recommendHandler.GetSimilarUsers)
		}

		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("/unvisited", recommendHandler.GetUnvisited)
			recommendations.POST("/meeting-place", recommendHandler.PostMeetingPlace)
		}
	}

	return r
}
