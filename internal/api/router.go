package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flatfinder/rentals-backend-go/internal/config"
	"github.com/flatfinder/rentals-backend-go/internal/handler"
	"github.com/flatfinder/rentals-backend-go/internal/middleware"
)

// SetupRouter wires the HTTP surface around the query core.
func SetupRouter(cfg *config.Config, h *handler.ListingsHandler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS for the browser frontend.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		listings := api.Group("/listings")
		{
			listings.GET("/view", h.GetView)
			listings.GET("/options", h.GetOptions)
			listings.POST("/distance", h.ApplyDistance)
			listings.DELETE("/distance", h.ClearDistance)
		}

		api.GET("/stations", h.GetStations)
	}

	return r
}
