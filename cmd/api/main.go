package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sherbie/spot-risk-assessment/internal/api/handlers"
	"github.com/sherbie/spot-risk-assessment/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	estimateHandler := handlers.NewEstimateHandler()
	pricesHandler := handlers.NewPricesHandler()
	rankHandler := handlers.NewRankHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/estimate", estimateHandler.Estimate)
		api.POST("/rank", rankHandler.Rank)

		api.GET("/prices", pricesHandler.Prices)
		api.GET("/stats", pricesHandler.Stats)
	}

	addr := fmt.Sprintf(":%s", port)
	slog.Info("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
