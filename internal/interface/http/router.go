package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecolife/ecolife-api/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	useJSONFieldNames()

	router := gin.New()
	// Brand names may contain "/", sent as %2F.
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/aqi", handler.AirQuality)
		api.GET("/plants", handler.Plants)
		api.GET("/plants/:id", handler.Plant)
		api.POST("/solar", handler.Solar)
		api.GET("/brands", handler.BrandScore)
		api.GET("/brands/:name", handler.BrandScore)
		api.GET("/brand-searches/trending", handler.TrendingBrands)
		api.GET("/brand-searches/recent", handler.RecentBrands)
		api.GET("/heatmap", handler.Heatmap)
		api.POST("/garden/sessions", handler.StartGarden)
	}

	garden := api.Group("/garden", gardenSessionMiddleware(handler.gardenSvc))
	{
		garden.GET("", handler.Garden)
		garden.PUT("/plants/:id", handler.AddToGarden)
		garden.DELETE("/plants/:id", handler.RemoveFromGarden)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
