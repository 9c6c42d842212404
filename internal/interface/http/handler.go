package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecolife/ecolife-api/internal/domain/aqi"
	"github.com/ecolife/ecolife-api/internal/domain/brand"
	"github.com/ecolife/ecolife-api/internal/domain/garden"
	"github.com/ecolife/ecolife-api/internal/domain/heatmap"
	"github.com/ecolife/ecolife-api/internal/domain/plant"
	"github.com/ecolife/ecolife-api/internal/domain/solar"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	aqiSvc    aqi.Service
	plantSvc  plant.Service
	solarSvc  solar.Service
	brandSvc  brand.Service
	gardenSvc garden.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(aqiSvc aqi.Service, plantSvc plant.Service, solarSvc solar.Service, brandSvc brand.Service, gardenSvc garden.Service, logger *slog.Logger) *Handler {
	return &Handler{
		aqiSvc:    aqiSvc,
		plantSvc:  plantSvc,
		solarSvc:  solarSvc,
		brandSvc:  brandSvc,
		gardenSvc: gardenSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AirQuality returns the estimated AQI reading for a zip code.
func (h *Handler) AirQuality(c *gin.Context) {
	var req aqi.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, bindingError(err))
		return
	}

	reading, err := h.aqiSvc.Estimate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "aqi_failed"))
		return
	}
	c.JSON(http.StatusOK, reading)
}

// Plants returns catalog plants matching the query filters.
func (h *Handler) Plants(c *gin.Context) {
	var req plant.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, bindingError(err))
		return
	}

	plants, err := h.plantSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "plants_failed"))
		return
	}
	c.JSON(http.StatusOK, plants)
}

// Plant returns a single catalog plant.
func (h *Handler) Plant(c *gin.Context) {
	id, ok := plantIDParam(c)
	if !ok {
		return
	}
	p, err := h.plantSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, domainError(err, "plant_not_found", "plants_failed"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// Solar sizes a rooftop system for the posted consumption.
func (h *Handler) Solar(c *gin.Context) {
	var req solar.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindingError(err))
		return
	}

	est, err := h.solarSvc.Calculate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "solar_failed"))
		return
	}
	c.JSON(http.StatusOK, est)
}

// BrandScore returns the eco score for a brand name given in the path or as ?name=.
func (h *Handler) BrandScore(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		name = c.Query("name")
	}
	score, err := h.brandSvc.Lookup(c.Request.Context(), name)
	if err != nil {
		abortWithError(c, domainError(err, "brand_not_found", "brand_failed"))
		return
	}
	c.JSON(http.StatusOK, score)
}

// TrendingBrands returns the most searched brands.
func (h *Handler) TrendingBrands(c *gin.Context) {
	items, err := h.brandSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "brand_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": items})
}

// RecentBrands returns the latest brand lookups.
func (h *Handler) RecentBrands(c *gin.Context) {
	items, err := h.brandSvc.Recent(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "brand_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"lookups": items})
}

// Heatmap returns the pollution heat grid.
func (h *Handler) Heatmap(c *gin.Context) {
	c.JSON(http.StatusOK, heatmap.Generate())
}

// StartGarden issues a new garden session.
func (h *Handler) StartGarden(c *gin.Context) {
	session, err := h.gardenSvc.StartSession(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "garden_failed"))
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Garden lists the plants in the caller's garden.
func (h *Handler) Garden(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "session_invalid", "missing garden session", nil))
		return
	}
	g, err := h.gardenSvc.List(c.Request.Context(), sessionID)
	if err != nil {
		abortWithError(c, domainError(err, "not_found", "garden_failed"))
		return
	}
	c.JSON(http.StatusOK, g)
}

// AddToGarden puts a catalog plant into the caller's garden.
func (h *Handler) AddToGarden(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "session_invalid", "missing garden session", nil))
		return
	}
	plantID, ok := plantIDParam(c)
	if !ok {
		return
	}
	g, err := h.gardenSvc.Add(c.Request.Context(), sessionID, plantID)
	if err != nil {
		abortWithError(c, domainError(err, "plant_not_found", "garden_failed"))
		return
	}
	c.JSON(http.StatusOK, g)
}

// RemoveFromGarden drops a plant from the caller's garden.
func (h *Handler) RemoveFromGarden(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "session_invalid", "missing garden session", nil))
		return
	}
	plantID, ok := plantIDParam(c)
	if !ok {
		return
	}
	g, err := h.gardenSvc.Remove(c.Request.Context(), sessionID, plantID)
	if err != nil {
		abortWithError(c, domainError(err, "plant_not_found", "garden_failed"))
		return
	}
	c.JSON(http.StatusOK, g)
}

func plantIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, &HTTPError{
			Status:  http.StatusBadRequest,
			Code:    "invalid_request",
			Message: "plant id must be a positive integer",
			Err:     err,
			Fields:  map[string]string{"id": "numeric"},
		})
		return 0, false
	}
	return id, true
}
