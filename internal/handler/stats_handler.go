package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nutriscan-api/internal/middleware"
	"github.com/nutriscan-api/internal/repository"
	"github.com/nutriscan-api/internal/service"
	"github.com/nutriscan-api/pkg/response"
)

// StatsHandler handles daily stats requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats returns the caller's daily stats view
// GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)

	stats, err := h.statsService.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrStatsNotFound) {
			response.NotFound(c, "stats not found")
			return
		}
		response.InternalError(c, "failed to load stats")
		return
	}

	response.Success(c, stats)
}

// UpdateStats applies a partial update to goal, streak and weight
// PUT /stats
func (h *StatsHandler) UpdateStats(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.statsService.Update(userID, &req); err != nil {
		response.InternalError(c, "failed to update stats")
		return
	}

	response.Message(c, "stats updated")
}

// RegisterRoutes registers stats routes behind the auth middleware
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	stats := rg.Group("/stats")
	stats.Use(authMiddleware)
	{
		stats.GET("", h.GetStats)
		stats.PUT("", h.UpdateStats)
	}
}
