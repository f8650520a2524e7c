package handlers

import (
	"net/http"

	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves the blog aggregates.
type StatsHandler struct {
	stats service.StatsService
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get godoc
// @Summary Blog statistics
// @Description Totals of posts, visible comments and categories, plus posts created in the last seven days
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 403 {object} response.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
