package handlers

import (
	"core/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsHandler struct {
	statsService *services.StatsService
	db           *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsService: services.NewStatsService(db),
		db:           db,
	}
}

// GetStats returns the admin dashboard counters
// @Summary Get dashboard stats
// @Description Get booking, tournament, gallery and message counters (admin only)
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
