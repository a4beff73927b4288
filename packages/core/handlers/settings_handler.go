package handlers

import (
	"core/models"
	"core/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	db              *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{
		settingsService: services.NewSettingsService(db),
		db:              db,
	}
}

// GetSettings returns the club settings
// @Summary Get club settings
// @Description Get the club profile shown on the public site
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Failure 500 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings patches the club settings
// @Summary Update club settings
// @Description Update club profile fields (admin only)
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param settings body models.UpdateSettingsRequest true "Settings update data"
// @Success 200 {object} models.Settings
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
