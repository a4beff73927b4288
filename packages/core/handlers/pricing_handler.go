package handlers

import (
	"core/models"
	"core/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PricingHandler struct {
	pricingService *services.PricingService
	db             *gorm.DB
}

func NewPricingHandler(db *gorm.DB) *PricingHandler {
	return &PricingHandler{
		pricingService: services.NewPricingService(db),
		db:             db,
	}
}

// GetPricing lists active pricing plans
// @Summary List pricing plans
// @Description List the active pricing plans shown on the site
// @Tags pricing
// @Produce json
// @Success 200 {array} models.Pricing
// @Failure 500 {object} map[string]string
// @Router /pricing [get]
func (h *PricingHandler) GetPricing(c *gin.Context) {
	plans, err := h.pricingService.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetAllPricing lists every pricing plan
// @Summary List all pricing plans
// @Description List all plans, inactive ones included (admin only)
// @Tags pricing
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Pricing
// @Failure 401 {object} map[string]string
// @Router /admin/pricing [get]
func (h *PricingHandler) GetAllPricing(c *gin.Context) {
	plans, err := h.pricingService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePricing creates a pricing plan
// @Summary Create pricing plan
// @Description Create a new pricing plan (admin only)
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plan body models.CreatePricingRequest true "Pricing plan data"
// @Success 201 {object} models.Pricing
// @Failure 400 {object} map[string]string
// @Router /admin/pricing [post]
func (h *PricingHandler) CreatePricing(c *gin.Context) {
	var req models.CreatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.pricingService.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePricing updates a pricing plan
// @Summary Update pricing plan
// @Description Update fields of a pricing plan (admin only)
// @Tags pricing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param plan body models.UpdatePricingRequest true "Pricing update data"
// @Success 200 {object} models.Pricing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/pricing/{id} [patch]
func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var req models.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.pricingService.Update(uint(id), req)
	if err != nil {
		if errors.Is(err, services.ErrPricingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePricing deletes a pricing plan
// @Summary Delete pricing plan
// @Description Delete a pricing plan (admin only)
// @Tags pricing
// @Security BearerAuth
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/pricing/{id} [delete]
func (h *PricingHandler) DeletePricing(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	if err := h.pricingService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrPricingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pricing plan deleted successfully"})
}
