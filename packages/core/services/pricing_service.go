package services

import (
	"errors"

	"core/models"

	"gorm.io/gorm"
)

var ErrPricingNotFound = errors.New("pricing plan not found")

type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{
		db: db,
	}
}

// ListActive returns the plans shown on the public site, in display order
func (s *PricingService) ListActive() ([]models.Pricing, error) {
	var plans []models.Pricing
	if err := s.db.Where("active = ?", true).
		Order("sort_order ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ListAll returns every plan for the admin panel, inactive ones included
func (s *PricingService) ListAll() ([]models.Pricing, error) {
	var plans []models.Pricing
	if err := s.db.Order("sort_order ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *PricingService) Create(req models.CreatePricingRequest) (*models.Pricing, error) {
	plan := &models.Pricing{
		Title:       req.Title,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		Features:    req.Features,
		Active:      true,
	}
	if req.IsPopular != nil {
		plan.IsPopular = *req.IsPopular
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}
	if req.SortOrder != nil {
		plan.SortOrder = *req.SortOrder
	}

	if err := s.db.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PricingService) Update(id uint, req models.UpdatePricingRequest) (*models.Pricing, error) {
	var plan models.Pricing
	if err := s.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPricingNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Features != nil {
		updates["features"] = *req.Features
	}
	if req.IsPopular != nil {
		updates["is_popular"] = *req.IsPopular
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&plan).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &plan, nil
}

func (s *PricingService) Delete(id uint) error {
	result := s.db.Delete(&models.Pricing{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPricingNotFound
	}
	return nil
}
