package services

import (
	"errors"

	"core/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{
		db: db,
	}
}

// GetSettings returns the single settings row, creating it with defaults on
// first access so the public site always has something to render.
func (s *SettingsService) GetSettings() (*models.Settings, error) {
	var settings models.Settings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSettings()
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings patches the singleton row; absent fields keep their value
func (s *SettingsService) UpdateSettings(req models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.ClubName != nil {
		updates["club_name"] = *req.ClubName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.OpeningHours != nil {
		updates["opening_hours"] = *req.OpeningHours
	}
	if req.ContactNumber != nil {
		updates["contact_number"] = *req.ContactNumber
	}
	if req.WhatsappNumber != nil {
		updates["whatsapp_number"] = *req.WhatsappNumber
	}
	if req.GoogleMapsLink != nil {
		updates["google_maps_link"] = *req.GoogleMapsLink
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return settings, nil
}
