package models

import "time"

// Settings is a singleton row holding the club profile shown on the site
type Settings struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubName       string    `gorm:"size:255;not null" json:"club_name"`
	Address        string    `gorm:"size:512;not null" json:"address"`
	OpeningHours   string    `gorm:"size:255;not null" json:"opening_hours"`
	ContactNumber  *string   `gorm:"size:30" json:"contact_number"`
	WhatsappNumber *string   `gorm:"size:30" json:"whatsapp_number"`
	GoogleMapsLink *string   `gorm:"size:512" json:"google_maps_link"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings seeds the singleton row on first access
func DefaultSettings() Settings {
	return Settings{
		ClubName:     "Cue Club",
		Address:      "Update the club address in the admin panel",
		OpeningHours: "10:00 AM - 11:00 PM, all week",
	}
}

type UpdateSettingsRequest struct {
	ClubName       *string `json:"club_name,omitempty" binding:"omitempty,max=255"`
	Address        *string `json:"address,omitempty"`
	OpeningHours   *string `json:"opening_hours,omitempty"`
	ContactNumber  *string `json:"contact_number,omitempty"`
	WhatsappNumber *string `json:"whatsapp_number,omitempty"`
	GoogleMapsLink *string `json:"google_maps_link,omitempty"`
}
