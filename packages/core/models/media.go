package models

import (
	"time"

	"gorm.io/gorm"
)

type GalleryImage struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL    string         `gorm:"size:512;not null" json:"image_url"`
	StoragePath string         `gorm:"size:512;not null" json:"-"`
	Caption     *string        `gorm:"size:255" json:"caption"`
	OrderIndex  int            `gorm:"default:0" json:"order_index"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GalleryImage) TableName() string {
	return "gallery"
}

type SlideshowImage struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL    string         `gorm:"size:512;not null" json:"image_url"`
	StoragePath string         `gorm:"size:512;not null" json:"-"`
	Tagline     *string        `gorm:"size:255" json:"tagline"`
	OrderIndex  int            `gorm:"default:0" json:"order_index"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SlideshowImage) TableName() string {
	return "slideshow"
}

// DTOs

type UpdateGalleryImageRequest struct {
	Caption    *string `json:"caption,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}

type UpdateSlideshowImageRequest struct {
	Tagline    *string `json:"tagline,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}
