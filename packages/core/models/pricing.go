package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// StringList stores a []string as a jsonb column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for string list column")
	}
}

type Pricing struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Price       float64        `gorm:"not null" json:"price"`
	Duration    *string        `gorm:"size:100" json:"duration"`
	Description *string        `gorm:"type:text" json:"description"`
	Features    StringList     `gorm:"type:jsonb" json:"features"`
	IsPopular   bool           `gorm:"default:false" json:"is_popular"`
	Active      bool           `gorm:"default:true" json:"active"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Pricing) TableName() string {
	return "pricing"
}

// DTOs

type CreatePricingRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Price       float64    `json:"price" binding:"required,gte=0"`
	Duration    *string    `json:"duration,omitempty"`
	Description *string    `json:"description,omitempty"`
	Features    StringList `json:"features,omitempty"`
	IsPopular   *bool      `json:"is_popular,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	SortOrder   *int       `json:"sort_order,omitempty"`
}

type UpdatePricingRequest struct {
	Title       *string     `json:"title,omitempty" binding:"omitempty,max=255"`
	Price       *float64    `json:"price,omitempty" binding:"omitempty,gte=0"`
	Duration    *string     `json:"duration,omitempty"`
	Description *string     `json:"description,omitempty"`
	Features    *StringList `json:"features,omitempty"`
	IsPopular   *bool       `json:"is_popular,omitempty"`
	Active      *bool       `json:"active,omitempty"`
	SortOrder   *int        `json:"sort_order,omitempty"`
}
