package models

import (
	"time"

	"gorm.io/gorm"
)

// Tournament lifecycle states
const (
	TournamentUpcoming  = "upcoming"
	TournamentOngoing   = "ongoing"
	TournamentCompleted = "completed"
	TournamentCancelled = "cancelled"
)

type Tournament struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	TournamentName  string         `gorm:"size:255;not null" json:"tournament_name"`
	Date            string         `gorm:"size:10;not null;index" json:"date"`
	Description     *string        `gorm:"type:text" json:"description"`
	EntryFee        *float64       `json:"entry_fee"`
	PrizePool       *string        `gorm:"size:255" json:"prize_pool"`
	MaxParticipants *int           `json:"max_participants"`
	Status          string         `gorm:"size:20;not null;default:upcoming" json:"status"` // upcoming, ongoing, completed, cancelled
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Registrations []TournamentRegistration `gorm:"foreignKey:TournamentID" json:"registrations,omitempty"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

type TournamentRegistration struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TournamentID uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"tournament_id"`
	PlayerName   string    `gorm:"size:100;not null" json:"player_name"`
	PhoneNumber  string    `gorm:"size:30;not null" json:"phone_number"`
	Email        *string   `gorm:"size:255" json:"email"`
	CreatedAt    time.Time `json:"created_at"`

	Tournament Tournament `gorm:"foreignKey:TournamentID;references:ID" json:"-"`
}

func (TournamentRegistration) TableName() string {
	return "tournament_registrations"
}

// DTOs

type CreateTournamentRequest struct {
	TournamentName  string   `json:"tournament_name" binding:"required,max=255"`
	Date            string   `json:"date" binding:"required"`
	Description     *string  `json:"description,omitempty"`
	EntryFee        *float64 `json:"entry_fee,omitempty"`
	PrizePool       *string  `json:"prize_pool,omitempty"`
	MaxParticipants *int     `json:"max_participants,omitempty"`
	Status          *string  `json:"status,omitempty" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type UpdateTournamentRequest struct {
	TournamentName  *string  `json:"tournament_name,omitempty" binding:"omitempty,max=255"`
	Date            *string  `json:"date,omitempty"`
	Description     *string  `json:"description,omitempty"`
	EntryFee        *float64 `json:"entry_fee,omitempty"`
	PrizePool       *string  `json:"prize_pool,omitempty"`
	MaxParticipants *int     `json:"max_participants,omitempty"`
	Status          *string  `json:"status,omitempty" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type RegisterPlayerRequest struct {
	PlayerName  string  `json:"player_name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Email       *string `json:"email,omitempty"`
}

// Responses

type RegistrationListResponse struct {
	Data  []TournamentRegistration `json:"data"`
	Total int64                    `json:"total"`
}
