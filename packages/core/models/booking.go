package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle states; only confirmed bookings occupy a slot
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// TimeSlots is the fixed ordered set of bookable hours
var TimeSlots = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
	"7:00 PM",
	"8:00 PM",
	"9:00 PM",
	"10:00 PM",
}

// Tables is the fixed set of snooker tables
var Tables = []int{1, 2, 3, 4, 5, 6}

// BookingDateLayout is the wire format for booking dates
const BookingDateLayout = "2006-01-02"

// BookingWindowDays is how far ahead a table can be booked
const BookingWindowDays = 14

type Booking struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName    string         `gorm:"size:255;not null" json:"user_name"`
	PhoneNumber string         `gorm:"size:30;not null" json:"phone_number"`
	BookingDate string         `gorm:"size:10;not null;index" json:"booking_date"`
	TimeSlot    string         `gorm:"size:10;not null" json:"time_slot"`
	TableNumber int            `gorm:"not null" json:"table_number"`
	Status      string         `gorm:"size:20;not null;default:confirmed" json:"status"` // confirmed, cancelled, completed
	Notes       *string        `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BlockedSlot is an admin exclusion rule for a date. A nil time slot blocks
// every slot that day, a nil table number blocks every table.
type BlockedSlot struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockedDate string    `gorm:"size:10;not null;index" json:"blocked_date"`
	TimeSlot    *string   `gorm:"size:10" json:"time_slot"`
	TableNumber *int      `json:"table_number"`
	Reason      *string   `gorm:"size:255" json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

func (BlockedSlot) TableName() string {
	return "blocked_slots"
}

// DTOs

type CreateBookingRequest struct {
	UserName    string  `json:"user_name" binding:"required,max=255"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	BookingDate string  `json:"booking_date" binding:"required"`
	TimeSlot    string  `json:"time_slot" binding:"required"`
	TableNumber int     `json:"table_number" binding:"required"`
	Notes       *string `json:"notes,omitempty"`
}

type UpdateBookingRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=confirmed cancelled completed"`
	Notes  *string `json:"notes,omitempty"`
}

type CreateBlockedSlotRequest struct {
	BlockedDate string  `json:"blocked_date" binding:"required"`
	TimeSlot    *string `json:"time_slot,omitempty"`
	TableNumber *int    `json:"table_number,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

// Responses

// SlotAvailability is the public, PII-free availability view for one time slot
type SlotAvailability struct {
	TimeSlot        string `json:"time_slot"`
	AvailableTables []int  `json:"available_tables"`
	AvailableCount  int    `json:"available_count"`
}

type DayAvailabilityResponse struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}
