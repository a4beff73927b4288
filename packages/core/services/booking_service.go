package services

import (
	"errors"
	"fmt"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// ErrSlotTaken is returned when a confirmed booking already holds the slot.
// Detection relies on gorm.ErrDuplicatedKey (the unique_booking partial
// index), not on matching error message text.
var ErrSlotTaken = errors.New("slot already booked")

var ErrBookingNotFound = errors.New("booking not found")

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db: db,
	}
}

// GetDayAvailability computes the public availability view for one date
func (s *BookingService) GetDayAvailability(date string) (*models.DayAvailabilityResponse, error) {
	if _, err := time.Parse(models.BookingDateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD")
	}

	var bookings []models.Booking
	if err := s.db.Where("booking_date = ?", date).Find(&bookings).Error; err != nil {
		return nil, err
	}

	var blockedSlots []models.BlockedSlot
	if err := s.db.Where("blocked_date = ?", date).Find(&blockedSlots).Error; err != nil {
		return nil, err
	}

	return &models.DayAvailabilityResponse{
		Date:  date,
		Slots: utils.BuildDayAvailability(bookings, blockedSlots),
	}, nil
}

// CreateBooking inserts a confirmed booking. The unique_booking index is the
// arbiter when two users race for the same slot; the loser gets ErrSlotTaken.
func (s *BookingService) CreateBooking(req models.CreateBookingRequest) (*models.Booking, error) {
	bookingDate, err := time.Parse(models.BookingDateLayout, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date, expected YYYY-MM-DD")
	}

	today, _ := time.Parse(models.BookingDateLayout, time.Now().Format(models.BookingDateLayout))
	if bookingDate.Before(today) {
		return nil, fmt.Errorf("booking date is in the past")
	}
	if bookingDate.After(today.AddDate(0, 0, models.BookingWindowDays-1)) {
		return nil, fmt.Errorf("bookings open at most %d days ahead", models.BookingWindowDays)
	}

	if !utils.IsValidTimeSlot(req.TimeSlot) {
		return nil, fmt.Errorf("unknown time slot %q", req.TimeSlot)
	}
	if !utils.IsValidTable(req.TableNumber) {
		return nil, fmt.Errorf("unknown table number %d", req.TableNumber)
	}

	booking := &models.Booking{
		UserName:    req.UserName,
		PhoneNumber: req.PhoneNumber,
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
		TableNumber: req.TableNumber,
		Status:      models.BookingConfirmed,
		Notes:       req.Notes,
	}

	if err := s.db.Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return booking, nil
}

// GetBooking loads one booking by ID
func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListBookings returns bookings for the admin panel with optional filters
func (s *BookingService) ListBookings(date, status, search string) ([]models.Booking, error) {
	query := s.db.Model(&models.Booking{})

	if date != "" {
		query = query.Where("booking_date = ?", date)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("user_name ILIKE ? OR phone_number LIKE ?", pattern, pattern)
	}

	var bookings []models.Booking
	if err := query.Order("booking_date DESC, time_slot ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateBooking patches status and/or notes of a booking
func (s *BookingService) UpdateBooking(id uint, req models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(booking).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Re-confirming a cancelled booking can collide with a newer one
				return nil, ErrSlotTaken
			}
			return nil, err
		}
	}

	return s.GetBooking(id)
}

// DeleteBooking removes a booking row
func (s *BookingService) DeleteBooking(id uint) error {
	result := s.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListBlockedSlots returns blocked-slot rules, optionally for one date
func (s *BookingService) ListBlockedSlots(date string) ([]models.BlockedSlot, error) {
	query := s.db.Model(&models.BlockedSlot{})
	if date != "" {
		query = query.Where("blocked_date = ?", date)
	}

	var slots []models.BlockedSlot
	if err := query.Order("blocked_date ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateBlockedSlot adds an exclusion rule; nil fields act as wildcards
func (s *BookingService) CreateBlockedSlot(req models.CreateBlockedSlotRequest) (*models.BlockedSlot, error) {
	if _, err := time.Parse(models.BookingDateLayout, req.BlockedDate); err != nil {
		return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD")
	}
	if req.TimeSlot != nil && !utils.IsValidTimeSlot(*req.TimeSlot) {
		return nil, fmt.Errorf("unknown time slot %q", *req.TimeSlot)
	}
	if req.TableNumber != nil && !utils.IsValidTable(*req.TableNumber) {
		return nil, fmt.Errorf("unknown table number %d", *req.TableNumber)
	}

	slot := &models.BlockedSlot{
		BlockedDate: req.BlockedDate,
		TimeSlot:    req.TimeSlot,
		TableNumber: req.TableNumber,
		Reason:      req.Reason,
	}

	if err := s.db.Create(slot).Error; err != nil {
		return nil, err
	}
	return slot, nil
}

// DeleteBlockedSlot removes an exclusion rule
func (s *BookingService) DeleteBlockedSlot(id uint) error {
	result := s.db.Delete(&models.BlockedSlot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("blocked slot not found")
	}
	return nil
}
