package services

import (
	"log"
	"time"

	"core/models"

	"gorm.io/gorm"
)

// HousekeepingService holds the periodic maintenance jobs the scheduler runs
type HousekeepingService struct {
	db *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{
		db: db,
	}
}

// CompletePastBookings marks confirmed bookings with a past date completed
func (s *HousekeepingService) CompletePastBookings() error {
	today := time.Now().Format(models.BookingDateLayout)

	result := s.db.Model(&models.Booking{}).
		Where("booking_date < ? AND status = ?", today, models.BookingConfirmed).
		Update("status", models.BookingCompleted)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("housekeeping: completed %d past bookings", result.RowsAffected)
	}
	return nil
}

// RollTournamentStatuses moves upcoming tournaments whose date arrived to
// ongoing, and ongoing tournaments whose date passed to completed
func (s *HousekeepingService) RollTournamentStatuses() error {
	today := time.Now().Format(models.BookingDateLayout)

	started := s.db.Model(&models.Tournament{}).
		Where("date = ? AND status = ?", today, models.TournamentUpcoming).
		Update("status", models.TournamentOngoing)
	if started.Error != nil {
		return started.Error
	}

	finished := s.db.Model(&models.Tournament{}).
		Where("date < ? AND status IN ?", today,
			[]string{models.TournamentUpcoming, models.TournamentOngoing}).
		Update("status", models.TournamentCompleted)
	if finished.Error != nil {
		return finished.Error
	}

	if started.RowsAffected > 0 || finished.RowsAffected > 0 {
		log.Printf("housekeeping: %d tournaments started, %d completed",
			started.RowsAffected, finished.RowsAffected)
	}
	return nil
}

// PurgeOldBlockedSlots drops blocked-slot rules whose date is long past;
// they only matter inside the booking window
func (s *HousekeepingService) PurgeOldBlockedSlots() error {
	cutoff := time.Now().AddDate(0, 0, -models.BookingWindowDays).Format(models.BookingDateLayout)

	result := s.db.Where("blocked_date < ?", cutoff).Delete(&models.BlockedSlot{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("housekeeping: purged %d stale blocked slots", result.RowsAffected)
	}
	return nil
}
