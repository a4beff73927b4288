package services

import (
	"time"

	"core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// GetStats aggregates the admin dashboard counters in one call
func (s *StatsService) GetStats() (*models.Stats, error) {
	stats := &models.Stats{}

	today := time.Now().Format(models.BookingDateLayout)
	monthPrefix := time.Now().Format("2006-01") + "-%"

	if err := s.db.Model(&models.Booking{}).
		Where("booking_date = ? AND status = ?", today, models.BookingConfirmed).
		Count(&stats.TodaysBookings).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Booking{}).
		Where("booking_date LIKE ?", monthPrefix).
		Count(&stats.MonthlyBookings).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Tournament{}).
		Where("status IN ?", []string{models.TournamentUpcoming, models.TournamentOngoing}).
		Count(&stats.ActiveTournaments).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.TournamentRegistration{}).
		Count(&stats.TotalRegistrations).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.GalleryImage{}).
		Count(&stats.GalleryImages).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&stats.UnreadMessages).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
