package services

import (
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)

	today := time.Now().Format(models.BookingDateLayout)

	require.NoError(t, db.Create(&models.Booking{
		UserName:    "Rohan",
		PhoneNumber: "+91 98765 43210",
		BookingDate: today,
		TimeSlot:    "5:00 PM",
		TableNumber: 1,
		Status:      models.BookingConfirmed,
	}).Error)
	require.NoError(t, db.Create(&models.Booking{
		UserName:    "Priya",
		PhoneNumber: "+91 98765 43211",
		BookingDate: today,
		TimeSlot:    "6:00 PM",
		TableNumber: 2,
		Status:      models.BookingCancelled,
	}).Error)

	require.NoError(t, db.Create(&models.Tournament{
		TournamentName: "Monthly Open",
		Date:           today,
		Status:         models.TournamentUpcoming,
	}).Error)
	require.NoError(t, db.Create(&models.Tournament{
		TournamentName: "Old Cup",
		Date:           "2024-01-10",
		Status:         models.TournamentCompleted,
	}).Error)

	require.NoError(t, db.Create(&models.ContactMessage{
		Name:    "Rohan",
		Email:   "rohan@example.com",
		Message: "Hi",
	}).Error)

	stats, err := NewStatsService(db).GetStats()
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.TodaysBookings, "cancelled bookings do not count")
	assert.EqualValues(t, 2, stats.MonthlyBookings)
	assert.EqualValues(t, 1, stats.ActiveTournaments)
	assert.EqualValues(t, 1, stats.UnreadMessages)
	assert.EqualValues(t, 0, stats.GalleryImages)
}

func TestHousekeeping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)

	yesterday := time.Now().AddDate(0, 0, -1).Format(models.BookingDateLayout)
	today := time.Now().Format(models.BookingDateLayout)

	require.NoError(t, db.Create(&models.Booking{
		UserName:    "Rohan",
		PhoneNumber: "+91 98765 43210",
		BookingDate: yesterday,
		TimeSlot:    "5:00 PM",
		TableNumber: 1,
		Status:      models.BookingConfirmed,
	}).Error)

	require.NoError(t, db.Create(&models.Tournament{
		TournamentName: "Starts Today",
		Date:           today,
		Status:         models.TournamentUpcoming,
	}).Error)
	require.NoError(t, db.Create(&models.Tournament{
		TournamentName: "Long Finished",
		Date:           yesterday,
		Status:         models.TournamentOngoing,
	}).Error)

	require.NoError(t, svc.CompletePastBookings())
	require.NoError(t, svc.RollTournamentStatuses())

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)
	assert.Equal(t, models.BookingCompleted, booking.Status)

	var started models.Tournament
	require.NoError(t, db.Where("tournament_name = ?", "Starts Today").First(&started).Error)
	assert.Equal(t, models.TournamentOngoing, started.Status)

	var finished models.Tournament
	require.NoError(t, db.Where("tournament_name = ?", "Long Finished").First(&finished).Error)
	assert.Equal(t, models.TournamentCompleted, finished.Status)
}

func TestPurgeOldBlockedSlots(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHousekeepingService(db)

	stale := time.Now().AddDate(0, 0, -models.BookingWindowDays-5).Format(models.BookingDateLayout)
	current := time.Now().Format(models.BookingDateLayout)

	require.NoError(t, db.Create(&models.BlockedSlot{BlockedDate: stale}).Error)
	require.NoError(t, db.Create(&models.BlockedSlot{BlockedDate: current}).Error)

	require.NoError(t, svc.PurgeOldBlockedSlots())

	var remaining []models.BlockedSlot
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, current, remaining[0].BlockedDate)
}
