package services

import (
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the same slot
// uniqueness guarantee the real schema has
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Booking{},
		&models.BlockedSlot{},
		&models.Tournament{},
		&models.TournamentRegistration{},
		&models.Pricing{},
		&models.GalleryImage{},
		&models.SlideshowImage{},
		&models.ContactMessage{},
		&models.Settings{},
	))

	require.NoError(t, db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_booking
			ON bookings (booking_date, time_slot, table_number)
			WHERE status = 'confirmed' AND deleted_at IS NULL
	`).Error)

	return db
}

func validBookingRequest(daysAhead int) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		UserName:    "Rohan Gupta",
		PhoneNumber: "+91 98765 43210",
		BookingDate: time.Now().AddDate(0, 0, daysAhead).Format(models.BookingDateLayout),
		TimeSlot:    "5:00 PM",
		TableNumber: 3,
	}
}

func TestCreateBooking(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	booking, err := svc.CreateBooking(validBookingRequest(1))
	require.NoError(t, err)

	assert.NotZero(t, booking.ID)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, 3, booking.TableNumber)
}

func TestCreateBooking_DuplicateSlot(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	_, err := svc.CreateBooking(validBookingRequest(1))
	require.NoError(t, err)

	req := validBookingRequest(1)
	req.UserName = "Priya Nair"
	_, err = svc.CreateBooking(req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_CancelledSlotReopens(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	booking, err := svc.CreateBooking(validBookingRequest(1))
	require.NoError(t, err)

	cancelled := models.BookingCancelled
	_, err = svc.UpdateBooking(booking.ID, models.UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	// Same slot should be bookable again
	req := validBookingRequest(1)
	req.UserName = "Priya Nair"
	_, err = svc.CreateBooking(req)
	assert.NoError(t, err)
}

func TestCreateBooking_Validation(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	past := validBookingRequest(-1)
	_, err := svc.CreateBooking(past)
	assert.Error(t, err, "past dates must be rejected")

	far := validBookingRequest(models.BookingWindowDays + 5)
	_, err = svc.CreateBooking(far)
	assert.Error(t, err, "dates beyond the booking window must be rejected")

	badSlot := validBookingRequest(1)
	badSlot.TimeSlot = "11:30 PM"
	_, err = svc.CreateBooking(badSlot)
	assert.Error(t, err)

	badTable := validBookingRequest(1)
	badTable.TableNumber = 9
	_, err = svc.CreateBooking(badTable)
	assert.Error(t, err)

	badDate := validBookingRequest(1)
	badDate.BookingDate = "31-12-2026"
	_, err = svc.CreateBooking(badDate)
	assert.Error(t, err)
}

func TestGetDayAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)

	date := time.Now().AddDate(0, 0, 2).Format(models.BookingDateLayout)

	req := validBookingRequest(2)
	_, err := svc.CreateBooking(req)
	require.NoError(t, err)

	table2 := 2
	_, err = svc.CreateBlockedSlot(models.CreateBlockedSlotRequest{
		BlockedDate: date,
		TableNumber: &table2,
	})
	require.NoError(t, err)

	availability, err := svc.GetDayAvailability(date)
	require.NoError(t, err)

	assert.Equal(t, date, availability.Date)
	require.Len(t, availability.Slots, len(models.TimeSlots))

	for _, slot := range availability.Slots {
		assert.NotContains(t, slot.AvailableTables, 2, "table 2 is blocked for the whole day")
		if slot.TimeSlot == "5:00 PM" {
			assert.Equal(t, 4, slot.AvailableCount)
			assert.NotContains(t, slot.AvailableTables, 3)
		} else {
			assert.Equal(t, 5, slot.AvailableCount)
		}
	}
}

func TestGetDayAvailability_CancelledBookingIgnored(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	booking, err := svc.CreateBooking(validBookingRequest(1))
	require.NoError(t, err)

	cancelled := models.BookingCancelled
	_, err = svc.UpdateBooking(booking.ID, models.UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	availability, err := svc.GetDayAvailability(booking.BookingDate)
	require.NoError(t, err)

	for _, slot := range availability.Slots {
		assert.Equal(t, len(models.Tables), slot.AvailableCount)
	}
}

func TestListBookings_Filters(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	first, err := svc.CreateBooking(validBookingRequest(1))
	require.NoError(t, err)

	second := validBookingRequest(2)
	second.TimeSlot = "7:00 PM"
	_, err = svc.CreateBooking(second)
	require.NoError(t, err)

	byDate, err := svc.ListBookings(first.BookingDate, "", "")
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	byStatus, err := svc.ListBookings("", models.BookingConfirmed, "")
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	notes := "walk-in"
	_, err := svc.UpdateBooking(999, models.UpdateBookingRequest{Notes: &notes})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	booking, err := svc.CreateBooking(validBookingRequest(1))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(booking.ID))
	assert.ErrorIs(t, svc.DeleteBooking(booking.ID), ErrBookingNotFound)
}

func TestBlockedSlotValidation(t *testing.T) {
	svc := NewBookingService(setupTestDB(t))

	date := time.Now().Format(models.BookingDateLayout)

	badSlot := "25:00"
	_, err := svc.CreateBlockedSlot(models.CreateBlockedSlotRequest{
		BlockedDate: date,
		TimeSlot:    &badSlot,
	})
	assert.Error(t, err)

	badTable := 12
	_, err = svc.CreateBlockedSlot(models.CreateBlockedSlotRequest{
		BlockedDate: date,
		TableNumber: &badTable,
	})
	assert.Error(t, err)

	_, err = svc.CreateBlockedSlot(models.CreateBlockedSlotRequest{
		BlockedDate: "not-a-date",
	})
	assert.Error(t, err)
}
