package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"core/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Booking{}, &models.BlockedSlot{}))
	require.NoError(t, db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_booking
			ON bookings (booking_date, time_slot, table_number)
			WHERE status = 'confirmed' AND deleted_at IS NULL
	`).Error)

	handler := NewBookingHandler(db)

	r := gin.New()
	r.GET("/bookings/availability", handler.GetAvailability)
	r.POST("/bookings", handler.CreateBooking)
	r.GET("/bookings/:id/qr", handler.GetBookingQR)
	return r
}

func postBooking(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	r := setupBookingRouter(t)
	date := time.Now().AddDate(0, 0, 1).Format(models.BookingDateLayout)

	w := postBooking(t, r, map[string]interface{}{
		"user_name":    "Rohan Gupta",
		"phone_number": "+91 98765 43210",
		"booking_date": date,
		"time_slot":    "5:00 PM",
		"table_number": 3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, models.BookingConfirmed, booking.Status)

	// Same slot again: conflict
	w = postBooking(t, r, map[string]interface{}{
		"user_name":    "Priya Nair",
		"phone_number": "+91 98765 43211",
		"booking_date": date,
		"time_slot":    "5:00 PM",
		"table_number": 3,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingEndpoint_MissingFields(t *testing.T) {
	r := setupBookingRouter(t)

	w := postBooking(t, r, map[string]interface{}{
		"user_name": "Rohan Gupta",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	r := setupBookingRouter(t)
	date := time.Now().AddDate(0, 0, 1).Format(models.BookingDateLayout)

	w := postBooking(t, r, map[string]interface{}{
		"user_name":    "Rohan Gupta",
		"phone_number": "+91 98765 43210",
		"booking_date": date,
		"time_slot":    "5:00 PM",
		"table_number": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/bookings/availability?date="+date, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var availability models.DayAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &availability))

	assert.Equal(t, date, availability.Date)
	require.Len(t, availability.Slots, len(models.TimeSlots))
	for _, slot := range availability.Slots {
		if slot.TimeSlot == "5:00 PM" {
			assert.NotContains(t, slot.AvailableTables, 3)
			assert.Equal(t, 5, slot.AvailableCount)
		} else {
			assert.Equal(t, 6, slot.AvailableCount)
		}
	}
}

func TestAvailabilityEndpoint_RequiresDate(t *testing.T) {
	r := setupBookingRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/bookings/availability", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingQREndpoint(t *testing.T) {
	r := setupBookingRouter(t)
	date := time.Now().AddDate(0, 0, 1).Format(models.BookingDateLayout)

	w := postBooking(t, r, map[string]interface{}{
		"user_name":    "Rohan Gupta",
		"phone_number": "+91 98765 43210",
		"booking_date": date,
		"time_slot":    "5:00 PM",
		"table_number": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/bookings/%d/qr", booking.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	req = httptest.NewRequest(http.MethodGet, "/bookings/999/qr", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
