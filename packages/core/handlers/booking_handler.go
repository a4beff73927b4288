package handlers

import (
	"core/models"
	"core/services"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type BookingHandler struct {
	bookingService *services.BookingService
	db             *gorm.DB
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{
		bookingService: services.NewBookingService(db),
		db:             db,
	}
}

// GetAvailability returns slot availability for a date
// @Summary Get table availability
// @Description Get per-slot table availability for one date
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	availability, err := h.bookingService.GetDayAvailability(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, availability)
}

// CreateBooking creates a new table booking
// @Summary Book a table
// @Description Book a table for a date and time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body models.CreateBookingRequest true "Booking data"
// @Success 201 {object} models.Booking
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(req)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "This slot was just booked by someone else. Please pick another."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookingQR returns a booking confirmation QR code
// @Summary Get booking QR code
// @Description Get a PNG QR code encoding the booking confirmation
// @Tags bookings
// @Produce png
// @Param id path int true "Booking ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/qr [get]
func (h *BookingHandler) GetBookingQR(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := h.bookingService.GetBooking(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	content := fmt.Sprintf("BOOKING #%d | %s | %s | Table %d | %s",
		booking.ID, booking.UserName, booking.BookingDate, booking.TableNumber, booking.TimeSlot)

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GetAllBookings lists bookings for the admin panel
// @Summary List bookings
// @Description List bookings with optional date, status and search filters (admin only)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status" Enums(confirmed, cancelled, completed)
// @Param search query string false "Search by customer name or phone"
// @Success 200 {array} models.Booking
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Query("date"), c.Query("status"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking updates a booking's status or notes
// @Summary Update booking
// @Description Update a booking's status or notes (admin only)
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param booking body models.UpdateBookingRequest true "Booking update data"
// @Success 200 {object} models.Booking
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBooking(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Another confirmed booking holds this slot"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking deletes a booking
// @Summary Delete booking
// @Description Delete a booking (admin only)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.bookingService.DeleteBooking(uint(id)); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// GetBlockedSlots lists blocked-slot rules
// @Summary List blocked slots
// @Description List blocked-slot rules, optionally for one date (admin only)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} models.BlockedSlot
// @Failure 401 {object} map[string]string
// @Router /admin/blocked-slots [get]
func (h *BookingHandler) GetBlockedSlots(c *gin.Context) {
	slots, err := h.bookingService.ListBlockedSlots(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateBlockedSlot adds a blocked-slot rule
// @Summary Block a slot
// @Description Block a date, slot or table; omitted fields block everything they cover (admin only)
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slot body models.CreateBlockedSlotRequest true "Blocked slot data"
// @Success 201 {object} models.BlockedSlot
// @Failure 400 {object} map[string]string
// @Router /admin/blocked-slots [post]
func (h *BookingHandler) CreateBlockedSlot(c *gin.Context) {
	var req models.CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.bookingService.CreateBlockedSlot(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// DeleteBlockedSlot removes a blocked-slot rule
// @Summary Unblock a slot
// @Description Delete a blocked-slot rule (admin only)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Blocked slot ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blocked-slots/{id} [delete]
func (h *BookingHandler) DeleteBlockedSlot(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blocked slot ID"})
		return
	}

	if err := h.bookingService.DeleteBlockedSlot(uint(id)); err != nil {
		if err.Error() == "blocked slot not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blocked slot deleted successfully"})
}
