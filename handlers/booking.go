package handlers

import (
	"errors"
	"net/http"

	"venuebook/models"
	"venuebook/services/booking"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking widget and dashboard endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	id, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnknownSlot):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "One or more requested time slots are already booked")
		default:
			h.Logger.Error("Error creating booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"bookingId": id,
		"message":   "Booking created successfully",
	})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Error fetching bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// PatchBooking handles PATCH /api/bookings.
func (h *BookingHandler) PatchBooking(c *gin.Context) {
	var input models.BookingPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid patch payload: "+err.Error())
		return
	}
	if input.BookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	updated, err := h.Service.Patch(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID")
		case errors.Is(err, booking.ErrNoFields):
			utils.JSONError(c, http.StatusBadRequest, "No updatable fields supplied")
		case errors.Is(err, booking.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking status")
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		default:
			h.Logger.Error("Error updating booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": updated,
		"message": "Booking updated successfully",
	})
}
