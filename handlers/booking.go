package handlers

import (
	"net/http"

	"careconnect/models"
	"careconnect/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings. Seeker only.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	seekerID := c.GetString("userID")
	b, err := h.Service.CreateBooking(c.Request.Context(), seekerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ConfirmBooking handles PUT /api/bookings/:id/confirm. Provider only.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	b, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking handles PUT /api/bookings/:id/cancel. Either party.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBooking handles PUT /api/bookings/:id/complete. Provider only.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	b, err := h.Service.CompleteBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBooking handles GET /api/bookings/:id for a party to the booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMine handles GET /api/bookings/mine, routed by the caller's role so
// both sides read the same authoritative records.
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	var (
		bookings []models.Booking
		err      error
	)
	switch c.GetString("role") {
	case models.RoleProvider:
		bookings, err = h.Service.ListForProvider(c.Request.Context(), userID)
	default:
		bookings, err = h.Service.ListForSeeker(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
