package handlers

import (
	"net/http"

	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/appointment"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Service appointment.AppointmentService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc appointment.AppointmentService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookings handles GET /booking?patient=. The patient parameter must
// match the verified token email; any other patient's bookings are off
// limits even to a valid token holder.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	patient := c.Query("patient")
	claimEmail, ok := middleware.ClaimEmail(c)
	if !ok || patient != claimEmail {
		utils.JSONError(c, http.StatusForbidden, "forbidden access", "")
		return
	}

	bookings, err := h.Service.ListByPatient(patient)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /booking. A repeat request for the same
// (treatment, date, patient) reports success=false with the stored record.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	result, err := h.Service.Create(booking)
	if err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingByID handles GET /booking/:id. A missing booking yields a
// null body, not an error.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.Service.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", "")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PayBooking handles PATCH /booking/:id: records the payment and marks
// the booking paid.
func (h *BookingHandler) PayBooking(c *gin.Context) {
	id := c.Param("id")

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment payload", err.Error())
		return
	}

	result, err := h.Service.MarkPaid(id, payment)
	if err != nil {
		utils.GetLogger().Error("Failed to mark booking paid", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to record payment", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
