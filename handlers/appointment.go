package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artigadental/cron"
	"artigadental/services/scheduling"
	"artigadental/utils"
)

// AppointmentHandler serves the public booking form.
type AppointmentHandler struct {
	Engine *scheduling.Engine
}

func NewAppointmentHandler(engine *scheduling.Engine) *AppointmentHandler {
	return &AppointmentHandler{Engine: engine}
}

type appointmentInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	IsAutoBooking bool   `json:"isAutoBooking"`
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	logger := utils.GetLogger()

	var input appointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	outcome, err := h.Engine.Book(c.Request.Context(), scheduling.BookingRequest{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Message:  input.Message,
		Service:  input.Service,
		Date:     input.Date,
		Time:     input.Time,
		AutoBook: input.IsAutoBooking,
	}, time.Now())
	if err != nil {
		switch {
		case scheduling.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case scheduling.IsInvalidSlot(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment slot"})
		case scheduling.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": "slot no longer available"})
		default:
			logger.Error("booking failed", zap.String("service", input.Service), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	// Notification dispatch is fire-and-forget: the booking outcome above is
	// already decided and a mail failure must not change it.
	if err := cron.EnqueueAppointmentMail(outcome.Reservation, input.Date, input.Time); err != nil {
		logger.Warn("failed to enqueue appointment mail",
			zap.String("reservationID", outcome.Reservation.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
