package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artigadental/services/scheduling"
	"artigadental/utils"
)

// AvailabilityHandler serves the public slot calendar.
type AvailabilityHandler struct {
	Engine *scheduling.Engine
}

func NewAvailabilityHandler(engine *scheduling.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

type slotResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

// No service runs longer than a full day; anything beyond is a bad request.
const maxDurationMinutes = 24 * 60

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD&duration=N.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	dateParam := c.Query("date")
	durationParam := c.Query("duration")
	if dateParam == "" || durationParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date or duration parameters"})
		return
	}

	date, err := scheduling.ParseCivilDate(dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or duration"})
		return
	}
	duration, err := strconv.Atoi(durationParam)
	if err != nil || duration <= 0 || duration > maxDurationMinutes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or duration"})
		return
	}

	slots, err := h.Engine.ResolveAvailability(c.Request.Context(), date, duration, time.Now())
	if err != nil {
		if scheduling.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or duration"})
			return
		}
		utils.GetLogger().Error("availability resolution failed",
			zap.String("date", dateParam), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking availability"})
		return
	}

	out := make([]slotResponse, len(slots))
	for i, s := range slots {
		out[i] = slotResponse{Time: scheduling.FormatClock12(s.Minute), Status: s.Status}
	}
	c.JSON(http.StatusOK, gin.H{"slots": out})
}
