package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"masgolf/internal/domain"
)

const (
	maxDurationMinutes     = 480
	noAvailableDateMessage = "예약 가능한 날짜를 찾지 못했습니다. 전화(%s)로 문의해 주세요."
)

// parseDuration reads an optional duration in minutes. Zero means the configured default.
func parseDuration(value string) (int, bool) {
	if value == "" {
		return 0, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 || n > maxDurationMinutes {
		return 0, false
	}
	return n, true
}

// @Summary Next available booking date
// @Description Scans forward from the earliest bookable date and returns the first date with open start times
// @Tags Bookings
// @Produce json
// @Param duration query int false "Appointment length in minutes" default(60)
// @Param from_date query string false "First date to check, YYYY-MM-DD"
// @Success 200 {object} domain.NextAvailable
// @Failure 400 {object} storefrontError
// @Failure 404 {object} storefrontError "Nothing open within the booking horizon"
// @Failure 500 {object} storefrontError
// @Router /bookings/next-available [get]
func (h *Handler) getNextAvailable(c *gin.Context) {
	duration, ok := parseDuration(c.Query("duration"))
	if !ok {
		storefrontErrorResponse(c, http.StatusBadRequest, "invalid_duration",
			fmt.Sprintf("duration must be between 1 and %d minutes", maxDurationMinutes))
		return
	}

	var fromDate *time.Time
	if value := c.Query("from_date"); value != "" {
		date, err := h.services.Availability.ParseDate(value)
		if err != nil {
			storefrontErrorResponse(c, http.StatusBadRequest, "invalid_date", "from_date must be YYYY-MM-DD")
			return
		}
		fromDate = &date
	}

	next, err := h.services.Availability.FindNextAvailableDate(c.Request.Context(), duration, fromDate)
	if err != nil {
		if errors.Is(err, domain.ErrNoAvailableDate) {
			storefrontErrorResponse(c, http.StatusNotFound, "no_available_date",
				fmt.Sprintf(noAvailableDateMessage, h.config.Booking.ContactPhone))
			return
		}
		h.logger.Error("failed to find next available date", zap.Error(err))
		storefrontErrorResponse(c, http.StatusInternalServerError, "internal_error", "failed to find next available date")
		return
	}

	c.JSON(http.StatusOK, next)
}

// @Summary Available start times of a date
// @Tags Bookings
// @Produce json
// @Param date query string true "Date, YYYY-MM-DD"
// @Param duration query int false "Appointment length in minutes" default(60)
// @Success 200 {object} domain.AvailableTimes
// @Failure 400 {object} storefrontError
// @Failure 500 {object} storefrontError
// @Router /bookings/available-times [get]
func (h *Handler) getAvailableTimes(c *gin.Context) {
	duration, ok := parseDuration(c.Query("duration"))
	if !ok {
		storefrontErrorResponse(c, http.StatusBadRequest, "invalid_duration",
			fmt.Sprintf("duration must be between 1 and %d minutes", maxDurationMinutes))
		return
	}

	date, err := h.services.Availability.ParseDate(c.Query("date"))
	if err != nil {
		storefrontErrorResponse(c, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	times, err := h.services.Availability.AvailableTimes(c.Request.Context(), date, duration)
	if err != nil {
		h.logger.Error("failed to compute available times", zap.Error(err))
		storefrontErrorResponse(c, http.StatusInternalServerError, "internal_error", "failed to compute available times")
		return
	}

	c.JSON(http.StatusOK, times)
}
