package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"masgolf/internal/domain"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequestResponse(c, "invalid id")
		return 0, false
	}
	return id, true
}

// @Summary Create a booking
// @Description Creates a pending booking if the requested time is currently offered for that date
// @Tags Bookings
// @Accept json
// @Produce json
// @Param input body domain.CreateBookingDTO true "Booking request"
// @Success 201 {object} successResponseBody{data=domain.Booking}
// @Failure 400 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody "Time is no longer available"
// @Failure 500 {object} errorResponseBody
// @Router /bookings [post]
func (h *Handler) createBooking(c *gin.Context) {
	var req domain.CreateBookingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid booking request", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	booking, err := h.services.Booking.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err, "create booking")
		return
	}

	createdResponse(c, booking)
}

// @Summary List bookings
// @Tags Admin
// @Produce json
// @Param date query string false "Date, YYYY-MM-DD"
// @Param status query string false "Comma separated statuses"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} paginatedResponse{data=[]domain.Booking}
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/bookings [get]
func (h *Handler) getBookings(c *gin.Context) {
	var filter domain.BookingFilter

	if value := c.Query("date"); value != "" {
		date, err := h.services.Availability.ParseDate(value)
		if err != nil {
			badRequestResponse(c, "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	if value := c.Query("status"); value != "" {
		for _, s := range strings.Split(value, ",") {
			filter.Statuses = append(filter.Statuses, domain.BookingStatus(strings.TrimSpace(s)))
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	filter.Limit = limit
	filter.Offset = offset

	bookings, total, err := h.services.Booking.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err, "list bookings")
		return
	}

	paginatedSuccessResponse(c, bookings, total, offset/limit+1, limit)
}

// @Summary Get a booking
// @Tags Admin
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} successResponseBody{data=domain.Booking}
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/bookings/{id} [get]
func (h *Handler) getBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.services.Booking.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, "get booking")
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Change booking status
// @Description Cancelling a booking frees its time for new requests. Reinstating a cancelled booking fails when its time was taken meanwhile
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param input body domain.UpdateBookingStatusDTO true "New status"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/bookings/{id}/status [put]
func (h *Handler) updateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.UpdateBookingStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "status must be one of pending, confirmed, cancelled")
		return
	}

	if err := h.services.Booking.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleServiceError(c, err, "update booking status")
		return
	}

	messageResponse(c, http.StatusOK, "booking status updated")
}
