package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masgolf/internal/domain"
)

// @Summary Get booking settings
// @Tags Admin
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.BookingSettings}
// @Security ApiKeyAuth
// @Router /admin/settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "load booking settings")
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Update booking settings
// @Description Only the supplied fields change
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body domain.UpdateBookingSettingsDTO true "Settings"
// @Success 200 {object} successResponseBody{data=domain.BookingSettings}
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/settings [put]
func (h *Handler) updateSettings(c *gin.Context) {
	var req domain.UpdateBookingSettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	settings, err := h.services.Settings.Update(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err, "update booking settings")
		return
	}

	successResponse(c, http.StatusOK, settings)
}
