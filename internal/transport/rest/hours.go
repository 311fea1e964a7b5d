package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masgolf/internal/domain"
)

// @Summary List operating hours
// @Tags Admin
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.OperatingHours}
// @Security ApiKeyAuth
// @Router /admin/hours [get]
func (h *Handler) getHours(c *gin.Context) {
	hours, err := h.services.Hours.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "list operating hours")
		return
	}

	successResponse(c, http.StatusOK, hours)
}

// @Summary Add an operating-hours slot
// @Description Each row offers exactly one bookable start, its start_time
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body domain.CreateOperatingHoursDTO true "Slot"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/hours [post]
func (h *Handler) createHours(c *gin.Context) {
	var req domain.CreateOperatingHoursDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Hours.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err, "create operating hours")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update an operating-hours slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Param input body domain.UpdateOperatingHoursDTO true "Changes"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/hours/{id} [put]
func (h *Handler) updateHours(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.UpdateOperatingHoursDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Hours.Update(c.Request.Context(), id, req); err != nil {
		h.handleServiceError(c, err, "update operating hours")
		return
	}

	messageResponse(c, http.StatusOK, "operating hours updated")
}

// @Summary Delete an operating-hours slot
// @Tags Admin
// @Param id path int true "Slot ID"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/hours/{id} [delete]
func (h *Handler) deleteHours(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Hours.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "delete operating hours")
		return
	}

	messageResponse(c, http.StatusOK, "operating hours deleted")
}
