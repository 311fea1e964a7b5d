package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) snapshotEnabled(c *gin.Context) bool {
	if h.services.Snapshot == nil {
		errorResponse(c, http.StatusServiceUnavailable, "object storage is not configured")
		return false
	}
	return true
}

// @Summary Last published availability snapshot
// @Tags Admin
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.AvailabilitySnapshot}
// @Failure 404 {object} errorResponseBody
// @Failure 503 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/snapshot [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	if !h.snapshotEnabled(c) {
		return
	}

	snapshot, err := h.services.Snapshot.Latest(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "load availability snapshot")
		return
	}

	successResponse(c, http.StatusOK, snapshot)
}

// @Summary Publish the availability snapshot now
// @Tags Admin
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.AvailabilitySnapshot}
// @Failure 503 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/snapshot [post]
func (h *Handler) publishSnapshot(c *gin.Context) {
	if !h.snapshotEnabled(c) {
		return
	}

	snapshot, err := h.services.Snapshot.Publish(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "publish availability snapshot")
		return
	}

	successResponse(c, http.StatusOK, snapshot)
}
