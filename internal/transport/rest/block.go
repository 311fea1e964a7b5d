package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masgolf/internal/domain"
)

// @Summary List blocks of a date
// @Tags Admin
// @Produce json
// @Param date query string true "Date, YYYY-MM-DD"
// @Success 200 {object} successResponseBody{data=[]domain.BookingBlock}
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/blocks [get]
func (h *Handler) getBlocks(c *gin.Context) {
	blocks, err := h.services.Block.ListByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleServiceError(c, err, "list booking blocks")
		return
	}

	successResponse(c, http.StatusOK, blocks)
}

// @Summary Block a time range
// @Description Virtual blocks are shown in the calendar but do not remove availability
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body domain.CreateBlockDTO true "Block"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/blocks [post]
func (h *Handler) createBlock(c *gin.Context) {
	var req domain.CreateBlockDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Block.Create(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err, "create booking block")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Remove a block
// @Tags Admin
// @Param id path int true "Block ID"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/blocks/{id} [delete]
func (h *Handler) deleteBlock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Block.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "delete booking block")
		return
	}

	messageResponse(c, http.StatusOK, "booking block deleted")
}
