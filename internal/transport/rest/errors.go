package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"masgolf/internal/domain"
)

// handleServiceError maps service sentinels onto the admin envelope. Anything unknown is
// logged and reported as a 500.
func (h *Handler) handleServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		badRequestResponse(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, "not found")
	case errors.Is(err, domain.ErrSlotUnavailable):
		conflictResponse(c, domain.ErrSlotUnavailable.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		unauthorizedResponse(c, err.Error())
	default:
		h.logger.Error("failed to "+action, zap.Error(err))
		internalServerErrorResponse(c)
	}
}
