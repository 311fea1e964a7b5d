package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masgolf/internal/domain"
)

// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} successResponseBody{data=domain.Tokens}
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody
// @Router /admin/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.handleServiceError(c, err, "log in")
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} successResponseBody{data=domain.Tokens}
// @Failure 401 {object} errorResponseBody
// @Router /admin/auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.handleServiceError(c, err, "refresh tokens")
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Logout
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} messageResponseType
// @Router /admin/auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var req domain.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.handleServiceError(c, err, "log out")
		return
	}

	messageResponse(c, http.StatusOK, "logged out")
}
