package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"masgolf/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	adminLoginCtx       = "admin_login"
	roleCtx             = "role"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
		)

		if status >= 500 {
			logger.Error("server error")
		} else if status >= 400 {
			logger.Warn("client error")
		} else {
			logger.Info("request processed")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("request error", zap.Error(err))
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept-Encoding, Origin, Accept, User-Agent, X-Requested-With, Cache-Control")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, X-RateLimit-Limit, X-RateLimit-Remaining, Retry-After")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		origin := c.Request.Header.Get("Origin")
		if origin != "" && c.Request.Header.Get(authorizationHeader) != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			unauthorizedResponse(c, "empty authorization header")
			return
		}

		headerParts := strings.Split(header, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			unauthorizedResponse(c, "invalid authorization header format")
			return
		}

		login, role, err := h.services.Auth.ParseToken(c.Request.Context(), headerParts[1])
		if err != nil {
			unauthorizedResponse(c, "invalid or expired token")
			return
		}

		c.Set(adminLoginCtx, login)
		c.Set(roleCtx, role)

		c.Next()
	}
}

func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(roleCtx)
		if !exists {
			unauthorizedResponse(c)
			return
		}

		if r, ok := role.(string); !ok || r != domain.AdminRole {
			forbiddenResponse(c)
			return
		}

		c.Next()
	}
}
