package rest

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/service"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	logger    *zap.Logger
	config    *config.Config
	db        Pinger
	rateLimit gin.HandlerFunc
}

// NewHandler wires the HTTP layer. rateLimit guards the public booking routes and may be nil.
func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, db Pinger, rateLimit gin.HandlerFunc) *Handler {
	return &Handler{
		services:  services,
		logger:    logger,
		config:    config,
		db:        db,
		rateLimit: rateLimit,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/healthz", h.healthz)

	api := router.Group("/api")
	{
		h.initBookingRoutes(api)
		h.initAdminRoutes(api)
	}
}

func (h *Handler) initBookingRoutes(api *gin.RouterGroup) {
	bookings := api.Group("/bookings")
	if h.rateLimit != nil {
		bookings.Use(h.rateLimit)
	}
	{
		bookings.GET("/next-available", h.getNextAvailable)
		bookings.GET("/available-times", h.getAvailableTimes)
		bookings.POST("", h.createBooking)
	}
}

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")

	auth := admin.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refreshTokens)
		auth.POST("/logout", h.logout)
	}

	protected := admin.Group("", h.authMiddleware(), h.adminMiddleware())
	{
		protected.GET("/settings", h.getSettings)
		protected.PUT("/settings", h.updateSettings)

		hours := protected.Group("/hours")
		{
			hours.GET("", h.getHours)
			hours.POST("", h.createHours)
			hours.PUT("/:id", h.updateHours)
			hours.DELETE("/:id", h.deleteHours)
		}

		blocks := protected.Group("/blocks")
		{
			blocks.GET("", h.getBlocks)
			blocks.POST("", h.createBlock)
			blocks.DELETE("/:id", h.deleteBlock)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", h.getBookings)
			bookings.GET("/:id", h.getBookingByID)
			bookings.PUT("/:id/status", h.updateBookingStatus)
		}

		snapshot := protected.Group("/snapshot")
		{
			snapshot.GET("", h.getSnapshot)
			snapshot.POST("", h.publishSnapshot)
		}
	}
}
