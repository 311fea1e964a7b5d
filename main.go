package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"masgolf/config"
	_ "masgolf/docs"
	"masgolf/internal/repository"
	"masgolf/internal/scheduler"
	"masgolf/internal/service"
	"masgolf/internal/storage"
	"masgolf/internal/transport/rest"
	"masgolf/pkg/database"
	"masgolf/pkg/logger"
	"masgolf/pkg/ratelimit"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MASGOLF Booking API
// @version 1.0
// @description Fitting appointment availability and booking for the MASGOLF storefront

// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Name, cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	db, err := database.NewPostgresDB(startupCtx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running database migrations", zap.String("dir", cfg.Postgres.MigrationsDir))
	if err := database.RunMigrations(startupCtx, db, cfg.Postgres.MigrationsDir, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	var objectStorage storage.ObjectStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(startupCtx, cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialize s3 storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("s3 storage initialized", zap.String("endpoint", cfg.S3.Endpoint), zap.String("bucket", cfg.S3.Bucket))
	} else {
		log.Warn("s3 storage is not configured, availability snapshots are disabled")
	}

	var rateLimit gin.HandlerFunc
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(startupCtx).Err(); err != nil {
			log.Warn("redis is unreachable, rate limiter will fail open", zap.Error(err))
		}

		limiter := ratelimit.NewRedisLimiter(rdb, cfg.Redis.RateLimitPerMinute, time.Minute, "masgolf:rl:bookings")
		rateLimit = limiter.Middleware(log, true)
		log.Info("redis rate limiting enabled", zap.Int("per_minute", cfg.Redis.RateLimitPerMinute))
	} else {
		rateLimit = ratelimit.NewMemoryLimiter(cfg.Redis.RateLimitPerMinute).Middleware()
		log.Info("in-memory rate limiting enabled", zap.Int("per_minute", cfg.Redis.RateLimitPerMinute))
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:   repos,
		Logger:  log,
		Config:  cfg,
		Storage: objectStorage,
	})

	var jobs *scheduler.Scheduler
	if services.Snapshot != nil {
		jobs = scheduler.New(services.Snapshot, cfg.Booking.Location, time.Minute, log)
		if err := jobs.Register(cfg.Snapshot.Schedule); err != nil {
			log.Fatal("failed to schedule snapshot job", zap.Error(err))
		}
		jobs.Start()
		go jobs.RunOnce(context.Background())
	}

	handler := rest.NewHandler(services, log, cfg, db, rateLimit)

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr), zap.String("timezone", cfg.Booking.Timezone))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if jobs != nil {
		if err := jobs.Stop(ctx); err != nil {
			log.Warn("snapshot job did not stop in time", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("failed to stop server", zap.Error(err))
	}

	log.Info("server stopped")
}
