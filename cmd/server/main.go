package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"listing-marketplace/internal/assist"
	"listing-marketplace/internal/config"
	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/handler"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/metrics"
	"listing-marketplace/internal/middleware"
	"listing-marketplace/internal/repository"
	"listing-marketplace/internal/service"
	"listing-marketplace/internal/storage"
	"listing-marketplace/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logCloser := logger.Init(cfg.LogLevel, cfg.LogFileOptions())
	defer logCloser.Close()

	// Open the listing store
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.Open(ctx, cfg.StorageOptions())
	cancel()
	if err != nil {
		logger.Fatal("Failed to open listing store",
			slog.String("backend", cfg.StoreBackend),
			slog.String("error", err.Error()))
	}
	defer store.Close()

	listingRepo := repository.NewKVListingRepository(store, cfg.StoreKey, cfg.StoreQuotaBytes)

	// Initialize services
	policy := domain.NewCategoryPolicy(cfg.DisabledCategories)
	ids, err := service.NewSnowflakeIDs(cfg.SnowflakeNode)
	if err != nil {
		logger.Fatal("Failed to create id generator",
			slog.String("error", err.Error()))
	}
	listingService := service.NewListingService(
		listingRepo,
		validator.NewValidator(policy),
		ids,
		policy,
		service.ListingOptions{
			DefaultLocation:   cfg.DefaultLocation,
			DefaultSellerName: cfg.DefaultSellerName,
		},
	)

	var generator assist.Generator = assist.DisabledGenerator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := assist.NewGeminiGenerator(context.Background(), assist.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal("Failed to create text generation client",
				slog.String("error", err.Error()))
		}
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY is not set, description assist will return the fallback text")
	}

	assistant := assist.NewAssistant(generator, cfg.AssistLanguage, cfg.AssistTimeout)
	taskRunner, err := assist.NewTaskRunner(assistant, cfg.AssistWorkers)
	if err != nil {
		logger.Fatal("Failed to create assist worker pool",
			slog.String("error", err.Error()))
	}
	assistService := service.NewAssistService(assistant, taskRunner)

	// Scheduled jobs: store gauges and the assist task sweep
	scheduler := cron.New()
	statsCollector := metrics.NewStoreStatsCollector(listingRepo, 10*time.Second)
	if _, err := statsCollector.Schedule(scheduler, cfg.StatsSchedule); err != nil {
		logger.Fatal("Failed to schedule store stats",
			slog.String("error", err.Error()))
	}
	if _, err := scheduler.AddFunc(cfg.SweepSchedule, func() {
		taskRunner.Sweep(cfg.AssistTaskTTL)
	}); err != nil {
		logger.Fatal("Failed to schedule assist task sweep",
			slog.String("error", err.Error()))
	}
	scheduler.Start()

	// Initialize handlers
	listingHandler := handler.NewListingHandler(listingService, cfg.MaxImageBytes)
	assistHandler := handler.NewAssistHandler(assistService)
	healthHandler := handler.NewHealthHandler(store, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics("/live", "/ready"))
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		listings := v1.Group("/listings")
		{
			listings.GET("", listingHandler.ListListings)
			listings.POST("", listingHandler.CreateListing)
			listings.GET("/:id", listingHandler.GetListing)
		}

		v1.GET("/categories", listingHandler.ListCategories)

		assists := v1.Group("/assist")
		{
			assists.POST("/description", assistHandler.Describe)
			assists.POST("/tasks", assistHandler.CreateTask)
			assists.GET("/tasks/:id", assistHandler.GetTask)
			assists.DELETE("/tasks/:id", assistHandler.DeleteTask)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store_backend", store.Name()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop scheduled jobs and wait for a running one to finish
	<-scheduler.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// In-flight assist tasks run to completion on their own goroutines
	logger.Info("Releasing assist worker pool")
	taskRunner.Close()

	logger.Info("Server exited")
}
