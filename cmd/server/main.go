package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	bookingapp "github.com/tourbook/backend/internal/application/booking"
	catalogapp "github.com/tourbook/backend/internal/application/catalog"
	appnotification "github.com/tourbook/backend/internal/application/notification"
	vendorapp "github.com/tourbook/backend/internal/application/vendor"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/infrastructure/cache"
	"github.com/tourbook/backend/internal/infrastructure/config"
	"github.com/tourbook/backend/internal/infrastructure/event"
	"github.com/tourbook/backend/internal/infrastructure/logger"
	"github.com/tourbook/backend/internal/infrastructure/notification"
	"github.com/tourbook/backend/internal/infrastructure/persistence"
	"github.com/tourbook/backend/internal/infrastructure/telemetry"
	"github.com/tourbook/backend/internal/interfaces/http/handler"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
	"github.com/tourbook/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env))

	// Initialize database with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Initialize OpenTelemetry tracing
	ctx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down tracer provider", zap.Error(err))
		}
	}()

	// Database query tracing rides on the tracer provider
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Initialize OpenTelemetry metrics
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down meter provider", zap.Error(err))
		}
	}()

	// Initialize repositories
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	subscriptionRepo := persistence.NewGormSubscriptionRepository(db.DB)
	tourRepo := persistence.NewGormTourRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	commissionRepo := persistence.NewGormCommissionRepository(db.DB)

	// Idempotency store backs event handler deduplication. Redis is
	// preferred; a process-local store keeps single-instance deployments
	// working without it.
	var idempotencyStore shared.IdempotencyStore
	redisStore, err := cache.NewRedisIdempotencyStore(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory idempotency store",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Error(err))
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
	} else {
		idempotencyStore = redisStore
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Error("Failed to stop event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	vendorService := vendorapp.NewVendorService(vendorRepo, subscriptionRepo, tourRepo, log)
	quotaService := vendorapp.NewQuotaService(subscriptionRepo, log)
	tourService := catalogapp.NewTourService(tourRepo, quotaService, log)
	reviewService := catalogapp.NewReviewService(reviewRepo, bookingRepo, vendorService, log)
	bookingService := bookingapp.NewBookingService(bookingRepo, commissionRepo, tourRepo, log)
	commissionService := bookingapp.NewCommissionService(commissionRepo, bookingRepo, log)

	vendorService.SetEventPublisher(eventBus)
	quotaService.SetEventPublisher(eventBus)
	tourService.SetEventPublisher(eventBus)
	bookingService.SetEventPublisher(eventBus)

	// Business metrics
	if meterProvider.IsEnabled() {
		businessMetrics, err := telemetry.NewBusinessMetrics(
			meterProvider.Meter("tourbook.business"), tourRepo, log)
		if err != nil {
			log.Fatal("Failed to initialize business metrics", zap.Error(err))
		}
		bookingService.SetBusinessMetrics(businessMetrics)
		quotaService.SetBusinessMetrics(businessMetrics)
		go businessMetrics.StartPeriodicCollection(ctx, time.Minute)
		defer businessMetrics.Stop()
	}

	// Subscribe event handlers
	eventBus.Subscribe(bookingapp.NewCancellationHandler(commissionService, idempotencyStore, log))
	eventBus.Subscribe(appnotification.NewHandler(notification.NewLogNotifier(log), idempotencyStore, log))

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(db)
	handlers := []router.RouteRegistrar{
		systemHandler,
		handler.NewAuthHandler(jwtService, !cfg.IsProduction()),
		handler.NewVendorHandler(vendorService, quotaService),
		handler.NewTourHandler(tourService),
		handler.NewReviewHandler(reviewService),
		handler.NewBookingHandler(bookingService),
		handler.NewCommissionHandler(commissionService),
		handler.NewPaymentHandler(bookingService),
	}

	// Build the router
	middleware.SetupValidator()
	ginMode := "debug"
	if cfg.IsProduction() {
		ginMode = "release"
	}
	r, err := router.New(router.Config{
		Mode:           ginMode,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		CORS: middleware.CORSConfig{
			AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
			AllowMethods:     cfg.HTTP.CORSAllowMethods,
			AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		Logger: log,
	}, jwtService)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}
	r.Register(handlers...)
	r.RegisterHealth(systemHandler.Health)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r.Engine(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
