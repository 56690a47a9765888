package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/machao2024/medibridge-api/config"
	"github.com/machao2024/medibridge-api/internal/handlers"
	"github.com/machao2024/medibridge-api/internal/locale"
	"github.com/machao2024/medibridge-api/internal/middleware"
	"github.com/machao2024/medibridge-api/internal/services"
	"github.com/machao2024/medibridge-api/pkg/httpclient"
	"github.com/machao2024/medibridge-api/pkg/logger"
	"github.com/machao2024/medibridge-api/pkg/metrics"
	"github.com/machao2024/medibridge-api/pkg/profiling"
	"github.com/machao2024/medibridge-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the versioned API routes for a given router group
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, inquiryRateLimiter *middleware.RateLimiter,
	inquiryHandler *handlers.InquiryHandler,
	localeHandler *handlers.LocaleHandler,
) {
	group.POST("/inquiry", inquiryRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024), inquiryHandler.SubmitInquiry)
	group.GET("/locale/:lang", generalRateLimiter.Middleware(), localeHandler.GetLocale)
	group.GET("/locales", generalRateLimiter.Middleware(), localeHandler.ListLocales)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MediBridge API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling (no-op when disabled)
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Load the locale table synchronously before accepting requests.
	// Dictionaries are embedded in the binary, so a failure here is a
	// build defect, not a runtime condition worth retrying.
	localeTable, err := locale.NewTable(cfg.Locale.Default)
	if err != nil {
		logger.Fatal("Failed to load locale table", zap.Error(err))
	}
	logger.Info("Locale table loaded",
		zap.Strings("locales", localeTable.Codes()),
		zap.String("default", localeTable.Default()),
	)

	// Initialize HTTP client for external API calls
	httpClient := httpclient.NewStandardClient()

	// Initialize services
	inquiryService := services.NewInquiryService(cfg, httpClient)

	// Initialize handlers
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	localeHandler := handlers.NewLocaleHandler(localeTable)
	healthHandler := handlers.NewHealthHandler(localeTable.IsReady)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - SECURITY: Only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	// Allow localhost in development
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length", "Content-Language"},
		MaxAge:        12 * time.Hour,
	}))

	// SECURITY: Rate limiters to prevent abuse and DoS attacks
	// Different limits for different endpoint types
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	inquiryRateLimiter := middleware.NewRateLimiter(2, 5)     // 2 req/sec, burst of 5 (prevent spam)

	// API routes
	api := router.Group("/api")
	// Utility endpoints (not versioned - operational endpoints)
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// API v1 routes
	// SECURITY: Apply body size limits to prevent DoS attacks
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, inquiryRateLimiter, inquiryHandler, localeHandler)

	// Create HTTP server
	// SECURITY: Bind to all interfaces for Docker Compose networking
	// Network isolation is enforced by Docker Compose (backend has no public ports)
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // SECURITY: 1 MB max header size
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
