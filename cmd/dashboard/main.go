package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesboard/internal/config"
	"salesboard/internal/handlers"
	"salesboard/internal/middleware"
	"salesboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics()
	generator := services.NewSalesGenerator(cfg.Generator.Latency)
	fetcher := services.NewSalesClient(&cfg.Upstream, generator, logger, metrics)
	cache := services.NewQueryCache(fetcher, cfg.Cache.TTL, cfg.Cache.Retention, cfg.Upstream.Timeout, logger, metrics)
	tokens := services.NewTokenService(&cfg.Upstream, logger, metrics)

	sessions := services.NewSessionRegistry()

	salesHandler := handlers.NewSalesHandler(tokens, cache)
	dashboardHandler := handlers.NewDashboardHandler(tokens, cache)
	sessionHandler := handlers.NewSessionHandler(sessions, tokens, cache)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.Middleware())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireBearer())
	api.GET("/sales", salesHandler.ListSales)
	api.GET("/dashboard", dashboardHandler.GetDashboard)

	api.POST("/sessions", sessionHandler.CreateSession)
	api.GET("/sessions/:id/sales", sessionHandler.GetSales)
	api.PUT("/sessions/:id/filter", sessionHandler.UpdateFilter)
	api.PUT("/sessions/:id/sort", sessionHandler.ToggleSort)
	api.POST("/sessions/:id/page/next", sessionHandler.NextPage)
	api.POST("/sessions/:id/page/prev", sessionHandler.PrevPage)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("dashboard server starting", "port", cfg.Server.Port, "upstream", cfg.Upstream.BaseURL, "upstream_enabled", cfg.Upstream.Enabled)
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	} else {
		logger.Info("server stopped")
	}
}
