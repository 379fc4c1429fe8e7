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
)

// The demo API stands in for the real sales upstream: it issues its own
// signed tokens from /getAuthorize and answers /sales with generated
// pages in the upstream wire format.
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

	generator := services.NewSalesGenerator(cfg.Generator.Latency)
	secret := []byte(cfg.Demo.JWTSecret)
	demoHandler := handlers.NewDemoHandler(generator, secret, cfg.Demo.TokenTTL)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())

	e.POST("/getAuthorize", demoHandler.Authorize)
	e.GET("/sales", demoHandler.ListSales, middleware.RequireSignedBearer(secret))

	go func() {
		logger.Info("demo sales API starting", "port", cfg.Demo.Port)
		if err := e.Start(":" + cfg.Demo.Port); err != nil && err != http.ErrServerClosed {
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
