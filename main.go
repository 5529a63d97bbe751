package main

import (
	"context"
	"fmt"
	"log/slog"
	"notes-app/config"
	"notes-app/config/setup"
	"notes-app/frontend"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	cfg := config.AppConfig

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	db, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	application, err := setup.InitApp(db, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		db.Close()
		os.Exit(1)
	}

	api := setup.NewFiberApp(cfg, logger, cfg.TrustedProxies)
	setup.ApplyMiddleware(api, cfg, logger)
	setup.RegisterRoutes(api, application)

	logger.Info("starting api server", "port", cfg.Port, "env", cfg.Env)
	go func() {
		if err := api.Listen(":" + cfg.Port); err != nil {
			logger.Error("api server failed", "error", err)
			os.Exit(1)
		}
	}()

	var web *fiber.App
	var fe *frontend.Frontend
	if cfg.FrontendPort != "" {
		fe = setup.InitFrontend(cfg, logger)
		web = setup.NewFiberApp(cfg, logger, cfg.FrontendTrustedProxies)
		setup.ApplyFrontendMiddleware(web, logger)
		fe.RegisterRoutes(web)

		logger.Info("starting frontend server", "port", cfg.FrontendPort, "api_url", cfg.APIURL)
		go func() {
			if err := web.Listen(":" + cfg.FrontendPort); err != nil {
				logger.Error("frontend server failed", "error", err)
				os.Exit(1)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down servers gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if web != nil {
		if err := web.ShutdownWithContext(ctx); err != nil {
			logger.Error("frontend forced to shutdown", "error", err)
		}
	}
	if err := api.ShutdownWithContext(ctx); err != nil {
		logger.Error("api forced to shutdown", "error", err)
	}

	setup.Shutdown(fe, db, logger)
	logger.Info("servers stopped")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(cfg.LogLevel),
		AddSource: cfg.Env == "development",
	}

	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
