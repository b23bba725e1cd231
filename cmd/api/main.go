package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-task-manager/config"
	_ "daily-task-manager/docs" // Swagger docs
	"daily-task-manager/internal/app"
	"daily-task-manager/internal/httpserver"
	"daily-task-manager/pkg/log"
)

// @title       Daily Task Manager API
// @description Daily tasks with routines, carry-over and a chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s (carry-over: %s)", cfg.App.Timezone, cfg.CarryOver.Timezone)

	// 3. Domain layer
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize app: ", err)
		return
	}
	defer a.Close(context.Background())

	if cfg.Cron.Secret == "" {
		logger.Warn(ctx, "CRON_SECRET is not set, /api/cron/carry-over is open")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		CronSecret:      cfg.Cron.Secret,
		TaskUseCase:     a.Tasks,
		RoutineUseCase:  a.Routines,
		ChatUseCase:     a.Chat,
		Clock:           a.Clock,
		UUIDIDs:         cfg.Datastore.UUIDIDs,
		Readiness:       a.Ping,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
