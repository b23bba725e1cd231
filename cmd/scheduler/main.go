package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily-task-manager/config"
	"daily-task-manager/internal/app"
	"daily-task-manager/internal/scheduler"
	"daily-task-manager/pkg/log"
)

// main runs the carry-over job on carry_over.schedule until interrupted.
// GET /api/cron/carry-over remains the primary trigger; this binary is for
// deployments without an external scheduler.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting scheduler service...")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize app: ", err)
		return
	}
	defer a.Close(context.Background())

	s, err := scheduler.New(logger, a.Tasks, scheduler.Config{
		Timezone: cfg.CarryOver.Timezone,
		Schedule: cfg.CarryOver.Schedule,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize scheduler: ", err)
		return
	}

	s.Start()
	logger.Infof(ctx, "Carry-over scheduled %q (%s), next run %s", cfg.CarryOver.Schedule, cfg.CarryOver.Timezone, s.Next().Format(time.RFC3339))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Stop(shutdownCtx)
	logger.Info(ctx, "Scheduler service stopped gracefully")
}
