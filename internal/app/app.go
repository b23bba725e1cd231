// Package app assembles the datastore, use cases and clocks from config.
// Every binary starts from here.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"daily-task-manager/config"
	"daily-task-manager/config/postgre"
	"daily-task-manager/internal/chat"
	chatUC "daily-task-manager/internal/chat/usecase"
	"daily-task-manager/internal/routine"
	routineRepo "daily-task-manager/internal/routine/repository"
	routinePostgre "daily-task-manager/internal/routine/repository/postgre"
	routineSupabase "daily-task-manager/internal/routine/repository/supabase"
	routineUC "daily-task-manager/internal/routine/usecase"
	"daily-task-manager/internal/task"
	taskRepo "daily-task-manager/internal/task/repository"
	taskPostgre "daily-task-manager/internal/task/repository/postgre"
	taskSupabase "daily-task-manager/internal/task/repository/supabase"
	taskUC "daily-task-manager/internal/task/usecase"
	"daily-task-manager/pkg/datemath"
	"daily-task-manager/pkg/log"
	"daily-task-manager/pkg/openai"
	"daily-task-manager/pkg/postgrest"
)

// App holds the wired domain layer.
type App struct {
	Clock      *datemath.Clock
	CarryClock *datemath.Clock

	Tasks    task.UseCase
	Routines routine.UseCase
	Chat     chat.UseCase

	db   *sql.DB
	rest *postgrest.Client
}

// New connects to the configured datastore and builds every use case.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	clock, err := datemath.NewClock(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("app.timezone: %w", err)
	}
	carryClock, err := datemath.NewClock(cfg.CarryOver.Timezone)
	if err != nil {
		return nil, fmt.Errorf("carry_over.timezone: %w", err)
	}

	a := &App{Clock: clock, CarryClock: carryClock}

	tRepo, rRepo, err := a.newRepositories(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	a.Tasks = taskUC.New(l, tRepo, clock, carryClock)
	a.Routines = routineUC.New(l, rRepo, tRepo, clock)
	a.Chat = newChat(ctx, cfg, l)
	return a, nil
}

func (a *App) newRepositories(ctx context.Context, cfg *config.Config, l log.Logger) (taskRepo.Repository, routineRepo.Repository, error) {
	switch cfg.Datastore.Driver {
	case config.DriverPostgres:
		db, err := postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Postgres.AutoMigrate {
			if err := postgre.Migrate(ctx, db, l); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		a.db = db
		l.Info(ctx, "Datastore: postgres")
		return taskPostgre.New(db, l), routinePostgre.New(db, l), nil

	default:
		if cfg.Supabase.UsingFallback {
			l.Warnf(ctx, "Supabase credentials not configured, using embedded fallback %s", cfg.Supabase.URL)
		}
		client, err := postgrest.New(postgrest.Config{URL: cfg.Supabase.URL, APIKey: cfg.Supabase.AnonKey})
		if err != nil {
			return nil, nil, err
		}
		a.rest = client
		l.Infof(ctx, "Datastore: supabase at %s", cfg.Supabase.URL)
		if !cfg.Supabase.RoutineUniqueIndex {
			l.Info(ctx, "Supabase routine unique index not declared, routine inserts rely on the existence check")
		}
		tRepo := taskSupabase.New(client, l, taskSupabase.Config{RoutineUniqueIndex: cfg.Supabase.RoutineUniqueIndex})
		return tRepo, routineSupabase.New(client, l), nil
	}
}

// newChat leaves the client nil when no key is set, so the chat endpoint
// can report the missing credential per request.
func newChat(ctx context.Context, cfg *config.Config, l log.Logger) chat.UseCase {
	if cfg.OpenAI.APIKey == "" {
		l.Warn(ctx, "OPENAI_API_KEY is not set, chat requests will fail")
		return chatUC.New(l, nil, cfg.OpenAI.Model)
	}

	client, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})
	if err != nil {
		l.Warnf(ctx, "OpenAI client not available: %v", err)
		return chatUC.New(l, nil, cfg.OpenAI.Model)
	}
	return chatUC.New(l, client, cfg.OpenAI.Model)
}

// Ping checks that the datastore answers.
func (a *App) Ping(ctx context.Context) error {
	if a.db != nil {
		return a.db.PingContext(ctx)
	}
	if a.rest != nil {
		var rows []struct {
			ID string `json:"id"`
		}
		return a.rest.Select(ctx, "tasks", postgrest.NewQuery().Select("id").Limit(1), &rows)
	}
	return nil
}

// Close releases the database pool, if any.
func (a *App) Close(ctx context.Context) error {
	return postgre.Disconnect(ctx, a.db)
}
