package supabase

import (
	"fmt"

	"daily-task-manager/internal/task/repository"
	"daily-task-manager/pkg/log"
	"daily-task-manager/pkg/postgrest"
)

const tableTasks = "tasks"

// Config describes the hosted schema.
type Config struct {
	// RoutineUniqueIndex is true when tasks has a unique index on
	// (routine_id, due_date), letting bulk inserts skip duplicates
	// server-side. Without it the insert is plain and callers rely on
	// their own existence check.
	RoutineUniqueIndex bool
}

type implRepository struct {
	client *postgrest.Client
	l      log.Logger
	cfg    Config
}

// New creates a Repository backed by the Supabase REST API.
func New(client *postgrest.Client, l log.Logger, cfg Config) repository.Repository {
	return &implRepository{client: client, l: l, cfg: cfg}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/supabase.%s", method)
}
