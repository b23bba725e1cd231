package supabase

import (
	"context"
	"fmt"
	"strconv"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine/repository"
	"daily-task-manager/pkg/log"
	"daily-task-manager/pkg/postgrest"
)

const tableRoutines = "routine_tasks"

type implRepository struct {
	client *postgrest.Client
	l      log.Logger
}

// New creates a routine Repository backed by the Supabase REST API.
func New(client *postgrest.Client, l log.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("routine/repository/supabase.%s", method)
}

type routineRow struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Frequency       string  `json:"frequency"`
	DayOfWeek       *int    `json:"day_of_week"`
	DefaultPriority *int    `json:"default_priority"`
	IsActive        bool    `json:"is_active"`
}

func (r *implRepository) ListRoutines(ctx context.Context, opt repository.ListRoutinesOptions) ([]model.Routine, error) {
	q := postgrest.NewQuery().Select("*")
	if opt.IsActive != nil {
		q.Eq("is_active", strconv.FormatBool(*opt.IsActive))
	}

	var rows []routineRow
	if err := r.client.Select(ctx, tableRoutines, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoutines"), err)
		return nil, repository.ErrFailedToList
	}

	routines := make([]model.Routine, 0, len(rows))
	for _, row := range rows {
		routines = append(routines, model.Routine{
			ID:              row.ID,
			Title:           row.Title,
			Description:     row.Description,
			Frequency:       model.Frequency(row.Frequency),
			DayOfWeek:       row.DayOfWeek,
			DefaultPriority: row.DefaultPriority,
			IsActive:        row.IsActive,
		})
	}
	return routines, nil
}
