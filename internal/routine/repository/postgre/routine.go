package postgre

import (
	"context"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine/repository"
)

const routineColumns = `id, title, description, frequency, day_of_week, default_priority, is_active`

// ListRoutines returns routines in creation order.
func (r *implRepository) ListRoutines(ctx context.Context, opt repository.ListRoutinesOptions) ([]model.Routine, error) {
	query := `SELECT ` + routineColumns + ` FROM routine_tasks`
	var args []any
	if opt.IsActive != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *opt.IsActive)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoutines"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	routines := []model.Routine{}
	for rows.Next() {
		var (
			rt   model.Routine
			freq string
		)
		if err := rows.Scan(&rt.ID, &rt.Title, &rt.Description, &freq, &rt.DayOfWeek, &rt.DefaultPriority, &rt.IsActive); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRoutines"), err)
			return nil, repository.ErrFailedToList
		}
		rt.Frequency = model.Frequency(freq)
		routines = append(routines, rt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRoutines"), err)
		return nil, repository.ErrFailedToList
	}
	return routines, nil
}
