package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"daily-task-manager/internal/model"
	repo "daily-task-manager/internal/task/repository"
)

// taskColumns is the projection shared by every query; due_date is read as
// text so it stays a plain YYYY-MM-DD string.
const taskColumns = `id, title, description, status, created_at, due_date::text, priority, routine_id, auto_carry_over`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t      model.Task
		status string
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &t.CreatedAt, &t.DueDate, &t.Priority, &t.RoutineID, &t.AutoCarryOver)
	if err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	cols, placeholders, args := r.buildInsert(opt, 1)
	query := fmt.Sprintf(
		`INSERT INTO tasks (%s) VALUES (%s) RETURNING %s`,
		strings.Join(cols, ", "), strings.Join(placeholders, ", "), taskColumns,
	)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// CreateTasks bulk-inserts tasks in one statement. Collisions on the
// (routine_id, due_date) unique index are silently skipped.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	query, args := r.buildBulkInsert(opts)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CreateTasks"), err)
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every Task matching the filters, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the editable fields of a Task and returns the result.
// Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3::date, priority = $4
		WHERE id = $5
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.Title, opt.Description, opt.DueDate, opt.Priority, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// UpdateStatus sets the status of a Task. Returns zero-value Task when not found.
func (r *implRepository) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (model.Task, error) {
	query := fmt.Sprintf(`UPDATE tasks SET status = $1 WHERE id = $2 RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CarryOver moves eligible tasks in a single UPDATE and returns their IDs.
func (r *implRepository) CarryOver(ctx context.Context, opt repo.CarryOverOptions) ([]string, error) {
	const query = `
		UPDATE tasks
		SET due_date = $1::date
		WHERE due_date = $2::date AND status = $3 AND auto_carry_over = true
		RETURNING id`

	rows, err := r.db.QueryContext(ctx, query, opt.To, opt.From, string(model.TaskStatusTodo))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CarryOver"), err)
		return nil, repo.ErrFailedToUpdate
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CarryOver"), err)
			return nil, repo.ErrFailedToUpdate
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CarryOver"), err)
		return nil, repo.ErrFailedToUpdate
	}
	return ids, nil
}
