package supabase

import (
	"context"

	"daily-task-manager/internal/model"
	repo "daily-task-manager/internal/task/repository"
	"daily-task-manager/pkg/postgrest"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	var rows []taskRow
	if err := r.client.Insert(ctx, tableTasks, newInsertRow(opt), postgrest.InsertOptions{}, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if len(rows) == 0 {
		r.l.Errorf(ctx, "%s: insert returned no row", r.dsn("CreateTask"))
		return model.Task{}, repo.ErrFailedToInsert
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	body := make([]bulkRow, 0, len(opts))
	for _, opt := range opts {
		body = append(body, newBulkRow(opt))
	}

	var rows []taskRow
	var insertOpt postgrest.InsertOptions
	if r.cfg.RoutineUniqueIndex {
		insertOpt = postgrest.InsertOptions{OnConflict: "routine_id,due_date", IgnoreDuplicates: true}
	}
	if err := r.client.Insert(ctx, tableTasks, body, insertOpt, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return toModels(rows), nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var rows []taskRow
	q := postgrest.NewQuery().Eq("id", opt.ID).Limit(1)
	if err := r.client.Select(ctx, tableTasks, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	if len(rows) == 0 {
		return model.Task{}, nil
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	q := postgrest.NewQuery().Select("*").Order("created_at", true)
	if opt.Status != "" {
		q.Eq("status", string(opt.Status))
	}
	if opt.DueDate != "" {
		q.Eq("due_date", opt.DueDate)
	}
	if len(opt.RoutineIDs) > 0 {
		q.In("routine_id", opt.RoutineIDs)
	}

	var rows []taskRow
	if err := r.client.Select(ctx, tableTasks, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return toModels(rows), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	body := updateBody{
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
	}

	var rows []taskRow
	if err := r.client.Update(ctx, tableTasks, postgrest.NewQuery().Eq("id", opt.ID), body, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if len(rows) == 0 {
		return model.Task{}, nil
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (model.Task, error) {
	var rows []taskRow
	body := map[string]string{"status": string(status)}
	if err := r.client.Update(ctx, tableTasks, postgrest.NewQuery().Eq("id", id), body, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if len(rows) == 0 {
		return model.Task{}, nil
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, tableTasks, postgrest.NewQuery().Eq("id", id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) CarryOver(ctx context.Context, opt repo.CarryOverOptions) ([]string, error) {
	q := postgrest.NewQuery().
		Select("id").
		Eq("due_date", opt.From).
		Eq("status", string(model.TaskStatusTodo)).
		Eq("auto_carry_over", "true")

	var rows []struct {
		ID string `json:"id"`
	}
	if err := r.client.Update(ctx, tableTasks, q, map[string]string{"due_date": opt.To}, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CarryOver"), err)
		return nil, repo.ErrFailedToUpdate
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
