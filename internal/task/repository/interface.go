package repository

import (
	"context"

	"daily-task-manager/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// CreateTasks inserts many tasks at once. Rows that collide on
	// (routine_id, due_date) are skipped and absent from the result.
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	// CarryOver rewrites due_date from → to for every todo task opted into
	// carry-over, in one statement, and returns the IDs it touched.
	CarryOver(ctx context.Context, opt CarryOverOptions) ([]string, error)
}
