package repository

import "daily-task-manager/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
// Nil pointers are left to the column defaults.
type CreateTaskOptions struct {
	Title         string
	Description   *string
	Status        model.TaskStatus
	DueDate       *string
	Priority      *int
	RoutineID     *string
	AutoCarryOver *bool
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-empty fields are applied as AND conditions; results are ordered
// by created_at descending.
type ListTasksOptions struct {
	Status     model.TaskStatus
	DueDate    string
	RoutineIDs []string
}

// UpdateTaskOptions is a full-record update of the editable fields.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description *string
	DueDate     *string
	Priority    *int
}

// CarryOverOptions selects tasks due on From and moves them to To.
type CarryOverOptions struct {
	From string
	To   string
}
