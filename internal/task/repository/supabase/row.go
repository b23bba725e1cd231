package supabase

import (
	"time"

	"daily-task-manager/internal/model"
	repo "daily-task-manager/internal/task/repository"
)

type taskRow struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	DueDate       *string   `json:"due_date"`
	Priority      *int      `json:"priority"`
	RoutineID     *string   `json:"routine_id"`
	AutoCarryOver *bool     `json:"auto_carry_over"`
}

func (row taskRow) toModel() model.Task {
	return model.Task{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Status:        model.TaskStatus(row.Status),
		CreatedAt:     row.CreatedAt,
		DueDate:       row.DueDate,
		Priority:      row.Priority,
		RoutineID:     row.RoutineID,
		AutoCarryOver: row.AutoCarryOver != nil && *row.AutoCarryOver,
	}
}

func toModels(rows []taskRow) []model.Task {
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	return tasks
}

// insertRow leaves unset columns out of the payload so the table defaults apply.
type insertRow struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Status        string  `json:"status,omitempty"`
	DueDate       *string `json:"due_date,omitempty"`
	Priority      *int    `json:"priority,omitempty"`
	RoutineID     *string `json:"routine_id,omitempty"`
	AutoCarryOver *bool   `json:"auto_carry_over,omitempty"`
}

// bulkRow always carries every column: a bulk insert requires identical keys
// on each object.
type bulkRow struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	Status        string  `json:"status"`
	DueDate       *string `json:"due_date"`
	Priority      *int    `json:"priority"`
	RoutineID     *string `json:"routine_id"`
	AutoCarryOver bool    `json:"auto_carry_over"`
}

func newInsertRow(opt repo.CreateTaskOptions) insertRow {
	return insertRow{
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        string(opt.Status),
		DueDate:       opt.DueDate,
		Priority:      opt.Priority,
		RoutineID:     opt.RoutineID,
		AutoCarryOver: opt.AutoCarryOver,
	}
}

func newBulkRow(opt repo.CreateTaskOptions) bulkRow {
	status := opt.Status
	if status == "" {
		status = model.TaskStatusTodo
	}
	carry := true
	if opt.AutoCarryOver != nil {
		carry = *opt.AutoCarryOver
	}
	return bulkRow{
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        string(status),
		DueDate:       opt.DueDate,
		Priority:      opt.Priority,
		RoutineID:     opt.RoutineID,
		AutoCarryOver: carry,
	}
}

type updateBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *int    `json:"priority"`
}
