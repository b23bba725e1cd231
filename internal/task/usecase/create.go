package usecase

import (
	"context"
	"strings"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/task"
	"daily-task-manager/internal/task/repository"
)

// Create validates the input and inserts a new todo task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	due, err := uc.clock.ParseDue(input.DueDate)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, task.ErrInvalidDueDate
	}

	priority := model.PriorityNormal
	if input.Priority != nil {
		if !model.ValidPriority(*input.Priority) {
			return task.CreateOutput{}, task.ErrInvalidPriority
		}
		priority = *input.Priority
	}

	opt := repository.CreateTaskOptions{
		Title:         title,
		Status:        model.TaskStatusTodo,
		Priority:      &priority,
		AutoCarryOver: input.AutoCarryOver,
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		opt.Description = &desc
	}
	if due != "" {
		opt.DueDate = &due
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task %s", t.ID)
	return task.CreateOutput{Task: t}, nil
}
