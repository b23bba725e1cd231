package usecase

import (
	"context"
	"strings"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/task"
	"daily-task-manager/internal/task/repository"
)

// List returns tasks newest first, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Rename replaces the title. The whole editable record is written back, so
// the last writer wins.
func (uc *implUseCase) Rename(ctx context.Context, input task.RenameInput) (task.RenameOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.RenameOutput{}, task.ErrEmptyTitle
	}

	current, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.RenameOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          current.ID,
		Title:       title,
		Description: current.Description,
		DueDate:     current.DueDate,
		Priority:    current.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Rename: %v", err)
		return task.RenameOutput{}, err
	}
	if updated.ID == "" {
		return task.RenameOutput{}, task.ErrTaskNotFound
	}
	return task.RenameOutput{Task: updated}, nil
}

// ToggleStatus flips done → todo and anything else → done.
func (uc *implUseCase) ToggleStatus(ctx context.Context, id string) (task.ToggleStatusOutput, error) {
	current, err := uc.getTask(ctx, id)
	if err != nil {
		return task.ToggleStatusOutput{}, err
	}

	updated, err := uc.repo.UpdateStatus(ctx, current.ID, current.Status.Toggled())
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ToggleStatus: %v", err)
		return task.ToggleStatusOutput{}, err
	}
	if updated.ID == "" {
		return task.ToggleStatusOutput{}, task.ErrTaskNotFound
	}
	return task.ToggleStatusOutput{Task: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getTask(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "task.usecase.Delete: deleted task %s", id)
	return nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.getTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
