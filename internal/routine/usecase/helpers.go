package usecase

import (
	"daily-task-manager/internal/model"
	taskRepo "daily-task-manager/internal/task/repository"
)

func applicableRoutines(routines []model.Routine, weekday int) []model.Routine {
	var out []model.Routine
	for _, r := range routines {
		if r.AppliesOn(weekday) {
			out = append(out, r)
		}
	}
	return out
}

// missingRoutines drops routines already represented among existing tasks.
func missingRoutines(applicable []model.Routine, existing []model.Task) []model.Routine {
	seen := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		if t.RoutineID != nil {
			seen[*t.RoutineID] = struct{}{}
		}
	}

	var out []model.Routine
	for _, r := range applicable {
		if _, ok := seen[r.ID]; !ok {
			out = append(out, r)
		}
	}
	return out
}

func newTaskOptions(r model.Routine, today string) taskRepo.CreateTaskOptions {
	priority := model.PriorityNormal
	if r.DefaultPriority != nil {
		priority = *r.DefaultPriority
	}
	due := today
	id := r.ID
	return taskRepo.CreateTaskOptions{
		Title:     r.Title,
		Status:    model.TaskStatusTodo,
		DueDate:   &due,
		Priority:  &priority,
		RoutineID: &id,
	}
}
