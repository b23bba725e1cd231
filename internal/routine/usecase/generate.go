package usecase

import (
	"context"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine"
	"daily-task-manager/internal/routine/repository"
	taskRepo "daily-task-manager/internal/task/repository"
	"daily-task-manager/pkg/datemath"
)

// Generate inserts one todo task per applicable routine that has no task for
// the day yet. Any failure aborts the run; nothing is rolled back.
func (uc *implUseCase) Generate(ctx context.Context, input routine.GenerateInput) (routine.GenerateOutput, error) {
	today := input.Today
	if today == "" {
		today = uc.clock.Today()
	}
	weekday, err := datemath.WeekdayOf(today)
	if err != nil {
		return routine.GenerateOutput{}, routine.ErrInvalidDate
	}

	v, err, shared := uc.group.Do(today, func() (any, error) {
		return uc.generate(ctx, today, weekday)
	})
	if err != nil {
		return routine.GenerateOutput{}, err
	}
	if shared {
		uc.l.Debugf(ctx, "routine.usecase.Generate: joined in-flight run for %s", today)
	}

	return routine.GenerateOutput{Date: today, Tasks: v.([]model.Task)}, nil
}

func (uc *implUseCase) generate(ctx context.Context, today string, weekday int) ([]model.Task, error) {
	active := true
	routines, err := uc.repo.ListRoutines(ctx, repository.ListRoutinesOptions{IsActive: &active})
	if err != nil {
		uc.l.Errorf(ctx, "routine.usecase.generate: list routines: %v", err)
		return nil, err
	}
	if len(routines) == 0 {
		return []model.Task{}, nil
	}

	applicable := applicableRoutines(routines, weekday)
	if len(applicable) == 0 {
		uc.l.Infof(ctx, "routine.usecase.generate: no routine applies on %s", today)
		return []model.Task{}, nil
	}

	ids := make([]string, 0, len(applicable))
	for _, r := range applicable {
		ids = append(ids, r.ID)
	}
	existing, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{DueDate: today, RoutineIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "routine.usecase.generate: list existing tasks: %v", err)
		return nil, err
	}

	missing := missingRoutines(applicable, existing)
	if len(missing) == 0 {
		return []model.Task{}, nil
	}

	opts := make([]taskRepo.CreateTaskOptions, 0, len(missing))
	for _, r := range missing {
		opts = append(opts, newTaskOptions(r, today))
	}

	inserted, err := uc.taskRepo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "routine.usecase.generate: insert tasks: %v", err)
		return nil, err
	}
	if inserted == nil {
		inserted = []model.Task{}
	}

	uc.l.Infof(ctx, "routine.usecase.generate: inserted %d tasks for %s", len(inserted), today)
	return inserted, nil
}
