package usecase

import (
	"context"

	"daily-task-manager/internal/task"
	"daily-task-manager/internal/task/repository"
)

// CarryOver moves every unfinished, opted-in task due yesterday to today in
// a single update. Running it twice on the same day moves nothing the
// second time.
func (uc *implUseCase) CarryOver(ctx context.Context) (task.CarryOverOutput, error) {
	from := uc.carryClock.Yesterday()
	to := uc.carryClock.Today()

	ids, err := uc.repo.CarryOver(ctx, repository.CarryOverOptions{From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.CarryOver: %v", err)
		return task.CarryOverOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.CarryOver: moved %d tasks from %s to %s", len(ids), from, to)
	return task.CarryOverOutput{MovedCount: len(ids), From: from, To: to}, nil
}
