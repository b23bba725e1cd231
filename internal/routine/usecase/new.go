package usecase

import (
	"golang.org/x/sync/singleflight"

	"daily-task-manager/internal/routine/repository"
	taskRepo "daily-task-manager/internal/task/repository"
	"daily-task-manager/pkg/datemath"
	pkgLog "daily-task-manager/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	taskRepo taskRepo.Repository
	clock    *datemath.Clock
	group    singleflight.Group
}

// New creates a routine UseCase. Generation for the same date is collapsed
// into one in-flight call per process.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	taskRepo taskRepo.Repository,
	clock *datemath.Clock,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		taskRepo: taskRepo,
		clock:    clock,
	}
}
