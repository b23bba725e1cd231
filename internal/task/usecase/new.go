package usecase

import (
	"daily-task-manager/internal/task/repository"
	"daily-task-manager/pkg/datemath"
	pkgLog "daily-task-manager/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	clock      *datemath.Clock
	carryClock *datemath.Clock
}

// New creates a new task UseCase instance. clock resolves relative due
// dates; carryClock decides which calendar day carry-over runs for.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	clock *datemath.Clock,
	carryClock *datemath.Clock,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		clock:      clock,
		carryClock: carryClock,
	}
}
