package repository

import (
	"context"

	"daily-task-manager/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListRoutines(ctx context.Context, opt ListRoutinesOptions) ([]model.Routine, error)
}
