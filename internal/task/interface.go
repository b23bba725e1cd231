package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Rename(ctx context.Context, input RenameInput) (RenameOutput, error)
	ToggleStatus(ctx context.Context, id string) (ToggleStatusOutput, error)
	Delete(ctx context.Context, id string) error

	// CarryOver moves yesterday's unfinished, carry-over-eligible tasks to today.
	CarryOver(ctx context.Context) (CarryOverOutput, error)
}
