package tasklist

import (
	"context"
	"errors"
	"sync"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine"
	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/log"
)

// ErrBusy is returned when a mutation is requested while another is still
// in flight.
var ErrBusy = errors.New("another operation is in progress")

// Controller runs list operations against the use cases and patches its
// Board on success. A failed call leaves the Board untouched and returns the
// error.
type Controller struct {
	l        log.Logger
	board    *Board
	tasks    task.UseCase
	routines routine.UseCase

	mu   sync.Mutex
	busy bool
}

func NewController(l log.Logger, board *Board, tasks task.UseCase, routines routine.UseCase) *Controller {
	return &Controller{l: l, board: board, tasks: tasks, routines: routines}
}

func (c *Controller) Board() *Board {
	return c.board
}

// Busy reports whether an operation is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// Load fetches every task, newest first, and replaces the Board's set.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	out, err := c.tasks.List(ctx, task.ListInput{})
	if err != nil {
		c.l.Errorf(ctx, "tasklist.Controller.Load: %v", err)
		return err
	}
	c.board.SetTasks(out.Tasks)
	return nil
}

func (c *Controller) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	if err := c.begin(); err != nil {
		return model.Task{}, err
	}
	defer c.end()

	out, err := c.tasks.Create(ctx, input)
	if err != nil {
		c.l.Errorf(ctx, "tasklist.Controller.Create: %v", err)
		return model.Task{}, err
	}
	c.board.Prepend(out.Task)
	return out.Task, nil
}

func (c *Controller) Rename(ctx context.Context, id, title string) (model.Task, error) {
	if err := c.begin(); err != nil {
		return model.Task{}, err
	}
	defer c.end()

	out, err := c.tasks.Rename(ctx, task.RenameInput{ID: id, Title: title})
	if err != nil {
		c.l.Errorf(ctx, "tasklist.Controller.Rename: %v", err)
		return model.Task{}, err
	}
	c.board.Replace(out.Task)
	return out.Task, nil
}

func (c *Controller) Toggle(ctx context.Context, id string) (model.Task, error) {
	if err := c.begin(); err != nil {
		return model.Task{}, err
	}
	defer c.end()

	out, err := c.tasks.ToggleStatus(ctx, id)
	if err != nil {
		c.l.Errorf(ctx, "tasklist.Controller.Toggle: %v", err)
		return model.Task{}, err
	}
	c.board.Replace(out.Task)
	return out.Task, nil
}

func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.tasks.Delete(ctx, id); err != nil {
		c.l.Errorf(ctx, "tasklist.Controller.Delete: %v", err)
		return err
	}
	c.board.Remove(id)
	return nil
}

// GenerateRoutines creates today's routine tasks and prepends the new ones.
func (c *Controller) GenerateRoutines(ctx context.Context) ([]model.Task, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	out, err := c.routines.Generate(ctx, routine.GenerateInput{Today: c.board.Today()})
	if err != nil {
		c.l.Errorf(ctx, "tasklist.Controller.GenerateRoutines: %v", err)
		return nil, err
	}
	c.board.Prepend(out.Tasks...)
	return out.Tasks, nil
}
