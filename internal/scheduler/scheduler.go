// Package scheduler runs the daily carry-over job in-process for
// deployments without an external cron caller.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/log"
)

const jobTimeout = 2 * time.Minute

// Config selects when the job fires. Schedule is a standard five-field cron
// expression evaluated in Timezone.
type Config struct {
	Timezone string
	Schedule string
}

type Scheduler struct {
	l     log.Logger
	tasks task.UseCase
	cron  *cron.Cron
	entry cron.EntryID
}

// New parses the schedule and registers the carry-over job. Nothing runs
// until Start.
func New(l log.Logger, tasks task.UseCase, cfg Config) (*Scheduler, error) {
	if tasks == nil {
		return nil, errors.New("task use case is required")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	s := &Scheduler{
		l:     l,
		tasks: tasks,
		cron:  cron.New(cron.WithLocation(loc)),
	}
	s.entry, err = s.cron.AddFunc(cfg.Schedule, func() { s.RunCarryOver(context.Background()) })
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

// RunCarryOver executes one carry-over pass and logs the outcome.
func (s *Scheduler) RunCarryOver(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	out, err := s.tasks.CarryOver(ctx)
	if err != nil {
		s.l.Errorf(ctx, "scheduler.RunCarryOver: %v", err)
		return
	}
	s.l.Infof(ctx, "scheduler.RunCarryOver: moved %d task(s) from %s to %s", out.MovedCount, out.From, out.To)
}

// Next reports when the job fires next, zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
