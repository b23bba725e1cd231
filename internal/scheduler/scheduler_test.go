package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/log"
)

type stubTasks struct {
	task.UseCase
	calls int
	out   task.CarryOverOutput
	err   error
}

func (s *stubTasks) CarryOver(ctx context.Context) (task.CarryOverOutput, error) {
	s.calls++
	return s.out, s.err
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		tasks task.UseCase
		cfg   Config
	}{
		{"nil use case", nil, Config{Timezone: "Asia/Tokyo", Schedule: "5 0 * * *"}},
		{"bad timezone", &stubTasks{}, Config{Timezone: "Mars/Olympus", Schedule: "5 0 * * *"}},
		{"bad schedule", &stubTasks{}, Config{Timezone: "Asia/Tokyo", Schedule: "every day"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.tasks, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNext_UsesConfiguredTimezone(t *testing.T) {
	s, err := New(log.NewNop(), &stubTasks{}, Config{Timezone: "Asia/Tokyo", Schedule: "5 0 * * *"})
	require.NoError(t, err)

	s.Start()
	defer s.Stop(context.Background())

	next := s.Next()
	require.False(t, next.IsZero())

	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	local := next.In(tokyo)
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, 5, local.Minute())
}

func TestRunCarryOver(t *testing.T) {
	ok := &stubTasks{out: task.CarryOverOutput{MovedCount: 2, From: "2025-11-16", To: "2025-11-17"}}
	s, err := New(log.NewNop(), ok, Config{Timezone: "UTC", Schedule: "5 0 * * *"})
	require.NoError(t, err)
	s.RunCarryOver(context.Background())
	assert.Equal(t, 1, ok.calls)

	failing := &stubTasks{err: errors.New("db down")}
	s, err = New(log.NewNop(), failing, Config{Timezone: "UTC", Schedule: "5 0 * * *"})
	require.NoError(t, err)
	s.RunCarryOver(context.Background())
	assert.Equal(t, 1, failing.calls)
}
