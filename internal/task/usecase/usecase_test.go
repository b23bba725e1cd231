package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/task"
	"daily-task-manager/internal/task/repository"
	"daily-task-manager/internal/task/usecase"
	"daily-task-manager/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memRepo is an in-memory task store.
type memRepo struct {
	tasks   map[string]model.Task
	seq     int
	fail    error
	lastOpt repository.CreateTaskOptions
	carry   []repository.CarryOverOptions
}

func newMemRepo() *memRepo {
	return &memRepo{tasks: map[string]model.Task{}}
}

func (m *memRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.fail != nil {
		return model.Task{}, m.fail
	}
	m.lastOpt = opt
	m.seq++
	t := model.Task{
		ID:            fmt.Sprintf("t%d", m.seq),
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        opt.Status,
		DueDate:       opt.DueDate,
		Priority:      opt.Priority,
		AutoCarryOver: opt.AutoCarryOver == nil || *opt.AutoCarryOver,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memRepo) CreateTasks(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	var out []model.Task
	for _, o := range opts {
		t, err := m.CreateTask(ctx, o)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.fail != nil {
		return model.Task{}, m.fail
	}
	return m.tasks[opt.ID], nil
}

func (m *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Status == "" || t.Status == opt.Status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Title, t.Description, t.DueDate, t.Priority = opt.Title, opt.Description, opt.DueDate, opt.Priority
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *memRepo) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, nil
	}
	t.Status = status
	m.tasks[id] = t
	return t, nil
}

func (m *memRepo) DeleteTask(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *memRepo) CarryOver(ctx context.Context, opt repository.CarryOverOptions) ([]string, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.carry = append(m.carry, opt)
	var ids []string
	for id, t := range m.tasks {
		if t.Due() == opt.From && t.Status == model.TaskStatusTodo && t.AutoCarryOver {
			to := opt.To
			t.DueDate = &to
			m.tasks[id] = t
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func newUseCase(t *testing.T, repo *memRepo) task.UseCase {
	t.Helper()
	clock, err := datemath.NewClock("Asia/Tokyo")
	require.NoError(t, err)
	// 2025-11-16 16:30 UTC is 2025-11-17 01:30 in Tokyo.
	fixed := clock.Fixed(time.Date(2025, 11, 16, 16, 30, 0, 0, time.UTC))
	return usecase.New(&mockLogger{}, repo, fixed, fixed)
}

func intPtr(i int) *int { return &i }

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
		check   func(t *testing.T, got model.Task)
	}{
		{
			name:    "blank title",
			input:   task.CreateInput{Title: "   "},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "bad due date",
			input:   task.CreateInput{Title: "x", DueDate: "17/11/2025"},
			wantErr: task.ErrInvalidDueDate,
		},
		{
			name:    "priority out of range",
			input:   task.CreateInput{Title: "x", Priority: intPtr(5)},
			wantErr: task.ErrInvalidPriority,
		},
		{
			name:  "defaults",
			input: task.CreateInput{Title: "  Buy milk  "},
			check: func(t *testing.T, got model.Task) {
				assert.Equal(t, "Buy milk", got.Title)
				assert.Equal(t, model.TaskStatusTodo, got.Status)
				require.NotNil(t, got.Priority)
				assert.Equal(t, model.PriorityNormal, *got.Priority)
				assert.Nil(t, got.DueDate)
				assert.Nil(t, got.Description)
			},
		},
		{
			name:  "relative due date resolves in app timezone",
			input: task.CreateInput{Title: "Call", DueDate: "tomorrow", Priority: intPtr(4)},
			check: func(t *testing.T, got model.Task) {
				assert.Equal(t, "2025-11-18", got.Due())
				assert.Equal(t, 4, *got.Priority)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, newMemRepo())
			out, err := uc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, out.Task)
		})
	}
}

func TestCreate_RepositoryFailure(t *testing.T) {
	repo := newMemRepo()
	repo.fail = repository.ErrFailedToInsert
	uc := newUseCase(t, repo)

	_, err := uc.Create(context.Background(), task.CreateInput{Title: "x"})

	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
}

func TestDetail_NotFound(t *testing.T) {
	uc := newUseCase(t, newMemRepo())

	_, err := uc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = uc.Detail(context.Background(), "")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestRename(t *testing.T) {
	repo := newMemRepo()
	uc := newUseCase(t, repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Title: "Old", DueDate: "2025-11-20", Priority: intPtr(3)})
	require.NoError(t, err)

	out, err := uc.Rename(ctx, task.RenameInput{ID: created.Task.ID, Title: " New "})
	require.NoError(t, err)
	assert.Equal(t, "New", out.Task.Title)
	assert.Equal(t, "2025-11-20", out.Task.Due())
	assert.Equal(t, 3, *out.Task.Priority)

	_, err = uc.Rename(ctx, task.RenameInput{ID: created.Task.ID, Title: ""})
	assert.ErrorIs(t, err, task.ErrEmptyTitle)

	_, err = uc.Rename(ctx, task.RenameInput{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestToggleStatus(t *testing.T) {
	repo := newMemRepo()
	uc := newUseCase(t, repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Title: "x"})
	require.NoError(t, err)

	out, err := uc.ToggleStatus(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusDone, out.Task.Status)

	out, err = uc.ToggleStatus(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusTodo, out.Task.Status)
}

func TestDelete(t *testing.T) {
	repo := newMemRepo()
	uc := newUseCase(t, repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.Task.ID))
	assert.Empty(t, repo.tasks)
	assert.ErrorIs(t, uc.Delete(ctx, created.Task.ID), task.ErrTaskNotFound)
}

func TestCarryOver(t *testing.T) {
	repo := newMemRepo()
	uc := newUseCase(t, repo)
	ctx := context.Background()
	no := false

	_, _ = uc.Create(ctx, task.CreateInput{Title: "moves", DueDate: "2025-11-16"})
	_, _ = uc.Create(ctx, task.CreateInput{Title: "opted out", DueDate: "2025-11-16", AutoCarryOver: &no})
	done, _ := uc.Create(ctx, task.CreateInput{Title: "done", DueDate: "2025-11-16"})
	_, _ = uc.ToggleStatus(ctx, done.Task.ID)
	_, _ = uc.Create(ctx, task.CreateInput{Title: "older", DueDate: "2025-11-15"})

	out, err := uc.CarryOver(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.CarryOverOutput{MovedCount: 1, From: "2025-11-16", To: "2025-11-17"}, out)

	again, err := uc.CarryOver(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.MovedCount)
}

func TestCarryOver_Failure(t *testing.T) {
	repo := newMemRepo()
	repo.fail = errors.New("db down")
	uc := newUseCase(t, repo)

	_, err := uc.CarryOver(context.Background())

	assert.Error(t, err)
}
