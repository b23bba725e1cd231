package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine"
	"daily-task-manager/internal/routine/repository"
	"daily-task-manager/internal/routine/usecase"
	taskRepo "daily-task-manager/internal/task/repository"
	"daily-task-manager/pkg/datemath"
	"daily-task-manager/pkg/log"
)

type mockRoutineRepo struct {
	routines []model.Routine
	err      error
}

func (m *mockRoutineRepo) ListRoutines(ctx context.Context, opt repository.ListRoutinesOptions) ([]model.Routine, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Routine
	for _, r := range m.routines {
		if opt.IsActive == nil || r.IsActive == *opt.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

// mockTaskRepo skips rows that collide on (routine_id, due_date), like the
// unique index does.
type mockTaskRepo struct {
	taskRepo.Repository
	mu        sync.Mutex
	tasks     []model.Task
	listErr   error
	insertErr error
	inserts   int
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := map[string]bool{}
	for _, id := range opt.RoutineIDs {
		ids[id] = true
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.Due() == opt.DueDate && t.RoutineID != nil && ids[*t.RoutineID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) CreateTasks(ctx context.Context, opts []taskRepo.CreateTaskOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.inserts++
	var out []model.Task
	for _, o := range opts {
		dup := false
		for _, t := range m.tasks {
			if t.RoutineID != nil && *t.RoutineID == *o.RoutineID && t.Due() == *o.DueDate {
				dup = true
			}
		}
		if dup {
			continue
		}
		t := model.Task{
			ID:        fmt.Sprintf("t%d", len(m.tasks)+1),
			Title:     o.Title,
			Status:    o.Status,
			DueDate:   o.DueDate,
			Priority:  o.Priority,
			RoutineID: o.RoutineID,
		}
		m.tasks = append(m.tasks, t)
		out = append(out, t)
	}
	return out, nil
}

func intPtr(i int) *int { return &i }

// 2025-11-19 is a Wednesday.
const wednesday = "2025-11-19"

func fixtureRoutines() []model.Routine {
	return []model.Routine{
		{ID: "daily", Title: "Stretch", Frequency: model.FrequencyDaily, IsActive: true},
		{ID: "weekday", Title: "Inbox zero", Frequency: model.FrequencyWeekday, IsActive: true, DefaultPriority: intPtr(3)},
		{ID: "wed", Title: "Team sync", Frequency: model.FrequencyWeekly, DayOfWeek: intPtr(3), IsActive: true},
		{ID: "fri", Title: "Review", Frequency: model.FrequencyWeekly, DayOfWeek: intPtr(5), IsActive: true},
		{ID: "off", Title: "Paused", Frequency: model.FrequencyDaily, IsActive: false},
	}
}

func newUseCase(t *testing.T, rr *mockRoutineRepo, tr *mockTaskRepo) routine.UseCase {
	t.Helper()
	clock, err := datemath.NewClock("Asia/Tokyo")
	require.NoError(t, err)
	fixed := clock.Fixed(time.Date(2025, 11, 19, 3, 0, 0, 0, time.UTC))
	return usecase.New(log.NewNop(), rr, tr, fixed)
}

func TestGenerate_InsertsApplicableRoutines(t *testing.T) {
	tr := &mockTaskRepo{}
	uc := newUseCase(t, &mockRoutineRepo{routines: fixtureRoutines()}, tr)

	out, err := uc.Generate(context.Background(), routine.GenerateInput{})

	require.NoError(t, err)
	assert.Equal(t, wednesday, out.Date)
	require.Len(t, out.Tasks, 3)

	byRoutine := map[string]model.Task{}
	for _, task := range out.Tasks {
		byRoutine[*task.RoutineID] = task
		assert.Equal(t, model.TaskStatusTodo, task.Status)
		assert.Equal(t, wednesday, task.Due())
	}
	assert.Equal(t, model.PriorityNormal, *byRoutine["daily"].Priority)
	assert.Equal(t, 3, *byRoutine["weekday"].Priority)
	assert.Equal(t, "Team sync", byRoutine["wed"].Title)
	assert.NotContains(t, byRoutine, "fri")
	assert.NotContains(t, byRoutine, "off")
}

func TestGenerate_IsIdempotent(t *testing.T) {
	tr := &mockTaskRepo{}
	uc := newUseCase(t, &mockRoutineRepo{routines: fixtureRoutines()}, tr)
	ctx := context.Background()

	first, err := uc.Generate(ctx, routine.GenerateInput{Today: wednesday})
	require.NoError(t, err)
	second, err := uc.Generate(ctx, routine.GenerateInput{Today: wednesday})
	require.NoError(t, err)

	assert.Len(t, first.Tasks, 3)
	assert.Empty(t, second.Tasks)
	assert.Len(t, tr.tasks, 3)
	assert.Equal(t, 1, tr.inserts)
}

func TestGenerate_ConcurrentCallsInsertOnce(t *testing.T) {
	tr := &mockTaskRepo{}
	uc := newUseCase(t, &mockRoutineRepo{routines: fixtureRoutines()}, tr)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Generate(context.Background(), routine.GenerateInput{Today: wednesday})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, tr.tasks, 3)
}

func TestGenerate_NoOps(t *testing.T) {
	tests := []struct {
		name     string
		routines []model.Routine
		today    string
	}{
		{name: "no active routines", routines: []model.Routine{{ID: "off", Frequency: model.FrequencyDaily}}},
		{name: "weekday routine on sunday", routines: []model.Routine{{ID: "w", Frequency: model.FrequencyWeekday, IsActive: true}}, today: "2025-11-23"},
		{name: "unknown frequency", routines: []model.Routine{{ID: "x", Frequency: "monthly", IsActive: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &mockTaskRepo{}
			uc := newUseCase(t, &mockRoutineRepo{routines: tt.routines}, tr)

			out, err := uc.Generate(context.Background(), routine.GenerateInput{Today: tt.today})

			require.NoError(t, err)
			assert.Empty(t, out.Tasks)
			assert.Equal(t, 0, tr.inserts)
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("invalid date", func(t *testing.T) {
		uc := newUseCase(t, &mockRoutineRepo{}, &mockTaskRepo{})
		_, err := uc.Generate(context.Background(), routine.GenerateInput{Today: "yesterday"})
		assert.ErrorIs(t, err, routine.ErrInvalidDate)
	})

	t.Run("routine fetch fails", func(t *testing.T) {
		uc := newUseCase(t, &mockRoutineRepo{err: boom}, &mockTaskRepo{})
		_, err := uc.Generate(context.Background(), routine.GenerateInput{})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("existing lookup fails aborts before insert", func(t *testing.T) {
		tr := &mockTaskRepo{listErr: boom}
		uc := newUseCase(t, &mockRoutineRepo{routines: fixtureRoutines()}, tr)
		_, err := uc.Generate(context.Background(), routine.GenerateInput{})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, tr.inserts)
	})

	t.Run("insert fails", func(t *testing.T) {
		tr := &mockTaskRepo{insertErr: boom}
		uc := newUseCase(t, &mockRoutineRepo{routines: fixtureRoutines()}, tr)
		_, err := uc.Generate(context.Background(), routine.GenerateInput{})
		assert.ErrorIs(t, err, boom)
	})
}
