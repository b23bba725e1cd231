package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"daily-task-manager/internal/model"
)

const today = "2025-11-17"

func strPtr(s string) *string { return &s }

func mk(id string, status model.TaskStatus, due string) model.Task {
	t := model.Task{ID: id, Title: id, Status: status, AutoCarryOver: true}
	if due != "" {
		t.DueDate = strPtr(due)
	}
	return t
}

func ids(tasks []model.Task) []string {
	return taskIDs(tasks)
}

func TestClassify(t *testing.T) {
	tasks := []model.Task{
		mk("today", model.TaskStatusTodo, today),
		mk("yesterday", model.TaskStatusTodo, "2025-11-16"),
		mk("future", model.TaskStatusTodo, "2025-12-01"),
		mk("nodue", model.TaskStatusTodo, ""),
		mk("done-today", model.TaskStatusDone, today),
		mk("done-old", model.TaskStatusDone, "2025-01-01"),
	}

	s := Classify(tasks, today)

	assert.Equal(t, []string{"done-today", "done-old"}, ids(s.Completed))
	assert.Equal(t, []string{"today", "yesterday", "future", "nodue"}, ids(s.Active))
	assert.Equal(t, []string{"yesterday"}, ids(s.CarryOver))
	assert.Equal(t, []string{"today"}, ids(s.Today))
	assert.Equal(t, []string{"future"}, ids(s.Future))
	assert.Equal(t, []string{"nodue"}, ids(s.NoDue))
}

func TestClassify_ActiveTasksLandInExactlyOneBucket(t *testing.T) {
	dues := []string{"", "2024-02-29", "2025-11-16", today, "2025-11-18", "2030-01-01"}
	var tasks []model.Task
	for i, d := range dues {
		tasks = append(tasks, mk(string(rune('a'+i)), model.TaskStatusTodo, d))
		tasks = append(tasks, mk(string(rune('A'+i)), model.TaskStatusDone, d))
	}

	s := Classify(tasks, today)

	count := map[string]int{}
	for _, bucket := range [][]model.Task{s.Completed, s.CarryOver, s.Today, s.Future, s.NoDue} {
		for _, task := range bucket {
			count[task.ID]++
		}
	}
	for _, task := range tasks {
		assert.Equal(t, 1, count[task.ID], "task %s due %q", task.ID, task.Due())
	}
	assert.Len(t, s.Active, len(s.CarryOver)+len(s.Today)+len(s.Future)+len(s.NoDue))
}

func TestCarryOverExample(t *testing.T) {
	tk := mk("x", model.TaskStatusTodo, "2025-11-16")

	before := Classify([]model.Task{tk}, today)
	assert.Equal(t, []string{"x"}, ids(before.CarryOver))
	assert.Empty(t, before.Today)

	tk.DueDate = strPtr(today)
	after := Classify([]model.Task{tk}, today)
	assert.Empty(t, after.CarryOver)
	assert.Equal(t, []string{"x"}, ids(after.Today))
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompletionRate(tt.done, tt.total), "%d/%d", tt.done, tt.total)
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics([]model.Task{
		mk("a", model.TaskStatusDone, ""),
		mk("b", model.TaskStatusTodo, ""),
		mk("c", model.TaskStatusTodo, ""),
	})

	assert.Equal(t, Metrics{Total: 3, Done: 1, CompletionRate: 33}, m)
	assert.Equal(t, Metrics{}, ComputeMetrics(nil))
}
