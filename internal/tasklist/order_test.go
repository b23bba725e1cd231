package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/internal/model"
)

func TestApplyOrder(t *testing.T) {
	base := []model.Task{
		mk("a", model.TaskStatusTodo, ""),
		mk("b", model.TaskStatusTodo, ""),
		mk("c", model.TaskStatusTodo, ""),
		mk("new", model.TaskStatusTodo, ""),
	}

	t.Run("no override keeps natural order", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "new"}, ids(ApplyOrder(base, nil)))
	})

	t.Run("override first then new arrivals", func(t *testing.T) {
		got := ApplyOrder(base, []string{"c", "a", "b"})
		assert.Equal(t, []string{"c", "a", "b", "new"}, ids(got))
	})

	t.Run("stale ids skipped", func(t *testing.T) {
		got := ApplyOrder(base, []string{"gone", "b", "b"})
		assert.Equal(t, []string{"b", "a", "c", "new"}, ids(got))
	})
}

func TestReorder(t *testing.T) {
	in := []string{"a", "b", "c", "d"}

	tests := []struct {
		name         string
		active, over string
		want         []string
	}{
		{"down", "a", "c", []string{"b", "c", "a", "d"}},
		{"up", "d", "b", []string{"a", "d", "b", "c"}},
		{"same", "b", "b", []string{"a", "b", "c", "d"}},
		{"unknown", "z", "b", []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reorder(in, tt.active, tt.over)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, in, "input must not be modified")
}

func TestReorder_PreservesOtherRelativeOrder(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f"}
	for _, active := range in {
		for _, over := range in {
			got := Reorder(in, active, over)
			require.Len(t, got, len(in))
			assert.Equal(t, indexOf(in, over), indexOf(got, active), "%s over %s", active, over)

			var rest, restIn []string
			for _, id := range got {
				if id != active {
					rest = append(rest, id)
				}
			}
			for _, id := range in {
				if id != active {
					restIn = append(restIn, id)
				}
			}
			assert.Equal(t, restIn, rest)
		}
	}
}
