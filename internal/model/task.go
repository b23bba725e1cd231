package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "todo"
	TaskStatusDone TaskStatus = "done"
)

// Toggled returns the status a toggle moves to: done → todo, anything else → done.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusDone {
		return TaskStatusTodo
	}
	return TaskStatusDone
}

// Priority levels, 1..4.
const (
	PriorityLow    = 1
	PriorityNormal = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
)

// ValidPriority reports whether p is one of the four priority levels.
func ValidPriority(p int) bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// PriorityLabel returns a display label for an optional priority.
func PriorityLabel(p *int) string {
	if p == nil {
		return "unset"
	}
	switch *p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unset"
	}
}

// Task is a single to-do item. DueDate is a plain YYYY-MM-DD calendar date
// and is compared as a string.
type Task struct {
	ID            string
	Title         string
	Description   *string
	Status        TaskStatus
	CreatedAt     time.Time
	DueDate       *string
	Priority      *int
	RoutineID     *string
	AutoCarryOver bool
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

// Due returns the due date or "" when the task has none.
func (t Task) Due() string {
	if t.DueDate == nil {
		return ""
	}
	return *t.DueDate
}
