package tasklist

import (
	"sync"

	"daily-task-manager/internal/model"
)

// Board owns the in-memory task set, the per-section manual order and the
// current drag. It is safe for concurrent use.
type Board struct {
	mu    sync.RWMutex
	today string
	tasks []model.Task
	order map[Section][]string
	drag  *dragState
}

type dragState struct {
	section Section
	id      string
}

// NewBoard creates an empty board for the given date (YYYY-MM-DD).
func NewBoard(today string) *Board {
	return &Board{today: today, order: map[Section][]string{}}
}

func (b *Board) Today() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.today
}

// SetToday changes the reference date. Manual orders are kept; tasks that
// change section simply fall out of the old override.
func (b *Board) SetToday(today string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.today = today
}

// Tasks returns a copy of the task set in natural order.
func (b *Board) Tasks() []model.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.Task(nil), b.tasks...)
}

// SetTasks replaces the whole set, e.g. after a load.
func (b *Board) SetTasks(tasks []model.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append([]model.Task(nil), tasks...)
}

// Prepend adds new tasks in front, newest first.
func (b *Board) Prepend(tasks ...model.Task) {
	if len(tasks) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(append([]model.Task(nil), tasks...), b.tasks...)
}

// Replace swaps in t for the task with the same ID.
func (b *Board) Replace(t model.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tasks {
		if b.tasks[i].ID == t.ID {
			b.tasks[i] = t
			return
		}
	}
}

// Remove drops the task with the given ID.
func (b *Board) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.tasks[:0]
	for _, t := range b.tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	b.tasks = out
}

// Find returns the task with the given ID.
func (b *Board) Find(id string) (model.Task, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Sections classifies the set and applies each section's manual order.
func (b *Board) Sections() Sections {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Classify(b.tasks, b.today)
	s.Today = ApplyOrder(s.Today, b.order[SectionToday])
	s.Future = ApplyOrder(s.Future, b.order[SectionFuture])
	s.NoDue = ApplyOrder(s.NoDue, b.order[SectionNoDue])
	return s
}

func (b *Board) Metrics() Metrics {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ComputeMetrics(b.tasks)
}

// Move places activeID at overID's position within section. It reports
// false when either task is not currently displayed in that section.
func (b *Board) Move(section Section, activeID, overID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(section, activeID, overID)
}

func (b *Board) move(section Section, activeID, overID string) bool {
	s := Classify(b.tasks, b.today)
	displayed := taskIDs(ApplyOrder(s.Get(section), b.order[section]))
	if indexOf(displayed, activeID) < 0 || indexOf(displayed, overID) < 0 {
		return false
	}
	b.order[section] = Reorder(displayed, activeID, overID)
	return true
}

// DragStart picks up a task from a section.
func (b *Board) DragStart(section Section, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag = &dragState{section: section, id: id}
}

// Dragging reports the picked-up task, if any.
func (b *Board) Dragging() (Section, string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.drag == nil {
		return "", "", false
	}
	return b.drag.section, b.drag.id, true
}

// DragOver previews the dragged task at overID's position. Hovering over
// another section does nothing.
func (b *Board) DragOver(section Section, overID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.drag == nil || b.drag.section != section || b.drag.id == overID {
		return false
	}
	return b.move(section, b.drag.id, overID)
}

// Drop releases the dragged task over overID in section. Drops onto a
// different section are ignored. The drag ends either way.
func (b *Board) Drop(section Section, overID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	drag := b.drag
	b.drag = nil
	if drag == nil || drag.section != section || drag.id == overID {
		return false
	}
	return b.move(section, drag.id, overID)
}

// CancelDrag ends a drag without moving anything.
func (b *Board) CancelDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drag = nil
}

// Order returns a section's manual override, nil when none was set.
func (b *Board) Order(section Section) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.order[section]...)
}
