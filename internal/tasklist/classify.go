package tasklist

import (
	"math"

	"daily-task-manager/internal/model"
)

// Section is one of the three orderable buckets of active tasks.
type Section string

const (
	SectionToday  Section = "today"
	SectionFuture Section = "future"
	SectionNoDue  Section = "noDue"
)

// Sections is the classified view of a task set. CarryOver overlaps Active;
// Today, Future, NoDue and CarryOver partition Active.
type Sections struct {
	Completed []model.Task
	Active    []model.Task
	CarryOver []model.Task
	Today     []model.Task
	Future    []model.Task
	NoDue     []model.Task
}

// Get returns the tasks of an orderable section.
func (s Sections) Get(sec Section) []model.Task {
	switch sec {
	case SectionToday:
		return s.Today
	case SectionFuture:
		return s.Future
	case SectionNoDue:
		return s.NoDue
	default:
		return nil
	}
}

// Classify splits tasks by status and by due date against today (YYYY-MM-DD).
// Dates compare as strings. Input order is kept within every bucket.
func Classify(tasks []model.Task, today string) Sections {
	var s Sections
	for _, t := range tasks {
		if t.IsDone() {
			s.Completed = append(s.Completed, t)
			continue
		}
		s.Active = append(s.Active, t)

		due := t.Due()
		switch {
		case due == "":
			s.NoDue = append(s.NoDue, t)
		case due < today:
			s.CarryOver = append(s.CarryOver, t)
		case due == today:
			s.Today = append(s.Today, t)
		default:
			s.Future = append(s.Future, t)
		}
	}
	return s
}

// Metrics summarises a task set.
type Metrics struct {
	Total          int
	Done           int
	CompletionRate int
}

// ComputeMetrics returns counts and the rounded completion percentage,
// 0 for an empty set.
func ComputeMetrics(tasks []model.Task) Metrics {
	m := Metrics{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsDone() {
			m.Done++
		}
	}
	m.CompletionRate = CompletionRate(m.Done, m.Total)
	return m
}

// CompletionRate is round(done/total*100), or 0 when total is 0.
func CompletionRate(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
