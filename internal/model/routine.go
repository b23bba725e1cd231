package model

// Frequency is how often a routine recurs.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekday Frequency = "weekday"
	FrequencyWeekly  Frequency = "weekly"
)

// Routine is a template for a recurring task. DayOfWeek (0=Sunday..6=Saturday)
// only matters for weekly routines.
type Routine struct {
	ID              string
	Title           string
	Description     *string
	Frequency       Frequency
	DayOfWeek       *int
	DefaultPriority *int
	IsActive        bool
}

// AppliesOn reports whether the routine produces a task on the given weekday.
func (r Routine) AppliesOn(weekday int) bool {
	if !r.IsActive {
		return false
	}
	switch r.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekday:
		return weekday >= 1 && weekday <= 5
	case FrequencyWeekly:
		return r.DayOfWeek != nil && *r.DayOfWeek == weekday
	default:
		return false
	}
}
