package task

import "daily-task-manager/internal/model"

// --- UseCase Inputs ---

// CreateInput describes a new task. DueDate is YYYY-MM-DD or empty;
// a nil Priority means normal.
type CreateInput struct {
	Title         string
	Description   string
	DueDate       string
	Priority      *int
	AutoCarryOver *bool
}

type ListInput struct {
	Status model.TaskStatus
}

type RenameInput struct {
	ID    string
	Title string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}

type DetailOutput struct {
	Task model.Task
}

type RenameOutput struct {
	Task model.Task
}

type ToggleStatusOutput struct {
	Task model.Task
}

// CarryOverOutput reports how many tasks moved from From to To.
type CarryOverOutput struct {
	MovedCount int
	From       string
	To         string
}
