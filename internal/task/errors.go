package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidDueDate  = errors.New("due date must be YYYY-MM-DD")
	ErrInvalidPriority = errors.New("priority must be between 1 and 4")
)
