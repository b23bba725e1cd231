package routine

import "daily-task-manager/internal/model"

// GenerateInput selects the day to generate for. An empty Today means the
// current date in the application timezone.
type GenerateInput struct {
	Today string
}

// GenerateOutput lists the tasks inserted by this call, in routine order.
type GenerateOutput struct {
	Date  string
	Tasks []model.Task
}
