package http

import (
	"time"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/routine"
)

type generateReq struct {
	Today string `form:"today"`
}

func (r generateReq) toInput() routine.GenerateInput {
	return routine.GenerateInput{Today: r.Today}
}

type generatedTaskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	DueDate   *string   `json:"due_date"`
	Priority  *int      `json:"priority"`
	RoutineID *string   `json:"routine_id"`
}

type generateResp struct {
	Date    string              `json:"date"`
	Created int                 `json:"created"`
	Tasks   []generatedTaskResp `json:"tasks"`
}

func (h *handler) newGenerateResp(out routine.GenerateOutput) generateResp {
	tasks := make([]generatedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newGeneratedTaskResp(t)
	}
	return generateResp{Date: out.Date, Created: len(tasks), Tasks: tasks}
}

func newGeneratedTaskResp(t model.Task) generatedTaskResp {
	return generatedTaskResp{
		ID:        t.ID,
		Title:     t.Title,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		DueDate:   t.DueDate,
		Priority:  t.Priority,
		RoutineID: t.RoutineID,
	}
}
