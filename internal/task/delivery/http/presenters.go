package http

import (
	"errors"
	"time"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/task"
	"daily-task-manager/internal/tasklist"
)

// --- Request DTOs ---

type createReq struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	DueDate       string `json:"due_date"`
	Priority      *int   `json:"priority"`
	AutoCarryOver *bool  `json:"auto_carry_over"`
}

func (r createReq) validate() error {
	if r.Title == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:         r.Title,
		Description:   r.Description,
		DueDate:       r.DueDate,
		Priority:      r.Priority,
		AutoCarryOver: r.AutoCarryOver,
	}
}

type listReq struct {
	Status string `form:"status"`
}

var (
	errInvalidStatus = errors.New("status must be todo or done")
	errInvalidBody   = errors.New("invalid request body")
	errInvalidQuery  = errors.New("invalid query parameters")
)

func (r listReq) validate() error {
	switch model.TaskStatus(r.Status) {
	case "", model.TaskStatusTodo, model.TaskStatusDone:
		return nil
	default:
		return errInvalidStatus
	}
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: model.TaskStatus(r.Status)}
}

type renameReq struct {
	ID    string `json:"-"`
	Title string `json:"title"`
}

func (r renameReq) toInput() task.RenameInput {
	return task.RenameInput{ID: r.ID, Title: r.Title}
}

type boardReq struct {
	Today string `form:"today"`
}

// --- Response DTOs ---

type taskResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	DueDate       *string   `json:"due_date"`
	Priority      *int      `json:"priority"`
	PriorityLabel string    `json:"priority_label"`
	RoutineID     *string   `json:"routine_id"`
	AutoCarryOver bool      `json:"auto_carry_over"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		DueDate:       t.DueDate,
		Priority:      t.Priority,
		PriorityLabel: model.PriorityLabel(t.Priority),
		RoutineID:     t.RoutineID,
		AutoCarryOver: t.AutoCarryOver,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type singleResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Total: len(out.Tasks)}
}

type metricsResp struct {
	Total          int `json:"total"`
	Done           int `json:"done"`
	CompletionRate int `json:"completion_rate"`
}

type boardResp struct {
	Today    string      `json:"today"`
	Sections sectionResp `json:"sections"`
	Metrics  metricsResp `json:"metrics"`
}

type sectionResp struct {
	CarryOver []taskResp `json:"carry_over"`
	Today     []taskResp `json:"today"`
	Future    []taskResp `json:"future"`
	NoDue     []taskResp `json:"no_due"`
	Completed []taskResp `json:"completed"`
}

func (h *handler) newBoardResp(today string, tasks []model.Task) boardResp {
	s := tasklist.Classify(tasks, today)
	m := tasklist.ComputeMetrics(tasks)
	return boardResp{
		Today: today,
		Sections: sectionResp{
			CarryOver: newTaskResps(s.CarryOver),
			Today:     newTaskResps(s.Today),
			Future:    newTaskResps(s.Future),
			NoDue:     newTaskResps(s.NoDue),
			Completed: newTaskResps(s.Completed),
		},
		Metrics: metricsResp{Total: m.Total, Done: m.Done, CompletionRate: m.CompletionRate},
	}
}

// carryOverResp is the flat shape external schedulers read.
type carryOverResp struct {
	OK         bool   `json:"ok"`
	MovedCount int    `json:"movedCount"`
	From       string `json:"from"`
	To         string `json:"to"`
}

type carryOverErrResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
