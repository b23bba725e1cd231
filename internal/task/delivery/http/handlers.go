package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a todo task. due_date accepts YYYY-MM-DD or a relative phrase such as "tomorrow". Priority defaults to 2.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} singleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, singleResp{Task: newTaskResp(output.Task)})
}

// List godoc
// @Summary     List tasks
// @Description Returns all tasks, newest first.
// @Tags        Tasks
// @Produce     json
// @Param       status query string false "Filter by status (todo/done)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Board godoc
// @Summary     Classified task board
// @Description Splits all tasks into carry-over, today, future, no-due and completed sections, plus completion metrics.
// @Tags        Tasks
// @Produce     json
// @Param       today query string false "Reference date YYYY-MM-DD (default: today in the app timezone)"
// @Success     200 {object} boardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	today, err := h.processBoardReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.List(ctx, task.ListInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBoardResp(today, output.Tasks))
}

// Detail godoc
// @Summary     Get a task
// @Description Returns one task. Missing tasks and lookup failures both answer 404.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, errNotFound, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, errNotFound, nil)
		return
	}

	response.OK(c, singleResp{Task: newTaskResp(output.Task)})
}

// Rename godoc
// @Summary     Rename a task
// @Description Replaces the title. Last write wins.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body renameReq true "New title"
// @Success     200 {object} singleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRenameReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Rename(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Rename: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, singleResp{Task: newTaskResp(output.Task)})
}

// ToggleStatus godoc
// @Summary     Toggle task status
// @Description Flips todo to done and done to todo.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.ToggleStatus(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, singleResp{Task: newTaskResp(output.Task)})
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// CarryOver godoc
// @Summary     Carry over yesterday's tasks
// @Description Moves unfinished carry-over tasks due yesterday (Asia/Tokyo) to today. Meant for a daily scheduler; never cached.
// @Tags        Cron
// @Produce     json
// @Param       Authorization header string false "Bearer <cron secret>, required when a secret is configured"
// @Success     200 {object} carryOverResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} carryOverErrResp
// @Router      /api/cron/carry-over [GET]
func (h *handler) CarryOver(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CarryOver(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CarryOver: %v", err)
		c.JSON(http.StatusInternalServerError, carryOverErrResp{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, carryOverResp{
		OK:         true,
		MovedCount: output.MovedCount,
		From:       output.From,
		To:         output.To,
	})
}
