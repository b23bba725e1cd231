package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/datemath"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidQuery, err)
	}
	return req, req.validate()
}

// processRenameReq binds the rename body and the :id path param.
func (h *handler) processRenameReq(c *gin.Context) (renameReq, error) {
	var req renameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processBoardReq resolves the board date, defaulting to today.
func (h *handler) processBoardReq(c *gin.Context) (string, error) {
	var req boardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidQuery, err)
	}
	if req.Today == "" {
		return h.clock.Today(), nil
	}
	if !datemath.IsDate(req.Today) {
		return "", task.ErrInvalidDueDate
	}
	return req.Today, nil
}

// processID reads :id. A malformed ID cannot exist, so it is reported as
// not found.
func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", task.ErrTaskNotFound
	}
	if h.uuidIDs {
		if _, err := uuid.Parse(id); err != nil {
			return "", task.ErrTaskNotFound
		}
	}
	return id, nil
}
