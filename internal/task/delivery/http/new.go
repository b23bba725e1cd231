package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/datemath"
	"daily-task-manager/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Board(c *gin.Context)
	Detail(c *gin.Context)
	Rename(c *gin.Context)
	ToggleStatus(c *gin.Context)
	Delete(c *gin.Context)
	CarryOver(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      task.UseCase
	clock   *datemath.Clock
	uuidIDs bool
}

// New creates a new HTTP handler for the task domain. clock supplies the
// default "today" for the board; with uuidIDs set, malformed IDs are
// rejected as not found before reaching the store.
func New(l log.Logger, uc task.UseCase, clock *datemath.Clock, uuidIDs bool) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		clock:   clock,
		uuidIDs: uuidIDs,
	}
}
