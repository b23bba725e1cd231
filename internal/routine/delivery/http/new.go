package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-manager/internal/routine"
	"daily-task-manager/pkg/log"
)

// Handler is the public interface for the routine HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc routine.UseCase
}

// New creates a new HTTP handler for the routine domain.
func New(l log.Logger, uc routine.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
