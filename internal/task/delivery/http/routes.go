package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-manager/internal/middleware"
)

// RegisterRoutes maps the task REST API onto rg (/api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/board", h.Board)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Rename)
		tasks.PATCH("/:id/status", h.ToggleStatus)
		tasks.DELETE("/:id", h.Delete)
	}
}

// RegisterCronRoutes mounts the carry-over trigger on rg (/api/cron).
func RegisterCronRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/carry-over", mw.NoStore(), mw.CronAuth(), h.CarryOver)
}
