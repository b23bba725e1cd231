package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-manager/internal/middleware"
)

// RegisterRoutes mounts POST /chat on rg behind the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Ask)
}
