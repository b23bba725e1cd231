package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "daily-task-manager/internal/chat/delivery/http"
	"daily-task-manager/internal/middleware"
	routineHTTP "daily-task-manager/internal/routine/delivery/http"
	taskHTTP "daily-task-manager/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks and /api/cron/carry-over.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, v1, cron *gin.RouterGroup, mw middleware.Middleware) {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.clock, srv.uuidIDs)
	taskHTTP.RegisterRoutes(v1, h)
	taskHTTP.RegisterCronRoutes(cron, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
}

// setupRoutineDomain registers /api/v1/routines.
func (srv HTTPServer) setupRoutineDomain(ctx context.Context, v1 *gin.RouterGroup) {
	h := routineHTTP.New(srv.l, srv.routineUC)
	routineHTTP.RegisterRoutes(v1, h)

	srv.l.Infof(ctx, "Routine domain registered")
}

// setupChatDomain registers POST /api/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered (rate limit %d/min)", srv.rateLimitPerMin)
}
