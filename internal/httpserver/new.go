package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-manager/internal/chat"
	"daily-task-manager/internal/routine"
	"daily-task-manager/internal/task"
	"daily-task-manager/pkg/datemath"
	"daily-task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	rateLimitPerMin int
	cronSecret      string

	// Domains
	taskUC    task.UseCase
	routineUC routine.UseCase
	chatUC    chat.UseCase
	clock     *datemath.Clock
	uuidIDs   bool

	readiness func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Middleware
	RateLimitPerMin int
	CronSecret      string

	// Domains
	TaskUseCase    task.UseCase
	RoutineUseCase routine.UseCase
	ChatUseCase    chat.UseCase
	Clock          *datemath.Clock
	UUIDIDs        bool

	// Readiness backs /ready; nil means always ready.
	Readiness func(ctx context.Context) error
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		cronSecret:      cfg.CronSecret,
		taskUC:          cfg.TaskUseCase,
		routineUC:       cfg.RoutineUseCase,
		chatUC:          cfg.ChatUseCase,
		clock:           cfg.Clock,
		uuidIDs:         cfg.UUIDIDs,
		readiness:       cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	if srv.routineUC == nil {
		return errors.New("routine use case is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.clock == nil {
		return errors.New("clock is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
