package postgre

import (
	"database/sql"
	"fmt"

	"daily-task-manager/internal/routine/repository"
	"daily-task-manager/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed routine Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("routine/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("routine/repository/postgre.%s", method)
}
