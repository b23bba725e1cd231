package http

import (
	"errors"
	"net/http"

	"daily-task-manager/internal/task"
	pkgErrors "daily-task-manager/pkg/errors"
)

var (
	errNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	errInternal = pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errNotFound
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, errInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errInvalidBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errInvalidBody.Error())
	case errors.Is(err, errInvalidQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errInvalidQuery.Error())
	default:
		return errInternal
	}
}
