package http

import (
	"errors"
	"net/http"

	"daily-task-manager/internal/routine"
	pkgErrors "daily-task-manager/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, routine.ErrInvalidDate) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
