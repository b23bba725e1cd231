package http

import (
	"errors"
	"net/http"

	"daily-task-manager/internal/chat"
)

const providerErrorMessage = "OpenAI API error"

// mapError picks the status and flat body for a chat failure.
func (h *handler) mapError(err error) (int, errorResp) {
	var pe *chat.ProviderError
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest, errorResp{Error: err.Error()}
	case errors.Is(err, chat.ErrMissingAPIKey):
		return http.StatusInternalServerError, errorResp{Error: err.Error()}
	case errors.As(err, &pe):
		return http.StatusInternalServerError, errorResp{Error: providerErrorMessage, Detail: pe.Detail}
	default:
		return http.StatusInternalServerError, errorResp{Error: providerErrorMessage, Detail: err.Error()}
	}
}
