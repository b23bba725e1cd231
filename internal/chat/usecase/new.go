package usecase

import (
	"daily-task-manager/pkg/log"
	"daily-task-manager/pkg/openai"
)

type implUseCase struct {
	l      log.Logger
	client openai.IOpenAI
	model  string
}

// New creates a chat UseCase. A nil client means no API key was configured;
// every Ask then fails with ErrMissingAPIKey.
func New(l log.Logger, client openai.IOpenAI, model string) *implUseCase {
	if model == "" {
		model = openai.DefaultModel
	}
	return &implUseCase{l: l, client: client, model: model}
}
