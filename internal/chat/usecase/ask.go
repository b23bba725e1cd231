package usecase

import (
	"context"
	"errors"
	"strings"

	"daily-task-manager/internal/chat"
	"daily-task-manager/pkg/openai"
)

// Ask sends the message, unmodified, as a single user turn and returns the
// first choice's text. A missing key is reported before the message is
// looked at.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	if uc.client == nil {
		uc.l.Error(ctx, "chat.usecase.Ask: OpenAI API key is not configured")
		return chat.AskOutput{}, chat.ErrMissingAPIKey
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.AskOutput{}, chat.ErrEmptyMessage
	}

	resp, err := uc.client.CreateChatCompletion(ctx, &openai.Request{
		Model:    uc.model,
		Messages: []openai.Message{{Role: openai.RoleUser, Content: input.Message}},
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Ask: %v", err)
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return chat.AskOutput{}, &chat.ProviderError{Detail: apiErr.Body}
		}
		return chat.AskOutput{}, &chat.ProviderError{Detail: err.Error()}
	}

	answer := resp.FirstContent()
	if answer == "" {
		answer = chat.FallbackAnswer
	}
	return chat.AskOutput{Answer: answer}, nil
}
