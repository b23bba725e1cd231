package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/internal/chat"
	"daily-task-manager/internal/chat/usecase"
	"daily-task-manager/pkg/log"
	"daily-task-manager/pkg/openai"
)

type mockClient struct {
	resp *openai.Response
	err  error
	got  *openai.Request
}

func (m *mockClient) CreateChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	m.got = req
	return m.resp, m.err
}

func TestAsk(t *testing.T) {
	client := &mockClient{resp: &openai.Response{Choices: []openai.Choice{
		{Message: &openai.Message{Role: openai.RoleAssistant, Content: "Drink water."}},
	}}}
	uc := usecase.New(log.NewNop(), client, "")

	out, err := uc.Ask(context.Background(), chat.AskInput{Message: "  any tips?  "})

	require.NoError(t, err)
	assert.Equal(t, "Drink water.", out.Answer)
	assert.Equal(t, openai.DefaultModel, client.got.Model)
	require.Len(t, client.got.Messages, 1)
	assert.Equal(t, "  any tips?  ", client.got.Messages[0].Content)
}

func TestAsk_Fallback(t *testing.T) {
	uc := usecase.New(log.NewNop(), &mockClient{resp: &openai.Response{}}, "")

	out, err := uc.Ask(context.Background(), chat.AskInput{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, chat.FallbackAnswer, out.Answer)
}

func TestAsk_Errors(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockClient{}, "")
		_, err := uc.Ask(context.Background(), chat.AskInput{Message: " "})
		assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	})

	t.Run("missing key", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), nil, "")
		_, err := uc.Ask(context.Background(), chat.AskInput{Message: "hi"})
		assert.ErrorIs(t, err, chat.ErrMissingAPIKey)
	})

	t.Run("missing key wins over empty message", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), nil, "")
		_, err := uc.Ask(context.Background(), chat.AskInput{Message: ""})
		assert.ErrorIs(t, err, chat.ErrMissingAPIKey)
	})

	t.Run("provider error relays body", func(t *testing.T) {
		client := &mockClient{err: &openai.APIError{StatusCode: 429, Body: "quota exceeded"}}
		uc := usecase.New(log.NewNop(), client, "")

		_, err := uc.Ask(context.Background(), chat.AskInput{Message: "hi"})

		var pe *chat.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "quota exceeded", pe.Detail)
	})
}
