package chat

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage  = errors.New("message is required")
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is missing")
)

// FallbackAnswer is returned when the provider replies without any text.
const FallbackAnswer = "No valid answer was returned from OpenAI."

// ProviderError carries the provider's own error body back to the caller.
type ProviderError struct {
	Detail string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("OpenAI API error: %s", e.Detail)
}
