package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second

	RoleUser      = "user"
	RoleAssistant = "assistant"
)
