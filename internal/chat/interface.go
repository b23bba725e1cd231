package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask relays one message to the completion provider. No history is kept.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
