package routine

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate inserts today's task for every applicable routine that does
	// not have one yet. Safe to call repeatedly.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
