package repository

// ListRoutinesOptions filters routines. A nil IsActive returns all of them.
type ListRoutinesOptions struct {
	IsActive *bool
}
