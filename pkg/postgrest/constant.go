package postgrest

import "time"

const (
	// RestPath is where a Supabase project serves its PostgREST API.
	RestPath = "/rest/v1"

	// DefaultTimeout bounds every request when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	headerAPIKey = "apikey"
	headerPrefer = "Prefer"

	preferRepresentation   = "return=representation"
	preferMinimal          = "return=minimal"
	preferIgnoreDuplicates = "resolution=ignore-duplicates"
)
