package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key under which the request ID middleware
// stores the current request ID.
type RequestIDKey struct{}
