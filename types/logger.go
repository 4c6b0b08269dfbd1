package types

// Logger is the structured logging interface used throughout casref.
//
// Each method takes a message and alternating key/value pairs. The
// interface is shaped after zap.SugaredLogger's *w methods; see
// contrib/logging/zap for a ready-made adapter.
type Logger interface {
	// Debug logs a message at debug level with key/value pairs.
	Debug(msg string, args ...any)

	// Info logs a message at info level with key/value pairs.
	Info(msg string, args ...any)

	// Warn logs a message at warn level with key/value pairs.
	Warn(msg string, args ...any)

	// Error logs a message at error level with key/value pairs.
	Error(msg string, args ...any)

	// Fatal logs a message at fatal level with key/value pairs.
	Fatal(msg string, args ...any)
}
