// Package zap adapts a zap.SugaredLogger to the Logger interface.
//
// The Logger interface uses key/value variadic arguments, which maps
// directly onto zap's sugared "w" methods:
//
//	zl, _ := zap.NewProduction()
//	defer zl.Sync()
//
//	factory, _ := casref.NewFactory(registry,
//	    casref.WithLogger(zaplog.New(zl.Sugar())),
//	)
package zap

import (
	"go.uber.org/zap"

	"github.com/arloliu/casref/types"
)

// Logger wraps a *zap.SugaredLogger to satisfy types.Logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that Logger implements types.Logger.
var _ types.Logger = (*Logger)(nil)

// New creates a Logger backed by the given sugared logger.
//
// Parameters:
//   - sugar: The zap sugared logger to delegate to. Must not be nil.
//
// Returns:
//   - *Logger: An adapter suitable for WithLogger and WithRegistryLogger
func New(sugar *zap.SugaredLogger) *Logger {
	return &Logger{sugar: sugar}
}

// Debug logs a message at debug level with key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs a message at info level with key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs a message at warn level with key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs a message at error level with key/value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Fatal logs a message at fatal level with key/value pairs, then exits.
func (l *Logger) Fatal(msg string, args ...any) {
	l.sugar.Fatalw(msg, args...)
}
