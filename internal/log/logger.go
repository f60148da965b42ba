// Package log wraps log/slog with component-scoped loggers and the
// field name constants shared across the application.
package log

import (
	"log/slog"
	"os"
)

// Logger is a slog.Logger bound to a named component.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a component logger writing text to stdout at the given
// level.
func New(component string, level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		component: component,
	}
}

// WithComponent derives a logger for a sub-component, keeping the
// parent's handler.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs the logger as the process default.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
