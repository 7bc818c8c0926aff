package logger

import (
	"log/slog"
	"os"

	ports "pr-webhook-service/internal/domain/ports/output"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"
)

// Logger adapts slog to the domain Logger port.
type Logger struct {
	log *slog.Logger
}

// New builds a logger for the given environment: text at debug level
// for dev and test, JSON at info level otherwise.
func New(env string) *Logger {
	var handler slog.Handler
	switch env {
	case envDev, envTest:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{log: slog.New(handler)}
}

func (l *Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log.Error(msg, args...)
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{log: l.log.With(args...)}
}
