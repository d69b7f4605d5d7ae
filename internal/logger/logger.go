package logger

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	// stderr only: the working directory must hold nothing but the generated fixture
	Logger = New(os.Stderr, slog.LevelInfo)
}

// New builds a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetOutput replaces the package logger, returning the previous one
func SetOutput(w io.Writer, level slog.Level) *slog.Logger {
	prev := Logger
	Logger = New(w, level)
	return prev
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
