package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// logFile is the file opened by the last successful Init
var logFile *os.File

// Init initializes the logging system, writing logs to <dataDir>/logs/todoey.log.
// Uses text format for human readability.
func Init(dataDir string, level slog.Level) error {
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "todoey.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	setOutput(file, level)
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	return nil
}

// Discard routes all logging nowhere; used for the memory backend and tests
func Discard() {
	setOutput(io.Discard, slog.LevelError)
}

// Close closes the log file opened by Init
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	Discard()
	return err
}

func setOutput(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same destination
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
