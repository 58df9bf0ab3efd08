// Package diag provides the diagnostic sink for pipeline noise that must not
// reach the terminal: decode failures, reconnect notices, export errors. The
// terminal belongs to the TUI, so diagnostics go to a file or nowhere.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Discard returns a logger that drops everything. Used when no diag file is
// configured; callers never need to nil-check.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns a logger appending to the file at path, creating parent
// directories as needed. An empty path yields the discard logger. The
// returned close func is a no-op for the discard case.
func Open(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create diag dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open diag file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, file.Close, nil
}
