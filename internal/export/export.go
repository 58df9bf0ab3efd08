// Package export writes snapshots of the filtered log view to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/kettle31/spyglass/internal/record"
)

// Snapshot writes records as zstd-compressed plain text to a timestamped
// file in dir and returns the path. One line per record:
// "<time> <LEVEL> <message>", with absent fields omitted.
func Snapshot(dir string, records []record.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("spyglass-%s.log.zst", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	defer func() { _ = file.Close() }()

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return "", fmt.Errorf("init zstd writer: %w", err)
	}

	for _, r := range records {
		if _, err := enc.Write([]byte(FormatLine(r) + "\n")); err != nil {
			_ = enc.Close()
			return "", fmt.Errorf("write snapshot: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("finish snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return path, nil
}

// FormatLine renders one record as a plain text export line.
func FormatLine(r record.Record) string {
	parts := make([]string, 0, 3)
	if r.Time != "" {
		parts = append(parts, r.Time)
	}
	if r.Level != "" {
		parts = append(parts, r.Level)
	}
	parts = append(parts, r.Message)
	return strings.Join(parts, " ")
}
