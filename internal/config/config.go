package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields spyglass needs to reach the log server.
type Config struct {
	ServerURL string // base URL or host:port of the log stream server
	Password  string // optional stream credential, passed through opaquely
	LogLimit  int    // visible set cap; zero means unset
	DiagFile  string // diagnostic log file; empty disables diagnostics
	ExportDir string // where snapshot exports land
}

const (
	defaultConfigPath = "~/.config/spyglass/config.toml"
	defaultServerURL  = "127.0.0.1:7600"
	defaultExportDir  = "~/.local/share/spyglass/exports"
)

// Load locates and parses the spyglass config, falling back to defaults when
// the file is missing or fields are empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ServerURL: defaultServerURL,
		ExportDir: mustExpand(defaultExportDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL string `toml:"server_url"`
		Password  string `toml:"password"`
		LogLimit  int    `toml:"log_limit"`
		DiagFile  string `toml:"diag_file"`
		ExportDir string `toml:"export_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	cfg.Password = raw.Password
	if raw.LogLimit > 0 {
		cfg.LogLimit = raw.LogLimit
	}
	if v := strings.TrimSpace(raw.DiagFile); v != "" {
		cfg.DiagFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.ExportDir); v != "" {
		cfg.ExportDir = mustExpand(v)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
