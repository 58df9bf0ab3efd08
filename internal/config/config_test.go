package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Fatalf("ServerURL = %q, want %q", cfg.ServerURL, defaultServerURL)
	}
	if cfg.Password != "" || cfg.LogLimit != 0 || cfg.DiagFile != "" {
		t.Fatalf("unexpected non-defaults: %+v", cfg)
	}
	if cfg.ExportDir == "" {
		t.Fatalf("ExportDir empty, want default")
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
server_url = "logs.example.com:9000"
password = " s3cret! "
log_limit = 500
diag_file = "/tmp/spyglass-diag.log"
export_dir = "/tmp/exports"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != "logs.example.com:9000" {
		t.Fatalf("ServerURL = %q", cfg.ServerURL)
	}
	// The password is an opaque credential: whitespace is preserved.
	if cfg.Password != " s3cret! " {
		t.Fatalf("Password = %q, want verbatim value", cfg.Password)
	}
	if cfg.LogLimit != 500 {
		t.Fatalf("LogLimit = %d, want 500", cfg.LogLimit)
	}
	if cfg.DiagFile != "/tmp/spyglass-diag.log" {
		t.Fatalf("DiagFile = %q", cfg.DiagFile)
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Fatalf("ExportDir = %q", cfg.ExportDir)
	}
}

func TestLoad_EmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server_url = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Fatalf("ServerURL = %q, want default %q", cfg.ServerURL, defaultServerURL)
	}
}

func TestLoad_BadTOMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server_url = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load with invalid TOML succeeded, want error")
	}
}

func TestLoad_TildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("diag_file = \"~/diag.log\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "diag.log"); cfg.DiagFile != want {
		t.Fatalf("DiagFile = %q, want %q", cfg.DiagFile, want)
	}
}
