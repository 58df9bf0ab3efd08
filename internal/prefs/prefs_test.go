package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.LogLimit != 0 {
		t.Fatalf("LogLimit = %d, want 0", p.LogLimit)
	}
}

func TestLoad_BrokenFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [nope"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q after parse failure", p.Theme, defaultTheme)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	saved := Prefs{Theme: "Kanagawa", LogLimit: 2500}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(path)
	if got.Theme != saved.Theme {
		t.Fatalf("Theme = %q, want %q", got.Theme, saved.Theme)
	}
	if got.LogLimit != saved.LogLimit {
		t.Fatalf("LogLimit = %d, want %d", got.LogLimit, saved.LogLimit)
	}
}

func TestLoad_NegativeLimitCleared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("log_limit = -5\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	if got := Load(path).LogLimit; got != 0 {
		t.Fatalf("LogLimit = %d, want 0", got)
	}
}
