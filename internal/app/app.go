package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kettle31/spyglass/internal/config"
	"github.com/kettle31/spyglass/internal/diag"
	"github.com/kettle31/spyglass/internal/logview"
	"github.com/kettle31/spyglass/internal/prefs"
	"github.com/kettle31/spyglass/internal/settings"
	"github.com/kettle31/spyglass/internal/stream"
	"github.com/kettle31/spyglass/internal/ui"
)

// Options configure the spyglass application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/spyglass/prefs.toml
	ServerURL  string // overrides the configured server when set
}

// Run boots the spyglass TUI until the context is cancelled or the operator
// quits. The stream client shares the context, so teardown stops the
// reconnect cycle deterministically.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	logger, closeDiag, err := diag.Open(cfg.DiagFile)
	if err != nil {
		return fmt.Errorf("open diag sink: %w", err)
	}
	defer func() { _ = closeDiag() }()

	// Prefs override config for the limit; both fall back to the default.
	limit := cfg.LogLimit
	if userPrefs.LogLimit > 0 {
		limit = userPrefs.LogLimit
	}
	store := settings.NewStore(limit)

	buffer := &logview.Buffer{}

	client, err := stream.New(buffer, stream.Options{
		ServerURL: cfg.ServerURL,
		Password:  cfg.Password,
		Diag:      logger,
	})
	if err != nil {
		return fmt.Errorf("build stream client: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	client.Start(runCtx)

	logger.Info("spyglass starting", "server", cfg.ServerURL, "limit", store.LogLimit())

	err = ui.Run(ui.Options{
		Context:   runCtx,
		Buffer:    buffer,
		Stream:    client,
		Settings:  store,
		Diag:      logger,
		ExportDir: cfg.ExportDir,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		FlushTick: 100 * time.Millisecond,
	})
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
