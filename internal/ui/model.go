package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kettle31/spyglass/internal/diag"
	"github.com/kettle31/spyglass/internal/export"
	"github.com/kettle31/spyglass/internal/logview"
	"github.com/kettle31/spyglass/internal/prefs"
	"github.com/kettle31/spyglass/internal/record"
	"github.com/kettle31/spyglass/internal/settings"
	"github.com/kettle31/spyglass/internal/stream"
)

const (
	defaultFlushTick = 100 * time.Millisecond
	limitStep        = 100
)

// levelForDigit maps the 1-5 keys onto the canonical levels.
var levelForDigit = map[string]string{
	"1": record.LevelInfo,
	"2": record.LevelWarn,
	"3": record.LevelError,
	"4": record.LevelSuccess,
	"5": record.LevelDebug,
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Buffer    *logview.Buffer
	Stream    *stream.Client
	Settings  *settings.Store
	Diag      *slog.Logger
	ExportDir string
	ThemeName string
	PrefsPath string
	FlushTick time.Duration
}

// Model is the root application state for Bubble Tea. The tea loop is the
// single execution context for every view mutation: stream arrivals only
// touch the shared buffer, and the flush tick pulls them in here.
type Model struct {
	// Configuration
	ctx       context.Context
	buffer    *logview.Buffer
	stream    *stream.Client
	settings  *settings.Store
	diag      *slog.Logger
	exportDir string
	prefsPath string
	flushTick time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool
	note     string

	// Stream view state
	viewport    viewport.Model
	follow      bool
	filters     logview.Filters
	matcher     logview.Matcher
	searching   bool
	searchInput textinput.Model

	// Derived data
	visible  []record.Record
	filtered []record.Record
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	flushTick := opts.FlushTick
	if flushTick == 0 {
		flushTick = defaultFlushTick
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	logger := opts.Diag
	if logger == nil {
		logger = diag.Discard()
	}
	store := opts.Settings
	if store == nil {
		store = settings.NewStore(0)
	}

	ti := textinput.New()
	ti.Placeholder = "regex or literal..."
	ti.Prompt = "/"
	ti.CharLimit = 200

	return Model{
		ctx:         ctx,
		buffer:      opts.Buffer,
		stream:      opts.Stream,
		settings:    store,
		diag:        logger,
		exportDir:   opts.ExportDir,
		prefsPath:   prefsPath,
		flushTick:   flushTick,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		follow:      true,
		filters:     logview.DefaultFilters(),
		matcher:     logview.NewMatcher(""),
		searchInput: ti,
	}
}

// Init implements tea.Model. The flush tick runs for the lifetime of the
// program regardless of what the operator is doing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		flushTickCmd(m.flushTick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-2, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-2, 1)
		}
		m.refreshContent()
		return m, nil

	case flushTickMsg:
		return m.handleFlushTick()
	}

	return m, nil
}

// handleFlushTick merges staged records into the visible set. The limit is
// read fresh from the settings store on every tick so live changes apply at
// the next flush, and an empty intake costs nothing.
func (m Model) handleFlushTick() (tea.Model, tea.Cmd) {
	if m.buffer != nil && m.buffer.Flush(m.settings.LogLimit()) {
		m.refreshContent()
	}
	return m, flushTickCmd(m.flushTick)
}

// refreshContent re-derives the filtered view and updates the viewport.
func (m *Model) refreshContent() {
	if m.buffer == nil {
		return
	}
	m.visible = m.buffer.Visible()
	m.filtered = logview.Filtered(m.visible, m.filters, m.matcher)
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		if m.follow {
			m.viewport.GotoBottom()
		}
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.note = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.matcher.Query())
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ClearSearch):
		if m.matcher.Query() != "" {
			m.matcher = logview.NewMatcher("")
			m.refreshContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLevel):
		if level, ok := levelForDigit[msg.String()]; ok {
			m.filters.Toggle(level)
			m.refreshContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		// Immediate: pending unflushed records are discarded too.
		if m.buffer != nil {
			m.buffer.Clear()
		}
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.exportSnapshot()
		return m, nil

	case key.Matches(msg, m.keys.GrowLimit):
		m.note = fmt.Sprintf("limit %d", m.settings.Adjust(limitStep))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ShrinkLimit):
		m.note = fmt.Sprintf("limit %d", m.settings.Adjust(-limitStep))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.follow = false
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown),
		key.Matches(msg, m.keys.HalfPageUp), key.Matches(msg, m.keys.HalfPageDown):
		// Manual scrolling takes over from follow mode.
		m.follow = false
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleSearchKey processes keys while the search input is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		m.matcher = logview.NewMatcher(m.searchInput.Value())
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) exportSnapshot() {
	path, err := export.Snapshot(m.exportDir, m.filtered)
	if err != nil {
		m.diag.Error("snapshot export failed", "error", err)
		m.note = "export failed"
		return
	}
	m.note = "saved " + path
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LogLimit: m.settings.LogLimit()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.diag.Warn("save prefs failed", "error", err)
	}
}

// Messages

type flushTickMsg time.Time

// Commands

func flushTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return flushTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
