package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/export"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// DemoModel is the Bubble Tea model that runs one demo.
// Keys are collected into an input frame and applied on the next tick;
// mouse events go straight to demos that handle pointers.
type DemoModel struct {
	demo       registry.Demo
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	demoState  core.DemoState
	keyMapper  *KeyMapper
	started    time.Time
	gen        int64 // Tick loop generation
	shotDir    string // Screenshot directory
	lastShot   string // Path of the last screenshot, shown in the footer
	embedded   bool   // Back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
	saved      bool // Session already written to the log
}

// NewDemoModel creates a model for demo. store and logger may be nil.
func NewDemoModel(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) DemoModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return DemoModel{
		demo:       demo,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		started:    time.Now(),
		gen:        time.Now().UnixNano(),
		shotDir:    defaultScreenshotDir(),
	}
}

// Init resets the demo and starts the tick loop.
func (m DemoModel) Init() tea.Cmd {
	m.demo.Reset(m.config)
	m.logger.Debug("demo started", "demo", m.demo.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.finish()
		return m, tea.Quit

	case action == core.ActionBack:
		m.finish()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse forwards pointer events to demos that accept them.
func (m DemoModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ph, ok := m.demo.(registry.PointerHandler)
	if !ok {
		return m, nil
	}

	ev, ok := m.keyMapper.MapMouse(msg)
	if !ok {
		return m, nil
	}

	if ph.HandlePointer(ev) {
		m.demoState = m.demo.State()
		m.logger.Debug("pointer", "kind", ev.Kind, "col", ev.Col, "row", ev.Row)
	}
	return m, nil
}

// handleResize refits the demo to the new window.
func (m DemoModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.demo.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.demo.Reset(m.config)
	}

	return m, nil
}

// handleTick steps the demo with the input collected since the last tick.
func (m DemoModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.demo.Step(m.inputFrame)
	m.demoState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// finish writes the session to the log once.
func (m *DemoModel) finish() {
	if m.saved {
		return
	}
	m.saved = true

	st := m.demo.State()
	sess := storage.Session{
		DemoID:        m.demo.ID(),
		Moves:         st.Moves,
		Shapes:        st.Shapes,
		Intersections: st.Intersections,
		DurationSecs:  int(time.Since(m.started).Seconds()),
	}
	m.logger.Info("session finished",
		"demo", sess.DemoID,
		"moves", sess.Moves,
		"shapes", sess.Shapes,
		"intersections", sess.Intersections,
		"secs", sess.DurationSecs,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSession(sess); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot writes the current screen as text and, for demos that can
// export, the canvas as a PNG next to it.
func (m *DemoModel) saveScreenshot() {
	m.demo.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.demo.ID(), timestamp))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.lastShot = base + ".txt"

	if ex, ok := m.demo.(registry.Exporter); ok {
		if err := ex.ExportPNG(base+".png", export.DefaultSize); err != nil {
			m.logger.Warn("could not export png", "error", err)
			return
		}
		m.lastShot = base + ".png"
	}
	m.logger.Info("screenshot saved", "path", m.lastShot)
}

// View renders the current state to a string for display.
func (m DemoModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.demo.Render(m.screen)
	if m.lastShot != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColored(0, 0, "saved "+m.lastShot, core.ColorCyan)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m DemoModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m DemoModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the demo counters as of the last tick or pointer event.
func (m DemoModel) State() core.DemoState {
	return m.demoState
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sketch", "screenshots")
	}
	return filepath.Join(home, ".sketch", "screenshots")
}

// Run starts a full-screen Bubble Tea program for one demo.
func Run(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewDemoModel(demo, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
