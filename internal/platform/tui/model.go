package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jessedye/matrix-rain/internal/core"
	"github.com/jessedye/matrix-rain/internal/rain"
)

// Model is the Bubble Tea model driving the animation. Each frame is
// strictly sequential: pending key messages are applied to the live
// settings first, then the tick message runs the simulation step and
// paints its draw ops into the persistent screen buffer.
type Model struct {
	field    *rain.Field
	screen   *core.Screen
	keys     KeyMap
	quitting bool
}

// NewModel creates a model for the given settings and runtime config.
func NewModel(settings rain.Settings, cfg core.RuntimeConfig) Model {
	return Model{
		field:  rain.New(cfg, settings),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.field.Delay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.field.Apply(m.keys.Map(msg)) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.field.Resize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		for _, op := range m.field.Step() {
			m.screen.Set(op.X, op.Y, op.Glyph, op.Color)
		}
		return m, tickCmd(m.field.Delay())
	}

	return m, nil
}

// View renders the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until a quit key is
// pressed or a terminal I/O error surfaces. Bubble Tea restores the
// terminal (cursor, raw mode, alternate screen) on every exit path,
// error or not.
func Run(settings rain.Settings, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(settings, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
