package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jessedye/matrix-rain/internal/core"
	"github.com/jessedye/matrix-rain/internal/rain"
)

func denseSettings() rain.Settings {
	s := rain.DefaultSettings()
	s.Density = 1.0
	s.SpawnsPerFrame = 5
	s.MinSpeed = 1
	s.MaxSpeed = 1
	return s
}

func testModel() Model {
	return NewModel(denseSettings(), core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 42})
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(TickMsg{})
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next
}

func TestTicksPaintTheScreen(t *testing.T) {
	m := testModel()

	// At full density with instant drops, 40 frames are plenty for
	// glyphs to reach the visible area.
	for i := 0; i < 40; i++ {
		m = tick(t, m)
	}

	if !strings.ContainsFunc(m.screen.String(), func(r rune) bool {
		return r != ' ' && r != '\n'
	}) {
		t.Error("screen still blank after 40 frames")
	}
}

func TestTickReArmsTheLoop(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}
	if _, ok := updated.(Model); !ok {
		t.Errorf("Update returned %T", updated)
	}
}

func TestQuitKeyStopsTheProgram(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next := updated.(Model)
	if !next.quitting {
		t.Error("esc did not mark the model as quitting")
	}
	if cmd == nil {
		t.Error("esc did not produce the quit command")
	}
	if next.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestResizeKeepsRunning(t *testing.T) {
	m := testModel()
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	m = updated.(Model)

	if m.screen.Width() != 20 || m.screen.Height() != 6 {
		t.Fatalf("screen is %dx%d after resize", m.screen.Width(), m.screen.Height())
	}

	// Later frames must stay within the new bounds.
	for i := 0; i < 20; i++ {
		m = tick(t, m)
	}
	rows := strings.Split(m.screen.String(), "\n")
	if len(rows) != 6 {
		t.Errorf("screen has %d rows after resize, expected 6", len(rows))
	}
}

func TestTuningKeyAppliesBeforeNextFrame(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if cmd != nil {
		t.Error("tuning key should not schedule anything")
	}
	if got := m.field.Delay().Milliseconds(); got != 45 {
		t.Errorf("delay = %dms after speed-up, expected 45", got)
	}
}
