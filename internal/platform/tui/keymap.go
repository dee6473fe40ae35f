package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jessedye/matrix-rain/internal/rain"
)

// KeyMap declares the runtime control bindings. Anything not listed
// here is deliberately a no-op, so a stray key press never disturbs
// the animation.
type KeyMap struct {
	Quit    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Denser  key.Binding
	Sparser key.Binding
	Longer  key.Binding
	Shorter key.Binding
	Green   key.Binding
	Blue    key.Binding
	Red     key.Binding
	Purple  key.Binding
	Cyan    key.Binding
	Rainbow key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", " ", "ctrl+c", "ctrl+d", "ctrl+z"),
			key.WithHelp("q/esc/enter/space", "quit"),
		),
		Faster: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "speed"),
		),
		Slower: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "slower"),
		),
		Denser: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "density"),
		),
		Sparser: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "sparser"),
		),
		Longer: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "length"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shorter"),
		),
		Green: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-6", "colors"),
		),
		Blue:    key.NewBinding(key.WithKeys("2")),
		Red:     key.NewBinding(key.WithKeys("3")),
		Purple:  key.NewBinding(key.WithKeys("4")),
		Cyan:    key.NewBinding(key.WithKeys("5")),
		Rainbow: key.NewBinding(key.WithKeys("6")),
	}
}

// ShortHelp returns the bindings shown in the startup banner.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Faster, k.Denser, k.Longer, k.Green, k.Quit}
}

// FullHelp returns all bindings grouped for a full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Faster, k.Slower, k.Denser, k.Sparser},
		{k.Longer, k.Shorter, k.Green, k.Quit},
	}
}

// Map translates a key message to a control action. Unbound keys map
// to rain.ActionNone.
func (k KeyMap) Map(msg tea.KeyMsg) rain.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return rain.ActionQuit
	case key.Matches(msg, k.Faster):
		return rain.ActionFaster
	case key.Matches(msg, k.Slower):
		return rain.ActionSlower
	case key.Matches(msg, k.Denser):
		return rain.ActionDenser
	case key.Matches(msg, k.Sparser):
		return rain.ActionSparser
	case key.Matches(msg, k.Longer):
		return rain.ActionLonger
	case key.Matches(msg, k.Shorter):
		return rain.ActionShorter
	case key.Matches(msg, k.Green):
		return rain.ActionGreen
	case key.Matches(msg, k.Blue):
		return rain.ActionBlue
	case key.Matches(msg, k.Red):
		return rain.ActionRed
	case key.Matches(msg, k.Purple):
		return rain.ActionPurple
	case key.Matches(msg, k.Cyan):
		return rain.ActionCyan
	case key.Matches(msg, k.Rainbow):
		return rain.ActionRainbow
	default:
		return rain.ActionNone
	}
}
