package rain

import (
	"github.com/jessedye/matrix-rain/internal/core"
)

// Settings holds the live tunables for the animation. The Field owns
// the authoritative copy; key presses mutate it through Apply and the
// change is visible from the next frame on.
type Settings struct {
	FrameDelayMs   int     // Delay between frames; lower = faster
	Density        float64 // Spawn probability per attempt, 0.01-1.0
	SpawnsPerFrame int     // Max spawn attempts per frame
	MinLength      int     // Min drop length
	MaxLength      int     // Max drop length
	MinSpeed       int     // Min ticks per one-row advance; higher = slower
	MaxSpeed       int     // Max ticks per one-row advance
	Scheme         Scheme  // Active color scheme
}

// DefaultSettings returns the stock configuration: relaxed pace, long
// green trails.
func DefaultSettings() Settings {
	return Settings{
		FrameDelayMs:   50,
		Density:        0.4,
		SpawnsPerFrame: 4,
		MinLength:      10,
		MaxLength:      30,
		MinSpeed:       2,
		MaxSpeed:       4,
		Scheme:         SchemeGreen,
	}
}

// Action is a semantic control input, abstracted from physical key
// presses so the tuning logic is testable without a terminal.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionFaster  // decrease frame delay
	ActionSlower  // increase frame delay
	ActionDenser  // more drops per frame
	ActionSparser // fewer drops per frame
	ActionLonger  // increase max trail length
	ActionShorter // decrease max trail length
	ActionGreen
	ActionBlue
	ActionRed
	ActionPurple
	ActionCyan
	ActionRainbow
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionDenser:
		return "Denser"
	case ActionSparser:
		return "Sparser"
	case ActionLonger:
		return "Longer"
	case ActionShorter:
		return "Shorter"
	case ActionGreen:
		return "Green"
	case ActionBlue:
		return "Blue"
	case ActionRed:
		return "Red"
	case ActionPurple:
		return "Purple"
	case ActionCyan:
		return "Cyan"
	case ActionRainbow:
		return "Rainbow"
	default:
		return "Unknown"
	}
}

// Apply mutates the settings according to a control action. Every
// adjustment saturates at its bound, so repeated presses can never push
// a value out of range or invert a min/max pair.
func (s *Settings) Apply(a Action) {
	switch a {
	case ActionFaster:
		s.FrameDelayMs = core.Clamp(s.FrameDelayMs-5, 5, 100)
	case ActionSlower:
		s.FrameDelayMs = core.Clamp(s.FrameDelayMs+5, 5, 100)
	case ActionDenser:
		s.Density = core.ClampF(s.Density+0.05, 0.01, 1.0)
		s.SpawnsPerFrame = core.Clamp(s.SpawnsPerFrame+1, 1, 20)
	case ActionSparser:
		s.Density = core.ClampF(s.Density-0.05, 0.05, 1.0)
		s.SpawnsPerFrame = core.Clamp(s.SpawnsPerFrame-1, 1, 20)
	case ActionLonger:
		s.MaxLength = core.Clamp(s.MaxLength+5, 5, 50)
	case ActionShorter:
		s.MaxLength = core.Clamp(s.MaxLength-5, 5, 50)
		// Keep min <= max when shrinking below the configured minimum.
		if s.MinLength > s.MaxLength {
			s.MinLength = s.MaxLength
		}
	case ActionGreen:
		s.Scheme = SchemeGreen
	case ActionBlue:
		s.Scheme = SchemeBlue
	case ActionRed:
		s.Scheme = SchemeRed
	case ActionPurple:
		s.Scheme = SchemePurple
	case ActionCyan:
		s.Scheme = SchemeCyan
	case ActionRainbow:
		s.Scheme = SchemeRainbow
	}
}

// Clamp normalizes settings coming from flags or config files so the
// simulation's range invariants hold: positive delay and spawn count,
// density within [0.01, 1.0], non-empty length and speed ranges.
func (s *Settings) Clamp() {
	if s.FrameDelayMs < 1 {
		s.FrameDelayMs = 1
	}
	s.Density = core.ClampF(s.Density, 0.01, 1.0)
	if s.SpawnsPerFrame < 1 {
		s.SpawnsPerFrame = 1
	}
	if s.MinLength < 1 {
		s.MinLength = 1
	}
	if s.MaxLength < s.MinLength {
		s.MaxLength = s.MinLength
	}
	if s.MinSpeed < 1 {
		s.MinSpeed = 1
	}
	if s.MaxSpeed < s.MinSpeed {
		s.MaxSpeed = s.MinSpeed
	}
}
