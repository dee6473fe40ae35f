// Package rain implements the falling-glyph simulation: drops, the
// field that orchestrates them, the color schemes and the live
// tunables. It contains pure logic with no terminal dependencies; the
// platform layer feeds it actions and applies the draw ops it emits.
package rain

import (
	"math/rand"
	"time"

	"github.com/jessedye/matrix-rain/internal/core"
)

// Field owns the set of active drops, the current terminal dimensions
// and the live settings. One Step call is one frame.
type Field struct {
	rng      *rand.Rand
	drops    []*Drop
	width    int
	height   int
	settings Settings
}

// New creates a field for the given screen dimensions. A zero seed
// falls back to the current time; a fixed seed makes the animation
// reproducible.
func New(cfg core.RuntimeConfig, settings Settings) *Field {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	settings.Clamp()

	return &Field{
		rng:      rand.New(rand.NewSource(seed)),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		settings: settings,
	}
}

// Resize updates the tracked terminal dimensions. Existing drops keep
// their columns; ones that fall outside the new width simply paint
// nothing visible until they retire.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
}

// Apply feeds a control action into the field. Quit is reported to the
// caller; every other action mutates the live settings and takes
// effect on the next Step.
func (f *Field) Apply(a Action) (quit bool) {
	if a == ActionQuit {
		return true
	}
	f.settings.Apply(a)
	return false
}

// Delay returns the current frame delay.
func (f *Field) Delay() time.Duration {
	return time.Duration(f.settings.FrameDelayMs) * time.Millisecond
}

// Scheme returns the active color scheme.
func (f *Field) Scheme() Scheme {
	return f.settings.Scheme
}

// Step runs one frame: spawn new drops, advance every active drop, and
// retain the survivors. It returns the frame's draw ops in drop order.
// The drop set is drained and rebuilt in place, so no drop is ever
// shared across frames mid-mutation.
func (f *Field) Step() []DrawOp {
	f.spawn()

	var ops []DrawOp
	survivors := f.drops[:0]
	for _, d := range f.drops {
		ops = append(ops, d.Advance(f.rng, f.height, f.settings.Scheme)...)
		if !d.Done(f.height) {
			survivors = append(survivors, d)
		}
	}
	f.drops = survivors

	return ops
}

// spawn makes between 1 and SpawnsPerFrame attempts, each succeeding
// with probability Density, at uniformly random columns.
func (f *Field) spawn() {
	if f.width <= 0 {
		return
	}
	for i, n := 0, f.rng.Intn(f.settings.SpawnsPerFrame)+1; i < n; i++ {
		if f.rng.Float64() < f.settings.Density {
			f.drops = append(f.drops, NewDrop(f.rng, f.rng.Intn(f.width), f.settings))
		}
	}
}

// Snapshot captures the observable field state for tests.
type Snapshot struct {
	Drops    int
	Width    int
	Height   int
	Settings Settings
}

// Snapshot returns the current field snapshot.
func (f *Field) Snapshot() Snapshot {
	return Snapshot{
		Drops:    len(f.drops),
		Width:    f.width,
		Height:   f.height,
		Settings: f.settings,
	}
}
