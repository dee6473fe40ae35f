package rain

import (
	"math/rand"

	"github.com/jessedye/matrix-rain/internal/core"
)

// DrawOp is a single cell write produced by advancing a drop: paint a
// glyph, or blank the trailing cell (Glyph == ' ' with the zero color).
// Ops are transient; they are applied to the screen and discarded.
type DrawOp struct {
	X, Y  int
	Glyph rune
	Color core.RGB
}

// Drop is one falling column of glyphs. The column is fixed for the
// drop's lifetime; the head row starts above the visible area and the
// trail follows it down until the tail passes offscreen.
type Drop struct {
	x      int
	y      int // head row, may be negative or beyond the bottom
	speed  int // ticks required per one-row advance
	length int
	glyphs []rune
	tick   int
}

// NewDrop creates a drop at the given column, sampling length, speed,
// initial offset and the glyph trail from the provided source. The
// settings ranges must be non-empty (Settings.Clamp guarantees it).
func NewDrop(rng *rand.Rand, column int, s Settings) *Drop {
	length := intBetween(rng, s.MinLength, s.MaxLength)

	glyphs := make([]rune, length)
	for i := range glyphs {
		glyphs[i] = charset[rng.Intn(len(charset))]
	}

	return &Drop{
		x: column,
		// Stagger entries by starting up to 30 rows above the screen.
		y:      -1 - rng.Intn(30),
		speed:  intBetween(rng, s.MinSpeed, s.MaxSpeed),
		length: length,
		glyphs: glyphs,
	}
}

// Advance runs one simulation tick. A drop only moves once every speed
// ticks; off-cycle ticks produce no ops. On a moving tick the head
// steps down one row, the trail may shimmer, and ops are emitted for
// every trail cell inside [0, height) plus one blank for the cell the
// tail just vacated.
func (d *Drop) Advance(rng *rand.Rand, height int, scheme Scheme) []DrawOp {
	d.tick++
	if d.tick%d.speed != 0 {
		return nil
	}

	d.y++

	// Shimmer: up to two glyphs may be replaced per move, each with a
	// coin flip.
	for i, n := 0, rng.Intn(3); i < n; i++ {
		if rng.Float64() < 0.5 {
			d.glyphs[rng.Intn(d.length)] = charset[rng.Intn(len(charset))]
		}
	}

	ops := make([]DrawOp, 0, d.length+1)
	for i, g := range d.glyphs {
		row := d.y - i
		if row >= 0 && row < height {
			ops = append(ops, DrawOp{
				X:     d.x,
				Y:     row,
				Glyph: g,
				Color: scheme.ColorAt(i, d.length, d.x),
			})
		}
	}

	// Erase the trailing edge so the drop leaves no permanent trail.
	if tail := d.y - d.length; tail >= 0 && tail < height {
		ops = append(ops, DrawOp{X: d.x, Y: tail, Glyph: ' '})
	}

	return ops
}

// Done reports whether the drop can be retired. The extra full-height
// slack (> height rather than > 0) matches the original behavior of
// keeping drops around slightly past offscreen.
func (d *Drop) Done(height int) bool {
	return d.y-d.length > height
}

// intBetween returns a uniform draw from [min, max]. Caller guarantees
// min <= max.
func intBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
