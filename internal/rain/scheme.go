package rain

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jessedye/matrix-rain/internal/core"
)

// Scheme is a named color-generation strategy, selectable at runtime
// with the 1-6 keys. The set is closed; dispatch happens in ColorAt.
type Scheme int

const (
	SchemeGreen Scheme = iota
	SchemeBlue
	SchemeRed
	SchemePurple
	SchemeCyan
	SchemeRainbow
)

// String returns the scheme's lowercase name.
func (s Scheme) String() string {
	switch s {
	case SchemeGreen:
		return "green"
	case SchemeBlue:
		return "blue"
	case SchemeRed:
		return "red"
	case SchemePurple:
		return "purple"
	case SchemeCyan:
		return "cyan"
	case SchemeRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// ParseScheme converts a name to a Scheme, case-insensitively.
// Returns SchemeGreen and false if the name is not recognized.
func ParseScheme(name string) (Scheme, bool) {
	switch strings.ToLower(name) {
	case "green":
		return SchemeGreen, true
	case "blue":
		return SchemeBlue, true
	case "red":
		return SchemeRed, true
	case "purple":
		return SchemePurple, true
	case "cyan":
		return SchemeCyan, true
	case "rainbow":
		return SchemeRainbow, true
	default:
		return SchemeGreen, false
	}
}

// AllSchemes returns every scheme in key order (1-6).
func AllSchemes() []Scheme {
	return []Scheme{SchemeGreen, SchemeBlue, SchemeRed, SchemePurple, SchemeCyan, SchemeRainbow}
}

// ColorAt computes the display color for the glyph at the given index
// within a drop. index 0 is the head (newest cell), length-1 the tail.
// column only matters for the rainbow scheme, which rotates hue across
// the screen width.
//
// Non-rainbow schemes special-case the head and the cell behind it to
// bright near-white glow tones, then interpolate from a saturated base
// color toward near-black as the fade factor index/length grows.
func (s Scheme) ColorAt(index, length, column int) core.RGB {
	fade := float64(index) / float64(length)

	switch s {
	case SchemeBlue:
		if index == 0 {
			return core.RGB{R: 200, G: 220, B: 255}
		}
		if index == 1 {
			return core.RGB{R: 100, G: 150, B: 255}
		}
		intensity := math.Max(0.15, 1-fade*0.85)
		return core.RGB{
			G: uint8(100 * intensity),
			B: uint8(255 * intensity),
		}

	case SchemeRed:
		if index == 0 {
			return core.RGB{R: 255, G: 220, B: 200}
		}
		if index == 1 {
			return core.RGB{R: 255, G: 100, B: 100}
		}
		intensity := math.Max(0.15, 1-fade*0.85)
		return core.RGB{
			R: uint8(255 * intensity),
			G: uint8(30 * (1 - fade)),
		}

	case SchemePurple:
		if index == 0 {
			return core.RGB{R: 240, G: 200, B: 255}
		}
		if index == 1 {
			return core.RGB{R: 200, G: 100, B: 255}
		}
		intensity := math.Max(0.15, 1-fade*0.85)
		return core.RGB{
			R: uint8(180 * intensity),
			B: uint8(255 * intensity),
		}

	case SchemeCyan:
		if index == 0 {
			return core.RGB{R: 200, G: 255, B: 255}
		}
		if index == 1 {
			return core.RGB{R: 100, G: 255, B: 255}
		}
		intensity := math.Max(0.15, 1-fade*0.85)
		return core.RGB{
			G: uint8(255 * intensity),
			B: uint8(255 * intensity),
		}

	case SchemeRainbow:
		// Head is forced to plain white for visual punch.
		if index == 0 {
			return core.White
		}
		hue := math.Mod(float64(column)*10+float64(index)*15, 360) / 360
		intensity := math.Max(0.2, 1-fade*0.8)
		return hsvToRGB(hue, 1, intensity)

	default: // SchemeGreen
		if index == 0 {
			return core.RGB{R: 200, G: 255, B: 200}
		}
		if index == 1 {
			return core.RGB{R: 100, G: 255, B: 100}
		}
		intensity := math.Max(0.15, 1-fade*0.85)
		return core.RGB{
			R: uint8(30 * (1 - fade)),
			G: uint8(255 * intensity),
		}
	}
}

// hsvToRGB converts h in [0, 1), s and v in [0, 1] to 8-bit RGB.
func hsvToRGB(h, s, v float64) core.RGB {
	r, g, b := colorful.Hsv(h*360, s, v).RGB255()
	return core.RGB{R: r, G: g, B: b}
}
