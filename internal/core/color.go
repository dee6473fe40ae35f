package core

import "fmt"

// RGB is a 24-bit foreground color for a screen cell.
// The zero value is black, which doubles as "no color" for blank cells.
type RGB struct {
	R, G, B uint8
}

// White is the forced head color of the rainbow scheme.
var White = RGB{R: 255, G: 255, B: 255}

// Hex returns the color as a #rrggbb string suitable for lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
