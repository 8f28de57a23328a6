// Package draw renders to the terminal: a scaled half-block canvas that
// physics shapes draw on, plus cursor and buffered-output helpers.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Shade characters from lightest to darkest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// DrawChar draws a single character at the given position (1-based).
func DrawChar(w io.Writer, x, y int, ch rune) {
	if x >= 1 && y >= 1 {
		fmt.Fprintf(w, "\033[%d;%dH%c", y, x, ch)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
