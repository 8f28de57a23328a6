package object

import (
	"fmt"
	"io"
)

// Text is a simple drawable text object.
// Coordinates are 1-based terminal positions.
type Text struct {
	X     int
	Y     int
	Value string
	Width int // Truncate to this many runes when > 0
}

// Draw writes the text at its position using ANSI cursor movement.
func (t Text) Draw(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	value := t.Value
	if t.Width > 0 {
		if r := []rune(value); len(r) > t.Width {
			value = string(r[:t.Width])
		}
	}
	x := max(t.X, 1)
	y := max(t.Y, 1)
	if _, err := fmt.Fprintf(w, "\033[%d;%dH%s", y, x, value); err != nil {
		return err
	}
	return nil
}
