package loop

import (
	"fmt"

	"github.com/tomz197/satbox/internal/draw"
	"github.com/tomz197/satbox/internal/object"
)

const controlsHelp = "arrows/WASD move  u/o rotate  1-9 select  tab next  space pause  r reset  q quit"

// drawFrame draws the current frame into cw and flushes it.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	cw.WriteString("\033[H\033[2J")
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: cw,
	}

	for _, b := range state.Bodies {
		if err := b.Draw(ctx); err != nil {
			return err
		}
	}
	for _, c := range state.Contacts() {
		canvas.StrokeLine(c.Info.Start, c.Info.End)
	}
	canvas.Render(cw)
	canvas.RenderBorder(cw)

	// Markers write text, so they go after the canvas.
	for _, m := range state.Markers {
		if err := m.Draw(ctx); err != nil {
			return err
		}
	}

	if err := drawHUD(state, cw, canvas); err != nil {
		return err
	}
	return cw.Flush()
}

// hudLines returns the status lines shown at the top of the screen.
func hudLines(state *State) []string {
	status := fmt.Sprintf("bodies: %d  contacts: %d", len(state.Bodies), len(state.Contacts()))
	if state.Paused {
		status += "  [paused]"
	}
	if !state.Engine.Collision {
		status += "  [collision off]"
	}

	lines := []string{status}

	if b, i := state.Selected(); b != nil {
		c := b.Shape.Center()
		lines = append(lines, fmt.Sprintf("#%d %s %s (%.1f, %.1f) angle %.2f",
			i+1, b.Name, b.Shape.Kind(), c.X(), c.Y(), b.Shape.Angle()))
	}

	if c, ok := Deepest(state.Contacts()); ok {
		// +0 folds negative zero so flipped axes do not print as -0.00.
		lines = append(lines, fmt.Sprintf("deepest %s/%s depth %.2f normal (%.2f, %.2f)",
			c.A.Name, c.B.Name, c.Info.Depth, c.Info.Normal.X()+0, c.Info.Normal.Y()+0))
	}
	return lines
}

// drawHUD writes the status lines and the controls help inside the canvas area.
func drawHUD(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	x := canvas.OffsetCol() + 2
	top := canvas.OffsetRow()
	width := canvas.TerminalWidth() - 2

	for i, line := range hudLines(state) {
		if err := (object.Text{X: x, Y: top + i + 1, Value: line, Width: width}).Draw(cw); err != nil {
			return err
		}
	}
	return object.Text{X: x, Y: top + canvas.TerminalHeight(), Value: controlsHelp, Width: width}.Draw(cw)
}
