// Package loop runs a collision sandbox: the Input → Update → Draw cycle
// around a set of bodies built from a scene.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/satbox/internal/draw"
	"github.com/tomz197/satbox/internal/input"
	"github.com/tomz197/satbox/internal/loop/config"
	"github.com/tomz197/satbox/internal/scene"
	"github.com/tomz197/satbox/internal/vector"
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Logger       *log.Logger       // Defaults to discarding
	Scene        *scene.Scene      // Defaults to scene.Default()
	FrameTime    time.Duration     // Defaults to config.TargetFrameTime
}

// Run starts the sandbox loop. It blocks until the user quits or r is exhausted.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	sc := opts.Scene
	if sc == nil {
		sc = scene.Default()
	}
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = config.TargetFrameTime
	}

	state, err := NewState(sc, opts.Logger)
	if err != nil {
		return err
	}
	stream := input.StartStream(r)

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(state.World.Width), float64(state.World.Height))
	canvas.SetOffset(offsetCol, offsetRow)
	cw := draw.NewChunkWriter(w)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		if err := processInput(state, stream, delta); err != nil {
			return err
		}
		if !state.Running {
			break
		}

		// ===== UPDATE PHASE =====
		updateScreen(termSizeFunc, canvas)
		if err := state.Step(delta); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads pending keys and applies them to the state.
func processInput(state *State, stream *input.Stream, delta time.Duration) error {
	state.Input = input.ReadInput(stream)
	in := state.Input

	if in.Quit {
		state.Running = false
		return nil
	}
	if in.Reset {
		input.ResetKeyInput(stream)
		return state.Reset()
	}
	if in.Pause {
		state.Paused = !state.Paused
	}
	if in.Next {
		state.SelectNext()
	}
	switch {
	case in.Number == 0:
		state.Select(NoSelection)
	case in.Number > 0:
		state.Select(in.Number - 1)
	}

	if state.Engine.Keyboard {
		applyControls(state, delta.Seconds())
	}
	return nil
}

// applyControls moves and turns the selected body for held keys.
func applyControls(state *State, dt float64) {
	body, _ := state.Selected()
	if body == nil {
		return
	}
	in := state.Input

	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx != 0 || dy != 0 {
		body.Shape.Move(vector.New(dx, dy).Scale(config.MoveSpeed * dt))
		body.Wrap(state.World)
	}

	switch {
	case in.RotateLeft && !in.RotateRight:
		body.Shape.Rotate(-config.RotateSpeed * dt)
	case in.RotateRight && !in.RotateLeft:
		body.Shape.Rotate(config.RotateSpeed * dt)
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func updateScreen(termSizeFunc draw.TermSizeFunc, canvas *draw.Canvas) {
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
