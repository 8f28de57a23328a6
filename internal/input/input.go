// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
//
// Movement keys report whether they are held. Toggle keys (Pause, Reset,
// Next, Number) only fire on the frame their byte arrives so that holding
// them does not retrigger.
type Input struct {
	Quit        bool
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	RotateLeft  bool
	RotateRight bool
	Pause       bool
	Reset       bool
	Next        bool
	Number      int // Digit pressed this frame, -1 if none
	Pressed     []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left        time.Time
	right       time.Time
	up          time.Time
	down        time.Time
	rotateLeft  time.Time
	rotateRight time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream (EOF on the reader) is reported as Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Number: -1, Pressed: buf, Quit: closed}
	parse(&s.state, &in, buf, now)

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.RotateLeft = now.Sub(s.state.rotateLeft) < keyHoldDuration
	in.RotateRight = now.Sub(s.state.rotateRight) < keyHoldDuration
	return in
}

// ResetKeyInput forgets all held keys, e.g. after a scene reset.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// parse walks buf, recording held keys in state and one-shot keys in in.
func parse(state *keyState, in *Input, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
			case 'B':
				state.down = now
			case 'C':
				state.right = now
			case 'D':
				state.left = now
			}
			i += 2
			continue
		}

		applyByte(state, in, b, now)
	}
}

// applyByte handles a single key byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x1b', '\x03':
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'u', 'U':
		state.rotateLeft = now
	case 'o', 'O':
		state.rotateRight = now
	case ' ':
		in.Pause = true
	case 'r', 'R':
		in.Reset = true
	case '\t':
		in.Next = true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		in.Number = int(b - '0')
	}
}
