package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name  string
		bytes string
		check func(t *testing.T, st keyState, in Input)
	}{
		{"arrow up", "\x1b[A", func(t *testing.T, st keyState, in Input) {
			require.Equal(t, now, st.up)
			require.False(t, in.Quit, "escape sequence is not quit")
		}},
		{"arrow left", "\x1b[D", func(t *testing.T, st keyState, in Input) {
			require.Equal(t, now, st.left)
		}},
		{"wasd", "wd", func(t *testing.T, st keyState, in Input) {
			require.Equal(t, now, st.up)
			require.Equal(t, now, st.right)
		}},
		{"rotate", "uo", func(t *testing.T, st keyState, in Input) {
			require.Equal(t, now, st.rotateLeft)
			require.Equal(t, now, st.rotateRight)
		}},
		{"one shots", " r\t7", func(t *testing.T, st keyState, in Input) {
			require.True(t, in.Pause)
			require.True(t, in.Reset)
			require.True(t, in.Next)
			require.Equal(t, 7, in.Number)
		}},
		{"bare escape quits", "\x1b", func(t *testing.T, st keyState, in Input) {
			require.True(t, in.Quit)
		}},
		{"ctrl c quits", "\x03", func(t *testing.T, st keyState, in Input) {
			require.True(t, in.Quit)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var st keyState
			in := Input{Number: -1}
			parse(&st, &in, []byte(tc.bytes), now)
			tc.check(t, st, in)
		})
	}
}

func TestReadInputFromStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("a")))

	var in Input
	require.Eventually(t, func() bool {
		in = ReadInput(s)
		return in.Left
	}, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		return ReadInput(s).Quit
	}, time.Second, time.Millisecond, "EOF reads as quit")

	ResetKeyInput(s)
	require.False(t, ReadInput(s).Left)
}
