package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomz197/satbox/internal/vector"
)

func countPixels(c *Canvas) int {
	n := 0
	for y := 0; y < c.TerminalHeight()*2; y++ {
		for x := 0; x < c.TerminalWidth(); x++ {
			if c.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestStrokeLineScales(t *testing.T) {
	// 20 logical units across 10 columns: every logical unit is half a column.
	c := NewScaledCanvas(10, 5, 20, 10)
	c.StrokeLine(vector.New(0, 0), vector.New(18, 0))

	for x := 0; x <= 9; x++ {
		require.True(t, c.Pixel(x, 0), "column %d", x)
	}
	require.False(t, c.Pixel(0, 1))
}

func TestStrokePolygonOutline(t *testing.T) {
	c := NewCanvas(20, 10)
	c.StrokePolygon([]vector.Vector{
		vector.New(2, 2), vector.New(10, 2), vector.New(10, 8), vector.New(2, 8),
	})

	require.True(t, c.Pixel(2, 2))
	require.True(t, c.Pixel(10, 8))
	require.True(t, c.Pixel(6, 2))
	require.False(t, c.Pixel(6, 5), "outline only")
}

func TestStrokeCircle(t *testing.T) {
	c := NewCanvas(40, 20)
	c.StrokeCircle(vector.New(20, 20), 8)

	require.True(t, c.Pixel(28, 20))
	require.True(t, c.Pixel(12, 20))
	require.False(t, c.Pixel(20, 20), "center stays empty")

	c.Clear()
	require.Zero(t, countPixels(c))
	c.StrokeCircle(vector.New(5, 5), 0)
	require.Equal(t, 1, countPixels(c))
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetFloat(0, 0)
	c.SetFloat(1, 0)
	c.SetFloat(1, 1)
	c.SetFloat(2, 1)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	require.Contains(t, out, "\033[1;1H"+string(BlockUpperHalf))
	require.Contains(t, out, "\033[1;2H"+string(BlockFull))
	require.Contains(t, out, "\033[1;3H"+string(BlockLowerHalf))
	require.NotContains(t, out, "\033[1;4H")
}

func TestChunkWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	cw.WriteString("\033[2;3Hhi")
	big := strings.Repeat("x", maxChunkSize*3)
	cw.WriteString(big)
	require.Zero(t, buf.Len(), "nothing written before Flush")

	require.NoError(t, cw.Flush())
	require.Equal(t, "\033[2;3Hhi"+big, buf.String())
}

func TestShadeLevel(t *testing.T) {
	require.Equal(t, ' ', ShadeLevel(-1))
	require.Equal(t, '█', ShadeLevel(2))
	require.Equal(t, '▒', ShadeLevel(0.5))
}
