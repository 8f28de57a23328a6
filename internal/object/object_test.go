package object

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomz197/satbox/internal/draw"
	"github.com/tomz197/satbox/internal/physics"
	"github.com/tomz197/satbox/internal/vector"
)

const eps = 1e-9

func newBox(t *testing.T, x, y float64) *Body {
	t.Helper()
	r, err := physics.NewRectangle(physics.NewRegistry(), vector.New(x, y), 4, 2, 1)
	require.NoError(t, err)
	return NewBody("box", r)
}

func TestBodyUpdate(t *testing.T) {
	b := newBox(t, 10, 10)
	b.Velocity = vector.New(4, -2)
	b.Spin = math.Pi

	remove, err := b.Update(UpdateContext{
		Delta: 500 * time.Millisecond,
		World: NewScreen(100, 100),
	})
	require.NoError(t, err)
	require.False(t, remove)
	require.True(t, b.Shape.Center().ApproxEqual(vector.New(12, 9), eps))
	require.InDelta(t, math.Pi/2, b.Shape.Angle(), eps)
}

func TestBodyWraps(t *testing.T) {
	cases := []struct {
		name      string
		start     vector.Vector
		velocity  vector.Vector
		wantAfter vector.Vector
	}{
		{"right edge", vector.New(99, 50), vector.New(2, 0), vector.New(1, 50)},
		{"top edge", vector.New(50, 1), vector.New(0, -3), vector.New(50, 98)},
		{"inside", vector.New(50, 50), vector.New(1, 1), vector.New(51, 51)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBox(t, tc.start.X(), tc.start.Y())
			b.Velocity = tc.velocity
			_, err := b.Update(UpdateContext{Delta: time.Second, World: NewScreen(100, 100)})
			require.NoError(t, err)
			require.True(t, b.Shape.Center().ApproxEqual(tc.wantAfter, 1e-6), "got %v", b.Shape.Center())
		})
	}
}

func TestBodyDrawSelected(t *testing.T) {
	b := newBox(t, 20, 20)
	canvas := draw.NewCanvas(40, 20)

	require.NoError(t, b.Draw(DrawContext{Canvas: canvas}))
	require.False(t, canvas.Pixel(20, 20), "center empty when not selected")

	b.Selected = true
	require.NoError(t, b.Draw(DrawContext{Canvas: canvas}))
	require.True(t, canvas.Pixel(20, 20))
}

func TestFilterBodies(t *testing.T) {
	b := newBox(t, 0, 0)
	m := NewContactMarker(physics.CollisionInfo{}, 1)
	defer m.Release()

	require.Equal(t, []*Body{b}, FilterBodies([]Object{m, b}))
}

func TestContactMarker(t *testing.T) {
	var info physics.CollisionInfo
	info.SetInfo(0, vector.New(1, 0), vector.New(5, 5))

	m := NewContactMarker(info, 0.5)
	defer m.Release()
	require.True(t, m.End.ApproxEqual(vector.New(6, 5), eps), "zero depth still has length")

	canvas := draw.NewCanvas(20, 10)
	var out bytes.Buffer
	require.NoError(t, m.Draw(DrawContext{Canvas: canvas, Writer: &out}))
	require.True(t, canvas.Pixel(5, 5))
	require.Contains(t, out.String(), string(draw.BlockFull))

	remove, err := m.Update(UpdateContext{Delta: 200 * time.Millisecond})
	require.NoError(t, err)
	require.False(t, remove)
	remove, err = m.Update(UpdateContext{Delta: 400 * time.Millisecond})
	require.NoError(t, err)
	require.True(t, remove)
}

func TestTextDraw(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Text{X: 0, Y: 3, Value: "contacts: 12", Width: 8}.Draw(&out))
	require.Equal(t, "\033[3;1Hcontacts", out.String())

	out.Reset()
	require.NoError(t, Text{X: 2, Y: 2}.Draw(&out))
	require.Empty(t, out.String())
}

func TestScreenWrapPosition(t *testing.T) {
	s := NewScreen(10, 20)
	require.Equal(t, 5, s.CenterX)

	x, y := -1.0, 25.0
	s.WrapPosition(&x, &y)
	require.InDelta(t, 9, x, eps)
	require.InDelta(t, 5, y, eps)
}
