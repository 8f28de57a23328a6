package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomz197/satbox/internal/vector"
)

func TestNewCircle(t *testing.T) {
	reg := NewRegistry()
	c, err := NewCircle(reg, vector.New(1, 2), 3, 0.5)
	require.NoError(t, err)
	require.Equal(t, KindCircle, c.Kind())
	require.Equal(t, 3.0, c.BoundRadius())
	require.InDelta(t, 1/(2*9.0/2), c.Inertia(), eps)

	for _, bad := range []struct {
		center          vector.Vector
		radius, invMass float64
	}{
		{vector.Zero, 0, 1},
		{vector.Zero, math.NaN(), 1},
		{vector.Zero, math.Inf(1), 1},
		{vector.Zero, 1, math.Inf(1)},
		{vector.Zero, 1, math.NaN()},
		{vector.New(0, math.NaN()), 1, 1},
	} {
		_, err = NewCircle(reg, bad.center, bad.radius, bad.invMass)
		require.ErrorIs(t, err, ErrDegenerateShape, "radius %g inverse mass %g", bad.radius, bad.invMass)
	}
	_, err = NewCircle(nil, vector.Zero, 1, 1)
	require.ErrorIs(t, err, ErrNoRegistry)
	require.Equal(t, 1, reg.Len())
}

func TestCircleMoveRotate(t *testing.T) {
	c := newCircle(t, NewRegistry(), 0, 0, 1)
	c.Move(vector.New(2, 3))
	c.Rotate(1.5)
	requireVec(t, vector.New(2, 3), c.Center())
	require.Equal(t, 1.5, c.Angle())

	s := &recordingSurface{}
	c.Render(s)
	require.Equal(t, []float64{1}, s.circles)
	require.Equal(t, 1, s.lines)
}

func TestCircleCircle(t *testing.T) {
	reg := NewRegistry()
	a := newCircle(t, reg, 0, 0, 2)
	b := newCircle(t, reg, 3, 0, 2)

	var info CollisionInfo
	require.True(t, a.CollisionTest(b, &info))
	require.InDelta(t, 1, info.Depth, eps)
	requireVec(t, vector.New(1, 0), info.Normal)
	requireVec(t, vector.New(1, 0), info.Start)
	requireVec(t, vector.New(2, 0), info.End)

	b.Move(vector.New(1, 0))
	require.True(t, a.CollisionTest(b, &info), "touching counts")
	require.InDelta(t, 0, info.Depth, eps)

	b.Move(vector.New(0.01, 0))
	require.False(t, a.CollisionTest(b, &info))
}

func TestCircleCircleConcentric(t *testing.T) {
	reg := NewRegistry()
	big := newCircle(t, reg, 0, 0, 3)
	small := newCircle(t, reg, 0, 0, 1)

	var info CollisionInfo
	require.True(t, big.CollisionTest(small, &info))
	require.Equal(t, 4.0, info.Depth)
	requireVec(t, vector.New(0, -1), info.Normal)
	requireVec(t, vector.New(0, 3), info.Start)
}

func TestCircleRectangleIsMirrored(t *testing.T) {
	reg := NewRegistry()
	r := newRect(t, reg, 3, 0, 4, 4)
	c := newCircle(t, reg, 0, 0, 1.5)

	var fromRect, fromCircle CollisionInfo
	require.True(t, r.CollisionTest(c, &fromRect))
	require.True(t, c.CollisionTest(r, &fromCircle))

	require.InDelta(t, fromRect.Depth, fromCircle.Depth, eps)
	requireVec(t, fromRect.Normal.Scale(-1), fromCircle.Normal)
	requireVec(t, fromRect.Start, fromCircle.End)
	requireVec(t, fromRect.End, fromCircle.Start)

	c.Move(vector.New(-1, 0))
	require.False(t, c.CollisionTest(r, &fromCircle))
}

func TestCollideDispatch(t *testing.T) {
	reg := NewRegistry()
	r := newRect(t, reg, 0, 0, 4, 4)
	c := newCircle(t, reg, 2.5, 0, 1)
	other := newRect(t, reg, 0, 3, 4, 4)

	var info CollisionInfo
	require.True(t, Collide(r, c, &info))
	requireVec(t, vector.New(1, 0), info.Normal)
	require.True(t, Collide(r, other, &info))
	requireVec(t, vector.New(0, 1), info.Normal)
	require.True(t, Collide(c, r, &info))
	requireVec(t, vector.New(-1, 0), info.Normal)

	var base RigidShape
	require.False(t, r.CollisionTest(&unknownShape{base}, &info))
}

type unknownShape struct{ RigidShape }

// wrappedBox is a polygon kind other than *Rectangle.
type wrappedBox struct{ *Rectangle }

func TestCircleCollidesWithAnyPolygon(t *testing.T) {
	reg := NewRegistry()
	box := wrappedBox{newRect(t, reg, 3, 0, 4, 4)}
	c := newCircle(t, reg, 0, 0, 1.5)

	var fromBox, fromCircle CollisionInfo
	require.True(t, box.CollisionTest(c, &fromBox))
	require.True(t, c.CollisionTest(box, &fromCircle))
	require.InDelta(t, fromBox.Depth, fromCircle.Depth, eps)
	requireVec(t, fromBox.Normal.Scale(-1), fromCircle.Normal)
}

func (u *unknownShape) Kind() Kind                                { return Kind(99) }
func (u *unknownShape) CollisionTest(Shape, *CollisionInfo) bool { return false }

func TestBoundTest(t *testing.T) {
	reg := NewRegistry()
	a := newRect(t, reg, 0, 0, 4, 4)
	b := newCircle(t, reg, 2*math.Sqrt2+1, 0, 1)
	require.True(t, a.BoundTest(b))
	require.True(t, b.BoundTest(a))

	b.Move(vector.New(0.01, 0))
	require.False(t, a.BoundTest(b))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "rectangle", KindRectangle.String())
	require.Equal(t, "circle", KindCircle.String())
	require.Equal(t, "unknown", Kind(7).String())
}

func TestCollisionInfoChangeDir(t *testing.T) {
	var info CollisionInfo
	info.SetInfo(2, vector.New(0, 1), vector.New(1, 1))
	requireVec(t, vector.New(1, 3), info.End)

	info.ChangeDir()
	requireVec(t, vector.New(0, -1), info.Normal)
	requireVec(t, vector.New(1, 3), info.Start)
	requireVec(t, vector.New(1, 1), info.End)

	info.Clear()
	require.Equal(t, CollisionInfo{}, info)
}
