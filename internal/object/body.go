package object

import (
	"github.com/tomz197/satbox/internal/physics"
	"github.com/tomz197/satbox/internal/vector"
)

// crossSize is the half length of the selection cross in logical units.
const crossSize = 1.5

// Body drives a physics shape through the sandbox: it owns the shape's
// linear velocity and spin, which the core itself does not model.
type Body struct {
	Shape    physics.Shape
	Name     string
	Velocity vector.Vector // Logical units per second
	Spin     float64       // Radians per second
	Selected bool
}

// NewBody wraps s. The body starts at rest.
func NewBody(name string, s physics.Shape) *Body {
	return &Body{Shape: s, Name: name}
}

// Handle returns the registry handle of the underlying shape.
func (b *Body) Handle() physics.Handle {
	return b.Shape.Handle()
}

// Update advances the shape by its velocity and spin, then wraps it around
// the world.
func (b *Body) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()
	if b.Velocity != vector.Zero {
		b.Shape.Move(b.Velocity.Scale(dt))
	}
	if b.Spin != 0 {
		b.Shape.Rotate(b.Spin * dt)
	}
	b.Wrap(ctx.World)
	return false, nil
}

// Wrap moves the shape back inside world if its center left it.
func (b *Body) Wrap(world Screen) {
	c := b.Shape.Center()
	x, y := c.X(), c.Y()
	world.WrapPosition(&x, &y)
	if x != c.X() || y != c.Y() {
		b.Shape.Move(vector.New(x, y).Sub(c))
	}
}

// Draw renders the shape outline. Selected bodies get a cross at their center.
func (b *Body) Draw(ctx DrawContext) error {
	b.Shape.Update(ctx.Canvas)
	b.Shape.Render(ctx.Canvas)
	if !b.Selected {
		return nil
	}
	c := b.Shape.Center()
	ctx.Canvas.StrokeLine(c.Add(vector.New(-crossSize, 0)), c.Add(vector.New(crossSize, 0)))
	ctx.Canvas.StrokeLine(c.Add(vector.New(0, -crossSize)), c.Add(vector.New(0, crossSize)))
	return nil
}
