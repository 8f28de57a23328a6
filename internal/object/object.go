package object

import (
	"io"
	"math"
	"time"

	"github.com/tomz197/satbox/internal/draw"
	"github.com/tomz197/satbox/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	World   Screen
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text/markers)
}

// Screen represents logical world dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a Screen of the given size with its center filled in.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// WrapPosition wraps x and y coordinates around screen boundaries.
func (s Screen) WrapPosition(x, y *float64) {
	w := float64(s.Width)
	h := float64(s.Height)

	if w > 0 {
		*x = math.Mod(*x, w)
		if *x < 0 {
			*x += w
		}
	}
	if h > 0 {
		*y = math.Mod(*y, h)
		if *y < 0 {
			*y += h
		}
	}
}

// Object is a drawable and updatable sandbox entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// FilterBodies returns all Body objects from the given object slice.
func FilterBodies(objects []Object) []*Body {
	var bodies []*Body
	for _, obj := range objects {
		if b, ok := obj.(*Body); ok {
			bodies = append(bodies, b)
		}
	}
	return bodies
}
