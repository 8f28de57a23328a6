package loop

import (
	"github.com/tomz197/satbox/internal/object"
	"github.com/tomz197/satbox/internal/physics"
)

// Contact is one touching pair. Info.Normal points from A toward B.
type Contact struct {
	A, B *object.Body
	Info physics.CollisionInfo
}

// pairKey identifies an unordered pair of shapes, lower handle first.
type pairKey struct {
	a, b physics.Handle
}

func keyOf(c Contact) pairKey {
	a, b := c.A.Handle(), c.B.Handle()
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// DetectContacts returns every touching pair among bodies. The grid is
// refilled from the bodies' current centers, so its cell size must be at
// least twice the largest bounding radius.
func DetectContacts(bodies []*object.Body, grid *physics.SpatialGrid) []Contact {
	return appendContacts(nil, bodies, grid)
}

func appendContacts(dst []Contact, bodies []*object.Body, grid *physics.SpatialGrid) []Contact {
	byHandle := make(map[physics.Handle]*object.Body, len(bodies))
	grid.Clear()
	for _, b := range bodies {
		byHandle[b.Handle()] = b
		grid.Insert(b.Shape.Center(), b.Handle())
	}

	for _, a := range bodies {
		grid.QueryAround(a.Shape.Center(), func(h physics.Handle) bool {
			if h <= a.Handle() {
				return false // Skip self and already-checked pairs
			}
			b := byHandle[h]
			if b == nil || !a.Shape.BoundTest(b.Shape) {
				return false
			}
			var info physics.CollisionInfo
			if physics.Collide(a.Shape, b.Shape, &info) {
				dst = append(dst, Contact{A: a, B: b, Info: info})
			}
			return false
		})
	}
	return dst
}

// Deepest returns the contact with the largest depth.
func Deepest(contacts []Contact) (Contact, bool) {
	if len(contacts) == 0 {
		return Contact{}, false
	}
	best := contacts[0]
	for _, c := range contacts[1:] {
		if c.Info.Depth > best.Info.Depth {
			best = c
		}
	}
	return best, true
}

// separate pushes the pair apart along the contact normal, splitting the
// correction by inverse mass. Static pairs do not move.
func separate(c Contact, factor, slop float64) {
	ia, ib := c.A.Shape.InvMass(), c.B.Shape.InvMass()
	total := ia + ib
	if total == 0 {
		return
	}
	depth := c.Info.Depth - slop
	if depth <= 0 {
		return
	}
	push := c.Info.Normal.Scale(depth * factor / total)
	c.A.Shape.Move(push.Scale(-ia))
	c.B.Shape.Move(push.Scale(ib))
}
