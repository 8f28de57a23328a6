package physics

import (
	"fmt"
	"math"

	"github.com/tomz197/satbox/internal/vector"
)

// Polygon is implemented by shapes that take part in the separating axis
// test from both sides: they expose support points and search their own
// face normals for the axis of least penetration.
type Polygon interface {
	Shape
	FindSupportPoint(dir, ptOnEdge vector.Vector) (Support, bool)
	FindAxisLeastPenetration(other Polygon, info *CollisionInfo) bool
	// CollideCircle tests c against the polygon. The normal points from
	// the polygon toward c.
	CollideCircle(c *Circle, info *CollisionInfo) bool
}

// Support is the vertex of a shape furthest along a direction, measured
// from a point on a reference edge.
type Support struct {
	Point vector.Vector
	Dist  float64
}

// Rectangle is an oriented box.
//
// Vertices are kept in the order top-left, top-right, bottom-right,
// bottom-left (screen coordinates, y down) and face normals in the order
// top, right, bottom, left. Normal i is perpendicular to the edge from
// vertex i to vertex i+1 and points out of the box.
type Rectangle struct {
	RigidShape

	width, height float64
	vertices      [4]vector.Vector
	faceNormals   [4]vector.Vector
}

var _ Polygon = (*Rectangle)(nil)

// NewRectangle creates an axis-aligned rectangle centered at center and
// registers it in reg. invMass 0 makes the rectangle static.
func NewRectangle(reg *Registry, center vector.Vector, width, height, invMass float64) (*Rectangle, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	if !finite(width, height, invMass, center.X(), center.Y()) || width <= 0 || height <= 0 || invMass < 0 {
		return nil, fmt.Errorf("%w: rectangle %gx%g inverse mass %g", ErrDegenerateShape, width, height, invMass)
	}

	r := &Rectangle{
		RigidShape: RigidShape{
			center:      center,
			boundRadius: math.Sqrt(width*width+height*height) / 2,
			invMass:     invMass,
		},
		width:  width,
		height: height,
	}

	hw, hh := width/2, height/2
	r.vertices[0] = vector.New(center.X()-hw, center.Y()-hh)
	r.vertices[1] = vector.New(center.X()+hw, center.Y()-hh)
	r.vertices[2] = vector.New(center.X()+hw, center.Y()+hh)
	r.vertices[3] = vector.New(center.X()-hw, center.Y()+hh)
	if err := r.computeFaceNormals(); err != nil {
		return nil, err
	}
	r.updateInertia()

	r.attach(reg, r)
	return r, nil
}

// Kind implements Shape.
func (r *Rectangle) Kind() Kind { return KindRectangle }

// Width returns the rectangle width.
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the rectangle height.
func (r *Rectangle) Height() float64 { return r.height }

// Vertices returns a copy of the four corners.
func (r *Rectangle) Vertices() [4]vector.Vector { return r.vertices }

// FaceNormals returns a copy of the four outward face normals.
func (r *Rectangle) FaceNormals() [4]vector.Vector { return r.faceNormals }

// computeFaceNormals rebuilds every normal from the current vertices. A
// size far below the center's precision collapses an edge to a point; the
// normals are then left unchanged and ErrDegenerateShape is returned.
func (r *Rectangle) computeFaceNormals() error {
	var normals [4]vector.Vector
	for i := range normals {
		a := r.vertices[(i+1)%4]
		b := r.vertices[(i+2)%4]
		n, err := a.Sub(b).Normalize()
		if err != nil {
			return fmt.Errorf("%w: edge %d of %gx%g rectangle has zero length", ErrDegenerateShape, i, r.width, r.height)
		}
		normals[i] = n
	}
	r.faceNormals = normals
	return nil
}

// updateInertia stores the reciprocal of the moment of inertia.
func (r *Rectangle) updateInertia() {
	if r.invMass == 0 {
		r.inertia = 0
		return
	}
	mass := 1 / r.invMass
	r.inertia = 1 / (mass * (r.width*r.width + r.height*r.height) / 12)
}

// Move translates the rectangle by v.
func (r *Rectangle) Move(v vector.Vector) {
	for i := range r.vertices {
		r.vertices[i] = r.vertices[i].Add(v)
	}
	r.center = r.center.Add(v)
}

// Rotate turns the rectangle by angle radians about its center.
func (r *Rectangle) Rotate(angle float64) {
	r.angle += angle
	for i := range r.vertices {
		r.vertices[i] = r.vertices[i].Rotate(r.center, angle)
	}
	// Rotation preserves edge lengths, so the constructor's check still holds.
	_ = r.computeFaceNormals()
}

// Render draws the outline.
func (r *Rectangle) Render(s Surface) {
	v := r.vertices
	s.StrokePolygon(v[:])
}

// FindSupportPoint returns the vertex with the greatest positive projection
// onto dir, measured from ptOnEdge. It reports false when every vertex lies
// behind ptOnEdge along dir.
func (r *Rectangle) FindSupportPoint(dir, ptOnEdge vector.Vector) (Support, bool) {
	best := Support{Dist: math.Inf(-1)}
	found := false
	for _, v := range r.vertices {
		projection := v.Sub(ptOnEdge).Dot(dir)
		if projection > 0 && projection > best.Dist {
			best = Support{Point: v, Dist: projection}
			found = true
		}
	}
	return best, found
}

// FindAxisLeastPenetration tests each face normal of r as a separating axis
// against other. It stops at the first axis along which other has no support,
// which means the shapes are apart. Otherwise info receives the axis with
// the smallest penetration.
func (r *Rectangle) FindAxisLeastPenetration(other Polygon, info *CollisionInfo) bool {
	var best Support
	bestDist := math.Inf(1)
	bestIndex := 0

	for i, n := range r.faceNormals {
		sup, ok := other.FindSupportPoint(n.Scale(-1), r.vertices[i])
		if !ok {
			return false
		}
		if sup.Dist < bestDist {
			bestDist = sup.Dist
			bestIndex = i
			best = sup
		}
	}

	n := r.faceNormals[bestIndex]
	info.SetInfo(bestDist, n, best.Point.Add(n.Scale(bestDist)))
	return true
}

// CollisionTest dispatches on the concrete type of other.
func (r *Rectangle) CollisionTest(other Shape, info *CollisionInfo) bool {
	switch o := other.(type) {
	case *Circle:
		return r.CollideCircle(o, info)
	case Polygon:
		return collidePolygons(r, o, info)
	default:
		return false
	}
}

// collidePolygons runs the axis search from both sides and keeps the
// shallower result. Scratch results are local to the call.
func collidePolygons(a, b Polygon, info *CollisionInfo) bool {
	var fromA, fromB CollisionInfo

	if !a.FindAxisLeastPenetration(b, &fromA) {
		return false
	}
	if !b.FindAxisLeastPenetration(a, &fromB) {
		return false
	}

	if fromA.Depth < fromB.Depth {
		depthVec := fromA.Normal.Scale(fromA.Depth)
		info.SetInfo(fromA.Depth, fromA.Normal, fromA.Start.Sub(depthVec))
	} else {
		info.SetInfo(fromB.Depth, fromB.Normal.Scale(-1), fromB.Start)
	}
	return true
}

// CollideCircle classifies the circle center against the faces of r and
// resolves it as inside, corner or face contact.
func (r *Rectangle) CollideCircle(c *Circle, info *CollisionInfo) bool {
	center := c.Center()
	radius := c.Radius()

	inside := true
	bestDistance := math.Inf(-1)
	nearestEdge := 0
	for i := range r.vertices {
		projection := center.Sub(r.vertices[i]).Dot(r.faceNormals[i])
		if projection > 0 {
			bestDistance = projection
			nearestEdge = i
			inside = false
			break
		}
		if projection > bestDistance {
			bestDistance = projection
			nearestEdge = i
		}
	}

	if inside {
		n := r.faceNormals[nearestEdge]
		info.SetInfo(radius-bestDistance, n, center.Sub(n.Scale(radius)))
		return true
	}

	start := r.vertices[nearestEdge]
	end := r.vertices[(nearestEdge+1)%4]
	edge := end.Sub(start)

	// Corner region of the edge's start vertex.
	toCenter := center.Sub(start)
	if toCenter.Dot(edge) < 0 {
		return cornerContact(toCenter, center, radius, info)
	}

	// Corner region of the edge's end vertex.
	toCenter = center.Sub(end)
	if toCenter.Dot(edge.Scale(-1)) < 0 {
		return cornerContact(toCenter, center, radius, info)
	}

	// Face region.
	if bestDistance > radius {
		return false
	}
	n := r.faceNormals[nearestEdge]
	info.SetInfo(radius-bestDistance, n, center.Sub(n.Scale(radius)))
	return true
}

// cornerContact resolves a circle against a single vertex. toCenter runs
// from the vertex to the circle center and is never zero here because the
// caller only gets here with a strictly negative dot product.
func cornerContact(toCenter, center vector.Vector, radius float64, info *CollisionInfo) bool {
	dist := toCenter.Length()
	if dist > radius {
		return false
	}
	n := toCenter.Unit()
	info.SetInfo(radius-dist, n, center.Sub(n.Scale(radius)))
	return true
}
