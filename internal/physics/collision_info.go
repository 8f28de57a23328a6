package physics

import "github.com/tomz197/satbox/internal/vector"

// CollisionInfo describes one contact between two shapes.
type CollisionInfo struct {
	Depth  float64       // Penetration depth, non-negative
	Normal vector.Vector // Unit normal, from the first shape toward the second
	Start  vector.Vector // Contact point
	End    vector.Vector // Start + Normal*Depth
}

// SetInfo records a contact.
func (c *CollisionInfo) SetInfo(depth float64, normal, start vector.Vector) {
	c.Depth = depth
	c.Normal = normal
	c.Start = start
	c.End = start.Add(normal.Scale(depth))
}

// ChangeDir flips the contact so it reads from the other shape's side.
func (c *CollisionInfo) ChangeDir() {
	c.Normal = c.Normal.Scale(-1)
	c.Start, c.End = c.End, c.Start
}

// Clear resets the contact to its zero value.
func (c *CollisionInfo) Clear() {
	*c = CollisionInfo{}
}
