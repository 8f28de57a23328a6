package physics

// Collide runs the narrow-phase test of a against b.
// On true, info.Normal points from a toward b.
func Collide(a, b Shape, info *CollisionInfo) bool {
	return a.CollisionTest(b, info)
}
