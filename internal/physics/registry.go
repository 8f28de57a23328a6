package physics

// Handle identifies a shape within its registry. Handles stay valid when
// other shapes are removed.
type Handle int

// NoHandle is the handle of a shape that is not registered.
const NoHandle Handle = -1

// Registry is the ordered collection of every live shape in a simulation
// space. Shapes register themselves on construction.
//
// Slots are never reused: removing a shape leaves a hole so that every other
// handle keeps pointing at the same shape.
type Registry struct {
	slots []Shape
	live  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends s and returns its handle.
func (r *Registry) Register(s Shape) Handle {
	r.slots = append(r.slots, s)
	r.live++
	return Handle(len(r.slots) - 1)
}

// Remove drops the shape behind h. It returns false if h is unknown or the
// shape was already removed.
func (r *Registry) Remove(h Handle) bool {
	if !r.valid(h) || r.slots[h] == nil {
		return false
	}
	r.slots[h] = nil
	r.live--
	return true
}

// Get returns the shape behind h.
func (r *Registry) Get(h Handle) (Shape, bool) {
	if !r.valid(h) || r.slots[h] == nil {
		return nil, false
	}
	return r.slots[h], true
}

// Len returns the number of live shapes.
func (r *Registry) Len() int {
	return r.live
}

// Shapes returns the live shapes in insertion order.
func (r *Registry) Shapes() []Shape {
	out := make([]Shape, 0, r.live)
	for _, s := range r.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Each calls fn for every live shape in insertion order.
// If fn returns true, iteration stops early.
func (r *Registry) Each(fn func(h Handle, s Shape) bool) {
	for i, s := range r.slots {
		if s == nil {
			continue
		}
		if fn(Handle(i), s) {
			return
		}
	}
}

func (r *Registry) valid(h Handle) bool {
	return h >= 0 && int(h) < len(r.slots)
}
