package object

import (
	"sync"

	"github.com/tomz197/satbox/internal/draw"
	"github.com/tomz197/satbox/internal/physics"
	"github.com/tomz197/satbox/internal/vector"
)

// markerPool is a sync.Pool for reusing ContactMarker objects to reduce allocations.
var markerPool = sync.Pool{
	New: func() any {
		return &ContactMarker{}
	},
}

// minMarkerLength keeps zero-depth contacts visible.
const minMarkerLength = 1.0

// ContactMarker is a short-lived overlay showing where two shapes touch and
// along which normal.
type ContactMarker struct {
	Start       vector.Vector
	End         vector.Vector
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
}

// NewContactMarker takes a marker from the pool for the given contact.
func NewContactMarker(info physics.CollisionInfo, lifetime float64) *ContactMarker {
	m := markerPool.Get().(*ContactMarker)
	m.Start = info.Start
	m.End = info.End
	if info.Depth < minMarkerLength {
		m.End = info.Start.Add(info.Normal.Scale(minMarkerLength))
	}
	m.Lifetime = lifetime
	m.MaxLifetime = lifetime
	return m
}

// Release returns the marker to the pool for reuse.
func (m *ContactMarker) Release() {
	markerPool.Put(m)
}

// Update counts down the marker's lifetime.
func (m *ContactMarker) Update(ctx UpdateContext) (bool, error) {
	m.Lifetime -= ctx.Delta.Seconds()
	return m.Lifetime <= 0, nil
}

// Draw strokes the normal and shades the contact cell by remaining lifetime.
func (m *ContactMarker) Draw(ctx DrawContext) error {
	ctx.Canvas.StrokeLine(m.Start, m.End)
	if ctx.Writer == nil || m.MaxLifetime <= 0 {
		return nil
	}
	col, row := ctx.Canvas.LogicalToTerminal(m.Start.X(), m.Start.Y())
	col += ctx.Canvas.OffsetCol()
	row += ctx.Canvas.OffsetRow()
	draw.DrawChar(ctx.Writer, col, row, draw.ShadeLevel(m.Lifetime/m.MaxLifetime))
	return nil
}
