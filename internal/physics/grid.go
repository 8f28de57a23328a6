package physics

import (
	"math"
	"slices"

	"github.com/tomz197/satbox/internal/vector"
)

// SpatialGrid is a uniform grid over a wrapping world. Drivers use it as a
// broad phase: shapes are inserted by center and only shapes in the 3x3
// neighborhood of a cell are handed to the narrow phase.
//
// Cell size must be >= the largest distance at which two shapes can touch,
// i.e. twice the largest bounding radius, so that every candidate pair lies
// within the neighborhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       [][]Handle // reused between frames, reset to [:0]
}

// NewSpatialGrid creates a grid covering a worldW x worldH world.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(worldW/cellSize)), 1)
	rows := max(int(math.Ceil(worldH/cellSize)), 1)
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]Handle, cols*rows),
	}
}

// CellSize returns the edge length of one cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear empties every cell without releasing memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert files h under the cell containing p.
func (g *SpatialGrid) Insert(p vector.Vector, h Handle) {
	col, row := g.cellOf(p)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], h)
}

// QueryAround calls fn for each handle in the 3x3 neighborhood of the cell
// containing p, wrapping at the world edges. Returning true from fn stops
// the query.
func (g *SpatialGrid) QueryAround(p vector.Vector, fn func(h Handle) bool) {
	col, row := g.cellOf(p)

	// A grid narrower than three cells would visit the same cell twice.
	var seen [9]int
	n := 0

	for dr := -1; dr <= 1; dr++ {
		r := wrapIndex(row+dr, g.rows)
		for dc := -1; dc <= 1; dc++ {
			c := wrapIndex(col+dc, g.cols)
			idx := r*g.cols + c
			if slices.Contains(seen[:n], idx) {
				continue
			}
			seen[n] = idx
			n++

			for _, h := range g.cells[idx] {
				if fn(h) {
					return
				}
			}
		}
	}
}

// cellOf converts a world position to a cell, clamping to the grid.
func (g *SpatialGrid) cellOf(p vector.Vector) (col, row int) {
	col = min(max(int(p.X()*g.invCellSize), 0), g.cols-1)
	row = min(max(int(p.Y()*g.invCellSize), 0), g.rows-1)
	return col, row
}

func wrapIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}
	return i
}
