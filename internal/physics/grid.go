package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection in the
// wrapping world. Items are inserted by position and index; nearby items are
// then found through a 3x3 neighbourhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding items so that all potential collisions are found within
// the 3x3 neighbourhood.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a cell.
// The slice is reused between ticks (reset to [:0]).
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering the world bounds.
// cellSize should be >= the maximum collision distance of the inserted items.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	span := WorldMax - WorldMin
	n := int(math.Ceil(span / cellSize))
	if n < 1 {
		n = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        n,
		rows:        n,
		cells:       make([]gridCell, n*n),
	}
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(pos Vec2, index int) {
	col, row := g.posToCell(pos)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 neighbourhood around
// pos, wrapping at the world edges. Indices come out in cell order, not
// insertion order. If fn returns true, iteration stops.
func (g *SpatialGrid) QueryAround(pos Vec2, fn func(index int) bool) {
	col, row := g.posToCell(pos)

	// Small grids would visit the same cell more than once.
	seen := [9]int{}
	nSeen := 0

	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		rowOffset := r * g.cols

	cols:
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			cell := rowOffset + c
			for i := 0; i < nSeen; i++ {
				if seen[i] == cell {
					continue cols
				}
			}
			seen[nSeen] = cell
			nSeen++

			for _, itemIdx := range g.cells[cell].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates,
// clamping to the valid range to absorb floating point edge cases.
func (g *SpatialGrid) posToCell(pos Vec2) (col, row int) {
	col = clampCell(int((pos.X-WorldMin)*g.invCellSize), g.cols)
	row = clampCell(int((pos.Y-WorldMin)*g.invCellSize), g.rows)
	return col, row
}

func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
