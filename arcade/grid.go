package arcade

import "math"

const gridCellSize = 96.0 // ~2x the largest asteroid radius

type cellKey struct{ cx, cy int }

// spatialGrid is a broad-phase index over page coordinates. Cells are keyed
// by coordinate rather than stored in a fixed array because the page has no
// fixed size and entities spawn off-screen at negative positions.
type spatialGrid struct {
	size  float64
	cells map[cellKey][]int
}

func newSpatialGrid(size float64) *spatialGrid {
	return &spatialGrid{size: size, cells: make(map[cellKey][]int)}
}

// Clear drops every entry
func (g *spatialGrid) Clear() {
	clear(g.cells)
}

func (g *spatialGrid) cell(v float64) int {
	return int(math.Floor(v / g.size))
}

// InsertCircle adds idx to all cells overlapping the circle's bounding box
func (g *spatialGrid) InsertCircle(x, y, radius float64, idx int) {
	minCX, maxCX := g.cell(x-radius), g.cell(x+radius)
	minCY, maxCY := g.cell(y-radius), g.cell(y+radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			k := cellKey{cx, cy}
			g.cells[k] = append(g.cells[k], idx)
		}
	}
}

// First returns the lowest index near the circle for which hit reports true,
// or -1. Lowest-index order makes the result match a linear scan.
func (g *spatialGrid) First(x, y, radius float64, hit func(idx int) bool) int {
	best := -1
	minCX, maxCX := g.cell(x-radius), g.cell(x+radius)
	minCY, maxCY := g.cell(y-radius), g.cell(y+radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for _, idx := range g.cells[cellKey{cx, cy}] {
				if (best < 0 || idx < best) && hit(idx) {
					best = idx
				}
			}
		}
	}
	return best
}
