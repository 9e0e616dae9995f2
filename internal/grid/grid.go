package grid

import (
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/model3d/model2d"
)

// Grid is a fixed size 2d lookup structure holding at most one point
// per cell. With a cell edge of radius / sqrt(2) two points in the same
// cell are always within `radius` of each other, so one is enough.
//
// Cells are addressed by (col, row) where col 0, row 0 is the cell
// covering the region origin. A grid built with `border` keeps a one
// cell ring around the addressable area; points whose computed index
// falls exactly on the region edge (float rounding) land in the ring
// rather than being thrown away.
type Grid struct {
	cols   int // addressable columns, not counting any border ring
	rows   int
	border int // 0 or 1

	cells    []model2d.Coord
	occupied bitmap.Bitmap
}

// New allocates a cols x rows grid, all cells empty.
// If border is true a one cell ring is reserved on all sides & stored
// points are offset by +1 cell in each axis.
func New(cols, rows int, border bool) *Grid {
	b := 0
	if border {
		b = 1
	}
	size := (cols + 2*b) * (rows + 2*b)
	return &Grid{
		cols:     cols,
		rows:     rows,
		border:   b,
		cells:    make([]model2d.Coord, size),
		occupied: bitmap.New(size),
	}
}

// Cols returns the number of addressable columns
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of addressable rows
func (g *Grid) Rows() int {
	return g.rows
}

// Bordered returns if this grid reserves an edge ring
func (g *Grid) Bordered() bool {
	return g.border == 1
}

// index maps a (col, row) to an offset in our backing arrays.
// Nb. when bordered, col / row may be -1 or cols / rows (ring cells).
func (g *Grid) index(col, row int) int {
	return (col+g.border)*(g.rows+2*g.border) + row + g.border
}

// CellIndex returns the cell owning the given point
func (g *Grid) CellIndex(p model2d.Coord, cellSize float64) (int, int) {
	return int(math.Floor(p.X / cellSize)), int(math.Floor(p.Y / cellSize))
}

// Set stores p in the cell owning it. Returns false if the computed
// cell falls outside the grid (including the ring, if any) - the point
// is dropped, the caller decides whether that's worth a diagnostic.
// We never overwrite; a second point landing in an occupied cell is
// redundant by construction & also dropped.
func (g *Grid) Set(p model2d.Coord, cellSize float64) bool {
	col, row := g.CellIndex(p, cellSize)
	if col < -g.border || col >= g.cols+g.border || row < -g.border || row >= g.rows+g.border {
		return false
	}
	i := g.index(col, row)
	if g.occupied.Get(i) {
		return false
	}
	g.cells[i] = p
	g.occupied.Set(i, true)
	return true
}

// Get returns the cell contents & whether the cell holds a point.
// Callers are expected to pass (col, row) within the addressable range
// (plus the ring when bordered); we don't re-check.
func (g *Grid) Get(col, row int) (model2d.Coord, bool) {
	i := g.index(col, row)
	return g.cells[i], g.occupied.Get(i)
}

// Len returns how many points the grid holds
func (g *Grid) Len() int {
	count := 0
	for i := 0; i < len(g.cells); i++ {
		if g.occupied.Get(i) {
			count++
		}
	}
	return count
}

// Points flattens all cells column-major into a list of points.
// Empty cells are omitted when skipEmpty is set (otherwise they yield
// zero coords). The order is deterministic but carries no meaning -
// treat the result as a set.
func (g *Grid) Points(skipEmpty bool) []model2d.Coord {
	points := []model2d.Coord{}
	for col := -g.border; col < g.cols+g.border; col++ {
		for row := -g.border; row < g.rows+g.border; row++ {
			p, ok := g.Get(col, row)
			if !ok && skipEmpty {
				continue
			}
			points = append(points, p)
		}
	}
	return points
}

// EdgePoints returns stored points within `depth` cells of any side.
// Ring cells (when bordered) always count as edge.
func (g *Grid) EdgePoints(depth int) []model2d.Coord {
	points := []model2d.Coord{}
	for col := -g.border; col < g.cols+g.border; col++ {
		for row := -g.border; row < g.rows+g.border; row++ {
			if col >= depth && col < g.cols-depth && row >= depth && row < g.rows-depth {
				continue
			}
			p, ok := g.Get(col, row)
			if !ok {
				continue
			}
			points = append(points, p)
		}
	}
	return points
}
