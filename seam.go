package bluenoise

import (
	"github.com/unixpickle/model3d/model2d"
)

// edgeDepth is how many grid cells from the region edge a point is
// still handed to neighbouring regions. Any point within Radius of an
// edge sits at most ceil(Radius/cell) + 1 = 3 cells in (the +1 covers
// the partial cell ceil() pads the grid with), so a 3 cell band holds
// everything a neighbour's candidate could possibly conflict with.
const edgeDepth = 3

// ContributeNeighborPoints records points accepted by a neighbouring
// region so our own placement keeps clear of them across the shared
// edge. Each point is in the *neighbour's* coordinate space; offset is
// the neighbour's origin minus ours & is added to translate them here.
//
// Must be called before FindPoints - neighbour points are only
// consulted while candidates are being validated, so contributions
// made after the run have no effect (and are ignored).
func (s *Sampler) ContributeNeighborPoints(points []model2d.Coord, offset model2d.Coord) {
	if s.done {
		return
	}

	for _, p := range points {
		q := p.Add(offset)

		// anything more than Radius outside our region can never
		// conflict with an in-bounds candidate
		if q.X < -s.cfg.Radius || q.X >= s.cfg.Width+s.cfg.Radius ||
			q.Y < -s.cfg.Radius || q.Y >= s.cfg.Height+s.cfg.Radius {
			continue
		}
		s.neighbors = append(s.neighbors, q)
	}
}

// ExtractEdgePoints returns the accepted points close enough to the
// region edge to matter to a neighbouring region. A sampler for an
// adjacent region should receive these via ContributeNeighborPoints
// (with the matching offset) *before* it runs.
//
// This handoff is one-directional; we don't revalidate our own points
// against neighbours contributed after our run. Returns nothing until
// FindPoints has been called.
func (s *Sampler) ExtractEdgePoints() []model2d.Coord {
	if !s.done {
		return []model2d.Coord{}
	}
	return s.grid.EdgePoints(edgeDepth)
}
