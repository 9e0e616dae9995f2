package bluenoise

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/bluenoise/internal/grid"
)

// Sampler fills a rectangular region with points that sit at least
// Config.Radius apart while leaving no large gaps - a blue noise
// distribution, handy for scattering vegetation / resources / whatever
// across an area without visible clumping or banding.
//
// We use dart throwing (Bridson); keep a frontier of "active" points,
// repeatedly propose candidates near a random active point & reject
// any candidate too close to an accepted point. A uniform grid with
// cells of Radius / sqrt(2) makes each rejection check a small fixed
// window rather than a scan of everything placed so far.
//
// A Sampler is single use: FindPoints consumes the frontier & further
// calls return the same result. It holds no locks - callers may run
// FindPoints on a worker goroutine but must not share one instance
// between goroutines.
type Sampler struct {
	cfg *Config
	rng Rand

	cellSize  float64
	grid      *grid.Grid
	frontier  []model2d.Coord
	neighbors []model2d.Coord

	// Seed the rng was built with (useful to reproduce a result
	// when the caller didn't set one)
	Seed int64

	done    bool
	points  []model2d.Coord
	dropped int
}

// New creates a Sampler for the configured region.
func New(cfg *Config) (*Sampler, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	cellSize := cfg.Radius / math.Sqrt2

	return &Sampler{
		cfg:      cfg,
		rng:      rng,
		cellSize: cellSize,
		grid: grid.New(
			int(math.Ceil(cfg.Width/cellSize)),
			int(math.Ceil(cfg.Height/cellSize)),
			cfg.Seamless,
		),
		frontier:  []model2d.Coord{},
		neighbors: []model2d.Coord{},
		Seed:      cfg.Seed,
	}, nil
}

// FindPoints runs the sampling loop & returns all accepted points in
// [0, Width) x [0, Height). Long running & CPU bound for small radii -
// callers wanting a responsive main loop should run this on a worker.
// Calling it again returns the first result.
func (s *Sampler) FindPoints() []model2d.Coord {
	if s.done {
		return s.points
	}
	s.done = true

	// seed the region with one random point. The grid is empty so
	// only contributed neighbour points can reject a draw; if they
	// crowd out every attempt there's nowhere legal to start & the
	// result is empty
	for k := 0; k < s.cfg.Attempts; k++ {
		seed := model2d.XY(
			s.rng.Float64()*s.cfg.Width,
			s.rng.Float64()*s.cfg.Height,
		)
		if !s.valid(seed) {
			continue
		}
		s.accept(seed)
		break
	}

	for len(s.frontier) > 0 {
		i := s.rng.Intn(len(s.frontier))
		pivot := s.frontier[i]

		found := false
		for k := 0; k < s.cfg.Attempts; k++ {
			// a random point in the annulus [Radius, 2*Radius) around
			// the pivot; closer is never valid, further leaves gaps
			angle := s.rng.Float64() * 2 * math.Pi
			dist := s.cfg.Radius * (1 + s.rng.Float64())

			candidate := model2d.XY(
				pivot.X+dist*math.Cos(angle),
				pivot.Y+dist*math.Sin(angle),
			)
			if !s.valid(candidate) {
				continue
			}

			s.accept(candidate)
			found = true
			break
		}

		if !found {
			// the pivot's neighbourhood is full, retire it.
			// The frontier is a set; order doesn't matter
			essentials.UnorderedDelete(&s.frontier, i)
		}
	}

	if s.dropped > 0 {
		// rounding at the exact region edge, not expected in practice
		log.Printf("bluenoise: dropped %d point(s) whose cell fell outside the grid", s.dropped)
	}

	s.points = s.grid.Points(true)
	return s.points
}

// accept stores p in the grid & adds it to the active frontier
func (s *Sampler) accept(p model2d.Coord) {
	if !s.grid.Set(p, s.cellSize) {
		s.dropped++
		return
	}
	s.frontier = append(s.frontier, p)
}

// valid returns if the candidate is in bounds & at least Radius away
// from every accepted point and every contributed neighbour point.
func (s *Sampler) valid(p model2d.Coord) bool {
	if p.X < 0 || p.X >= s.cfg.Width || p.Y < 0 || p.Y >= s.cfg.Height {
		return false
	}

	col, row := s.grid.CellIndex(p, s.cellSize)

	// with cells of Radius / sqrt(2) nothing outside the 5x5 window
	// around the candidate's cell can be within Radius of it
	ring := 0
	if s.grid.Bordered() {
		ring = 1
	}
	for c := maxint(col-2, -ring); c <= minint(col+2, s.grid.Cols()-1+ring); c++ {
		for r := maxint(row-2, -ring); r <= minint(row+2, s.grid.Rows()-1+ring); r++ {
			q, ok := s.grid.Get(c, r)
			if ok && q.Dist(p) < s.cfg.Radius {
				return false
			}
		}
	}

	for _, q := range s.neighbors {
		if q.Dist(p) < s.cfg.Radius {
			return false
		}
	}

	return true
}
