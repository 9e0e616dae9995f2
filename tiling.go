package bluenoise

import (
	"fmt"
	"time"

	"github.com/unixpickle/model3d/model2d"
)

var (
	// ErrInvalidLattice implies a tiling was asked for with no tiles
	ErrInvalidLattice = fmt.Errorf("lattice cols & rows must be positive")
)

// Tiling samples a cols x rows lattice of equally sized regions, seam
// stitching each tile against its already sampled neighbours so the
// combined distribution looks like one large sample - no voids or
// clusters along tile joins.
//
// The given Config describes a single tile; tiles are sampled row by
// row, each one receiving the edge points of its west, north-west,
// north & north-east neighbours before it runs. Per tile rngs are
// seeded from Config.Seed plus the tile index (a caller supplied
// Config.Rand is ignored here, seeds keep tiles reproducible
// independent of each other).
type Tiling struct {
	cfg  *Config
	cols int
	rows int

	samplers []*Sampler
	points   []model2d.Coord
	done     bool
}

// NewTiling creates a Tiling of cols x rows regions, each sized &
// filled per cfg.
func NewTiling(cfg *Config, cols, rows int) (*Tiling, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidLattice, cols, rows)
	}

	err := cfg.validate()
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Seamless = true

	return &Tiling{
		cfg:      cfg,
		cols:     cols,
		rows:     rows,
		samplers: make([]*Sampler, cols*rows),
	}, nil
}

// neighbour offsets (in tiles) that are already sampled when tiles are
// visited row by row, left to right
var stitchOrder = [][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

// FindPoints samples every tile & returns the union of their points in
// lattice wide coordinates: [0, cols*Width) x [0, rows*Height).
// Calling it again returns the first result.
func (t *Tiling) FindPoints() ([]model2d.Coord, error) {
	if t.done {
		return t.points, nil
	}
	t.done = true

	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			idx := row*t.cols + col

			cfg := *t.cfg
			cfg.Rand = nil
			cfg.Seed = t.cfg.Seed + int64(idx)

			s, err := New(&cfg)
			if err != nil {
				return nil, err
			}

			for _, d := range stitchOrder {
				nc, nr := col+d[0], row+d[1]
				if nc < 0 || nc >= t.cols || nr < 0 {
					continue
				}
				prev := t.samplers[nr*t.cols+nc]
				s.ContributeNeighborPoints(prev.ExtractEdgePoints(), model2d.XY(
					float64(d[0])*t.cfg.Width,
					float64(d[1])*t.cfg.Height,
				))
			}

			origin := model2d.XY(float64(col)*t.cfg.Width, float64(row)*t.cfg.Height)
			for _, p := range s.FindPoints() {
				t.points = append(t.points, p.Add(origin))
			}

			t.samplers[idx] = s
		}
	}

	return t.points, nil
}

// Sampler returns the (finished) sampler for tile (col, row), or nil
// if FindPoints hasn't run / the tile is out of range.
func (t *Tiling) Sampler(col, row int) *Sampler {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return nil
	}
	return t.samplers[row*t.cols+col]
}
