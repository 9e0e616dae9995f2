package bluenoise

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SampleStats holds generic stats about a finished sample
type SampleStats struct {
	// Count of accepted points
	Count int

	// Density in points per unit of area
	Density float64

	// MeanSpacing is the mean distance from each point to its nearest
	// neighbour. Always >= the configured Radius
	MeanSpacing float64

	// SpacingStdDev is the std deviation of those nearest neighbour
	// distances. Low values indicate an even fill
	SpacingStdDev float64

	// Dropped counts points whose computed grid cell fell outside the
	// grid (float rounding at the exact region edge). Expected 0
	Dropped int
}

// Stats computes stats for a finished run, or nil before FindPoints.
func (s *Sampler) Stats() *SampleStats {
	if !s.done {
		return nil
	}

	stats := &SampleStats{
		Count:   len(s.points),
		Density: float64(len(s.points)) / (s.cfg.Width * s.cfg.Height),
		Dropped: s.dropped,
	}
	if len(s.points) < 2 {
		return stats
	}

	nearest := make([]float64, len(s.points))
	for i, p := range s.points {
		best := math.Inf(1)
		for j, q := range s.points {
			if i == j {
				continue
			}
			d := p.Dist(q)
			if d < best {
				best = d
			}
		}
		nearest[i] = best
	}
	stats.MeanSpacing, stats.SpacingStdDev = stat.MeanStdDev(nearest, nil)

	return stats
}
