package bluenoise

import (
	"fmt"
)

const (
	// DefaultAttempts is used when Config.Attempts isn't set.
	// Higher values pack points a little tighter at the cost of speed.
	DefaultAttempts = 64
)

var (
	// ErrInvalidRegion implies the configured width / height can't hold points
	ErrInvalidRegion = fmt.Errorf("region width & height must be positive")

	// ErrInvalidRadius implies the configured min separation is degenerate
	ErrInvalidRadius = fmt.Errorf("separation radius must be positive")
)

// Config holds configuration for a single Sampler.
// Width, Height & Radius are required, everything else has workable
// defaults.
type Config struct {
	// Width / Height of the region to fill, required.
	// Points are returned in [0, Width) x [0, Height), the region's
	// own coordinate space - translating them into world space is up
	// to the caller.
	Width  float64
	Height float64

	// Radius is the minimum separation between any two points, required.
	// This is the only density control; expect very roughly
	// Width*Height / (pi * (Radius/2)^2) points.
	Radius float64

	// Attempts per active point before it's retired (DefaultAttempts if unset).
	// Trades packing quality for speed.
	Attempts int

	// Seamless reserves a one-cell bookkeeping ring around the grid.
	// Set it when this region takes part in seam stitching (see
	// ContributeNeighborPoints / ExtractEdgePoints); Tiling sets it
	// for you.
	Seamless bool

	// Seed for rng (random seed chosen if not set).
	Seed int64

	// Rand overrides the internal rng entirely (Seed is then ignored).
	// Useful for tests / sharing a deterministic stream with other
	// generation steps. Must not be shared with another running Sampler.
	Rand Rand
}

// validate checks required settings & fills in defaults.
func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidRegion, c.Width, c.Height)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, c.Radius)
	}
	if c.Attempts < 1 {
		c.Attempts = DefaultAttempts
	}
	return nil
}
