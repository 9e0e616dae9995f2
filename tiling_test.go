package bluenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTilingValidates(t *testing.T) {
	t.Parallel()

	cfg := &Config{Width: 40, Height: 40, Radius: 6}

	_, err := NewTiling(cfg, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidLattice)

	_, err = NewTiling(cfg, 2, -1)
	assert.ErrorIs(t, err, ErrInvalidLattice)

	_, err = NewTiling(&Config{Width: 40, Height: 40}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidRadius)
}

func TestTilingSeparationAcrossLattice(t *testing.T) {
	t.Parallel()

	cfg := &Config{Width: 40, Height: 40, Radius: 6, Seed: 11}
	tiles, err := NewTiling(cfg, 3, 2)
	require.NoError(t, err)

	points, err := tiles.FindPoints()
	require.NoError(t, err)
	require.NotEmpty(t, points)

	// lattice wide bounds
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 120.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 80.0)
	}

	// the separation invariant must hold across tile joins as if the
	// lattice were one big region
	for i, p := range points {
		for _, q := range points[i+1:] {
			assert.GreaterOrEqual(t, p.Dist(q), 6.0-1e-9)
		}
	}
}

func TestTilingDeterministic(t *testing.T) {
	t.Parallel()

	run := func() []float64 {
		tiles, err := NewTiling(&Config{Width: 30, Height: 30, Radius: 5, Seed: 21}, 2, 2)
		require.NoError(t, err)
		points, err := tiles.FindPoints()
		require.NoError(t, err)

		flat := []float64{}
		for _, p := range points {
			flat = append(flat, p.X, p.Y)
		}
		return flat
	}

	assert.Equal(t, run(), run())
}

func TestTilingSingleUse(t *testing.T) {
	t.Parallel()

	tiles, err := NewTiling(&Config{Width: 30, Height: 30, Radius: 5, Seed: 2}, 2, 1)
	require.NoError(t, err)

	first, err := tiles.FindPoints()
	require.NoError(t, err)
	second, err := tiles.FindPoints()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTilingSamplerAccessor(t *testing.T) {
	t.Parallel()

	tiles, err := NewTiling(&Config{Width: 30, Height: 30, Radius: 5, Seed: 2}, 2, 1)
	require.NoError(t, err)

	assert.Nil(t, tiles.Sampler(0, 0)) // not sampled yet
	assert.Nil(t, tiles.Sampler(-1, 0))
	assert.Nil(t, tiles.Sampler(2, 0))

	_, err = tiles.FindPoints()
	require.NoError(t, err)

	s := tiles.Sampler(1, 0)
	require.NotNil(t, s)
	assert.NotNil(t, s.Stats())
}

func TestTilingSingleTileMatchesSampler(t *testing.T) {
	t.Parallel()

	// a 1x1 lattice is just one seamless sampler
	tiles, err := NewTiling(&Config{Width: 50, Height: 50, Radius: 7, Seed: 15}, 1, 1)
	require.NoError(t, err)
	tiled, err := tiles.FindPoints()
	require.NoError(t, err)

	s, err := New(&Config{Width: 50, Height: 50, Radius: 7, Seed: 15, Seamless: true})
	require.NoError(t, err)

	assert.Equal(t, s.FindPoints(), tiled)
}
