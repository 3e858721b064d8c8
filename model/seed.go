package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// NewRand returns a deterministic PCG source for seed, or a randomly seeded one when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Seed creates a grid with a quarter of its cells alive, chosen uniformly at random.
//
// Indices are drawn from [0, dimension²) and duplicates are redrawn until
// floor(dimension²/4) distinct cells are selected. All cells start newborn.
func Seed(dimension int, rng *rand.Rand) (*Grid, error) {
	if dimension <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[Seed] dimension: %d", dimension)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	var (
		cellCount = dimension * dimension
		target    = cellCount / 4
		selected  = make(map[int]struct{}, target)
	)
	for len(selected) < target {
		selected[rng.IntN(cellCount)] = struct{}{}
	}

	g := newGrid(dimension)
	for i := range g.cells {
		_, alive := selected[i]
		g.cells[i] = Cell{Alive: alive, Newborn: true}
	}
	return g, nil
}
