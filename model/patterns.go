package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Patterns maps a pattern name to its live cells as {row, col} offsets from the top-left corner
var Patterns = map[string][][2]int{
	// moves down and to the right
	"glider": {
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	},
	"blinker": {
		{0, 0}, {0, 1}, {0, 2},
	},
	"block": {
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	},
}

// PatternNames returns the known pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternIndices returns the cell indices of the named pattern placed with its corner at (row, col).
// The whole pattern must fit on the grid.
func (g *Grid) PatternIndices(name string, row, col int) ([]int, error) {
	offsets, ok := Patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternIndices] name: %q", name)
	}

	indices := make([]int, 0, len(offsets))
	for _, off := range offsets {
		i, err := g.Index(row+off[0], col+off[1])
		if err != nil {
			return nil, errors.Wrapf(err, "[PatternIndices] %s does not fit at (%d, %d)", name, row, col)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
