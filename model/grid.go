package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a fixed square board stored as a flat row-major slice.
//
// A Grid is never modified once it has been handed out: Toggle and Step build
// a new Grid, so older references stay valid and unchanged.
type Grid struct {
	dimension int
	cells     []Cell
}

// NewGrid creates a grid of dimension*dimension dead cells
func NewGrid(dimension int) (*Grid, error) {
	if dimension <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] dimension: %d", dimension)
	}
	return newGrid(dimension), nil
}

func newGrid(dimension int) *Grid {
	return &Grid{
		dimension: dimension,
		cells:     make([]Cell, dimension*dimension),
	}
}

// NewGridFromAlive creates a grid with only the given indices alive and newborn
func NewGridFromAlive(dimension int, alive ...int) (*Grid, error) {
	g, err := NewGrid(dimension)
	if err != nil {
		return nil, err
	}
	if g, err = g.WithAlive(alive...); err != nil {
		return nil, errors.Wrap(err, "[NewGridFromAlive]")
	}
	return g, nil
}

// Clear returns a grid of dimension*dimension dead cells
func Clear(dimension int) (*Grid, error) {
	g, err := NewGrid(dimension)
	if err != nil {
		return nil, errors.Wrap(err, "[Clear]")
	}
	return g, nil
}

// GetDimension returns the side length of the grid
func (g *Grid) GetDimension() int {
	return g.dimension
}

// Len returns the number of cells, always dimension*dimension
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index converts a row and column into a cell index
func (g *Grid) Index(row, col int) (int, error) {
	if row < 0 || row >= g.dimension || col < 0 || col >= g.dimension {
		return 0, errors.Wrapf(ErrInvalidIndex, "[Index] row: %d, col: %d", row, col)
	}
	return row*g.dimension + col, nil
}

func (g *Grid) checkIndex(index int) error {
	if index < 0 || index >= len(g.cells) {
		return errors.Wrapf(ErrInvalidIndex, "index %d not in [0, %d)", index, len(g.cells))
	}
	return nil
}

// Cell returns the cell at index
func (g *Grid) Cell(index int) (Cell, error) {
	if err := g.checkIndex(index); err != nil {
		return Cell{}, errors.Wrap(err, "[Cell]")
	}
	return g.cells[index], nil
}

// Cells returns a copy of all cells in row-major order
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Toggle returns a copy of the grid with the cell at index flipped
func (g *Grid) Toggle(index int) (*Grid, error) {
	if err := g.checkIndex(index); err != nil {
		return nil, errors.Wrap(err, "[Toggle]")
	}

	next := &Grid{dimension: g.dimension, cells: g.Cells()}
	if next.cells[index].Alive {
		next.cells[index] = Cell{}
	} else {
		next.cells[index] = Cell{Alive: true, Newborn: true}
	}
	return next, nil
}

// WithAlive returns a copy of the grid with the given cells alive and newborn.
// Cells that are already alive are left as they are. Nothing changes if any index is invalid.
func (g *Grid) WithAlive(indices ...int) (*Grid, error) {
	for _, i := range indices {
		if err := g.checkIndex(i); err != nil {
			return nil, errors.Wrap(err, "[WithAlive]")
		}
	}

	next := &Grid{dimension: g.dimension, cells: g.Cells()}
	for _, i := range indices {
		if !next.cells[i].Alive {
			next.cells[i] = Cell{Alive: true, Newborn: true}
		}
	}
	return next, nil
}

// CountNeighbors counts living neighbors of the cell at index.
// The board does not wrap: edge and corner cells simply have fewer neighbors.
func (g *Grid) CountNeighbors(index int) int {
	var (
		row   = index / g.dimension
		col   = index % g.dimension
		north = row > 0
		south = row < g.dimension-1
		west  = col > 0
		east  = col < g.dimension-1
		count = 0
	)

	alive := func(ok bool, r, c int) {
		if ok && g.cells[r*g.dimension+c].Alive {
			count++
		}
	}

	alive(north, row-1, col)
	alive(north && east, row-1, col+1)
	alive(east, row, col+1)
	alive(south && east, row+1, col+1)
	alive(south, row+1, col)
	alive(south && west, row+1, col-1)
	alive(west, row, col-1)
	alive(north && west, row-1, col-1)

	return count
}

// Step computes the next generation into a new grid.
// Every cell is evaluated against the receiver only, so updates are simultaneous.
func (g *Grid) Step() *Grid {
	next := newGrid(g.dimension)
	for i, cell := range g.cells {
		alive, newborn := rules.NextCell(cell.Alive, g.CountNeighbors(i))
		next.cells[i] = Cell{Alive: alive, Newborn: newborn}
	}
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, cell := range g.cells {
		if cell.Alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of which cells are alive
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		if cell.Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
