package snake

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board limits accepted by NewGrid.
const (
	MaxGridDimension = 1024
	MaxCellSize      = 256
)

// ErrInvalidGrid is returned by NewGrid for unusable board dimensions.
var ErrInvalidGrid = errors.New("snake: invalid grid")

// Cell is a position on the board in cell coordinates.
// X increases to the right, Y increases downward.
type Cell struct {
	X, Y int
}

// NoCell marks "no position". It is never inside a grid.
var NoCell = Cell{X: -1, Y: -1}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// CellSet is a set of board cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Grid is the immutable coordinate space of the board.
//
// Positions are either cell coordinates (0 <= x < width, 0 <= y < height) or
// pixel coordinates that are multiples of the cell size. CellToPixel and
// PixelToCell are the only conversions between the two.
type Grid struct {
	cellSize int
	width    int
	height   int
}

// NewGrid validates and creates a grid of widthCells x heightCells cells,
// each cellSize drawing units square.
func NewGrid(cellSize, widthCells, heightCells int) (Grid, error) {
	switch {
	case cellSize <= 0 || cellSize > MaxCellSize:
		return Grid{}, fmt.Errorf("%w: cell size %d out of range 1..%d", ErrInvalidGrid, cellSize, MaxCellSize)
	case widthCells <= 0 || widthCells > MaxGridDimension:
		return Grid{}, fmt.Errorf("%w: width %d out of range 1..%d", ErrInvalidGrid, widthCells, MaxGridDimension)
	case heightCells <= 0 || heightCells > MaxGridDimension:
		return Grid{}, fmt.Errorf("%w: height %d out of range 1..%d", ErrInvalidGrid, heightCells, MaxGridDimension)
	case widthCells*heightCells < 2:
		return Grid{}, fmt.Errorf("%w: board needs at least 2 cells, got %dx%d", ErrInvalidGrid, widthCells, heightCells)
	}
	return Grid{cellSize: cellSize, width: widthCells, height: heightCells}, nil
}

// MustGrid is NewGrid for dimensions known to be valid. It panics otherwise.
func MustGrid(cellSize, widthCells, heightCells int) Grid {
	g, err := NewGrid(cellSize, widthCells, heightCells)
	if err != nil {
		panic(err)
	}
	return g
}

// CellSize returns the side of one cell in drawing units.
func (g Grid) CellSize() int { return g.cellSize }

// Width returns the board width in cells.
func (g Grid) Width() int { return g.width }

// Height returns the board height in cells.
func (g Grid) Height() int { return g.height }

// Area returns the number of cells on the board.
func (g Grid) Area() int { return g.width * g.height }

// PixelWidth returns the board width in drawing units.
func (g Grid) PixelWidth() int { return g.width * g.cellSize }

// PixelHeight returns the board height in drawing units.
func (g Grid) PixelHeight() int { return g.height * g.cellSize }

// CellToPixel returns the rectangle covered by a cell, in drawing units.
func (g Grid) CellToPixel(c Cell) core.Rect {
	return core.NewRect(c.X*g.cellSize, c.Y*g.cellSize, g.cellSize, g.cellSize)
}

// PixelToCell returns the cell containing the pixel (x, y).
func (g Grid) PixelToCell(x, y int) Cell {
	return Cell{X: floorDiv(x, g.cellSize), Y: floorDiv(y, g.cellSize)}
}

// InBounds reports whether the cell lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Center returns the middle cell, rounding toward the bottom-right.
func (g Grid) Center() Cell {
	return Cell{X: g.width / 2, Y: g.height / 2}
}

// Wrap maps any cell back onto the board as if its edges were joined.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.width), Y: mod(c.Y, g.height)}
}

// RandomCell returns a cell drawn uniformly from the whole board.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	n := rng.Intn(g.Area())
	return Cell{X: n % g.width, Y: n / g.width}
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}
