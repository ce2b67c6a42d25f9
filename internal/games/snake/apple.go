package snake

import "golang.org/x/exp/rand"

// maxRandomPlacements bounds the random draws in Relocate before it falls
// back to scanning the board for free cells.
const maxRandomPlacements = 64

// Apple is the single piece of food on the board.
type Apple struct {
	grid     Grid
	rng      *rand.Rand
	position Cell
}

// NewApple places an apple on a random cell of grid.
func NewApple(grid Grid, rng *rand.Rand) *Apple {
	return &Apple{
		grid:     grid,
		rng:      rng,
		position: grid.RandomCell(rng),
	}
}

// Position returns the apple's cell. It is NoCell when the board was full
// at the last relocation.
func (a *Apple) Position() Cell {
	return a.position
}

// Relocate moves the apple to a random cell not in occupied and returns it.
// Random draws are retried a bounded number of times; after that a free cell
// is picked from a full scan of the board. With no free cell left the apple
// is parked at NoCell.
func (a *Apple) Relocate(occupied CellSet) Cell {
	for range maxRandomPlacements {
		c := a.grid.RandomCell(a.rng)
		if !occupied.Has(c) {
			a.position = c
			return c
		}
	}

	free := make([]Cell, 0, max(a.grid.Area()-len(occupied), 0))
	for _, c := range a.grid.Cells() {
		if !occupied.Has(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		a.position = NoCell
		return NoCell
	}

	a.position = free[a.rng.Intn(len(free))]
	return a.position
}
