package snake

// Snake is an ordered body of cells, head first, together with its movement
// state. It knows nothing about apples; the Round decides when it grows.
type Snake struct {
	grid Grid

	body         []Cell // Head at index 0
	direction    Direction
	pending      Direction // DirNone when no change is requested
	targetLength int

	lastVacated Cell
	vacated     bool
}

// NewSnake creates a length-1 snake at the centre of the grid, heading right.
func NewSnake(grid Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// Reset restores the initial state: one centre cell, heading right,
// no pending direction, target length 1.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], s.grid.Center())
	s.direction = DirRight
	s.pending = DirNone
	s.targetLength = 1
	s.lastVacated = NoCell
	s.vacated = false
}

// SetPendingDirection records d as the direction for the next move.
// The exact opposite of the current direction is ignored, as is anything
// that is not one of the four directions.
func (s *Snake) SetPendingDirection(d Direction) {
	if !d.Valid() || d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Advance runs one tick of movement: it applies the pending direction, then
// moves the head one cell and drops the tail unless the snake is still
// growing. Collisions are not checked here.
func (s *Snake) Advance() {
	if s.pending != DirNone {
		s.direction = s.pending
		s.pending = DirNone
	}

	newHead := s.body[0].Step(s.direction)
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	s.vacated = false
	s.lastVacated = NoCell
	if len(s.body) > s.targetLength {
		s.lastVacated = s.body[len(s.body)-1]
		s.vacated = true
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow raises the target length by one. The extra segment appears on the
// next Advance, which keeps the tail in place.
func (s *Snake) Grow() {
	s.targetLength++
}

// CheckSelfCollision reports whether the head shares a cell with any other
// segment. Call it after Advance.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// CheckBoundaryCollision reports whether the head lies outside grid.
func (s *Snake) CheckBoundaryCollision(grid Grid) bool {
	return !grid.InBounds(s.body[0])
}

// WrapHead moves an off-board head to the opposite edge of grid.
func (s *Snake) WrapHead(grid Grid) {
	s.body[0] = grid.Wrap(s.body[0])
}

// HeadPosition returns the head cell.
func (s *Snake) HeadPosition() Cell {
	return s.body[0]
}

// BodyCells returns a copy of the body, head first.
func (s *Snake) BodyCells() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// LastVacatedCell returns the tail cell dropped by the latest Advance.
// ok is false when the last move did not drop a tail.
func (s *Snake) LastVacatedCell() (c Cell, ok bool) {
	return s.lastVacated, s.vacated
}

// Occupied returns the body as a set.
func (s *Snake) Occupied() CellSet {
	return NewCellSet(s.body...)
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Length returns the current number of segments.
func (s *Snake) Length() int { return len(s.body) }

// TargetLength returns the length the body converges to.
func (s *Snake) TargetLength() int { return s.targetLength }

// Direction returns the direction applied on the next move.
func (s *Snake) Direction() Direction { return s.direction }

// PendingDirection returns the requested but not yet applied direction.
func (s *Snake) PendingDirection() Direction { return s.pending }
