package snake

// Paint is what a shell should draw in a cell.
type Paint int

const (
	PaintBackground Paint = iota
	PaintSnakeBody
	PaintSnakeHead
	PaintApple
)

func (p Paint) String() string {
	switch p {
	case PaintBackground:
		return "background"
	case PaintSnakeBody:
		return "body"
	case PaintSnakeHead:
		return "head"
	case PaintApple:
		return "apple"
	default:
		return "unknown"
	}
}

// Canvas is implemented by the shells. Cells are in board coordinates;
// converting them to screen units is the canvas's job (see Grid.CellToPixel).
type Canvas interface {
	PaintCell(c Cell, p Paint)
}

// Drawable is anything that can paint itself onto a Canvas.
type Drawable interface {
	Draw(dst Canvas)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Apple)(nil)
)

// Draw erases the vacated tail cell, then paints the body and finally the
// head so it ends up on top.
func (s *Snake) Draw(dst Canvas) {
	if c, ok := s.LastVacatedCell(); ok {
		dst.PaintCell(c, PaintBackground)
	}
	for _, seg := range s.body[1:] {
		dst.PaintCell(seg, PaintSnakeBody)
	}
	dst.PaintCell(s.body[0], PaintSnakeHead)
}

// Draw paints the apple. A parked apple draws nothing.
func (a *Apple) Draw(dst Canvas) {
	if !a.grid.InBounds(a.position) {
		return
	}
	dst.PaintCell(a.position, PaintApple)
}
