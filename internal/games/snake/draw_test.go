package snake

import "testing"

type paintOp struct {
	cell  Cell
	paint Paint
}

type recordingCanvas struct {
	ops []paintOp
}

func (c *recordingCanvas) PaintCell(cell Cell, p Paint) {
	c.ops = append(c.ops, paintOp{cell, p})
}

func TestSnakeDrawOrder(t *testing.T) {
	s := newTestSnake(t)
	s.Grow()
	s.Grow()
	for range 3 {
		s.Advance()
	}
	// Body is now (19,12) (18,12) (17,12); (16,12) was vacated.

	var c recordingCanvas
	s.Draw(&c)

	want := []paintOp{
		{Cell{16, 12}, PaintBackground},
		{Cell{18, 12}, PaintSnakeBody},
		{Cell{17, 12}, PaintSnakeBody},
		{Cell{19, 12}, PaintSnakeHead},
	}
	if len(c.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", c.ops, want)
	}
	for i := range want {
		if c.ops[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, c.ops[i], want[i])
		}
	}
}

func TestAppleDraw(t *testing.T) {
	r := newTestRound(t, MustGrid(1, 4, 4), BoundaryWrap)

	var c recordingCanvas
	r.Apple().Draw(&c)
	if len(c.ops) != 1 || c.ops[0] != (paintOp{r.Apple().Position(), PaintApple}) {
		t.Errorf("ops = %v", c.ops)
	}

	r.apple.position = NoCell
	c.ops = nil
	r.Apple().Draw(&c)
	if len(c.ops) != 0 {
		t.Errorf("parked apple painted %v", c.ops)
	}
}

func TestRoundDrawablesPaintAppleLast(t *testing.T) {
	r := newTestRound(t, MustGrid(1, 4, 4), BoundaryWrap)

	var c recordingCanvas
	for _, d := range r.Drawables() {
		d.Draw(&c)
	}
	if len(c.ops) != 2 {
		t.Fatalf("ops = %v", c.ops)
	}
	if c.ops[0].paint != PaintSnakeHead || c.ops[1].paint != PaintApple {
		t.Errorf("paint order = %v", c.ops)
	}
}
