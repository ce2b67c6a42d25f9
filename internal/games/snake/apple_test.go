package snake

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRelocateAvoidsOccupied(t *testing.T) {
	g := MustGrid(1, 8, 8)
	rng := rand.New(rand.NewSource(99))
	a := NewApple(g, rng)

	// Occupy everything except the last row.
	var cells []Cell
	for _, c := range g.Cells() {
		if c.Y < 7 {
			cells = append(cells, c)
		}
	}
	occupied := NewCellSet(cells...)

	for i := 0; i < 200; i++ {
		got := a.Relocate(occupied)
		if occupied.Has(got) {
			t.Fatalf("apple placed on occupied cell %v", got)
		}
		if !g.InBounds(got) {
			t.Fatalf("apple placed outside board at %v", got)
		}
		if a.Position() != got {
			t.Fatalf("Position() = %v, Relocate returned %v", a.Position(), got)
		}
	}
}

func TestRelocateSingleFreeCell(t *testing.T) {
	g := MustGrid(1, 6, 6)
	a := NewApple(g, rand.New(rand.NewSource(3)))

	free := Cell{5, 5}
	var cells []Cell
	for _, c := range g.Cells() {
		if c != free {
			cells = append(cells, c)
		}
	}

	if got := a.Relocate(NewCellSet(cells...)); got != free {
		t.Errorf("Relocate() = %v, want the only free cell %v", got, free)
	}
}

func TestRelocateFullBoard(t *testing.T) {
	g := MustGrid(1, 2, 1)
	a := NewApple(g, rand.New(rand.NewSource(1)))

	got := a.Relocate(NewCellSet(g.Cells()...))
	if got != NoCell || a.Position() != NoCell {
		t.Errorf("Relocate() on a full board = %v, want NoCell", got)
	}
}

func TestNewAppleInBounds(t *testing.T) {
	g := MustGrid(20, 32, 24)
	for seed := uint64(0); seed < 50; seed++ {
		a := NewApple(g, rand.New(rand.NewSource(seed)))
		if !g.InBounds(a.Position()) {
			t.Fatalf("seed %d: apple at %v", seed, a.Position())
		}
	}
}
