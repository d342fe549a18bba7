package nav

import "testing"

func TestGridRowWrapsWithinColumn(t *testing.T) {
	g := NewGrid([]int{3, 5})
	if !g.NextRow() || g.Row != 1 {
		t.Fatalf("expected row 1, got %d", g.Row)
	}
	g.NextRow()
	if !g.NextRow() || g.Row != 0 {
		t.Fatalf("expected row wrap to 0, got %d", g.Row)
	}
	if !g.PrevRow() || g.Row != 2 {
		t.Fatalf("expected row wrap to 2, got %d", g.Row)
	}
}

func TestGridColumnWrapsAtEdges(t *testing.T) {
	g := NewGrid([]int{2, 2, 2})
	if !g.PrevColumn() || g.Col != 2 {
		t.Fatalf("expected column wrap to 2, got %d", g.Col)
	}
	if !g.NextColumn() || g.Col != 0 {
		t.Fatalf("expected column wrap to 0, got %d", g.Col)
	}
}

func TestGridClampsRowOnColumnSwitch(t *testing.T) {
	g := NewGrid([]int{5, 2})
	g.Row = 4
	if !g.NextColumn() {
		t.Fatalf("expected column switch")
	}
	if g.Col != 1 {
		t.Fatalf("expected column 1, got %d", g.Col)
	}
	if g.Row != 1 {
		t.Fatalf("expected row clamped to 1, got %d", g.Row)
	}
	// Moving back does not restore the old row; the clamp is one-way.
	if !g.PrevColumn() || g.Row != 1 {
		t.Fatalf("expected row 1 after switching back, got %d", g.Row)
	}
}

func TestGridEmptyColumn(t *testing.T) {
	g := NewGrid([]int{3, 0})
	g.Row = 2
	g.NextColumn()
	if g.Row != 0 {
		t.Fatalf("expected row 0 in empty column, got %d", g.Row)
	}
	if g.NextRow() {
		t.Fatalf("expected no row movement in empty column")
	}
	if g.PrevRow() {
		t.Fatalf("expected no row movement in empty column")
	}
}

func TestGridNoColumns(t *testing.T) {
	g := NewGrid(nil)
	if g.NextColumn() || g.PrevColumn() {
		t.Fatalf("expected no movement without columns")
	}
	if g.NextRow() || g.PrevRow() {
		t.Fatalf("expected no row movement without columns")
	}
}

func TestGridSetCountsRevalidates(t *testing.T) {
	g := NewGrid([]int{4, 4})
	g.Col = 1
	g.Row = 3
	g.SetCounts([]int{2})
	if g.Col != 0 {
		t.Fatalf("expected column clamped to 0, got %d", g.Col)
	}
	if g.Row != 1 {
		t.Fatalf("expected row clamped to 1, got %d", g.Row)
	}
}
