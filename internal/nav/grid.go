package nav

// Grid tracks a two-axis cursor over columns of unequal heights. Movement
// along an axis wraps; switching columns clamps the row to the new column's
// length instead of wrapping, so the cursor never lands out of range after
// a column change.
type Grid struct {
	Col    int
	Row    int
	counts []int
}

// NewGrid constructs a grid cursor for the given per-column row counts.
func NewGrid(counts []int) *Grid {
	g := &Grid{}
	g.SetCounts(counts)
	return g
}

// SetCounts replaces the per-column row counts and revalidates both axes.
func (g *Grid) SetCounts(counts []int) {
	g.counts = append([]int(nil), counts...)
	g.Col = Clamp(g.Col, len(g.counts))
	g.Row = Clamp(g.Row, g.rows())
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return len(g.counts)
}

// Rows returns the number of rows in the current column.
func (g *Grid) Rows() int {
	return g.rows()
}

// NextRow moves down within the current column, wrapping at the bottom.
func (g *Grid) NextRow() bool {
	if g.rows() == 0 {
		g.Row = 0
		return false
	}
	g.Row = Next(g.Row, g.rows())
	return true
}

// PrevRow moves up within the current column, wrapping at the top.
func (g *Grid) PrevRow() bool {
	if g.rows() == 0 {
		g.Row = 0
		return false
	}
	g.Row = Prev(g.Row, g.rows())
	return true
}

// NextColumn moves one column right, wrapping at the edge. The row is
// clamped, not wrapped, when the new column is shorter.
func (g *Grid) NextColumn() bool {
	if len(g.counts) == 0 {
		return false
	}
	g.Col = Next(g.Col, len(g.counts))
	g.Row = Clamp(g.Row, g.rows())
	return true
}

// PrevColumn moves one column left, wrapping at the edge, clamping the row.
func (g *Grid) PrevColumn() bool {
	if len(g.counts) == 0 {
		return false
	}
	g.Col = Prev(g.Col, len(g.counts))
	g.Row = Clamp(g.Row, g.rows())
	return true
}

func (g *Grid) rows() int {
	if g.Col < 0 || g.Col >= len(g.counts) {
		return 0
	}
	return g.counts[g.Col]
}
