package main

// Bounds is an inclusive rectangle of cells.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

func (b Bounds) Rows() int { return b.MaxRow - b.MinRow + 1 }
func (b Bounds) Cols() int { return b.MaxCol - b.MinCol + 1 }

func (b Bounds) Contains(c Cell) bool {
	return c.Row >= b.MinRow && c.Row <= b.MaxRow && c.Col >= b.MinCol && c.Col <= b.MaxCol
}

// OccupiedBounds returns the smallest rectangle covering every occupied
// cell. ok is false when the board is empty.
func OccupiedBounds(g *Grid) (b Bounds, ok bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !g.Occupied(Cell{Row: r, Col: c}) {
				continue
			}
			if !ok {
				b = Bounds{MinRow: r, MaxRow: r, MinCol: c, MaxCol: c}
				ok = true
				continue
			}
			b.MinRow = min(b.MinRow, r)
			b.MaxRow = max(b.MaxRow, r)
			b.MinCol = min(b.MinCol, c)
			b.MaxCol = max(b.MaxCol, c)
		}
	}
	return b, ok
}
