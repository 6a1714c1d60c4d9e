package main

// Selection tracks the active cells and the anchor used for drag deltas.
// Only occupied cells may be selected; the anchor is a member whenever the
// selection is non-empty.
type Selection struct {
	cells  map[Cell]bool
	order  []Cell
	anchor Cell
}

func NewSelection() *Selection {
	return &Selection{cells: make(map[Cell]bool)}
}

// SelectSingle selects c alone. An unoccupied cell clears the selection.
func (s *Selection) SelectSingle(g *Grid, c Cell) {
	s.Clear()
	if !g.InBounds(c) || !g.Occupied(c) {
		return
	}
	s.add(c)
	s.anchor = c
}

// SelectMany keeps the occupied cells of cells in the given order. The first
// surviving cell becomes the anchor.
func (s *Selection) SelectMany(g *Grid, cells []Cell) {
	s.Clear()
	for _, c := range cells {
		if !g.InBounds(c) || !g.Occupied(c) || s.cells[c] {
			continue
		}
		if len(s.order) == 0 {
			s.anchor = c
		}
		s.add(c)
	}
}

func (s *Selection) add(c Cell) {
	s.cells[c] = true
	s.order = append(s.order, c)
}

// SetAnchor moves the anchor to c if c is already selected.
func (s *Selection) SetAnchor(c Cell) bool {
	if !s.cells[c] {
		return false
	}
	s.anchor = c
	return true
}

func (s *Selection) Clear() {
	clear(s.cells)
	s.order = nil
	s.anchor = Cell{}
}

func (s *Selection) Contains(c Cell) bool {
	return s.cells[c]
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) Empty() bool {
	return len(s.order) == 0
}

func (s *Selection) IsGroup() bool {
	return len(s.order) > 1
}

// Anchor returns the anchor cell and whether there is one.
func (s *Selection) Anchor() (Cell, bool) {
	if s.Empty() {
		return Cell{}, false
	}
	return s.anchor, true
}

// Cells returns the selected cells in selection order.
func (s *Selection) Cells() []Cell {
	out := make([]Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Bounds returns the top-left corner and height/width of the box covering
// the selection.
func (s *Selection) Bounds() (origin Cell, h, w int) {
	if s.Empty() {
		return Cell{}, 0, 0
	}
	minR, minC := s.order[0].Row, s.order[0].Col
	maxR, maxC := minR, minC
	for _, c := range s.order[1:] {
		minR = min(minR, c.Row)
		maxR = max(maxR, c.Row)
		minC = min(minC, c.Col)
		maxC = max(maxC, c.Col)
	}
	return Cell{Row: minR, Col: minC}, maxR - minR + 1, maxC - minC + 1
}

// CanRotateFreely reports whether free single-cell rotation applies.
func (s *Selection) CanRotateFreely() bool {
	return s.Len() == 1
}
