package main

import (
	"slices"
	"sort"
)

// Grid is the N×N board. Each cell holds a stack of shapes ordered bottom to
// top; an empty stack is an unoccupied cell. Coordinates passed to Grid are
// assumed to be in range; callers check with InBounds.
type Grid struct {
	size  int
	cells [][]ShapeInstance
}

type Move struct {
	From Cell
	To   Cell
	Data []ShapeInstance
}

func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([][]ShapeInstance, size*size),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.size + c.Col
}

// Get returns a copy of the cell's stack, nil when the cell is empty.
func (g *Grid) Get(c Cell) []ShapeInstance {
	return slices.Clone(g.cells[g.index(c)])
}

func (g *Grid) Top(c Cell) (ShapeInstance, bool) {
	stack := g.cells[g.index(c)]
	if len(stack) == 0 {
		return ShapeInstance{}, false
	}
	return stack[len(stack)-1], true
}

func (g *Grid) Occupied(c Cell) bool {
	return len(g.cells[g.index(c)]) > 0
}

func (g *Grid) Depth(c Cell) int {
	return len(g.cells[g.index(c)])
}

// Set overwrites the whole stack at c. An empty stack clears the cell.
func (g *Grid) Set(c Cell, stack []ShapeInstance) {
	if len(stack) == 0 {
		g.cells[g.index(c)] = nil
		return
	}
	g.cells[g.index(c)] = slices.Clone(stack)
}

// SetTop replaces the topmost layer. It does nothing on an empty cell.
func (g *Grid) SetTop(c Cell, s ShapeInstance) {
	stack := g.cells[g.index(c)]
	if len(stack) == 0 {
		return
	}
	stack[len(stack)-1] = s
}

// Push inserts s into the stack keeping it ordered by descending nominal
// size; among equal sizes the newest goes on top. It reports false when the
// stack is already full.
func (g *Grid) Push(c Cell, s ShapeInstance) bool {
	i := g.index(c)
	stack := g.cells[i]
	if len(stack) >= maxLayers {
		return false
	}
	at := sort.Search(len(stack), func(j int) bool {
		return stack[j].Size > s.Size
	})
	g.cells[i] = slices.Insert(slices.Clone(stack), at, s)
	return true
}

// Pop removes the topmost layer; the cell becomes unoccupied when the last
// layer goes.
func (g *Grid) Pop(c Cell) (ShapeInstance, bool) {
	i := g.index(c)
	stack := g.cells[i]
	if len(stack) == 0 {
		return ShapeInstance{}, false
	}
	top := stack[len(stack)-1]
	if len(stack) == 1 {
		g.cells[i] = nil
	} else {
		g.cells[i] = slices.Clone(stack[:len(stack)-1])
	}
	return top, true
}

// MoveMany applies the batch only if every destination is on the board.
// All sources are cleared before any destination is written, so chains where
// one move's destination is another's source do not clobber each other.
func (g *Grid) MoveMany(moves []Move) bool {
	for _, mv := range moves {
		if !g.InBounds(mv.To) {
			return false
		}
	}
	for _, mv := range moves {
		g.cells[g.index(mv.From)] = nil
	}
	for _, mv := range moves {
		g.Set(mv.To, mv.Data)
	}
	return true
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

// OccupiedCells lists occupied cells in row-major order.
func (g *Grid) OccupiedCells() []Cell {
	var out []Cell
	for i, stack := range g.cells {
		if len(stack) > 0 {
			out = append(out, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return out
}

func (g *Grid) Clone() *Grid {
	clone := &Grid{
		size:  g.size,
		cells: make([][]ShapeInstance, len(g.cells)),
	}
	for i, stack := range g.cells {
		if len(stack) > 0 {
			clone.cells[i] = slices.Clone(stack)
		}
	}
	return clone
}

func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if !slices.Equal(g.cells[i], other.cells[i]) {
			return false
		}
	}
	return true
}

// restore copies the contents of snap into g in place.
func (g *Grid) restore(snap *Grid) {
	g.size = snap.size
	g.cells = snap.Clone().cells
}
