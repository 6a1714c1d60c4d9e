package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	h := NewHistory(historyLimit)
	g := gridWith(4, Cell{0, 0})
	before := g.Clone()

	assert.False(t, h.Undo(g))
	assert.True(t, g.Equal(before))
}

func TestUndoRestoresSnapshot(t *testing.T) {
	h := NewHistory(historyLimit)
	g := NewGrid(4)

	h.Push(g)
	g.Set(Cell{1, 1}, []ShapeInstance{square(1)})
	h.Push(g)
	g.Set(Cell{2, 2}, []ShapeInstance{square(0)})

	require.True(t, h.Undo(g))
	assert.True(t, g.Equal(gridWithColor(4, Cell{1, 1}, 1)))
	require.True(t, h.Undo(g))
	assert.True(t, g.Equal(NewGrid(4)))
	assert.Equal(t, 0, h.Len())
}

func gridWithColor(size int, c Cell, color ColorToken) *Grid {
	g := NewGrid(size)
	g.Set(c, []ShapeInstance{square(color)})
	return g
}

func TestHistoryEvictsOldestBeyondLimit(t *testing.T) {
	h := NewHistory(historyLimit)
	g := NewGrid(10)

	for i := 0; i < 150; i++ {
		h.Push(g)
		g.Set(Cell{Row: (i % 100) / 10, Col: i % 10}, []ShapeInstance{square(ColorToken(i / 100))})
	}
	assert.Equal(t, historyLimit, h.Len())

	for i := 0; i < historyLimit; i++ {
		require.True(t, h.Undo(g))
	}
	assert.False(t, h.Undo(g), "snapshots older than the limit are gone")

	// The oldest surviving snapshot was taken before write 50.
	want := NewGrid(10)
	for i := 0; i < 50; i++ {
		want.Set(Cell{Row: i / 10, Col: i % 10}, []ShapeInstance{square(0)})
	}
	assert.True(t, g.Equal(want))
}

func TestSnapshotIsIndependentOfLaterEdits(t *testing.T) {
	h := NewHistory(historyLimit)
	g := gridWith(4, Cell{0, 0})

	h.Push(g)
	g.SetTop(Cell{0, 0}, square(0).Rotated())

	require.True(t, h.Undo(g))
	top, _ := g.Top(Cell{0, 0})
	assert.Equal(t, 0, top.Rotation)
}
