package main

import (
	"log"
	"math/rand"
	"time"
)

// ToolState is the current tool the user has picked.
type ToolState struct {
	Mode   Mode
	Kind   ShapeKind
	Color  ColorToken
	Size   Size
	Policy StampPolicy
	Window int
}

type dragState struct {
	active bool
	from   Cell
	hover  Cell
}

// Engine owns the grid, the selection, the undo history and the tool state
// of one editing session. It is not safe for concurrent use.
//
// Every operation that changes the grid pushes exactly one snapshot first;
// rejected operations push nothing and leave the grid as it was.
type Engine struct {
	config *Config
	grid   *Grid
	sel    *Selection
	hist   *History
	tool   ToolState
	rng    *rand.Rand
	drag   dragState
	clicks map[Mode]func(Cell) bool
}

func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := config.GridSize
	windows := config.WindowSizes(size)

	e := &Engine{
		config: config,
		grid:   NewGrid(size),
		sel:    NewSelection(),
		hist:   NewHistory(historyLimit),
		rng:    rand.New(rand.NewSource(seed)),
		tool: ToolState{
			Mode:   ModeStamp,
			Kind:   ShapeSquare,
			Size:   SizeLarge,
			Policy: config.Policy(),
			Window: windows[len(windows)-1],
		},
	}
	e.clicks = map[Mode]func(Cell) bool{
		ModeStamp:  e.StampAt,
		ModeSelect: e.SelectAt,
	}
	return e
}

func (e *Engine) Grid() *Grid           { return e.grid }
func (e *Engine) Selection() *Selection { return e.sel }
func (e *Engine) History() *History     { return e.hist }
func (e *Engine) Tool() ToolState       { return e.tool }
func (e *Engine) Config() *Config       { return e.config }

func (e *Engine) SetTool(t ToolState) {
	e.tool = t
	e.SetMode(t.Mode)
}

// SetMode switches the click behavior. Leaving select mode drops the
// selection and any drag in progress.
func (e *Engine) SetMode(m Mode) {
	e.tool.Mode = m
	if m != ModeSelect {
		e.sel.Clear()
		e.drag = dragState{}
	}
}

// ClickAt runs the current mode's click action on c.
func (e *Engine) ClickAt(c Cell) bool {
	action, ok := e.clicks[e.tool.Mode]
	if !ok {
		return false
	}
	return action(c)
}

func (e *Engine) StampAt(c Cell) bool {
	return e.Stamp(c, e.tool)
}

// Stamp places a fresh shape built from t at c. Under StampReplace the cell's
// whole stack becomes that one shape; under StampLayer the shape is inserted
// into the stack, and a full stack rejects the stamp. The selection is
// cleared either way.
func (e *Engine) Stamp(c Cell, t ToolState) bool {
	if !e.grid.InBounds(c) || int(t.Color) < 0 || int(t.Color) >= len(e.config.Palette) {
		return false
	}
	shape := NewShape(t.Kind, t.Color, t.Size)

	switch t.Policy {
	case StampLayer:
		if e.grid.Depth(c) >= maxLayers {
			log.Printf("stamp rejected: %v already holds %d layers", c, maxLayers)
			return false
		}
		e.hist.Push(e.grid)
		e.grid.Push(c, shape)
	default:
		e.hist.Push(e.grid)
		e.grid.Set(c, []ShapeInstance{shape})
	}
	e.sel.Clear()
	return true
}

// SelectAt selects c alone; an empty cell clears the selection. It never
// changes the grid and always reports false.
func (e *Engine) SelectAt(c Cell) bool {
	e.sel.SelectSingle(e.grid, c)
	return false
}

func (e *Engine) SelectAll() {
	var cells []Cell
	n := e.grid.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	e.sel.SelectMany(e.grid, cells)
}

// ToggleSelect adds c to the selection, or removes it if already selected.
// The anchor stays put unless it is the cell removed. Empty cells are
// ignored.
func (e *Engine) ToggleSelect(c Cell) bool {
	if !e.grid.InBounds(c) || !e.grid.Occupied(c) {
		return false
	}
	var cells []Cell
	if anchor, ok := e.sel.Anchor(); ok && anchor != c {
		cells = append(cells, anchor)
	}
	for _, s := range e.sel.Cells() {
		if s != c {
			cells = append(cells, s)
		}
	}
	if !e.sel.Contains(c) {
		cells = append(cells, c)
	}
	e.sel.SelectMany(e.grid, cells)
	return true
}

func (e *Engine) ClearSelection() {
	e.sel.Clear()
	e.drag = dragState{}
}

// Rotate turns the selection 90 degrees clockwise. A single cell advances
// its top shape's rotation. A group is rotated as one rigid block inside its
// bounding box, anchored at the same top-left corner; if the turned block
// would leave the board nothing happens.
func (e *Engine) Rotate() bool {
	if e.sel.Empty() {
		return false
	}
	if e.sel.CanRotateFreely() {
		c, _ := e.sel.Anchor()
		top, ok := e.grid.Top(c)
		if !ok {
			return false
		}
		e.hist.Push(e.grid)
		e.grid.SetTop(c, top.Rotated())
		return true
	}

	origin, h, w := e.sel.Bounds()
	n := e.grid.Size()
	if origin.Row+w > n || origin.Col+h > n {
		log.Printf("group rotate rejected: %dx%d block at %v does not fit", w, h, origin)
		return false
	}
	return e.transformGroup(func(local Cell) Cell {
		return Cell{Row: local.Col, Col: h - 1 - local.Row}
	}, ShapeInstance.Rotated)
}

// MirrorX flips the selection left to right. A single cell only toggles its
// top shape's flag; a group also swaps cells across its own width and
// reverses each shape's rotation.
func (e *Engine) MirrorX() bool {
	return e.mirror(true)
}

// MirrorY is MirrorX top to bottom.
func (e *Engine) MirrorY() bool {
	return e.mirror(false)
}

func (e *Engine) mirror(horizontal bool) bool {
	if e.sel.Empty() {
		return false
	}
	flip := ShapeInstance.FlippedY
	if horizontal {
		flip = ShapeInstance.FlippedX
	}
	if !e.sel.IsGroup() {
		c, _ := e.sel.Anchor()
		top, ok := e.grid.Top(c)
		if !ok {
			return false
		}
		e.hist.Push(e.grid)
		e.grid.SetTop(c, flip(top))
		return true
	}

	_, h, w := e.sel.Bounds()
	return e.transformGroup(func(local Cell) Cell {
		if horizontal {
			return Cell{Row: local.Row, Col: w - 1 - local.Col}
		}
		return Cell{Row: h - 1 - local.Row, Col: local.Col}
	}, func(s ShapeInstance) ShapeInstance {
		return flip(s).reflected()
	})
}

// transformGroup relocates every selected stack through place (in
// coordinates local to the selection's top-left) and rewrites each layer
// with shape. It is applied as one atomic batch.
func (e *Engine) transformGroup(place func(Cell) Cell, shape func(ShapeInstance) ShapeInstance) bool {
	origin, _, _ := e.sel.Bounds()
	anchor, _ := e.sel.Anchor()

	var moves []Move
	var anchorDest Cell
	for _, c := range e.sel.Cells() {
		stack := e.grid.Get(c)
		for i := range stack {
			stack[i] = shape(stack[i])
		}
		dest := origin.Add(place(c.Sub(origin)))
		if c == anchor {
			anchorDest = dest
		}
		moves = append(moves, Move{From: c, To: dest, Data: stack})
	}
	return e.applyMoves(moves, anchorDest)
}

// Move shifts the whole selection by target minus the anchor. If any cell
// would land off the board nothing moves. Occupied destinations are
// overwritten.
func (e *Engine) Move(target Cell) bool {
	anchor, ok := e.sel.Anchor()
	if !ok {
		return false
	}
	delta := target.Sub(anchor)
	if delta == (Cell{}) {
		return false
	}

	var moves []Move
	for _, c := range e.sel.Cells() {
		moves = append(moves, Move{From: c, To: c.Add(delta), Data: e.grid.Get(c)})
	}
	if !e.applyMoves(moves, target) {
		log.Printf("move rejected: delta %v takes the selection off the board", delta)
		return false
	}
	return true
}

func (e *Engine) applyMoves(moves []Move, anchorDest Cell) bool {
	for _, mv := range moves {
		if !e.grid.InBounds(mv.To) {
			return false
		}
	}
	e.hist.Push(e.grid)
	e.grid.MoveMany(moves)

	dests := []Cell{anchorDest}
	for _, mv := range moves {
		dests = append(dests, mv.To)
	}
	e.sel.SelectMany(e.grid, dests)
	return true
}

// Delete removes the selection. Under StampLayer only the top layer of each
// cell goes; cells left empty drop out of the selection.
func (e *Engine) Delete() bool {
	if e.sel.Empty() {
		return false
	}
	cells := e.sel.Cells()
	e.hist.Push(e.grid)
	for _, c := range cells {
		if e.tool.Policy == StampLayer {
			e.grid.Pop(c)
		} else {
			e.grid.Set(c, nil)
		}
	}
	e.sel.SelectMany(e.grid, cells)
	return true
}

// Clear empties the whole board.
func (e *Engine) Clear() bool {
	e.hist.Push(e.grid)
	e.grid.Clear()
	e.ClearSelection()
	return true
}

// WindowOrigin returns the top-left cell of the centered s×s window.
func WindowOrigin(n, s int) Cell {
	start := (n - s) / 2
	return Cell{Row: start, Col: start}
}

// Randomize clears the board and fills the centered window of the given size,
// each cell independently with the configured density. Sizes outside 1..N use
// the whole board.
func (e *Engine) Randomize(window int) bool {
	n := e.grid.Size()
	if window <= 0 || window > n {
		window = n
	}
	p := e.config.DensityFor(window)
	origin := WindowOrigin(n, window)

	e.hist.Push(e.grid)
	e.grid.Clear()
	e.ClearSelection()
	for r := origin.Row; r < origin.Row+window; r++ {
		for c := origin.Col; c < origin.Col+window; c++ {
			if e.rng.Float64() >= p {
				continue
			}
			shape := ShapeInstance{
				Kind:     shapeKinds[e.rng.Intn(len(shapeKinds))],
				Color:    ColorToken(e.rng.Intn(len(e.config.Palette))),
				Rotation: rotations[e.rng.Intn(len(rotations))],
			}
			e.grid.Set(Cell{Row: r, Col: c}, []ShapeInstance{shape})
		}
	}
	return true
}

// Undo restores the grid to the snapshot before the last change.
func (e *Engine) Undo() bool {
	if !e.hist.Undo(e.grid) {
		return false
	}
	e.ClearSelection()
	return true
}

// BeginDrag starts a drag at c. Grabbing a selected cell makes it the anchor;
// grabbing another occupied cell selects it alone; an empty cell clears the
// selection and starts nothing.
func (e *Engine) BeginDrag(c Cell) bool {
	e.drag = dragState{}
	if e.tool.Mode != ModeSelect || !e.grid.InBounds(c) {
		return false
	}
	if !e.sel.SetAnchor(c) {
		e.sel.SelectSingle(e.grid, c)
	}
	if e.sel.Empty() {
		return false
	}
	e.drag = dragState{active: true, from: c, hover: c}
	return true
}

// DragTo records where a drag is hovering. It never changes the grid.
func (e *Engine) DragTo(c Cell) {
	if e.drag.active {
		e.drag.hover = c
	}
}

// DropAt finishes a drag by moving the selection so the anchor lands on c.
func (e *Engine) DropAt(c Cell) bool {
	if !e.drag.active {
		return false
	}
	e.drag = dragState{}
	return e.Move(c)
}

func (e *Engine) CancelDrag() {
	e.drag = dragState{}
}

// Dragging returns the grabbed cell and the hovered cell of an active drag.
func (e *Engine) Dragging() (from, hover Cell, ok bool) {
	return e.drag.from, e.drag.hover, e.drag.active
}

func (e *Engine) CycleKind() {
	e.tool.Kind = shapeKinds[(int(e.tool.Kind)+1)%len(shapeKinds)]
}

func (e *Engine) CycleColor() {
	e.tool.Color = ColorToken((int(e.tool.Color) + 1) % len(e.config.Palette))
}

func (e *Engine) CycleSize() {
	e.tool.Size = shapeSizes[(int(e.tool.Size)+1)%len(shapeSizes)]
}

func (e *Engine) TogglePolicy() {
	if e.tool.Policy == StampLayer {
		e.tool.Policy = StampReplace
	} else {
		e.tool.Policy = StampLayer
	}
}

func (e *Engine) CycleWindow() {
	sizes := e.config.WindowSizes(e.grid.Size())
	for i, s := range sizes {
		if s == e.tool.Window {
			e.tool.Window = sizes[(i+1)%len(sizes)]
			return
		}
	}
	e.tool.Window = sizes[0]
}

type Status struct {
	Occupied int
	Selected int
	Undo     int
	Group    bool
}

func (e *Engine) Status() Status {
	return Status{
		Occupied: len(e.grid.OccupiedCells()),
		Selected: e.sel.Len(),
		Undo:     e.hist.Len(),
		Group:    e.sel.IsGroup(),
	}
}
