package main

import "fmt"

type ShapeKind int

const (
	ShapeSquare ShapeKind = iota
	ShapeRounded
)

var shapeKinds = []ShapeKind{ShapeSquare, ShapeRounded}

func (k ShapeKind) String() string {
	if k == ShapeRounded {
		return "rounded"
	}
	return "square"
}

// Size is the nominal size of a shape. Larger shapes sit lower in a stack.
type Size int

const (
	SizeLarge Size = iota
	SizeMedium
	SizeSmall
)

var shapeSizes = []Size{SizeLarge, SizeMedium, SizeSmall}

func (s Size) String() string {
	switch s {
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "large"
	}
}

// Scale is the fraction of the cell a shape of this size covers.
func (s Size) Scale() float64 {
	switch s {
	case SizeMedium:
		return 0.66
	case SizeSmall:
		return 0.33
	default:
		return 1
	}
}

// ColorToken indexes into the configured palette.
type ColorToken int

var rotations = []int{0, 90, 180, 270}

// ShapeInstance is one placed shape. Values are replaced, never shared.
type ShapeInstance struct {
	Kind     ShapeKind
	Color    ColorToken
	Size     Size
	Rotation int
	MirrorX  bool
	MirrorY  bool
}

func NewShape(kind ShapeKind, color ColorToken, size Size) ShapeInstance {
	return ShapeInstance{Kind: kind, Color: color, Size: size}
}

func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg - deg%90
}

// Rotated returns the shape turned 90 degrees clockwise.
func (s ShapeInstance) Rotated() ShapeInstance {
	s.Rotation = normalizeRotation(s.Rotation + 90)
	return s
}

func (s ShapeInstance) FlippedX() ShapeInstance {
	s.MirrorX = !s.MirrorX
	return s
}

func (s ShapeInstance) FlippedY() ShapeInstance {
	s.MirrorY = !s.MirrorY
	return s
}

// reflected negates the rotation; a mirror image turns the other way.
func (s ShapeInstance) reflected() ShapeInstance {
	s.Rotation = normalizeRotation(360 - s.Rotation)
	return s
}

func (s ShapeInstance) String() string {
	return fmt.Sprintf("%s/%d/%s rot=%d mx=%t my=%t", s.Kind, s.Color, s.Size, s.Rotation, s.MirrorX, s.MirrorY)
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Cell) Sub(d Cell) Cell {
	return Cell{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
