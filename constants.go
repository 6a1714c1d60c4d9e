package main

type Mode int

const (
	ModeStamp Mode = iota
	ModeSelect
)

func (m Mode) String() string {
	switch m {
	case ModeStamp:
		return "STAMP"
	case ModeSelect:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// StampPolicy decides what a stamp does to a cell that already holds shapes.
type StampPolicy int

const (
	StampReplace StampPolicy = iota
	StampLayer
)

func (p StampPolicy) String() string {
	switch p {
	case StampLayer:
		return "layer"
	default:
		return "replace"
	}
}

func parseStampPolicy(s string) (StampPolicy, bool) {
	switch s {
	case "replace", "":
		return StampReplace, true
	case "layer", "layers", "stack":
		return StampLayer, true
	}
	return StampReplace, false
}

type ExportFormat int

const (
	FormatSVG ExportFormat = iota
	FormatPNG
	FormatTXT
)

func (f ExportFormat) Ext() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatTXT:
		return ".txt"
	default:
		return ".svg"
	}
}

const (
	historyLimit  = 100
	maxLayers     = 3
	exportBase    = "shapegrid"
	minPalette    = 2
	maxPalette    = 3
	defaultGrid   = 5
	defaultCellPx = 50
	defaultCorner = 0.5
)

// Board sizes the editor can be built against.
var gridSizes = []int{4, 5, 8, 10}
