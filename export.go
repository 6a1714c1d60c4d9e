package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	ErrEmptyExport   = errors.New("nothing to export")
	ErrUnknownFormat = errors.New("unknown export format")
)

const captionHeight = 20

func parseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "txt", "text":
		return FormatTXT, nil
	}
	return FormatSVG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render serializes the occupied part of g. An empty board is
// ErrEmptyExport.
func Render(w io.Writer, g *Grid, config *Config, format ExportFormat) error {
	b, ok := OccupiedBounds(g)
	if !ok {
		return ErrEmptyExport
	}
	switch format {
	case FormatSVG:
		// svgo does not report write errors.
		var buf bytes.Buffer
		writeSVG(&buf, g, b, config)
		_, err := w.Write(buf.Bytes())
		return err
	case FormatPNG:
		return writePNG(w, g, b, config)
	case FormatTXT:
		return writeTXT(w, g, b)
	}
	return ErrUnknownFormat
}

// shapeTransform places a shape in the cropped canvas and turns it about the
// cell's own center: translate to the cell, to its center, rotate, scale,
// translate back.
type shapeTransform struct {
	x, y   float64
	half   float64
	angle  int
	sx, sy float64
}

func transformFor(s ShapeInstance, c Cell, b Bounds, px int) shapeTransform {
	k := s.Size.Scale()
	t := shapeTransform{
		x:     float64((c.Col - b.MinCol) * px),
		y:     float64((c.Row - b.MinRow) * px),
		half:  float64(px) / 2,
		angle: s.Rotation,
		sx:    k,
		sy:    k,
	}
	if s.MirrorX {
		t.sx = -t.sx
	}
	if s.MirrorY {
		t.sy = -t.sy
	}
	return t
}

func (t shapeTransform) String() string {
	return fmt.Sprintf("translate(%g,%g) translate(%g,%g) rotate(%d) scale(%g,%g) translate(%g,%g)",
		t.x, t.y, t.half, t.half, t.angle, t.sx, t.sy, -t.half, -t.half)
}

// roundedPath is a cell-sized square whose top-right corner is rounded.
func roundedPath(px int, ratio float64) string {
	r := ratio * float64(px)
	return fmt.Sprintf("M0,0 H%g A%g,%g 0 0 1 %d,%g V%d H0 Z", float64(px)-r, r, r, px, r, px)
}

func writeSVG(w io.Writer, g *Grid, b Bounds, config *Config) {
	px := config.CellSize
	width, height := b.Cols()*px, b.Rows()*px

	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			cell := Cell{Row: r, Col: c}
			for _, s := range g.Get(cell) {
				fill := "fill:" + config.ColorHex(s.Color)
				canvas.Gtransform(transformFor(s, cell, b, px).String())
				if s.Kind == ShapeRounded {
					canvas.Path(roundedPath(px, config.CornerRatio), fill)
				} else {
					canvas.Rect(0, 0, px, px, fill)
				}
				canvas.Gend()
			}
		}
	}
	canvas.End()
}

func writePNG(w io.Writer, g *Grid, b Bounds, config *Config) error {
	px := config.CellSize
	width, height := b.Cols()*px, b.Rows()*px
	imageHeight := height
	if config.PNGCaption {
		imageHeight += captionHeight
	}

	dc := gg.NewContext(width, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			cell := Cell{Row: r, Col: c}
			for _, s := range g.Get(cell) {
				drawShapePNG(dc, s, transformFor(s, cell, b, px), px, config)
			}
		}
	}

	if config.PNGCaption {
		if err := drawCaptionPNG(dc, fmt.Sprintf("%dx%d", b.Cols(), b.Rows()), width, height); err != nil {
			return err
		}
	}
	return dc.EncodePNG(w)
}

func drawShapePNG(dc *gg.Context, s ShapeInstance, t shapeTransform, px int, config *Config) {
	size := float64(px)
	dc.Push()
	defer dc.Pop()

	dc.Translate(t.x+t.half, t.y+t.half)
	dc.Rotate(gg.Radians(float64(t.angle)))
	dc.Scale(t.sx, t.sy)
	dc.Translate(-t.half, -t.half)

	dc.SetColor(config.Palette[s.Color].Color())
	if s.Kind == ShapeRounded {
		r := config.CornerRatio * size
		dc.MoveTo(0, 0)
		dc.LineTo(size-r, 0)
		dc.DrawArc(size-r, r, r, -math.Pi/2, 0)
		dc.LineTo(size, size)
		dc.LineTo(0, size)
		dc.ClosePath()
	} else {
		dc.DrawRectangle(0, 0, size, size)
	}
	dc.Fill()
}

func drawCaptionPNG(dc *gg.Context, caption string, width, top int) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(caption, float64(width)/2, float64(top)+captionHeight/2, 0.5, 0.5)
	return nil
}

func writeTXT(w io.Writer, g *Grid, b Bounds) error {
	for r := b.MinRow; r <= b.MaxRow; r++ {
		var line strings.Builder
		for c := b.MinCol; c <= b.MaxCol; c++ {
			top, ok := g.Top(Cell{Row: r, Col: c})
			if !ok {
				line.WriteString(". ")
				continue
			}
			line.WriteString(glyphFor(top))
			line.WriteByte(' ')
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

var cornerGlyphs = [4]string{"◜", "◝", "◞", "◟"}

// roundedCorner returns which corner (0 top-left, clockwise) of a rounded
// shape ends up rounded after its mirror flags and rotation are applied.
func roundedCorner(s ShapeInstance) int {
	corner := 1
	if s.MirrorX {
		corner = [4]int{1, 0, 3, 2}[corner]
	}
	if s.MirrorY {
		corner = [4]int{3, 2, 1, 0}[corner]
	}
	return (corner + s.Rotation/90) % 4
}

func glyphFor(s ShapeInstance) string {
	if s.Kind == ShapeRounded {
		return cornerGlyphs[roundedCorner(s)]
	}
	switch s.Size {
	case SizeMedium:
		return "◼"
	case SizeSmall:
		return "▪"
	}
	return "■"
}

// ExportSink receives a finished document.
type ExportSink interface {
	Save(name string, data []byte) error
}

type FileSink struct {
	Config *Config
}

func (s FileSink) Save(name string, data []byte) error {
	path, err := s.Config.GetSavePath(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type ClipboardSink struct{}

func (ClipboardSink) Save(_ string, data []byte) error {
	return clipboard.WriteAll(string(data))
}

// Export renders the board in format and hands it to sink under the fixed
// export filename, which it returns.
func (e *Engine) Export(sink ExportSink, format ExportFormat) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, e.grid, e.config, format); err != nil {
		return "", err
	}
	name := exportBase + format.Ext()
	if err := sink.Save(name, buf.Bytes()); err != nil {
		return "", err
	}
	return name, nil
}
