package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	anchorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("60"))
	hoverStyle    = lipgloss.NewStyle().Underline(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.titleLine())
	result.WriteString("\n")
	result.WriteString(m.renderGrid())
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) titleLine() string {
	t := m.engine.Tool()
	return titleStyle.Render(fmt.Sprintf("shapegrid %s | %s %s %s | %s | window %d",
		t.Mode, t.Kind, m.config.ColorName(t.Color), t.Size, t.Policy, t.Window))
}

func (m model) renderGrid() string {
	g := m.engine.Grid()
	sel := m.engine.Selection()
	anchor, hasAnchor := sel.Anchor()
	_, hover, dragging := m.engine.Dragging()
	n := g.Size()

	var result strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := Cell{Row: r, Col: c}
			glyph := emptyStyle.Render("·")
			if top, ok := g.Top(cell); ok {
				glyph = lipgloss.NewStyle().
					Foreground(lipgloss.Color(m.config.ColorHex(top.Color))).
					Render(glyphFor(top))
			}

			style := lipgloss.NewStyle()
			switch {
			case hasAnchor && cell == anchor:
				style = anchorStyle
			case sel.Contains(cell):
				style = selectedStyle
			}
			if dragging && cell == hover {
				style = style.Inherit(hoverStyle)
			}
			if cell == m.cursor() {
				style = style.Inherit(cursorStyle)
			}
			result.WriteString(style.Render(" " + glyph + " "))
		}
		result.WriteString("\n")
	}
	return result.String()
}

func (m model) statusLine() string {
	st := m.engine.Status()
	status := fmt.Sprintf("Cursor: %v | Shapes: %d | Selected: %d | Undo: %d",
		m.cursor(), st.Occupied, st.Selected, st.Undo)
	if st.Group {
		status += " | group"
	}
	if g := m.engine.Grid(); g.Occupied(m.cursor()) && g.Depth(m.cursor()) > 1 {
		status += fmt.Sprintf(" | Layers: %d", g.Depth(m.cursor()))
	}
	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	default:
		status += hintStyle.Render(" | ? for help | q to quit")
	}
	return status
}

func (m model) helpView() string {
	helpLines := []string{
		"shapegrid help",
		"==============",
		"",
		"Navigation:",
		"  h/←/j/↓/k/↑/l/→  Move cursor",
		"  Shift+h/j/k/l    Move cursor 2 cells",
		"  mouse            Click to stamp or select, drag to move",
		"",
		"Tools:",
		"  Tab              Toggle stamp / select mode",
		"  s                Cycle shape (square, rounded)",
		"  c                Cycle color",
		"  z                Cycle size (large, medium, small)",
		"  P                Toggle stamp policy (replace, layer)",
		"  w                Cycle randomize window size",
		"",
		"Editing:",
		"  Space/Enter      Stamp or select at cursor, drop when moving",
		"  r                Rotate selection 90° clockwise",
		"  x / y            Mirror selection horizontally / vertically",
		"  d                Delete selection (top layer in layer policy)",
		"  m                Pick up selection at cursor to move it",
		"  a                Select all",
		"  v                Add or remove the cursor cell from the selection",
		"  Esc              Clear selection",
		"  u                Undo",
		"  C                Clear board",
		"  R                Randomize the centered window",
		"",
		"Export:",
		"  e / p / t        Save SVG / PNG / TXT",
		"  Y                Copy SVG to clipboard",
		"",
		"Press ? or Esc to close",
	}
	return strings.Join(helpLines, "\n")
}
