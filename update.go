package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	c, ok := m.screenToCell(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if !ok {
			return
		}
		m.clearMessages()
		m.cursorRow, m.cursorCol = c.Row, c.Col
		if m.engine.Tool().Mode == ModeSelect {
			m.engine.BeginDrag(c)
			return
		}
		m.engine.ClickAt(c)
	case tea.MouseMotion:
		if ok {
			m.engine.DragTo(c)
		}
	case tea.MouseRelease:
		if _, _, dragging := m.engine.Dragging(); !dragging {
			return
		}
		if !ok {
			m.engine.CancelDrag()
			return
		}
		m.cursorRow, m.cursorCol = c.Row, c.Col
		if from, _, _ := m.engine.Dragging(); from != c {
			m.reject(m.engine.DropAt(c), "Move rejected: selection would leave the board")
		} else {
			m.engine.CancelDrag()
		}
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	e := m.engine
	m.clearMessages()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	case "tab":
		if e.Tool().Mode == ModeStamp {
			e.SetMode(ModeSelect)
		} else {
			e.SetMode(ModeStamp)
		}
	case " ", "enter":
		if from, _, dragging := e.Dragging(); dragging {
			if from == m.cursor() {
				e.CancelDrag()
			} else {
				m.reject(e.DropAt(m.cursor()), "Move rejected: selection would leave the board")
			}
			break
		}
		applied := e.ClickAt(m.cursor())
		if e.Tool().Mode == ModeStamp && !applied {
			m.setError("Cannot stamp here: the cell already holds %d layers", maxLayers)
		}
	case "esc":
		e.ClearSelection()
	case "s":
		e.CycleKind()
	case "c":
		e.CycleColor()
	case "z":
		e.CycleSize()
	case "P":
		e.TogglePolicy()
	case "w":
		e.CycleWindow()
	case "r":
		if !e.Selection().Empty() {
			m.reject(e.Rotate(), "Rotate rejected: the turned group would not fit")
		}
	case "x":
		e.MirrorX()
	case "y":
		e.MirrorY()
	case "d", "delete", "backspace":
		e.Delete()
	case "m":
		if e.Tool().Mode != ModeSelect {
			e.SetMode(ModeSelect)
		}
		if !e.BeginDrag(m.cursor()) {
			m.setError("Nothing to move here")
		}
	case "a":
		e.SetMode(ModeSelect)
		e.SelectAll()
	case "v":
		e.SetMode(ModeSelect)
		if !e.ToggleSelect(m.cursor()) {
			m.setError("Nothing to select here")
		}
	case "u", "ctrl+z":
		if !e.Undo() {
			m.setSuccess("Nothing to undo")
		}
	case "C":
		e.Clear()
	case "R":
		e.Randomize(e.Tool().Window)
	case "e":
		m.export(m.sink, FormatSVG)
	case "p":
		m.export(m.sink, FormatPNG)
	case "t":
		m.export(m.sink, FormatTXT)
	case "Y":
		m.export(ClipboardSink{}, FormatSVG)
	}
	return m, nil
}
