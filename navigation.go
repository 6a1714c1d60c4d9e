package main

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorCol -= speed
	case "l", "right", "L", "shift+right":
		m.cursorCol += speed
	case "k", "up", "K", "shift+up":
		m.cursorRow -= speed
	case "j", "down", "J", "shift+down":
		m.cursorRow += speed
	}
	m.ensureCursorInBounds()
	m.engine.DragTo(m.cursor())
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	n := m.engine.Grid().Size()
	m.cursorRow = min(max(m.cursorRow, 0), n-1)
	m.cursorCol = min(max(m.cursorCol, 0), n-1)
}

func (m *model) cursor() Cell {
	return Cell{Row: m.cursorRow, Col: m.cursorCol}
}
