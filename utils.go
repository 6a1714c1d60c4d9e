package main

import (
	"errors"
	"fmt"
	"log"
)

const (
	gridTop   = 1
	cellWidth = 3
)

// screenToCell resolves a terminal position to a board cell.
func (m *model) screenToCell(x, y int) (Cell, bool) {
	if x < 0 || y < gridTop {
		return Cell{}, false
	}
	c := Cell{Row: y - gridTop, Col: x / cellWidth}
	return c, m.engine.Grid().InBounds(c)
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) setError(format string, args ...any) {
	m.successMessage = ""
	m.errorMessage = fmt.Sprintf(format, args...)
}

func (m *model) setSuccess(format string, args ...any) {
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf(format, args...)
}

func (m *model) export(sink ExportSink, format ExportFormat) {
	name, err := m.engine.Export(sink, format)
	switch {
	case errors.Is(err, ErrEmptyExport):
		m.setError("Nothing to export: place a shape first")
	case err != nil:
		log.Printf("export %s: %v", format.Ext(), err)
		m.setError("Export failed: %v", err)
	default:
		log.Printf("exported %s", name)
		if _, ok := sink.(ClipboardSink); ok {
			m.setSuccess("Copied SVG to clipboard")
		} else {
			m.setSuccess("Saved %s", m.config.savePath(name))
		}
	}
}

// reject reports an operation the engine refused.
func (m *model) reject(applied bool, format string, args ...any) {
	if !applied {
		m.setError(format, args...)
	}
}
