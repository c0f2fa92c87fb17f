package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/logging"
)

func (m *model) hasRows() bool {
	return len(m.data.view.Rows) > 0
}

func (m *model) moveCursor(delta int) {
	if !m.hasRows() {
		return
	}
	m.cursor += delta
	m.clampCursor()
}

// pageStep is how far page up/down moves: the rows that fit last paint.
func (m *model) pageStep() int {
	if m.pageRowSize > 1 {
		return m.pageRowSize - 1
	}
	if m.viewport.Height > 1 {
		return m.viewport.Height - 1
	}
	return 1
}

func (m *model) jumpToStart() {
	logging.Debug("jumpToStart called")
	if !m.hasRows() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	logging.Debug("jumpToEnd called")
	if !m.hasRows() {
		return
	}
	m.cursor = len(m.data.view.Rows) - 1
}

// jumpToLine moves to the lineNo-th displayed row (1-based).
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if !m.hasRows() {
		return m.startNotice("No rows to jump to", "warn", noticeDuration)
	}
	if lineNo <= 0 || lineNo > len(m.data.view.Rows) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn", noticeDuration)
	}
	m.cursor = lineNo - 1
	return nil
}
