package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/clipboard"
)

// copyCurrentRow puts the cursor row on the clipboard, tab separated in
// column order.
func (m *model) copyCurrentRow() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.data.view.Rows) {
		return m.startNotice("No row selected", "warn", noticeDuration)
	}
	text := m.data.view.Rows[m.cursor].Join(m.data.view.Columns, "\t")
	if err := clipboard.Copy(text); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Row copied", "success", noticeDuration)
}
