package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/logging"
)

// rowMatches reports whether any visible cell of row i contains query,
// ignoring case.
func (m *model) rowMatches(i int, query string) bool {
	cols := m.data.view.Columns
	text := m.data.view.Rows[i].Join(cols, "\t")
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// searchOnce sets the highlight query and moves to the first match at or
// after the cursor, wrapping around.
func (m *model) searchOnce(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	m.ui.searchQuery = query
	if query == "" || !m.hasRows() {
		return nil
	}
	n := len(m.data.view.Rows)
	start := max(m.cursor, 0)
	for step := 0; step < n; step++ {
		i := (start + step) % n
		if m.rowMatches(i, query) {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("No match for %q", query), "warn", noticeDuration)
}

// jumpToMatch moves to the next (dir=1) or previous (dir=-1) row matching
// the active search, wrapping around.
func (m *model) jumpToMatch(dir int) tea.Cmd {
	q := m.ui.searchQuery
	if q == "" {
		return m.startNotice("No active search", "info", noticeDuration)
	}
	if !m.hasRows() {
		return nil
	}
	n := len(m.data.view.Rows)
	for step := 1; step <= n; step++ {
		i := ((m.cursor+dir*step)%n + n) % n
		if m.rowMatches(i, q) {
			logging.Debugf("search match for %q at %d", q, i)
			m.cursor = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("No match for %q", q), "warn", noticeDuration)
}
