package main

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

// sortActiveColumn is a header click on the column under the header cursor.
// Hidden columns are never sorted on.
func (m *model) sortActiveColumn() tea.Cmd {
	if m.ui.colCursor < 0 || m.ui.colCursor >= len(m.data.columns) {
		return nil
	}
	col := m.data.columns[m.ui.colCursor]
	if !col.Visible {
		return m.startNotice("No visible column to sort", "warn", noticeDuration)
	}
	logging.Infof("header click on %q", col.Key)
	return m.apply(grid.HeaderClick{Key: col.Key})
}

func (m *model) clearSort() tea.Cmd {
	m.data.table.ClearSort()
	if err := m.data.table.Render(m); err != nil {
		return m.startNotice(err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Original order", "info", noticeDuration)
}

// cycleEnumFilter steps the first dropdown field through its choices:
// All, then each option, then back to All.
func (m *model) cycleEnumFilter() tea.Cmd {
	field, ok := firstEnumField(m.data.view.Fields)
	if !ok {
		return m.startNotice("No dropdown filter configured", "warn", noticeDuration)
	}
	next := nextChoice(field.Choices(), m.data.view.Criteria[field.Key])
	value := next
	if next == grid.AllOption {
		value = ""
	}
	if cmd := m.apply(grid.FilterChange{Field: field.Key, Value: value}); cmd != nil {
		return cmd
	}
	return m.startNotice(fmt.Sprintf("%s: %s", field.Label, next), "info", noticeDuration)
}

func (m *model) clearFilters() tea.Cmd {
	if cmd := m.apply(grid.ClearFilters{}); cmd != nil {
		return cmd
	}
	m.ui.drawer.loadFrom(m.data.view.Criteria)
	return m.startNotice("Filters cleared", "success", noticeDuration)
}

func firstEnumField(fields []grid.FilterField) (grid.FilterField, bool) {
	for _, f := range fields {
		if f.Kind == grid.KindEnum {
			return f, true
		}
	}
	return grid.FilterField{}, false
}

// nextChoice returns the entry after current; an empty or unknown current
// counts as the first entry.
func nextChoice(choices []string, current string) string {
	if len(choices) == 0 {
		return ""
	}
	if current == "" {
		current = choices[0]
	}
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

// filterSummary is the footer label for the active criteria, in field order.
func filterSummary(v grid.View) string {
	var parts []string
	seen := map[string]bool{}
	for _, f := range v.Fields {
		if val := v.Criteria[f.Key]; val != "" {
			parts = append(parts, f.Key+"="+val)
			seen[f.Key] = true
		}
	}
	var rest []string
	for k, val := range v.Criteria {
		if !seen[k] && val != "" {
			rest = append(rest, k+"="+val)
		}
	}
	sort.Strings(rest)
	parts = append(parts, rest...)
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ",")
}

func sortSummary(s grid.SortState) string {
	if !s.Active() {
		return "None"
	}
	return s.Key + " " + s.Direction(s.Key).Arrow()
}
