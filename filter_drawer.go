package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

// drawer lines besides the inputs: span bar, help and error.
const filterDrawerExtraLines = 3

func (m *model) filterDrawerHeight() int {
	return len(m.ui.drawer.inputs) + filterDrawerExtraLines + filterDrawerArea.GetVerticalFrameSize()
}

func (m *model) openFilterDrawer() tea.Cmd {
	d := &m.ui.drawer
	if len(d.inputs) == 0 {
		return m.startNotice("No text filters configured", "warn", noticeDuration)
	}
	d.open = true
	d.errorMsg = ""
	d.loadFrom(m.data.view.Criteria)
	d.setFocus(0)
	m.ui.mode = modeFilter
	m.resize(m.terminalWidth, m.terminalHeight)
	return textinput.Blink
}

func (m *model) closeFilterDrawer() {
	d := &m.ui.drawer
	d.open = false
	d.errorMsg = ""
	d.focus = 0
	for i := range d.inputs {
		d.inputs[i].input.Blur()
	}
	m.ui.mode = modeView
	m.resize(m.terminalWidth, m.terminalHeight)
}

func (m *model) handleFilterDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.ui.drawer

	switch msg.Type {
	case tea.KeyEsc:
		m.closeFilterDrawer()
		return m, nil
	case tea.KeyEnter:
		return m, m.applyFilterDrawer()
	case tea.KeyCtrlR:
		m.resetFilterDrawer()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		d.setFocus(d.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		d.setFocus(d.focus - 1)
		return m, nil
	}

	if len(d.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	d.inputs[d.focus].input, cmd = d.inputs[d.focus].input.Update(msg)
	return m, cmd
}

func (m *model) resetFilterDrawer() {
	d := &m.ui.drawer
	d.errorMsg = ""
	for i := range d.inputs {
		d.inputs[i].input.SetValue("")
	}
}

// validateFilterDrawer checks the date inputs; text and number inputs take
// anything.
func (m *model) validateFilterDrawer() error {
	for _, in := range m.ui.drawer.inputs {
		v := strings.TrimSpace(in.input.Value())
		if v == "" {
			continue
		}
		if in.field.Kind == grid.KindDateFrom || in.field.Kind == grid.KindDateTo {
			if _, ok := parseDate(v); !ok {
				return fmt.Errorf("%s must look like %s", in.field.Label, grid.DateLayout)
			}
		}
	}
	from, fromOK := m.ui.drawer.draftDate(grid.KindDateFrom)
	to, toOK := m.ui.drawer.draftDate(grid.KindDateTo)
	if fromOK && toOK && from >= to {
		return fmt.Errorf("from must be before to (both bounds are exclusive)")
	}
	return nil
}

// applyFilterDrawer sends every input as a filter change and repaints once.
func (m *model) applyFilterDrawer() tea.Cmd {
	d := &m.ui.drawer
	d.errorMsg = ""
	if err := m.validateFilterDrawer(); err != nil {
		d.errorMsg = err.Error()
		return nil
	}

	for _, in := range d.inputs {
		value := strings.TrimSpace(in.input.Value())
		ev := grid.FilterChange{Field: in.field.Key, Value: value}
		if err := m.data.table.Handle(ev); err != nil {
			d.errorMsg = err.Error()
			logging.Warnf("filter drawer: %v", err)
			return nil
		}
	}
	if err := m.data.table.Render(m); err != nil {
		d.errorMsg = err.Error()
		return nil
	}
	logging.Infof("filters applied: %s", filterSummary(m.data.view))
	m.closeFilterDrawer()
	return m.startNotice(fmt.Sprintf("%d of %d rows", len(m.data.view.Rows), m.data.view.Total), "success", noticeDuration)
}

func (m *model) filterDrawerView(width int) string {
	d := &m.ui.drawer
	innerWidth := max(0, width-filterDrawerArea.GetHorizontalFrameSize())
	lineStyle := lipgloss.NewStyle().Width(innerWidth).MaxHeight(1)

	lines := make([]string, 0, len(d.inputs)+filterDrawerExtraLines)
	for i, in := range d.inputs {
		label := drawerLabelStyle.Render(in.field.Label + ":")
		if i == d.focus {
			label = drawerFocusStyle.Inherit(drawerLabelStyle).Render(in.field.Label + ":")
		}
		lines = append(lines, lineStyle.Render(label+" "+in.input.View()))
	}
	lines = append(lines,
		lineStyle.Render(m.dateSpanBar(innerWidth)),
		lineStyle.Render("tab: next  enter: apply  ctrl+r: reset  esc: cancel"),
	)
	errorLine := ""
	if d.errorMsg != "" {
		errorLine = drawerErrorStyle.Render("Error: " + d.errorMsg)
	}
	lines = append(lines, lineStyle.Render(errorLine))

	return filterDrawerArea.Width(width - filterDrawerArea.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// dateSpanBar draws the dataset's date range with the drafted from/to
// window marked on it.
func (m *model) dateSpanBar(width int) string {
	span := m.data.dates
	if !span.ok {
		return "Dates: n/a"
	}

	start, end := span.min, span.max
	if v, ok := m.ui.drawer.draftDate(grid.KindDateFrom); ok {
		start, _ = parseDate(v)
	}
	if v, ok := m.ui.drawer.draftDate(grid.KindDateTo); ok {
		end, _ = parseDate(v)
	}

	minLabel := span.min.Format(grid.DateLayout)
	maxLabel := span.max.Format(grid.DateLayout)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	rangeDur := span.max.Sub(span.min)
	if barWidth < 10 || rangeDur <= 0 {
		return fmt.Sprintf("Dates: %s - %s", minLabel, maxLabel)
	}

	bar := []rune(strings.Repeat("-", barWidth))
	windowStart := clampTimeToBounds(start, span.min, span.max)
	windowEnd := clampTimeToBounds(end, span.min, span.max)
	startPos := int(float64(barWidth-1) * windowStart.Sub(span.min).Seconds() / rangeDur.Seconds())
	endPos := int(float64(barWidth-1) * windowEnd.Sub(span.min).Seconds() / rangeDur.Seconds())
	startPos = clamp(startPos, 0, barWidth-1)
	endPos = clamp(endPos, 0, barWidth-1)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s  %s  %s", minLabel, string(bar), maxLabel)
}

// dateSpanStatusLabel is the idle status line: the active date window, or
// the span of the data when no bound is set.
func (m *model) dateSpanStatusLabel() string {
	v := m.data.view
	var from, to string
	for _, f := range v.Fields {
		switch f.Kind {
		case grid.KindDateFrom:
			if from == "" {
				from = v.Criteria[f.Key]
			}
		case grid.KindDateTo:
			if to == "" {
				to = v.Criteria[f.Key]
			}
		}
	}
	if from != "" || to != "" {
		return fmt.Sprintf("Window: %s - %s", orDash(from), orDash(to))
	}
	if !m.data.dates.ok {
		return ""
	}
	return fmt.Sprintf("Dates: %s - %s", m.data.dates.min.Format(grid.DateLayout), m.data.dates.max.Format(grid.DateLayout))
}

func orDash(s string) string {
	if s == "" {
		return "…"
	}
	return s
}
