package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

// gutterWidth is the row number column plus one space.
func (m *model) gutterWidth() int {
	return len(fmt.Sprintf("%d", max(m.data.view.Total, 1))) + 1
}

func (m *model) headerView() string {
	v := m.data.view
	if len(v.Headers) == 0 {
		return headerStyle.Render("")
	}

	var cells []string
	for i, meta := range m.data.columns {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		dir := grid.Neutral
		if i < len(v.Headers) {
			dir = v.Headers[i].Dir
		}
		style := headerCellStyle
		switch {
		case i == m.ui.colCursor:
			style = headerActiveCellStyle
		case dir != grid.Neutral:
			style = headerSortedCellStyle
		}
		label := meta.Label
		inner := max(1, meta.Width-style.GetHorizontalFrameSize())
		if arrow := dir.Arrow(); arrow != "" {
			label = truncate.StringWithTail(label, uint(max(1, inner-2)), cellEllipsis) + " " + arrow
		} else {
			label = truncate.StringWithTail(label, uint(inner), cellEllipsis)
		}
		cells = append(cells, style.Width(meta.Width).MaxHeight(1).Render(label))
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return headerStyle.Render(strings.Repeat(" ", m.gutterWidth()) + headerRow)
}

// footerView renders the 2-line footer.
// width is the rendered table width.
func (m *model) footerView(width int) string {
	styles := DefaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	switch m.ui.mode {
	case modeCommand:
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	case modeFilter:
		footerMode = CmdFilter
	}

	v := m.data.view
	st := FooterState{
		Mode:          footerMode,
		ModeInput:     modeInput,
		FileName:      m.sourceName,
		SortLabel:     sortSummary(v.Sort),
		FilterLabel:   filterSummary(v),
		Row:           m.cursor + 1,
		ShownRows:     len(v.Rows),
		TotalRows:     v.Total,
		StatusMessage: noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:        "(? help · ←/→ column · enter sort · f filter · S status · / search · e export)",
	}
	if st.StatusMessage == "" && m.ui.searchQuery != "" {
		st.StatusMessage = fmt.Sprintf("search: %q (n/N next/prev, esc clear)", m.ui.searchQuery)
	}
	if st.StatusMessage == "" {
		st.StatusMessage = m.dateSpanStatusLabel()
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d col=%d vis=%d-%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.colCursor, m.ui.visibleStart, m.ui.visibleEnd)
	}

	return RenderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.ui.drawer.open {
		parts = append(parts, m.filterDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderRowAt(idx int) (string, bool) {
	rows := m.data.view.Rows
	if idx < 0 || idx >= len(rows) {
		return "", false
	}

	selected := idx == m.cursor
	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		rowBgStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	gutter := gutterStyle.Inherit(rowBgStyle).Render(fmt.Sprintf("%*d ", m.gutterWidth()-1, idx+1))

	var highlight func(int, string) string
	if m.ui.searchQuery != "" {
		highlight = func(_ int, s string) string { return highlightMatches(s, m.ui.searchQuery) }
	}
	line := renderCells(rowTexts(rows[idx], m.data.columns), m.data.columns, cellStyle, highlight)
	if m.ui.searchQuery != "" {
		line = restoreRowStyleAfterReset(line, rowPrefix)
	}
	return gutter + rowPrefix + line + rowSuffix, true
}

func (m *model) renderViewport() string {
	v := m.data.view
	if len(v.Headers) == 0 {
		return emptyStyle.Render("No data.")
	}
	if len(v.Rows) == 0 {
		return emptyStyle.Render("No rows match the current filters. Press F to clear them.")
	}

	start, end := visibleRange(m.cursor, m.viewport.Height, len(v.Rows))
	m.ui.visibleStart, m.ui.visibleEnd = start, end
	m.pageRowSize = end - start + 1

	var b strings.Builder
	for i := start; i <= end; i++ {
		rendered, ok := m.renderRowAt(i)
		if !ok {
			continue
		}
		b.WriteString(rendered + "\n")
	}
	return b.String()
}

// visibleRange picks the window of rows to draw, keeping the cursor near
// the middle when there are more rows than lines.
func visibleRange(cursor, height, n int) (int, int) {
	if n == 0 {
		return 0, -1
	}
	if height <= 0 || height >= n {
		return 0, n - 1
	}
	start := clamp(cursor-(height-1)/2, 0, n-height)
	return start, start + height - 1
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		// case folding changed byte offsets; skip rather than mis-slice
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
