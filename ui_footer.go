package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	footerSortWidth    = 12
	footerFilterWidth  = 28
	footerFileMinWidth = 10
)

type FooterState struct {
	Mode      Command
	ModeInput string

	FileName string

	SortLabel   string
	FilterLabel string

	Row       int
	ShownRows int // rows passing the filters
	TotalRows int // rows in the dataset

	StatusMessage string
	Legend        string
}

// FooterStyles are the segment styles. Every segment inherits its bar's
// background so the bar stays solid between segments.
type FooterStyles struct {
	Bar      lipgloss.Style
	ModePill lipgloss.Style
	FileName lipgloss.Style
	Dim      lipgloss.Style

	Status  lipgloss.Style
	Message lipgloss.Style
	Legend  lipgloss.Style
}

func DefaultFooterStyles() FooterStyles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("#2b2b2b")).Foreground(lipgloss.Color("#cfcfcf"))
	status := lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Foreground(lipgloss.Color("#9a9a9a"))
	return FooterStyles{
		Bar: bar,
		ModePill: lipgloss.NewStyle().
			Background(lipgloss.Color(headerActiveBGColor)).
			Foreground(lipgloss.Color(headerActiveFGColor)).
			Bold(true).Padding(0, 1),
		FileName: lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0")).Inherit(bar),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")).Inherit(bar),
		Status:   status,
		Message:  lipgloss.NewStyle().Inherit(status),
		Legend:   lipgloss.NewStyle().Foreground(lipgloss.Color("#b0b0b0")).Inherit(status),
	}
}

// RenderFooter draws the two footer lines at exactly width cells:
//
//	[MODE] ▸ file ▸ input   [SORT: ..] · [FILTER: ..]     Row r/shown of total
//	status message                                                    legend
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.SortLabel == "" {
		st.SortLabel = "None"
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "None"
	}
	if st.Legend == "" {
		st.Legend = "(? help · f filter · enter sort)"
	}
	st.Row = max(st.Row, 0)
	st.ShownRows = max(st.ShownRows, 0)
	st.TotalRows = max(st.TotalRows, 0)

	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	right := fitWidth(fmt.Sprintf(" Row %d/%d of %d ", st.Row, st.ShownRows, st.TotalRows), width)
	leftW := width - lipgloss.Width(right)

	mode := ""
	if leftW > 2 {
		mode = styles.ModePill.Render(fitWidth(commandLabel(st.Mode), leftW-2))
	}
	rest := max(0, leftW-lipgloss.Width(mode))

	sortFilter := fmt.Sprintf("[SORT: %s] · [FILTER: %s]",
		fitWidth(strings.TrimSpace(st.SortLabel), footerSortWidth),
		fitWidth(strings.TrimSpace(st.FilterLabel), footerFilterWidth))
	sortFilter = fitWidth(sortFilter, max(0, rest-footerFileMinWidth-2))
	fileW := max(0, rest-lipgloss.Width(sortFilter)-2)

	var b strings.Builder
	b.WriteString(mode)
	b.WriteString(styles.Bar.Render(" "))
	b.WriteString(fileSegment(fileW, st, styles))
	b.WriteString(styles.Bar.Render(" "))
	b.WriteString(styles.Dim.Render(sortFilter))
	line := b.String()
	if pad := leftW - lipgloss.Width(line); pad > 0 {
		line += styles.Bar.Render(strings.Repeat(" ", pad))
	}
	return line + styles.Bar.Render(right)
}

// fileSegment is the source name followed by the command being typed, padded
// to w cells.
func fileSegment(w int, st FooterState, styles FooterStyles) string {
	if w <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(generated)"
	}
	file := fitWidth("▸ "+name, w)
	out := styles.FileName.Render(file)
	used := lipgloss.Width(file)

	if input := strings.TrimSpace(st.ModeInput); input != "" && used < w {
		seg := fitWidth(" ▸ "+input, w-used)
		out += styles.Bar.Render(seg)
		used += lipgloss.Width(seg)
	}
	if used < w {
		out += styles.Bar.Render(strings.Repeat(" ", w-used))
	}
	return out
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legend := fitWidth(st.Legend, width)
	msgW := width - lipgloss.Width(legend)
	msg := fitWidth(st.StatusMessage, msgW)
	if pad := msgW - lipgloss.Width(msg); pad > 0 {
		msg += strings.Repeat(" ", pad)
	}
	return styles.Message.Render(msg) + styles.Legend.Render(legend)
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdFilter:
		return "FILTER"
	default:
		return "NORMAL"
	}
}

// fitWidth cuts s to at most w terminal cells, marking the cut.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	return truncate.StringWithTail(s, uint(w), cellEllipsis)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
