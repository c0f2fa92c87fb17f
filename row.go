package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-table/grid"
)

const cellEllipsis = "…"

// renderCells lays out one line of cells, truncating anything wider than
// its column. transform, when set, decorates each cell after truncation.
func renderCells(texts []string, colsMeta []ColumnMeta, style lipgloss.Style, transform func(i int, s string) string) string {
	rendered := make([]string, 0, len(colsMeta))
	for i, meta := range colsMeta {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		text := ""
		if i < len(texts) {
			text = texts[i]
		}
		inner := meta.Width - style.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		text = truncate.StringWithTail(text, uint(inner), cellEllipsis)
		if transform != nil {
			text = transform(i, text)
		}
		rendered = append(rendered, style.Width(meta.Width).MaxHeight(1).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func rowTexts(row grid.Row, colsMeta []ColumnMeta) []string {
	out := make([]string, len(colsMeta))
	for i, c := range colsMeta {
		out[i] = row.Get(c.Key).String()
	}
	return out
}
