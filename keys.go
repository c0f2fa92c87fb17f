package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	JumpStart    key.Binding
	JumpEnd      key.Binding
	ColumnLeft   key.Binding
	ColumnRight  key.Binding
	SortColumn   key.Binding
	ClearSort    key.Binding
	CycleStatus  key.Binding
	Filter       key.Binding
	ClearFilter  key.Binding
	Jump         key.Binding
	Search       key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
	ClearSearch  key.Binding
	CopyRow      key.Binding
	ExportToFile key.Binding
	SaveView     key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first row"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last row"),
	),
	ColumnLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous column"),
	),
	ColumnRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next column"),
	),
	SortColumn: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter/s", "sort by column (toggle asc/desc)"),
	),
	ClearSort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "dataset order"),
	),
	CycleStatus: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "cycle status filter"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear filters"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextMatch: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	PrevMatch: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous match"),
	),
	ClearSearch: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row to clipboard"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export view (csv/xlsx/html)"),
	),
	SaveView: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save sort and filters"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.RowDown,
		k.RowUp,
		k.PageUp,
		k.PageDown,
		k.JumpStart,
		k.JumpEnd,
		k.ColumnLeft,
		k.ColumnRight,
		k.SortColumn,
		k.ClearSort,
		k.CycleStatus,
		k.Filter,
		k.ClearFilter,
		k.Jump,
		k.Search,
		k.NextMatch,
		k.PrevMatch,
		k.ClearSearch,
		k.CopyRow,
		k.ExportToFile,
		k.SaveView,
	}
}
