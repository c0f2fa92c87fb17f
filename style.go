package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	headerFGColor          = "#e8e8e8"
	headerActiveBGColor    = "#ff9f1c"
	headerActiveFGColor    = "#000000"
	headerSortedFGColor    = "#ffd28a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	headerCellStyle       = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color(headerFGColor))
	headerSortedCellStyle = headerCellStyle.Foreground(lipgloss.Color(headerSortedFGColor))
	headerActiveCellStyle = headerCellStyle.
				Background(lipgloss.Color(headerActiveBGColor)).
				Foreground(lipgloss.Color(headerActiveFGColor))

	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true).Padding(1, 2)

	filterDrawerArea = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("245")).
				Padding(0, 0).BorderLeft(true)
	drawerLabelStyle = lipgloss.NewStyle().Width(10)
	drawerFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(headerActiveBGColor))
	drawerErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
