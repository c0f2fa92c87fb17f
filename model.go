package main

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/dialogs"
	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

type mode int

const (
	modeView mode = iota
	modeCommand
	modeFilter
)

const (
	headerHeight = 1
	footerHeight = 2
)

type model struct {
	data dataState
	ui   uiState
	keys Keymap

	viewport       viewport.Model
	ready          bool
	cursor         int // index into data.view.Rows; -1 when nothing is shown
	pageRowSize    int
	terminalWidth  int
	terminalHeight int

	activeDialog dialogs.Dialog
	sourceName   string
	lastDir      string
}

func newModel(tbl *grid.Table, sourceName string) *model {
	rows := tbl.Dataset().Rows
	m := &model{
		data: dataState{
			table:   tbl,
			columns: columnMetas(tbl.Columns(), rows),
			dates:   computeDateSpan(rows, dateColumn(tbl.Fields())),
		},
		keys:       Keys,
		sourceName: sourceName,
	}
	if sourceName != "" && filepath.Dir(sourceName) != "." {
		m.lastDir = filepath.Dir(sourceName)
	}
	m.ui.colCursor = max(0, visibleColumnIndex(m.data.columns, -1, 1))
	m.ui.drawer = newFilterDrawerUI(tbl.Fields())
	if err := tbl.Render(m); err != nil {
		logging.Errorf("initial render: %v", err)
	}
	return m
}

// Render paints v: it becomes the view every key acts on and the viewport
// content is rebuilt from it.
func (m *model) Render(v grid.View) error {
	m.data.view = v
	m.clampCursor()
	m.refreshView()
	return nil
}

// apply routes a user action through the table and repaints.
func (m *model) apply(ev grid.Event) tea.Cmd {
	if err := m.data.table.HandleAndRender(ev, m); err != nil {
		logging.Warnf("table event %T: %v", ev, err)
		return m.startNotice(err.Error(), "error", noticeDuration)
	}
	logging.Debugf("applied %T: sort=%q asc=%t rows=%d/%d", ev,
		m.data.view.Sort.Key, m.data.view.Sort.Ascending, len(m.data.view.Rows), m.data.view.Total)
	return nil
}

func (m *model) refreshView() {
	if m.ready {
		m.viewport.SetContent(m.renderViewport())
	}
}

func (m *model) clampCursor() {
	n := len(m.data.view.Rows)
	switch {
	case n == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-table: viewing %d rows from %s", m.data.view.Total, m.sourceName)
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportTo(msg.Path)
	case dialogs.SaveConfirmedMsg:
		m.closeDialog()
		return m, m.saveViewTo(msg.Path)
	case dialogs.ExportCanceledMsg, dialogs.SaveCanceledMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			d, cmd := m.activeDialog.Update(msg)
			m.activeDialog = d
			if !d.IsVisible() {
				m.activeDialog = nil
			}
			return m, cmd
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *model) resize(w, h int) {
	m.terminalWidth, m.terminalHeight = w, h

	vw := max(0, w-appstyle.GetHorizontalFrameSize()-tableStyle.GetHorizontalFrameSize())
	vh := h - appstyle.GetVerticalFrameSize() - tableStyle.GetVerticalFrameSize() - headerHeight - footerHeight
	if m.ui.drawer.open {
		vh -= m.filterDrawerHeight()
	}
	vh = max(1, vh)

	if !m.ready {
		m.viewport = viewport.New(vw, vh)
		m.ready = true
	} else {
		m.viewport.Width = vw
		m.viewport.Height = vh
	}
	m.data.columns = layoutColumns(m.data.columns, vw-m.gutterWidth())
	m.refreshView()
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeFilter:
		return m.handleFilterDrawerKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageStep())
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageStep())
	case key.Matches(msg, m.keys.JumpStart):
		m.jumpToStart()
	case key.Matches(msg, m.keys.JumpEnd):
		m.jumpToEnd()
	case key.Matches(msg, m.keys.ColumnLeft):
		m.ui.colCursor = visibleColumnIndex(m.data.columns, m.ui.colCursor, -1)
	case key.Matches(msg, m.keys.ColumnRight):
		m.ui.colCursor = visibleColumnIndex(m.data.columns, m.ui.colCursor, 1)
	case key.Matches(msg, m.keys.SortColumn):
		cmd = m.sortActiveColumn()
	case key.Matches(msg, m.keys.ClearSort):
		cmd = m.clearSort()
	case key.Matches(msg, m.keys.CycleStatus):
		cmd = m.cycleEnumFilter()
	case key.Matches(msg, m.keys.Filter):
		cmd = m.openFilterDrawer()
	case key.Matches(msg, m.keys.ClearFilter):
		cmd = m.clearFilters()
	case key.Matches(msg, m.keys.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, m.keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, m.keys.NextMatch):
		cmd = m.jumpToMatch(1)
	case key.Matches(msg, m.keys.PrevMatch):
		cmd = m.jumpToMatch(-1)
	case key.Matches(msg, m.keys.ClearSearch):
		m.ui.searchQuery = ""
	case key.Matches(msg, m.keys.CopyRow):
		cmd = m.copyCurrentRow()
	case key.Matches(msg, m.keys.ExportToFile):
		cmd = m.openDialog(dialogs.NewExportDialog(defaultExportName, m.lastDir))
	case key.Matches(msg, m.keys.SaveView):
		cmd = m.openDialog(dialogs.NewSaveDialog(defaultViewStateName, m.lastDir))
	case key.Matches(msg, m.keys.OpenHelp):
		cmd = m.openDialog(dialogs.NewHelpDialog(m.keys.Legend()))
	}
	m.refreshView()
	return m, cmd
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}
