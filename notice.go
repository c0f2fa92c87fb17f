package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/logging"
)

const noticeDuration = 2 * time.Second

var noticeIcons = map[string]string{
	"info":    "ℹ",
	"success": "✓",
	"warn":    "!",
	"error":   "×",
}

// clearNoticeMsg expires the notice with the same sequence number.
type clearNoticeMsg struct{ id int }

func noticeText(msg, kind string) string {
	icon, ok := noticeIcons[kind]
	if msg == "" || !ok {
		return msg
	}
	return icon + " " + msg
}

// startNotice shows msg in the status bar until d passes or a newer notice
// replaces it.
func (m *model) startNotice(msg, kind string, d time.Duration) tea.Cmd {
	m.ui.noticeSeq++
	m.ui.noticeMsg, m.ui.noticeType = msg, kind
	logging.Debugf("notice %d (%s): %s", m.ui.noticeSeq, kind, msg)

	id := m.ui.noticeSeq
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
