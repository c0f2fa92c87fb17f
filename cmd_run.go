package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// commandRunners execute the command line once enter is pressed.
var commandRunners = map[Command]func(m *model, input string) tea.Cmd{
	CmdJump: func(m *model, input string) tea.Cmd {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return m.startNotice("Invalid line number", "warn", noticeDuration)
		}
		return m.jumpToLine(n)
	},
	CmdSearch: func(m *model, input string) tea.Cmd {
		return m.searchOnce(input)
	},
}

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) runCommand() tea.Cmd {
	run, ok := commandRunners[m.ui.command.cmd]
	if !ok {
		return nil
	}
	return run(m, m.ui.command.buf)
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := &m.ui.command
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshView()
		return m, cmd
	case tea.KeyBackspace:
		if r := []rune(in.buf); len(r) > 0 {
			in.buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		in.buf += " "
	case tea.KeyRunes:
		in.buf += string(msg.Runes)
	}
	return m, nil
}
