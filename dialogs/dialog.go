package dialogs

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a modal drawn over the table. While one is visible it receives
// every key.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")).
			Padding(1, 2).
			Width(60)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Width(56).Align(lipgloss.Center)
)

// pathPrompt is the single-line file name input shared by the export and
// save dialogs.
type pathPrompt struct {
	input   textinput.Model
	visible bool
	lastDir string
}

func newPathPrompt(prompt, defaultName, lastDir string) pathPrompt {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return pathPrompt{input: ti, visible: true, lastDir: lastDir}
}

// path is the typed value, or the placeholder when blank. A bare file name
// lands in lastDir.
func (p *pathPrompt) path() string {
	val := p.input.Value()
	if val == "" {
		val = p.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if p.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(p.lastDir, filepath.Base(val))
	}
	return val
}

func (p *pathPrompt) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *pathPrompt) view(hint string) string {
	if !p.visible {
		return ""
	}
	return boxStyle.Render(p.input.View() + "\n\n" + hintStyle.Render(hint))
}

func (p *pathPrompt) show() {
	p.visible = true
	p.input.Focus()
}

func (p *pathPrompt) hide() {
	p.visible = false
	p.input.Blur()
}
